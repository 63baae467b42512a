package chart

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var printer = message.NewPrinter(language.English)

type Metric struct {
	Label   string `json:"label"`
	Value   int    `json:"value"`
	Display string `json:"display"`
}

type Summary struct {
	Title string `json:"title"`
	Text  string `json:"text"`
}

// KeyMetrics 取最后一个月
func KeyMetrics() []Metric {
	last := monthly[len(monthly)-1]
	return []Metric{
		{"Total Users", last.Users, printer.Sprintf("%d", last.Users)},
		{"Monthly Revenue", last.Revenue, printer.Sprintf("$%d", last.Revenue)},
		{"Growth Rate", last.Growth, printer.Sprintf("%d%%", last.Growth)},
		{"Market Share", last.MarketShare, printer.Sprintf("%d%%", last.MarketShare)},
	}
}

// Summaries 页面底部的数据摘要
func Summaries() []Summary {
	first, last := monthly[0], monthly[len(monthly)-1]
	return []Summary{
		{
			Title: "User Growth",
			Text: printer.Sprintf("The platform has shown consistent user growth with a %d%% increase in the last month. "+
				"Total user base has grown from %d to %d users.", last.Growth, first.Users, last.Users),
		},
		{
			Title: "Revenue Performance",
			Text: printer.Sprintf("Revenue has increased from $%d to $%d over the year, "+
				"representing a strong upward trend in monetization.", first.Revenue, last.Revenue),
		},
		{
			Title: "Market Position",
			Text: printer.Sprintf("Market share has grown from %d%% to %d%% over the year.", first.MarketShare, last.MarketShare),
		},
	}
}
