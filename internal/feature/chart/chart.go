// Package chart 图表面板：静态数据集 + 四种可切换的图表描述
package chart

import (
	"errors"
	"math"
)

type Type string

const (
	Bar  Type = "bar"
	Line Type = "line"
	Pie  Type = "pie"
	Area Type = "area"
)

var ErrUnknownType = errors.New("unknown chart type")

// Kind 选择器按钮 + 标题文案
type Kind struct {
	ID          Type   `json:"id"`
	Label       string `json:"label"`
	Description string `json:"description"`
	Title       string `json:"title"`
	Subtitle    string `json:"subtitle"`
}

var kinds = []Kind{
	{Bar, "Bar Chart", "User growth over time", "User Growth Analytics", "Monthly user acquisition and growth patterns"},
	{Line, "Line Chart", "Revenue trends", "Revenue & Growth Trends", "Revenue performance and growth rate analysis"},
	{Pie, "Pie Chart", "User status distribution", "User Status Distribution", "Current distribution of user account statuses"},
	{Area, "Area Chart", "Market share progression", "Market Share Progression", "Market share evolution over the past year"},
}

// Kinds 按展示顺序返回
func Kinds() []Kind { return append([]Kind(nil), kinds...) }

type MonthPoint struct {
	Name        string `json:"name"`
	Users       int    `json:"users"`
	Revenue     int    `json:"revenue"`
	Growth      int    `json:"growth"`
	MarketShare int    `json:"marketShare"`
}

type Slice struct {
	Name    string  `json:"name"`
	Value   int     `json:"value"`
	Color   string  `json:"color"`
	Percent float64 `json:"percent"` // 0..100，保留整数
}

// Series 某条曲线/柱子绑定的字段
type Series struct {
	Key   string `json:"key"`
	Name  string `json:"name"`
	Color string `json:"color"`
}

type Chart struct {
	Kind
	Series []Series     `json:"series,omitempty"`
	Points []MonthPoint `json:"points,omitempty"`
	Slices []Slice      `json:"slices,omitempty"`
}

var monthly = []MonthPoint{
	{"Jan", 1200, 45000, 15, 25},
	{"Feb", 1350, 52000, 18, 28},
	{"Mar", 1480, 58000, 22, 30},
	{"Apr", 1620, 65000, 25, 32},
	{"May", 1780, 72000, 28, 35},
	{"Jun", 1950, 80000, 32, 38},
	{"Jul", 2100, 88000, 35, 40},
	{"Aug", 2280, 95000, 38, 42},
	{"Sep", 2450, 102000, 42, 45},
	{"Oct", 2650, 110000, 45, 48},
	{"Nov", 2850, 118000, 48, 50},
	{"Dec", 3100, 125000, 52, 52},
}

var statusSlices = []Slice{
	{Name: "Active Users", Value: 3100, Color: "#10B981"},
	{Name: "Inactive Users", Value: 800, Color: "#EF4444"},
	{Name: "Pending Users", Value: 200, Color: "#F59E0B"},
}

func Monthly() []MonthPoint { return append([]MonthPoint(nil), monthly...) }

// StatusDistribution 饼图数据，附带占比
func StatusDistribution() []Slice {
	total := 0
	for _, s := range statusSlices {
		total += s.Value
	}
	out := make([]Slice, len(statusSlices))
	for i, s := range statusSlices {
		if total > 0 {
			s.Percent = math.Round(float64(s.Value) * 100 / float64(total))
		}
		out[i] = s
	}
	return out
}

func kindOf(t Type) (Kind, bool) {
	for _, k := range kinds {
		if k.ID == t {
			return k, true
		}
	}
	return Kind{}, false
}

// Build 组装某种图表的完整渲染数据
func Build(t Type) (Chart, error) {
	k, ok := kindOf(t)
	if !ok {
		return Chart{}, ErrUnknownType
	}
	c := Chart{Kind: k}
	switch t {
	case Bar:
		c.Series = []Series{{Key: "users", Name: "Users", Color: "#3B82F6"}}
		c.Points = Monthly()
	case Line:
		c.Series = []Series{
			{Key: "revenue", Name: "Revenue", Color: "#10B981"},
			{Key: "growth", Name: "Growth", Color: "#F59E0B"},
		}
		c.Points = Monthly()
	case Pie:
		c.Slices = StatusDistribution()
	case Area:
		c.Series = []Series{{Key: "marketShare", Name: "Market Share", Color: "#8B5CF6"}}
		c.Points = Monthly()
	}
	return c, nil
}
