// Package panel 仪表盘顶部的面板切换
package panel

type ID string

const (
	Form  ID = "form"
	Table ID = "table"
	Chart ID = "chart"
)

type Panel struct {
	ID    ID     `json:"id"`
	Label string `json:"label"`
	Icon  string `json:"icon"`
}

// Default 默认打开的面板
const Default = Form

func All() []Panel {
	return []Panel{
		{ID: Form, Label: "User Form", Icon: "file-text"},
		{ID: Table, Label: "Data Table", Icon: "users"},
		{ID: Chart, Label: "Chart", Icon: "bar-chart-3"},
	}
}

func (id ID) Valid() bool {
	switch id {
	case Form, Table, Chart:
		return true
	}
	return false
}
