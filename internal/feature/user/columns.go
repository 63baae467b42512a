package user

import "user-dashboard/internal/domain"

// Column 表头；Sorted 为空表示当前未按该列排序
type Column struct {
	Field    domain.SortField `json:"field"`
	Label    string           `json:"label"`
	Sortable bool             `json:"sortable"`
	Sorted   domain.Direction `json:"sorted,omitempty"`
}

var columns = []Column{
	{Field: domain.SortFirstName, Label: "Name", Sortable: true},
	{Field: domain.SortEmail, Label: "Email", Sortable: true},
	{Field: domain.SortPhone, Label: "Phone", Sortable: true},
	{Field: domain.SortCity, Label: "Location", Sortable: true},
	{Field: domain.SortStatus, Label: "Status", Sortable: true},
	{Field: domain.SortJoinDate, Label: "Join Date", Sortable: true},
	{Field: domain.SortLastLogin, Label: "Last Login", Sortable: true},
}

// Columns 返回表头，并标出当前排序列的方向
func Columns(q domain.QueryState) []Column {
	out := append([]Column(nil), columns...)
	for i := range out {
		if out[i].Field == q.SortField {
			out[i].Sorted = q.SortDir
		}
	}
	return out
}

// StatusOption 状态下拉框的一项
type StatusOption struct {
	Value domain.StatusFilter `json:"value"`
	Label string              `json:"label"`
}

func StatusOptions() []StatusOption {
	out := []StatusOption{{Value: domain.StatusAll, Label: "All Status"}}
	for _, s := range domain.Statuses {
		out = append(out, StatusOption{Value: domain.StatusFilter(s), Label: s.Label()})
	}
	return out
}
