package user

// Pager 表格底部分页条的数据
type Pager struct {
	Page         int   `json:"page"`
	PageSize     int   `json:"pageSize"`
	TotalMatched int   `json:"totalMatched"`
	TotalPages   int   `json:"totalPages"`
	From         int   `json:"from"` // Showing {from} to {to} of {totalMatched}
	To           int   `json:"to"`
	HasPrev      bool  `json:"hasPrev"`
	HasNext      bool  `json:"hasNext"`
	PrevPage     int   `json:"prevPage"`
	NextPage     int   `json:"nextPage"`
	Pages        []int `json:"pages"`
	Visible      bool  `json:"visible"` // 只有一页或无数据时隐藏
}

// NewPager 不改写 page：越界页码原样保留。
// 按钮只在恰好位于首页/末页时禁用；越界页点"下一页"回到 totalPages，
// 点"上一页"为 max(1, page-1)。
func NewPager(page, size, totalMatched int) Pager {
	pages := TotalPages(totalMatched, size)
	p := Pager{
		Page:         page,
		PageSize:     size,
		TotalMatched: totalMatched,
		TotalPages:   pages,
		HasPrev:      page != 1,
		HasNext:      pages > 0 && page != pages,
		PrevPage:     max(1, page-1),
		NextPage:     max(1, min(pages, page+1)),
		Pages:        make([]int, 0, pages),
		Visible:      pages > 1,
	}
	for i := 1; i <= pages; i++ {
		p.Pages = append(p.Pages, i)
	}
	if page >= 1 && page <= pages {
		p.From = (page-1)*size + 1
		p.To = min(page*size, totalMatched)
	}
	return p
}
