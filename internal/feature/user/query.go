// Package user 是表格面板的查询引擎：筛选 -> 排序 -> 分页，全部为纯函数。
package user

import (
	"strconv"

	"user-dashboard/internal/domain"
)

// Query 固定顺序执行 Filter -> Sort -> Paginate。相同入参结果值相等。
func Query(records []domain.User, q domain.QueryState) domain.Result {
	ordered := Ordered(records, q)
	items, pages := Paginate(ordered, q.Page, q.PageSize)
	return domain.Result{
		Items:        items,
		TotalMatched: len(ordered),
		TotalPages:   pages,
	}
}

// Ordered 分页前的完整序列（筛选 + 排序），可按 CacheKey 缓存
func Ordered(records []domain.User, q domain.QueryState) []domain.User {
	return Sort(Filter(records, q.Search, q.Status), q.SortField, q.SortDir)
}

// CacheKey 只由影响 Ordered 的四个字段组成，分页参数不参与
func CacheKey(q domain.QueryState) string {
	return "users:ordered:" + strconv.Quote(q.Search) + ":" + string(q.Status) + ":" +
		string(q.SortField) + ":" + string(q.SortDir)
}

// ToggleSort 点击列头：同列翻转方向，换列则重置为 asc
func ToggleSort(q domain.QueryState, field domain.SortField) domain.QueryState {
	if q.SortField == field {
		q.SortDir = q.SortDir.Flip()
		return q
	}
	q.SortField = field
	q.SortDir = domain.Asc
	return q
}
