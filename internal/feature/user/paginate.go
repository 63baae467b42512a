package user

import (
	"slices"

	"user-dashboard/internal/domain"
)

// TotalPages ceil(n/size)；无数据时为 0
func TotalPages(n, size int) int {
	if n <= 0 || size <= 0 {
		return 0
	}
	return (n + size - 1) / size
}

// Paginate 取第 page 页（1 起）。页码越界返回空页，不做钳制。
func Paginate(records []domain.User, page, size int) ([]domain.User, int) {
	total := TotalPages(len(records), size)
	if page < 1 || page > total {
		return []domain.User{}, total
	}
	start := (page - 1) * size
	end := min(start+size, len(records))
	return slices.Clone(records[start:end]), total
}
