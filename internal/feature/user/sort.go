package user

import (
	"slices"
	"strings"

	"user-dashboard/internal/domain"
)

type compareFunc func(a, b *domain.User) int

func byText(get func(*domain.User) string) compareFunc {
	return func(a, b *domain.User) int { return strings.Compare(get(a), get(b)) }
}

// 每个可排序列对应一个有类型的比较器
// status / lastLogin 按文本比较（active < inactive < pending 恰好与业务顺序一致）
var comparators = map[domain.SortField]compareFunc{
	domain.SortFirstName: byText(func(u *domain.User) string { return u.FirstName }),
	domain.SortLastName:  byText(func(u *domain.User) string { return u.LastName }),
	domain.SortEmail:     byText(func(u *domain.User) string { return u.Email }),
	domain.SortPhone:     byText(func(u *domain.User) string { return u.Phone }),
	domain.SortCity:      byText(func(u *domain.User) string { return u.City }),
	domain.SortState:     byText(func(u *domain.User) string { return u.State }),
	domain.SortStatus:    byText(func(u *domain.User) string { return string(u.Status) }),
	domain.SortLastLogin: byText(func(u *domain.User) string { return u.LastLogin }),
	domain.SortJoinDate: func(a, b *domain.User) int {
		return a.JoinDate.Compare(b.JoinDate)
	},
}

// Sort 单次稳定排序；desc 只翻转比较器符号，相等键仍返回 0，
// 所以两个方向下并列项都保持输入顺序。返回新切片，不改动入参。
func Sort(records []domain.User, field domain.SortField, dir domain.Direction) []domain.User {
	out := slices.Clone(records)
	cmp, ok := comparators[field]
	if !ok {
		return out
	}
	sign := 1
	if dir == domain.Desc {
		sign = -1
	}
	slices.SortStableFunc(out, func(a, b domain.User) int {
		return sign * cmp(&a, &b)
	})
	return out
}
