package user

import (
	"strings"

	"user-dashboard/internal/domain"
)

// Filter 文本搜索（名/姓/邮箱/城市，不区分大小写）AND 状态筛选，保持原顺序
func Filter(records []domain.User, search string, status domain.StatusFilter) []domain.User {
	term := strings.ToLower(search)
	out := make([]domain.User, 0, len(records))
	for _, u := range records {
		if matchesSearch(u, term) && matchesStatus(u, status) {
			out = append(out, u)
		}
	}
	return out
}

// term 需已转小写；空串匹配全部
func matchesSearch(u domain.User, term string) bool {
	if term == "" {
		return true
	}
	return strings.Contains(strings.ToLower(u.FirstName), term) ||
		strings.Contains(strings.ToLower(u.LastName), term) ||
		strings.Contains(strings.ToLower(u.Email), term) ||
		strings.Contains(strings.ToLower(u.City), term)
}

func matchesStatus(u domain.User, f domain.StatusFilter) bool {
	return f == domain.StatusAll || domain.Status(f) == u.Status
}
