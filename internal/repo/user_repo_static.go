package repo

import (
	"context"
	"slices"

	"user-dashboard/internal/domain"
)

// StaticUserRepo 内存只读数据源（driver=memory 时使用）
type StaticUserRepo struct{ users []domain.User }

func NewStaticUserRepo(users []domain.User) *StaticUserRepo {
	return &StaticUserRepo{users: slices.Clone(users)}
}

// All 返回副本，调用方改动不会影响数据源
func (r *StaticUserRepo) All(context.Context) ([]domain.User, error) {
	return slices.Clone(r.users), nil
}
