package repo

import (
	"context"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"user-dashboard/internal/domain"
)

type UserRepo struct{ db *gorm.DB }

func NewUserRepo(db *gorm.DB) *UserRepo { return &UserRepo{db: db} }

// Migrate 建表（只在 DB.AutoMigrate 打开时调用）
func (r *UserRepo) Migrate() error { return r.db.AutoMigrate(&domain.User{}) }

// Seed 写入演示数据；主键已存在则跳过，重复启动幂等
func (r *UserRepo) Seed(ctx context.Context, users []domain.User) error {
	if len(users) == 0 {
		return nil
	}
	err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&users).Error
	if err != nil {
		return fmt.Errorf("seed users: %w", err)
	}
	return nil
}

// All 按 id 升序返回全部记录（引擎依赖稳定的输入顺序）
func (r *UserRepo) All(ctx context.Context) ([]domain.User, error) {
	var users []domain.User
	if err := r.db.WithContext(ctx).Order("id ASC").Find(&users).Error; err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	return users, nil
}

func (r *UserRepo) Count(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&domain.User{}).Count(&n).Error
	return n, err
}
