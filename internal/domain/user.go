package domain

import (
	"context"
	"time"
)

// Status 账号状态
type Status string

const (
	StatusActive   Status = "active"
	StatusInactive Status = "inactive"
	StatusPending  Status = "pending"
)

// Statuses 声明顺序（也是下拉框顺序）
var Statuses = []Status{StatusActive, StatusInactive, StatusPending}

func (s Status) Valid() bool {
	switch s {
	case StatusActive, StatusInactive, StatusPending:
		return true
	}
	return false
}

// Label 首字母大写，用于徽标展示
func (s Status) Label() string {
	if s == "" {
		return ""
	}
	b := []byte(s)
	if b[0] >= 'a' && b[0] <= 'z' {
		b[0] -= 'a' - 'A'
	}
	return string(b)
}

// DateLayout JoinDate 的文本格式
const DateLayout = "2006-01-02"

type User struct {
	ID        int       `gorm:"primaryKey;autoIncrement:false" json:"id"`
	FirstName string    `gorm:"size:64;not null" json:"firstName"`
	LastName  string    `gorm:"size:64;not null" json:"lastName"`
	Email     string    `gorm:"uniqueIndex;size:191;not null" json:"email"`
	Phone     string    `gorm:"size:32" json:"phone"`
	City      string    `gorm:"size:64" json:"city"`
	State     string    `gorm:"size:16" json:"state"`
	Status    Status    `gorm:"size:16;not null;index" json:"status"`
	JoinDate  time.Time `gorm:"type:date" json:"joinDate"`
	LastLogin string    `gorm:"size:32" json:"lastLogin"` // 展示文本，不再解析
}

func (User) TableName() string { return "users" }

// UserRepository 只读数据源，整个会话期间记录集不可变
type UserRepository interface {
	All(ctx context.Context) ([]User, error)
}
