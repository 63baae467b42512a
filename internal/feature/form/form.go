// Package form 用户信息表单：字段定义 + 提交校验（不落库）
package form

import (
	"regexp"
	"strings"
	"unicode"

	"user-dashboard/internal/domain"
)

type FieldType string

const (
	Text     FieldType = "text"
	Email    FieldType = "email"
	Tel      FieldType = "tel"
	Date     FieldType = "date"
	Select   FieldType = "select"
	Textarea FieldType = "textarea"
	Checkbox FieldType = "checkbox"
)

type Option struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

type Field struct {
	Name        string    `json:"name"`
	Label       string    `json:"label"`
	Type        FieldType `json:"type"`
	Required    bool      `json:"required"`
	Placeholder string    `json:"placeholder,omitempty"`
	MaxLength   int       `json:"maxLength,omitempty"`
	Options     []Option  `json:"options,omitempty"`
}

// Profile 表单提交体；validate 标签即校验规则
type Profile struct {
	FirstName   string `json:"firstName"   validate:"required,max=50"`
	LastName    string `json:"lastName"    validate:"required,max=50"`
	Email       string `json:"email"       validate:"required,email,max=191"`
	Phone       string `json:"phone"       validate:"required,phone"`
	City        string `json:"city"        validate:"required,max=64"`
	State       string `json:"state"       validate:"required,len=2,alpha"`
	Status      string `json:"status"      validate:"required,oneof=active inactive pending"`
	JoinDate    string `json:"joinDate"    validate:"required,datetime=2006-01-02"`
	Bio         string `json:"bio"         validate:"max=500"`
	AcceptTerms bool   `json:"acceptTerms" validate:"eq=true"`
}

func statusOptions() []Option {
	out := make([]Option, 0, len(domain.Statuses))
	for _, s := range domain.Statuses {
		out = append(out, Option{Value: string(s), Label: s.Label()})
	}
	return out
}

// Fields 表单渲染顺序
func Fields() []Field {
	return []Field{
		{Name: "firstName", Label: "First Name", Type: Text, Required: true, Placeholder: "John", MaxLength: 50},
		{Name: "lastName", Label: "Last Name", Type: Text, Required: true, Placeholder: "Doe", MaxLength: 50},
		{Name: "email", Label: "Email", Type: Email, Required: true, Placeholder: "john.doe@example.com", MaxLength: 191},
		{Name: "phone", Label: "Phone", Type: Tel, Required: true, Placeholder: "(555) 123-4567"},
		{Name: "city", Label: "City", Type: Text, Required: true, Placeholder: "New York", MaxLength: 64},
		{Name: "state", Label: "State", Type: Text, Required: true, Placeholder: "NY", MaxLength: 2},
		{Name: "status", Label: "Status", Type: Select, Required: true, Options: statusOptions()},
		{Name: "joinDate", Label: "Join Date", Type: Date, Required: true},
		{Name: "bio", Label: "Bio", Type: Textarea, MaxLength: 500},
		{Name: "acceptTerms", Label: "I accept the terms and conditions", Type: Checkbox, Required: true},
	}
}

var phoneChars = regexp.MustCompile(`^\+?[0-9 ().\-]+$`)

// 允许 (555) 123-4567 / +1 555.123.4567 等写法，数字 7~15 位
func validPhone(s string) bool {
	if !phoneChars.MatchString(s) {
		return false
	}
	digits := 0
	for _, r := range s {
		if unicode.IsDigit(r) {
			digits++
		}
	}
	return digits >= 7 && digits <= 15
}

// Normalize 去空白；邮箱小写，州代码大写
func Normalize(p Profile) Profile {
	p.FirstName = strings.TrimSpace(p.FirstName)
	p.LastName = strings.TrimSpace(p.LastName)
	p.Email = strings.ToLower(strings.TrimSpace(p.Email))
	p.Phone = strings.TrimSpace(p.Phone)
	p.City = strings.TrimSpace(p.City)
	p.State = strings.ToUpper(strings.TrimSpace(p.State))
	p.Status = strings.ToLower(strings.TrimSpace(p.Status))
	p.JoinDate = strings.TrimSpace(p.JoinDate)
	p.Bio = strings.TrimSpace(p.Bio)
	return p
}
