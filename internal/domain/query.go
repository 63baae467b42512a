package domain

// StatusFilter 为 "all" 或某个 Status
type StatusFilter string

const StatusAll StatusFilter = "all"

func (f StatusFilter) Valid() bool {
	return f == StatusAll || Status(f).Valid()
}

// SortField 可排序列（封闭集合）
type SortField string

const (
	SortFirstName SortField = "firstName"
	SortLastName  SortField = "lastName"
	SortEmail     SortField = "email"
	SortPhone     SortField = "phone"
	SortCity      SortField = "city"
	SortState     SortField = "state"
	SortStatus    SortField = "status"
	SortJoinDate  SortField = "joinDate"
	SortLastLogin SortField = "lastLogin"
)

var SortFields = []SortField{
	SortFirstName, SortLastName, SortEmail, SortPhone, SortCity,
	SortState, SortStatus, SortJoinDate, SortLastLogin,
}

func (f SortField) Valid() bool {
	for _, s := range SortFields {
		if s == f {
			return true
		}
	}
	return false
}

type Direction string

const (
	Asc  Direction = "asc"
	Desc Direction = "desc"
)

func (d Direction) Valid() bool { return d == Asc || d == Desc }

// Flip asc <-> desc
func (d Direction) Flip() Direction {
	if d == Asc {
		return Desc
	}
	return Asc
}

const DefaultPageSize = 5

// QueryState 由调用方持有；每次事件替换整个值
type QueryState struct {
	Search    string       `json:"search"`
	Status    StatusFilter `json:"status"`
	SortField SortField    `json:"sortField"`
	SortDir   Direction    `json:"sortDir"`
	Page      int          `json:"page"`
	PageSize  int          `json:"pageSize"`
}

// DefaultQueryState 表格初始状态
func DefaultQueryState() QueryState {
	return QueryState{
		Status:    StatusAll,
		SortField: SortFirstName,
		SortDir:   Asc,
		Page:      1,
		PageSize:  DefaultPageSize,
	}
}

type Result struct {
	Items        []User `json:"items"`
	TotalMatched int    `json:"totalMatched"`
	TotalPages   int    `json:"totalPages"`
}
