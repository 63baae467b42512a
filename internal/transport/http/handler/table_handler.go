package handler

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"user-dashboard/internal/domain"
	"user-dashboard/internal/feature/user"
	"user-dashboard/internal/service"
	httpez "user-dashboard/internal/transport/http/ez"
)

// TableHandler 表格面板：查询、列头切换排序、列与状态选项
type TableHandler struct {
	svc         *service.UserService
	pageSize    int
	maxPageSize int
}

func NewTableHandler(svc *service.UserService, pageSize, maxPageSize int) *TableHandler {
	if pageSize < 1 {
		pageSize = domain.DefaultPageSize
	}
	if maxPageSize < pageSize {
		maxPageSize = pageSize
	}
	return &TableHandler{svc: svc, pageSize: pageSize, maxPageSize: maxPageSize}
}

func (h *TableHandler) Priority() int { return 10 }

type tableQuery struct {
	Q      string `form:"q"`
	Status string `form:"status,default=all" binding:"oneof=all active inactive pending"`
	Sort   string `form:"sort,default=firstName" binding:"oneof=firstName lastName email phone city state status joinDate lastLogin"`
	Dir    string `form:"dir,default=asc" binding:"oneof=asc desc"`
	Page   int    `form:"page,default=1" binding:"min=1"`
	Size   int    `form:"size"` // 0 表示用配置的默认值
}

type userRow struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	FirstName   string `json:"firstName"`
	LastName    string `json:"lastName"`
	Email       string `json:"email"`
	Phone       string `json:"phone"`
	Location    string `json:"location"`
	Status      string `json:"status"`
	StatusLabel string `json:"statusLabel"`
	JoinDate    string `json:"joinDate"`
	LastLogin   string `json:"lastLogin"`
}

type tableOut struct {
	Rows       []userRow         `json:"rows"`
	Pagination user.Pager        `json:"pagination"`
	Query      domain.QueryState `json:"query"`
}

type sortIn struct {
	State  domain.QueryState `json:"state"`
	Column string            `json:"column" binding:"required"`
}

type columnsQuery struct {
	Sort string `form:"sort,default=firstName"`
	Dir  string `form:"dir,default=asc"`
}

func toRow(u domain.User) userRow {
	return userRow{
		ID:          u.ID,
		Name:        u.FirstName + " " + u.LastName,
		FirstName:   u.FirstName,
		LastName:    u.LastName,
		Email:       u.Email,
		Phone:       u.Phone,
		Location:    u.City + ", " + u.State,
		Status:      string(u.Status),
		StatusLabel: u.Status.Label(),
		JoinDate:    u.JoinDate.Format(domain.DateLayout),
		LastLogin:   u.LastLogin,
	}
}

func (h *TableHandler) state(in *tableQuery) (domain.QueryState, error) {
	q := h.withDefaults(domain.QueryState{
		Search:    in.Q,
		Status:    domain.StatusFilter(in.Status),
		SortField: domain.SortField(in.Sort),
		SortDir:   domain.Direction(in.Dir),
		Page:      in.Page,
		PageSize:  in.Size,
	})
	return q, h.check(q)
}

// withDefaults 只补零值字段，非法值留给 check
func (h *TableHandler) withDefaults(q domain.QueryState) domain.QueryState {
	def := domain.DefaultQueryState()
	if q.Status == "" {
		q.Status = def.Status
	}
	if q.SortField == "" {
		q.SortField = def.SortField
	}
	if q.SortDir == "" {
		q.SortDir = def.SortDir
	}
	if q.Page == 0 {
		q.Page = def.Page
	}
	if q.PageSize == 0 {
		q.PageSize = h.pageSize
	}
	return q
}

// check 查询和切换排序共用的状态校验
func (h *TableHandler) check(q domain.QueryState) error {
	switch {
	case !q.Status.Valid():
		return httpez.BadRequest(fmt.Sprintf("unknown status: %q", q.Status))
	case !q.SortField.Valid():
		return httpez.BadRequest(fmt.Sprintf("unknown sort field: %q", q.SortField))
	case !q.SortDir.Valid():
		return httpez.BadRequest(fmt.Sprintf("unknown sort direction: %q", q.SortDir))
	case q.Page < 1:
		return httpez.BadRequest("page must be >= 1")
	case q.PageSize < 1 || q.PageSize > h.maxPageSize:
		return httpez.BadRequest(fmt.Sprintf("size must be between 1 and %d", h.maxPageSize))
	}
	return nil
}

func (h *TableHandler) MountAPI(api *gin.RouterGroup) {
	ez := httpez.New(api)

	// --- 查询当前页 ---
	httpez.RegisterAction[tableQuery, tableOut](ez, httpez.Action[tableQuery, tableOut]{
		Method: http.MethodGet,
		Path:   "/users",
		Binder: httpez.BindQuery,
		Handler: func(c *gin.Context, in *tableQuery) (tableOut, error) {
			q, err := h.state(in)
			if err != nil {
				return tableOut{}, err
			}
			res, err := h.svc.Query(c.Request.Context(), q)
			if err != nil {
				return tableOut{}, httpez.Internal("query users failed", err)
			}
			out := tableOut{
				Rows:       make([]userRow, 0, len(res.Items)),
				Pagination: user.NewPager(q.Page, q.PageSize, res.TotalMatched),
				Query:      q,
			}
			for _, u := range res.Items {
				out.Rows = append(out.Rows, toRow(u))
			}
			return out, nil
		},
	})

	// --- 点击列头 ---
	httpez.RegisterAction[sortIn, domain.QueryState](ez, httpez.Action[sortIn, domain.QueryState]{
		Method: http.MethodPost,
		Path:   "/users/sort",
		Binder: httpez.BindJSON,
		Handler: func(_ *gin.Context, in *sortIn) (domain.QueryState, error) {
			field := domain.SortField(in.Column)
			if !field.Valid() {
				return domain.QueryState{}, httpez.BadRequest("unknown column: " + in.Column)
			}
			q := h.withDefaults(in.State)
			if err := h.check(q); err != nil {
				return domain.QueryState{}, err
			}
			return user.ToggleSort(q, field), nil
		},
	})

	httpez.RegisterAction[columnsQuery, []user.Column](ez, httpez.Action[columnsQuery, []user.Column]{
		Method: http.MethodGet,
		Path:   "/users/columns",
		Binder: httpez.BindQuery,
		Handler: func(_ *gin.Context, in *columnsQuery) ([]user.Column, error) {
			q := domain.DefaultQueryState()
			q.SortField, q.SortDir = domain.SortField(in.Sort), domain.Direction(in.Dir)
			return user.Columns(q), nil
		},
	})

	httpez.RegisterAction[struct{}, []user.StatusOption](ez, httpez.Action[struct{}, []user.StatusOption]{
		Method: http.MethodGet,
		Path:   "/users/statuses",
		Binder: httpez.BindNone,
		Handler: func(*gin.Context, *struct{}) ([]user.StatusOption, error) {
			return user.StatusOptions(), nil
		},
	})
}
