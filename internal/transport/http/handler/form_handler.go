package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"user-dashboard/internal/feature/form"
	httpez "user-dashboard/internal/transport/http/ez"
)

// FormHandler 表单面板：只校验不保存
type FormHandler struct{}

func NewFormHandler() *FormHandler { return &FormHandler{} }

func (h *FormHandler) Priority() int { return 30 }

func (h *FormHandler) MountAPI(api *gin.RouterGroup) {
	ez := httpez.New(api)

	httpez.RegisterAction[struct{}, []form.Field](ez, httpez.Action[struct{}, []form.Field]{
		Method: http.MethodGet,
		Path:   "/form/fields",
		Binder: httpez.BindNone,
		Handler: func(*gin.Context, *struct{}) ([]form.Field, error) {
			return form.Fields(), nil
		},
	})

	// 校验失败时 data 为字段级错误列表
	httpez.RegisterAction[form.Profile, form.Profile](ez, httpez.Action[form.Profile, form.Profile]{
		Method: http.MethodPost,
		Path:   "/form/validate",
		Binder: httpez.BindJSON,
		Handler: func(_ *gin.Context, in *form.Profile) (form.Profile, error) {
			p, errs := form.Validate(*in)
			if len(errs) > 0 {
				return form.Profile{}, httpez.Invalid("validation failed", errs)
			}
			return p, nil
		},
	})
}
