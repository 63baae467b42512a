package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"user-dashboard/internal/feature/panel"
	httpez "user-dashboard/internal/transport/http/ez"
)

type PanelHandler struct{}

func NewPanelHandler() *PanelHandler { return &PanelHandler{} }

func (h *PanelHandler) Priority() int { return 0 }

type panelsOut struct {
	Default panel.ID      `json:"default"`
	Panels  []panel.Panel `json:"panels"`
}

func (h *PanelHandler) MountAPI(api *gin.RouterGroup) {
	httpez.RegisterAction[struct{}, panelsOut](httpez.New(api), httpez.Action[struct{}, panelsOut]{
		Method: http.MethodGet,
		Path:   "/panels",
		Binder: httpez.BindNone,
		Handler: func(*gin.Context, *struct{}) (panelsOut, error) {
			return panelsOut{Default: panel.Default, Panels: panel.All()}, nil
		},
	})
}
