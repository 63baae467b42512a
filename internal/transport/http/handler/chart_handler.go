package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"user-dashboard/internal/feature/chart"
	httpez "user-dashboard/internal/transport/http/ez"
)

type ChartHandler struct{}

func NewChartHandler() *ChartHandler { return &ChartHandler{} }

func (h *ChartHandler) Priority() int { return 20 }

type chartOverview struct {
	Kinds     []chart.Kind    `json:"kinds"`
	Metrics   []chart.Metric  `json:"metrics"`
	Summaries []chart.Summary `json:"summaries"`
}

func (h *ChartHandler) MountAPI(api *gin.RouterGroup) {
	ez := httpez.New(api)

	httpez.RegisterAction[struct{}, chartOverview](ez, httpez.Action[struct{}, chartOverview]{
		Method: http.MethodGet,
		Path:   "/charts",
		Binder: httpez.BindNone,
		Handler: func(*gin.Context, *struct{}) (chartOverview, error) {
			return chartOverview{
				Kinds:     chart.Kinds(),
				Metrics:   chart.KeyMetrics(),
				Summaries: chart.Summaries(),
			}, nil
		},
	})

	httpez.RegisterAction[struct{}, chart.Chart](ez, httpez.Action[struct{}, chart.Chart]{
		Method: http.MethodGet,
		Path:   "/charts/:type",
		Binder: httpez.BindNone,
		Handler: func(c *gin.Context, _ *struct{}) (chart.Chart, error) {
			out, err := chart.Build(chart.Type(c.Param("type")))
			if errors.Is(err, chart.ErrUnknownType) {
				return chart.Chart{}, httpez.NotFound("unknown chart type: " + c.Param("type"))
			}
			return out, err
		},
	})
}
