package router

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"user-dashboard/internal/core/config"
	"user-dashboard/internal/core/server"
	mdw "user-dashboard/internal/transport/http/middleware"
)

// NewAPIEngine 组装中间件链、运维端点和 /api/v1 下的全部面板模块
func NewAPIEngine(l *zap.Logger, lim config.Limits, reg *Registry) *gin.Engine {
	r := server.NewRouter(l)

	// 中间件
	r.Use(
		mdw.RequestID(),
		mdw.RateLimit(rate.Limit(lim.RPS), lim.Burst),
		// Timeout 必须在 ConcurrencyLimit 之前，排队等待才有截止时间
		mdw.Timeout(time.Duration(lim.TimeoutSec)*time.Second),
		mdw.ConcurrencyLimit(lim.Concurrency),
		mdw.MaxBodyBytes(lim.MaxBodyBytes),
		mdw.Metrics(),
		mdw.AccessLog(l, "/health", "/metrics"),
	)

	// 健康检查 + Prometheus
	r.GET("/health", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"ok": 1}) })
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := r.Group("/api/v1")
	api.Use(mdw.RateLimitPerIP(rate.Limit(lim.RPS), lim.Burst))
	reg.MountAll(api)

	return r
}
