package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "go.uber.org/automaxprocs"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"user-dashboard/internal/app"
	"user-dashboard/internal/core/config"
	"user-dashboard/internal/core/logger"
	"user-dashboard/internal/core/server"
	"user-dashboard/internal/service"
	"user-dashboard/internal/transport/http/handler"
	"user-dashboard/internal/transport/http/router"
)

func main() {
	_ = godotenv.Load()
	cfg := config.Load(os.Getenv("CONFIG_PATH"))
	log, cleanup := logger.New(logger.Options{
		Level:      cfg.Log.Level,
		JSON:       cfg.Log.JSON,
		Filename:   cfg.Log.File,
		MaxSizeMB:  cfg.Log.MaxSizeMB,
		MaxBackups: cfg.Log.MaxBackups,
		MaxAgeDays: cfg.Log.MaxAgeDays,
		Compress:   cfg.Log.Compress,
	})
	defer cleanup()
	defer logger.RedirectStdLog(log, zapcore.InfoLevel)()

	ctx := context.Background()

	// 记录来源（memory / sqlite / postgres / mysql）
	users, closeUsers, err := app.OpenUsers(ctx, cfg, log)
	if err != nil {
		log.Fatal("open users", zap.Error(err))
	}
	defer closeUsers()

	// 查询缓存
	qc, closeCache := app.OpenCache(ctx, cfg, log)
	defer closeCache()

	// 依赖
	userSvc := service.NewUserService(users, qc, time.Duration(cfg.Cache.TTLSec)*time.Second, log)
	reg := router.NewRegistry(
		handler.NewPanelHandler(),
		handler.NewTableHandler(userSvc, cfg.Table.PageSize, cfg.Table.MaxPageSize),
		handler.NewChartHandler(),
		handler.NewFormHandler(),
	)
	r := router.NewAPIEngine(log, cfg.Limits, reg)

	// HTTP Server
	addr := server.Addr(cfg.App.HTTP.Host, cfg.App.HTTP.Port)
	srv := server.BuildServer(
		addr, r,
		time.Duration(cfg.App.HTTP.ReadTimeoutSec)*time.Second,
		time.Duration(cfg.App.HTTP.WriteTimeoutSec)*time.Second,
		time.Duration(cfg.App.HTTP.IdleTimeoutSec)*time.Second,
	)

	// 启动日志
	host4human := cfg.App.HTTP.Host
	if host4human == "" || host4human == "0.0.0.0" {
		host4human = "127.0.0.1"
	}
	baseURL := "http://" + host4human + ":" + fmt.Sprint(cfg.App.HTTP.Port)
	log.Info("dashboard api starting",
		zap.String("addr", addr),
		zap.String("env", cfg.App.Env),
		zap.String("health", baseURL+"/health"),
		zap.String("metrics", baseURL+"/metrics"),
		zap.String("api_v1", baseURL+"/api/v1"),
	)

	// 异步启动
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("dashboard api start FAILED", zap.Error(err))
		}
	}()

	// 优雅关闭
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	sctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(sctx); err != nil {
		log.Error("shutdown", zap.Error(err))
	}
	log.Info("dashboard api stopped gracefully")
}
