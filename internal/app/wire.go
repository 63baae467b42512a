// Package app 两个入口共用的依赖装配：记录来源 + 查询缓存
package app

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"user-dashboard/internal/core/cache"
	"user-dashboard/internal/core/config"
	"user-dashboard/internal/core/database"
	"user-dashboard/internal/domain"
	"user-dashboard/internal/feature/user"
	"user-dashboard/internal/repo"
)

// OpenUsers 按 db.driver 选择记录来源；memory 直接用内置样例
func OpenUsers(ctx context.Context, cfg *config.Config, l *zap.Logger) (domain.UserRepository, func(), error) {
	if cfg.DB.Driver == "" || cfg.DB.Driver == database.DriverMemory {
		return repo.NewStaticUserRepo(user.SampleUsers()), func() {}, nil
	}

	db, err := database.NewGorm(database.Opts{
		Driver:             cfg.DB.Driver,
		DSN:                cfg.DB.DSN,
		Username:           cfg.DB.Username,
		Password:           cfg.DB.Password,
		MaxOpenConns:       cfg.DB.MaxOpenConns,
		MaxIdleConns:       cfg.DB.MaxIdleConns,
		ConnMaxLifetimeMin: cfg.DB.ConnMaxLifetimeMin,
		LogLevel:           cfg.DB.LogLevel,
		Log:                l,
	})
	if err != nil {
		return nil, nil, err
	}
	closeDB := func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	}

	r := repo.NewUserRepo(db)
	if cfg.DB.AutoMigrate {
		if err := r.Migrate(); err != nil {
			closeDB()
			return nil, nil, fmt.Errorf("automigrate: %w", err)
		}
	}
	if cfg.DB.Seed {
		if err := r.Seed(ctx, user.SampleUsers()); err != nil {
			closeDB()
			return nil, nil, fmt.Errorf("seed: %w", err)
		}
	}
	n, err := r.Count(ctx)
	if err != nil {
		closeDB()
		return nil, nil, err
	}
	l.Info("database connected", zap.String("driver", cfg.DB.Driver), zap.Int64("users", n))
	return r, closeDB, nil
}

// OpenCache redis.addr 非空且能 PING 通时用 Redis，否则退回本地 LRU
func OpenCache(ctx context.Context, cfg *config.Config, l *zap.Logger) (*cache.Cache, func()) {
	ttl := time.Duration(cfg.Cache.TTLSec) * time.Second
	if cfg.Redis.Addr != "" {
		c, rdb := cache.NewRedis(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
		pctx, cancel := context.WithTimeout(ctx, 2*time.Second)
		defer cancel()
		err := rdb.Ping(pctx).Err()
		if err == nil {
			l.Info("query cache", zap.String("backend", c.Backend()), zap.String("addr", cfg.Redis.Addr))
			return c, func() { _ = rdb.Close() }
		}
		l.Warn("redis unavailable, falling back to local cache", zap.Error(err))
		_ = rdb.Close()
	}
	c := cache.NewLocal(cfg.Cache.LocalSize, ttl)
	l.Info("query cache", zap.String("backend", c.Backend()), zap.Int("size", cfg.Cache.LocalSize))
	return c, func() {}
}
