package cache

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

type redisStore struct {
	rdb *redis.Client
}

// NewRedis Redis 后端；多实例部署时共享排序结果
func NewRedis(addr, pass string, db int) (*Cache, *redis.Client) {
	rdb := redis.NewClient(&redis.Options{Addr: addr, Password: pass, DB: db})
	return New(&redisStore{rdb: rdb}), rdb
}

func (s *redisStore) Name() string { return "redis" }

func (s *redisStore) Get(ctx context.Context, key string) ([]byte, bool) {
	b, err := s.rdb.Get(ctx, key).Bytes()
	if err != nil {
		return nil, false // redis.Nil 或连接错误都当未命中
	}
	return b, true
}

func (s *redisStore) Set(ctx context.Context, key string, b []byte, ttl time.Duration) {
	_ = s.rdb.Set(ctx, key, b, ttl).Err()
}
