package cache

import (
	"context"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
)

// 本地 LRU，TTL 在构造时固定，Set 的 ttl 参数忽略
type localStore struct {
	lru *expirable.LRU[string, []byte]
}

func NewLocal(size int, ttl time.Duration) *Cache {
	if size <= 0 {
		size = 256
	}
	return New(&localStore{lru: expirable.NewLRU[string, []byte](size, nil, ttl)})
}

func (s *localStore) Name() string { return "local" }

func (s *localStore) Get(_ context.Context, key string) ([]byte, bool) {
	return s.lru.Get(key)
}

func (s *localStore) Set(_ context.Context, key string, b []byte, _ time.Duration) {
	s.lru.Add(key, b)
}
