package cache

import (
	"context"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"golang.org/x/sync/singleflight"
)

var (
	cacheHits = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "query_cache_hits_total",
		Help: "Query cache hits",
	}, []string{"backend"})
	cacheMisses = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "query_cache_misses_total",
		Help: "Query cache misses",
	}, []string{"backend"})
)

// Store 缓存后端（本地 LRU / Redis）
type Store interface {
	Name() string
	Get(ctx context.Context, key string) ([]byte, bool)
	Set(ctx context.Context, key string, b []byte, ttl time.Duration)
}

type Cache struct {
	store Store
	sf    singleflight.Group
}

func New(store Store) *Cache { return &Cache{store: store} }

func (c *Cache) Backend() string { return c.store.Name() }

// GetOrLoad 先读缓存；未命中时 singleflight 合并回源并回填
func (c *Cache) GetOrLoad(ctx context.Context, key string, ttl time.Duration, load func(context.Context) ([]byte, error)) ([]byte, error) {
	if b, ok := c.store.Get(ctx, key); ok {
		cacheHits.WithLabelValues(c.store.Name()).Inc()
		return b, nil
	}
	cacheMisses.WithLabelValues(c.store.Name()).Inc()

	v, err, _ := c.sf.Do(key, func() (any, error) {
		b, e := load(ctx)
		if e != nil {
			return nil, e
		}
		c.store.Set(ctx, key, b, ttl)
		return b, nil
	})
	if err != nil {
		return nil, err
	}
	return v.([]byte), nil
}
