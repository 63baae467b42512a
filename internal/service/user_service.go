package service

import (
	"context"
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"go.uber.org/zap"

	"user-dashboard/internal/core/cache"
	"user-dashboard/internal/domain"
	"user-dashboard/internal/feature/user"
)

var (
	queryDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "user_query_duration_seconds",
		Help:    "Latency of the filter/sort/paginate pipeline",
		Buckets: prometheus.ExponentialBuckets(0.00005, 4, 8),
	})
	queryMatched = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "user_query_matched_records",
		Help:    "Records passing the filter stage per query",
		Buckets: prometheus.LinearBuckets(0, 5, 10),
	})
)

type UserService struct {
	repo  domain.UserRepository
	cache *cache.Cache // 可为 nil
	ttl   time.Duration
	log   *zap.Logger
}

func NewUserService(repo domain.UserRepository, c *cache.Cache, ttl time.Duration, l *zap.Logger) *UserService {
	if l == nil {
		l = zap.NewNop()
	}
	return &UserService{repo: repo, cache: c, ttl: ttl, log: l}
}

// Query 每次都基于完整记录集重新计算；缓存只保存分页前的有序序列
func (s *UserService) Query(ctx context.Context, q domain.QueryState) (domain.Result, error) {
	start := time.Now()
	ordered, err := s.ordered(ctx, q)
	if err != nil {
		return domain.Result{}, err
	}
	items, pages := user.Paginate(ordered, q.Page, q.PageSize)

	queryDuration.Observe(time.Since(start).Seconds())
	queryMatched.Observe(float64(len(ordered)))
	s.log.Debug("user query",
		zap.String("search", q.Search),
		zap.String("status", string(q.Status)),
		zap.String("sort", string(q.SortField)+" "+string(q.SortDir)),
		zap.Int("page", q.Page),
		zap.Int("matched", len(ordered)),
		zap.Int("pages", pages),
	)
	return domain.Result{Items: items, TotalMatched: len(ordered), TotalPages: pages}, nil
}

func (s *UserService) ordered(ctx context.Context, q domain.QueryState) ([]domain.User, error) {
	load := func(ctx context.Context) ([]domain.User, error) {
		records, err := s.repo.All(ctx)
		if err != nil {
			return nil, fmt.Errorf("load records: %w", err)
		}
		return user.Ordered(records, q), nil
	}
	if s.cache == nil {
		return load(ctx)
	}
	return cache.GetOrLoadJSON(ctx, s.cache, user.CacheKey(q), s.ttl, load)
}
