package decorator

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/architeacher/datatable/pkg/logger"
)

type (
	// CacheStatus reports how a cached query was served.
	CacheStatus string

	cacheStatusKey struct{}

	CacheConfig struct {
		Enabled bool
		TTL     time.Duration
	}

	CacheGetter[Q Query, R Result] interface {
		Get(ctx context.Context, query Q) (R, bool, error)
	}

	CacheSetter[Q Query, R Result] interface {
		Set(ctx context.Context, query Q, result R, ttl time.Duration) error
	}

	Cache[Q Query, R Result] interface {
		CacheGetter[Q, R]
		CacheSetter[Q, R]
	}

	queryCachingDecorator[Q Query, R Result] struct {
		base   QueryHandler[Q, R]
		cache  Cache[Q, R]
		config CacheConfig
		logger logger.Logger
	}
)

const (
	CacheStatusHit    CacheStatus = "HIT"
	CacheStatusMiss   CacheStatus = "MISS"
	CacheStatusBypass CacheStatus = "BYPASS"
	CacheStatusError  CacheStatus = "ERROR"
)

// WithCacheStatus attaches a slot the caching decorator fills in, so callers
// further up the stack (the HTTP layer) can read the outcome after Execute returns.
func WithCacheStatus(ctx context.Context, initial CacheStatus) context.Context {
	slot := &atomic.Value{}
	slot.Store(initial)

	return context.WithValue(ctx, cacheStatusKey{}, slot)
}

func GetCacheStatus(ctx context.Context) CacheStatus {
	if slot, ok := ctx.Value(cacheStatusKey{}).(*atomic.Value); ok {
		if status, ok := slot.Load().(CacheStatus); ok {
			return status
		}
	}

	return CacheStatusBypass
}

func setCacheStatus(ctx context.Context, status CacheStatus) {
	if slot, ok := ctx.Value(cacheStatusKey{}).(*atomic.Value); ok {
		slot.Store(status)
	}
}

func NewQueryCachingDecorator[Q Query, R Result](
	base QueryHandler[Q, R],
	cache Cache[Q, R],
	config CacheConfig,
	log logger.Logger,
) QueryHandler[Q, R] {
	return queryCachingDecorator[Q, R]{
		base:   base,
		cache:  cache,
		config: config,
		logger: log,
	}
}

func (d queryCachingDecorator[Q, R]) Execute(ctx context.Context, query Q) (R, error) {
	if !d.config.Enabled || d.cache == nil {
		setCacheStatus(ctx, CacheStatusBypass)

		return d.base.Execute(ctx, query)
	}

	log := d.logger.WithContext(ctx)

	cached, hit, err := d.cache.Get(ctx, query)
	switch {
	case err != nil:
		log.Warn().Err(err).Msg("cache lookup failed, falling through")
	case hit:
		setCacheStatus(ctx, CacheStatusHit)

		return cached, nil
	}

	result, err := d.base.Execute(ctx, query)
	if err != nil {
		setCacheStatus(ctx, CacheStatusError)

		return result, err
	}

	if err := d.cache.Set(context.WithoutCancel(ctx), query, result, d.config.TTL); err != nil {
		log.Warn().Err(err).Msg("cache store failed")
	}

	setCacheStatus(ctx, CacheStatusMiss)

	return result, nil
}
