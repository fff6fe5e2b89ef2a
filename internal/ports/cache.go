//go:generate go tool github.com/maxbrunsfeld/counterfeiter/v6 -generate

package ports

//counterfeiter:generate -o ../mocks/idempotency_cache.go . IdempotencyCache
//counterfeiter:generate -o ../mocks/key_value_store.go . KeyValueStore

import (
	"context"
	"time"

	"github.com/architeacher/datatable/pkg/idempotency"
)

type (
	// KeyValueStore is the subset of the KeyDB client the repositories build on.
	KeyValueStore interface {
		Get(ctx context.Context, key string) ([]byte, error)
		Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
		Lock(ctx context.Context, key string, value any, ttl time.Duration) (bool, error)
		Delete(ctx context.Context, keys ...string) error
		IsHealthy(ctx context.Context) bool
	}

	// IdempotencyCache stores replayable responses for idempotent requests.
	IdempotencyCache interface {
		// Get returns nil, nil if the key does not exist.
		Get(ctx context.Context, key string) (*idempotency.Record, error)
		Set(ctx context.Context, key string, record *idempotency.Record, ttl time.Duration) error
		// SetLock reports false when another request already holds the key.
		SetLock(ctx context.Context, key string, ttl time.Duration) (bool, error)
		ReleaseLock(ctx context.Context, key string) error
		IsHealthy(ctx context.Context) bool
	}
)
