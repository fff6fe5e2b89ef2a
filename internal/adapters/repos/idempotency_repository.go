package repos

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/architeacher/datatable/internal/infrastructure"
	"github.com/architeacher/datatable/internal/ports"
	"github.com/architeacher/datatable/pkg/idempotency"
)

const lockValue = "processing"

var _ ports.IdempotencyCache = (*IdempotencyRepository)(nil)

// IdempotencyRepository keeps replayable responses in KeyDB.
type IdempotencyRepository struct {
	store ports.KeyValueStore
}

func NewIdempotencyRepository(store ports.KeyValueStore) *IdempotencyRepository {
	return &IdempotencyRepository{store: store}
}

func (r *IdempotencyRepository) Get(ctx context.Context, key string) (*idempotency.Record, error) {
	data, err := r.store.Get(ctx, key)
	if err != nil {
		if errors.Is(err, infrastructure.ErrCacheMiss) {
			return nil, nil
		}

		return nil, fmt.Errorf("getting cached response: %w", err)
	}

	var record idempotency.Record
	if err := json.Unmarshal(data, &record); err != nil {
		return nil, fmt.Errorf("unmarshalling cached response: %w", err)
	}

	return &record, nil
}

func (r *IdempotencyRepository) Set(ctx context.Context, key string, record *idempotency.Record, ttl time.Duration) error {
	data, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("marshalling response: %w", err)
	}

	if err := r.store.Set(ctx, key, data, ttl); err != nil {
		return fmt.Errorf("setting cached response: %w", err)
	}

	return nil
}

func (r *IdempotencyRepository) SetLock(ctx context.Context, key string, ttl time.Duration) (bool, error) {
	return r.store.Lock(ctx, idempotency.LockKey(key), lockValue, ttl)
}

func (r *IdempotencyRepository) ReleaseLock(ctx context.Context, key string) error {
	if err := r.store.Delete(ctx, idempotency.LockKey(key)); err != nil {
		return fmt.Errorf("releasing lock: %w", err)
	}

	return nil
}

func (r *IdempotencyRepository) IsHealthy(ctx context.Context) bool {
	return r.store.IsHealthy(ctx)
}
