package repos

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/architeacher/datatable/internal/domain/model"
	"github.com/architeacher/datatable/internal/infrastructure"
	"github.com/architeacher/datatable/internal/ports"
	"github.com/architeacher/datatable/pkg/logger"
)

const recordsKeyPrefix = "datatable:records"

// RecordsCacheRepository caches result pages keyed by table and the canonical
// form of the query descriptor.
type RecordsCacheRepository struct {
	client *infrastructure.KeydbClient
	logger logger.Logger
}

var _ ports.RecordsCache = (*RecordsCacheRepository)(nil)

func NewRecordsCacheRepository(client *infrastructure.KeydbClient, log logger.Logger) *RecordsCacheRepository {
	return &RecordsCacheRepository{client: client, logger: log}
}

// RecordsCacheKey is stable for equal descriptors regardless of filter map order.
func RecordsCacheKey(table string, query model.Query) string {
	hash := sha256.Sum256([]byte(query.Normalized().CanonicalString()))

	return fmt.Sprintf("%s:%s:%s", recordsKeyPrefix, table, hex.EncodeToString(hash[:]))
}

func (r *RecordsCacheRepository) GetPage(ctx context.Context, table string, query model.Query) (*model.Page[model.Post], bool, error) {
	data, err := r.client.Get(ctx, RecordsCacheKey(table, query))
	if err != nil {
		if errors.Is(err, infrastructure.ErrCacheMiss) {
			return nil, false, nil
		}

		return nil, false, fmt.Errorf("getting cached page: %w", err)
	}

	var page model.Page[model.Post]
	if err := json.Unmarshal(data, &page); err != nil {
		r.logger.Warn().Err(err).Str("table", table).Msg("discarding undecodable cached page")

		return nil, false, nil
	}

	if page.Items == nil {
		page.Items = []model.Post{}
	}

	return &page, true, nil
}

func (r *RecordsCacheRepository) SetPage(ctx context.Context, table string, query model.Query, page *model.Page[model.Post], ttl time.Duration) error {
	data, err := json.Marshal(page)
	if err != nil {
		return fmt.Errorf("marshalling page: %w", err)
	}

	if err := r.client.Set(ctx, RecordsCacheKey(table, query), data, ttl); err != nil {
		return fmt.Errorf("setting cached page: %w", err)
	}

	return nil
}

// InvalidateTable drops every cached page of table.
func (r *RecordsCacheRepository) InvalidateTable(ctx context.Context, table string) (int64, error) {
	deleted, err := r.client.DeleteByPattern(ctx, fmt.Sprintf("%s:%s:*", recordsKeyPrefix, table))
	if err != nil {
		return deleted, fmt.Errorf("invalidating %s pages: %w", table, err)
	}

	r.logger.Info().Str("table", table).Int64("deleted", deleted).Msg("records cache invalidated")

	return deleted, nil
}

func (r *RecordsCacheRepository) IsHealthy(ctx context.Context) bool {
	return r.client.IsHealthy(ctx)
}
