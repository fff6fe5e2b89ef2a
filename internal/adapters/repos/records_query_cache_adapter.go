package repos

import (
	"context"
	"time"

	"github.com/architeacher/datatable/internal/domain/model"
	"github.com/architeacher/datatable/internal/ports"
	"github.com/architeacher/datatable/internal/usecases/queries"
)

// ListRecordsCacheAdapter adapts RecordsCache for ListRecordsQuery.
type ListRecordsCacheAdapter struct {
	cache ports.RecordsCache
}

func NewListRecordsCacheAdapter(cache ports.RecordsCache) *ListRecordsCacheAdapter {
	return &ListRecordsCacheAdapter{cache: cache}
}

func (a *ListRecordsCacheAdapter) Get(ctx context.Context, query queries.ListRecordsQuery) (*model.Page[model.Post], bool, error) {
	return a.cache.GetPage(ctx, query.Table, query.Query)
}

func (a *ListRecordsCacheAdapter) Set(ctx context.Context, query queries.ListRecordsQuery, result *model.Page[model.Post], ttl time.Duration) error {
	return a.cache.SetPage(ctx, query.Table, query.Query, result, ttl)
}
