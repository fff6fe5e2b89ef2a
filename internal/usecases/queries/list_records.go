package queries

import (
	"context"

	"github.com/architeacher/datatable/internal/domain/model"
	"github.com/architeacher/datatable/internal/ports"
	"github.com/architeacher/datatable/pkg/decorator"
	"github.com/architeacher/datatable/pkg/logger"
	"github.com/architeacher/datatable/pkg/metrics"
	otelTrace "go.opentelemetry.io/otel/trace"
)

type (
	ListRecordsQuery struct {
		Table string
		Query model.Query
	}

	ListRecordsQueryHandler = decorator.QueryHandler[ListRecordsQuery, *model.Page[model.Post]]

	listRecordsQueryHandler struct {
		tableService ports.TableService
	}
)

func NewListRecordsQueryHandler(
	svc ports.TableService,
	log logger.Logger,
	metricsClient metrics.Client,
	tracerProvider otelTrace.TracerProvider,
) ListRecordsQueryHandler {
	return decorator.ApplyQueryDecorators[ListRecordsQuery, *model.Page[model.Post]](
		listRecordsQueryHandler{tableService: svc},
		log,
		metricsClient,
		tracerProvider,
	)
}

// NewListRecordsQueryHandlerWithCache serves repeated descriptors from cache.
func NewListRecordsQueryHandlerWithCache(
	svc ports.TableService,
	cache decorator.Cache[ListRecordsQuery, *model.Page[model.Post]],
	cacheConfig decorator.CacheConfig,
	log logger.Logger,
	metricsClient metrics.Client,
	tracerProvider otelTrace.TracerProvider,
) ListRecordsQueryHandler {
	return decorator.ApplyQueryDecorators[ListRecordsQuery, *model.Page[model.Post]](
		decorator.NewQueryCachingDecorator[ListRecordsQuery, *model.Page[model.Post]](
			listRecordsQueryHandler{tableService: svc},
			cache,
			cacheConfig,
			log,
		),
		log,
		metricsClient,
		tracerProvider,
	)
}

func (h listRecordsQueryHandler) Execute(ctx context.Context, query ListRecordsQuery) (*model.Page[model.Post], error) {
	return h.tableService.ListRecords(ctx, query.Table, query.Query)
}
