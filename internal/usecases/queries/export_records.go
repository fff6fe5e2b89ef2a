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
	// ExportRecordsQuery ignores the page of Query; every matching record up to
	// the export limit is rendered.
	ExportRecordsQuery struct {
		Table string
		Query model.Query
	}

	ExportRecordsQueryHandler = decorator.QueryHandler[ExportRecordsQuery, *model.Export]

	exportRecordsQueryHandler struct {
		tableService ports.TableService
	}
)

func NewExportRecordsQueryHandler(
	svc ports.TableService,
	log logger.Logger,
	metricsClient metrics.Client,
	tracerProvider otelTrace.TracerProvider,
) ExportRecordsQueryHandler {
	return decorator.ApplyQueryDecorators[ExportRecordsQuery, *model.Export](
		exportRecordsQueryHandler{tableService: svc},
		log,
		metricsClient,
		tracerProvider,
	)
}

func (h exportRecordsQueryHandler) Execute(ctx context.Context, query ExportRecordsQuery) (*model.Export, error) {
	return h.tableService.ExportRecords(ctx, query.Table, query.Query)
}
