package queries

import (
	"context"

	"github.com/architeacher/datatable/internal/ports"
	"github.com/architeacher/datatable/pkg/decorator"
	"github.com/architeacher/datatable/pkg/logger"
	"github.com/architeacher/datatable/pkg/metrics"
	otelTrace "go.opentelemetry.io/otel/trace"
)

type (
	ListTablesQuery struct{}

	ListTablesQueryHandler = decorator.QueryHandler[ListTablesQuery, []string]

	listTablesQueryHandler struct {
		tableService ports.TableService
	}
)

func NewListTablesQueryHandler(
	svc ports.TableService,
	log logger.Logger,
	metricsClient metrics.Client,
	tracerProvider otelTrace.TracerProvider,
) ListTablesQueryHandler {
	return decorator.ApplyQueryDecorators[ListTablesQuery, []string](
		listTablesQueryHandler{tableService: svc},
		log,
		metricsClient,
		tracerProvider,
	)
}

func (h listTablesQueryHandler) Execute(ctx context.Context, _ ListTablesQuery) ([]string, error) {
	return h.tableService.Tables(ctx)
}
