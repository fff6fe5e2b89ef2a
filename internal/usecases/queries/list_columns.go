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
	ListColumnsQuery struct {
		Table string
	}

	ListColumnsQueryHandler = decorator.QueryHandler[ListColumnsQuery, []model.Column]

	listColumnsQueryHandler struct {
		tableService ports.TableService
	}
)

func NewListColumnsQueryHandler(
	svc ports.TableService,
	log logger.Logger,
	metricsClient metrics.Client,
	tracerProvider otelTrace.TracerProvider,
) ListColumnsQueryHandler {
	return decorator.ApplyQueryDecorators[ListColumnsQuery, []model.Column](
		listColumnsQueryHandler{tableService: svc},
		log,
		metricsClient,
		tracerProvider,
	)
}

func (h listColumnsQueryHandler) Execute(ctx context.Context, query ListColumnsQuery) ([]model.Column, error) {
	return h.tableService.Columns(ctx, query.Table)
}
