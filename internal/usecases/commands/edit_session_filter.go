package commands

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
	// EditSessionFilterCommand stages a clause; nothing is fetched until it is applied.
	EditSessionFilterCommand struct {
		Ref    ports.SessionRef
		Field  string
		Clause model.FilterClause
	}

	EditSessionFilterCommandHandler = decorator.CommandHandler[EditSessionFilterCommand, *ports.SessionView]

	editSessionFilterCommandHandler struct {
		sessionService ports.SessionService
	}
)

func NewEditSessionFilterCommandHandler(
	svc ports.SessionService,
	log logger.Logger,
	metricsClient metrics.Client,
	tracerProvider otelTrace.TracerProvider,
) EditSessionFilterCommandHandler {
	return decorator.ApplyCommandDecorators[EditSessionFilterCommand, *ports.SessionView](
		editSessionFilterCommandHandler{sessionService: svc},
		log,
		metricsClient,
		tracerProvider,
	)
}

func (h editSessionFilterCommandHandler) Handle(ctx context.Context, cmd EditSessionFilterCommand) (*ports.SessionView, error) {
	return h.sessionService.EditFilter(ctx, cmd.Ref, cmd.Field, cmd.Clause)
}
