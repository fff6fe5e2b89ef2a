package commands

import (
	"context"

	"github.com/architeacher/datatable/internal/ports"
	"github.com/architeacher/datatable/pkg/decorator"
	"github.com/architeacher/datatable/pkg/logger"
	"github.com/architeacher/datatable/pkg/metrics"
	otelTrace "go.opentelemetry.io/otel/trace"
)

type (
	// SortSessionCommand toggles the direction when Field already sorts the table.
	SortSessionCommand struct {
		Ref   ports.SessionRef
		Field string
		Wait  bool
	}

	SortSessionCommandHandler = decorator.CommandHandler[SortSessionCommand, *ports.SessionView]

	sortSessionCommandHandler struct {
		sessionService ports.SessionService
	}
)

func NewSortSessionCommandHandler(
	svc ports.SessionService,
	log logger.Logger,
	metricsClient metrics.Client,
	tracerProvider otelTrace.TracerProvider,
) SortSessionCommandHandler {
	return decorator.ApplyCommandDecorators[SortSessionCommand, *ports.SessionView](
		sortSessionCommandHandler{sessionService: svc},
		log,
		metricsClient,
		tracerProvider,
	)
}

func (h sortSessionCommandHandler) Handle(ctx context.Context, cmd SortSessionCommand) (*ports.SessionView, error) {
	return h.sessionService.Sort(ctx, cmd.Ref, cmd.Field, cmd.Wait)
}
