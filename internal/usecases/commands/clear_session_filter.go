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
	ClearSessionFilterCommand struct {
		Ref   ports.SessionRef
		Field string
		Wait  bool
	}

	ClearSessionFilterCommandHandler = decorator.CommandHandler[ClearSessionFilterCommand, *ports.SessionView]

	clearSessionFilterCommandHandler struct {
		sessionService ports.SessionService
	}
)

func NewClearSessionFilterCommandHandler(
	svc ports.SessionService,
	log logger.Logger,
	metricsClient metrics.Client,
	tracerProvider otelTrace.TracerProvider,
) ClearSessionFilterCommandHandler {
	return decorator.ApplyCommandDecorators[ClearSessionFilterCommand, *ports.SessionView](
		clearSessionFilterCommandHandler{sessionService: svc},
		log,
		metricsClient,
		tracerProvider,
	)
}

func (h clearSessionFilterCommandHandler) Handle(ctx context.Context, cmd ClearSessionFilterCommand) (*ports.SessionView, error) {
	return h.sessionService.ClearFilter(ctx, cmd.Ref, cmd.Field, cmd.Wait)
}
