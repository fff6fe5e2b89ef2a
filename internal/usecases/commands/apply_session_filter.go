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
	ApplySessionFilterCommand struct {
		Ref   ports.SessionRef
		Field string
		Wait  bool
	}

	ApplySessionFilterCommandHandler = decorator.CommandHandler[ApplySessionFilterCommand, *ports.SessionView]

	applySessionFilterCommandHandler struct {
		sessionService ports.SessionService
	}
)

func NewApplySessionFilterCommandHandler(
	svc ports.SessionService,
	log logger.Logger,
	metricsClient metrics.Client,
	tracerProvider otelTrace.TracerProvider,
) ApplySessionFilterCommandHandler {
	return decorator.ApplyCommandDecorators[ApplySessionFilterCommand, *ports.SessionView](
		applySessionFilterCommandHandler{sessionService: svc},
		log,
		metricsClient,
		tracerProvider,
	)
}

func (h applySessionFilterCommandHandler) Handle(ctx context.Context, cmd ApplySessionFilterCommand) (*ports.SessionView, error) {
	return h.sessionService.ApplyFilter(ctx, cmd.Ref, cmd.Field, cmd.Wait)
}
