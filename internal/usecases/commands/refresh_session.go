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
	// RefreshSessionCommand refetches the current state, e.g. after a failed fetch.
	RefreshSessionCommand struct {
		Ref  ports.SessionRef
		Wait bool
	}

	RefreshSessionCommandHandler = decorator.CommandHandler[RefreshSessionCommand, *ports.SessionView]

	refreshSessionCommandHandler struct {
		sessionService ports.SessionService
	}
)

func NewRefreshSessionCommandHandler(
	svc ports.SessionService,
	log logger.Logger,
	metricsClient metrics.Client,
	tracerProvider otelTrace.TracerProvider,
) RefreshSessionCommandHandler {
	return decorator.ApplyCommandDecorators[RefreshSessionCommand, *ports.SessionView](
		refreshSessionCommandHandler{sessionService: svc},
		log,
		metricsClient,
		tracerProvider,
	)
}

func (h refreshSessionCommandHandler) Handle(ctx context.Context, cmd RefreshSessionCommand) (*ports.SessionView, error) {
	return h.sessionService.Refresh(ctx, cmd.Ref, cmd.Wait)
}
