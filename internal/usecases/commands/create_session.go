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
	CreateSessionCommand struct {
		Table string
		// PageSize zero selects the configured default.
		PageSize int
		Wait     bool
	}

	CreateSessionCommandHandler = decorator.CommandHandler[CreateSessionCommand, *ports.SessionView]

	createSessionCommandHandler struct {
		sessionService ports.SessionService
	}
)

func NewCreateSessionCommandHandler(
	svc ports.SessionService,
	log logger.Logger,
	metricsClient metrics.Client,
	tracerProvider otelTrace.TracerProvider,
) CreateSessionCommandHandler {
	return decorator.ApplyCommandDecorators[CreateSessionCommand, *ports.SessionView](
		createSessionCommandHandler{sessionService: svc},
		log,
		metricsClient,
		tracerProvider,
	)
}

func (h createSessionCommandHandler) Handle(ctx context.Context, cmd CreateSessionCommand) (*ports.SessionView, error) {
	return h.sessionService.CreateSession(ctx, cmd.Table, cmd.PageSize, cmd.Wait)
}
