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
	DeleteSessionCommand struct {
		Ref ports.SessionRef
	}

	DeleteSessionResult struct {
		Success bool
	}

	DeleteSessionCommandHandler = decorator.CommandHandler[DeleteSessionCommand, DeleteSessionResult]

	deleteSessionCommandHandler struct {
		sessionService ports.SessionService
	}
)

func NewDeleteSessionCommandHandler(
	svc ports.SessionService,
	log logger.Logger,
	metricsClient metrics.Client,
	tracerProvider otelTrace.TracerProvider,
) DeleteSessionCommandHandler {
	return decorator.ApplyCommandDecorators[DeleteSessionCommand, DeleteSessionResult](
		deleteSessionCommandHandler{sessionService: svc},
		log,
		metricsClient,
		tracerProvider,
	)
}

func (h deleteSessionCommandHandler) Handle(ctx context.Context, cmd DeleteSessionCommand) (DeleteSessionResult, error) {
	if err := h.sessionService.DeleteSession(ctx, cmd.Ref); err != nil {
		return DeleteSessionResult{Success: false}, err
	}

	return DeleteSessionResult{Success: true}, nil
}
