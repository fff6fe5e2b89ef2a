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
	// ChangeSessionPageSizeCommand also resets the session to the first page.
	ChangeSessionPageSizeCommand struct {
		Ref  ports.SessionRef
		Size int
		Wait bool
	}

	ChangeSessionPageSizeCommandHandler = decorator.CommandHandler[ChangeSessionPageSizeCommand, *ports.SessionView]

	changeSessionPageSizeCommandHandler struct {
		sessionService ports.SessionService
	}
)

func NewChangeSessionPageSizeCommandHandler(
	svc ports.SessionService,
	log logger.Logger,
	metricsClient metrics.Client,
	tracerProvider otelTrace.TracerProvider,
) ChangeSessionPageSizeCommandHandler {
	return decorator.ApplyCommandDecorators[ChangeSessionPageSizeCommand, *ports.SessionView](
		changeSessionPageSizeCommandHandler{sessionService: svc},
		log,
		metricsClient,
		tracerProvider,
	)
}

func (h changeSessionPageSizeCommandHandler) Handle(ctx context.Context, cmd ChangeSessionPageSizeCommand) (*ports.SessionView, error) {
	return h.sessionService.ChangePageSize(ctx, cmd.Ref, cmd.Size, cmd.Wait)
}
