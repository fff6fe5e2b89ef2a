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
	ChangeSessionPageCommand struct {
		Ref  ports.SessionRef
		Page int
		Wait bool
	}

	ChangeSessionPageCommandHandler = decorator.CommandHandler[ChangeSessionPageCommand, *ports.SessionView]

	changeSessionPageCommandHandler struct {
		sessionService ports.SessionService
	}
)

func NewChangeSessionPageCommandHandler(
	svc ports.SessionService,
	log logger.Logger,
	metricsClient metrics.Client,
	tracerProvider otelTrace.TracerProvider,
) ChangeSessionPageCommandHandler {
	return decorator.ApplyCommandDecorators[ChangeSessionPageCommand, *ports.SessionView](
		changeSessionPageCommandHandler{sessionService: svc},
		log,
		metricsClient,
		tracerProvider,
	)
}

func (h changeSessionPageCommandHandler) Handle(ctx context.Context, cmd ChangeSessionPageCommand) (*ports.SessionView, error) {
	return h.sessionService.ChangePage(ctx, cmd.Ref, cmd.Page, cmd.Wait)
}
