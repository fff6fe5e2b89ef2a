package queries

import (
	"context"

	"github.com/architeacher/datatable/internal/ports"
	"github.com/architeacher/datatable/pkg/decorator"
	"github.com/architeacher/datatable/pkg/logger"
	"github.com/architeacher/datatable/pkg/metrics"
	otelTrace "go.opentelemetry.io/otel/trace"
)

type (
	GetSessionQuery struct {
		Ref ports.SessionRef
		// Wait blocks until the latest fetch of the session settled.
		Wait bool
	}

	GetSessionQueryHandler = decorator.QueryHandler[GetSessionQuery, *ports.SessionView]

	getSessionQueryHandler struct {
		sessionService ports.SessionService
	}
)

func NewGetSessionQueryHandler(
	svc ports.SessionService,
	log logger.Logger,
	metricsClient metrics.Client,
	tracerProvider otelTrace.TracerProvider,
) GetSessionQueryHandler {
	return decorator.ApplyQueryDecorators[GetSessionQuery, *ports.SessionView](
		getSessionQueryHandler{sessionService: svc},
		log,
		metricsClient,
		tracerProvider,
	)
}

func (h getSessionQueryHandler) Execute(ctx context.Context, query GetSessionQuery) (*ports.SessionView, error) {
	return h.sessionService.GetSession(ctx, query.Ref, query.Wait)
}
