package queries

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
	FetchLivenessQuery     struct{}
	FetchReadinessQuery    struct{}
	FetchHealthReportQuery struct{}

	FetchLivenessQueryHandler     = decorator.QueryHandler[FetchLivenessQuery, *model.LivenessReport]
	FetchReadinessQueryHandler    = decorator.QueryHandler[FetchReadinessQuery, *model.ReadinessReport]
	FetchHealthReportQueryHandler = decorator.QueryHandler[FetchHealthReportQuery, *model.HealthReport]

	// probeHandler adapts one HealthChecker method to a query handler.
	probeHandler[Q any, R any] struct {
		probe func(context.Context) (R, error)
	}
)

func (h probeHandler[Q, R]) Execute(ctx context.Context, _ Q) (R, error) {
	return h.probe(ctx)
}

func NewFetchLivenessQueryHandler(
	checker ports.HealthChecker,
	log logger.Logger,
	metricsClient metrics.Client,
	tracerProvider otelTrace.TracerProvider,
) FetchLivenessQueryHandler {
	return decorator.ApplyQueryDecorators[FetchLivenessQuery, *model.LivenessReport](
		probeHandler[FetchLivenessQuery, *model.LivenessReport]{probe: checker.Liveness},
		log, metricsClient, tracerProvider,
	)
}

// NewFetchReadinessQueryHandler backs both the admin readiness probe and the gRPC health service.
func NewFetchReadinessQueryHandler(
	checker ports.HealthChecker,
	log logger.Logger,
	metricsClient metrics.Client,
	tracerProvider otelTrace.TracerProvider,
) FetchReadinessQueryHandler {
	return decorator.ApplyQueryDecorators[FetchReadinessQuery, *model.ReadinessReport](
		probeHandler[FetchReadinessQuery, *model.ReadinessReport]{probe: checker.Readiness},
		log, metricsClient, tracerProvider,
	)
}

func NewFetchHealthReportQueryHandler(
	checker ports.HealthChecker,
	log logger.Logger,
	metricsClient metrics.Client,
	tracerProvider otelTrace.TracerProvider,
) FetchHealthReportQueryHandler {
	return decorator.ApplyQueryDecorators[FetchHealthReportQuery, *model.HealthReport](
		probeHandler[FetchHealthReportQuery, *model.HealthReport]{probe: checker.Health},
		log, metricsClient, tracerProvider,
	)
}
