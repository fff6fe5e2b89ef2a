// Package grpc exposes the service readiness over the standard gRPC health
// protocol for orchestrators that probe gRPC instead of HTTP.
package grpc

import (
	"context"
	"time"

	"github.com/architeacher/datatable/internal/domain/model"
	"github.com/architeacher/datatable/internal/usecases/queries"
	"github.com/architeacher/datatable/pkg/logger"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
)

// ServiceName is the health service name reported next to the server-wide "" entry.
const ServiceName = "datatable.v1.DataTable"

type HealthHandler struct {
	server    *health.Server
	readiness queries.FetchReadinessQueryHandler
	interval  time.Duration
	logger    logger.Logger
}

func NewHealthHandler(readiness queries.FetchReadinessQueryHandler, interval time.Duration, log logger.Logger) *HealthHandler {
	server := health.NewServer()
	server.SetServingStatus(ServiceName, healthpb.HealthCheckResponse_NOT_SERVING)

	return &HealthHandler{
		server:    server,
		readiness: readiness,
		interval:  interval,
		logger:    log,
	}
}

func (h *HealthHandler) Register(s *grpc.Server) {
	healthpb.RegisterHealthServer(s, h.server)
}

// Probe runs one readiness check and publishes its outcome. A degraded
// service still serves.
func (h *HealthHandler) Probe(ctx context.Context) healthpb.HealthCheckResponse_ServingStatus {
	status := healthpb.HealthCheckResponse_SERVING

	report, err := h.readiness.Execute(ctx, queries.FetchReadinessQuery{})

	switch {
	case err != nil:
		ctxLogger := h.logger.WithContext(ctx)
		ctxLogger.Warn().Err(err).Msg("readiness probe failed")

		status = healthpb.HealthCheckResponse_NOT_SERVING
	case report.Status == model.HealthStatusDown:
		status = healthpb.HealthCheckResponse_NOT_SERVING
	}

	h.server.SetServingStatus("", status)
	h.server.SetServingStatus(ServiceName, status)

	return status
}

// Run probes every interval until ctx ends, then flips every service to
// NOT_SERVING so watchers see the shutdown.
func (h *HealthHandler) Run(ctx context.Context) {
	h.Probe(ctx)

	if h.interval <= 0 {
		<-ctx.Done()
		h.server.Shutdown()

		return
	}

	ticker := time.NewTicker(h.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			h.server.Shutdown()

			return
		case <-ticker.C:
			h.Probe(ctx)
		}
	}
}
