package grpc

import (
	"github.com/architeacher/datatable/internal/config"
	"github.com/architeacher/datatable/pkg/logger"
	"go.opentelemetry.io/contrib/instrumentation/google.golang.org/grpc/otelgrpc"
	otelTrace "go.opentelemetry.io/otel/trace"
	"google.golang.org/grpc"
	"google.golang.org/grpc/reflection"
)

// NewServer builds the gRPC server carrying only the health service.
func NewServer(health *HealthHandler, log logger.Logger, accessLog config.AccessLog, tp otelTrace.TracerProvider) *grpc.Server {
	server := grpc.NewServer(
		grpc.StatsHandler(otelgrpc.NewServerHandler(otelgrpc.WithTracerProvider(tp))),
		grpc.ChainUnaryInterceptor(
			ContextExtractorInterceptor(),
			AccessLogInterceptor(log, accessLog),
		),
	)

	health.Register(server)
	reflection.Register(server)

	return server
}
