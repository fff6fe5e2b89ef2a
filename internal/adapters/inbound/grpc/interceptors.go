package grpc

import (
	"context"
	"time"

	"github.com/architeacher/datatable/internal/config"
	"github.com/architeacher/datatable/pkg/logger"
	"github.com/google/uuid"
	"google.golang.org/grpc"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

const MetadataKeyRequestID = "request-id"

// ContextExtractorInterceptor carries the caller's request id, or a fresh
// one, on the context the handler and the logger see.
func ContextExtractorInterceptor() grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req any, _ *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		var requestID string

		if md, ok := metadata.FromIncomingContext(ctx); ok {
			if ids := md.Get(MetadataKeyRequestID); len(ids) > 0 {
				requestID = ids[0]
			}
		}

		if requestID == "" {
			requestID = uuid.New().String()
		}

		return handler(logger.WithRequestID(ctx, requestID), req)
	}
}

// AccessLogInterceptor logs at debug level; orchestrators probe often.
func AccessLogInterceptor(log logger.Logger, cfg config.AccessLog) grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		if !cfg.Enabled {
			return handler(ctx, req)
		}

		start := time.Now()
		resp, err := handler(ctx, req)

		ctxLogger := log.WithContext(ctx)
		event := ctxLogger.Debug().
			Str("method", info.FullMethod).
			Dur("duration", time.Since(start))

		if err != nil {
			st, _ := status.FromError(err)
			event.Str("grpc_code", st.Code().String()).
				Str("error", st.Message()).
				Msg("gRPC request failed")

			return resp, err
		}

		event.Msg("gRPC request completed")

		return resp, nil
	}
}
