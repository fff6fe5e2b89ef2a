package grpc_test

import (
	"context"
	"testing"

	inboundgrpc "github.com/architeacher/datatable/internal/adapters/inbound/grpc"
	"github.com/architeacher/datatable/internal/config"
	"github.com/architeacher/datatable/pkg/logger"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

func TestContextExtractorInterceptor(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name     string
		md       metadata.MD
		expected string
	}{
		{name: "propagates caller id", md: metadata.Pairs(inboundgrpc.MetadataKeyRequestID, "req-42"), expected: "req-42"},
		{name: "generates id when missing", md: metadata.MD{}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			ctx := metadata.NewIncomingContext(context.Background(), tc.md)

			var seen string

			_, err := inboundgrpc.ContextExtractorInterceptor()(ctx, nil, &grpc.UnaryServerInfo{},
				func(ctx context.Context, _ any) (any, error) {
					seen = logger.RequestIDFromContext(ctx)

					return nil, nil
				})
			require.NoError(t, err)

			if tc.expected != "" {
				require.Equal(t, tc.expected, seen)

				return
			}

			require.Len(t, seen, 36)
		})
	}
}

func TestAccessLogInterceptor_PassesErrorsThrough(t *testing.T) {
	t.Parallel()

	interceptor := inboundgrpc.AccessLogInterceptor(logger.NewTestLogger(), config.AccessLog{Enabled: true})
	expected := status.Error(codes.Unavailable, "down")

	_, err := interceptor(context.Background(), nil, &grpc.UnaryServerInfo{FullMethod: "/grpc.health.v1.Health/Check"},
		func(context.Context, any) (any, error) {
			return nil, expected
		})

	require.Equal(t, codes.Unavailable, status.Code(err))
}
