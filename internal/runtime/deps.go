package runtime

import (
	"context"
	"fmt"
	"net/http"

	inboundgrpc "github.com/architeacher/datatable/internal/adapters/inbound/grpc"
	"github.com/architeacher/datatable/internal/adapters/repos"
	"github.com/architeacher/datatable/internal/config"
	"github.com/architeacher/datatable/internal/infrastructure"
	"github.com/architeacher/datatable/internal/ports"
	"github.com/architeacher/datatable/internal/services"
	"github.com/architeacher/datatable/internal/usecases"
	"github.com/architeacher/datatable/pkg/logger"
	"github.com/architeacher/datatable/pkg/metrics"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/throttled/throttled/v2"
	otelTrace "go.opentelemetry.io/otel/trace"
	"google.golang.org/grpc"
)

type (
	infrastructureDep struct {
		publicHTTPServer *http.Server
		adminHTTPServer  *http.Server
		grpcServer       *grpc.Server
		healthHandler    *inboundgrpc.HealthHandler
		cacheClient      *infrastructure.KeydbClient
		dbPool           *pgxpool.Pool
		logger           logger.Logger
		metricsClient    metrics.Client
		tracerProvider   otelTrace.TracerProvider
	}

	repositories struct {
		secretsRepo     ports.SecretsRepository
		idempotencyRepo ports.IdempotencyCache
		recordsCache    ports.RecordsCache
		rateLimitStore  throttled.GCRAStoreCtx
		sessionRepo     *repos.SessionRepository
		postsRepo       *repos.PostsRepository
	}

	servicesDep struct {
		registry      *services.TableRegistry
		tables        ports.TableService
		sessions      ports.SessionService
		healthChecker ports.HealthChecker
	}

	applications struct {
		webApp *usecases.WebApplication
	}

	dependencies struct {
		config       *config.ServiceConfig
		configLoader *config.Loader

		infra infrastructureDep

		repos repositories

		services servicesDep

		apps applications

		cleanupFuncs map[string]func(ctx context.Context) error
	}

	DependencyOption func(*dependencies) error
)

// initializeDependencies applies base, then extra, in order.
func initializeDependencies(base []DependencyOption, extra ...DependencyOption) (*dependencies, error) {
	deps := &dependencies{
		cleanupFuncs: make(map[string]func(ctx context.Context) error),
	}

	for _, opt := range append(base, extra...) {
		if err := opt(deps); err != nil {
			return nil, fmt.Errorf("failed to apply dependency option: %w", err)
		}
	}

	return deps, nil
}

// cleanup runs every registered cleanup function and logs the failures.
func (d *dependencies) cleanup(ctx context.Context) {
	for resource, cleanupFn := range d.cleanupFuncs {
		if err := cleanupFn(ctx); err != nil {
			d.infra.logger.Error().
				Err(err).
				Str("resource", resource).
				Msg("failed to shutdown the resource gracefully")
		}
	}
}
