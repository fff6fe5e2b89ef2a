package runtime

import (
	"context"
	"crypto/tls"
	"fmt"
	"net/http"

	inboundgrpc "github.com/architeacher/datatable/internal/adapters/inbound/grpc"
	inboundhttp "github.com/architeacher/datatable/internal/adapters/inbound/http"
	"github.com/architeacher/datatable/internal/adapters/inbound/http/middleware"
	"github.com/architeacher/datatable/internal/adapters/outbound/records"
	"github.com/architeacher/datatable/internal/adapters/repos"
	"github.com/architeacher/datatable/internal/config"
	"github.com/architeacher/datatable/internal/domain/model"
	"github.com/architeacher/datatable/internal/infrastructure"
	"github.com/architeacher/datatable/internal/infrastructure/postgres"
	"github.com/architeacher/datatable/internal/ports"
	"github.com/architeacher/datatable/internal/services"
	"github.com/architeacher/datatable/internal/usecases"
	"github.com/architeacher/datatable/pkg/decorator"
	"github.com/architeacher/datatable/pkg/logger"
	"github.com/architeacher/datatable/pkg/metrics/noop"
	"github.com/hashicorp/vault/api"
	"github.com/throttled/throttled/v2/store/memstore"
)

// localRateLimitKeys bounds the in-process limiter used when no cache is configured.
const localRateLimitKeys = 65536

func defaultOptions(ctx context.Context) []DependencyOption {
	return []DependencyOption{
		WithConfig(),
		WithLogger(),
		WithSecretsRepository(),
		WithConfigLoader(ctx),
		WithTracing(ctx),
		WithMetrics(),
		WithCache(ctx),
		WithDatabase(ctx),
		WithTables(),
		WithSessions(),
		WithServices(),
		WithApplication(),
		WithHTTPServer(),
		WithAdminServer(),
		WithGRPCHealthServer(),
	}
}

// toolboxOptions wire the application without servers, metrics or traces.
func toolboxOptions(ctx context.Context) []DependencyOption {
	return []DependencyOption{
		WithConfig(),
		WithLogger(),
		WithSecretsRepository(),
		WithConfigLoader(ctx),
		WithNoopTelemetry(),
		WithCache(ctx),
		WithDatabase(ctx),
		WithTables(),
		WithSessions(),
		WithServices(),
		WithApplication(),
	}
}

func WithConfig() DependencyOption {
	return func(d *dependencies) error {
		cfg, err := config.Init()
		if err != nil {
			return fmt.Errorf("initializing configuration: %w", err)
		}

		if err := cfg.Validate(); err != nil {
			return fmt.Errorf("validating configuration: %w", err)
		}

		d.config = cfg

		return nil
	}
}

func WithLogger() DependencyOption {
	return func(d *dependencies) error {
		d.infra.logger = logger.New(d.config.Logging.Level, d.config.Logging.Format)

		return nil
	}
}

func WithSecretsRepository() DependencyOption {
	return func(d *dependencies) error {
		if !d.config.SecretsStorage.Enabled {
			return nil
		}

		vaultConfig := api.DefaultConfig()
		vaultConfig.Address = d.config.SecretsStorage.Address
		vaultConfig.Timeout = d.config.SecretsStorage.Timeout

		if d.config.SecretsStorage.TLSSkipVerify {
			vaultConfig.HttpClient.Transport = &http.Transport{
				TLSClientConfig: &tls.Config{InsecureSkipVerify: true},
			}
		}

		client, err := api.NewClient(vaultConfig)
		if err != nil {
			return fmt.Errorf("creating Vault client: %w", err)
		}

		if d.config.SecretsStorage.Namespace != "" {
			client.SetNamespace(d.config.SecretsStorage.Namespace)
		}

		d.repos.secretsRepo = repos.NewVaultRepository(client)

		return nil
	}
}

// WithConfigLoader overlays the Vault secrets on the env configuration and
// validates the result again.
func WithConfigLoader(ctx context.Context) DependencyOption {
	return func(d *dependencies) error {
		if !d.config.SecretsStorage.Enabled || d.repos.secretsRepo == nil {
			return nil
		}

		loader := config.NewLoader(d.config, d.repos.secretsRepo, 0)

		version, err := loader.Load(ctx, d.repos.secretsRepo, d.config)
		if err != nil {
			return fmt.Errorf("loading secrets from Vault: %w", err)
		}

		if err := d.config.Validate(); err != nil {
			return fmt.Errorf("validating configuration: %w", err)
		}

		d.configLoader = config.NewLoader(d.config, d.repos.secretsRepo, version)

		return nil
	}
}

func WithTracing(ctx context.Context) DependencyOption {
	return func(d *dependencies) error {
		if !d.config.Telemetry.Traces.Enabled {
			d.infra.tracerProvider = infrastructure.NewNoopTracerProvider()

			return nil
		}

		tp, shutdown, err := infrastructure.NewTracerProvider(ctx, d.config.App, d.config.Telemetry)
		if err != nil {
			return fmt.Errorf("initializing tracer: %w", err)
		}

		d.infra.tracerProvider = tp
		d.cleanupFuncs["tracer"] = shutdown

		return nil
	}
}

func WithMetrics() DependencyOption {
	return func(d *dependencies) error {
		descriptors := append(decorator.Descriptors(), middleware.Descriptors()...)

		client, err := infrastructure.NewMetricsClient(d.config.Telemetry.Metrics, descriptors...)
		if err != nil {
			return fmt.Errorf("initializing metrics: %w", err)
		}

		d.infra.metricsClient = client
		d.cleanupFuncs["metrics"] = client.Shutdown

		return nil
	}
}

func WithNoopTelemetry() DependencyOption {
	return func(d *dependencies) error {
		d.infra.tracerProvider = infrastructure.NewNoopTracerProvider()
		d.infra.metricsClient = noop.NewMetricsClient()

		return nil
	}
}

// WithCache connects KeyDB for the records cache, the idempotency store and
// the rate limiter. An unreachable cache only logs; every consumer degrades.
func WithCache(ctx context.Context) DependencyOption {
	return func(d *dependencies) error {
		if !d.config.Cache.Enabled {
			return nil
		}

		client := infrastructure.NewKeyDBClient(d.config.Cache, d.infra.logger)

		if err := client.Ping(ctx); err != nil {
			d.infra.logger.Warn().Err(err).Str("address", d.config.Cache.Address).Msg("cache is not reachable yet")
		}

		d.infra.cacheClient = client
		d.repos.recordsCache = repos.NewRecordsCacheRepository(client, d.infra.logger)
		d.repos.idempotencyRepo = repos.NewIdempotencyRepository(client)
		d.repos.rateLimitStore = repos.NewRateLimitStore(client)
		d.cleanupFuncs["cache"] = func(context.Context) error {
			return client.Close()
		}

		return nil
	}
}

// WithDatabase connects Postgres when it backs the tables.
func WithDatabase(ctx context.Context) DependencyOption {
	return func(d *dependencies) error {
		if d.config.Source.Kind != config.SourceKindPostgres {
			return nil
		}

		if d.config.Postgres.MigrateOnStart {
			version, err := postgres.Migrate(d.config.Postgres)
			if err != nil {
				return fmt.Errorf("migrating database: %w", err)
			}

			d.infra.logger.Info().Uint("version", version).Msg("database migrated")
		}

		pool, err := postgres.NewPool(ctx, d.config.Postgres)
		if err != nil {
			return fmt.Errorf("connecting to database: %w", err)
		}

		d.infra.dbPool = pool
		d.cleanupFuncs["postgres"] = func(context.Context) error {
			pool.Close()

			return nil
		}

		return nil
	}
}

// WithTables registers the posts table against the configured source.
func WithTables() DependencyOption {
	return func(d *dependencies) error {
		source, err := d.postSource()
		if err != nil {
			return err
		}

		registry := services.NewTableRegistry()
		if err := registry.Register(model.PostSchema(), source); err != nil {
			return fmt.Errorf("registering posts table: %w", err)
		}

		d.services.registry = registry

		return nil
	}
}

func WithSessions() DependencyOption {
	return func(d *dependencies) error {
		sessions := repos.NewSessionRepository(d.config.Sessions.MaxSessions, d.config.Sessions.TTL, d.infra.logger)

		d.repos.sessionRepo = sessions
		d.cleanupFuncs["sessions"] = func(context.Context) error {
			sessions.Close()

			return nil
		}

		return nil
	}
}

func WithServices() DependencyOption {
	return func(d *dependencies) error {
		d.services.tables = services.NewTablesService(d.services.registry, d.config.Table)
		d.services.sessions = services.NewSessionsService(d.services.registry, d.repos.sessionRepo, d.config.Table, d.infra.logger)
		d.services.healthChecker = services.NewHealthChecker(d.services.registry, d.repos.recordsCache, d.repos.sessionRepo, d.config.App)

		return nil
	}
}

func WithApplication() DependencyOption {
	return func(d *dependencies) error {
		caching := usecases.RecordsCaching{
			Config: decorator.CacheConfig{
				Enabled: d.config.RecordsCache.Enabled,
				TTL:     d.config.RecordsCache.TTL,
			},
		}

		if d.repos.recordsCache != nil {
			caching.Store = d.repos.recordsCache
			caching.Cache = repos.NewListRecordsCacheAdapter(d.repos.recordsCache)
		}

		d.apps.webApp = usecases.NewWebApplication(
			d.services.tables,
			d.services.sessions,
			d.services.healthChecker,
			caching,
			d.infra.logger,
			d.infra.metricsClient,
			d.infra.tracerProvider,
		)

		return nil
	}
}

func WithHTTPServer() DependencyOption {
	return func(d *dependencies) error {
		store := d.repos.rateLimitStore
		if store == nil && d.config.ThrottledRateLimiting.Enabled {
			local, err := memstore.NewCtx(localRateLimitKeys)
			if err != nil {
				return fmt.Errorf("creating local rate limit store: %w", err)
			}

			store = local
		}

		router, err := inboundhttp.NewRouter(inboundhttp.RouterConfig{
			App:              d.apps.webApp,
			Logger:           d.infra.logger,
			MetricsClient:    d.infra.metricsClient,
			TracerProvider:   d.infra.tracerProvider,
			Config:           d.config,
			RateLimitStore:   store,
			IdempotencyCache: d.repos.idempotencyRepo,
		})
		if err != nil {
			return fmt.Errorf("building router: %w", err)
		}

		d.infra.publicHTTPServer = &http.Server{
			Handler:      router,
			ReadTimeout:  d.config.PublicHTTPServer.ReadTimeout,
			WriteTimeout: d.config.PublicHTTPServer.WriteTimeout,
			IdleTimeout:  d.config.PublicHTTPServer.IdleTimeout,
		}

		return nil
	}
}

func WithAdminServer() DependencyOption {
	return func(d *dependencies) error {
		if !d.config.AdminHTTPServer.Enabled {
			return nil
		}

		router := inboundhttp.NewAdminRouter(inboundhttp.AdminRouterConfig{
			App:           d.apps.webApp,
			RecordsCache:  d.repos.recordsCache,
			MetricsClient: d.infra.metricsClient,
			Logger:        d.infra.logger,
		})

		d.infra.adminHTTPServer = &http.Server{
			Handler:      router,
			ReadTimeout:  d.config.AdminHTTPServer.ReadTimeout,
			WriteTimeout: d.config.AdminHTTPServer.WriteTimeout,
			IdleTimeout:  d.config.AdminHTTPServer.IdleTimeout,
		}

		return nil
	}
}

func WithGRPCHealthServer() DependencyOption {
	return func(d *dependencies) error {
		if !d.config.GRPCHealthServer.Enabled {
			return nil
		}

		handler := inboundgrpc.NewHealthHandler(
			d.apps.webApp.Queries.FetchReadiness,
			d.config.GRPCHealthServer.CheckInterval,
			d.infra.logger.Component("grpc_health"),
		)

		d.infra.healthHandler = handler
		d.infra.grpcServer = inboundgrpc.NewServer(handler, d.infra.logger, d.config.Logging.AccessLog, d.infra.tracerProvider)

		return nil
	}
}

func (d *dependencies) postSource() (ports.PostSource, error) {
	schema := model.PostSchema()

	switch d.config.Source.Kind {
	case config.SourceKindHTTP:
		return records.NewPipelineSource(schema, d.httpPostsLoader()), nil
	case config.SourceKindFixture:
		return records.NewPipelineSource(schema, records.NewFixturePostsLoader(d.config.Source.FixturePath)), nil
	case config.SourceKindPostgres:
		return d.postsRepository()
	default:
		return nil, fmt.Errorf("unsupported source kind %q", d.config.Source.Kind)
	}
}

func (d *dependencies) httpPostsLoader() *records.HTTPPostsLoader {
	return records.NewHTTPPostsLoader(
		d.config.Source,
		d.config.Backoff,
		d.config.CircuitBreaker,
		d.infra.tracerProvider,
		d.infra.logger,
	)
}

func (d *dependencies) postsRepository() (*repos.PostsRepository, error) {
	if d.repos.postsRepo != nil {
		return d.repos.postsRepo, nil
	}

	if d.infra.dbPool == nil {
		return nil, fmt.Errorf("posts repository needs a database connection")
	}

	translatorLogger := d.infra.logger.Component("criteria_translator")

	d.repos.postsRepo = repos.NewPostsRepository(
		d.infra.dbPool,
		repos.NewPgxScanner(),
		repos.NewCriteriaTranslator(repos.PostColumns, "id", &translatorLogger),
		d.infra.logger.Component("posts_repository"),
	)

	return d.repos.postsRepo, nil
}
