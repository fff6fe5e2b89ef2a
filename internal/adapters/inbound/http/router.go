package http

import (
	"fmt"
	"net/http"

	"github.com/architeacher/datatable/internal/adapters/inbound/http/handlers"
	"github.com/architeacher/datatable/internal/adapters/inbound/http/middleware"
	"github.com/architeacher/datatable/internal/config"
	"github.com/architeacher/datatable/internal/ports"
	"github.com/architeacher/datatable/internal/usecases"
	"github.com/architeacher/datatable/pkg/logger"
	"github.com/architeacher/datatable/pkg/metrics"
	"github.com/getkin/kin-openapi/openapi3"
	"github.com/getkin/kin-openapi/openapi3filter"
	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/throttled/throttled/v2"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	otelTrace "go.opentelemetry.io/otel/trace"
)

const (
	baseURL = "/v1"
)

type RouterConfig struct {
	App              *usecases.WebApplication
	Logger           logger.Logger
	MetricsClient    metrics.Client
	TracerProvider   otelTrace.TracerProvider
	Config           *config.ServiceConfig
	RateLimitStore   throttled.GCRAStoreCtx
	IdempotencyCache ports.IdempotencyCache
}

func NewRouter(cfg RouterConfig) (http.Handler, error) {
	router := chi.NewRouter()

	// Core middlewares - always applied
	router.Use(middleware.RequestTracking())
	router.Use(chimiddleware.RealIP)
	router.Use(middleware.Recovery(cfg.Logger))
	router.Use(chimiddleware.Timeout(cfg.Config.PublicHTTPServer.WriteTimeout))
	router.Use(middleware.SecurityHeaders(cfg.Config.App.APIVersion))
	router.Use(middleware.CORS(cfg.Config.PublicHTTPServer.AllowedOrigins))

	if cfg.Config.Telemetry.Traces.Enabled {
		opts := []otelhttp.Option{
			otelhttp.WithSpanNameFormatter(func(_ string, r *http.Request) string {
				return r.Method + " " + r.URL.Path
			}),
		}

		if cfg.TracerProvider != nil {
			opts = append(opts, otelhttp.WithTracerProvider(cfg.TracerProvider))
		}

		router.Use(otelhttp.NewMiddleware(cfg.Config.App.ServiceName, opts...))
		cfg.Logger.Info().Msg("distributed tracing enabled")
	}

	if cfg.Config.Telemetry.Metrics.Enabled && cfg.MetricsClient != nil {
		router.Use(middleware.NewMetricsMiddleware(cfg.MetricsClient).Middleware)
		cfg.Logger.Info().Msg("HTTP metrics collection enabled")
	}

	if cfg.Config.Logging.AccessLog.Enabled {
		healthFilter := middleware.NewHealthCheckFilter(false)

		router.Use(healthFilter.Middleware)
		router.Use(middleware.AccessLogger(cfg.Logger, cfg.Config.Logging.AccessLog.IncludeQueryParams))
		cfg.Logger.Info().Msg("structured access logging enabled")
	}

	if err := useRateLimiting(router, cfg); err != nil {
		return nil, err
	}

	if cfg.Config.Auth.Enabled {
		router.Use(middleware.Authentication(cfg.Config.Auth))
		cfg.Logger.Info().Msg("authentication is enabled")
	}

	if cfg.Config.Compression.Enabled {
		router.Use(middleware.Compression(cfg.Config.Compression, cfg.Logger, cfg.MetricsClient))
	}

	router.Use(middleware.ConditionalGET())

	swagger, err := handlers.GetSwagger()
	if err != nil {
		return nil, fmt.Errorf("loading swagger spec: %w", err)
	}

	// Set server to match the base URL for proper path matching
	swagger.Servers = openapi3.Servers{
		&openapi3.Server{URL: baseURL},
	}

	requestValidator, err := middleware.RequestValidator(swagger, openapi3filter.Options{
		MultiError:         false,
		AuthenticationFunc: middleware.NewAuthenticationFunc(cfg.Config.Auth),
	})
	if err != nil {
		return nil, err
	}

	router.Use(requestValidator)

	if cfg.Config.Idempotency.Enabled && cfg.IdempotencyCache != nil {
		router.Use(middleware.Idempotency(cfg.IdempotencyCache, cfg.Config.Idempotency, cfg.Logger))
		cfg.Logger.Info().Msg("idempotency keys enabled")
	}

	router.NotFound(handlers.NotFound)
	router.MethodNotAllowed(handlers.MethodNotAllowed)

	handler := handlers.NewAPIHandler(
		cfg.App,
		cfg.Logger,
		handlers.WithBaseURL(baseURL),
		handlers.WithHTTPCacheConfig(handlers.HTTPCacheConfig{
			Enabled: cfg.Config.RecordsCache.Enabled,
			MaxAge:  cfg.Config.RecordsCache.MaxAge,
		}),
	)

	return handlers.HandlerWithOptions(handler, handlers.ChiServerOptions{
		BaseRouter: router,
		BaseURL:    baseURL,
	}), nil
}

func useRateLimiting(router chi.Router, cfg RouterConfig) error {
	if !cfg.Config.ThrottledRateLimiting.Enabled {
		return nil
	}

	if cfg.RateLimitStore == nil {
		cfg.Logger.Warn().Msg("rate limiting enabled without a store, requests are not throttled")

		return nil
	}

	rateLimiter, err := middleware.ThrottledRateLimiting(cfg.Config.ThrottledRateLimiting, cfg.RateLimitStore, cfg.Logger)
	if err != nil {
		return fmt.Errorf("creating rate limiter: %w", err)
	}

	router.Use(rateLimiter)
	cfg.Logger.Info().
		Uint("requests_per_second", cfg.Config.ThrottledRateLimiting.RequestsPerSecond).
		Uint("burst_size", cfg.Config.ThrottledRateLimiting.BurstSize).
		Msg("rate limiting enabled")

	return nil
}
