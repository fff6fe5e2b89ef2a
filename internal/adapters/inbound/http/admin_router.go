package http

import (
	"net/http"

	"github.com/architeacher/datatable/internal/adapters/inbound/http/handlers/admin"
	"github.com/architeacher/datatable/internal/ports"
	"github.com/architeacher/datatable/internal/usecases"
	"github.com/architeacher/datatable/pkg/logger"
	"github.com/architeacher/datatable/pkg/metrics"
	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
)

type AdminRouterConfig struct {
	App           *usecases.WebApplication
	RecordsCache  ports.RecordsCache
	MetricsClient metrics.Client
	Logger        logger.Logger
}

// NewAdminRouter serves probes, metrics and cache maintenance on the internal port.
func NewAdminRouter(cfg AdminRouterConfig) http.Handler {
	router := chi.NewRouter()

	router.Use(chimiddleware.RealIP)
	router.Use(chimiddleware.Recoverer)

	if cfg.RecordsCache == nil {
		cfg.Logger.Warn().Msg("admin router: records cache not available, cache endpoints will return 503")
	}

	if cfg.MetricsClient != nil {
		router.Handle("/metrics", cfg.MetricsClient.Handler())
	}

	admin.NewAdminHandler(cfg.RecordsCache, cfg.App).Register(router)

	return router
}
