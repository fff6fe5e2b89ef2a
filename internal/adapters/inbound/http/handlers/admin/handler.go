// Package admin serves the internal endpoints: probes, the health report and
// records cache maintenance. It is meant for an internal port only.
package admin

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/architeacher/datatable/internal/domain/model"
	"github.com/architeacher/datatable/internal/ports"
	"github.com/architeacher/datatable/internal/usecases"
	"github.com/architeacher/datatable/internal/usecases/commands"
	"github.com/architeacher/datatable/internal/usecases/queries"
	"github.com/go-chi/chi/v5"
	"github.com/oapi-codegen/runtime"
)

const (
	contentTypeHeader = "Content-Type"
	applicationJSON   = "application/json"

	statusHealthy     = "healthy"
	statusUnhealthy   = "unhealthy"
	statusUnavailable = "unavailable"
)

type AdminHandler struct {
	cache ports.RecordsCache
	app   *usecases.WebApplication
}

func NewAdminHandler(cache ports.RecordsCache, app *usecases.WebApplication) *AdminHandler {
	return &AdminHandler{
		cache: cache,
		app:   app,
	}
}

// Register mounts the admin routes on r.
func (h *AdminHandler) Register(r chi.Router) {
	r.Get("/liveness", h.LivenessCheck)
	r.Get("/readiness", h.ReadinessCheck)
	r.Get("/health", h.HealthCheck)
	r.Get("/cache/health", h.GetCacheHealth)
	r.Delete("/cache/tables/{table}", h.wrapTable(h.InvalidateTableCache))
}

func (h *AdminHandler) LivenessCheck(w http.ResponseWriter, r *http.Request) {
	result, err := h.app.Queries.FetchLiveness.Execute(r.Context(), queries.FetchLivenessQuery{})
	if err != nil {
		writeJSONResponse(w, http.StatusServiceUnavailable, model.LivenessReport{
			Status:    model.HealthStatusDown,
			Timestamp: time.Now().UTC(),
		})

		return
	}

	writeJSONResponse(w, http.StatusOK, result)
}

// ReadinessCheck answers 503 only when the service is down; a degraded
// dependency such as the records cache keeps it ready.
func (h *AdminHandler) ReadinessCheck(w http.ResponseWriter, r *http.Request) {
	result, err := h.app.Queries.FetchReadiness.Execute(r.Context(), queries.FetchReadinessQuery{})
	if err != nil {
		writeJSONResponse(w, http.StatusServiceUnavailable, model.ReadinessReport{
			Status:    model.HealthStatusDown,
			Timestamp: time.Now().UTC(),
		})

		return
	}

	writeJSONResponse(w, statusCodeOf(result.Status), result)
}

func (h *AdminHandler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	result, err := h.app.Queries.FetchHealthReport.Execute(r.Context(), queries.FetchHealthReportQuery{})
	if err != nil {
		writeJSONResponse(w, http.StatusServiceUnavailable, map[string]any{
			"status":    model.HealthStatusDown,
			"timestamp": time.Now().UTC(),
		})

		return
	}

	writeJSONResponse(w, statusCodeOf(result.Status), result)
}

func (h *AdminHandler) GetCacheHealth(w http.ResponseWriter, r *http.Request) {
	if h.cache == nil {
		writeJSONResponse(w, http.StatusServiceUnavailable, map[string]string{
			"status": statusUnavailable,
			"error":  "cache not configured",
		})

		return
	}

	if !h.cache.IsHealthy(r.Context()) {
		writeJSONResponse(w, http.StatusServiceUnavailable, map[string]string{
			"status": statusUnhealthy,
		})

		return
	}

	writeJSONResponse(w, http.StatusOK, map[string]string{
		"status": statusHealthy,
	})
}

// InvalidateTableCache drops every cached page of table.
func (h *AdminHandler) InvalidateTableCache(w http.ResponseWriter, r *http.Request, table string) {
	if h.cache == nil {
		writeJSONResponse(w, http.StatusServiceUnavailable, map[string]string{
			"error": "cache not available",
		})

		return
	}

	result, err := h.app.Commands.InvalidateRecords.Handle(r.Context(), commands.InvalidateRecordsCommand{Table: table})
	if err != nil {
		writeJSONResponse(w, http.StatusInternalServerError, map[string]string{
			"error": "failed to invalidate table cache: " + err.Error(),
		})

		return
	}

	writeJSONResponse(w, http.StatusOK, map[string]any{
		"status":  "table cache purged",
		"table":   table,
		"deleted": result.Removed,
	})
}

func (h *AdminHandler) wrapTable(next func(http.ResponseWriter, *http.Request, string)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var table string

		err := runtime.BindStyledParameterWithOptions("simple", "table", chi.URLParam(r, "table"), &table, runtime.BindStyledParameterOptions{
			ParamLocation: runtime.ParamLocationPath,
			Required:      true,
		})
		if err != nil {
			writeJSONResponse(w, http.StatusBadRequest, map[string]string{
				"error": "invalid table: " + err.Error(),
			})

			return
		}

		next(w, r, table)
	}
}

func statusCodeOf(status model.HealthStatus) int {
	if status == model.HealthStatusDown {
		return http.StatusServiceUnavailable
	}

	return http.StatusOK
}

func writeJSONResponse(w http.ResponseWriter, status int, data any) {
	w.Header().Set(contentTypeHeader, applicationJSON)
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}
