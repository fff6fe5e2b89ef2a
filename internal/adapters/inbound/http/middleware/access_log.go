package middleware

import (
	"context"
	"net/http"
	"slices"
	"strings"
	"time"

	"github.com/architeacher/datatable/pkg/logger"
)

const skipAccessLogKey contextKey = "skip_access_log"

var defaultHealthEndpoints = []string{
	"/health",
	"/healthz",
	"/liveness",
	"/readiness",
	"/metrics",
}

// HealthCheckFilter marks probe traffic so the access log stays quiet.
type HealthCheckFilter struct {
	healthEndpoints []string
	logHealthChecks bool
}

func NewHealthCheckFilter(logHealthChecks bool) *HealthCheckFilter {
	return &HealthCheckFilter{
		healthEndpoints: defaultHealthEndpoints,
		logHealthChecks: logHealthChecks,
	}
}

func (h *HealthCheckFilter) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !h.logHealthChecks && h.isHealthEndpoint(r.URL.Path) {
			r = r.WithContext(context.WithValue(r.Context(), skipAccessLogKey, true))
		}

		next.ServeHTTP(w, r)
	})
}

func (h *HealthCheckFilter) isHealthEndpoint(path string) bool {
	return slices.Contains(h.healthEndpoints, strings.TrimSuffix(path, "/"))
}

func ShouldSkipAccessLog(ctx context.Context) bool {
	skip, ok := ctx.Value(skipAccessLogKey).(bool)

	return ok && skip
}

// AccessLogger logs one line per request at a level chosen by the status class.
func AccessLogger(log logger.Logger, includeQueryParams bool) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if ShouldSkipAccessLog(r.Context()) {
				next.ServeHTTP(w, r)

				return
			}

			start := time.Now()
			wrapped := NewFlushableResponseWriter(w)

			next.ServeHTTP(wrapped, r)

			reqLogger := log.WithContext(r.Context()).
				With().
				Str("component", "http").
				Logger()

			event := reqLogger.Info()
			if wrapped.StatusCode() >= http.StatusInternalServerError {
				event = reqLogger.Error()
			} else if wrapped.StatusCode() >= http.StatusBadRequest {
				event = reqLogger.Warn()
			}

			event.
				Str("method", r.Method).
				Str("path", r.URL.Path).
				Str("remote_addr", r.RemoteAddr).
				Str("user_agent", r.UserAgent()).
				Int("status", wrapped.StatusCode()).
				Uint64("bytes", wrapped.BytesWritten()).
				Int64("duration_ms", time.Since(start).Milliseconds())

			if includeQueryParams && r.URL.RawQuery != "" {
				event.Str("query", r.URL.RawQuery)
			}

			if cacheStatus := wrapped.Header().Get("Cache-Status"); cacheStatus != "" {
				event.Str("cache_status", cacheStatus)
			}

			event.Send()
		})
	}
}
