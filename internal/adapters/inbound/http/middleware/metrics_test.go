package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/architeacher/datatable/internal/adapters/inbound/http/middleware"
	"github.com/architeacher/datatable/internal/mocks"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
)

func TestMetricsMiddleware_LabelsRoutePattern(t *testing.T) {
	t.Parallel()

	client := &mocks.FakeMetricsClient{}

	r := chi.NewRouter()
	r.Use(middleware.NewMetricsMiddleware(client).Middleware)
	r.Get("/v1/tables/{table}/records", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusTeapot)
		_, _ = w.Write([]byte("short"))
	})

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/tables/posts/records?page=2", nil))

	require.Equal(t, http.StatusTeapot, rec.Code)
	require.Equal(t, 4, client.IncCallCount())

	recorded := map[string]any{}

	for i := range client.IncCallCount() {
		_, name, value, attrs := client.IncArgsForCall(i)
		recorded[name] = value

		set := attribute.NewSet(attrs...)

		path, ok := set.Value("http.path")
		require.True(t, ok)
		require.Equal(t, "/v1/tables/{table}/records", path.AsString())

		if name == middleware.MetricHTTPRequestTotal {
			status, ok := set.Value("http.status_code")
			require.True(t, ok)
			require.Equal(t, "418", status.AsString())
		}
	}

	require.Equal(t, int64(1), recorded[middleware.MetricHTTPRequestTotal])
	require.Equal(t, uint64(5), recorded[middleware.MetricHTTPResponseSize])
	require.Contains(t, recorded, middleware.MetricHTTPRequestDuration)
}

func TestMetricsMiddleware_UnmatchedRoute(t *testing.T) {
	t.Parallel()

	client := &mocks.FakeMetricsClient{}

	handler := middleware.NewMetricsMiddleware(client).Middleware(okHandler(`{}`))
	handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/anything/123", nil))

	_, _, _, attrs := client.IncArgsForCall(0)

	set := attribute.NewSet(attrs...)
	path, ok := set.Value("http.path")
	require.True(t, ok)
	require.Equal(t, "unmatched", path.AsString())
}
