package http_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	adapterhttp "github.com/architeacher/datatable/internal/adapters/inbound/http"
	"github.com/architeacher/datatable/internal/domain/model"
	"github.com/architeacher/datatable/internal/mocks"
	"github.com/architeacher/datatable/internal/ports"
	"github.com/architeacher/datatable/internal/usecases"
	"github.com/architeacher/datatable/pkg/logger"
	"github.com/architeacher/datatable/pkg/metrics/noop"
	"github.com/stretchr/testify/require"
	otelNoop "go.opentelemetry.io/otel/trace/noop"
)

func newAdminRouter(health *mocks.FakeHealthChecker, cache ports.RecordsCache) http.Handler {
	app := usecases.NewWebApplication(
		&mocks.FakeTableService{},
		&mocks.FakeSessionService{},
		health,
		usecases.RecordsCaching{Store: cache},
		logger.NewTestLogger(),
		noop.NewMetricsClient(),
		otelNoop.NewTracerProvider(),
	)

	metricsClient := &mocks.FakeMetricsClient{}
	metricsClient.HandlerReturns(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("# metrics"))
	}))

	return adapterhttp.NewAdminRouter(adapterhttp.AdminRouterConfig{
		App:           app,
		RecordsCache:  cache,
		MetricsClient: metricsClient,
		Logger:        logger.NewTestLogger(),
	})
}

func TestAdminRouter_Probes(t *testing.T) {
	t.Parallel()

	now := time.Now().UTC()

	cases := []struct {
		name           string
		path           string
		prepare        func(hc *mocks.FakeHealthChecker)
		expectedStatus int
	}{
		{
			name: "liveness",
			path: "/liveness",
			prepare: func(hc *mocks.FakeHealthChecker) {
				hc.LivenessReturns(&model.LivenessReport{Status: model.HealthStatusOK, Timestamp: now}, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name: "readiness degraded stays ready",
			path: "/readiness",
			prepare: func(hc *mocks.FakeHealthChecker) {
				hc.ReadinessReturns(&model.ReadinessReport{Status: model.HealthStatusDegraded, Timestamp: now}, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name: "readiness down",
			path: "/readiness",
			prepare: func(hc *mocks.FakeHealthChecker) {
				hc.ReadinessReturns(&model.ReadinessReport{Status: model.HealthStatusDown, Timestamp: now}, nil)
			},
			expectedStatus: http.StatusServiceUnavailable,
		},
		{
			name: "health report failure",
			path: "/health",
			prepare: func(hc *mocks.FakeHealthChecker) {
				hc.HealthReturns(nil, errors.New("collecting report"))
			},
			expectedStatus: http.StatusServiceUnavailable,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			hc := &mocks.FakeHealthChecker{}
			tc.prepare(hc)

			rec := httptest.NewRecorder()
			newAdminRouter(hc, nil).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, tc.path, nil))

			require.Equal(t, tc.expectedStatus, rec.Code)
			require.Equal(t, "application/json", rec.Header().Get("Content-Type"))
		})
	}
}

func TestAdminRouter_Metrics(t *testing.T) {
	t.Parallel()

	rec := httptest.NewRecorder()
	newAdminRouter(&mocks.FakeHealthChecker{}, nil).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "# metrics", rec.Body.String())
}

func TestAdminRouter_InvalidateTableCache(t *testing.T) {
	t.Parallel()

	cache := &mocks.FakeRecordsCache{}
	cache.InvalidateTableReturns(4, nil)

	rec := httptest.NewRecorder()
	newAdminRouter(&mocks.FakeHealthChecker{}, cache).ServeHTTP(rec, httptest.NewRequest(http.MethodDelete, "/cache/tables/posts", nil))

	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Table   string `json:"table"`
		Deleted int64  `json:"deleted"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Equal(t, "posts", body.Table)
	require.EqualValues(t, 4, body.Deleted)

	_, name := cache.InvalidateTableArgsForCall(0)
	require.Equal(t, "posts", name)
}

func TestAdminRouter_CacheUnavailable(t *testing.T) {
	t.Parallel()

	router := newAdminRouter(&mocks.FakeHealthChecker{}, nil)

	for _, req := range []*http.Request{
		httptest.NewRequest(http.MethodDelete, "/cache/tables/posts", nil),
		httptest.NewRequest(http.MethodGet, "/cache/health", nil),
	} {
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		require.Equal(t, http.StatusServiceUnavailable, rec.Code)
	}
}
