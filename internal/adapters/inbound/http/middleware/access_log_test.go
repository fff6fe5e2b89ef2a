package middleware_test

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/architeacher/datatable/internal/adapters/inbound/http/middleware"
	"github.com/architeacher/datatable/pkg/logger"
	"github.com/stretchr/testify/require"
)

func TestAccessLogger(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name          string
		path          string
		status        int
		expectedLevel string
		expectSkipped bool
	}{
		{name: "success logs info", path: "/v1/tables/posts/records", status: http.StatusOK, expectedLevel: `"level":"info"`},
		{name: "client error logs warn", path: "/v1/tables/nope/records", status: http.StatusNotFound, expectedLevel: `"level":"warn"`},
		{name: "server error logs error", path: "/v1/tables/posts/records", status: http.StatusBadGateway, expectedLevel: `"level":"error"`},
		{name: "health probe is skipped", path: "/health", status: http.StatusOK, expectSkipped: true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			var buf bytes.Buffer

			log := logger.NewBufferedTestLogger(&buf)
			handler := middleware.NewHealthCheckFilter(false).Middleware(
				middleware.AccessLogger(log, true)(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
					w.WriteHeader(tc.status)
					_, _ = w.Write([]byte("ok"))
				})),
			)

			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, tc.path+"?page=2", nil))

			require.Equal(t, tc.status, rec.Code)

			if tc.expectSkipped {
				require.Empty(t, buf.String())

				return
			}

			require.Contains(t, buf.String(), tc.expectedLevel)
			require.Contains(t, buf.String(), `"query":"page=2"`)
			require.Contains(t, buf.String(), `"bytes":2`)
		})
	}
}

func TestFlushableResponseWriter(t *testing.T) {
	t.Parallel()

	rec := httptest.NewRecorder()
	w := middleware.NewFlushableResponseWriter(rec)

	w.WriteHeader(http.StatusAccepted)
	w.WriteHeader(http.StatusTeapot)
	_, err := w.Write([]byte("hello"))
	require.NoError(t, err)
	w.Flush()

	require.Equal(t, http.StatusAccepted, w.StatusCode())
	require.Equal(t, uint64(5), w.BytesWritten())
	require.True(t, rec.Flushed)
	require.Same(t, rec, w.Unwrap())
}
