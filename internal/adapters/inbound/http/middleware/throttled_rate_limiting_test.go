package middleware_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/architeacher/datatable/internal/adapters/inbound/http/middleware"
	"github.com/architeacher/datatable/internal/config"
	"github.com/architeacher/datatable/pkg/logger"
	"github.com/stretchr/testify/suite"
	"github.com/throttled/throttled/v2/store/memstore"
)

type failingStore struct{}

func (failingStore) GetWithTime(context.Context, string) (int64, time.Time, error) {
	return 0, time.Time{}, errors.New("keydb unavailable")
}

func (failingStore) SetIfNotExistsWithTTL(context.Context, string, int64, time.Duration) (bool, error) {
	return false, errors.New("keydb unavailable")
}

func (failingStore) CompareAndSwapWithTTL(context.Context, string, int64, int64, time.Duration) (bool, error) {
	return false, errors.New("keydb unavailable")
}

type RateLimitingTestSuite struct {
	suite.Suite
	log    logger.Logger
	config config.ThrottledRateLimiting
}

func TestRateLimitingTestSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(RateLimitingTestSuite))
}

func (s *RateLimitingTestSuite) SetupTest() {
	s.log = logger.NewTestLogger()
	s.config = config.ThrottledRateLimiting{
		Enabled:           true,
		RequestsPerSecond: 1,
		BurstSize:         1,
		EnableIPLimiting:  true,
		SkipPaths:         []string{"/health"},
	}
}

func (s *RateLimitingTestSuite) serve(cfg config.ThrottledRateLimiting, store any, path, remoteAddr string) *httptest.ResponseRecorder {
	var (
		handler func(http.Handler) http.Handler
		err     error
	)

	switch st := store.(type) {
	case failingStore:
		handler, err = middleware.ThrottledRateLimiting(cfg, st, s.log)
	default:
		mem, memErr := memstore.NewCtx(100)
		s.Require().NoError(memErr)

		handler, err = middleware.ThrottledRateLimiting(cfg, mem, s.log)
	}

	s.Require().NoError(err)

	req := httptest.NewRequest(http.MethodGet, path, nil)
	req.RemoteAddr = remoteAddr

	rec := httptest.NewRecorder()
	handler(okHandler(`{}`)).ServeHTTP(rec, req)

	return rec
}

func (s *RateLimitingTestSuite) TestBlocksRequestsOverLimit() {
	store, err := memstore.NewCtx(100)
	s.Require().NoError(err)

	limiter, err := middleware.ThrottledRateLimiting(s.config, store, s.log)
	s.Require().NoError(err)

	handler := limiter(okHandler(`{}`))

	statuses := make([]int, 0, 3)

	for range 3 {
		req := httptest.NewRequest(http.MethodGet, "/v1/tables/posts/records", nil)
		req.RemoteAddr = "192.168.1.1:12345"

		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		statuses = append(statuses, rec.Code)

		if rec.Code == http.StatusTooManyRequests {
			s.Require().NotEmpty(rec.Header().Get(middleware.RetryAfterHeader))
			s.Require().Equal("0", rec.Header().Get(middleware.RateLimitRemainingHeader))
		}
	}

	s.Require().Equal([]int{http.StatusOK, http.StatusOK, http.StatusTooManyRequests}, statuses)

	other := httptest.NewRequest(http.MethodGet, "/v1/tables/posts/records", nil)
	other.RemoteAddr = "192.168.1.2:12345"

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, other)
	s.Require().Equal(http.StatusOK, rec.Code)
	s.Require().Equal("2", rec.Header().Get(middleware.RateLimitLimitHeader))
}

func (s *RateLimitingTestSuite) TestSkipPaths() {
	rec := s.serve(s.config, nil, "/health", "10.0.0.1:1")

	s.Require().Equal(http.StatusOK, rec.Code)
	s.Require().Empty(rec.Header().Get(middleware.RateLimitLimitHeader))
}

func (s *RateLimitingTestSuite) TestStoreFailure() {
	cases := []struct {
		name           string
		graceful       bool
		expectedStatus int
	}{
		{name: "graceful degradation lets requests through", graceful: true, expectedStatus: http.StatusOK},
		{name: "strict mode rejects", graceful: false, expectedStatus: http.StatusServiceUnavailable},
	}

	for _, tc := range cases {
		s.Run(tc.name, func() {
			cfg := s.config
			cfg.GracefulDegraded = tc.graceful

			rec := s.serve(cfg, failingStore{}, "/v1/tables", "10.0.0.1:1")
			s.Require().Equal(tc.expectedStatus, rec.Code)
		})
	}
}
