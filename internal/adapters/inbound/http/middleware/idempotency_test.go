package middleware_test

import (
	"bytes"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/architeacher/datatable/internal/adapters/inbound/http/middleware"
	"github.com/architeacher/datatable/internal/config"
	"github.com/architeacher/datatable/internal/mocks"
	"github.com/architeacher/datatable/pkg/idempotency"
	"github.com/architeacher/datatable/pkg/logger"
	"github.com/stretchr/testify/suite"
)

const (
	validKey    = "550e8400-e29b-41d4-a716-446655440000"
	sessionPath = "/v1/tables/posts/sessions/abc/sort"
	sortPayload = `{"field":"title"}`
)

type IdempotencyMiddlewareTestSuite struct {
	suite.Suite
	mockCache *mocks.FakeIdempotencyCache
	cfg       config.Idempotency
	calls     int
	seenKey   string
}

func TestIdempotencyMiddlewareSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(IdempotencyMiddlewareTestSuite))
}

func (s *IdempotencyMiddlewareTestSuite) SetupTest() {
	s.mockCache = new(mocks.FakeIdempotencyCache)
	s.calls = 0
	s.seenKey = ""
	s.cfg = config.Idempotency{
		Enabled:          true,
		CacheTTL:         24 * time.Hour,
		LockTTL:          30 * time.Second,
		RequiredMethods:  []string{http.MethodPost},
		HeaderName:       "Idempotency-Key",
		ReplayedHeader:   "Idempotent-Replayed",
		GracefulDegraded: true,
	}
}

func (s *IdempotencyMiddlewareTestSuite) serve(cfg config.Idempotency, method, key, body string, status int) *httptest.ResponseRecorder {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s.calls++

		payload, err := io.ReadAll(r.Body)
		s.Require().NoError(err)
		s.Require().Equal(body, string(payload))

		s.seenKey, _ = idempotency.FromContext(r.Context())

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(`{"data":{"sortField":"title"}}`))
	})

	req := httptest.NewRequest(method, sessionPath, strings.NewReader(body))
	if key != "" {
		req.Header.Set(cfg.HeaderName, key)
	}

	rec := httptest.NewRecorder()
	middleware.Idempotency(s.mockCache, cfg, logger.NewTestLogger())(next).ServeHTTP(rec, req)

	return rec
}

func (s *IdempotencyMiddlewareTestSuite) TestPassesThrough() {
	cases := []struct {
		name   string
		cfg    func(config.Idempotency) config.Idempotency
		method string
		key    string
	}{
		{
			name: "disabled",
			cfg: func(c config.Idempotency) config.Idempotency {
				c.Enabled = false

				return c
			},
			method: http.MethodPost,
			key:    validKey,
		},
		{name: "method not covered", method: http.MethodDelete, key: validKey},
		{name: "no key", method: http.MethodPost},
	}

	for _, tc := range cases {
		s.Run(tc.name, func() {
			s.SetupTest()

			cfg := s.cfg
			if tc.cfg != nil {
				cfg = tc.cfg(cfg)
			}

			rec := s.serve(cfg, tc.method, tc.key, sortPayload, http.StatusOK)

			s.Require().Equal(http.StatusOK, rec.Code)
			s.Require().Equal(1, s.calls)
			s.Require().Equal(0, s.mockCache.GetCallCount())
			s.Require().Empty(s.seenKey)
		})
	}
}

func (s *IdempotencyMiddlewareTestSuite) TestRejectsInvalidKey() {
	rec := s.serve(s.cfg, http.MethodPost, "short", sortPayload, http.StatusOK)

	s.Require().Equal(http.StatusBadRequest, rec.Code)
	s.Require().Contains(rec.Body.String(), "INVALID_IDEMPOTENCY_KEY")
	s.Require().Equal(0, s.calls)
}

func (s *IdempotencyMiddlewareTestSuite) TestExecutesAndStoresOnMiss() {
	s.mockCache.GetReturns(nil, nil)
	s.mockCache.SetLockReturns(true, nil)

	rec := s.serve(s.cfg, http.MethodPost, validKey, sortPayload, http.StatusOK)

	s.Require().Equal(http.StatusOK, rec.Code)
	s.Require().Equal(1, s.calls)
	s.Require().Equal(validKey, s.seenKey)
	s.Require().Equal(1, s.mockCache.SetCallCount())
	s.Require().Equal(1, s.mockCache.ReleaseLockCallCount())

	_, cacheKey, record, ttl := s.mockCache.SetArgsForCall(0)
	s.Require().Equal(idempotency.BuildCacheKey(http.MethodPost, sessionPath, validKey), cacheKey)
	s.Require().Equal(24*time.Hour, ttl)
	s.Require().Equal(http.StatusOK, record.StatusCode)
	s.Require().Equal(`{"data":{"sortField":"title"}}`, string(record.Body))
	s.Require().Equal(idempotency.Fingerprint([]byte(sortPayload)), record.Fingerprint)
	s.Require().Equal("application/json", record.Headers.Get("Content-Type"))
}

func (s *IdempotencyMiddlewareTestSuite) TestReplaysStoredResponse() {
	s.mockCache.GetReturns(&idempotency.Record{
		StatusCode:  http.StatusCreated,
		Headers:     http.Header{"Content-Type": []string{"application/json"}, "Location": []string{"/v1/tables/posts/sessions/abc"}},
		Body:        []byte(`{"data":{"id":"abc"}}`),
		Fingerprint: idempotency.Fingerprint([]byte(sortPayload)),
	}, nil)

	rec := s.serve(s.cfg, http.MethodPost, validKey, sortPayload, http.StatusOK)

	s.Require().Equal(http.StatusCreated, rec.Code)
	s.Require().Equal("true", rec.Header().Get("Idempotent-Replayed"))
	s.Require().Equal("/v1/tables/posts/sessions/abc", rec.Header().Get("Location"))
	s.Require().Equal(`{"data":{"id":"abc"}}`, rec.Body.String())
	s.Require().Equal(0, s.calls)
}

func (s *IdempotencyMiddlewareTestSuite) TestRejectsKeyReusedWithDifferentPayload() {
	s.mockCache.GetReturns(&idempotency.Record{
		StatusCode:  http.StatusOK,
		Fingerprint: idempotency.Fingerprint([]byte(`{"field":"body"}`)),
	}, nil)

	rec := s.serve(s.cfg, http.MethodPost, validKey, sortPayload, http.StatusOK)

	s.Require().Equal(http.StatusConflict, rec.Code)
	s.Require().Contains(rec.Body.String(), "IDEMPOTENCY_KEY_REUSED")
	s.Require().Equal(0, s.calls)
}

func (s *IdempotencyMiddlewareTestSuite) TestConflictWhileInFlight() {
	s.mockCache.GetReturns(nil, nil)
	s.mockCache.SetLockReturns(false, nil)

	rec := s.serve(s.cfg, http.MethodPost, validKey, sortPayload, http.StatusOK)

	s.Require().Equal(http.StatusConflict, rec.Code)
	s.Require().Contains(rec.Body.String(), "REQUEST_IN_PROGRESS")
	s.Require().Equal(0, s.calls)
	s.Require().Equal(0, s.mockCache.ReleaseLockCallCount())
}

func (s *IdempotencyMiddlewareTestSuite) TestDoesNotStoreFailures() {
	s.mockCache.GetReturns(nil, nil)
	s.mockCache.SetLockReturns(true, nil)

	rec := s.serve(s.cfg, http.MethodPost, validKey, sortPayload, http.StatusBadRequest)

	s.Require().Equal(http.StatusBadRequest, rec.Code)
	s.Require().Equal(0, s.mockCache.SetCallCount())
	s.Require().Equal(1, s.mockCache.ReleaseLockCallCount())
}

func (s *IdempotencyMiddlewareTestSuite) TestCacheFailure() {
	cases := []struct {
		name           string
		graceful       bool
		expectedStatus int
		expectedCalls  int
	}{
		{name: "graceful", graceful: true, expectedStatus: http.StatusOK, expectedCalls: 1},
		{name: "strict", graceful: false, expectedStatus: http.StatusServiceUnavailable, expectedCalls: 0},
	}

	for _, tc := range cases {
		s.Run(tc.name, func() {
			s.SetupTest()
			s.mockCache.GetReturns(nil, errors.New("keydb unavailable"))

			cfg := s.cfg
			cfg.GracefulDegraded = tc.graceful

			rec := s.serve(cfg, http.MethodPost, validKey, sortPayload, http.StatusOK)

			s.Require().Equal(tc.expectedStatus, rec.Code)
			s.Require().Equal(tc.expectedCalls, s.calls)
		})
	}
}

func (s *IdempotencyMiddlewareTestSuite) TestBodyIsRestoredForHandler() {
	s.mockCache.GetReturns(nil, nil)
	s.mockCache.SetLockReturns(true, nil)

	payload := bytes.Repeat([]byte("a"), 4096)
	rec := s.serve(s.cfg, http.MethodPost, validKey, string(payload), http.StatusOK)

	s.Require().Equal(http.StatusOK, rec.Code)
	s.Require().Equal(1, s.calls)
}
