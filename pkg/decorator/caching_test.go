package decorator_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/architeacher/datatable/pkg/decorator"
	"github.com/architeacher/datatable/pkg/logger"
	"github.com/stretchr/testify/require"
)

type testQuery struct {
	ID string
}

type testResult struct {
	Value string
}

type mockCache struct {
	mu     sync.Mutex
	data   map[string]testResult
	getCnt int
	setCnt int
	getErr error
	setErr error
}

func newMockCache() *mockCache {
	return &mockCache{
		data: make(map[string]testResult),
	}
}

func (m *mockCache) Get(_ context.Context, query testQuery) (testResult, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.getCnt++

	if m.getErr != nil {
		return testResult{}, false, m.getErr
	}

	result, ok := m.data[query.ID]

	return result, ok, nil
}

func (m *mockCache) Set(_ context.Context, query testQuery, result testResult, _ time.Duration) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.setCnt++

	if m.setErr != nil {
		return m.setErr
	}

	m.data[query.ID] = result

	return nil
}

type mockQueryHandler struct {
	mu        sync.Mutex
	callCount int
	result    testResult
	err       error
}

func (h *mockQueryHandler) Execute(_ context.Context, _ testQuery) (testResult, error) {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.callCount++

	return h.result, h.err
}

func (h *mockQueryHandler) CallCount() int {
	h.mu.Lock()
	defer h.mu.Unlock()

	return h.callCount
}

func newCached(handler *mockQueryHandler, cache *mockCache, enabled bool) decorator.QueryHandler[testQuery, testResult] {
	var c decorator.Cache[testQuery, testResult]
	if cache != nil {
		c = cache
	}

	return decorator.NewQueryCachingDecorator[testQuery, testResult](
		handler,
		c,
		decorator.CacheConfig{Enabled: enabled, TTL: time.Minute},
		logger.NewTestLogger(),
	)
}

func TestQueryCachingDecorator(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name           string
		seed           map[string]testResult
		nilCache       bool
		enabled        bool
		getErr         error
		setErr         error
		handlerErr     error
		expectedValue  string
		expectedErr    error
		expectedCalls  int
		expectedSets   int
		expectedStatus decorator.CacheStatus
	}{
		{
			name:           "hit returns cached value without calling handler",
			seed:           map[string]testResult{"q": {Value: "cached"}},
			enabled:        true,
			expectedValue:  "cached",
			expectedCalls:  0,
			expectedStatus: decorator.CacheStatusHit,
		},
		{
			name:           "miss calls handler and stores result",
			enabled:        true,
			expectedValue:  "fresh",
			expectedCalls:  1,
			expectedSets:   1,
			expectedStatus: decorator.CacheStatusMiss,
		},
		{
			name:           "disabled bypasses cache",
			seed:           map[string]testResult{"q": {Value: "cached"}},
			enabled:        false,
			expectedValue:  "fresh",
			expectedCalls:  1,
			expectedStatus: decorator.CacheStatusBypass,
		},
		{
			name:           "nil cache bypasses",
			nilCache:       true,
			enabled:        true,
			expectedValue:  "fresh",
			expectedCalls:  1,
			expectedStatus: decorator.CacheStatusBypass,
		},
		{
			name:           "get error falls through to handler",
			enabled:        true,
			getErr:         errors.New("redis down"),
			expectedValue:  "fresh",
			expectedCalls:  1,
			expectedSets:   1,
			expectedStatus: decorator.CacheStatusMiss,
		},
		{
			name:           "set error is not surfaced",
			enabled:        true,
			setErr:         errors.New("redis down"),
			expectedValue:  "fresh",
			expectedCalls:  1,
			expectedSets:   1,
			expectedStatus: decorator.CacheStatusMiss,
		},
		{
			name:           "handler error is returned and not cached",
			enabled:        true,
			handlerErr:     errors.New("source failed"),
			expectedErr:    errors.New("source failed"),
			expectedCalls:  1,
			expectedStatus: decorator.CacheStatusError,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			var cache *mockCache
			if !tc.nilCache {
				cache = newMockCache()
				cache.getErr = tc.getErr
				cache.setErr = tc.setErr

				for k, v := range tc.seed {
					cache.data[k] = v
				}
			}

			handler := &mockQueryHandler{result: testResult{Value: "fresh"}, err: tc.handlerErr}
			decorated := newCached(handler, cache, tc.enabled)

			ctx := decorator.WithCacheStatus(t.Context(), decorator.CacheStatusBypass)
			result, err := decorated.Execute(ctx, testQuery{ID: "q"})

			if tc.expectedErr != nil {
				require.EqualError(t, err, tc.expectedErr.Error())
			} else {
				require.NoError(t, err)
				require.Equal(t, tc.expectedValue, result.Value)
			}

			require.Equal(t, tc.expectedCalls, handler.CallCount())
			require.Equal(t, tc.expectedStatus, decorator.GetCacheStatus(ctx))

			if cache != nil {
				require.Equal(t, tc.expectedSets, cache.setCnt)
			}
		})
	}
}

func TestGetCacheStatus_DefaultsToBypass(t *testing.T) {
	t.Parallel()

	require.Equal(t, decorator.CacheStatusBypass, decorator.GetCacheStatus(context.Background()))
}
