// Package records holds the data sources that fetch a whole table and run the
// query pipeline locally.
package records

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/architeacher/datatable/internal/config"
	"github.com/architeacher/datatable/internal/domain/model"
	"github.com/architeacher/datatable/internal/ports"
	"github.com/architeacher/datatable/pkg/circuitbreaker"
	"github.com/architeacher/datatable/pkg/logger"
	"github.com/cenkalti/backoff/v5"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	otelTrace "go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/singleflight"
)

const postsPath = "/posts"

var (
	_ ports.RecordLoader[model.Post] = (*HTTPPostsLoader)(nil)
	_ ports.Pinger                   = (*HTTPPostsLoader)(nil)
)

type (
	// HTTPPostsLoader downloads the full posts collection from a
	// JSONPlaceholder compatible API.
	HTTPPostsLoader struct {
		baseURL string
		client  *http.Client
		backoff config.Backoff
		breaker *circuitbreaker.CircuitBreaker[[]model.Post]
		group   singleflight.Group
		logger  logger.Logger
	}

	statusError struct {
		code int
	}
)

func (e statusError) Error() string {
	return fmt.Sprintf("unexpected status %d", e.code)
}

func NewHTTPPostsLoader(
	cfg config.Source,
	backoffCfg config.Backoff,
	cbCfg config.CircuitBreaker,
	tracerProvider otelTrace.TracerProvider,
	log logger.Logger,
) *HTTPPostsLoader {
	log = log.Component("posts_http_loader")

	breaker := circuitbreaker.New[[]model.Post](circuitbreaker.Config{
		Name:             "posts-source",
		Enabled:          cbCfg.Enabled,
		MaxRequests:      cbCfg.MaxRequests,
		Interval:         cbCfg.Interval,
		Timeout:          cbCfg.Timeout,
		FailureThreshold: cbCfg.FailureThreshold,
		IsSuccessful:     countsAgainstBreaker,
		OnStateChange: func(name string, from, to circuitbreaker.State) {
			log.Warn().Str("breaker", name).Str("from", string(from)).Str("to", string(to)).Msg("circuit breaker state changed")
		},
	})

	return &HTTPPostsLoader{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		client: &http.Client{
			Timeout:   cfg.Timeout,
			Transport: otelhttp.NewTransport(http.DefaultTransport, otelhttp.WithTracerProvider(tracerProvider)),
		},
		backoff: backoffCfg,
		breaker: breaker,
		logger:  log,
	}
}

// LoadAll returns every post. Concurrent callers share one download; a caller
// leaving early does not cancel it for the others.
func (l *HTTPPostsLoader) LoadAll(ctx context.Context) ([]model.Post, error) {
	ch := l.group.DoChan(postsPath, func() (any, error) {
		return circuitbreaker.Execute(l.breaker, func() ([]model.Post, error) {
			return l.fetchWithRetry(context.WithoutCancel(ctx))
		})
	})

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case res := <-ch:
		if res.Err != nil {
			return nil, fmt.Errorf("%w: %w", model.ErrSourceUnavailable, res.Err)
		}

		return res.Val.([]model.Post), nil
	}
}

// Ping checks that the API answers for a single post.
func (l *HTTPPostsLoader) Ping(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, l.baseURL+postsPath+"/1", nil)
	if err != nil {
		return err
	}

	resp, err := l.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	_, _ = io.Copy(io.Discard, resp.Body)

	if resp.StatusCode != http.StatusOK {
		return statusError{code: resp.StatusCode}
	}

	return nil
}

func (l *HTTPPostsLoader) fetchWithRetry(ctx context.Context) ([]model.Post, error) {
	if l.backoff.MaxRetries == 0 {
		return l.fetch(ctx)
	}

	expBackoff := backoff.NewExponentialBackOff()
	expBackoff.InitialInterval = l.backoff.BaseDelay
	expBackoff.Multiplier = l.backoff.Multiplier
	expBackoff.RandomizationFactor = l.backoff.Jitter
	expBackoff.MaxInterval = l.backoff.MaxDelay

	operation := func() ([]model.Post, error) {
		posts, err := l.fetch(ctx)
		if err == nil {
			return posts, nil
		}

		if isRetryable(err) {
			ctxLogger := l.logger.WithContext(ctx)
			ctxLogger.Debug().Err(err).Msg("retrying posts download")

			return nil, err
		}

		return nil, backoff.Permanent(err)
	}

	return backoff.Retry(
		ctx,
		operation,
		backoff.WithMaxTries(l.backoff.MaxRetries+1),
		backoff.WithBackOff(expBackoff),
	)
}

func (l *HTTPPostsLoader) fetch(ctx context.Context) ([]model.Post, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, l.baseURL+postsPath, nil)
	if err != nil {
		return nil, fmt.Errorf("building request: %w", err)
	}

	req.Header.Set("Accept", "application/json")

	resp, err := l.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("requesting posts: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		_, _ = io.Copy(io.Discard, resp.Body)

		return nil, statusError{code: resp.StatusCode}
	}

	var posts []model.Post
	if err := json.NewDecoder(resp.Body).Decode(&posts); err != nil {
		return nil, fmt.Errorf("decoding posts: %w", err)
	}

	if posts == nil {
		posts = []model.Post{}
	}

	ctxLogger := l.logger.WithContext(ctx)
	ctxLogger.Debug().Int("count", len(posts)).Msg("posts downloaded")

	return posts, nil
}

// isRetryable is true for transport errors, 429 and 5xx responses.
func isRetryable(err error) bool {
	var se statusError
	if errors.As(err, &se) {
		return se.code == http.StatusTooManyRequests || se.code >= http.StatusInternalServerError
	}

	var syntaxErr *json.SyntaxError
	if errors.As(err, &syntaxErr) {
		return false
	}

	return !errors.Is(err, context.Canceled)
}

// countsAgainstBreaker ignores client errors, which a healthy upstream also returns.
func countsAgainstBreaker(err error) bool {
	if err == nil || errors.Is(err, context.Canceled) {
		return true
	}

	var se statusError
	if errors.As(err, &se) {
		return se.code < http.StatusInternalServerError && se.code != http.StatusTooManyRequests
	}

	return false
}
