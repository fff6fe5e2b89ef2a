package middleware

import (
	"bytes"
	"io"
	"net/http"
	"slices"

	"github.com/architeacher/datatable/internal/config"
	"github.com/architeacher/datatable/internal/ports"
	"github.com/architeacher/datatable/pkg/idempotency"
	"github.com/architeacher/datatable/pkg/logger"
)

const maxFingerprintBody = 1 << 20

// Idempotency replays the stored response of a successful request that carried
// the same Idempotency-Key, so a retried session intent is applied once.
func Idempotency(cache ports.IdempotencyCache, cfg config.Idempotency, log logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !cfg.Enabled || !slices.Contains(cfg.RequiredMethods, r.Method) {
				next.ServeHTTP(w, r)

				return
			}

			key := r.Header.Get(cfg.HeaderName)
			if key == "" {
				next.ServeHTTP(w, r)

				return
			}

			if err := idempotency.Validate(key); err != nil {
				writeError(w, r, http.StatusBadRequest, "INVALID_IDEMPOTENCY_KEY", err.Error())

				return
			}

			body, err := io.ReadAll(io.LimitReader(r.Body, maxFingerprintBody))
			if err != nil {
				writeError(w, r, http.StatusBadRequest, "INVALID_BODY", "reading request body")

				return
			}

			r.Body = io.NopCloser(bytes.NewReader(body))
			fingerprint := idempotency.Fingerprint(body)

			ctx := r.Context()
			reqLogger := log.WithContext(ctx).With().Str("idempotency_key", key).Logger()
			cacheKey := idempotency.BuildCacheKey(r.Method, r.URL.Path, key)

			degrade := func(err error, msg string) {
				reqLogger.Warn().Err(err).Msg(msg)

				if cfg.GracefulDegraded {
					next.ServeHTTP(w, r)

					return
				}

				writeError(w, r, http.StatusServiceUnavailable, "CACHE_UNAVAILABLE",
					"idempotency service temporarily unavailable")
			}

			cached, err := cache.Get(ctx, cacheKey)
			if err != nil {
				degrade(err, "idempotency lookup failed")

				return
			}

			if cached != nil {
				if !cached.Matches(fingerprint) {
					writeError(w, r, http.StatusConflict, "IDEMPOTENCY_KEY_REUSED", idempotency.ErrKeyReused.Error())

					return
				}

				replay(w, cfg.ReplayedHeader, cached)

				return
			}

			acquired, err := cache.SetLock(ctx, cacheKey, cfg.LockTTL)
			if err != nil {
				degrade(err, "idempotency lock failed")

				return
			}

			if !acquired {
				writeError(w, r, http.StatusConflict, "REQUEST_IN_PROGRESS",
					"a request with this idempotency key is already being processed")

				return
			}

			defer func() {
				if releaseErr := cache.ReleaseLock(ctx, cacheKey); releaseErr != nil {
					reqLogger.Warn().Err(releaseErr).Msg("failed to release idempotency lock")
				}
			}()

			recorder := &responseRecorder{ResponseWriter: w, statusCode: http.StatusOK}
			next.ServeHTTP(recorder, r.WithContext(idempotency.WithKey(ctx, key)))

			if recorder.statusCode < http.StatusOK || recorder.statusCode >= http.StatusMultipleChoices {
				return
			}

			record := &idempotency.Record{
				StatusCode:  recorder.statusCode,
				Headers:     replayableHeaders(w.Header()),
				Body:        recorder.body.Bytes(),
				Fingerprint: fingerprint,
			}

			if err := cache.Set(ctx, cacheKey, record, cfg.CacheTTL); err != nil {
				reqLogger.Warn().Err(err).Msg("failed to store idempotent response")
			}
		})
	}
}

func replay(w http.ResponseWriter, replayedHeader string, record *idempotency.Record) {
	for key, values := range record.Headers {
		w.Header()[key] = slices.Clone(values)
	}

	w.Header().Set(replayedHeader, "true")
	w.WriteHeader(record.StatusCode)
	_, _ = w.Write(record.Body)
}

// replayableHeaders drops headers owned by the original exchange or by outer middleware.
func replayableHeaders(h http.Header) http.Header {
	out := h.Clone()

	for _, name := range []string{RequestIDHeader, CorrelationIDHeader, RateLimitLimitHeader,
		RateLimitRemainingHeader, RateLimitResetHeader, "Date", "Content-Length", "Content-Encoding", "Vary"} {
		out.Del(name)
	}

	return out
}

type responseRecorder struct {
	http.ResponseWriter
	statusCode  int
	wroteHeader bool
	body        bytes.Buffer
}

func (r *responseRecorder) WriteHeader(code int) {
	if r.wroteHeader {
		return
	}

	r.wroteHeader = true
	r.statusCode = code
	r.ResponseWriter.WriteHeader(code)
}

func (r *responseRecorder) Write(b []byte) (int, error) {
	if !r.wroteHeader {
		r.WriteHeader(http.StatusOK)
	}

	r.body.Write(b)

	return r.ResponseWriter.Write(b)
}
