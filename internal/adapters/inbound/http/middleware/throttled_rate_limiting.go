package middleware

import (
	"net"
	"net/http"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/architeacher/datatable/internal/config"
	"github.com/architeacher/datatable/pkg/logger"
	"github.com/throttled/throttled/v2"
)

const (
	RateLimitLimitHeader     = "RateLimit-Limit"
	RateLimitRemainingHeader = "RateLimit-Remaining"
	RateLimitResetHeader     = "RateLimit-Reset"
	RetryAfterHeader         = "Retry-After"

	globalRateLimitKey = "global"
)

// ThrottledRateLimiting applies a GCRA quota per client address, or one
// global quota when IP limiting is off.
func ThrottledRateLimiting(
	cfg config.ThrottledRateLimiting,
	store throttled.GCRAStoreCtx,
	log logger.Logger,
) (func(http.Handler) http.Handler, error) {
	quota := throttled.RateQuota{
		MaxRate:  throttled.PerSec(int(cfg.RequestsPerSecond)),
		MaxBurst: int(cfg.BurstSize),
	}

	rateLimiter, err := throttled.NewGCRARateLimiterCtx(store, quota)
	if err != nil {
		return nil, err
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if shouldSkipPath(r.URL.Path, cfg.SkipPaths) {
				next.ServeHTTP(w, r)

				return
			}

			limited, result, err := rateLimiter.RateLimitCtx(r.Context(), rateLimitKey(r, cfg), 1)
			if err != nil {
				ctxLogger := log.WithContext(r.Context())
				ctxLogger.Warn().Err(err).Msg("rate limiter store error")

				if cfg.GracefulDegraded {
					next.ServeHTTP(w, r)

					return
				}

				writeError(w, r, http.StatusServiceUnavailable, "RATE_LIMITER_UNAVAILABLE",
					"rate limiting service temporarily unavailable")

				return
			}

			setRateLimitHeaders(w, result)

			if limited {
				w.Header().Set(RetryAfterHeader, strconv.Itoa(int(result.RetryAfter.Round(time.Second).Seconds())))
				writeError(w, r, http.StatusTooManyRequests, "RATE_LIMIT_EXCEEDED",
					"too many requests, please try again later")

				return
			}

			next.ServeHTTP(w, r)
		})
	}, nil
}

func rateLimitKey(r *http.Request, cfg config.ThrottledRateLimiting) string {
	parts := make([]string, 0, 2)

	if cfg.EnableIPLimiting {
		parts = append(parts, "ip:"+clientIP(r.RemoteAddr))
	}

	if claims := GetClaims(r.Context()); claims != nil && claims.Subject != "" {
		parts = append(parts, "user:"+claims.Subject)
	}

	if len(parts) == 0 {
		return globalRateLimitKey
	}

	slices.Sort(parts)

	return strings.Join(parts, "|")
}

func clientIP(remoteAddr string) string {
	host, _, err := net.SplitHostPort(remoteAddr)
	if err != nil {
		return remoteAddr
	}

	return host
}

func setRateLimitHeaders(w http.ResponseWriter, result throttled.RateLimitResult) {
	w.Header().Set(RateLimitLimitHeader, strconv.Itoa(result.Limit))
	w.Header().Set(RateLimitRemainingHeader, strconv.Itoa(result.Remaining))
	w.Header().Set(RateLimitResetHeader, strconv.Itoa(int(result.ResetAfter.Round(time.Second).Seconds())))
}
