package middleware

import (
	"net/http"

	"github.com/rs/cors"
)

// CORS answers preflight requests for the table API. A "*" origin allows any origin.
func CORS(allowedOrigins []string) func(http.Handler) http.Handler {
	c := cors.New(cors.Options{
		AllowedOrigins: allowedOrigins,
		AllowedMethods: []string{
			http.MethodGet, http.MethodHead, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions,
		},
		AllowedHeaders: []string{
			"Authorization", "Content-Type", RequestIDHeader, CorrelationIDHeader,
			"If-None-Match", "Idempotency-Key", "traceparent", "tracestate",
		},
		ExposedHeaders: []string{
			RequestIDHeader, CorrelationIDHeader, "ETag", "Location", "Cache-Status",
			RateLimitLimitHeader, RateLimitRemainingHeader, RateLimitResetHeader, "Content-Disposition",
		},
		MaxAge: 86400,
	})

	return c.Handler
}
