package middleware

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/getkin/kin-openapi/openapi3filter"
	"github.com/getkin/kin-openapi/routers"
	"github.com/getkin/kin-openapi/routers/gorillamux"
)

// RequestValidator checks every request against the OpenAPI document before
// it reaches a handler. Unknown routes fall through to the router's 404.
func RequestValidator(swagger *openapi3.T, options openapi3filter.Options) (func(http.Handler) http.Handler, error) {
	router, err := gorillamux.NewRouter(swagger)
	if err != nil {
		return nil, fmt.Errorf("building OpenAPI router: %w", err)
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Method == http.MethodOptions {
				next.ServeHTTP(w, r)

				return
			}

			route, pathParams, err := router.FindRoute(r)
			if err != nil {
				if errors.Is(err, routers.ErrMethodNotAllowed) {
					writeError(w, r, http.StatusMethodNotAllowed, "METHOD_NOT_ALLOWED", "method not allowed")

					return
				}

				next.ServeHTTP(w, r)

				return
			}

			input := &openapi3filter.RequestValidationInput{
				Request:    r,
				PathParams: pathParams,
				Route:      route,
				Options:    &options,
			}

			if err := openapi3filter.ValidateRequest(r.Context(), input); err != nil {
				status, code := http.StatusBadRequest, "VALIDATION_ERROR"

				var securityErr *openapi3filter.SecurityRequirementsError
				if errors.As(err, &securityErr) {
					status, code = http.StatusUnauthorized, "UNAUTHORIZED"
				}

				writeError(w, r, status, code, sanitizeErrorMessage(err.Error()))

				return
			}

			next.ServeHTTP(w, r)
		})
	}, nil
}

// sanitizeErrorMessage keeps the first line and drops the schema dump
// kin-openapi appends to validation errors.
func sanitizeErrorMessage(message string) string {
	message, _, _ = strings.Cut(message, "\n")

	return message
}
