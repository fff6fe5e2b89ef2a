package middleware

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"slices"
	"strings"

	"github.com/architeacher/datatable/internal/config"
	"github.com/getkin/kin-openapi/openapi3filter"
	"github.com/golang-jwt/jwt/v5"
)

const ClaimsKey contextKey = "claims"

var (
	ErrMissingToken  = errors.New("missing authorization header")
	ErrMalformedAuth = errors.New("invalid authorization header format")
	ErrInvalidIssuer = errors.New("token issuer is not accepted")
)

// Claims are the bearer token claims the API understands.
type Claims struct {
	jwt.RegisteredClaims
	Scope string `json:"scope,omitempty"`
}

// Authentication verifies HS256 bearer tokens and stores their claims on the
// request context. Paths under cfg.SkipPaths pass through unauthenticated.
func Authentication(cfg config.Auth) func(http.Handler) http.Handler {
	secret := []byte(cfg.SecretKey)

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !cfg.Enabled || shouldSkipPath(r.URL.Path, cfg.SkipPaths) {
				next.ServeHTTP(w, r)

				return
			}

			claims, err := ParseBearerToken(r.Header.Get("Authorization"), secret, cfg.ValidIssuers)
			if err != nil {
				w.Header().Set("WWW-Authenticate", `Bearer realm="datatable"`)
				writeError(w, r, http.StatusUnauthorized, "UNAUTHORIZED", err.Error())

				return
			}

			ctx := context.WithValue(r.Context(), ClaimsKey, claims)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// ParseBearerToken validates an "Authorization: Bearer" value. An empty
// issuers list accepts any issuer.
func ParseBearerToken(header string, secret []byte, issuers []string) (*Claims, error) {
	if header == "" {
		return nil, ErrMissingToken
	}

	scheme, raw, ok := strings.Cut(header, " ")
	if !ok || !strings.EqualFold(scheme, "bearer") || strings.TrimSpace(raw) == "" {
		return nil, ErrMalformedAuth
	}

	claims := &Claims{}

	_, err := jwt.ParseWithClaims(strings.TrimSpace(raw), claims, func(*jwt.Token) (any, error) {
		return secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithExpirationRequired())
	if err != nil {
		return nil, fmt.Errorf("invalid token: %w", err)
	}

	if len(issuers) > 0 && !slices.Contains(issuers, claims.Issuer) {
		return nil, ErrInvalidIssuer
	}

	return claims, nil
}

func GetClaims(ctx context.Context) *Claims {
	if claims, ok := ctx.Value(ClaimsKey).(*Claims); ok {
		return claims
	}

	return nil
}

// NewAuthenticationFunc satisfies the bearerAuth security scheme of the API
// document once Authentication has accepted the request.
func NewAuthenticationFunc(cfg config.Auth) openapi3filter.AuthenticationFunc {
	return func(ctx context.Context, input *openapi3filter.AuthenticationInput) error {
		if !cfg.Enabled || shouldSkipPath(input.RequestValidationInput.Request.URL.Path, cfg.SkipPaths) {
			return nil
		}

		if input.SecuritySchemeName != "bearerAuth" {
			return fmt.Errorf("unsupported security scheme: %s", input.SecuritySchemeName)
		}

		if GetClaims(ctx) == nil {
			return ErrMissingToken
		}

		return nil
	}
}
