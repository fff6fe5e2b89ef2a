package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/architeacher/datatable/internal/adapters/inbound/http/middleware"
	"github.com/architeacher/datatable/internal/config"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret-key-for-hs256-signing"

func signToken(t *testing.T, secret, issuer string, expiresIn time.Duration, method jwt.SigningMethod) string {
	t.Helper()

	claims := middleware.Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "user-1",
			Issuer:    issuer,
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(expiresIn)),
		},
		Scope: "tables:read",
	}

	token, err := jwt.NewWithClaims(method, claims).SignedString([]byte(secret))
	require.NoError(t, err)

	return token
}

func TestAuthentication(t *testing.T) {
	t.Parallel()

	cfg := config.Auth{
		Enabled:      true,
		SecretKey:    testSecret,
		ValidIssuers: []string{"datatable"},
		SkipPaths:    []string{"/v1/public"},
	}

	cases := []struct {
		name           string
		path           string
		authorization  func(t *testing.T) string
		expectedStatus int
		expectClaims   bool
	}{
		{
			name: "valid token",
			path: "/v1/tables",
			authorization: func(t *testing.T) string {
				return "Bearer " + signToken(t, testSecret, "datatable", time.Hour, jwt.SigningMethodHS256)
			},
			expectedStatus: http.StatusOK,
			expectClaims:   true,
		},
		{
			name:           "missing header",
			path:           "/v1/tables",
			authorization:  func(*testing.T) string { return "" },
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "wrong scheme",
			path:           "/v1/tables",
			authorization:  func(*testing.T) string { return "Basic dXNlcjpwYXNz" },
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name: "expired token",
			path: "/v1/tables",
			authorization: func(t *testing.T) string {
				return "Bearer " + signToken(t, testSecret, "datatable", -time.Minute, jwt.SigningMethodHS256)
			},
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name: "foreign signature",
			path: "/v1/tables",
			authorization: func(t *testing.T) string {
				return "Bearer " + signToken(t, "another-secret", "datatable", time.Hour, jwt.SigningMethodHS256)
			},
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name: "unexpected algorithm",
			path: "/v1/tables",
			authorization: func(t *testing.T) string {
				return "Bearer " + signToken(t, testSecret, "datatable", time.Hour, jwt.SigningMethodHS512)
			},
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name: "unknown issuer",
			path: "/v1/tables",
			authorization: func(t *testing.T) string {
				return "Bearer " + signToken(t, testSecret, "elsewhere", time.Hour, jwt.SigningMethodHS256)
			},
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "skipped path",
			path:           "/v1/public/tables",
			authorization:  func(*testing.T) string { return "" },
			expectedStatus: http.StatusOK,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			var claims *middleware.Claims

			handler := middleware.Authentication(cfg)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				claims = middleware.GetClaims(r.Context())
				w.WriteHeader(http.StatusOK)
			}))

			req := httptest.NewRequest(http.MethodGet, tc.path, nil)
			if header := tc.authorization(t); header != "" {
				req.Header.Set("Authorization", header)
			}

			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, req)

			require.Equal(t, tc.expectedStatus, rec.Code)

			if tc.expectClaims {
				require.NotNil(t, claims)
				require.Equal(t, "user-1", claims.Subject)
				require.Equal(t, "tables:read", claims.Scope)
			} else {
				require.Nil(t, claims)
			}

			if rec.Code == http.StatusUnauthorized {
				require.Contains(t, rec.Header().Get("WWW-Authenticate"), "Bearer")
			}
		})
	}
}

func TestAuthentication_Disabled(t *testing.T) {
	t.Parallel()

	rec := httptest.NewRecorder()
	middleware.Authentication(config.Auth{})(okHandler(`{}`)).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/tables", nil))

	require.Equal(t, http.StatusOK, rec.Code)
}

func TestParseBearerToken(t *testing.T) {
	t.Parallel()

	_, err := middleware.ParseBearerToken("", []byte(testSecret), nil)
	require.ErrorIs(t, err, middleware.ErrMissingToken)

	_, err = middleware.ParseBearerToken("Bearer ", []byte(testSecret), nil)
	require.ErrorIs(t, err, middleware.ErrMalformedAuth)

	claims, err := middleware.ParseBearerToken(
		"bearer "+signToken(t, testSecret, "anyone", time.Hour, jwt.SigningMethodHS256), []byte(testSecret), nil)
	require.NoError(t, err)
	require.Equal(t, "anyone", claims.Issuer)
}
