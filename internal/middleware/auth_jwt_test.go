package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"app/internal/config"
	"app/internal/middleware"
)

const testSecret = "test_secret"

func signToken(t *testing.T, secret string, claims jwt.MapClaims) string {
	t.Helper()
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := tok.SignedString([]byte(secret))
	require.NoError(t, err)
	return signed
}

func validClaims(sub interface{}) jwt.MapClaims {
	return jwt.MapClaims{
		"sub": sub,
		"iat": time.Now().Unix(),
		"exp": time.Now().Add(time.Minute).Unix(),
	}
}

func runGuarded(t *testing.T, authz string) (*httptest.ResponseRecorder, int64, bool) {
	t.Helper()

	e := echo.New()
	cfg := config.Config{JWTSecret: testSecret}

	var gotID int64
	var gotOK bool
	h := middleware.AuthJWT(cfg)(func(c echo.Context) error {
		gotID, gotOK = middleware.UserIDFromContext(c)
		return c.NoContent(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/api/perfil", nil)
	if authz != "" {
		req.Header.Set("Authorization", authz)
	}
	rec := httptest.NewRecorder()

	require.NoError(t, h(e.NewContext(req, rec)))
	return rec, gotID, gotOK
}

func TestAuthJWT_ValidToken(t *testing.T) {
	token := signToken(t, testSecret, validClaims("42"))

	rec, id, ok := runGuarded(t, "Bearer "+token)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, ok)
	assert.Equal(t, int64(42), id)
}

func TestAuthJWT_NumericSubClaim(t *testing.T) {
	token := signToken(t, testSecret, validClaims(7))

	rec, id, _ := runGuarded(t, "Bearer "+token)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, int64(7), id)
}

func TestAuthJWT_Rejections(t *testing.T) {
	expired := validClaims("42")
	expired["exp"] = time.Now().Add(-time.Minute).Unix()

	tests := []struct {
		name  string
		authz string
	}{
		{"missing header", ""},
		{"not bearer", "Basic abc123"},
		{"empty token", "Bearer "},
		{"garbage token", "Bearer not.a.token"},
		{"wrong secret", "Bearer " + signToken(t, "other_secret", validClaims("42"))},
		{"expired", "Bearer " + signToken(t, testSecret, expired)},
		{"bad sub", "Bearer " + signToken(t, testSecret, validClaims("abc"))},
		{"zero sub", "Bearer " + signToken(t, testSecret, validClaims("0"))},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec, _, ok := runGuarded(t, tt.authz)

			assert.Equal(t, http.StatusUnauthorized, rec.Code)
			assert.False(t, ok)
			assert.Contains(t, rec.Body.String(), "No autorizado.")
		})
	}
}

func TestAuthJWT_RejectsUnexpectedAlg(t *testing.T) {
	// alg "none" style tokens must never pass
	tok := jwt.NewWithClaims(jwt.SigningMethodNone, validClaims("42"))
	signed, err := tok.SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	rec, _, ok := runGuarded(t, "Bearer "+signed)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.False(t, ok)
}
