package middlewares

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"artfolio/artfolio/config"
	"artfolio/artfolio/utils/authctx"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const secret = "test-secret"

func sign(t *testing.T, claims jwt.MapClaims, key string) string {
	t.Helper()
	tok, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(key))
	require.NoError(t, err)
	return tok
}

func echoUser(w http.ResponseWriter, r *http.Request) {
	id, _ := authctx.UserIDFrom(r.Context())
	w.Write([]byte(id))
}

func TestParseToken(t *testing.T) {
	good := sign(t, jwt.MapClaims{"user_id": "u1", "exp": time.Now().Add(time.Hour).Unix()}, secret)
	id, err := ParseToken(secret, good)
	require.NoError(t, err)
	assert.Equal(t, "u1", id)

	_, err = ParseToken("other", good)
	assert.ErrorIs(t, err, ErrInvalidToken)

	expired := sign(t, jwt.MapClaims{"user_id": "u1", "exp": time.Now().Add(-time.Hour).Unix()}, secret)
	_, err = ParseToken(secret, expired)
	assert.ErrorIs(t, err, ErrInvalidToken)

	numeric := sign(t, jwt.MapClaims{"user_id": 42}, secret)
	_, err = ParseToken(secret, numeric)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestAuthMiddleware(t *testing.T) {
	h := AuthMiddleware(config.Config{JWTSecret: secret})(http.HandlerFunc(echoUser))
	tok := sign(t, jwt.MapClaims{"user_id": "u1"}, secret)

	for name, tc := range map[string]struct {
		header string
		status int
	}{
		"missing":   {"", http.StatusUnauthorized},
		"malformed": {"Token " + tok, http.StatusUnauthorized},
		"valid":     {"Bearer " + tok, http.StatusOK},
	} {
		t.Run(name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tc.header != "" {
				req.Header.Set("Authorization", tc.header)
			}
			rr := httptest.NewRecorder()
			h.ServeHTTP(rr, req)
			assert.Equal(t, tc.status, rr.Code)
			if tc.status == http.StatusOK {
				assert.Equal(t, "u1", rr.Body.String())
			}
		})
	}
}

func TestOptionalAuth(t *testing.T) {
	h := OptionalAuth(config.Config{JWTSecret: secret})(http.HandlerFunc(echoUser))

	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Empty(t, rr.Body.String())

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer garbage")
	rr = httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	assert.Equal(t, http.StatusUnauthorized, rr.Code)
}
