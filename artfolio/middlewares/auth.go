package middlewares

import (
	"errors"
	"net/http"
	"strings"

	"artfolio/artfolio/config"
	"artfolio/artfolio/utils/authctx"

	"github.com/golang-jwt/jwt/v5"
)

var ErrInvalidToken = errors.New("invalid token")

// ParseToken validates an HS256 token and returns its user_id claim.
func ParseToken(secret, tokenStr string) (string, error) {
	token, err := jwt.Parse(tokenStr, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return []byte(secret), nil
	})
	if err != nil || !token.Valid {
		return "", ErrInvalidToken
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", ErrInvalidToken
	}
	userID, ok := claims["user_id"].(string)
	if !ok || userID == "" {
		return "", ErrInvalidToken
	}
	return userID, nil
}

// BearerToken returns the token of an "Authorization: Bearer <token>" header.
func BearerToken(r *http.Request) (string, bool) {
	parts := strings.Split(r.Header.Get("Authorization"), " ")
	if len(parts) != 2 || parts[0] != "Bearer" || parts[1] == "" {
		return "", false
	}
	return parts[1], true
}

func unauthorized(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	w.Write([]byte(`{"error":{"kind":"unauthorized","message":"unauthorized"}}`))
}

func AuthMiddleware(cfg config.Config) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			tokenStr, ok := BearerToken(r)
			if !ok {
				unauthorized(w)
				return
			}
			userID, err := ParseToken(cfg.JWTSecret, tokenStr)
			if err != nil {
				unauthorized(w)
				return
			}
			next.ServeHTTP(w, r.WithContext(authctx.WithUserID(r.Context(), userID)))
		})
	}
}

// OptionalAuth attaches the user when a valid token is sent and lets
// anonymous requests through. A bad token is still rejected.
func OptionalAuth(cfg config.Config) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			tokenStr, ok := BearerToken(r)
			if !ok {
				next.ServeHTTP(w, r)
				return
			}
			userID, err := ParseToken(cfg.JWTSecret, tokenStr)
			if err != nil {
				unauthorized(w)
				return
			}
			next.ServeHTTP(w, r.WithContext(authctx.WithUserID(r.Context(), userID)))
		})
	}
}
