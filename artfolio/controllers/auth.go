package controllers

import (
	"context"
	"strings"
	"time"

	"artfolio/artfolio/config"
	"artfolio/artfolio/sources/models"
	"artfolio/artfolio/sources/store"

	"github.com/golang-jwt/jwt/v5"
)

type AuthController struct {
	store store.Store
	cfg   config.Config
}

func NewAuthController(s store.Store, cfg config.Config) *AuthController {
	return &AuthController{
		store: s,
		cfg:   cfg,
	}
}

// Login signs a token for username, creating the user on first sight.
func (c *AuthController) Login(ctx context.Context, username string) (string, *models.User, error) {
	username = strings.TrimSpace(username)
	if username == "" {
		return "", nil, store.Invalid("Login", "username is required")
	}
	user, err := c.store.GetUserByUsername(ctx, username)
	if err != nil {
		return "", nil, fail("Login", err)
	}
	if user == nil {
		// Auto-create with dummy email
		user, err = c.store.CreateUser(ctx, &models.User{
			Username: strPtr(username),
			Email:    username + "@example.com",
		})
		if err != nil {
			return "", nil, fail("Login", err)
		}
	}
	token, err := c.IssueToken(user.ID)
	if err != nil {
		return "", nil, fail("Login", err)
	}
	return token, user, nil
}

func (c *AuthController) IssueToken(userID string) (string, error) {
	ttl := c.cfg.JWTTTL
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	claims := jwt.MapClaims{
		"user_id": userID,
		"exp":     time.Now().Add(ttl).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(c.cfg.JWTSecret))
}
