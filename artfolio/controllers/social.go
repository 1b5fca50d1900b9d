package controllers

import (
	"context"
	"fmt"
	"slices"
	"strings"
	"time"

	"artfolio/artfolio/sources/models"
	"artfolio/artfolio/sources/store"
	"artfolio/artfolio/utils/logging"
	"artfolio/artfolio/utils/slug"

	"go.uber.org/zap"
)

type SocialStatus struct {
	Platform    string     `json:"platform"`
	Connected   bool       `json:"connected"`
	Username    string     `json:"username,omitempty"`
	ConnectedAt *time.Time `json:"connected_at,omitempty"`
	LastFetched *time.Time `json:"last_fetched,omitempty"`
}

type ConnectResult struct {
	Connection *models.SocialConnection `json:"connection"`
	Images     []models.Image           `json:"images"`
}

type SocialController struct {
	store      store.Store
	portfolios *PortfolioController
	importer   ImageImporter
}

func NewSocialController(s store.Store, portfolios *PortfolioController, importer ImageImporter) *SocialController {
	if importer == nil {
		importer = MockImporter{}
	}
	return &SocialController{store: s, portfolios: portfolios, importer: importer}
}

func checkPlatform(op, platform string) error {
	if !slices.Contains(models.Platforms, platform) {
		return store.Invalid(op, "unsupported platform "+platform)
	}
	return nil
}

// mockAccessToken looks like <platform>_<unix-ms>_<13 base36 chars>.
func mockAccessToken(platform string, now time.Time) string {
	return fmt.Sprintf("%s_%d_%s", platform, now.UnixMilli(), slug.Random(13))
}

// Connect links the account and imports its images right away. A failed
// import still leaves the account connected.
func (c *SocialController) Connect(ctx context.Context, userID, platform, username string) (*ConnectResult, error) {
	defer logging.LogDuration(ctx, "SocialConnect")()
	if err := checkPlatform("Connect", platform); err != nil {
		return nil, err
	}
	username = strings.TrimPrefix(strings.TrimSpace(username), "@")
	if username == "" {
		return nil, store.Invalid("Connect", "username is required")
	}
	now := nowFunc()
	conn, err := c.store.UpsertSocialConnection(ctx, &models.SocialConnection{
		UserID:      userID,
		Platform:    platform,
		Username:    username,
		AccessToken: mockAccessToken(platform, now),
		ConnectedAt: now,
	})
	if err != nil {
		return nil, fail("Connect", err)
	}
	logging.AppLogger.Info("social account connected",
		zap.String("user_id", userID),
		zap.String("platform", platform),
	)

	images, err := c.Refresh(ctx, userID, platform)
	return &ConnectResult{Connection: conn, Images: images}, err
}

// Refresh replaces the user's images from platform with freshly imported ones.
func (c *SocialController) Refresh(ctx context.Context, userID, platform string) ([]models.Image, error) {
	defer logging.LogDuration(ctx, "SocialRefresh")()
	if err := checkPlatform("Refresh", platform); err != nil {
		return nil, err
	}
	conn, err := c.store.GetSocialConnection(ctx, userID, platform)
	if err != nil {
		return nil, fail("Refresh", err)
	}
	if conn == nil {
		return nil, store.NotFound("Refresh", platform+" is not connected")
	}

	urls, err := c.importer.Fetch(ctx, platform, conn.Username)
	if err != nil {
		return nil, fail("Refresh", err)
	}
	portfolioID, err := c.portfolios.DefaultPortfolioID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if _, err := c.store.DeleteImagesBySource(ctx, userID, platform); err != nil {
		return nil, fail("Refresh", err)
	}

	inputs := make([]models.ImageInput, len(urls))
	for i, u := range urls {
		inputs[i] = models.ImageInput{ImageURL: u, PortfolioID: portfolioID, UserID: &userID, Source: platform}
	}
	saved, saveErr := c.portfolios.SaveImages(ctx, inputs)
	if err := c.store.TouchSocialConnection(ctx, userID, platform); err != nil {
		return saved, fail("Refresh", err)
	}
	return saved, saveErr
}

// List reports every supported platform, connected or not.
func (c *SocialController) List(ctx context.Context, userID string) ([]SocialStatus, error) {
	conns, err := c.store.ListSocialConnections(ctx, userID)
	if err != nil {
		return nil, fail("ListSocial", err)
	}
	byPlatform := map[string]models.SocialConnection{}
	for _, conn := range conns {
		byPlatform[conn.Platform] = conn
	}
	out := make([]SocialStatus, 0, len(models.Platforms))
	for _, p := range models.Platforms {
		st := SocialStatus{Platform: p}
		if conn, ok := byPlatform[p]; ok {
			connectedAt := conn.ConnectedAt
			st.Connected = true
			st.Username = conn.Username
			st.ConnectedAt = &connectedAt
			st.LastFetched = conn.LastFetched
		}
		out = append(out, st)
	}
	return out, nil
}
