package controllers

import (
	"context"
	"errors"
	"fmt"

	"artfolio/artfolio/live"
	"artfolio/artfolio/sources/models"
	"artfolio/artfolio/sources/store"
	"artfolio/artfolio/utils/authctx"
	"artfolio/artfolio/utils/logging"
	"artfolio/artfolio/utils/slug"
)

// MyPortfolioAlias resolves to the caller's own portfolio.
const MyPortfolioAlias = "my-portfolio"

// PortfolioController is the data-access layer for users, portfolios and
// images. Lookups that find nothing return (nil, nil).
type PortfolioController struct {
	store store.Store
	live  live.Publisher
}

func NewPortfolioController(s store.Store, pub live.Publisher) *PortfolioController {
	if pub == nil {
		pub = live.Nop{}
	}
	return &PortfolioController{store: s, live: pub}
}

func (c *PortfolioController) GetUserProfile(ctx context.Context, userID string) (*models.User, error) {
	defer logging.LogDuration(ctx, "GetUserProfile")()
	u, err := c.store.GetUser(ctx, userID)
	return u, fail("GetUserProfile", err)
}

func (c *PortfolioController) GetPortfolioBySlug(ctx context.Context, s string) (*models.Portfolio, error) {
	p, err := c.store.GetPortfolioBySlug(ctx, s)
	return p, fail("GetPortfolioBySlug", err)
}

func (c *PortfolioController) GetPortfolioByID(ctx context.Context, id string) (*models.Portfolio, error) {
	p, err := c.store.GetPortfolio(ctx, id)
	return p, fail("GetPortfolioByID", err)
}

// GetUserPortfolio returns the oldest portfolio owned by userID.
func (c *PortfolioController) GetUserPortfolio(ctx context.Context, userID string) (*models.Portfolio, error) {
	p, err := c.store.GetPortfolioByUser(ctx, userID)
	return p, fail("GetUserPortfolio", err)
}

func (c *PortfolioController) CreatePortfolio(ctx context.Context, in models.PortfolioInput) (*models.Portfolio, error) {
	defer logging.LogDuration(ctx, "CreatePortfolio")()
	if in.UserID == "" {
		return nil, store.Invalid("CreatePortfolio", "user_id is required")
	}
	p, err := c.store.CreatePortfolio(ctx, in)
	if err != nil {
		return nil, fail("CreatePortfolio", err)
	}
	c.live.Publish(p.UserID, live.PortfolioUpdated, p)
	return p, nil
}

// UpdatePortfolio changes only the fields set in upd. An empty update
// returns the current row.
func (c *PortfolioController) UpdatePortfolio(ctx context.Context, id string, upd models.PortfolioUpdate) (*models.Portfolio, error) {
	defer logging.LogDuration(ctx, "UpdatePortfolio")()
	p, err := c.store.UpdatePortfolio(ctx, id, upd)
	if err != nil {
		return nil, fail("UpdatePortfolio", err)
	}
	if p != nil && !upd.Empty() {
		c.live.Publish(p.UserID, live.PortfolioUpdated, p)
	}
	return p, nil
}

func (c *PortfolioController) GetImagesForPortfolio(ctx context.Context, portfolioID string) ([]models.Image, error) {
	imgs, err := c.store.ListImagesByPortfolio(ctx, portfolioID)
	if err != nil {
		return nil, fail("GetImagesForPortfolio", err)
	}
	return imgs, nil
}

// VisibleImages lists a portfolio's images for currentUserID. Unknown
// portfolios and private ones owned by someone else both return (nil, nil).
func (c *PortfolioController) VisibleImages(ctx context.Context, portfolioID, currentUserID string) ([]models.Image, error) {
	p, err := c.GetPortfolioByID(ctx, portfolioID)
	if err != nil || p == nil || !visibleTo(p, currentUserID) {
		return nil, err
	}
	return c.GetImagesForPortfolio(ctx, p.ID)
}

func visibleTo(p *models.Portfolio, userID string) bool {
	return p.IsPublic || p.UserID == userID
}

func (c *PortfolioController) GetImagesForUser(ctx context.Context, userID string) ([]models.Image, error) {
	imgs, err := c.store.ListImagesByUser(ctx, userID)
	if err != nil {
		return nil, fail("GetImagesForUser", err)
	}
	return imgs, nil
}

// SaveImage stores one image. A missing user_id falls back to the
// authenticated user on ctx.
func (c *PortfolioController) SaveImage(ctx context.Context, in models.ImageInput) (*models.Image, error) {
	if in.ImageURL == "" {
		return nil, fail("SaveImage", store.Invalid("SaveImage", "image_url is required"))
	}
	if in.UserID == nil || *in.UserID == "" {
		if id, ok := authctx.UserIDFrom(ctx); ok {
			in.UserID = &id
		}
	}
	img, err := c.store.CreateImage(ctx, in)
	if err != nil {
		return nil, fail("SaveImage", err)
	}
	if img.UserID != nil {
		c.live.Publish(*img.UserID, live.ImageSaved, img)
	}
	return img, nil
}

// SaveImages stores each input independently. It returns exactly the rows
// that were stored and, if any failed, a joined error naming each failure.
func (c *PortfolioController) SaveImages(ctx context.Context, inputs []models.ImageInput) ([]models.Image, error) {
	defer logging.LogDuration(ctx, "SaveImages")()
	saved := []models.Image{}
	var errs []error
	for i, in := range inputs {
		img, err := c.SaveImage(ctx, in)
		if err != nil {
			errs = append(errs, fmt.Errorf("image %d: %w", i, err))
			continue
		}
		saved = append(saved, *img)
	}
	return saved, errors.Join(errs...)
}

// DeleteImage removes the image. Missing ids succeed.
func (c *PortfolioController) DeleteImage(ctx context.Context, imageID string) error {
	if err := c.store.DeleteImage(ctx, imageID); err != nil {
		return fail("DeleteImage", err)
	}
	if userID, ok := authctx.UserIDFrom(ctx); ok {
		c.live.Publish(userID, live.ImageDeleted, map[string]string{"id": imageID})
	}
	return nil
}

// DeleteUserImage removes imageID only when userID owns it and returns the
// removed row. Missing or foreign ids return (nil, nil).
func (c *PortfolioController) DeleteUserImage(ctx context.Context, userID, imageID string) (*models.Image, error) {
	img, err := c.store.DeleteUserImage(ctx, userID, imageID)
	if err != nil {
		return nil, fail("DeleteUserImage", err)
	}
	if img != nil {
		c.live.Publish(userID, live.ImageDeleted, map[string]string{"id": imageID})
	}
	return img, nil
}

// GenerateUniqueSlug normalizes base and, if that slug is taken, appends a
// random suffix. The suffixed value is not checked again.
func (c *PortfolioController) GenerateUniqueSlug(ctx context.Context, base string) (string, error) {
	return generateUniqueSlug(ctx, c.store, base)
}

func generateUniqueSlug(ctx context.Context, st store.Store, base string) (string, error) {
	candidate := slug.Normalize(base)
	taken, err := st.SlugExists(ctx, candidate)
	if err != nil {
		return "", fail("GenerateUniqueSlug", err)
	}
	if !taken {
		return candidate, nil
	}
	return slug.WithSuffix(candidate), nil
}

// ResolvePortfolio looks ref up as a slug, then as an id, then as the
// my-portfolio alias for currentUserID.
func (c *PortfolioController) ResolvePortfolio(ctx context.Context, ref, currentUserID string) (*models.Portfolio, error) {
	if ref == "" {
		return nil, nil
	}
	p, err := c.GetPortfolioBySlug(ctx, ref)
	if err != nil || p != nil {
		return p, err
	}
	p, err = c.GetPortfolioByID(ctx, ref)
	if err != nil || p != nil {
		return p, err
	}
	if ref == MyPortfolioAlias && currentUserID != "" {
		return c.GetUserPortfolio(ctx, currentUserID)
	}
	return nil, nil
}

type PublicPortfolio struct {
	Portfolio *models.Portfolio `json:"portfolio"`
	Owner     *models.User      `json:"owner"`
	Images    []models.Image    `json:"images"`
	Events    EventList         `json:"events"`
}

// PublicPage assembles everything the portfolio page shows. Private
// portfolios are only visible to their owner.
func (c *PortfolioController) PublicPage(ctx context.Context, ref, currentUserID string) (*PublicPortfolio, error) {
	defer logging.LogDuration(ctx, "PublicPage")()
	p, err := c.ResolvePortfolio(ctx, ref, currentUserID)
	if err != nil || p == nil {
		return nil, err
	}
	if !visibleTo(p, currentUserID) {
		return nil, nil
	}
	owner, err := c.GetUserProfile(ctx, p.UserID)
	if err != nil {
		return nil, err
	}
	images, err := c.GetImagesForPortfolio(ctx, p.ID)
	if err != nil {
		return nil, err
	}
	events, err := c.store.ListEvents(ctx, p.UserID)
	if err != nil {
		return nil, fail("PublicPage", err)
	}
	return &PublicPortfolio{
		Portfolio: p,
		Owner:     owner,
		Images:    images,
		Events:    splitEvents(events, nowFunc()),
	}, nil
}

// DefaultPortfolioID is the id of userID's portfolio, or nil if none exists yet.
func (c *PortfolioController) DefaultPortfolioID(ctx context.Context, userID string) (*string, error) {
	p, err := c.GetUserPortfolio(ctx, userID)
	if err != nil || p == nil {
		return nil, err
	}
	return &p.ID, nil
}
