package controllers

import (
	"context"
	"strings"

	"artfolio/artfolio/live"
	"artfolio/artfolio/sources/models"
	"artfolio/artfolio/sources/store"
	"artfolio/artfolio/utils/logging"

	"go.uber.org/zap"
)

const defaultPortfolioTitle = "My Portfolio"

type ProfileInput struct {
	Name     string
	Bio      string
	Website  string
	Slug     *string
	IsPublic *bool
}

type ProfileResult struct {
	User      *models.User      `json:"user"`
	Portfolio *models.Portfolio `json:"portfolio"`
}

type ProfileController struct {
	store   store.Store
	uploads *UploadController
	live    live.Publisher
}

func NewProfileController(s store.Store, uploads *UploadController, pub live.Publisher) *ProfileController {
	if pub == nil {
		pub = live.Nop{}
	}
	return &ProfileController{store: s, uploads: uploads, live: pub}
}

// UpdateUser applies a sparse update to the user row.
func (c *ProfileController) UpdateUser(ctx context.Context, userID string, upd models.UserUpdate) (*models.User, error) {
	if upd.Empty() {
		return nil, store.Invalid("UpdateUser", "no fields to update")
	}
	u, err := c.store.UpdateUser(ctx, userID, upd)
	if err != nil {
		return nil, fail("UpdateUser", err)
	}
	if u == nil {
		return nil, store.NotFound("UpdateUser", "user not found")
	}
	return u, nil
}

// SaveProfile writes the user's name and creates or updates their portfolio
// in one transaction. A slug conflict is retried once with a fresh slug.
func (c *ProfileController) SaveProfile(ctx context.Context, userID string, in ProfileInput) (*ProfileResult, error) {
	defer logging.LogDuration(ctx, "SaveProfile")()
	res, err := c.saveProfile(ctx, userID, in)
	if store.KindOf(err) == store.KindConflict {
		logging.AppLogger.Info("slug conflict on profile save, retrying", zap.String("user_id", userID))
		res, err = c.saveProfile(ctx, userID, in)
	}
	if err != nil {
		return nil, fail("SaveProfile", err)
	}
	c.live.Publish(userID, live.PortfolioUpdated, res.Portfolio)
	return res, nil
}

func (c *ProfileController) saveProfile(ctx context.Context, userID string, in ProfileInput) (*ProfileResult, error) {
	name := strings.TrimSpace(in.Name)
	var res ProfileResult
	err := c.store.WithTx(ctx, func(tx store.Store) error {
		user, err := tx.UpdateUser(ctx, userID, models.UserUpdate{FullName: &name})
		if err != nil {
			return err
		}
		if user == nil {
			return store.NotFound("SaveProfile", "user not found")
		}
		res.User = user

		existing, err := tx.GetPortfolioByUser(ctx, userID)
		if err != nil {
			return err
		}
		if existing == nil {
			base := name
			if in.Slug != nil && *in.Slug != "" {
				base = *in.Slug
			}
			s, err := generateUniqueSlug(ctx, tx, base)
			if err != nil {
				return err
			}
			title := name
			if title == "" {
				title = defaultPortfolioTitle
			}
			res.Portfolio, err = tx.CreatePortfolio(ctx, models.PortfolioInput{
				UserID:      userID,
				Title:       title,
				Description: optional(in.Bio),
				Website:     optional(in.Website),
				Slug:        &s,
				IsPublic:    in.IsPublic,
			})
			return err
		}

		upd := models.PortfolioUpdate{
			Description: strPtr(in.Bio),
			Website:     strPtr(in.Website),
			IsPublic:    in.IsPublic,
		}
		if name != "" {
			upd.Title = &name
		}
		if in.Slug != nil && *in.Slug != "" && (existing.Slug == nil || *existing.Slug != *in.Slug) {
			s, err := generateUniqueSlug(ctx, tx, *in.Slug)
			if err != nil {
				return err
			}
			upd.Slug = &s
		}
		res.Portfolio, err = tx.UpdatePortfolio(ctx, existing.ID, upd)
		return err
	})
	if err != nil {
		return nil, err
	}
	return &res, nil
}

// UpdateProfilePicture hosts the file and stores its URL on the user.
func (c *ProfileController) UpdateProfilePicture(ctx context.Context, userID string, file Upload) (*models.User, error) {
	defer logging.LogDuration(ctx, "UpdateProfilePicture")()
	url, err := c.uploads.Host(ctx, "avatars", userID, file)
	if err != nil {
		return nil, fail("UpdateProfilePicture", err)
	}
	return c.UpdateUser(ctx, userID, models.UserUpdate{ProfileImageURL: &url})
}
