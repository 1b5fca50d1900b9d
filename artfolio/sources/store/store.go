package store

import (
	"context"

	"artfolio/artfolio/sources/models"
)

// Store is the only way the service reaches durable storage. Single-row
// lookups return (nil, nil) when nothing matches; lists are ordered by
// created_at ascending and are never nil.
type Store interface {
	GetUser(ctx context.Context, id string) (*models.User, error)
	GetUserByUsername(ctx context.Context, username string) (*models.User, error)
	CreateUser(ctx context.Context, user *models.User) (*models.User, error)
	// UpdateUser applies a non-empty sparse update. Unknown id returns (nil, nil).
	UpdateUser(ctx context.Context, id string, upd models.UserUpdate) (*models.User, error)

	GetPortfolio(ctx context.Context, id string) (*models.Portfolio, error)
	GetPortfolioBySlug(ctx context.Context, slug string) (*models.Portfolio, error)
	// GetPortfolioByUser returns the owner's oldest portfolio.
	GetPortfolioByUser(ctx context.Context, userID string) (*models.Portfolio, error)
	SlugExists(ctx context.Context, slug string) (bool, error)
	CreatePortfolio(ctx context.Context, in models.PortfolioInput) (*models.Portfolio, error)
	UpdatePortfolio(ctx context.Context, id string, upd models.PortfolioUpdate) (*models.Portfolio, error)

	ListImagesByPortfolio(ctx context.Context, portfolioID string) ([]models.Image, error)
	ListImagesByUser(ctx context.Context, userID string) ([]models.Image, error)
	ListImagesByUserSource(ctx context.Context, userID, source string) ([]models.Image, error)
	CreateImage(ctx context.Context, in models.ImageInput) (*models.Image, error)
	// DeleteImage succeeds when the id does not exist.
	DeleteImage(ctx context.Context, id string) error
	// DeleteUserImage removes id only when userID owns it and returns the
	// removed row, or nil if nothing matched.
	DeleteUserImage(ctx context.Context, userID, id string) (*models.Image, error)
	DeleteImagesBySource(ctx context.Context, userID, source string) (int64, error)

	ListEvents(ctx context.Context, userID string) ([]models.Event, error)
	CreateEvent(ctx context.Context, ev *models.Event) (*models.Event, error)
	DeleteEvent(ctx context.Context, userID, id string) error

	ListSocialConnections(ctx context.Context, userID string) ([]models.SocialConnection, error)
	GetSocialConnection(ctx context.Context, userID, platform string) (*models.SocialConnection, error)
	UpsertSocialConnection(ctx context.Context, conn *models.SocialConnection) (*models.SocialConnection, error)
	TouchSocialConnection(ctx context.Context, userID, platform string) error

	// WithTx runs fn against a Store bound to a single transaction. fn's
	// error rolls the transaction back.
	WithTx(ctx context.Context, fn func(tx Store) error) error
	Close() error
}
