package psql

import (
	"context"
	"errors"
	"strings"
	"time"

	"artfolio/artfolio/sources/models"
	"artfolio/artfolio/sources/psql/dao"
	"artfolio/artfolio/sources/store"

	"gorm.io/gorm"
)

var _ store.Store = (*Store)(nil)

// Store implements store.Store on top of the gorm DAOs.
type Store struct {
	db         *gorm.DB
	close      func() error
	users      *dao.UserDAO
	portfolios *dao.PortfolioDAO
	images     *dao.ImageDAO
	events     *dao.EventDAO
	social     *dao.SocialConnectionDAO
}

func NewStore(database *Database) *Store {
	s := newStore(database.DB)
	s.close = database.Close
	return s
}

func newStore(db *gorm.DB) *Store {
	return &Store{
		db:         db,
		users:      dao.NewUserDAO(db),
		portfolios: dao.NewPortfolioDAO(db),
		images:     dao.NewImageDAO(db),
		events:     dao.NewEventDAO(db),
		social:     dao.NewSocialConnectionDAO(db),
	}
}

func wrap(op string, err error) error {
	if err == nil {
		return nil
	}
	switch {
	case errors.Is(err, gorm.ErrDuplicatedKey),
		strings.Contains(err.Error(), "UNIQUE constraint failed"):
		return store.E(store.KindConflict, op, err)
	case errors.Is(err, gorm.ErrRecordNotFound):
		return store.E(store.KindNotFound, op, err)
	case errors.Is(err, gorm.ErrForeignKeyViolated), errors.Is(err, gorm.ErrCheckConstraintViolated):
		return store.E(store.KindInvalid, op, err)
	}
	return store.Wrap(op, err)
}

// nilIfEmpty stores "" as NULL on insert, matching the other backends.
func nilIfEmpty(p *string) *string {
	if p == nil || *p == "" {
		return nil
	}
	return p
}

// nullable maps "" to NULL for sparse updates.
func nullable(p *string) any {
	if *p == "" {
		return nil
	}
	return *p
}

func (s *Store) GetUser(ctx context.Context, id string) (*models.User, error) {
	u, err := s.users.GetUserByID(ctx, id)
	return u, wrap("GetUser", err)
}

func (s *Store) GetUserByUsername(ctx context.Context, username string) (*models.User, error) {
	u, err := s.users.GetUserByUsername(ctx, username)
	return u, wrap("GetUserByUsername", err)
}

func (s *Store) CreateUser(ctx context.Context, user *models.User) (*models.User, error) {
	u, err := s.users.CreateUser(ctx, user)
	return u, wrap("CreateUser", err)
}

func (s *Store) UpdateUser(ctx context.Context, id string, upd models.UserUpdate) (*models.User, error) {
	fields := map[string]any{}
	if upd.FullName != nil {
		fields["full_name"] = nullable(upd.FullName)
	}
	if upd.Username != nil {
		fields["username"] = nullable(upd.Username)
	}
	if upd.ProfileImageURL != nil {
		fields["profile_image_url"] = nullable(upd.ProfileImageURL)
	}
	if len(fields) == 0 {
		return nil, store.Invalid("UpdateUser", "no fields to update")
	}
	u, err := s.users.UpdateUser(ctx, id, fields)
	return u, wrap("UpdateUser", err)
}

func (s *Store) GetPortfolio(ctx context.Context, id string) (*models.Portfolio, error) {
	p, err := s.portfolios.GetPortfolioByID(ctx, id)
	return p, wrap("GetPortfolio", err)
}

func (s *Store) GetPortfolioBySlug(ctx context.Context, slug string) (*models.Portfolio, error) {
	p, err := s.portfolios.GetPortfolioBySlug(ctx, slug)
	return p, wrap("GetPortfolioBySlug", err)
}

func (s *Store) GetPortfolioByUser(ctx context.Context, userID string) (*models.Portfolio, error) {
	p, err := s.portfolios.GetPortfolioByUser(ctx, userID)
	return p, wrap("GetPortfolioByUser", err)
}

func (s *Store) SlugExists(ctx context.Context, slug string) (bool, error) {
	ok, err := s.portfolios.SlugExists(ctx, slug)
	return ok, wrap("SlugExists", err)
}

func (s *Store) CreatePortfolio(ctx context.Context, in models.PortfolioInput) (*models.Portfolio, error) {
	p := &models.Portfolio{
		UserID:      in.UserID,
		Title:       in.Title,
		Description: nilIfEmpty(in.Description),
		Website:     nilIfEmpty(in.Website),
		Slug:        nilIfEmpty(in.Slug),
		IsPublic:    true,
	}
	if in.IsPublic != nil {
		p.IsPublic = *in.IsPublic
	}
	created, err := s.portfolios.CreatePortfolio(ctx, p)
	return created, wrap("CreatePortfolio", err)
}

func (s *Store) UpdatePortfolio(ctx context.Context, id string, upd models.PortfolioUpdate) (*models.Portfolio, error) {
	fields := map[string]any{}
	if upd.Title != nil {
		fields["title"] = *upd.Title
	}
	if upd.Description != nil {
		fields["description"] = nullable(upd.Description)
	}
	if upd.Website != nil {
		fields["website"] = nullable(upd.Website)
	}
	if upd.Slug != nil {
		fields["slug"] = nullable(upd.Slug)
	}
	if upd.IsPublic != nil {
		fields["is_public"] = *upd.IsPublic
	}
	if len(fields) > 0 {
		fields["updated_at"] = time.Now()
	}
	p, err := s.portfolios.UpdatePortfolio(ctx, id, fields)
	return p, wrap("UpdatePortfolio", err)
}

func (s *Store) ListImagesByPortfolio(ctx context.Context, portfolioID string) ([]models.Image, error) {
	imgs, err := s.images.GetImagesByPortfolio(ctx, portfolioID)
	return imgs, wrap("ListImagesByPortfolio", err)
}

func (s *Store) ListImagesByUser(ctx context.Context, userID string) ([]models.Image, error) {
	imgs, err := s.images.GetImagesByUser(ctx, userID)
	return imgs, wrap("ListImagesByUser", err)
}

func (s *Store) ListImagesByUserSource(ctx context.Context, userID, source string) ([]models.Image, error) {
	imgs, err := s.images.GetImagesByUserSource(ctx, userID, source)
	return imgs, wrap("ListImagesByUserSource", err)
}

func (s *Store) CreateImage(ctx context.Context, in models.ImageInput) (*models.Image, error) {
	if in.ImageURL == "" {
		return nil, store.Invalid("CreateImage", "image_url is required")
	}
	img := &models.Image{
		ImageURL:    in.ImageURL,
		PortfolioID: in.PortfolioID,
		UserID:      in.UserID,
		Source:      in.Source,
	}
	if img.Source == "" {
		img.Source = models.SourceUpload
	}
	created, err := s.images.CreateImage(ctx, img)
	return created, wrap("CreateImage", err)
}

func (s *Store) DeleteImage(ctx context.Context, id string) error {
	return wrap("DeleteImage", s.images.DeleteImage(ctx, id))
}

func (s *Store) DeleteUserImage(ctx context.Context, userID, id string) (*models.Image, error) {
	img, err := s.images.DeleteUserImage(ctx, userID, id)
	return img, wrap("DeleteUserImage", err)
}

func (s *Store) DeleteImagesBySource(ctx context.Context, userID, source string) (int64, error) {
	n, err := s.images.DeleteImagesBySource(ctx, userID, source)
	return n, wrap("DeleteImagesBySource", err)
}

func (s *Store) ListEvents(ctx context.Context, userID string) ([]models.Event, error) {
	evs, err := s.events.GetEventsByUser(ctx, userID)
	return evs, wrap("ListEvents", err)
}

func (s *Store) CreateEvent(ctx context.Context, ev *models.Event) (*models.Event, error) {
	e := *ev
	e.ID = ""
	created, err := s.events.CreateEvent(ctx, &e)
	return created, wrap("CreateEvent", err)
}

func (s *Store) DeleteEvent(ctx context.Context, userID, id string) error {
	return wrap("DeleteEvent", s.events.DeleteEvent(ctx, userID, id))
}

func (s *Store) ListSocialConnections(ctx context.Context, userID string) ([]models.SocialConnection, error) {
	conns, err := s.social.GetConnections(ctx, userID)
	return conns, wrap("ListSocialConnections", err)
}

func (s *Store) GetSocialConnection(ctx context.Context, userID, platform string) (*models.SocialConnection, error) {
	c, err := s.social.GetConnection(ctx, userID, platform)
	return c, wrap("GetSocialConnection", err)
}

func (s *Store) UpsertSocialConnection(ctx context.Context, conn *models.SocialConnection) (*models.SocialConnection, error) {
	c := *conn
	if c.ConnectedAt.IsZero() {
		c.ConnectedAt = time.Now()
	}
	saved, err := s.social.UpsertConnection(ctx, &c)
	return saved, wrap("UpsertSocialConnection", err)
}

func (s *Store) TouchSocialConnection(ctx context.Context, userID, platform string) error {
	return wrap("TouchSocialConnection", s.social.TouchConnection(ctx, userID, platform, time.Now()))
}

func (s *Store) WithTx(ctx context.Context, fn func(tx store.Store) error) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(newStore(tx))
	})
}

func (s *Store) Close() error {
	if s.close == nil {
		return nil
	}
	return s.close()
}
