package sqlstore

import (
	"context"

	"artfolio/artfolio/sources/models"
	"artfolio/artfolio/sources/store"

	"github.com/jmoiron/sqlx"
)

const imageColumns = `id, image_url, portfolio_id, user_id, source, created_at`

func (s *Store) listImages(ctx context.Context, op, where string, args ...any) ([]models.Image, error) {
	images := []models.Image{}
	query := `SELECT ` + imageColumns + ` FROM images WHERE ` + where + ` ORDER BY created_at ASC`
	if err := sqlx.SelectContext(ctx, s.q, &images, query, args...); err != nil {
		return nil, store.Wrap(op, err)
	}
	return images, nil
}

func (s *Store) ListImagesByPortfolio(ctx context.Context, portfolioID string) ([]models.Image, error) {
	return s.listImages(ctx, "ListImagesByPortfolio", "portfolio_id = $1", portfolioID)
}

func (s *Store) ListImagesByUser(ctx context.Context, userID string) ([]models.Image, error) {
	return s.listImages(ctx, "ListImagesByUser", "user_id = $1", userID)
}

func (s *Store) ListImagesByUserSource(ctx context.Context, userID, source string) ([]models.Image, error) {
	return s.listImages(ctx, "ListImagesByUserSource", "user_id = $1 AND source = $2", userID, source)
}

func (s *Store) CreateImage(ctx context.Context, in models.ImageInput) (*models.Image, error) {
	if in.ImageURL == "" {
		return nil, store.Invalid("CreateImage", "image_url is required")
	}
	source := in.Source
	if source == "" {
		source = models.SourceUpload
	}
	query := `INSERT INTO images (id, image_url, portfolio_id, user_id, source) VALUES ($1, $2, $3, $4, $5) RETURNING ` + imageColumns
	var img models.Image
	_, err := s.getOne(ctx, &img, query, models.NewID(), in.ImageURL, nullString(in.PortfolioID), nullString(in.UserID), source)
	if err != nil {
		return nil, store.Wrap("CreateImage", err)
	}
	return &img, nil
}

func (s *Store) DeleteImage(ctx context.Context, id string) error {
	_, err := s.q.ExecContext(ctx, `DELETE FROM images WHERE id = $1`, id)
	return store.Wrap("DeleteImage", err)
}

func (s *Store) DeleteUserImage(ctx context.Context, userID, id string) (*models.Image, error) {
	var img models.Image
	found, err := s.getOne(ctx, &img, `DELETE FROM images WHERE id = $1 AND user_id = $2 RETURNING `+imageColumns, id, userID)
	if err != nil || !found {
		return nil, store.Wrap("DeleteUserImage", err)
	}
	return &img, nil
}

func (s *Store) DeleteImagesBySource(ctx context.Context, userID, source string) (int64, error) {
	res, err := s.q.ExecContext(ctx, `DELETE FROM images WHERE user_id = $1 AND source = $2`, userID, source)
	if err != nil {
		return 0, store.Wrap("DeleteImagesBySource", err)
	}
	n, err := res.RowsAffected()
	return n, store.Wrap("DeleteImagesBySource", err)
}
