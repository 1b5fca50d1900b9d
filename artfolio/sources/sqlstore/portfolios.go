package sqlstore

import (
	"context"

	"artfolio/artfolio/sources/models"
	"artfolio/artfolio/sources/store"
)

const portfolioColumns = `id, user_id, title, description, website, slug, is_public, created_at, updated_at`

func (s *Store) portfolioWhere(ctx context.Context, op, where string, arg any) (*models.Portfolio, error) {
	var p models.Portfolio
	query := `SELECT ` + portfolioColumns + ` FROM portfolios WHERE ` + where + ` ORDER BY created_at ASC LIMIT 1`
	ok, err := s.getOne(ctx, &p, query, arg)
	if err != nil || !ok {
		return nil, store.Wrap(op, err)
	}
	return &p, nil
}

func (s *Store) GetPortfolio(ctx context.Context, id string) (*models.Portfolio, error) {
	return s.portfolioWhere(ctx, "GetPortfolio", "id = $1", id)
}

func (s *Store) GetPortfolioBySlug(ctx context.Context, slug string) (*models.Portfolio, error) {
	return s.portfolioWhere(ctx, "GetPortfolioBySlug", "slug = $1", slug)
}

func (s *Store) GetPortfolioByUser(ctx context.Context, userID string) (*models.Portfolio, error) {
	return s.portfolioWhere(ctx, "GetPortfolioByUser", "user_id = $1", userID)
}

func (s *Store) SlugExists(ctx context.Context, slug string) (bool, error) {
	var exists bool
	_, err := s.getOne(ctx, &exists, `SELECT EXISTS(SELECT 1 FROM portfolios WHERE slug = $1)`, slug)
	return exists, store.Wrap("SlugExists", err)
}

func (s *Store) CreatePortfolio(ctx context.Context, in models.PortfolioInput) (*models.Portfolio, error) {
	isPublic := true
	if in.IsPublic != nil {
		isPublic = *in.IsPublic
	}
	query := `INSERT INTO portfolios (id, user_id, title, description, website, slug, is_public) VALUES ($1, $2, $3, $4, $5, $6, $7) RETURNING ` + portfolioColumns
	var p models.Portfolio
	_, err := s.getOne(ctx, &p, query, models.NewID(), in.UserID, in.Title, nullString(in.Description), nullString(in.Website), nullString(in.Slug), isPublic)
	if err != nil {
		return nil, store.Wrap("CreatePortfolio", err)
	}
	return &p, nil
}

func (s *Store) UpdatePortfolio(ctx context.Context, id string, upd models.PortfolioUpdate) (*models.Portfolio, error) {
	var b setBuilder
	if upd.Title != nil {
		b.add("title", *upd.Title)
	}
	if upd.Description != nil {
		b.addNullable("description", upd.Description)
	}
	if upd.Website != nil {
		b.addNullable("website", upd.Website)
	}
	if upd.Slug != nil {
		b.addNullable("slug", upd.Slug)
	}
	if upd.IsPublic != nil {
		b.add("is_public", *upd.IsPublic)
	}
	if b.empty() {
		return s.GetPortfolio(ctx, id)
	}
	b.raw("updated_at = now()")
	query, args := b.build("portfolios", portfolioColumns, id)
	var p models.Portfolio
	ok, err := s.getOne(ctx, &p, query, args...)
	if err != nil || !ok {
		return nil, store.Wrap("UpdatePortfolio", err)
	}
	return &p, nil
}
