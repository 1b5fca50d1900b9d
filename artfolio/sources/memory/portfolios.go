package memory

import (
	"context"

	"artfolio/artfolio/sources/models"
	"artfolio/artfolio/sources/store"
)

func (s *Store) GetPortfolio(ctx context.Context, id string) (*models.Portfolio, error) {
	if err := opError(ctx, "GetPortfolio"); err != nil {
		return nil, err
	}
	defer s.guard()()
	p, ok := s.d.portfolios[id]
	if !ok {
		return nil, nil
	}
	return &p, nil
}

func (s *Store) findSlug(slug string) (models.Portfolio, bool) {
	for _, p := range s.d.portfolios {
		if p.Slug != nil && *p.Slug == slug {
			return p, true
		}
	}
	return models.Portfolio{}, false
}

func (s *Store) GetPortfolioBySlug(ctx context.Context, slug string) (*models.Portfolio, error) {
	if err := opError(ctx, "GetPortfolioBySlug"); err != nil {
		return nil, err
	}
	defer s.guard()()
	p, ok := s.findSlug(slug)
	if !ok {
		return nil, nil
	}
	return &p, nil
}

func (s *Store) GetPortfolioByUser(ctx context.Context, userID string) (*models.Portfolio, error) {
	if err := opError(ctx, "GetPortfolioByUser"); err != nil {
		return nil, err
	}
	defer s.guard()()
	var first *models.Portfolio
	for _, p := range s.d.portfolios {
		if p.UserID != userID {
			continue
		}
		if first == nil || p.CreatedAt.Before(first.CreatedAt) {
			first = &p
		}
	}
	return first, nil
}

func (s *Store) SlugExists(ctx context.Context, slug string) (bool, error) {
	if err := opError(ctx, "SlugExists"); err != nil {
		return false, err
	}
	defer s.guard()()
	_, ok := s.findSlug(slug)
	return ok, nil
}

func (s *Store) CreatePortfolio(ctx context.Context, in models.PortfolioInput) (*models.Portfolio, error) {
	if err := opError(ctx, "CreatePortfolio"); err != nil {
		return nil, err
	}
	defer s.guard()()
	slug := nullable(in.Slug)
	if slug != nil {
		if _, taken := s.findSlug(*slug); taken {
			return nil, store.Conflict("CreatePortfolio", "slug already in use")
		}
	}
	isPublic := true
	if in.IsPublic != nil {
		isPublic = *in.IsPublic
	}
	now := s.stamp()
	p := models.Portfolio{
		ID:          newID(),
		UserID:      in.UserID,
		Title:       in.Title,
		Description: nullable(in.Description),
		Website:     nullable(in.Website),
		Slug:        slug,
		IsPublic:    isPublic,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	s.d.portfolios[p.ID] = p
	return &p, nil
}

func (s *Store) UpdatePortfolio(ctx context.Context, id string, upd models.PortfolioUpdate) (*models.Portfolio, error) {
	if err := opError(ctx, "UpdatePortfolio"); err != nil {
		return nil, err
	}
	defer s.guard()()
	p, ok := s.d.portfolios[id]
	if !ok {
		return nil, nil
	}
	if upd.Empty() {
		return &p, nil
	}
	if upd.Slug != nil && *upd.Slug != "" {
		if other, taken := s.findSlug(*upd.Slug); taken && other.ID != id {
			return nil, store.Conflict("UpdatePortfolio", "slug already in use")
		}
	}
	if upd.Title != nil {
		p.Title = *upd.Title
	}
	if upd.Description != nil {
		p.Description = nullable(upd.Description)
	}
	if upd.Website != nil {
		p.Website = nullable(upd.Website)
	}
	if upd.Slug != nil {
		p.Slug = nullable(upd.Slug)
	}
	if upd.IsPublic != nil {
		p.IsPublic = *upd.IsPublic
	}
	p.UpdatedAt = s.stamp()
	s.d.portfolios[id] = p
	return &p, nil
}
