package memory

import (
	"context"
	"time"

	"artfolio/artfolio/sources/models"
	"artfolio/artfolio/sources/store"
)

func (s *Store) listImages(match func(models.Image) bool) []models.Image {
	out := []models.Image{}
	for _, img := range s.d.images {
		if match(img) {
			out = append(out, img)
		}
	}
	sortByCreated(out, func(i models.Image) time.Time { return i.CreatedAt })
	return out
}

func eq(p *string, v string) bool {
	return p != nil && *p == v
}

func (s *Store) ListImagesByPortfolio(ctx context.Context, portfolioID string) ([]models.Image, error) {
	if err := opError(ctx, "ListImagesByPortfolio"); err != nil {
		return nil, err
	}
	defer s.guard()()
	return s.listImages(func(i models.Image) bool { return eq(i.PortfolioID, portfolioID) }), nil
}

func (s *Store) ListImagesByUser(ctx context.Context, userID string) ([]models.Image, error) {
	if err := opError(ctx, "ListImagesByUser"); err != nil {
		return nil, err
	}
	defer s.guard()()
	return s.listImages(func(i models.Image) bool { return eq(i.UserID, userID) }), nil
}

func (s *Store) ListImagesByUserSource(ctx context.Context, userID, source string) ([]models.Image, error) {
	if err := opError(ctx, "ListImagesByUserSource"); err != nil {
		return nil, err
	}
	defer s.guard()()
	return s.listImages(func(i models.Image) bool { return eq(i.UserID, userID) && i.Source == source }), nil
}

func (s *Store) CreateImage(ctx context.Context, in models.ImageInput) (*models.Image, error) {
	if err := opError(ctx, "CreateImage"); err != nil {
		return nil, err
	}
	if in.ImageURL == "" {
		return nil, store.Invalid("CreateImage", "image_url is required")
	}
	defer s.guard()()
	source := in.Source
	if source == "" {
		source = models.SourceUpload
	}
	img := models.Image{
		ID:          newID(),
		ImageURL:    in.ImageURL,
		PortfolioID: nullable(in.PortfolioID),
		UserID:      nullable(in.UserID),
		Source:      source,
		CreatedAt:   s.stamp(),
	}
	s.d.images[img.ID] = img
	return &img, nil
}

func (s *Store) DeleteImage(ctx context.Context, id string) error {
	if err := opError(ctx, "DeleteImage"); err != nil {
		return err
	}
	defer s.guard()()
	delete(s.d.images, id)
	return nil
}

func (s *Store) DeleteUserImage(ctx context.Context, userID, id string) (*models.Image, error) {
	if err := opError(ctx, "DeleteUserImage"); err != nil {
		return nil, err
	}
	defer s.guard()()
	img, ok := s.d.images[id]
	if !ok || !eq(img.UserID, userID) {
		return nil, nil
	}
	delete(s.d.images, id)
	return &img, nil
}

func (s *Store) DeleteImagesBySource(ctx context.Context, userID, source string) (int64, error) {
	if err := opError(ctx, "DeleteImagesBySource"); err != nil {
		return 0, err
	}
	defer s.guard()()
	var n int64
	for id, img := range s.d.images {
		if eq(img.UserID, userID) && img.Source == source {
			delete(s.d.images, id)
			n++
		}
	}
	return n, nil
}
