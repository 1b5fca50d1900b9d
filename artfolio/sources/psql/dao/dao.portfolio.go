package dao

import (
	"context"
	"errors"

	"artfolio/artfolio/sources/models"

	"gorm.io/gorm"
)

type PortfolioDAO struct {
	DB *gorm.DB
}

func NewPortfolioDAO(db *gorm.DB) *PortfolioDAO {
	return &PortfolioDAO{DB: db}
}

func (dao *PortfolioDAO) first(ctx context.Context, query string, args ...any) (*models.Portfolio, error) {
	var p models.Portfolio
	err := dao.DB.WithContext(ctx).Where(query, args...).Order("created_at ASC").First(&p).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (dao *PortfolioDAO) GetPortfolioByID(ctx context.Context, id string) (*models.Portfolio, error) {
	return dao.first(ctx, "id = ?", id)
}

func (dao *PortfolioDAO) GetPortfolioBySlug(ctx context.Context, slug string) (*models.Portfolio, error) {
	return dao.first(ctx, "slug = ?", slug)
}

func (dao *PortfolioDAO) GetPortfolioByUser(ctx context.Context, userID string) (*models.Portfolio, error) {
	return dao.first(ctx, "user_id = ?", userID)
}

func (dao *PortfolioDAO) SlugExists(ctx context.Context, slug string) (bool, error) {
	var n int64
	err := dao.DB.WithContext(ctx).Model(&models.Portfolio{}).Where("slug = ?", slug).Count(&n).Error
	return n > 0, err
}

func (dao *PortfolioDAO) CreatePortfolio(ctx context.Context, p *models.Portfolio) (*models.Portfolio, error) {
	if err := dao.DB.WithContext(ctx).Create(p).Error; err != nil {
		return nil, err
	}
	return p, nil
}

// UpdatePortfolio applies only the given columns and stamps updated_at.
// Unknown ids return (nil, nil).
func (dao *PortfolioDAO) UpdatePortfolio(ctx context.Context, id string, fields map[string]any) (*models.Portfolio, error) {
	if len(fields) == 0 {
		return dao.GetPortfolioByID(ctx, id)
	}
	res := dao.DB.WithContext(ctx).Model(&models.Portfolio{}).Where("id = ?", id).Updates(fields)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, nil
	}
	return dao.GetPortfolioByID(ctx, id)
}
