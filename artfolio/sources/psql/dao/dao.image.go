package dao

import (
	"context"

	"artfolio/artfolio/sources/models"

	"gorm.io/gorm"
)

type ImageDAO struct {
	DB *gorm.DB
}

func NewImageDAO(db *gorm.DB) *ImageDAO {
	return &ImageDAO{DB: db}
}

func (dao *ImageDAO) list(ctx context.Context, query string, args ...any) ([]models.Image, error) {
	images := []models.Image{}
	err := dao.DB.WithContext(ctx).Where(query, args...).Order("created_at ASC").Find(&images).Error
	if err != nil {
		return nil, err
	}
	return images, nil
}

func (dao *ImageDAO) GetImagesByPortfolio(ctx context.Context, portfolioID string) ([]models.Image, error) {
	return dao.list(ctx, "portfolio_id = ?", portfolioID)
}

func (dao *ImageDAO) GetImagesByUser(ctx context.Context, userID string) ([]models.Image, error) {
	return dao.list(ctx, "user_id = ?", userID)
}

func (dao *ImageDAO) GetImagesByUserSource(ctx context.Context, userID, source string) ([]models.Image, error) {
	return dao.list(ctx, "user_id = ? AND source = ?", userID, source)
}

func (dao *ImageDAO) CreateImage(ctx context.Context, img *models.Image) (*models.Image, error) {
	if err := dao.DB.WithContext(ctx).Create(img).Error; err != nil {
		return nil, err
	}
	return img, nil
}

func (dao *ImageDAO) DeleteImage(ctx context.Context, id string) error {
	return dao.DB.WithContext(ctx).Where("id = ?", id).Delete(&models.Image{}).Error
}

// DeleteUserImage returns the removed row, or nil when userID owns no image with that id.
func (dao *ImageDAO) DeleteUserImage(ctx context.Context, userID, id string) (*models.Image, error) {
	var removed *models.Image
	err := dao.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var img models.Image
		res := tx.Where("id = ? AND user_id = ?", id, userID).Limit(1).Find(&img)
		if res.Error != nil || res.RowsAffected == 0 {
			return res.Error
		}
		if err := tx.Where("id = ? AND user_id = ?", id, userID).Delete(&models.Image{}).Error; err != nil {
			return err
		}
		removed = &img
		return nil
	})
	if err != nil {
		return nil, err
	}
	return removed, nil
}

func (dao *ImageDAO) DeleteImagesBySource(ctx context.Context, userID, source string) (int64, error) {
	res := dao.DB.WithContext(ctx).Where("user_id = ? AND source = ?", userID, source).Delete(&models.Image{})
	return res.RowsAffected, res.Error
}
