package dao

import (
	"context"
	"errors"
	"time"

	"artfolio/artfolio/sources/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type SocialConnectionDAO struct {
	DB *gorm.DB
}

func NewSocialConnectionDAO(db *gorm.DB) *SocialConnectionDAO {
	return &SocialConnectionDAO{DB: db}
}

func (dao *SocialConnectionDAO) GetConnections(ctx context.Context, userID string) ([]models.SocialConnection, error) {
	conns := []models.SocialConnection{}
	err := dao.DB.WithContext(ctx).Where("user_id = ?", userID).Order("connected_at ASC").Find(&conns).Error
	if err != nil {
		return nil, err
	}
	return conns, nil
}

func (dao *SocialConnectionDAO) GetConnection(ctx context.Context, userID, platform string) (*models.SocialConnection, error) {
	var c models.SocialConnection
	err := dao.DB.WithContext(ctx).Where("user_id = ? AND platform = ?", userID, platform).First(&c).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// UpsertConnection overwrites an existing (user_id, platform) row.
func (dao *SocialConnectionDAO) UpsertConnection(ctx context.Context, c *models.SocialConnection) (*models.SocialConnection, error) {
	err := dao.DB.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}, {Name: "platform"}},
		DoUpdates: clause.AssignmentColumns([]string{"username", "access_token", "connected_at", "last_fetched"}),
	}).Create(c).Error
	if err != nil {
		return nil, err
	}
	return c, nil
}

func (dao *SocialConnectionDAO) TouchConnection(ctx context.Context, userID, platform string, at time.Time) error {
	return dao.DB.WithContext(ctx).Model(&models.SocialConnection{}).
		Where("user_id = ? AND platform = ?", userID, platform).
		Update("last_fetched", at).Error
}
