package dao

import (
	"context"

	"artfolio/artfolio/sources/models"

	"gorm.io/gorm"
)

type EventDAO struct {
	DB *gorm.DB
}

func NewEventDAO(db *gorm.DB) *EventDAO {
	return &EventDAO{DB: db}
}

func (dao *EventDAO) GetEventsByUser(ctx context.Context, userID string) ([]models.Event, error) {
	events := []models.Event{}
	err := dao.DB.WithContext(ctx).Where("user_id = ?", userID).Order("created_at ASC").Find(&events).Error
	if err != nil {
		return nil, err
	}
	return events, nil
}

func (dao *EventDAO) CreateEvent(ctx context.Context, ev *models.Event) (*models.Event, error) {
	if err := dao.DB.WithContext(ctx).Create(ev).Error; err != nil {
		return nil, err
	}
	return ev, nil
}

func (dao *EventDAO) DeleteEvent(ctx context.Context, userID, id string) error {
	return dao.DB.WithContext(ctx).Where("id = ? AND user_id = ?", id, userID).Delete(&models.Event{}).Error
}
