package models

import "time"

const (
	SourceUpload    = "upload"
	SourceInstagram = "instagram"
	SourceTwitter   = "twitter"
)

type Image struct {
	ID          string    `json:"id" gorm:"type:varchar(64);primaryKey" db:"id"`
	ImageURL    string    `json:"image_url" gorm:"type:varchar(1024);not null" db:"image_url"`
	PortfolioID *string   `json:"portfolio_id" gorm:"type:varchar(64);index" db:"portfolio_id"`
	UserID      *string   `json:"user_id" gorm:"type:varchar(64);index" db:"user_id"`
	Source      string    `json:"source" gorm:"type:varchar(32);not null;default:'upload'" db:"source"`
	CreatedAt   time.Time `json:"created_at" gorm:"autoCreateTime" db:"created_at"`
}

func (Image) TableName() string {
	return "images"
}

type ImageInput struct {
	ImageURL    string  `json:"image_url"`
	PortfolioID *string `json:"portfolio_id"`
	UserID      *string `json:"user_id"`
	Source      string  `json:"source"`
}
