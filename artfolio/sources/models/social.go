package models

import "time"

// Platforms that can be linked. Their names double as image sources.
var Platforms = []string{SourceInstagram, SourceTwitter}

type SocialConnection struct {
	UserID      string     `json:"user_id" gorm:"type:varchar(64);primaryKey" db:"user_id"`
	Platform    string     `json:"platform" gorm:"type:varchar(32);primaryKey" db:"platform"`
	Username    string     `json:"username" gorm:"type:varchar(255);not null" db:"username"`
	AccessToken string     `json:"-" gorm:"type:varchar(255);not null" db:"access_token"`
	ConnectedAt time.Time  `json:"connected_at" gorm:"not null" db:"connected_at"`
	LastFetched *time.Time `json:"last_fetched" db:"last_fetched"`
}

func (SocialConnection) TableName() string {
	return "social_connections"
}
