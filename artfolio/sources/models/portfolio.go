package models

import "time"

type Portfolio struct {
	ID          string    `json:"id" gorm:"type:varchar(64);primaryKey" db:"id"`
	UserID      string    `json:"user_id" gorm:"type:varchar(64);not null;index" db:"user_id"`
	Title       string    `json:"title" gorm:"type:varchar(255);not null" db:"title"`
	Description *string   `json:"description" gorm:"type:text" db:"description"`
	Website     *string   `json:"website" gorm:"type:varchar(1024)" db:"website"`
	Slug        *string   `json:"slug" gorm:"type:varchar(255);uniqueIndex" db:"slug"`
	IsPublic    bool      `json:"is_public" gorm:"not null" db:"is_public"`
	CreatedAt   time.Time `json:"created_at" gorm:"autoCreateTime" db:"created_at"`
	UpdatedAt   time.Time `json:"updated_at" gorm:"autoUpdateTime" db:"updated_at"`
}

func (Portfolio) TableName() string {
	return "portfolios"
}

type PortfolioInput struct {
	UserID      string
	Title       string
	Description *string
	Website     *string
	Slug        *string
	// IsPublic defaults to true when nil.
	IsPublic *bool
}

// PortfolioUpdate follows the same nil/"" rules as UserUpdate. Title is not
// nullable, so an empty title is stored as "".
type PortfolioUpdate struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Website     *string `json:"website"`
	Slug        *string `json:"slug"`
	IsPublic    *bool   `json:"is_public"`
}

func (u PortfolioUpdate) Empty() bool {
	return u.Title == nil && u.Description == nil && u.Website == nil && u.Slug == nil && u.IsPublic == nil
}
