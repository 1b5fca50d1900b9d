package models

import "time"

type User struct {
	ID              string    `json:"id" gorm:"type:varchar(64);primaryKey" db:"id"`
	FullName        *string   `json:"full_name" gorm:"type:varchar(255)" db:"full_name"`
	Username        *string   `json:"username" gorm:"type:varchar(255);uniqueIndex" db:"username"`
	Email           string    `json:"email" gorm:"type:varchar(255);not null;default:''" db:"email"`
	ProfileImageURL *string   `json:"profile_image_url" gorm:"type:varchar(1024)" db:"profile_image_url"`
	CreatedAt       time.Time `json:"created_at" gorm:"autoCreateTime" db:"created_at"`
}

func (User) TableName() string {
	return "users"
}

// UserUpdate is a sparse update. Nil fields are left alone, a pointer to ""
// clears the column.
type UserUpdate struct {
	FullName        *string `json:"full_name"`
	Username        *string `json:"username"`
	ProfileImageURL *string `json:"profile_image_url"`
}

func (u UserUpdate) Empty() bool {
	return u.FullName == nil && u.Username == nil && u.ProfileImageURL == nil
}
