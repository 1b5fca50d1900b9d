package models

import (
	"encoding/json"
	"time"
)

const DateLayout = "2006-01-02"

var EventTypes = []string{"performance", "workshop", "exhibition", "other"}

type Event struct {
	ID          string    `json:"id" gorm:"type:varchar(64);primaryKey" db:"id"`
	UserID      string    `json:"user_id" gorm:"type:varchar(64);not null;index" db:"user_id"`
	Title       string    `json:"title" gorm:"type:varchar(255);not null" db:"title"`
	Date        time.Time `json:"-" gorm:"type:date;not null" db:"date"`
	Location    string    `json:"location" gorm:"type:varchar(255);not null" db:"location"`
	Description *string   `json:"description" gorm:"type:text" db:"description"`
	Type        string    `json:"type" gorm:"type:varchar(32);not null;default:'performance'" db:"type"`
	CreatedAt   time.Time `json:"created_at" gorm:"autoCreateTime" db:"created_at"`
}

func (Event) TableName() string {
	return "events"
}

// DateString renders the calendar date the way clients send it.
func (e Event) DateString() string {
	return e.Date.Format(DateLayout)
}

func (e Event) MarshalJSON() ([]byte, error) {
	type alias Event
	return json.Marshal(struct {
		alias
		Date string `json:"date"`
	}{alias(e), e.DateString()})
}
