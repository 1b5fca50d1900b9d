package models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Ids are generated in Go so every backend produces the same format.

func NewID() string {
	return uuid.NewString()
}

func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == "" {
		u.ID = NewID()
	}
	return nil
}

func (p *Portfolio) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = NewID()
	}
	return nil
}

func (i *Image) BeforeCreate(tx *gorm.DB) error {
	if i.ID == "" {
		i.ID = NewID()
	}
	return nil
}

func (e *Event) BeforeCreate(tx *gorm.DB) error {
	if e.ID == "" {
		e.ID = NewID()
	}
	return nil
}
