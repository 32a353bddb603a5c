package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// User represents a registered traveller. Identity comes from Facebook login
// and is immutable once created.
type User struct {
	ID         uuid.UUID `json:"id" gorm:"type:char(36);primaryKey"`
	FacebookID string    `json:"fb_id" gorm:"uniqueIndex;size:64;not null"`
	Email      string    `json:"email" gorm:"uniqueIndex;size:255;not null"`
	Name       string    `json:"name" gorm:"size:255;not null"`
	PictureURL string    `json:"picture_url,omitempty" gorm:"size:512"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`

	// Relations
	Trips []Trip `json:"trips,omitempty" gorm:"foreignKey:UserID"`
}

// BeforeCreate sets UUID before creating the record.
func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	return nil
}
