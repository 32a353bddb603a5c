package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Code is the opaque invitation token tied to exactly one trip. Immutable
// once generated; lookups are case-sensitive exact matches on Value.
type Code struct {
	ID        uuid.UUID `json:"id" gorm:"type:char(36);primaryKey"`
	Value     string    `json:"value" gorm:"uniqueIndex;size:16;not null"`
	TripID    uuid.UUID `json:"trip_id" gorm:"type:char(36);uniqueIndex;not null"`
	CreatedAt time.Time `json:"created_at"`

	// Relations
	Trip Trip `json:"-" gorm:"foreignKey:TripID"`
}

// BeforeCreate sets UUID before creating the record.
func (c *Code) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}
