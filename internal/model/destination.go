package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Destination represents a place a trip travels to.
type Destination struct {
	ID        uuid.UUID       `json:"id" gorm:"type:char(36);primaryKey"`
	Name      string          `json:"name" gorm:"size:255;not null;index"`
	Country   string          `json:"country" gorm:"size:128"`
	Latitude  decimal.Decimal `json:"latitude" gorm:"type:decimal(10,7)"`
	Longitude decimal.Decimal `json:"longitude" gorm:"type:decimal(10,7)"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

// BeforeCreate sets UUID before creating the record.
func (d *Destination) BeforeCreate(tx *gorm.DB) error {
	if d.ID == uuid.Nil {
		d.ID = uuid.New()
	}
	return nil
}
