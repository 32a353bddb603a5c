package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Recommendation is a place suggested by a recommender for a trip. Booking
// links are not stored; they are derived from the place identity at read time.
type Recommendation struct {
	ID                 uuid.UUID          `json:"id" gorm:"type:char(36);primaryKey"`
	RecommenderID      uuid.UUID          `json:"recommender_id" gorm:"type:char(36);not null;index"`
	TripID             uuid.UUID          `json:"trip_id" gorm:"type:char(36);not null;index"`
	PlaceName          string             `json:"place_name" gorm:"size:255;not null"`
	PlaceType          string             `json:"place_type" gorm:"size:64;not null"`
	PlaceLatitude      decimal.Decimal    `json:"place_latitude" gorm:"type:decimal(10,7)"`
	PlaceLongitude     decimal.Decimal    `json:"place_longitude" gorm:"type:decimal(10,7)"`
	Rating             string             `json:"rating" gorm:"size:32"`
	Description        string             `json:"description" gorm:"type:text"`
	Wishlisted         bool               `json:"wishlisted" gorm:"default:false"`
	RecommendationType RecommendationType `json:"recommendation_type" gorm:"type:varchar(20);not null;default:'attraction'"`
	CreatedAt          time.Time          `json:"created_at"`
	UpdatedAt          time.Time          `json:"updated_at"`

	// Relations
	Recommender Recommender `json:"-" gorm:"foreignKey:RecommenderID"`
	Trip        Trip        `json:"-" gorm:"foreignKey:TripID"`
}

// BeforeCreate sets UUID before creating the record.
func (r *Recommendation) BeforeCreate(tx *gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	return nil
}
