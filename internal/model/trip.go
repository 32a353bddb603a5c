package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"tripmate/internal/errors"
)

// RecommendationType classifies what kind of recommendations a trip collects.
type RecommendationType string

const (
	RecommendationTypeAttraction RecommendationType = "attraction"
	RecommendationTypeRestaurant RecommendationType = "restaurant"
	RecommendationTypeHotel      RecommendationType = "hotel"
)

// Trip represents a planned trip owned by a single user. Every trip carries
// exactly one invitation Code, created alongside it.
type Trip struct {
	ID                 uuid.UUID          `json:"id" gorm:"type:char(36);primaryKey"`
	UserID             uuid.UUID          `json:"user_id" gorm:"type:char(36);not null;index"`
	DestinationID      uuid.UUID          `json:"destination_id" gorm:"type:char(36);not null;index"`
	Start              *time.Time         `json:"start" gorm:"not null"`
	End                *time.Time         `json:"end" gorm:"not null"`
	Hidden             *bool              `json:"hidden" gorm:"not null;default:true"`
	RecommendationType RecommendationType `json:"recommendation_type" gorm:"type:varchar(20);not null;default:'attraction'"`
	CreatedAt          time.Time          `json:"created_at"`
	UpdatedAt          time.Time          `json:"updated_at"`

	// Relations
	User        User        `json:"-" gorm:"foreignKey:UserID"`
	Destination Destination `json:"destination,omitempty" gorm:"foreignKey:DestinationID"`
	Code        *Code       `json:"code,omitempty" gorm:"foreignKey:TripID"`
}

// NewTrip builds a trip applying the domain defaults: a nil hidden flag means
// the trip is private.
func NewTrip(ownerID, destinationID uuid.UUID, start, end *time.Time, hidden *bool, recType RecommendationType) *Trip {
	if hidden == nil {
		private := true
		hidden = &private
	}
	if recType == "" {
		recType = RecommendationTypeAttraction
	}
	return &Trip{
		UserID:             ownerID,
		DestinationID:      destinationID,
		Start:              start,
		End:                end,
		Hidden:             hidden,
		RecommendationType: recType,
	}
}

// Validate checks the trip date invariant. Both dates are required and the
// start date can never fall after the end date.
func (t *Trip) Validate() error {
	if t.Start == nil || t.End == nil {
		return errors.ErrMissingDates
	}
	if t.Start.After(*t.End) {
		return errors.ErrInvalidDates
	}
	return nil
}

// IsHidden reports the trip privacy flag, treating an unset flag as private.
func (t *Trip) IsHidden() bool {
	return t.Hidden == nil || *t.Hidden
}

// BeforeCreate sets UUID before creating the record.
func (t *Trip) BeforeCreate(tx *gorm.DB) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	return nil
}
