package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Recommender links an invited (or opted-in) user to a trip they may submit
// recommendations for. The composite unique index keeps at most one row per
// (trip, user) pair; inserts rely on ON CONFLICT DO NOTHING so concurrent
// identical invitations collapse into a single row.
type Recommender struct {
	ID        uuid.UUID `json:"id" gorm:"type:char(36);primaryKey"`
	TripID    uuid.UUID `json:"trip_id" gorm:"type:char(36);not null;uniqueIndex:idx_recommenders_trip_user"`
	UserID    uuid.UUID `json:"user_id" gorm:"type:char(36);not null;uniqueIndex:idx_recommenders_trip_user"`
	CodeID    uuid.UUID `json:"code_id" gorm:"type:char(36);not null;index"`
	Redeemed  bool      `json:"redeemed" gorm:"default:false"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// Relations
	Trip Trip `json:"-" gorm:"foreignKey:TripID"`
	User User `json:"-" gorm:"foreignKey:UserID"`
	Code Code `json:"-" gorm:"foreignKey:CodeID"`
}

// BeforeCreate sets UUID before creating the record.
func (r *Recommender) BeforeCreate(tx *gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	return nil
}
