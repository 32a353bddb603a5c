package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"tripmate/internal/model"
)

// TripRepository defines trip persistence operations.
type TripRepository interface {
	Create(ctx context.Context, trip *model.Trip) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Trip, error)
	ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]model.Trip, error)
	ListByOwnerFacebookIDs(ctx context.Context, facebookIDs []string) ([]model.Trip, error)
	WithTransaction(ctx context.Context, fn func(ctx context.Context, trips TripRepository, codes CodeRepository) error) error
}

type tripRepository struct {
	db *gorm.DB
}

// NewTripRepository builds a GORM-backed repository.
func NewTripRepository(db *gorm.DB) TripRepository {
	return &tripRepository{db: db}
}

func (r *tripRepository) Create(ctx context.Context, trip *model.Trip) error {
	return r.db.WithContext(ctx).Create(trip).Error
}

// WithTransaction executes a function within a database transaction. The
// callback receives transaction-scoped trip and code repositories so both
// writes commit or roll back together.
func (r *tripRepository) WithTransaction(ctx context.Context, fn func(ctx context.Context, trips TripRepository, codes CodeRepository) error) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(ctx, &tripRepository{db: tx}, &codeRepository{db: tx})
	})
}

func (r *tripRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Trip, error) {
	var trip model.Trip
	if err := r.db.WithContext(ctx).
		Preload("Destination").
		Preload("Code").
		Where("id = ?", id).
		First(&trip).Error; err != nil {
		return nil, err
	}
	return &trip, nil
}

func (r *tripRepository) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]model.Trip, error) {
	var trips []model.Trip
	if err := r.db.WithContext(ctx).
		Preload("Destination").
		Preload("Code").
		Where("user_id = ?", ownerID).
		Order("created_at ASC").
		Find(&trips).Error; err != nil {
		return nil, err
	}
	return trips, nil
}

// ListByOwnerFacebookIDs returns trips owned by registered users whose
// Facebook id is in the given list, owner preloaded.
func (r *tripRepository) ListByOwnerFacebookIDs(ctx context.Context, facebookIDs []string) ([]model.Trip, error) {
	var trips []model.Trip
	if len(facebookIDs) == 0 {
		return trips, nil
	}
	if err := r.db.WithContext(ctx).
		Preload("User").
		Preload("Destination").
		Preload("Code").
		Joins("JOIN users ON users.id = trips.user_id").
		Where("users.facebook_id IN ?", facebookIDs).
		Order("trips.created_at ASC").
		Find(&trips).Error; err != nil {
		return nil, err
	}
	return trips, nil
}
