package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"tripmate/internal/model"
)

// DestinationRepository defines destination persistence operations.
type DestinationRepository interface {
	FirstOrCreate(ctx context.Context, destination *model.Destination) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Destination, error)
}

type destinationRepository struct {
	db *gorm.DB
}

// NewDestinationRepository builds a GORM-backed repository.
func NewDestinationRepository(db *gorm.DB) DestinationRepository {
	return &destinationRepository{db: db}
}

// FirstOrCreate reuses an existing destination with the same name and country.
func (r *destinationRepository) FirstOrCreate(ctx context.Context, destination *model.Destination) error {
	return r.db.WithContext(ctx).
		Where("name = ? AND country = ?", destination.Name, destination.Country).
		FirstOrCreate(destination).Error
}

func (r *destinationRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Destination, error) {
	var destination model.Destination
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&destination).Error; err != nil {
		return nil, err
	}
	return &destination, nil
}
