package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"tripmate/internal/model"
)

// CodeRepository defines trip-code persistence operations.
type CodeRepository interface {
	Create(ctx context.Context, code *model.Code) error
	FindByValue(ctx context.Context, value string) (*model.Code, error)
	FindByTripID(ctx context.Context, tripID uuid.UUID) (*model.Code, error)
}

type codeRepository struct {
	db *gorm.DB
}

// NewCodeRepository builds a GORM-backed repository.
func NewCodeRepository(db *gorm.DB) CodeRepository {
	return &codeRepository{db: db}
}

func (r *codeRepository) Create(ctx context.Context, code *model.Code) error {
	return r.db.WithContext(ctx).Create(code).Error
}

// FindByValue resolves a code string with its trip preloaded. The match is
// exact and case-sensitive; MySQL collation on the value column is binary.
func (r *codeRepository) FindByValue(ctx context.Context, value string) (*model.Code, error) {
	var code model.Code
	if err := r.db.WithContext(ctx).
		Preload("Trip").
		Where("BINARY value = ?", value).
		First(&code).Error; err != nil {
		return nil, err
	}
	return &code, nil
}

func (r *codeRepository) FindByTripID(ctx context.Context, tripID uuid.UUID) (*model.Code, error) {
	var code model.Code
	if err := r.db.WithContext(ctx).Where("trip_id = ?", tripID).First(&code).Error; err != nil {
		return nil, err
	}
	return &code, nil
}
