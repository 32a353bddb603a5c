package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"tripmate/internal/model"
)

// RecommendationRepository defines recommendation persistence operations.
type RecommendationRepository interface {
	Create(ctx context.Context, recommendation *model.Recommendation) error
	ListByTrip(ctx context.Context, tripID uuid.UUID) ([]model.Recommendation, error)
}

type recommendationRepository struct {
	db *gorm.DB
}

// NewRecommendationRepository builds a GORM-backed repository.
func NewRecommendationRepository(db *gorm.DB) RecommendationRepository {
	return &recommendationRepository{db: db}
}

func (r *recommendationRepository) Create(ctx context.Context, recommendation *model.Recommendation) error {
	return r.db.WithContext(ctx).Create(recommendation).Error
}

// ListByTrip returns the trip's recommendations in creation order, submitter
// preloaded.
func (r *recommendationRepository) ListByTrip(ctx context.Context, tripID uuid.UUID) ([]model.Recommendation, error) {
	var recommendations []model.Recommendation
	if err := r.db.WithContext(ctx).
		Preload("Recommender.User").
		Where("trip_id = ?", tripID).
		Order("created_at ASC").
		Find(&recommendations).Error; err != nil {
		return nil, err
	}
	return recommendations, nil
}
