package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"tripmate/internal/model"
)

// RecommenderRepository defines recommender-relationship persistence operations.
type RecommenderRepository interface {
	// CreateIfAbsent inserts the relationship unless one already exists for
	// the (trip, user) pair. Returns whether a row was actually created.
	// Duplicate attempts, including concurrent ones, are collapsed into a
	// no-op success by the unique index plus ON CONFLICT DO NOTHING.
	CreateIfAbsent(ctx context.Context, recommender *model.Recommender) (created bool, err error)
	FindByTripAndUser(ctx context.Context, tripID, userID uuid.UUID) (*model.Recommender, error)
	FindTripIDsByUser(ctx context.Context, userID uuid.UUID) ([]uuid.UUID, error)
	MarkRedeemed(ctx context.Context, tripID, userID uuid.UUID) error
}

type recommenderRepository struct {
	db *gorm.DB
}

// NewRecommenderRepository builds a GORM-backed repository.
func NewRecommenderRepository(db *gorm.DB) RecommenderRepository {
	return &recommenderRepository{db: db}
}

func (r *recommenderRepository) CreateIfAbsent(ctx context.Context, recommender *model.Recommender) (bool, error) {
	res := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "trip_id"}, {Name: "user_id"}},
			DoNothing: true,
		}).
		Create(recommender)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

func (r *recommenderRepository) FindByTripAndUser(ctx context.Context, tripID, userID uuid.UUID) (*model.Recommender, error) {
	var recommender model.Recommender
	if err := r.db.WithContext(ctx).
		Where("trip_id = ? AND user_id = ?", tripID, userID).
		First(&recommender).Error; err != nil {
		return nil, err
	}
	return &recommender, nil
}

// FindTripIDsByUser returns the ids of every trip the user already holds a
// recommender relationship for.
func (r *recommenderRepository) FindTripIDsByUser(ctx context.Context, userID uuid.UUID) ([]uuid.UUID, error) {
	var tripIDs []uuid.UUID
	if err := r.db.WithContext(ctx).
		Model(&model.Recommender{}).
		Where("user_id = ?", userID).
		Pluck("trip_id", &tripIDs).Error; err != nil {
		return nil, err
	}
	return tripIDs, nil
}

// MarkRedeemed flags the relationship as redeemed. Updating an already
// redeemed row is a no-op; updating a missing row affects zero rows and is
// not an error.
func (r *recommenderRepository) MarkRedeemed(ctx context.Context, tripID, userID uuid.UUID) error {
	return r.db.WithContext(ctx).
		Model(&model.Recommender{}).
		Where("trip_id = ? AND user_id = ?", tripID, userID).
		Update("redeemed", true).Error
}
