package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"tripmate/internal/errors"
	"tripmate/internal/links"
	"tripmate/internal/model"
	"tripmate/internal/repository"
)

// EnrichedRecommendation is a recommendation with its derived booking links
// and the user who submitted it.
type EnrichedRecommendation struct {
	Recommendation model.Recommendation `json:"recommendation"`
	Submitter      model.User           `json:"user"`
	Links          links.Links          `json:"links"`
}

// RecommendationService collects recommendations for a trip owner and
// accepts submissions from recommenders.
type RecommendationService interface {
	// ListForTrip returns the trip's recommendations, in creation order,
	// enriched with booking links. Only the trip owner may call it.
	ListForTrip(ctx context.Context, callerID, tripID uuid.UUID) ([]EnrichedRecommendation, error)
	// Submit records a recommendation from a user holding a recommender
	// relationship for the trip.
	Submit(ctx context.Context, callerID uuid.UUID, recommendation *model.Recommendation) (*model.Recommendation, error)
}

type recommendationService struct {
	tripRepo           repository.TripRepository
	recommenderRepo    repository.RecommenderRepository
	recommendationRepo repository.RecommendationRepository
}

// NewRecommendationService creates a recommendation service.
func NewRecommendationService(tripRepo repository.TripRepository, recommenderRepo repository.RecommenderRepository, recommendationRepo repository.RecommendationRepository) RecommendationService {
	return &recommendationService{
		tripRepo:           tripRepo,
		recommenderRepo:    recommenderRepo,
		recommendationRepo: recommendationRepo,
	}
}

func (s *recommendationService) ListForTrip(ctx context.Context, callerID, tripID uuid.UUID) ([]EnrichedRecommendation, error) {
	trip, err := s.tripRepo.FindByID(ctx, tripID)
	if err != nil {
		if isNotFound(err) {
			return nil, errors.ErrTripNotFound
		}
		return nil, fmt.Errorf("find trip: %w", err)
	}
	if trip.UserID != callerID {
		return nil, errors.ErrNotTripOwner
	}

	recommendations, err := s.recommendationRepo.ListByTrip(ctx, tripID)
	if err != nil {
		return nil, fmt.Errorf("list recommendations: %w", err)
	}

	enriched := make([]EnrichedRecommendation, 0, len(recommendations))
	for i := range recommendations {
		rec := recommendations[i]
		enriched = append(enriched, EnrichedRecommendation{
			Recommendation: rec,
			Submitter:      rec.Recommender.User,
			Links:          links.ForPlace(rec.PlaceName, rec.PlaceLatitude, rec.PlaceLongitude),
		})
	}
	return enriched, nil
}

func (s *recommendationService) Submit(ctx context.Context, callerID uuid.UUID, recommendation *model.Recommendation) (*model.Recommendation, error) {
	recommender, err := s.recommenderRepo.FindByTripAndUser(ctx, recommendation.TripID, callerID)
	if err != nil {
		if isNotFound(err) {
			return nil, errors.ErrNotRecommender
		}
		return nil, fmt.Errorf("find recommender: %w", err)
	}

	recommendation.RecommenderID = recommender.ID
	if recommendation.RecommendationType == "" {
		recommendation.RecommendationType = model.RecommendationTypeAttraction
	}
	if err := s.recommendationRepo.Create(ctx, recommendation); err != nil {
		return nil, fmt.Errorf("create recommendation: %w", err)
	}
	return recommendation, nil
}
