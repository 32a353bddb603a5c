package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"tripmate/internal/errors"
	"tripmate/internal/model"
	"tripmate/internal/repository"
	"tripmate/internal/social"
)

// RecommendationRequest is one trip a user may recommend places for.
type RecommendationRequest struct {
	Trip               model.Trip               `json:"trip"`
	Owner              model.User               `json:"owner"`
	RecommendationType model.RecommendationType `json:"recommendation_type"`
}

// RequestService computes the recommendation requests visible to a user:
// the trips of their friends they are invited to, or may opt into,
// recommending for.
type RequestService interface {
	ListRequests(ctx context.Context, userID uuid.UUID) ([]RecommendationRequest, error)
}

type requestService struct {
	userRepo        repository.UserRepository
	tripRepo        repository.TripRepository
	recommenderRepo repository.RecommenderRepository
	friends         social.Provider
}

// NewRequestService creates a request service.
func NewRequestService(userRepo repository.UserRepository, tripRepo repository.TripRepository, recommenderRepo repository.RecommenderRepository, friends social.Provider) RequestService {
	return &requestService{
		userRepo:        userRepo,
		tripRepo:        tripRepo,
		recommenderRepo: recommenderRepo,
		friends:         friends,
	}
}

// ListRequests returns the deduplicated set of friend-owned trips the user
// may recommend for. Hidden trips require a prior explicit invitation;
// public trips are open to any friend and joining them here is the implicit
// opt-in: a recommender relationship is created as a side effect of the
// first listing, silently for the trip owner.
func (s *requestService) ListRequests(ctx context.Context, userID uuid.UUID) ([]RecommendationRequest, error) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		if isNotFound(err) {
			return nil, errors.ErrUnauthenticated
		}
		return nil, fmt.Errorf("find user: %w", err)
	}

	friends, err := s.friends.FriendsOf(ctx, user)
	if err != nil {
		// No partial answers: without the friend list the visible set is unknowable.
		return nil, fmt.Errorf("%w: %v", errors.ErrFriendLookupFailed, err)
	}
	if len(friends) == 0 {
		return []RecommendationRequest{}, nil
	}

	friendIDs := make([]string, 0, len(friends))
	for _, f := range friends {
		friendIDs = append(friendIDs, f.FacebookID)
	}

	trips, err := s.tripRepo.ListByOwnerFacebookIDs(ctx, friendIDs)
	if err != nil {
		return nil, fmt.Errorf("list friend trips: %w", err)
	}

	memberTripIDs, err := s.recommenderRepo.FindTripIDsByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list memberships: %w", err)
	}
	member := make(map[uuid.UUID]bool, len(memberTripIDs))
	for _, id := range memberTripIDs {
		member[id] = true
	}

	requests := make([]RecommendationRequest, 0, len(trips))
	seen := make(map[uuid.UUID]bool, len(trips))
	for i := range trips {
		trip := trips[i]
		if seen[trip.ID] {
			continue
		}
		seen[trip.ID] = true

		if trip.IsHidden() {
			// Private trips are never auto-joinable.
			if !member[trip.ID] {
				continue
			}
		} else if !member[trip.ID] {
			if err := s.optIn(ctx, &trip, userID); err != nil {
				return nil, err
			}
		}

		requests = append(requests, RecommendationRequest{
			Trip:               trip,
			Owner:              trip.User,
			RecommendationType: trip.RecommendationType,
		})
	}

	return requests, nil
}

func (s *requestService) optIn(ctx context.Context, trip *model.Trip, userID uuid.UUID) error {
	if trip.Code == nil {
		return fmt.Errorf("%w: trip %s", errors.ErrTripCodeMissing, trip.ID)
	}
	recommender := &model.Recommender{
		TripID: trip.ID,
		UserID: userID,
		CodeID: trip.Code.ID,
	}
	// A concurrent opt-in or invitation collapses into the existing row.
	if _, err := s.recommenderRepo.CreateIfAbsent(ctx, recommender); err != nil {
		return fmt.Errorf("opt in: %w", err)
	}
	return nil
}
