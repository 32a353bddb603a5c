package service

import (
	"context"
	goerrors "errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"tripmate/internal/errors"
	"tripmate/internal/model"
	"tripmate/internal/repository"
)

// TripService handles trip lifecycle operations.
type TripService interface {
	CreateTrip(ctx context.Context, ownerID uuid.UUID, destination *model.Destination, start, end *time.Time, hidden *bool, recType model.RecommendationType) (*model.Trip, error)
	GetTrip(ctx context.Context, id uuid.UUID) (*model.Trip, error)
	ListTripsByOwner(ctx context.Context, ownerID uuid.UUID) ([]model.Trip, error)
}

type tripService struct {
	tripRepo        repository.TripRepository
	destinationRepo repository.DestinationRepository
	registry        CodeRegistry
}

// NewTripService creates a trip service.
func NewTripService(tripRepo repository.TripRepository, destinationRepo repository.DestinationRepository, registry CodeRegistry) TripService {
	return &tripService{
		tripRepo:        tripRepo,
		destinationRepo: destinationRepo,
		registry:        registry,
	}
}

// CreateTrip validates and persists a trip together with its invitation code.
// A trip that violates the date invariant is rejected, never persisted.
func (s *tripService) CreateTrip(ctx context.Context, ownerID uuid.UUID, destination *model.Destination, start, end *time.Time, hidden *bool, recType model.RecommendationType) (*model.Trip, error) {
	if err := s.destinationRepo.FirstOrCreate(ctx, destination); err != nil {
		return nil, fmt.Errorf("resolve destination: %w", err)
	}

	trip := model.NewTrip(ownerID, destination.ID, start, end, hidden, recType)
	if err := trip.Validate(); err != nil {
		return nil, err
	}

	// Trip and code commit together; a failed code issuance rolls the trip
	// insert back so no trip ever exists without its code.
	err := s.tripRepo.WithTransaction(ctx, func(ctx context.Context, trips repository.TripRepository, codes repository.CodeRepository) error {
		if err := trips.Create(ctx, trip); err != nil {
			return fmt.Errorf("create trip: %w", err)
		}
		code, err := s.registry.Issue(ctx, codes, trip.ID)
		if err != nil {
			return err
		}
		trip.Code = code
		return nil
	})
	if err != nil {
		return nil, err
	}
	trip.Destination = *destination

	return trip, nil
}

func (s *tripService) GetTrip(ctx context.Context, id uuid.UUID) (*model.Trip, error) {
	trip, err := s.tripRepo.FindByID(ctx, id)
	if err != nil {
		if goerrors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.ErrTripNotFound
		}
		return nil, fmt.Errorf("find trip: %w", err)
	}
	return trip, nil
}

func (s *tripService) ListTripsByOwner(ctx context.Context, ownerID uuid.UUID) ([]model.Trip, error) {
	trips, err := s.tripRepo.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("list trips: %w", err)
	}
	return trips, nil
}
