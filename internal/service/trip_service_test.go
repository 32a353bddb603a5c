package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"tripmate/internal/errors"
	"tripmate/internal/model"
)

func TestTripService_CreateTrip(t *testing.T) {
	ownerID := uuid.New()
	start := time.Date(2026, 11, 2, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 0, 7)

	t.Run("creates trip with its code", func(t *testing.T) {
		mockTrips := new(MockTripRepository)
		mockDestinations := new(MockDestinationRepository)
		mockRegistry := new(MockCodeRegistry)

		mockDestinations.On("FirstOrCreate", mock.Anything, mock.AnythingOfType("*model.Destination")).
			Run(func(args mock.Arguments) {
				args.Get(1).(*model.Destination).ID = uuid.New()
			}).Return(nil)
		mockTrips.On("Create", mock.Anything, mock.AnythingOfType("*model.Trip")).
			Run(func(args mock.Arguments) {
				args.Get(1).(*model.Trip).ID = uuid.New()
			}).Return(nil)
		mockRegistry.On("Issue", mock.Anything, mock.Anything, mock.AnythingOfType("uuid.UUID")).
			Return(&model.Code{ID: uuid.New(), Value: "WNDR2345"}, nil)

		svc := NewTripService(mockTrips, mockDestinations, mockRegistry)
		trip, err := svc.CreateTrip(context.Background(), ownerID,
			&model.Destination{Name: "Aracaju", Country: "Brazil"}, &start, &end, nil, "")

		assert.NoError(t, err)
		assert.NotNil(t, trip)
		assert.NotNil(t, trip.Code)
		assert.Equal(t, "WNDR2345", trip.Code.Value)
		assert.True(t, trip.IsHidden(), "hidden should default to true")
		mockRegistry.AssertNumberOfCalls(t, "Issue", 1)
	})

	t.Run("rejects start after end without persisting", func(t *testing.T) {
		mockTrips := new(MockTripRepository)
		mockDestinations := new(MockDestinationRepository)
		mockRegistry := new(MockCodeRegistry)

		mockDestinations.On("FirstOrCreate", mock.Anything, mock.AnythingOfType("*model.Destination")).Return(nil)

		svc := NewTripService(mockTrips, mockDestinations, mockRegistry)
		trip, err := svc.CreateTrip(context.Background(), ownerID,
			&model.Destination{Name: "Aracaju"}, &end, &start, nil, "")

		assert.ErrorIs(t, err, errors.ErrInvalidDates)
		assert.Nil(t, trip)
		mockTrips.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
		mockRegistry.AssertNotCalled(t, "Issue", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("rejects missing dates without persisting", func(t *testing.T) {
		mockTrips := new(MockTripRepository)
		mockDestinations := new(MockDestinationRepository)
		mockRegistry := new(MockCodeRegistry)

		mockDestinations.On("FirstOrCreate", mock.Anything, mock.AnythingOfType("*model.Destination")).Return(nil)

		svc := NewTripService(mockTrips, mockDestinations, mockRegistry)
		trip, err := svc.CreateTrip(context.Background(), ownerID,
			&model.Destination{Name: "Aracaju"}, &start, nil, nil, "")

		assert.ErrorIs(t, err, errors.ErrMissingDates)
		assert.Nil(t, trip)
		mockTrips.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("code issuance failure fails the whole creation", func(t *testing.T) {
		mockTrips := new(MockTripRepository)
		mockDestinations := new(MockDestinationRepository)
		mockRegistry := new(MockCodeRegistry)

		mockDestinations.On("FirstOrCreate", mock.Anything, mock.AnythingOfType("*model.Destination")).
			Run(func(args mock.Arguments) {
				args.Get(1).(*model.Destination).ID = uuid.New()
			}).Return(nil)
		// The trip insert succeeds inside the transaction, then issuance
		// fails; the error must surface out of the transaction callback so
		// the trip write rolls back with it.
		mockTrips.On("Create", mock.Anything, mock.AnythingOfType("*model.Trip")).Return(nil)
		mockRegistry.On("Issue", mock.Anything, mock.Anything, mock.AnythingOfType("uuid.UUID")).
			Return(nil, assert.AnError)

		svc := NewTripService(mockTrips, mockDestinations, mockRegistry)
		trip, err := svc.CreateTrip(context.Background(), ownerID,
			&model.Destination{Name: "Aracaju"}, &start, &end, nil, "")

		assert.ErrorIs(t, err, assert.AnError)
		assert.Nil(t, trip)
		mockTrips.AssertExpectations(t)
		mockRegistry.AssertExpectations(t)
	})

	t.Run("explicit public flag is kept", func(t *testing.T) {
		mockTrips := new(MockTripRepository)
		mockDestinations := new(MockDestinationRepository)
		mockRegistry := new(MockCodeRegistry)

		mockDestinations.On("FirstOrCreate", mock.Anything, mock.AnythingOfType("*model.Destination")).Return(nil)
		mockTrips.On("Create", mock.Anything, mock.AnythingOfType("*model.Trip")).Return(nil)
		mockRegistry.On("Issue", mock.Anything, mock.Anything, mock.AnythingOfType("uuid.UUID")).
			Return(&model.Code{ID: uuid.New(), Value: "WNDR2346"}, nil)

		public := false
		svc := NewTripService(mockTrips, mockDestinations, mockRegistry)
		trip, err := svc.CreateTrip(context.Background(), ownerID,
			&model.Destination{Name: "Aracaju"}, &start, &end, &public, model.RecommendationTypeRestaurant)

		assert.NoError(t, err)
		assert.False(t, trip.IsHidden())
		assert.Equal(t, model.RecommendationTypeRestaurant, trip.RecommendationType)
	})
}
