package service

import (
	"time"

	"github.com/google/uuid"

	"tripmate/internal/model"
)

// Test builders producing fully-typed entity values.

func buildUser(facebookID, name string) *model.User {
	return &model.User{
		ID:         uuid.New(),
		FacebookID: facebookID,
		Email:      name + "@example.com",
		Name:       name,
	}
}

func buildTrip(owner *model.User, hidden bool) *model.Trip {
	start := time.Date(2026, 11, 2, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 0, 7)
	trip := model.NewTrip(owner.ID, uuid.New(), &start, &end, &hidden, model.RecommendationTypeAttraction)
	trip.ID = uuid.New()
	trip.User = *owner
	trip.Code = &model.Code{
		ID:     uuid.New(),
		TripID: trip.ID,
		Value:  "CODE" + trip.ID.String()[:4],
	}
	return trip
}
