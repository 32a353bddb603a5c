package handler

import (
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"

	"tripmate/internal/errors"
	"tripmate/internal/model"
	"tripmate/internal/service"
)

// TripHandler handles trip endpoints.
type TripHandler struct {
	tripService service.TripService
}

// NewTripHandler creates a new trip handler.
func NewTripHandler(tripService service.TripService) *TripHandler {
	return &TripHandler{tripService: tripService}
}

// CreateTripRequest represents a trip creation request. A nil hidden flag
// defaults to a private trip.
type CreateTripRequest struct {
	Destination        DestinationPayload `json:"destination" validate:"required"`
	Start              time.Time          `json:"start" validate:"required"`
	End                time.Time          `json:"end" validate:"required"`
	Hidden             *bool              `json:"hidden"`
	RecommendationType string             `json:"recommendation_type" validate:"omitempty,oneof=attraction restaurant hotel"`
}

// DestinationPayload carries the destination of a new trip.
type DestinationPayload struct {
	Name      string `json:"name" validate:"required"`
	Country   string `json:"country"`
	Latitude  string `json:"latitude"`
	Longitude string `json:"longitude"`
}

// CreateTrip godoc
// @Summary Create a trip with its invitation code
// @Tags trips
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body CreateTripRequest true "Trip data"
// @Success 201 {object} model.Trip
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /trips [post]
func (h *TripHandler) CreateTrip(c echo.Context) error {
	ownerID, err := callerID(c)
	if err != nil {
		return err
	}

	var req CreateTripRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	destination := &model.Destination{
		Name:    req.Destination.Name,
		Country: req.Destination.Country,
	}
	if req.Destination.Latitude != "" {
		if lat, err := decimal.NewFromString(req.Destination.Latitude); err == nil {
			destination.Latitude = lat
		}
	}
	if req.Destination.Longitude != "" {
		if lng, err := decimal.NewFromString(req.Destination.Longitude); err == nil {
			destination.Longitude = lng
		}
	}

	trip, err := h.tripService.CreateTrip(
		c.Request().Context(),
		ownerID,
		destination,
		&req.Start,
		&req.End,
		req.Hidden,
		model.RecommendationType(req.RecommendationType),
	)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	return c.JSON(http.StatusCreated, trip)
}

// ListMyTrips godoc
// @Summary List the caller's trips
// @Tags trips
// @Produce json
// @Security BearerAuth
// @Success 200 {array} model.Trip
// @Failure 401 {object} errors.ErrorResponse
// @Router /trips [get]
func (h *TripHandler) ListMyTrips(c echo.Context) error {
	ownerID, err := callerID(c)
	if err != nil {
		return err
	}

	trips, err := h.tripService.ListTripsByOwner(c.Request().Context(), ownerID)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, trips)
}

// GetTrip godoc
// @Summary Get one of the caller's trips
// @Tags trips
// @Produce json
// @Security BearerAuth
// @Param id path string true "Trip ID"
// @Success 200 {object} model.Trip
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /trips/{id} [get]
func (h *TripHandler) GetTrip(c echo.Context) error {
	ownerID, err := callerID(c)
	if err != nil {
		return err
	}

	tripID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid trip id")
	}

	trip, err := h.tripService.GetTrip(c.Request().Context(), tripID)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	if trip.UserID != ownerID {
		httpErr := errors.MapErrorToHTTP(errors.ErrNotTripOwner)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, trip)
}
