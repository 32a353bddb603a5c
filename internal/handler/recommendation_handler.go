package handler

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"

	"tripmate/internal/errors"
	"tripmate/internal/model"
	"tripmate/internal/service"
)

// RecommendationHandler handles recommendation endpoints.
type RecommendationHandler struct {
	recommendationService service.RecommendationService
}

// NewRecommendationHandler creates a new recommendation handler.
func NewRecommendationHandler(recommendationService service.RecommendationService) *RecommendationHandler {
	return &RecommendationHandler{recommendationService: recommendationService}
}

// SubmitRecommendationRequest represents a recommendation submission.
type SubmitRecommendationRequest struct {
	PlaceName          string `json:"place_name" validate:"required"`
	PlaceType          string `json:"place_type" validate:"required"`
	PlaceLatitude      string `json:"place_latitude"`
	PlaceLongitude     string `json:"place_longitude"`
	Rating             string `json:"rating"`
	Description        string `json:"description"`
	Wishlisted         bool   `json:"wishlisted"`
	RecommendationType string `json:"recommendation_type" validate:"omitempty,oneof=attraction restaurant hotel"`
}

// ListForTrip godoc
// @Summary List recommendations submitted for one of the caller's trips
// @Tags recommendations
// @Produce json
// @Security BearerAuth
// @Param id path string true "Trip ID"
// @Success 200 {array} service.EnrichedRecommendation
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /trips/{id}/recommendations [get]
func (h *RecommendationHandler) ListForTrip(c echo.Context) error {
	ownerID, err := callerID(c)
	if err != nil {
		return err
	}

	tripID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid trip id")
	}

	recommendations, err := h.recommendationService.ListForTrip(c.Request().Context(), ownerID, tripID)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, recommendations)
}

// Submit godoc
// @Summary Submit a recommendation for a trip
// @Tags recommendations
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Trip ID"
// @Param request body SubmitRecommendationRequest true "Place data"
// @Success 201 {object} model.Recommendation
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Router /trips/{id}/recommendations [post]
func (h *RecommendationHandler) Submit(c echo.Context) error {
	userID, err := callerID(c)
	if err != nil {
		return err
	}

	tripID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid trip id")
	}

	var req SubmitRecommendationRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	recommendation := &model.Recommendation{
		TripID:             tripID,
		PlaceName:          req.PlaceName,
		PlaceType:          req.PlaceType,
		Rating:             req.Rating,
		Description:        req.Description,
		Wishlisted:         req.Wishlisted,
		RecommendationType: model.RecommendationType(req.RecommendationType),
	}
	if req.PlaceLatitude != "" {
		if lat, err := decimal.NewFromString(req.PlaceLatitude); err == nil {
			recommendation.PlaceLatitude = lat
		}
	}
	if req.PlaceLongitude != "" {
		if lng, err := decimal.NewFromString(req.PlaceLongitude); err == nil {
			recommendation.PlaceLongitude = lng
		}
	}

	created, err := h.recommendationService.Submit(c.Request().Context(), userID, recommendation)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusCreated, created)
}
