package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"tripmate/internal/errors"
	"tripmate/internal/service"
)

// RequestHandler handles recommendation-request endpoints.
type RequestHandler struct {
	requestService service.RequestService
}

// NewRequestHandler creates a new request handler.
func NewRequestHandler(requestService service.RequestService) *RequestHandler {
	return &RequestHandler{requestService: requestService}
}

// ListMyRequests godoc
// @Summary List trips the caller may recommend places for
// @Description Friends' public trips plus hidden trips the caller was explicitly invited to. Listing a public trip opts the caller in as recommender.
// @Tags requests
// @Produce json
// @Security BearerAuth
// @Success 200 {array} service.RecommendationRequest
// @Failure 401 {object} errors.ErrorResponse
// @Failure 502 {object} errors.ErrorResponse
// @Router /requests [get]
func (h *RequestHandler) ListMyRequests(c echo.Context) error {
	userID, err := callerID(c)
	if err != nil {
		return err
	}

	requests, err := h.requestService.ListRequests(c.Request().Context(), userID)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, requests)
}
