package handler

import (
	goerrors "errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"tripmate/internal/errors"
	"tripmate/internal/service"
)

// InviteHandler handles invitation and redemption endpoints.
type InviteHandler struct {
	inviteService service.InviteService
}

// NewInviteHandler creates a new invite handler.
func NewInviteHandler(inviteService service.InviteService) *InviteHandler {
	return &InviteHandler{inviteService: inviteService}
}

// InviteFriendsRequest represents an invitation request.
type InviteFriendsRequest struct {
	Code      string   `json:"code" validate:"required"`
	FriendIDs []string `json:"friend_ids" validate:"required,min=1"`
}

// RedeemCodeRequest represents a code redemption request.
type RedeemCodeRequest struct {
	Code string `json:"code" validate:"required"`
}

// InviteFriends godoc
// @Summary Invite Facebook friends to recommend for a trip
// @Description Friends without a registered account are skipped; repeated invitations are no-op successes.
// @Tags invitations
// @Accept json
// @Security BearerAuth
// @Param request body InviteFriendsRequest true "Trip code and friend ids"
// @Success 204
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /invitations [post]
func (h *InviteHandler) InviteFriends(c echo.Context) error {
	if _, err := callerID(c); err != nil {
		return err
	}

	var req InviteFriendsRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	if err := h.inviteService.InviteFriends(c.Request().Context(), req.Code, req.FriendIDs); err != nil {
		// An unknown code is the client's mistake here, not a missing resource.
		if goerrors.Is(err, errors.ErrCodeNotFound) {
			return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
				Error: err.Error(),
				Code:  "INVALID_CODE",
			})
		}
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.NoContent(http.StatusNoContent)
}

// RedeemCode godoc
// @Summary Redeem a trip invitation code
// @Description Confirms the caller as recommender for the trip behind the code. Repeat redemptions succeed with no further effect.
// @Tags invitations
// @Accept json
// @Security BearerAuth
// @Param request body RedeemCodeRequest true "Trip code"
// @Success 204
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /redemptions [post]
func (h *InviteHandler) RedeemCode(c echo.Context) error {
	userID, err := callerID(c)
	if err != nil {
		return err
	}

	var req RedeemCodeRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	if err := h.inviteService.RedeemCode(c.Request().Context(), userID, req.Code); err != nil {
		if goerrors.Is(err, errors.ErrCodeNotFound) {
			return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
				Error: err.Error(),
				Code:  "INVALID_CODE",
			})
		}
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.NoContent(http.StatusNoContent)
}
