package errors

import (
	"errors"
	"net/http"
)

var (
	// ErrCodeNotFound is returned when no code matches the given value.
	ErrCodeNotFound = errors.New("trip code not found")
	// ErrTripNotFound is returned when a trip is not found.
	ErrTripNotFound = errors.New("trip not found")
	// ErrUserNotFound is returned when a user is not found.
	ErrUserNotFound = errors.New("user not found")
	// ErrNotTripOwner is returned when a caller accesses a trip they do not own.
	ErrNotTripOwner = errors.New("trip does not belong to caller")
	// ErrNotRecommender is returned when a caller submits a recommendation
	// without holding a recommender relationship for the trip.
	ErrNotRecommender = errors.New("caller is not a recommender for this trip")
	// ErrUnauthenticated is returned when the caller credential is missing or invalid.
	ErrUnauthenticated = errors.New("unauthenticated")
	// ErrEmptyFriendList is returned when an invitation carries no friend ids.
	ErrEmptyFriendList = errors.New("friend id list must not be empty")
	// ErrMissingDates is returned when a trip lacks a start or end date.
	ErrMissingDates = errors.New("trip start and end dates are required")
	// ErrInvalidDates is returned when a trip start date falls after its end date.
	ErrInvalidDates = errors.New("trip start date must not be after end date")
	// ErrFriendLookupFailed is returned when the social-graph provider call fails.
	ErrFriendLookupFailed = errors.New("friend list lookup failed")
	// ErrTripCodeMissing is returned when a stored trip has no invitation code.
	ErrTripCodeMissing = errors.New("trip has no invitation code")
)

// ErrorResponse represents a standardized error response.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

// HTTPError represents an HTTP error with status code.
type HTTPError struct {
	StatusCode int
	Message    string
	Code       string
}

func (e *HTTPError) Error() string {
	return e.Message
}

// NewHTTPError creates a new HTTP error.
func NewHTTPError(statusCode int, message, code string) *HTTPError {
	return &HTTPError{
		StatusCode: statusCode,
		Message:    message,
		Code:       code,
	}
}

// ToErrorResponse converts an HTTPError to ErrorResponse.
func (e *HTTPError) ToErrorResponse() ErrorResponse {
	return ErrorResponse{
		Error: e.Message,
		Code:  e.Code,
	}
}

// MapErrorToHTTP maps domain errors to HTTP errors. Storage-layer detail
// never crosses this boundary; anything unrecognized becomes a 500.
func MapErrorToHTTP(err error) *HTTPError {
	switch {
	case errors.Is(err, ErrCodeNotFound):
		return NewHTTPError(http.StatusNotFound, err.Error(), "CODE_NOT_FOUND")
	case errors.Is(err, ErrTripNotFound):
		return NewHTTPError(http.StatusNotFound, err.Error(), "TRIP_NOT_FOUND")
	case errors.Is(err, ErrUserNotFound):
		return NewHTTPError(http.StatusNotFound, err.Error(), "USER_NOT_FOUND")
	case errors.Is(err, ErrNotTripOwner):
		return NewHTTPError(http.StatusUnauthorized, err.Error(), "NOT_TRIP_OWNER")
	case errors.Is(err, ErrNotRecommender):
		return NewHTTPError(http.StatusUnauthorized, err.Error(), "NOT_RECOMMENDER")
	case errors.Is(err, ErrUnauthenticated):
		return NewHTTPError(http.StatusUnauthorized, err.Error(), "UNAUTHENTICATED")
	case errors.Is(err, ErrEmptyFriendList):
		return NewHTTPError(http.StatusBadRequest, err.Error(), "EMPTY_FRIEND_LIST")
	case errors.Is(err, ErrMissingDates):
		return NewHTTPError(http.StatusBadRequest, err.Error(), "MISSING_DATES")
	case errors.Is(err, ErrInvalidDates):
		return NewHTTPError(http.StatusBadRequest, err.Error(), "INVALID_DATES")
	case errors.Is(err, ErrFriendLookupFailed):
		return NewHTTPError(http.StatusBadGateway, err.Error(), "FRIEND_LOOKUP_FAILED")
	case errors.Is(err, ErrTripCodeMissing):
		return NewHTTPError(http.StatusInternalServerError, err.Error(), "TRIP_CODE_MISSING")
	default:
		return NewHTTPError(http.StatusInternalServerError, "internal server error", "INTERNAL_ERROR")
	}
}
