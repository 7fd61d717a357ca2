package errors

import (
	"errors"
	"net/http"
)

var (
	// ErrNotAuthenticated is returned when no session token is presented.
	ErrNotAuthenticated = errors.New("not authenticated")
	// ErrInvalidSession is returned when a token has no matching session.
	ErrInvalidSession = errors.New("invalid session")
	// ErrSessionExpired is returned when a session is past its expiry.
	ErrSessionExpired = errors.New("session expired")
	// ErrUserNotFound is returned when a session points at a missing user.
	ErrUserNotFound = errors.New("user not found")
	// ErrAdminRequired is returned when a non-admin calls an admin endpoint.
	ErrAdminRequired = errors.New("admin access required")
	// ErrNotAuthorized is returned when the caller owns neither the
	// resource nor the admin flag.
	ErrNotAuthorized = errors.New("not authorized")
	// ErrItemNotFound is returned when a catalog item is absent.
	ErrItemNotFound = errors.New("item not found")
	// ErrOrderNotFound is returned when an order is absent.
	ErrOrderNotFound = errors.New("order not found")
	// ErrCategoryNotFound is returned when a category is absent.
	ErrCategoryNotFound = errors.New("category not found")
	// ErrDuplicateCategory is returned on a case-insensitive name clash.
	ErrDuplicateCategory = errors.New("category already exists")
	// ErrCategoryInUse is returned when items still reference a category.
	ErrCategoryInUse = errors.New("category is in use by existing items")
	// ErrDefaultCategory is returned when deleting a seeded category.
	ErrDefaultCategory = errors.New("default categories cannot be deleted")
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

// NewInvalidFormat builds a 422 for a payload that fails a format rule.
func NewInvalidFormat(message string) *HTTPError {
	return NewHTTPError(http.StatusUnprocessableEntity, message, "INVALID_FORMAT")
}

// NewOutOfRange builds a 422 for a numeric value outside its bounds.
func NewOutOfRange(message string) *HTTPError {
	return NewHTTPError(http.StatusUnprocessableEntity, message, "OUT_OF_RANGE")
}

// ToErrorResponse converts an HTTPError to ErrorResponse.
func (e *HTTPError) ToErrorResponse() ErrorResponse {
	return ErrorResponse{
		Error: e.Message,
		Code:  e.Code,
	}
}

// MapErrorToHTTP maps domain errors to HTTP errors.
func MapErrorToHTTP(err error) *HTTPError {
	var httpErr *HTTPError
	if errors.As(err, &httpErr) {
		return httpErr
	}

	switch {
	case errors.Is(err, ErrNotAuthenticated):
		return NewHTTPError(http.StatusUnauthorized, err.Error(), "NOT_AUTHENTICATED")
	case errors.Is(err, ErrInvalidSession):
		return NewHTTPError(http.StatusUnauthorized, err.Error(), "INVALID_SESSION")
	case errors.Is(err, ErrSessionExpired):
		return NewHTTPError(http.StatusUnauthorized, err.Error(), "SESSION_EXPIRED")
	case errors.Is(err, ErrUserNotFound):
		return NewHTTPError(http.StatusNotFound, err.Error(), "USER_NOT_FOUND")
	case errors.Is(err, ErrAdminRequired):
		return NewHTTPError(http.StatusForbidden, err.Error(), "ADMIN_REQUIRED")
	case errors.Is(err, ErrNotAuthorized):
		return NewHTTPError(http.StatusForbidden, err.Error(), "NOT_AUTHORIZED")
	case errors.Is(err, ErrItemNotFound):
		return NewHTTPError(http.StatusNotFound, err.Error(), "ITEM_NOT_FOUND")
	case errors.Is(err, ErrOrderNotFound):
		return NewHTTPError(http.StatusNotFound, err.Error(), "ORDER_NOT_FOUND")
	case errors.Is(err, ErrCategoryNotFound):
		return NewHTTPError(http.StatusNotFound, err.Error(), "CATEGORY_NOT_FOUND")
	case errors.Is(err, ErrDuplicateCategory):
		return NewHTTPError(http.StatusConflict, err.Error(), "DUPLICATE_CATEGORY")
	case errors.Is(err, ErrCategoryInUse):
		return NewHTTPError(http.StatusConflict, err.Error(), "CATEGORY_IN_USE")
	case errors.Is(err, ErrDefaultCategory):
		return NewHTTPError(http.StatusBadRequest, err.Error(), "DEFAULT_CATEGORY")
	default:
		return NewHTTPError(http.StatusInternalServerError, "internal server error", "INTERNAL_ERROR")
	}
}
