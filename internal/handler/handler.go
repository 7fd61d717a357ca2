package handler

import (
	"github.com/labstack/echo/v4"

	"grocerly/internal/errors"
)

// MessageResponse is the generic acknowledgement body.
type MessageResponse struct {
	Message string `json:"message"`
}

// httpError converts a domain error into an echo HTTP error with the
// standardized response body.
func httpError(err error) *echo.HTTPError {
	httpErr := errors.MapErrorToHTTP(err)
	return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
}
