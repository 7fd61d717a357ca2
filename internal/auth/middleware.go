package auth

import (
	"strings"

	"github.com/labstack/echo/v4"

	apperrors "grocerly/internal/errors"
	"grocerly/internal/model"
)

// SessionCookieName is the cookie carrying the session token.
const SessionCookieName = "session_token"

const userContextKey = "currentUser"

// TokenFromRequest extracts the session token: the cookie wins, then the
// Bearer suffix of the Authorization header. Empty when neither is set.
func TokenFromRequest(c echo.Context) string {
	if cookie, err := c.Cookie(SessionCookieName); err == nil && cookie.Value != "" {
		return cookie.Value
	}
	header := c.Request().Header.Get(echo.HeaderAuthorization)
	if strings.HasPrefix(header, "Bearer ") {
		return strings.TrimPrefix(header, "Bearer ")
	}
	return ""
}

// RequireUser authenticates the request and stores the user on the echo
// context for downstream handlers.
func RequireUser(authn *Authenticator) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			user, err := authn.Authenticate(c.Request().Context(), TokenFromRequest(c))
			if err != nil {
				httpErr := apperrors.MapErrorToHTTP(err)
				return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
			}
			c.Set(userContextKey, user)
			return next(c)
		}
	}
}

// RequireAdmin rejects authenticated non-admin callers. Must run after
// RequireUser.
func RequireAdmin() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			user := CurrentUser(c)
			if user == nil || !user.IsAdmin {
				httpErr := apperrors.MapErrorToHTTP(apperrors.ErrAdminRequired)
				return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
			}
			return next(c)
		}
	}
}

// CurrentUser returns the authenticated user stored by RequireUser, or
// nil outside an authenticated route.
func CurrentUser(c echo.Context) *model.User {
	user, _ := c.Get(userContextKey).(*model.User)
	return user
}
