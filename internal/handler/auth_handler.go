package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"grocerly/internal/auth"
	"grocerly/internal/model"
	"grocerly/internal/service"
)

// AuthHandler handles session endpoints.
type AuthHandler struct {
	authService service.AuthService
}

// NewAuthHandler creates a new auth handler.
func NewAuthHandler(authService service.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// CreateSessionRequest carries the one-time session id from the OAuth
// redirect.
type CreateSessionRequest struct {
	SessionID string `json:"session_id" validate:"required"`
}

// SessionResponse is returned after a successful login exchange.
type SessionResponse struct {
	User         *model.User `json:"user"`
	SessionToken string      `json:"session_token"`
}

// CreateSession godoc
// @Summary Exchange a one-time session id for a session
// @Tags auth
// @Accept json
// @Produce json
// @Param request body CreateSessionRequest true "One-time session id"
// @Success 200 {object} SessionResponse
// @Failure 400 {object} errors.ErrorResponse
// @Router /auth/session [post]
func (h *AuthHandler) CreateSession(c echo.Context) error {
	var req CreateSessionRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "session_id required")
	}

	user, token, err := h.authService.CreateSession(c.Request().Context(), req.SessionID)
	if err != nil {
		return httpError(err)
	}

	c.SetCookie(sessionCookie(token, int(model.SessionTTL.Seconds())))
	return c.JSON(http.StatusOK, SessionResponse{User: user, SessionToken: token})
}

// Me godoc
// @Summary Return the authenticated user
// @Tags auth
// @Produce json
// @Security SessionAuth
// @Success 200 {object} model.User
// @Failure 401 {object} errors.ErrorResponse
// @Router /auth/me [get]
func (h *AuthHandler) Me(c echo.Context) error {
	return c.JSON(http.StatusOK, auth.CurrentUser(c))
}

// Logout godoc
// @Summary Delete the current session
// @Tags auth
// @Produce json
// @Success 200 {object} MessageResponse
// @Router /auth/logout [post]
func (h *AuthHandler) Logout(c echo.Context) error {
	token := auth.TokenFromRequest(c)
	if err := h.authService.Logout(c.Request().Context(), token); err != nil {
		return httpError(err)
	}

	// Expire the cookie regardless of whether a session existed.
	c.SetCookie(sessionCookie("", -1))
	return c.JSON(http.StatusOK, MessageResponse{Message: "Logged out"})
}

func sessionCookie(token string, maxAge int) *http.Cookie {
	return &http.Cookie{
		Name:     auth.SessionCookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   maxAge,
		Secure:   true,
		HttpOnly: true,
		SameSite: http.SameSiteNoneMode,
	}
}
