package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"grocerly/internal/auth"
	"grocerly/internal/service"
)

// UserHandler handles profile endpoints.
type UserHandler struct {
	userService service.UserService
}

// NewUserHandler creates a new user handler.
func NewUserHandler(userService service.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

// ProfileUpdateRequest carries the editable contact fields.
type ProfileUpdateRequest struct {
	PhoneNumber string `json:"phone_number" validate:"required"`
	HomeAddress string `json:"home_address" validate:"required"`
}

// GetProfile godoc
// @Summary Return the caller's profile
// @Tags profile
// @Produce json
// @Security SessionAuth
// @Success 200 {object} model.User
// @Failure 401 {object} errors.ErrorResponse
// @Router /user/profile [get]
func (h *UserHandler) GetProfile(c echo.Context) error {
	return c.JSON(http.StatusOK, auth.CurrentUser(c))
}

// UpdateProfile godoc
// @Summary Update the caller's phone and address
// @Tags profile
// @Accept json
// @Produce json
// @Security SessionAuth
// @Param request body ProfileUpdateRequest true "Contact fields"
// @Success 200 {object} model.User
// @Failure 401 {object} errors.ErrorResponse
// @Failure 422 {object} errors.ErrorResponse
// @Router /user/profile [put]
func (h *UserHandler) UpdateProfile(c echo.Context) error {
	var req ProfileUpdateRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	user := auth.CurrentUser(c)
	updated, err := h.userService.UpdateProfile(c.Request().Context(), user.UserID, req.PhoneNumber, req.HomeAddress)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, updated)
}
