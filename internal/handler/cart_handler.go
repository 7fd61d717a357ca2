package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"grocerly/internal/auth"
	"grocerly/internal/model"
	"grocerly/internal/service"
)

// CartHandler handles the per-user cart endpoints.
type CartHandler struct {
	cartService service.CartService
}

// NewCartHandler creates a new cart handler.
func NewCartHandler(cartService service.CartService) *CartHandler {
	return &CartHandler{cartService: cartService}
}

// CartUpdateRequest replaces the whole cart items list.
type CartUpdateRequest struct {
	Items []model.OrderItem `json:"items"`
}

// Get godoc
// @Summary Return the caller's cart (empty shell when none exists)
// @Tags cart
// @Produce json
// @Security SessionAuth
// @Success 200 {object} model.Cart
// @Failure 401 {object} errors.ErrorResponse
// @Router /cart [get]
func (h *CartHandler) Get(c echo.Context) error {
	user := auth.CurrentUser(c)
	cart, err := h.cartService.Get(c.Request().Context(), user.UserID)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, cart)
}

// Update godoc
// @Summary Replace the caller's cart items
// @Tags cart
// @Accept json
// @Produce json
// @Security SessionAuth
// @Param request body CartUpdateRequest true "New cart contents"
// @Success 200 {object} model.Cart
// @Failure 401 {object} errors.ErrorResponse
// @Failure 422 {object} errors.ErrorResponse
// @Router /cart [put]
func (h *CartHandler) Update(c echo.Context) error {
	var req CartUpdateRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	user := auth.CurrentUser(c)
	cart, err := h.cartService.Update(c.Request().Context(), user.UserID, req.Items)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, cart)
}

// Clear godoc
// @Summary Delete the caller's cart
// @Tags cart
// @Produce json
// @Security SessionAuth
// @Success 200 {object} MessageResponse
// @Failure 401 {object} errors.ErrorResponse
// @Router /cart [delete]
func (h *CartHandler) Clear(c echo.Context) error {
	user := auth.CurrentUser(c)
	if err := h.cartService.Clear(c.Request().Context(), user.UserID); err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, MessageResponse{Message: "Cart cleared"})
}
