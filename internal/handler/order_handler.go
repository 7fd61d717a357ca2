package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"grocerly/internal/auth"
	"grocerly/internal/model"
	"grocerly/internal/service"
)

// OrderHandler handles order endpoints.
type OrderHandler struct {
	orderService service.OrderService
}

// NewOrderHandler creates a new order handler.
func NewOrderHandler(orderService service.OrderService) *OrderHandler {
	return &OrderHandler{orderService: orderService}
}

// OrderCreateRequest carries the lines and the client-computed grand
// total. Both totals are server-reconciled before storage.
type OrderCreateRequest struct {
	Items      []model.OrderItem `json:"items"`
	GrandTotal float64           `json:"grand_total"`
}

// Create godoc
// @Summary Place an order for the caller
// @Tags orders
// @Accept json
// @Produce json
// @Security SessionAuth
// @Param request body OrderCreateRequest true "Order lines and total"
// @Success 200 {object} model.Order
// @Failure 401 {object} errors.ErrorResponse
// @Failure 422 {object} errors.ErrorResponse
// @Router /orders [post]
func (h *OrderHandler) Create(c echo.Context) error {
	var req OrderCreateRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	user := auth.CurrentUser(c)
	order, err := h.orderService.Create(c.Request().Context(), user, req.Items, req.GrandTotal)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, order)
}

// ListMine godoc
// @Summary List the caller's orders, newest first
// @Tags orders
// @Produce json
// @Security SessionAuth
// @Success 200 {array} model.Order
// @Failure 401 {object} errors.ErrorResponse
// @Router /orders [get]
func (h *OrderHandler) ListMine(c echo.Context) error {
	user := auth.CurrentUser(c)
	orders, err := h.orderService.ListForUser(c.Request().Context(), user.UserID)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, orders)
}

// Delete godoc
// @Summary Delete an order (owner or admin)
// @Tags orders
// @Produce json
// @Security SessionAuth
// @Param id path string true "Order ID"
// @Success 200 {object} MessageResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /orders/{id} [delete]
func (h *OrderHandler) Delete(c echo.Context) error {
	user := auth.CurrentUser(c)
	if err := h.orderService.Delete(c.Request().Context(), user, c.Param("id")); err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, MessageResponse{Message: "Order deleted"})
}

// ListAll godoc
// @Summary List every order, newest first
// @Tags orders
// @Produce json
// @Security SessionAuth
// @Success 200 {array} model.Order
// @Failure 403 {object} errors.ErrorResponse
// @Router /admin/orders [get]
func (h *OrderHandler) ListAll(c echo.Context) error {
	orders, err := h.orderService.ListAll(c.Request().Context())
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, orders)
}

// Confirm godoc
// @Summary Confirm a pending order
// @Tags orders
// @Produce json
// @Security SessionAuth
// @Param id path string true "Order ID"
// @Success 200 {object} model.Order
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /admin/orders/{id}/confirm [patch]
func (h *OrderHandler) Confirm(c echo.Context) error {
	order, err := h.orderService.Confirm(c.Request().Context(), c.Param("id"))
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, order)
}
