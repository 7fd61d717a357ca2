package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"grocerly/internal/service"
	"grocerly/internal/validate"
)

// ItemHandler handles catalog item endpoints.
type ItemHandler struct {
	catalogService service.CatalogService
}

// NewItemHandler creates a new item handler.
func NewItemHandler(catalogService service.CatalogService) *ItemHandler {
	return &ItemHandler{catalogService: catalogService}
}

// ItemRequest is the create/update payload for a catalog item. Rate
// bounds are checked by the validators, not by struct tags, so range
// violations get a proper range error.
type ItemRequest struct {
	Name     string  `json:"name" validate:"required"`
	Rate     float64 `json:"rate"`
	ImageURL string  `json:"image_url" validate:"required"`
	Category string  `json:"category" validate:"required"`
}

func (r ItemRequest) input() validate.ItemInput {
	return validate.ItemInput{
		Name:     r.Name,
		Rate:     r.Rate,
		ImageURL: r.ImageURL,
		Category: r.Category,
	}
}

// List godoc
// @Summary List all catalog items
// @Tags items
// @Produce json
// @Success 200 {array} model.Item
// @Router /items [get]
func (h *ItemHandler) List(c echo.Context) error {
	items, err := h.catalogService.ListItems(c.Request().Context())
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, items)
}

// Create godoc
// @Summary Create a catalog item
// @Tags items
// @Accept json
// @Produce json
// @Security SessionAuth
// @Param request body ItemRequest true "Item data"
// @Success 200 {object} model.Item
// @Failure 401 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 422 {object} errors.ErrorResponse
// @Router /admin/items [post]
func (h *ItemHandler) Create(c echo.Context) error {
	var req ItemRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	item, err := h.catalogService.CreateItem(c.Request().Context(), req.input())
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, item)
}

// Update godoc
// @Summary Update a catalog item
// @Tags items
// @Accept json
// @Produce json
// @Security SessionAuth
// @Param id path string true "Item ID"
// @Param request body ItemRequest true "Item data"
// @Success 200 {object} model.Item
// @Failure 404 {object} errors.ErrorResponse
// @Failure 422 {object} errors.ErrorResponse
// @Router /admin/items/{id} [put]
func (h *ItemHandler) Update(c echo.Context) error {
	var req ItemRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	item, err := h.catalogService.UpdateItem(c.Request().Context(), c.Param("id"), req.input())
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, item)
}

// Delete godoc
// @Summary Delete a catalog item
// @Tags items
// @Produce json
// @Security SessionAuth
// @Param id path string true "Item ID"
// @Success 200 {object} MessageResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /admin/items/{id} [delete]
func (h *ItemHandler) Delete(c echo.Context) error {
	if err := h.catalogService.DeleteItem(c.Request().Context(), c.Param("id")); err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, MessageResponse{Message: "Item deleted"})
}
