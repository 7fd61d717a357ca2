package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"grocerly/internal/service"
)

// CategoryHandler handles category endpoints.
type CategoryHandler struct {
	categoryService service.CategoryService
}

// NewCategoryHandler creates a new category handler.
func NewCategoryHandler(categoryService service.CategoryService) *CategoryHandler {
	return &CategoryHandler{categoryService: categoryService}
}

// CategoryCreateRequest is the admin payload for a custom category.
type CategoryCreateRequest struct {
	Name string `json:"name" validate:"required"`
}

// ListNames godoc
// @Summary List category names for filtering, "All" first
// @Tags categories
// @Produce json
// @Success 200 {array} string
// @Router /categories [get]
func (h *CategoryHandler) ListNames(c echo.Context) error {
	names, err := h.categoryService.ListNames(c.Request().Context())
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, names)
}

// ListAll godoc
// @Summary List category documents
// @Tags categories
// @Produce json
// @Security SessionAuth
// @Success 200 {array} model.Category
// @Failure 403 {object} errors.ErrorResponse
// @Router /admin/categories [get]
func (h *CategoryHandler) ListAll(c echo.Context) error {
	categories, err := h.categoryService.ListAll(c.Request().Context())
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, categories)
}

// Create godoc
// @Summary Create a custom category
// @Tags categories
// @Accept json
// @Produce json
// @Security SessionAuth
// @Param request body CategoryCreateRequest true "Category name"
// @Success 200 {object} model.Category
// @Failure 409 {object} errors.ErrorResponse
// @Failure 422 {object} errors.ErrorResponse
// @Router /admin/categories [post]
func (h *CategoryHandler) Create(c echo.Context) error {
	var req CategoryCreateRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	category, err := h.categoryService.Create(c.Request().Context(), req.Name)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, category)
}

// Delete godoc
// @Summary Delete a custom, unused category
// @Tags categories
// @Produce json
// @Security SessionAuth
// @Param id path string true "Category ID"
// @Success 200 {object} MessageResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 409 {object} errors.ErrorResponse
// @Router /admin/categories/{id} [delete]
func (h *CategoryHandler) Delete(c echo.Context) error {
	if err := h.categoryService.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, MessageResponse{Message: "Category deleted"})
}
