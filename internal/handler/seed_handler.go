package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"grocerly/internal/service"
)

// SeedHandler handles the sample-data endpoint.
type SeedHandler struct {
	catalogService service.CatalogService
}

// NewSeedHandler creates a new seed handler.
func NewSeedHandler(catalogService service.CatalogService) *SeedHandler {
	return &SeedHandler{catalogService: catalogService}
}

// SeedItemsResponse reports how many sample items were written.
type SeedItemsResponse struct {
	Message string `json:"message"`
	Count   int    `json:"count"`
}

// SeedItems godoc
// @Summary Seed sample catalog items into an empty catalog
// @Tags seed
// @Produce json
// @Success 200 {object} SeedItemsResponse
// @Router /seed-items [post]
func (h *SeedHandler) SeedItems(c echo.Context) error {
	count, err := h.catalogService.SeedItems(c.Request().Context())
	if err != nil {
		return httpError(err)
	}

	message := "Sample items seeded"
	if count == 0 {
		message = "Items already seeded"
	}
	return c.JSON(http.StatusOK, SeedItemsResponse{Message: message, Count: count})
}
