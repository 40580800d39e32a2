package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/eventbar/order-engine/internal/domain/dto"
	"github.com/eventbar/order-engine/internal/domain/model"
	"github.com/eventbar/order-engine/internal/i18n"
	"github.com/eventbar/order-engine/internal/middleware"
	"github.com/eventbar/order-engine/internal/service"
)

// CatalogHandler provides HTTP handlers for catalog routes.
type CatalogHandler struct {
	catalog  service.CatalogService
	computer service.OrderComputer
}

// NewCatalogHandler creates a new CatalogHandler instance.
func NewCatalogHandler(catalog service.CatalogService, computer service.OrderComputer) *CatalogHandler {
	return &CatalogHandler{
		catalog:  catalog,
		computer: computer,
	}
}

// ListRecipes handles GET /api/recipes requests.
//
// @Summary      List recipes
// @Description  Returns all cocktail recipes with their per-serving components, sorted by name.
// @Tags         Catalog
// @Produce      json
// @Success      200 {object} dto.SuccessResponse "Recipe list"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Router       /api/recipes [get]
func (h *CatalogHandler) ListRecipes(c *gin.Context) {
	builder := NewResponseBuilder(c)

	recipes, err := h.catalog.ListRecipes(c.Request.Context())
	if err != nil {
		builder.Error(http.StatusInternalServerError, i18n.ErrKeyInternalError, err)
		return
	}

	builder.SuccessOK(recipes)
}

// ListIngredients handles GET /api/ingredients requests.
//
// @Summary      List ingredients
// @Description  Returns all catalog ingredients with their pack offers, sorted by name.
// @Tags         Catalog
// @Produce      json
// @Success      200 {object} dto.SuccessResponse "Ingredient list"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Router       /api/ingredients [get]
func (h *CatalogHandler) ListIngredients(c *gin.Context) {
	builder := NewResponseBuilder(c)

	ingredients, err := h.catalog.ListIngredients(c.Request.Context())
	if err != nil {
		builder.Error(http.StatusInternalServerError, i18n.ErrKeyInternalError, err)
		return
	}

	builder.SuccessOK(ingredients)
}

// UpdateOffers handles PUT /api/ingredients/:id/offers requests.
//
// @Summary      Replace ingredient pack offers
// @Description  Replaces an ingredient's pack offer list and invalidates all cached plans so subsequent computations see the new offers. Staff only.
// @Tags         Catalog
// @Accept       json
// @Produce      json
// @Param        id path string true "Ingredient ID"
// @Param        request body dto.UpdateOffersRequest true "Replacement offer list"
// @Success      200 {object} dto.SuccessResponse "Updated ingredient"
// @Failure      400 {object} dto.ErrorResponse "Bad request - invalid input"
// @Failure      401 {object} dto.ErrorResponse "Unauthorized"
// @Failure      404 {object} dto.ErrorResponse "Not found - unknown ingredient"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Security     BearerAuth
// @Router       /api/ingredients/{id}/offers [put]
func (h *CatalogHandler) UpdateOffers(c *gin.Context) {
	builder := NewResponseBuilder(c)

	var req dto.UpdateOffersRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequestBody, err)
		return
	}
	if err := req.Validate(); err != nil {
		builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequestBody, err)
		return
	}

	offers := make([]model.PackOffer, len(req.Offers))
	for i, o := range req.Offers {
		offers[i] = model.PackOffer{
			ID:        o.ID,
			Size:      o.Size,
			Price:     o.Price,
			Reference: o.Reference,
			TierTag:   o.Tier,
			Active:    o.Active,
		}
	}

	updated, err := h.catalog.ReplaceOffers(c.Request.Context(), c.Param("id"), offers)
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, service.ErrRepositoryNotConfigured) {
			status = http.StatusServiceUnavailable
		}
		builder.Error(status, i18n.ErrKeyInternalError, err)
		return
	}
	if updated == nil {
		builder.Error(http.StatusNotFound, i18n.ErrKeyIngredientNotFound, nil)
		return
	}

	// Cached plans are stale as soon as offers change.
	if h.computer != nil {
		h.computer.InvalidateCache()
	}

	if loggingService, exists := c.Get("logging_service"); exists {
		if ls, ok := loggingService.(service.LoggingService); ok {
			middleware.AuditLog(ls, c, "offers_update", "Ingredient offers replaced", map[string]interface{}{
				"ingredient_id": updated.ID,
				"offers":        len(offers),
			})
		}
	}

	builder.SuccessOK(updated)
}
