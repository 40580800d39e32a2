package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/eventbar/order-engine/internal/domain/dto"
	"github.com/eventbar/order-engine/internal/domain/model"
	"github.com/eventbar/order-engine/internal/i18n"
	"github.com/eventbar/order-engine/internal/middleware"
	"github.com/eventbar/order-engine/internal/service"
)

// Handler provides HTTP handlers for plan computation routes.
type Handler struct {
	bookings service.BookingService
}

// NewHandler creates a new Handler instance.
func NewHandler(bookings service.BookingService) *Handler {
	return &Handler{bookings: bookings}
}

// PreviewPlan handles POST /api/plan/preview requests.
//
// @Summary      Preview procurement plan
// @Description  Computes the full procurement plan for a cocktail selection without persisting anything. Per-serving requirements are aggregated across recipes, a 10% safety buffer is applied, quantities are rounded by category policy, and each line is resolved to the optimal pack combination for the selected pricing tier. Supports idempotency via Idempotency-Key header.
// @Tags         Plans
// @Accept       json
// @Produce      json
// @Param        Idempotency-Key header string false "Idempotency key for request deduplication"
// @Param        request body dto.PlanPreviewRequest true "Cocktail selection and pricing tier"
// @Success      200 {object} dto.SuccessResponse "Computed plan"
// @Failure      400 {object} dto.ErrorResponse "Bad request - invalid input"
// @Failure      429 {object} dto.ErrorResponse "Too many requests - rate limit exceeded"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Router       /api/plan/preview [post]
func (h *Handler) PreviewPlan(c *gin.Context) {
	builder := NewResponseBuilder(c)

	var req dto.PlanPreviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequestBody, err)
		return
	}

	if err := req.Validate(); err != nil {
		builder.Error(http.StatusBadRequest, i18n.ErrKeyValidationSelection, err)
		return
	}

	// Audit log (async)
	if loggingService, exists := c.Get("logging_service"); exists {
		if ls, ok := loggingService.(service.LoggingService); ok {
			middleware.AuditLog(ls, c, "plan_preview", "Plan preview requested", map[string]interface{}{
				"recipes": len(req.Selection),
				"tier":    req.Tier,
			})
		}
	}

	selection := model.Selection(req.Selection)
	plans := h.bookings.Preview(c.Request.Context(), selection, req.Tier)

	builder.SuccessOK(dto.PlanPreviewResponse{
		Plans:         dto.NewPlanLineResponses(plans),
		TotalServings: selection.TotalServings(),
	})
}
