package http

import (
	"github.com/gin-gonic/gin"

	"github.com/eventbar/order-engine/internal/service"
)

// EngineRoutes handles plan, booking, and catalog route registration.
type EngineRoutes struct {
	handler        *Handler
	bookingHandler *BookingHandler
	catalogHandler *CatalogHandler
}

// NewEngineRoutes creates a new EngineRoutes instance.
func NewEngineRoutes(bookings service.BookingService, catalog service.CatalogService, computer service.OrderComputer) *EngineRoutes {
	return &EngineRoutes{
		handler:        NewHandler(bookings),
		bookingHandler: NewBookingHandler(bookings),
		catalogHandler: NewCatalogHandler(catalog, computer),
	}
}

// RegisterPublicRoutes registers the customer-facing routes. These are
// always public: bookings are created and amended by guests holding an
// edit slug, not by staff.
func (r *EngineRoutes) RegisterPublicRoutes(rg *gin.RouterGroup) {
	rg.POST("/plan/preview", r.handler.PreviewPlan)

	rg.POST("/bookings", r.bookingHandler.CreateBooking)
	rg.GET("/bookings/:id", r.bookingHandler.GetBooking)
	rg.PUT("/bookings/:id", r.bookingHandler.AmendBooking)

	rg.GET("/recipes", r.catalogHandler.ListRecipes)
	rg.GET("/ingredients", r.catalogHandler.ListIngredients)
}

// RegisterProtectedRoutes registers the staff-only routes (when auth is enabled).
func (r *EngineRoutes) RegisterProtectedRoutes(protected *gin.RouterGroup, cfg *RouterConfig) {
	protected.GET("/bookings", r.bookingHandler.ListBookings)
	protected.PUT("/ingredients/:id/offers", r.catalogHandler.UpdateOffers)
}

// GetHandler returns the underlying plan handler.
func (r *EngineRoutes) GetHandler() *Handler {
	return r.handler
}
