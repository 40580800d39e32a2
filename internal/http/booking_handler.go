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

// BookingHandler provides HTTP handlers for event booking routes.
type BookingHandler struct {
	bookings service.BookingService
}

// NewBookingHandler creates a new BookingHandler instance.
func NewBookingHandler(bookings service.BookingService) *BookingHandler {
	return &BookingHandler{bookings: bookings}
}

// CreateBooking handles POST /api/bookings requests.
//
// @Summary      Create event booking
// @Description  Stores a new event booking and returns it together with its computed procurement plan. An edit slug is generated so the booking can be amended without staff credentials.
// @Tags         Bookings
// @Accept       json
// @Produce      json
// @Param        request body dto.BookingRequest true "Booking details and cocktail selection"
// @Success      201 {object} dto.SuccessResponse "Created booking with plan"
// @Failure      400 {object} dto.ErrorResponse "Bad request - invalid input"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Failure      503 {object} dto.ErrorResponse "Service unavailable - database disabled"
// @Router       /api/bookings [post]
func (h *BookingHandler) CreateBooking(c *gin.Context) {
	builder := NewResponseBuilder(c)

	req := h.bindBooking(c, builder)
	if req == nil {
		return
	}

	h.audit(c, "booking_create", "Booking created", req)

	result, err := h.bookings.Create(c.Request.Context(), bookingInput(req))
	if err != nil {
		h.serviceError(builder, err)
		return
	}

	builder.SuccessCreated(dto.NewBookingResponse(result.Event, result.Plans))
}

// AmendBooking handles PUT /api/bookings/:id requests.
//
// @Summary      Amend event booking
// @Description  Replaces a booking's details and selection, reconciles the change against the stored state, and returns the updated booking, its new plan, and the change summary used for notifications. The id may be the booking ID or its edit slug.
// @Tags         Bookings
// @Accept       json
// @Produce      json
// @Param        id path string true "Booking ID or edit slug"
// @Param        request body dto.BookingRequest true "Updated booking details and selection"
// @Success      200 {object} dto.SuccessResponse "Amended booking with plan and change summary"
// @Failure      400 {object} dto.ErrorResponse "Bad request - invalid input"
// @Failure      404 {object} dto.ErrorResponse "Not found - unknown booking"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Router       /api/bookings/{id} [put]
func (h *BookingHandler) AmendBooking(c *gin.Context) {
	builder := NewResponseBuilder(c)

	req := h.bindBooking(c, builder)
	if req == nil {
		return
	}

	h.audit(c, "booking_amend", "Booking amended", req)

	result, err := h.bookings.Amend(c.Request.Context(), c.Param("id"), bookingInput(req))
	if err != nil {
		h.serviceError(builder, err)
		return
	}

	builder.SuccessOK(dto.AmendResponse{
		BookingResponse: dto.NewBookingResponse(result.Event, result.Plans),
		Changes:         result.Changes,
		Narrative:       result.Changes.Narrative(),
	})
}

// GetBooking handles GET /api/bookings/:id requests.
//
// @Summary      Get event booking
// @Description  Returns a booking together with a procurement plan freshly computed from the current catalog. The id may be the booking ID or its edit slug.
// @Tags         Bookings
// @Produce      json
// @Param        id path string true "Booking ID or edit slug"
// @Success      200 {object} dto.SuccessResponse "Booking with plan"
// @Failure      404 {object} dto.ErrorResponse "Not found - unknown booking"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Router       /api/bookings/{id} [get]
func (h *BookingHandler) GetBooking(c *gin.Context) {
	builder := NewResponseBuilder(c)

	result, err := h.bookings.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.serviceError(builder, err)
		return
	}

	builder.SuccessOK(dto.NewBookingResponse(result.Event, result.Plans))
}

// ListBookings handles GET /api/bookings requests.
//
// @Summary      List event bookings
// @Description  Returns bookings sorted by event date, optionally filtered by status. Staff only.
// @Tags         Bookings
// @Produce      json
// @Param        status query string false "Filter by status (booked, amended, cancelled)"
// @Success      200 {object} dto.SuccessResponse "Booking list"
// @Failure      401 {object} dto.ErrorResponse "Unauthorized"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Security     BearerAuth
// @Router       /api/bookings [get]
func (h *BookingHandler) ListBookings(c *gin.Context) {
	builder := NewResponseBuilder(c)

	events, err := h.bookings.List(c.Request.Context(), c.Query("status"), 200)
	if err != nil {
		h.serviceError(builder, err)
		return
	}

	builder.SuccessOK(events)
}

// bindBooking binds and validates the booking payload, writing the
// error response itself on failure.
func (h *BookingHandler) bindBooking(c *gin.Context, builder *ResponseBuilder) *dto.BookingRequest {
	var req dto.BookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequestBody, err)
		return nil
	}
	if err := req.Validate(); err != nil {
		builder.Error(http.StatusBadRequest, i18n.ErrKeyValidationBooking, err)
		return nil
	}
	return &req
}

func (h *BookingHandler) serviceError(builder *ResponseBuilder, err error) {
	switch {
	case errors.Is(err, service.ErrBookingNotFound):
		builder.Error(http.StatusNotFound, i18n.ErrKeyBookingNotFound, err)
	case errors.Is(err, service.ErrRepositoryNotConfigured):
		builder.Error(http.StatusServiceUnavailable, i18n.ErrKeyInternalError, err)
	default:
		builder.Error(http.StatusInternalServerError, i18n.ErrKeyInternalError, err)
	}
}

func (h *BookingHandler) audit(c *gin.Context, action, message string, req *dto.BookingRequest) {
	if loggingService, exists := c.Get("logging_service"); exists {
		if ls, ok := loggingService.(service.LoggingService); ok {
			middleware.AuditLog(ls, c, action, message, map[string]interface{}{
				"title":   req.Title,
				"recipes": len(req.Selection),
				"tier":    req.Tier,
			})
		}
	}
}

func bookingInput(req *dto.BookingRequest) service.BookingInput {
	return service.BookingInput{
		Title:      req.Title,
		Date:       req.Date,
		Phone:      req.Phone,
		GuestCount: req.GuestCount,
		Notes:      req.Notes,
		Tier:       req.Tier,
		Selection:  model.Selection(req.Selection),
	}
}
