// Package dto defines Data Transfer Objects for HTTP request and response handling.
//
// DTOs are used to decouple the HTTP layer from the domain model,
// providing validation and serialization for API communication.
package dto

// PlanPreviewRequest represents the JSON request body for the plan preview endpoint.
//
// Selection maps recipe IDs to requested servings; at least one entry
// with a positive serving count is required. Tier is optional and
// defaults to economy.
//
// @Description Request to compute a procurement plan for a cocktail selection
// @Example {"selection": {"margarita": 40, "daiquiri": 25}, "tier": "business"}
type PlanPreviewRequest struct {
	// Selection maps recipe IDs to requested servings.
	Selection map[string]int `json:"selection" binding:"required"`
	// Tier is the pricing tier: economy, business, or first_class.
	Tier string `json:"tier,omitempty" example:"economy"`
} // @name PlanPreviewRequest

// ValidationError represents a field validation error.
type ValidationError struct {
	Field   string
	Message string
}

var (
	// ErrEmptySelection is returned when the selection carries no positive servings.
	ErrEmptySelection = &ValidationError{
		Field:   "selection",
		Message: "must contain at least one recipe with positive servings",
	}
	// ErrMissingTitle is returned when a booking has no title.
	ErrMissingTitle = &ValidationError{
		Field:   "title",
		Message: "is required",
	}
	// ErrNegativeGuestCount is returned when guest_count is negative.
	ErrNegativeGuestCount = &ValidationError{
		Field:   "guest_count",
		Message: "must not be negative",
	}
)

// Error returns the error message for ValidationError.
func (e *ValidationError) Error() string {
	return e.Field + ": " + e.Message
}

// Validate performs custom validation on the request.
// Returns an error if validation fails, nil otherwise.
func (r *PlanPreviewRequest) Validate() error {
	if !hasPositiveServings(r.Selection) {
		return ErrEmptySelection
	}
	return nil
}

// BookingRequest represents the JSON request body for creating or
// amending an event booking.
//
// @Description Event booking payload: scalar details plus the cocktail selection
// @Example {"title": "Summer party", "date": "2026-09-12", "guest_count": 60, "tier": "economy", "selection": {"mojito": 60}}
type BookingRequest struct {
	// Title is the event's display title.
	Title string `json:"title" binding:"required" example:"Summer party"`
	// Date is the event date as free text (display only).
	Date string `json:"date,omitempty" example:"2026-09-12"`
	// Phone is the contact phone number.
	Phone string `json:"phone,omitempty" example:"+49 151 0000000"`
	// GuestCount is the expected number of guests.
	GuestCount int `json:"guest_count" example:"60" minimum:"0"`
	// Notes is free-text information for the bar crew.
	Notes string `json:"notes,omitempty"`
	// Tier is the pricing tier: economy, business, or first_class.
	Tier string `json:"tier,omitempty" example:"economy"`
	// Selection maps recipe IDs to requested servings.
	Selection map[string]int `json:"selection" binding:"required"`
} // @name BookingRequest

// Validate performs custom validation on the booking request.
func (r *BookingRequest) Validate() error {
	if r.Title == "" {
		return ErrMissingTitle
	}
	if r.GuestCount < 0 {
		return ErrNegativeGuestCount
	}
	if !hasPositiveServings(r.Selection) {
		return ErrEmptySelection
	}
	return nil
}

// OfferPayload is one pack offer in an offer replacement request.
type OfferPayload struct {
	// ID identifies the offer within its ingredient.
	ID string `json:"id" binding:"required"`
	// Size is the pack size in the ingredient's unit.
	Size float64 `json:"size" binding:"required,gt=0" example:"700"`
	// Price is the optional pack price.
	Price *float64 `json:"price,omitempty" example:"21.5"`
	// Reference is an optional purchase reference.
	Reference string `json:"reference,omitempty"`
	// Tier restricts the offer to a pricing tier; empty means untagged.
	Tier string `json:"tier,omitempty" example:"economy"`
	// Active offers are the only ones the planner considers.
	Active bool `json:"active"`
} // @name OfferPayload

// UpdateOffersRequest represents the JSON request body for replacing an
// ingredient's pack offers.
type UpdateOffersRequest struct {
	// Offers is the full replacement offer list.
	Offers []OfferPayload `json:"offers" binding:"required"`
} // @name UpdateOffersRequest

// Validate performs custom validation on the offers request.
func (r *UpdateOffersRequest) Validate() error {
	for _, offer := range r.Offers {
		if offer.ID == "" {
			return &ValidationError{Field: "offers.id", Message: "is required"}
		}
		if offer.Size <= 0 {
			return &ValidationError{Field: "offers.size", Message: "must be positive"}
		}
		if offer.Price != nil && *offer.Price < 0 {
			return &ValidationError{Field: "offers.price", Message: "must not be negative"}
		}
	}
	return nil
}

func hasPositiveServings(selection map[string]int) bool {
	for _, servings := range selection {
		if servings > 0 {
			return true
		}
	}
	return false
}
