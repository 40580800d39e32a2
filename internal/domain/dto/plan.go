package dto

import "github.com/eventbar/order-engine/internal/domain/model"

// PlanLineResponse is one procurement plan line in API responses.
//
// @Description One ingredient's purchase recommendation
type PlanLineResponse struct {
	Key           string           `json:"key"`
	Name          string           `json:"name" example:"White Rum"`
	Category      string           `json:"category" example:"liquor"`
	Unit          string           `json:"unit" example:"ml"`
	RawTotal      float64          `json:"raw_total" example:"1800"`
	BufferedTotal float64          `json:"buffered_total" example:"1980"`
	RoundedTotal  float64          `json:"rounded_total" example:"1980"`
	Packs         []model.PackLine `json:"packs"`
	// Description renders the purchasable quantity, e.g. "3 x 700 ml".
	Description string   `json:"description" example:"3 x 700 ml"`
	TotalPrice  *float64 `json:"total_price,omitempty" example:"64.5"`
} // @name PlanLineResponse

// PlanPreviewResponse represents the JSON response body for the plan
// preview endpoint.
//
// @Description Computed procurement plan for a cocktail selection
type PlanPreviewResponse struct {
	Plans []PlanLineResponse `json:"plans"`
	// TotalServings is the summed servings across the selection.
	TotalServings int `json:"total_servings" example:"65"`
} // @name PlanPreviewResponse

// BookingResponse represents a stored booking with its computed plan.
//
// @Description Stored booking and its freshly computed procurement plan
type BookingResponse struct {
	ID         string             `json:"id"`
	Title      string             `json:"title" example:"Summer party"`
	Date       string             `json:"date,omitempty" example:"2026-09-12"`
	Phone      string             `json:"phone,omitempty"`
	GuestCount int                `json:"guest_count" example:"60"`
	Notes      string             `json:"notes,omitempty"`
	Tier       string             `json:"tier" example:"economy"`
	Status     string             `json:"status" example:"booked"`
	Selection  map[string]int     `json:"selection"`
	EditSlug   string             `json:"edit_slug,omitempty"`
	Plans      []PlanLineResponse `json:"plans"`
} // @name BookingResponse

// AmendResponse extends BookingResponse with the reconciled changes.
//
// @Description Amended booking, its new plan, and the change summary
type AmendResponse struct {
	BookingResponse
	Changes model.ChangeSummary `json:"changes"`
	// Narrative is the human-readable change description used in
	// notifications, one line per change.
	Narrative []string `json:"narrative"`
} // @name AmendResponse

// NewPlanLineResponse maps a domain plan to its response shape.
func NewPlanLineResponse(plan model.ProcurementPlan) PlanLineResponse {
	return PlanLineResponse{
		Key:           plan.Key,
		Name:          plan.Name,
		Category:      string(plan.Category),
		Unit:          plan.Unit,
		RawTotal:      plan.RawTotal,
		BufferedTotal: plan.BufferedTotal,
		RoundedTotal:  plan.RoundedTotal,
		Packs:         plan.Packs,
		Description:   plan.Description(),
		TotalPrice:    plan.TotalPrice,
	}
}

// NewPlanLineResponses maps a plan slice, preserving order.
func NewPlanLineResponses(plans []model.ProcurementPlan) []PlanLineResponse {
	out := make([]PlanLineResponse, len(plans))
	for i, plan := range plans {
		out[i] = NewPlanLineResponse(plan)
	}
	return out
}

// NewBookingResponse maps a stored event and its plan to the response shape.
func NewBookingResponse(event *model.Event, plans []model.ProcurementPlan) BookingResponse {
	return BookingResponse{
		ID:         event.ID.Hex(),
		Title:      event.Title,
		Date:       event.Date,
		Phone:      event.Phone,
		GuestCount: event.GuestCount,
		Notes:      event.Notes,
		Tier:       string(event.Tier),
		Status:     event.Status,
		Selection:  event.Selection,
		EditSlug:   event.EditSlug,
		Plans:      NewPlanLineResponses(plans),
	}
}
