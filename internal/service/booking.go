package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/eventbar/order-engine/internal/domain/model"
	"github.com/eventbar/order-engine/internal/metrics"
	"github.com/eventbar/order-engine/internal/repository"
)

// ErrBookingNotFound is returned when no booking matches the given
// identifier or edit slug.
var ErrBookingNotFound = errors.New("booking not found")

// BookingInput carries the client-supplied booking fields.
type BookingInput struct {
	Title      string
	Date       string
	Phone      string
	GuestCount int
	Notes      string
	Tier       string
	Selection  model.Selection
}

// BookingResult is a stored booking together with its freshly computed
// procurement plan. Plans are never persisted; they are recomputed from
// the current catalog on every read.
type BookingResult struct {
	Event *model.Event
	Plans []model.ProcurementPlan
}

// AmendResult extends BookingResult with the change summary produced by
// reconciling the booking before and after the amendment.
type AmendResult struct {
	BookingResult
	Changes model.ChangeSummary
}

// BookingService manages event bookings on top of the order computer.
type BookingService interface {
	Create(ctx context.Context, input BookingInput) (*BookingResult, error)
	Amend(ctx context.Context, id string, input BookingInput) (*AmendResult, error)
	Get(ctx context.Context, id string) (*BookingResult, error)
	List(ctx context.Context, status string, limit int) ([]model.Event, error)
	Preview(ctx context.Context, selection model.Selection, tier string) []model.ProcurementPlan
}

// BookingServiceImpl implements BookingService.
type BookingServiceImpl struct {
	events     repository.EventsRepositoryInterface
	catalog    CatalogService
	computer   OrderComputer
	reconciler ChangeReconciler
}

// NewBookingService creates a booking service.
func NewBookingService(
	events repository.EventsRepositoryInterface,
	catalog CatalogService,
	computer OrderComputer,
	reconciler ChangeReconciler,
) BookingService {
	return &BookingServiceImpl{
		events:     events,
		catalog:    catalog,
		computer:   computer,
		reconciler: reconciler,
	}
}

// Preview computes a procurement plan without persisting anything.
func (s *BookingServiceImpl) Preview(ctx context.Context, selection model.Selection, tier string) []model.ProcurementPlan {
	start := time.Now()
	catalog := s.catalog.Snapshot(ctx)
	plans := s.computer.ComputePlan(catalog, selection, model.NormalizeTier(tier))
	metrics.RecordPlanComputation(time.Since(start), "preview")
	return plans
}

// Create stores a new booking and returns it with its plan.
func (s *BookingServiceImpl) Create(ctx context.Context, input BookingInput) (*BookingResult, error) {
	if s.events == nil {
		return nil, ErrRepositoryNotConfigured
	}

	event := &model.Event{
		Title:      input.Title,
		Date:       input.Date,
		Phone:      input.Phone,
		GuestCount: input.GuestCount,
		Notes:      input.Notes,
		Tier:       model.NormalizeTier(input.Tier),
		Status:     model.EventStatusBooked,
		Selection:  sanitizeSelection(input.Selection),
		EditSlug:   uuid.NewString(),
	}

	stored, err := s.events.Create(ctx, event)
	if err != nil {
		return nil, fmt.Errorf("failed to create booking: %w", err)
	}

	catalog := s.catalog.Snapshot(ctx)
	start := time.Now()
	plans := s.computer.ComputePlan(catalog, stored.Selection, stored.Tier)
	metrics.RecordPlanComputation(time.Since(start), "booking_create")

	log.Info().
		Str("booking_id", stored.ID.Hex()).
		Int("recipes", len(stored.Selection)).
		Int("plan_lines", len(plans)).
		Msg("booking created")

	return &BookingResult{Event: stored, Plans: plans}, nil
}

// Amend updates an existing booking and reconciles the change. The
// before snapshot is taken from the stored booking, the after snapshot
// from the incoming input; both use the current catalog's recipe names.
func (s *BookingServiceImpl) Amend(ctx context.Context, id string, input BookingInput) (*AmendResult, error) {
	if s.events == nil {
		return nil, ErrRepositoryNotConfigured
	}

	event, err := s.lookup(ctx, id)
	if err != nil {
		return nil, err
	}

	catalog := s.catalog.Snapshot(ctx)
	names := catalog.RecipeNames()

	before := model.BookingSnapshot{
		Selection:   event.Selection.Clone(),
		Details:     event.Details(),
		RecipeNames: names,
	}

	event.Title = input.Title
	event.Date = input.Date
	event.Phone = input.Phone
	event.GuestCount = input.GuestCount
	event.Notes = input.Notes
	event.Tier = model.NormalizeTier(input.Tier)
	event.Selection = sanitizeSelection(input.Selection)
	event.Status = model.EventStatusAmended

	after := model.BookingSnapshot{
		Selection:   event.Selection.Clone(),
		Details:     event.Details(),
		RecipeNames: names,
	}

	stored, err := s.events.Update(ctx, event)
	if err != nil {
		return nil, fmt.Errorf("failed to update booking: %w", err)
	}
	if stored == nil {
		return nil, ErrBookingNotFound
	}

	changes := s.reconciler.Reconcile(before, after)
	metrics.RecordReconciliation(reconcileStatus(changes))

	start := time.Now()
	plans := s.computer.ComputePlan(catalog, stored.Selection, stored.Tier)
	metrics.RecordPlanComputation(time.Since(start), "booking_amend")

	log.Info().
		Str("booking_id", stored.ID.Hex()).
		Int("line_deltas", len(changes.Lines)).
		Int("field_changes", len(changes.Fields)).
		Msg("booking amended")

	return &AmendResult{
		BookingResult: BookingResult{Event: stored, Plans: plans},
		Changes:       changes,
	}, nil
}

// Get returns a booking with a freshly computed plan. The id may be the
// booking's object ID or its edit slug.
func (s *BookingServiceImpl) Get(ctx context.Context, id string) (*BookingResult, error) {
	if s.events == nil {
		return nil, ErrRepositoryNotConfigured
	}

	event, err := s.lookup(ctx, id)
	if err != nil {
		return nil, err
	}

	catalog := s.catalog.Snapshot(ctx)
	start := time.Now()
	plans := s.computer.ComputePlan(catalog, event.Selection, event.Tier)
	metrics.RecordPlanComputation(time.Since(start), "booking_get")

	return &BookingResult{Event: event, Plans: plans}, nil
}

// List returns bookings filtered by status.
func (s *BookingServiceImpl) List(ctx context.Context, status string, limit int) ([]model.Event, error) {
	if s.events == nil {
		return nil, ErrRepositoryNotConfigured
	}
	return s.events.List(ctx, status, limit)
}

// lookup resolves an identifier that may be an object ID hex or an edit
// slug.
func (s *BookingServiceImpl) lookup(ctx context.Context, id string) (*model.Event, error) {
	if oid, err := primitive.ObjectIDFromHex(id); err == nil {
		event, err := s.events.GetByID(ctx, oid)
		if err != nil {
			return nil, fmt.Errorf("failed to load booking: %w", err)
		}
		if event != nil {
			return event, nil
		}
	}

	event, err := s.events.GetBySlug(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to load booking: %w", err)
	}
	if event == nil {
		return nil, ErrBookingNotFound
	}
	return event, nil
}

// sanitizeSelection drops non-positive servings so stored selections
// only ever carry meaningful lines.
func sanitizeSelection(selection model.Selection) model.Selection {
	out := make(model.Selection, len(selection))
	for id, servings := range selection {
		if id != "" && servings > 0 {
			out[id] = servings
		}
	}
	return out
}

func reconcileStatus(changes model.ChangeSummary) string {
	if changes.HasChanges() {
		return "changed"
	}
	return "unchanged"
}
