package service

import (
	"sort"

	"github.com/eventbar/order-engine/internal/domain/model"
)

// ChangeReconciler compares two booking snapshots and produces the
// deterministic change summary that drives amendment notifications.
// A nil/empty "before" snapshot is treated as all-zero servings, so a
// first amendment lists every current line as a positive delta.
type ChangeReconciler interface {
	Reconcile(before, after model.BookingSnapshot) model.ChangeSummary
}

// ReconcilerService implements ChangeReconciler.
type ReconcilerService struct{}

// NewReconcilerService creates a new reconciler.
func NewReconcilerService() *ReconcilerService {
	return &ReconcilerService{}
}

// Reconcile computes per-recipe deltas over the union of both
// selections, dropping zero deltas, sorted by |delta| descending and
// name ascending. Scalar field changes are reported only when both
// sides are non-empty and differ; first submissions therefore produce
// no noisy field diffs. Totals are always present.
func (s *ReconcilerService) Reconcile(before, after model.BookingSnapshot) model.ChangeSummary {
	summary := model.ChangeSummary{
		Lines:  []model.LineDelta{},
		Fields: []model.FieldChange{},
	}

	keys := make(map[string]bool)
	for id := range before.Selection {
		keys[id] = true
	}
	for id := range after.Selection {
		keys[id] = true
	}

	for id := range keys {
		b := before.Selection[id]
		a := after.Selection[id]
		if b < 0 {
			b = 0
		}
		if a < 0 {
			a = 0
		}
		delta := a - b
		if delta == 0 {
			continue
		}
		summary.Lines = append(summary.Lines, model.LineDelta{
			RecipeID: id,
			Name:     displayName(id, before.RecipeNames, after.RecipeNames),
			Before:   b,
			After:    a,
			Delta:    delta,
		})
	}

	sort.Slice(summary.Lines, func(i, j int) bool {
		di, dj := abs(summary.Lines[i].Delta), abs(summary.Lines[j].Delta)
		if di != dj {
			return di > dj
		}
		return summary.Lines[i].Name < summary.Lines[j].Name
	})

	summary.Fields = appendFieldChange(summary.Fields, "title", before.Details.Title, after.Details.Title)
	summary.Fields = appendFieldChange(summary.Fields, "date", before.Details.Date, after.Details.Date)
	summary.Fields = appendFieldChange(summary.Fields, "phone", before.Details.Phone, after.Details.Phone)

	beforeTotal := before.Selection.TotalServings()
	afterTotal := after.Selection.TotalServings()
	summary.TotalServings = model.ScalarDelta{
		Before: beforeTotal,
		After:  afterTotal,
		Delta:  afterTotal - beforeTotal,
	}
	summary.GuestCount = model.ScalarDelta{
		Before: before.Details.GuestCount,
		After:  after.Details.GuestCount,
		Delta:  after.Details.GuestCount - before.Details.GuestCount,
	}
	summary.NotesChanged = before.Details.HasNotes != after.Details.HasNotes

	return summary
}

// appendFieldChange records a change only when both values are present
// and differ. Empty-to-value transitions are deliberate no-ops.
func appendFieldChange(fields []model.FieldChange, name, before, after string) []model.FieldChange {
	if before == "" || after == "" || before == after {
		return fields
	}
	return append(fields, model.FieldChange{Field: name, Before: before, After: after})
}

// displayName prefers the after snapshot's name index, then the
// before's, then the raw recipe ID.
func displayName(id string, before, after map[string]string) string {
	if name, ok := after[id]; ok && name != "" {
		return name
	}
	if name, ok := before[id]; ok && name != "" {
		return name
	}
	return id
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
