package model

import (
	"fmt"
	"strconv"
)

// LineDelta describes the servings change of a single recipe across an
// amendment. Only non-zero deltas are emitted.
type LineDelta struct {
	RecipeID string `json:"recipe_id"`
	Name     string `json:"name" example:"Daiquiri"`
	Before   int    `json:"before" example:"0"`
	After    int    `json:"after" example:"4"`
	Delta    int    `json:"delta" example:"4"`
}

// Signed renders the delta with an explicit sign, e.g. "+4" or "-4".
func (d LineDelta) Signed() string {
	return signed(d.Delta)
}

// FieldChange records a scalar detail that changed across an amendment.
// It is only emitted when both sides are non-empty and differ.
type FieldChange struct {
	Field  string `json:"field" example:"date"`
	Before string `json:"before"`
	After  string `json:"after"`
}

// ScalarDelta is a before/after/delta triple for a numeric detail.
type ScalarDelta struct {
	Before int `json:"before"`
	After  int `json:"after"`
	Delta  int `json:"delta"`
}

// Signed renders the delta suffix: "+N", "-N", or "" when zero.
func (d ScalarDelta) Signed() string {
	if d.Delta == 0 {
		return ""
	}
	return signed(d.Delta)
}

// ChangeSummary is the reconciler's output: the ordered narrative lines
// plus the always-present scalar triples.
type ChangeSummary struct {
	Lines         []LineDelta   `json:"lines"`
	Fields        []FieldChange `json:"fields"`
	TotalServings ScalarDelta   `json:"total_servings"`
	GuestCount    ScalarDelta   `json:"guest_count"`
	NotesChanged  bool          `json:"notes_changed"`
}

// HasChanges reports whether anything at all changed.
func (s ChangeSummary) HasChanges() bool {
	return len(s.Lines) > 0 || len(s.Fields) > 0 ||
		s.TotalServings.Delta != 0 || s.GuestCount.Delta != 0 || s.NotesChanged
}

// Narrative renders the human-readable change lines used to compose
// amendment notifications.
func (s ChangeSummary) Narrative() []string {
	out := make([]string, 0, len(s.Lines)+len(s.Fields)+3)
	for _, d := range s.Lines {
		out = append(out, fmt.Sprintf("%s: %d -> %d (%s)", d.Name, d.Before, d.After, d.Signed()))
	}
	for _, f := range s.Fields {
		out = append(out, fmt.Sprintf("%s: %q -> %q", f.Field, f.Before, f.After))
	}
	if s.TotalServings.Delta != 0 {
		out = append(out, fmt.Sprintf("total servings: %d -> %d (%s)",
			s.TotalServings.Before, s.TotalServings.After, s.TotalServings.Signed()))
	}
	if s.GuestCount.Delta != 0 {
		out = append(out, fmt.Sprintf("guest count: %d -> %d (%s)",
			s.GuestCount.Before, s.GuestCount.After, s.GuestCount.Signed()))
	}
	if s.NotesChanged {
		out = append(out, "notes updated")
	}
	return out
}

func signed(n int) string {
	if n > 0 {
		return "+" + strconv.Itoa(n)
	}
	return strconv.Itoa(n)
}
