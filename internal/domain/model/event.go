package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Selection maps recipe IDs to requested servings for an event.
type Selection map[string]int

// TotalServings sums all positive servings in the selection.
func (s Selection) TotalServings() int {
	total := 0
	for _, n := range s {
		if n > 0 {
			total += n
		}
	}
	return total
}

// Clone returns an independent copy of the selection.
func (s Selection) Clone() Selection {
	out := make(Selection, len(s))
	for k, v := range s {
		out[k] = v
	}
	return out
}

// Event statuses.
const (
	EventStatusBooked    = "booked"
	EventStatusAmended   = "amended"
	EventStatusCancelled = "cancelled"
)

// Event is the persisted booking: scalar details, pricing tier, and the
// selected cocktails. It is the only long-lived artifact; procurement
// plans are recomputed from it on every read.
type Event struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Title      string             `bson:"title" json:"title"`
	Date       string             `bson:"date,omitempty" json:"date,omitempty"`
	Phone      string             `bson:"phone,omitempty" json:"phone,omitempty"`
	GuestCount int                `bson:"guest_count" json:"guest_count"`
	Notes      string             `bson:"notes,omitempty" json:"notes,omitempty"`
	Tier       Tier               `bson:"tier" json:"tier"`
	Status     string             `bson:"status" json:"status"`
	Selection  Selection          `bson:"selection" json:"selection"`
	EditSlug   string             `bson:"edit_slug,omitempty" json:"edit_slug,omitempty"`
	CreatedAt  time.Time          `bson:"created_at" json:"created_at"`
	UpdatedAt  time.Time          `bson:"updated_at" json:"updated_at"`
}

// Details extracts the scalar fields the reconciler compares.
func (e Event) Details() EventDetails {
	return EventDetails{
		Title:      e.Title,
		Date:       e.Date,
		Phone:      e.Phone,
		GuestCount: e.GuestCount,
		HasNotes:   e.Notes != "",
	}
}

// EventDetails carries the scalar metadata compared across an
// amendment. HasNotes is a presence flag only; note text never leaves
// the persistence layer.
type EventDetails struct {
	Title      string
	Date       string
	Phone      string
	GuestCount int
	HasNotes   bool
}

// BookingSnapshot is one side of a reconciliation: what was selected
// and the scalar details at that point in time. RecipeNames labels
// delta lines; IDs without a name fall back to the raw ID.
type BookingSnapshot struct {
	Selection   Selection
	Details     EventDetails
	RecipeNames map[string]string
}
