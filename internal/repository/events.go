package repository

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/eventbar/order-engine/internal/domain/model"
)

// EventsRepository persists event bookings.
type EventsRepository struct {
	collection *mongo.Collection
}

// NewEventsRepository creates an events repository.
func NewEventsRepository(db *MongoDB) *EventsRepository {
	return &EventsRepository{
		collection: db.Events,
	}
}

// Create inserts a new booking. ID and timestamps are assigned here.
func (r *EventsRepository) Create(ctx context.Context, event *model.Event) (*model.Event, error) {
	now := time.Now()
	event.ID = primitive.NewObjectID()
	event.CreatedAt = now
	event.UpdatedAt = now
	if event.Status == "" {
		event.Status = model.EventStatusBooked
	}

	if _, err := r.collection.InsertOne(ctx, event); err != nil {
		return nil, err
	}
	return event, nil
}

// GetByID returns one booking, nil when not found.
func (r *EventsRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*model.Event, error) {
	var event model.Event
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&event)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &event, nil
}

// GetBySlug looks up a booking by its edit slug, nil when not found.
func (r *EventsRepository) GetBySlug(ctx context.Context, slug string) (*model.Event, error) {
	var event model.Event
	err := r.collection.FindOne(ctx, bson.M{"edit_slug": slug}).Decode(&event)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &event, nil
}

// Update replaces a booking document and bumps UpdatedAt. Returns the
// stored document, nil when the booking does not exist.
func (r *EventsRepository) Update(ctx context.Context, event *model.Event) (*model.Event, error) {
	event.UpdatedAt = time.Now()

	result, err := r.collection.ReplaceOne(ctx, bson.M{"_id": event.ID}, event)
	if err != nil {
		return nil, err
	}
	if result.MatchedCount == 0 {
		return nil, nil
	}
	return event, nil
}

// List returns bookings sorted by event date, optionally filtered by
// status.
func (r *EventsRepository) List(ctx context.Context, status string, limit int) ([]model.Event, error) {
	filter := bson.M{}
	if status != "" {
		filter["status"] = status
	}

	findOptions := options.Find().SetSort(bson.M{"date": 1})
	if limit > 0 {
		findOptions.SetLimit(int64(limit))
	}

	cursor, err := r.collection.Find(ctx, filter, findOptions)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = cursor.Close(ctx)
	}()

	var events []model.Event
	if err := cursor.All(ctx, &events); err != nil {
		return nil, err
	}
	return events, nil
}
