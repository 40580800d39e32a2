package repository

import (
	"context"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/eventbar/order-engine/internal/domain/model"
)

// UsersRepository persists staff user accounts.
type UsersRepository struct {
	collection *mongo.Collection
}

// NewUsersRepository creates a users repository.
func NewUsersRepository(db *MongoDB) *UsersRepository {
	return &UsersRepository{
		collection: db.Users,
	}
}

// GetByEmail returns the active user with the given email, nil when not
// found. Lookup is case-insensitive via lowercasing.
func (r *UsersRepository) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	var user model.User
	filter := bson.M{
		"email":  strings.ToLower(strings.TrimSpace(email)),
		"active": true,
	}
	err := r.collection.FindOne(ctx, filter).Decode(&user)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// Create inserts a new staff user. Email is normalized to lowercase.
func (r *UsersRepository) Create(ctx context.Context, user *model.User) (*model.User, error) {
	now := time.Now()
	user.ID = primitive.NewObjectID()
	user.Email = strings.ToLower(strings.TrimSpace(user.Email))
	user.Active = true
	user.CreatedAt = now
	user.UpdatedAt = now

	if _, err := r.collection.InsertOne(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}
