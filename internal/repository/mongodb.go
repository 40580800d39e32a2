// Package repository provides the MongoDB data access layer.
package repository

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoConfig holds MongoDB connection pool configuration.
type MongoConfig struct {
	MaxPoolSize            uint64
	MinPoolSize            uint64
	MaxConnIdleTime        time.Duration
	ConnectTimeout         time.Duration
	ServerSelectionTimeout time.Duration
	SocketTimeout          time.Duration
	EnableCompression      bool
}

// DefaultMongoConfig returns production defaults.
func DefaultMongoConfig() MongoConfig {
	return MongoConfig{
		MaxPoolSize:            50,
		MinPoolSize:            10,
		MaxConnIdleTime:        10 * time.Minute,
		ConnectTimeout:         10 * time.Second,
		ServerSelectionTimeout: 5 * time.Second,
		SocketTimeout:          30 * time.Second,
		EnableCompression:      true,
	}
}

// MongoDB provides the client and the collections used by the engine.
type MongoDB struct {
	Client      *mongo.Client
	Database    *mongo.Database
	Ingredients *mongo.Collection
	Recipes     *mongo.Collection
	Events      *mongo.Collection
	Logs        *mongo.Collection
	Users       *mongo.Collection
}

// NewMongoDB connects with default configuration.
func NewMongoDB(uri, databaseName string) (*MongoDB, error) {
	return NewMongoDBWithConfig(uri, databaseName, DefaultMongoConfig())
}

// NewMongoDBWithConfig connects with custom configuration and creates
// the collection indexes.
func NewMongoDBWithConfig(uri, databaseName string, cfg MongoConfig) (*MongoDB, error) {
	ctx, cancel := context.WithTimeout(context.Background(), cfg.ConnectTimeout)
	defer cancel()

	clientOptions := options.Client().
		ApplyURI(uri).
		SetMaxPoolSize(cfg.MaxPoolSize).
		SetMinPoolSize(cfg.MinPoolSize).
		SetMaxConnIdleTime(cfg.MaxConnIdleTime).
		SetConnectTimeout(cfg.ConnectTimeout).
		SetServerSelectionTimeout(cfg.ServerSelectionTimeout).
		SetSocketTimeout(cfg.SocketTimeout)

	if cfg.EnableCompression {
		clientOptions.SetCompressors([]string{"zstd", "snappy", "zlib"})
	}
	clientOptions.SetRetryWrites(true)
	clientOptions.SetRetryReads(true)

	client, err := mongo.Connect(ctx, clientOptions)
	if err != nil {
		return nil, err
	}
	if err := client.Ping(ctx, nil); err != nil {
		return nil, err
	}

	db := client.Database(databaseName)
	m := &MongoDB{
		Client:      client,
		Database:    db,
		Ingredients: db.Collection("ingredients"),
		Recipes:     db.Collection("recipes"),
		Events:      db.Collection("events"),
		Logs:        db.Collection("logs"),
		Users:       db.Collection("users"),
	}

	if err := m.createIndexes(ctx); err != nil {
		return nil, err
	}
	return m, nil
}

// createIndexes creates the collection indexes. Conflicts with
// pre-existing indexes are tolerated.
func (m *MongoDB) createIndexes(ctx context.Context) error {
	// Compound keys need bson.D: the driver rejects multi-key maps
	// because their field order is undefined.
	ingredientNameIndex := mongo.IndexModel{
		Keys:    bson.D{{Key: "name", Value: 1}, {Key: "category", Value: 1}},
		Options: options.Index().SetUnique(false),
	}
	if _, err := m.Ingredients.Indexes().CreateOne(ctx, ingredientNameIndex); err != nil {
		return err
	}

	recipeNameIndex := mongo.IndexModel{
		Keys:    map[string]interface{}{"name": 1},
		Options: options.Index().SetUnique(false),
	}
	_, _ = m.Recipes.Indexes().CreateOne(ctx, recipeNameIndex)

	eventStatusIndex := mongo.IndexModel{
		Keys:    bson.D{{Key: "status", Value: 1}, {Key: "date", Value: 1}},
		Options: options.Index().SetUnique(false),
	}
	_, _ = m.Events.Indexes().CreateOne(ctx, eventStatusIndex)

	eventSlugIndex := mongo.IndexModel{
		Keys:    map[string]interface{}{"edit_slug": 1},
		Options: options.Index().SetUnique(false).SetSparse(true),
	}
	_, _ = m.Events.Indexes().CreateOne(ctx, eventSlugIndex)

	logRequestIDIndex := mongo.IndexModel{
		Keys:    map[string]interface{}{"request_id": 1},
		Options: options.Index().SetUnique(false),
	}
	_, _ = m.Logs.Indexes().CreateOne(ctx, logRequestIDIndex)

	userEmailIndex := mongo.IndexModel{
		Keys:    map[string]interface{}{"email": 1},
		Options: options.Index().SetUnique(true),
	}
	_, _ = m.Users.Indexes().CreateOne(ctx, userEmailIndex)

	return nil
}

// SetLogsTTL replaces the TTL index on the logs collection.
func (m *MongoDB) SetLogsTTL(ctx context.Context, ttlDays int) error {
	_, _ = m.Logs.Indexes().DropOne(ctx, "timestamp_1")

	ttlSeconds := int32(ttlDays * 24 * 60 * 60)
	ttlIndex := mongo.IndexModel{
		Keys:    map[string]interface{}{"timestamp": 1},
		Options: options.Index().SetExpireAfterSeconds(ttlSeconds),
	}
	_, err := m.Logs.Indexes().CreateOne(ctx, ttlIndex)
	return err
}

// Close disconnects the client.
func (m *MongoDB) Close(ctx context.Context) error {
	return m.Client.Disconnect(ctx)
}

// HealthCheck verifies the connection with a short ping.
func (m *MongoDB) HealthCheck(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	return m.Client.Ping(ctx, nil)
}
