//go:build ignore

// This script seeds the demo recipe and ingredient catalog into MongoDB.
// Run with: go run scripts/seed_catalog.go
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/eventbar/order-engine/internal/repository"
	"github.com/eventbar/order-engine/internal/service"
)

func main() {
	uri := os.Getenv("MONGODB_URI")
	if uri == "" {
		uri = "mongodb://localhost:27017"
	}
	database := os.Getenv("MONGODB_DATABASE")
	if database == "" {
		database = "order_engine"
	}

	db, err := repository.NewMongoDB(uri, database)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error connecting to MongoDB: %v\n", err)
		os.Exit(1)
	}
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	defer func() {
		_ = db.Close(ctx)
	}()

	catalog := service.DemoCatalog()

	for _, ing := range catalog.Ingredients {
		if _, err := db.Ingredients.InsertOne(ctx, ing); err != nil {
			fmt.Fprintf(os.Stderr, "Error inserting ingredient %s: %v\n", ing.ID, err)
		}
	}
	for _, rec := range catalog.Recipes {
		if _, err := db.Recipes.InsertOne(ctx, rec); err != nil {
			fmt.Fprintf(os.Stderr, "Error inserting recipe %s: %v\n", rec.ID, err)
		}
	}

	fmt.Printf("Seeded %d ingredients and %d recipes into %s\n",
		len(catalog.Ingredients), len(catalog.Recipes), database)
}
