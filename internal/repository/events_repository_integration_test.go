//go:build integration

package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"

	"github.com/eventbar/order-engine/internal/domain/model"
)

func testEvent(title, slug string) *model.Event {
	return &model.Event{
		Title:      title,
		Date:       "2026-09-12",
		Phone:      "+31600000001",
		GuestCount: 40,
		Tier:       model.TierEconomy,
		Status:     model.EventStatusBooked,
		Selection:  model.Selection{"margarita": 20, "daiquiri": 10},
		EditSlug:   slug,
	}
}

func TestEventsRepository_CreateAndGet(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	db := setupTestDBFromSharedContainer(t)
	defer func() {
		require.NoError(t, db.Close(ctx))
	}()

	repo := NewEventsRepository(db)

	created, err := repo.Create(ctx, testEvent("Company Gala", "slug-create-get"))
	require.NoError(t, err)
	require.NotNil(t, created)
	assert.False(t, created.ID.IsZero())
	assert.False(t, created.CreatedAt.IsZero())
	assert.Equal(t, model.EventStatusBooked, created.Status)

	t.Run("get by id", func(t *testing.T) {
		fetched, err := repo.GetByID(ctx, created.ID)
		require.NoError(t, err)
		require.NotNil(t, fetched)
		assert.Equal(t, created.Title, fetched.Title)
		assert.Equal(t, created.Selection, fetched.Selection)
	})

	t.Run("get by slug", func(t *testing.T) {
		fetched, err := repo.GetBySlug(ctx, "slug-create-get")
		require.NoError(t, err)
		require.NotNil(t, fetched)
		assert.Equal(t, created.ID, fetched.ID)
	})

	t.Run("unknown id returns nil", func(t *testing.T) {
		fetched, err := repo.GetBySlug(ctx, "no-such-slug")
		require.NoError(t, err)
		assert.Nil(t, fetched)
	})
}

func TestEventsRepository_Update(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	db := setupTestDBFromSharedContainer(t)
	defer func() {
		require.NoError(t, db.Close(ctx))
	}()

	repo := NewEventsRepository(db)

	created, err := repo.Create(ctx, testEvent("Company Gala", "slug-update"))
	require.NoError(t, err)

	created.Selection = model.Selection{"margarita": 6, "daiquiri": 4}
	created.Status = model.EventStatusAmended
	created.GuestCount = 36

	updated, err := repo.Update(ctx, created)
	require.NoError(t, err)
	require.NotNil(t, updated)
	assert.Equal(t, model.EventStatusAmended, updated.Status)
	assert.True(t, updated.UpdatedAt.After(updated.CreatedAt) || updated.UpdatedAt.Equal(updated.CreatedAt))

	fetched, err := repo.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, model.Selection{"margarita": 6, "daiquiri": 4}, fetched.Selection)

	t.Run("updating a missing booking returns nil", func(t *testing.T) {
		ghost := testEvent("Ghost", "slug-ghost")
		ghost.ID = created.ID
		deleted, err := db.Events.DeleteOne(ctx, bson.M{"_id": created.ID})
		require.NoError(t, err)
		require.EqualValues(t, 1, deleted.DeletedCount)

		result, err := repo.Update(ctx, ghost)
		require.NoError(t, err)
		assert.Nil(t, result)
	})
}

func TestEventsRepository_List(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	db := setupTestDBFromSharedContainer(t)
	defer func() {
		require.NoError(t, db.Close(ctx))
	}()

	repo := NewEventsRepository(db)

	_, err := repo.Create(ctx, testEvent("Gala A", "slug-a"))
	require.NoError(t, err)
	_, err = repo.Create(ctx, testEvent("Gala B", "slug-b"))
	require.NoError(t, err)

	cancelled := testEvent("Gala C", "slug-c")
	cancelled.Status = model.EventStatusCancelled
	_, err = repo.Create(ctx, cancelled)
	require.NoError(t, err)

	t.Run("all statuses", func(t *testing.T) {
		events, err := repo.List(ctx, "", 10)
		require.NoError(t, err)
		assert.Len(t, events, 3)
	})

	t.Run("filtered by status", func(t *testing.T) {
		events, err := repo.List(ctx, model.EventStatusBooked, 10)
		require.NoError(t, err)
		assert.Len(t, events, 2)
	})

	t.Run("limit applies", func(t *testing.T) {
		events, err := repo.List(ctx, "", 1)
		require.NoError(t, err)
		assert.Len(t, events, 1)
	})
}
