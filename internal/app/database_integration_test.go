//go:build integration

package app

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eventbar/order-engine/config"
)

func TestInitializeDatabase_Integration(t *testing.T) {
	t.Parallel()

	// Use shared container with unique database names for each subtest
	uri := getSharedContainerURI()

	t.Run("initialize with enabled database", func(t *testing.T) {
		t.Parallel()
		dbName := sanitizeDBNameForApp(t.Name())
		cfg := config.DatabaseConfig{
			URI:                            uri,
			DatabaseName:                   dbName,
			LogsTTL:                        30 * 24 * time.Hour,
			Enabled:                        true,
			CircuitBreakerFailureThreshold: 5,
			CircuitBreakerSuccessThreshold: 2,
			CircuitBreakerTimeout:          30 * time.Second,
		}

		components := InitializeDatabase(cfg)

		require.NotNil(t, components)
		assert.NotNil(t, components.CatalogRepo)
		assert.NotNil(t, components.EventsRepo)
		assert.NotNil(t, components.UsersRepo)
		assert.NotNil(t, components.LoggingService)
		assert.NotNil(t, components.CatalogCircuitBreaker)
		assert.NotNil(t, components.LogsCircuitBreaker)
	})

	t.Run("initialize with disabled database", func(t *testing.T) {
		t.Parallel()
		cfg := config.DatabaseConfig{
			Enabled: false,
		}

		components := InitializeDatabase(cfg)
		assert.Nil(t, components)
	})

	t.Run("empty catalog yields no ingredients", func(t *testing.T) {
		t.Parallel()
		dbName := sanitizeDBNameForApp(t.Name())
		cfg := config.DatabaseConfig{
			URI:                            uri,
			DatabaseName:                   dbName,
			LogsTTL:                        30 * 24 * time.Hour,
			Enabled:                        true,
			CircuitBreakerFailureThreshold: 5,
			CircuitBreakerSuccessThreshold: 2,
			CircuitBreakerTimeout:          30 * time.Second,
		}

		components := InitializeDatabase(cfg)
		require.NotNil(t, components)

		ingredients, err := components.CatalogRepo.ListIngredients(context.Background())
		require.NoError(t, err)
		assert.Empty(t, ingredients)
	})

	t.Run("circuit breaker integration", func(t *testing.T) {
		t.Parallel()
		dbName := sanitizeDBNameForApp(t.Name())
		cfg := config.DatabaseConfig{
			URI:                            uri,
			DatabaseName:                   dbName,
			LogsTTL:                        30 * 24 * time.Hour,
			Enabled:                        true,
			CircuitBreakerFailureThreshold: 2,
			CircuitBreakerSuccessThreshold: 1,
			CircuitBreakerTimeout:          100 * time.Millisecond,
		}

		components := InitializeDatabase(cfg)
		require.NotNil(t, components)

		// Verify circuit breakers are initialized
		stats := components.CatalogCircuitBreaker.GetStats()
		assert.Equal(t, "closed", stats.State)
		assert.True(t, stats.IsHealthy)

		logsStats := components.LogsCircuitBreaker.GetStats()
		assert.Equal(t, "closed", logsStats.State)
		assert.True(t, logsStats.IsHealthy)
	})
}

func TestInitializeDatabase_SeedsStaffUser_Integration(t *testing.T) {
	// Not parallel: t.Setenv is incompatible with parallel tests.
	t.Setenv("ADMIN_EMAIL", "seed-admin@example.com")
	t.Setenv("ADMIN_PASSWORD", "seed-password")

	cfg := config.DatabaseConfig{
		URI:                            getSharedContainerURI(),
		DatabaseName:                   sanitizeDBNameForApp(t.Name()),
		LogsTTL:                        30 * 24 * time.Hour,
		Enabled:                        true,
		CircuitBreakerFailureThreshold: 5,
		CircuitBreakerSuccessThreshold: 2,
		CircuitBreakerTimeout:          30 * time.Second,
	}

	components := InitializeDatabase(cfg)
	require.NotNil(t, components)

	user, err := components.UsersRepo.GetByEmail(context.Background(), "seed-admin@example.com")
	require.NoError(t, err)
	require.NotNil(t, user)
	assert.True(t, user.Active)
	assert.NotEqual(t, "seed-password", user.Password)
}
