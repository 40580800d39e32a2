//go:build !integration

package app

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/eventbar/order-engine/config"
)

func TestInitializeDatabase_Disabled(t *testing.T) {
	components := InitializeDatabase(config.DatabaseConfig{
		Enabled: false,
	})

	assert.Nil(t, components)
}

func TestInitializeDatabase_InvalidURI(t *testing.T) {
	// A malformed URI fails fast; the engine then runs without persistence.
	components := InitializeDatabase(config.DatabaseConfig{
		Enabled: true,
		URI:     "not-a-mongodb-uri",
	})

	assert.Nil(t, components)
}
