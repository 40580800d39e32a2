// Package main is the entry point for the order-engine application.
//
// @title           Event Bar Order Engine API
// @version         1.0.0
// @description     API for computing ingredient procurement plans for cocktail event bookings.
//
//	The engine aggregates per-serving recipe requirements, applies a safety buffer and
//	category rounding policy, and resolves each requirement to the optimal pack combination
//	for the selected pricing tier.
//
// @termsOfService  http://swagger.io/terms/
//
// @contact.name   API Support
// @contact.email  support@example.com
// @contact.url    https://github.com/eventbar/order-engine
//
// @license.name  MIT
// @license.url   https://opensource.org/licenses/MIT
//
// @host      localhost:8080
// @BasePath  /
//
// @securityDefinitions.apikey  BearerAuth
// @in                          header
// @name                        Authorization
// @description                 JWT bearer token for staff endpoints.
//
// @tag.name        Plans
// @tag.description Procurement plan computation
//
// @tag.name        Bookings
// @tag.description Event booking operations
//
// @tag.name        Catalog
// @tag.description Recipe and ingredient catalog
//
// @tag.name        Auth
// @tag.description Staff authentication endpoints
//
// @tag.name        Health
// @tag.description Health check endpoints
package main

import (
	_ "github.com/eventbar/order-engine/docs" // swagger docs

	"github.com/rs/zerolog/log"

	"github.com/eventbar/order-engine/config"
	"github.com/eventbar/order-engine/internal/app"
)

func main() {
	cfg := config.Load()

	router := app.InitializeApp(cfg)
	server := app.NewServer(router, cfg.Server.Port)

	if err := server.Run(); err != nil {
		log.Fatal().Err(err).Msg("Server error")
	}
}
