// Package app provides authentication initialization.
package app

import (
	"context"
	"os"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/eventbar/order-engine/internal/domain/model"
	"github.com/eventbar/order-engine/internal/repository"
	"github.com/eventbar/order-engine/internal/service"
)

// seedDefaultStaffUser creates the initial manager account when the
// users collection is empty. Credentials come from the environment;
// without them nothing is seeded.
func seedDefaultStaffUser(users repository.UsersRepositoryInterface) error {
	email := os.Getenv("ADMIN_EMAIL")
	password := os.Getenv("ADMIN_PASSWORD")
	if email == "" || password == "" {
		return nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	existing, err := users.GetByEmail(ctx, email)
	if err != nil {
		return err
	}
	if existing != nil {
		return nil
	}

	hashed, err := service.HashPassword(password)
	if err != nil {
		return err
	}

	user := &model.User{
		Email:    email,
		Name:     "Manager",
		Password: hashed,
		Role:     model.RoleManager,
		Active:   true,
	}
	if _, err := users.Create(ctx, user); err != nil {
		return err
	}

	log.Info().Str("email", email).Msg("Seeded default staff user")
	return nil
}
