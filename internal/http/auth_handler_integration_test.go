//go:build integration

package http

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eventbar/order-engine/config"
	"github.com/eventbar/order-engine/internal/domain/dto"
	"github.com/eventbar/order-engine/internal/domain/model"
	"github.com/eventbar/order-engine/internal/repository"
	"github.com/eventbar/order-engine/internal/service"
)

// setupAuthIntegrationRouter builds a router with JWT auth enabled and
// a MongoDB-backed user store.
func setupAuthIntegrationRouter(t *testing.T, dbName string) (*gin.Engine, *repository.MongoDB) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := repository.NewMongoDB(getSharedContainerURI(), dbName)
	require.NoError(t, err)

	catalog := service.NewCatalogService(repository.NewCatalogRepository(db))
	computer := service.NewOrderService()
	bookings := service.NewBookingService(
		repository.NewEventsRepository(db),
		catalog, computer, service.NewReconcilerService(),
	)

	authService := service.NewAuthService(repository.NewUsersRepository(db), config.AuthConfig{
		JWTSecret: "integration-test-secret",
		TokenTTL:  15 * time.Minute,
		Issuer:    "order-engine-test",
	})

	cfg := RouterConfig{
		RateLimit:      100,
		RateWindow:     time.Minute,
		BookingService: bookings,
		CatalogService: catalog,
		OrderComputer:  computer,
		AuthService:    authService,
	}

	return NewRouter(NewHealthHandler(), cfg), db
}

func seedStaffUser(t *testing.T, ctx context.Context, db *repository.MongoDB, email, password string) {
	t.Helper()

	hash, err := service.HashPassword(password)
	require.NoError(t, err)

	_, err = repository.NewUsersRepository(db).Create(ctx, &model.User{
		Email:    email,
		Name:     "Integration Staff",
		Password: hash,
		Role:     model.RoleManager,
		Active:   true,
	})
	require.NoError(t, err)
}

func loginStaff(t *testing.T, router *gin.Engine, email, password string) dto.LoginResponse {
	t.Helper()

	body, _ := json.Marshal(dto.LoginRequest{Email: email, Password: password})
	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code, "login should succeed: %s", w.Body.String())

	var response dto.SuccessResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))

	dataBytes, _ := json.Marshal(response.Data)
	var login dto.LoginResponse
	require.NoError(t, json.Unmarshal(dataBytes, &login))
	return login
}

func TestAuthHandler_Login_Integration(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	dbName := sanitizeDBNameForHTTP(t.Name())
	router, db := setupAuthIntegrationRouter(t, dbName)
	defer func() {
		_ = db.Close(ctx)
	}()

	seedStaffUser(t, ctx, db, "staff@example.com", "password123")

	t.Run("successful login", func(t *testing.T) {
		login := loginStaff(t, router, "staff@example.com", "password123")

		assert.NotEmpty(t, login.Token.AccessToken)
		assert.Equal(t, "Bearer", login.Token.TokenType)
		assert.True(t, login.Token.ExpiresAt.After(time.Now()))
		assert.Equal(t, "staff@example.com", login.User.Email)
		assert.Equal(t, model.RoleManager, login.User.Role)
	})

	t.Run("login with wrong password", func(t *testing.T) {
		body, _ := json.Marshal(dto.LoginRequest{Email: "staff@example.com", Password: "wrongpassword"})
		req := httptest.NewRequest(http.MethodPost, "/api/auth/login", bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("login with unknown email", func(t *testing.T) {
		body, _ := json.Marshal(dto.LoginRequest{Email: "nobody@example.com", Password: "password123"})
		req := httptest.NewRequest(http.MethodPost, "/api/auth/login", bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func TestAuthHandler_ProtectedRoutes_Integration(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	dbName := sanitizeDBNameForHTTP(t.Name())
	router, db := setupAuthIntegrationRouter(t, dbName)
	defer func() {
		_ = db.Close(ctx)
	}()

	seedStaffUser(t, ctx, db, "manager@example.com", "password123")

	t.Run("staff route rejects missing token", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/bookings", nil)
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("staff route rejects garbage token", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/bookings", nil)
		req.Header.Set("Authorization", "Bearer not-a-token")
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("staff route accepts valid token", func(t *testing.T) {
		login := loginStaff(t, router, "manager@example.com", "password123")

		req := httptest.NewRequest(http.MethodGet, "/api/bookings", nil)
		req.Header.Set("Authorization", "Bearer "+login.Token.AccessToken)
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("public routes stay open", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/recipes", nil)
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)
		assert.Equal(t, http.StatusOK, w.Code)
	})
}
