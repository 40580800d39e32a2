package http

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/eventbar/order-engine/config"
	"github.com/eventbar/order-engine/internal/domain/dto"
	"github.com/eventbar/order-engine/internal/domain/model"
	"github.com/eventbar/order-engine/internal/middleware"
	"github.com/eventbar/order-engine/internal/mocks"
	"github.com/eventbar/order-engine/internal/service"
)

func loginTestUser(t *testing.T, password string) *model.User {
	t.Helper()
	hash, err := service.HashPassword(password)
	require.NoError(t, err)
	return &model.User{
		ID:       primitive.NewObjectID(),
		Email:    "staff@example.com",
		Name:     "Staff Member",
		Password: hash,
		Role:     model.RoleManager,
		Active:   true,
	}
}

func TestAuthHandler_Login(t *testing.T) {
	gin.SetMode(gin.TestMode)

	authConfig := config.AuthConfig{
		JWTSecret: "auth-handler-test-secret",
		TokenTTL:  time.Hour,
		Issuer:    "order-engine-test",
	}

	tests := []struct {
		name             string
		requestBody      string
		setupMocks       func(*testing.T, *mocks.MockUsersRepositoryInterface)
		expectedStatus   int
		validateResponse func(*testing.T, *httptest.ResponseRecorder)
	}{
		{
			name:        "successful login",
			requestBody: `{"email": "staff@example.com", "password": "password123"}`,
			setupMocks: func(t *testing.T, users *mocks.MockUsersRepositoryInterface) {
				users.On("GetByEmail", mock.Anything, "staff@example.com").
					Return(loginTestUser(t, "password123"), nil)
			},
			expectedStatus: http.StatusOK,
			validateResponse: func(t *testing.T, w *httptest.ResponseRecorder) {
				var response dto.SuccessResponse
				require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))

				var login dto.LoginResponse
				dataBytes, err := json.Marshal(response.Data)
				require.NoError(t, err)
				require.NoError(t, json.Unmarshal(dataBytes, &login))

				assert.NotEmpty(t, login.Token.AccessToken)
				assert.Equal(t, "Bearer", login.Token.TokenType)
				assert.Equal(t, "staff@example.com", login.User.Email)
				assert.Equal(t, model.RoleManager, login.User.Role)
			},
		},
		{
			name:        "invalid credentials",
			requestBody: `{"email": "staff@example.com", "password": "wrongpassword"}`,
			setupMocks: func(t *testing.T, users *mocks.MockUsersRepositoryInterface) {
				users.On("GetByEmail", mock.Anything, "staff@example.com").
					Return(loginTestUser(t, "password123"), nil)
			},
			expectedStatus: http.StatusUnauthorized,
			validateResponse: func(t *testing.T, w *httptest.ResponseRecorder) {
				var response dto.ErrorResponse
				require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
				assert.Equal(t, dto.ErrCodeUnauthorized, response.Error)
			},
		},
		{
			name:        "unknown user",
			requestBody: `{"email": "nobody@example.com", "password": "password123"}`,
			setupMocks: func(t *testing.T, users *mocks.MockUsersRepositoryInterface) {
				users.On("GetByEmail", mock.Anything, "nobody@example.com").
					Return(nil, nil)
			},
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:        "repository failure",
			requestBody: `{"email": "staff@example.com", "password": "password123"}`,
			setupMocks: func(t *testing.T, users *mocks.MockUsersRepositoryInterface) {
				users.On("GetByEmail", mock.Anything, "staff@example.com").
					Return(nil, errors.New("connection reset"))
			},
			expectedStatus: http.StatusInternalServerError,
		},
		{
			name:           "invalid request body",
			requestBody:    `{"email": "invalid-email"}`,
			setupMocks:     func(t *testing.T, users *mocks.MockUsersRepositoryInterface) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "password too short",
			requestBody:    `{"email": "staff@example.com", "password": "abc"}`,
			setupMocks:     func(t *testing.T, users *mocks.MockUsersRepositoryInterface) {},
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			users := new(mocks.MockUsersRepositoryInterface)
			tt.setupMocks(t, users)

			handler := NewAuthHandler(service.NewAuthService(users, authConfig))

			router := gin.New()
			router.Use(middleware.RequestID())
			router.POST("/api/auth/login", handler.Login)

			req := httptest.NewRequest(http.MethodPost, "/api/auth/login", bytes.NewBufferString(tt.requestBody))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			if tt.validateResponse != nil {
				tt.validateResponse(t, w)
			}
			users.AssertExpectations(t)
		})
	}
}
