package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/eventbar/order-engine/config"
	"github.com/eventbar/order-engine/internal/domain/dto"
	"github.com/eventbar/order-engine/internal/domain/model"
	"github.com/eventbar/order-engine/internal/repository"
)

var (
	// ErrInvalidCredentials is returned when email or password is incorrect.
	ErrInvalidCredentials = errors.New("invalid email or password")
	// ErrInvalidToken is returned when a token is invalid or expired.
	ErrInvalidToken = errors.New("invalid or expired token")
)

// jwtClaims carries the staff claims plus the registered JWT claims.
type jwtClaims struct {
	dto.Claims
	jwt.RegisteredClaims
}

// AuthService provides staff authentication operations.
type AuthService interface {
	Login(ctx context.Context, email, password string) (*dto.TokenResponse, *model.User, error)
	ValidateToken(tokenString string) (*dto.Claims, error)
}

// AuthServiceImpl implements AuthService with bcrypt password checks
// and HS256 signed tokens.
type AuthServiceImpl struct {
	users  repository.UsersRepositoryInterface
	secret []byte
	ttl    time.Duration
	issuer string
}

// NewAuthService creates a new authentication service.
func NewAuthService(users repository.UsersRepositoryInterface, authConfig config.AuthConfig) AuthService {
	return &AuthServiceImpl{
		users:  users,
		secret: []byte(authConfig.JWTSecret),
		ttl:    authConfig.TokenTTL,
		issuer: authConfig.Issuer,
	}
}

// Login authenticates a staff user and returns a signed token.
func (s *AuthServiceImpl) Login(ctx context.Context, email, password string) (*dto.TokenResponse, *model.User, error) {
	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to find user by email: %w", err)
	}
	if user == nil || !user.Active {
		return nil, nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, nil, ErrInvalidCredentials
	}

	now := time.Now()
	expiresAt := now.Add(s.ttl)
	claims := jwtClaims{
		Claims: dto.Claims{
			UserID: user.ID.Hex(),
			Email:  user.Email,
			Role:   user.Role,
		},
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    s.issuer,
			Subject:   user.ID.Hex(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to sign token: %w", err)
	}

	return &dto.TokenResponse{
		AccessToken: signed,
		TokenType:   "Bearer",
		ExpiresAt:   expiresAt,
	}, user, nil
}

// ValidateToken parses and verifies a signed token, returning its
// staff claims.
func (s *AuthServiceImpl) ValidateToken(tokenString string) (*dto.Claims, error) {
	var claims jwtClaims
	token, err := jwt.ParseWithClaims(tokenString, &claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}
	return &claims.Claims, nil
}

// HashPassword produces a bcrypt hash for seeding staff accounts.
func HashPassword(password string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}
