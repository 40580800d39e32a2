// Package dto defines Data Transfer Objects for authentication.
package dto

import "time"

// LoginRequest represents the JSON request body for the staff login endpoint.
//
// @Description Request to authenticate a staff user
// @Example {"email": "staff@example.com", "password": "password123"}
type LoginRequest struct {
	// Email is the user's email address.
	Email string `json:"email" binding:"required,email" example:"staff@example.com"`
	// Password is the user's password.
	Password string `json:"password" binding:"required,min=6" example:"password123"`
} // @name LoginRequest

// TokenResponse carries a signed access token.
type TokenResponse struct {
	AccessToken string    `json:"access_token"`
	TokenType   string    `json:"token_type" example:"Bearer"`
	ExpiresAt   time.Time `json:"expires_at"`
}

// LoginResponse represents the JSON response body for the login endpoint.
//
// @Description Successful authentication response with a JWT token
type LoginResponse struct {
	// Token is the signed access token.
	Token TokenResponse `json:"token"`
	// User contains the authenticated user information.
	User UserResponse `json:"user"`
} // @name LoginResponse

// Claims represents the staff claims embedded in access tokens.
type Claims struct {
	UserID string `json:"user_id"`
	Email  string `json:"email"`
	Role   string `json:"role"`
}

// UserResponse represents user information in API responses.
type UserResponse struct {
	// Email is the user's email address.
	Email string `json:"email" example:"staff@example.com"`
	// Name is the user's full name.
	Name string `json:"name,omitempty" example:"Jordan Doe"`
	// Role is the user's staff role.
	Role string `json:"role,omitempty" example:"manager"`
} // @name UserResponse

// Validate performs custom validation on the login request.
func (r *LoginRequest) Validate() error {
	if r.Email == "" {
		return &ValidationError{
			Field:   "email",
			Message: "email is required",
		}
	}
	if len(r.Password) < 6 {
		return &ValidationError{
			Field:   "password",
			Message: "password must be at least 6 characters",
		}
	}
	return nil
}
