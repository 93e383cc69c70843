package dto

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/limayamil/flowsync/models"
)

// TokenClaims represents our custom JWT claims. ClientSlug is set only for
// client-side accounts and scopes their namespace routes.
type TokenClaims struct {
	UserID     string `json:"userId"`
	Email      string `json:"email"`
	Role       string `json:"role"`
	ClientSlug string `json:"clientSlug,omitempty"`
	jwt.RegisteredClaims
}

// LoginRequest represents login credentials
type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// RegisterRequest represents registration data
type RegisterRequest struct {
	Email    string  `json:"email" binding:"required,email"`
	Password string  `json:"password" binding:"required,min=6"`
	Name     *string `json:"name"`
	Role     string  `json:"role" binding:"omitempty,oneof=admin provider client"`
}

// AuthResponse represents the response after authentication
type AuthResponse struct {
	Token     string      `json:"token"`
	User      models.User `json:"user"`
	ExpiresAt time.Time   `json:"expiresAt"`
}
