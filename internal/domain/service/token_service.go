package service

import (
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Claims defines the custom claims carried by identity tokens.
type Claims struct {
	UserID uuid.UUID
	jwt.RegisteredClaims
}

// TokenService defines the interface for issuing and validating identity tokens.
// This abstracts the details of token creation from the use cases.
type TokenService interface {
	// Generate creates a signed, time-limited token asserting the given user identity.
	Generate(userID uuid.UUID) (string, error)

	// Validate checks a token string and returns its claims when the
	// signature is valid and the token has not expired.
	Validate(tokenString string) (*Claims, error)
}
