// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"gallery/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// RegisterInput defines the data required to register a new account.
type RegisterInput struct {
	Name     string
	Email    string
	Password string
}

// LoginInput defines the data required for a user to log in.
type LoginInput struct {
	Email    string
	Password string
}

// UpdateProfileInput carries the optional fields of a partial profile update.
// Empty fields are skipped, never applied: an empty name leaves the stored
// name untouched rather than clearing it. Callers that want "clear this
// field" semantics do not exist in this API.
type UpdateProfileInput struct {
	Name         string
	Password     string
	Bio          string
	ProfileImage string // stored object name produced by the avatar storage
}

// --- Output DTOs ---

// RegisterOutput returns the newly created account id and its first token.
type RegisterOutput struct {
	ID    uuid.UUID
	Token string
}

// LoginOutput returns the authenticated account id, avatar and a fresh token.
type LoginOutput struct {
	ID           uuid.UUID
	ProfileImage string
	Token        string
}

// AccountUsecase defines the interface for account-related business operations.
// This is the contract that the delivery layer (e.g., API handlers) will depend on.
type AccountUsecase interface {
	Register(ctx context.Context, input *RegisterInput) (*RegisterOutput, error)
	Login(ctx context.Context, input *LoginInput) (*LoginOutput, error)

	// GetProfile returns the record of an already-authenticated caller.
	GetProfile(ctx context.Context, userID uuid.UUID) (*entity.User, error)

	// UpdateProfile applies a partial update and returns the updated record.
	UpdateProfile(ctx context.Context, userID uuid.UUID, input *UpdateProfileInput) (*entity.User, error)

	// GetUserByID is the public lookup; callers must project out the password hash.
	GetUserByID(ctx context.Context, id uuid.UUID) (*entity.User, error)
}
