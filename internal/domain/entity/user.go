// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is the sole entity in the system, representing one account.
type User struct {
	ID           uuid.UUID // Store-generated unique identifier; assigned once at creation.
	Name         string    // Display name; mutable.
	Email        string    // Login identifier; unique, never mutated after creation.
	PasswordHash string    // Output of a one-way salted hash; never the raw password.
	ProfileImage string    // Stored avatar object name; empty until an avatar is uploaded.
	Bio          string    // Free-form profile text; empty until set.
	CreatedAt    time.Time // Timestamp of when this account was created.
	UpdatedAt    time.Time // Timestamp of the last modification to this account.
}
