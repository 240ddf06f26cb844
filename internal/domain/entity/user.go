// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is the credential record persisted at registration. It is created
// exactly once and never mutated by this service; there is no password-change
// flow.
type User struct {
	ID           uuid.UUID // Opaque unique identifier, generated at registration.
	Name         string    // Display name, not used for lookup.
	Email        string    // Unique natural key used for login lookup.
	PasswordHash string    // Self-describing encoded hash, never the plaintext.
	CreatedAt    time.Time // Set once at creation, immutable thereafter.
}
