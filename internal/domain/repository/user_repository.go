// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"passport/internal/domain/entity"
)

// Domain-specific errors for credential persistence.
// This allows the application layer to handle specific outcomes without depending on database-specific errors.
var (
	// ErrUserNotFound is returned when no credential record exists for a lookup key.
	ErrUserNotFound = errors.New("user not found")
	// ErrDuplicateEmail is returned when a create collides with an existing email.
	ErrDuplicateEmail = errors.New("email already registered")
)

// UserRepository is the narrow store gateway the credential core depends on.
// Connection lifecycle, pooling and retries belong to the infrastructure layer.
type UserRepository interface {
	// Create persists a new credential record. Email uniqueness is enforced
	// atomically by the store; a race between two concurrent registrations
	// with the same email yields exactly one success and one ErrDuplicateEmail.
	Create(ctx context.Context, user *entity.User) error

	// FindByEmail retrieves the credential record for a login lookup.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)
}
