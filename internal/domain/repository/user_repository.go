// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"contacthub/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrUserNotFound is a domain-specific error returned when a user is not found.
var ErrUserNotFound = errors.New("user not found")

// UserRepository is the user directory consumed by the auth service.
// It must guarantee email uniqueness and atomic single-record writes.
type UserRepository interface {
	// FindByID retrieves a single user by their unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error)

	// FindByEmail retrieves a single user by their email address (case-insensitive).
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// FindByEmailForUpdate retrieves a user and acquires a row lock for the
	// remainder of the enclosing transaction. Refresh rotation reads and
	// rewrites the stored refresh token under this lock so two concurrent
	// rotations for the same identity cannot both succeed.
	FindByEmailForUpdate(ctx context.Context, email string) (*entity.User, error)

	// Create persists a new user entity to the storage.
	Create(ctx context.Context, user *entity.User) error

	// UpdateRefreshToken replaces the stored refresh token. A nil token clears
	// the slot, revoking the session outright.
	UpdateRefreshToken(ctx context.Context, id uuid.UUID, token *string) error

	// MarkConfirmed sets the confirmed flag. Confirming an already confirmed
	// user is a no-op, not an error.
	MarkConfirmed(ctx context.Context, id uuid.UUID) error

	// UpdateAvatar updates the avatar URL and returns the updated record.
	UpdateAvatar(ctx context.Context, id uuid.UUID, url string) (*entity.User, error)
}
