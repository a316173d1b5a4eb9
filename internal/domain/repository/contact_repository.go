// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"contacthub/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrContactNotFound is a domain-specific error returned when a contact is not found.
var ErrContactNotFound = errors.New("contact not found")

// ContactSearch holds the optional filters for a contact search. The first
// non-empty field wins, matching the original lookup order.
type ContactSearch struct {
	FirstName string
	LastName  string
	Email     string
}

// ContactRepository defines the standard operations for contact persistence.
type ContactRepository interface {
	// FindByID retrieves a single contact by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Contact, error)

	// ListByUser retrieves a page of a user's contacts.
	ListByUser(ctx context.Context, userID uuid.UUID, offset, limit int) ([]*entity.Contact, error)

	// ListAllByUser retrieves every contact belonging to a user. Used by the
	// birthday window query, which filters in-process.
	ListAllByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Contact, error)

	// Search retrieves a user's contacts matching the given filters.
	Search(ctx context.Context, userID uuid.UUID, filter ContactSearch) ([]*entity.Contact, error)

	// Create persists a new contact entity to the storage.
	Create(ctx context.Context, contact *entity.Contact) error

	// Update modifies an existing contact entity in the storage.
	Update(ctx context.Context, contact *entity.Contact) error

	// Delete removes a contact by its ID.
	Delete(ctx context.Context, id uuid.UUID) error
}
