package usecase

import (
	"context"
	"time"

	"contacthub/internal/domain/entity"
	"contacthub/internal/domain/repository"

	"github.com/google/uuid"
)

// ContactInput defines the data for creating or replacing a contact.
type ContactInput struct {
	FirstName string
	LastName  string
	Email     string
	Phone     string
	Birthday  time.Time
	Notes     string
}

// ContactUsecase defines contact-book operations. Every operation is scoped
// to the calling user; a contact belonging to someone else reads as absent.
type ContactUsecase interface {
	CreateContact(ctx context.Context, userID uuid.UUID, input *ContactInput) (*entity.Contact, error)
	GetContact(ctx context.Context, userID, contactID uuid.UUID) (*entity.Contact, error)
	ListContacts(ctx context.Context, userID uuid.UUID, offset, limit int) ([]*entity.Contact, error)
	SearchContacts(ctx context.Context, userID uuid.UUID, filter repository.ContactSearch) ([]*entity.Contact, error)
	UpdateContact(ctx context.Context, userID, contactID uuid.UUID, input *ContactInput) (*entity.Contact, error)
	DeleteContact(ctx context.Context, userID, contactID uuid.UUID) error

	// UpcomingBirthdays returns the user's contacts whose birthday falls
	// within the next windowDays days, wrapping over year end.
	UpcomingBirthdays(ctx context.Context, userID uuid.UUID, windowDays int, includeToday bool) ([]*entity.Contact, error)
}
