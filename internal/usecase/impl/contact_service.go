package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "contacthub/internal/delivery/context"
	"contacthub/internal/domain/birthday"
	"contacthub/internal/domain/entity"
	domainerrors "contacthub/internal/domain/errors"
	"contacthub/internal/domain/repository"
	"contacthub/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// contactService implements the ContactUsecase interface.
type contactService struct {
	contactRepo repository.ContactRepository
	logger      *slog.Logger
	now         func() time.Time
}

// ContactServiceParams holds dependencies for contactService, injected by Fx.
type ContactServiceParams struct {
	fx.In

	ContactRepo repository.ContactRepository
	Logger      *slog.Logger
}

// NewContactService is the constructor for contactService.
func NewContactService(params ContactServiceParams) usecase.ContactUsecase {
	return &contactService{
		contactRepo: params.ContactRepo,
		logger:      params.Logger,
		now:         time.Now,
	}
}

func (srv *contactService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// CreateContact stores a new contact for the calling user.
func (srv *contactService) CreateContact(ctx context.Context, userID uuid.UUID, input *usecase.ContactInput) (*entity.Contact, error) {
	contact := &entity.Contact{
		UserID:    userID,
		FirstName: input.FirstName,
		LastName:  input.LastName,
		Email:     input.Email,
		Phone:     input.Phone,
		Birthday:  input.Birthday,
		Notes:     input.Notes,
	}

	if err := srv.contactRepo.Create(ctx, contact); err != nil {
		return nil, errors.Wrap(err, "failed to create contact")
	}

	srv.log(ctx).Debug("Contact created", slog.Any("contactID", contact.ID), slog.Any("userID", userID))

	return contact, nil
}

// GetContact returns a single contact when it belongs to the calling user.
// Someone else's contact reads as absent, not forbidden.
func (srv *contactService) GetContact(ctx context.Context, userID, contactID uuid.UUID) (*entity.Contact, error) {
	return srv.loadOwnedContact(ctx, userID, contactID)
}

// ListContacts returns a page of the calling user's contacts.
func (srv *contactService) ListContacts(ctx context.Context, userID uuid.UUID, offset, limit int) ([]*entity.Contact, error) {
	contacts, err := srv.contactRepo.ListByUser(ctx, userID, offset, limit)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list contacts")
	}

	return contacts, nil
}

// SearchContacts returns the calling user's contacts matching the filter.
func (srv *contactService) SearchContacts(ctx context.Context, userID uuid.UUID, filter repository.ContactSearch) ([]*entity.Contact, error) {
	contacts, err := srv.contactRepo.Search(ctx, userID, filter)
	if err != nil {
		return nil, errors.Wrap(err, "failed to search contacts")
	}

	return contacts, nil
}

// UpdateContact replaces the mutable fields of an owned contact.
func (srv *contactService) UpdateContact(ctx context.Context, userID, contactID uuid.UUID, input *usecase.ContactInput) (*entity.Contact, error) {
	contact, err := srv.loadOwnedContact(ctx, userID, contactID)
	if err != nil {
		return nil, err
	}

	contact.FirstName = input.FirstName
	contact.LastName = input.LastName
	contact.Email = input.Email
	contact.Phone = input.Phone
	contact.Birthday = input.Birthday
	contact.Notes = input.Notes

	if err := srv.contactRepo.Update(ctx, contact); err != nil {
		return nil, errors.Wrap(err, "failed to update contact")
	}

	srv.log(ctx).Debug("Contact updated", slog.Any("contactID", contactID), slog.Any("userID", userID))

	return contact, nil
}

// DeleteContact removes an owned contact.
func (srv *contactService) DeleteContact(ctx context.Context, userID, contactID uuid.UUID) error {
	if _, err := srv.loadOwnedContact(ctx, userID, contactID); err != nil {
		return err
	}

	if err := srv.contactRepo.Delete(ctx, contactID); err != nil {
		return errors.Wrap(err, "failed to delete contact")
	}

	srv.log(ctx).Debug("Contact deleted", slog.Any("contactID", contactID), slog.Any("userID", userID))

	return nil
}

// UpcomingBirthdays returns contacts whose birthday falls within the next
// windowDays days, wrapping over year end. Filtering happens in-process on
// day-of-year ordinals since the stored year is irrelevant.
func (srv *contactService) UpcomingBirthdays(ctx context.Context, userID uuid.UUID, windowDays int, includeToday bool) ([]*entity.Contact, error) {
	contacts, err := srv.contactRepo.ListAllByUser(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load contacts for birthday window")
	}

	return birthday.Filter(contacts, srv.now(), windowDays, includeToday), nil
}

// loadOwnedContact fetches a contact and enforces ownership.
func (srv *contactService) loadOwnedContact(ctx context.Context, userID, contactID uuid.UUID) (*entity.Contact, error) {
	contact, err := srv.contactRepo.FindByID(ctx, contactID)
	if err != nil {
		if errors.Is(err, repository.ErrContactNotFound) {
			return nil, domainerrors.ErrContactNotFound.WrapMessage("contact not found")
		}

		return nil, errors.Wrap(err, "failed to find contact")
	}

	if contact.UserID != userID {
		srv.log(ctx).Warn("Contact access across ownership boundary",
			slog.Any("contactID", contactID), slog.Any("userID", userID))

		return nil, domainerrors.ErrContactNotFound.WrapMessage("contact not found")
	}

	return contact, nil
}
