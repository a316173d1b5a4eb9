package impl

import (
	"context"
	"testing"
	"time"

	"contacthub/internal/domain/entity"
	domainerrors "contacthub/internal/domain/errors"
	"contacthub/internal/domain/repository"
	mockRepo "contacthub/internal/mocks/repository"
	"contacthub/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type contactServiceFixtures struct {
	service     usecase.ContactUsecase
	contactRepo *mockRepo.MockContactRepository
}

func createTestContactService(t *testing.T, now time.Time) contactServiceFixtures {
	contactRepo := mockRepo.NewMockContactRepository(t)

	contactUsecase := NewContactService(ContactServiceParams{
		ContactRepo: contactRepo,
		Logger:      newDiscardLogger(),
	})
	contactUsecase.(*contactService).now = func() time.Time { return now }

	return contactServiceFixtures{
		service:     contactUsecase,
		contactRepo: contactRepo,
	}
}

func ownedContact(userID uuid.UUID, birthday time.Time) *entity.Contact {
	return &entity.Contact{
		ID:        uuid.New(),
		UserID:    userID,
		FirstName: "Bob",
		LastName:  "Smith",
		Email:     "bob@example.com",
		Birthday:  birthday,
	}
}

func TestContactService_CreateContact(t *testing.T) {
	fixtures := createTestContactService(t, time.Now())
	ctx := context.Background()
	userID := uuid.New()

	fixtures.contactRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Contact")).
		Run(func(_ context.Context, contact *entity.Contact) {
			contact.ID = uuid.New()
		}).
		Return(nil)

	contact, err := fixtures.service.CreateContact(ctx, userID, &usecase.ContactInput{
		FirstName: "Bob",
		LastName:  "Smith",
		Email:     "bob@example.com",
	})

	require.NoError(t, err)
	assert.Equal(t, userID, contact.UserID)
	assert.NotEqual(t, uuid.Nil, contact.ID)
}

func TestContactService_GetContact_OwnershipEnforced(t *testing.T) {
	fixtures := createTestContactService(t, time.Now())
	ctx := context.Background()

	owner := uuid.New()
	stranger := uuid.New()
	contact := ownedContact(owner, time.Now())

	fixtures.contactRepo.EXPECT().FindByID(ctx, contact.ID).Return(contact, nil)

	// Another user's contact reads as absent, not forbidden.
	_, err := fixtures.service.GetContact(ctx, stranger, contact.ID)
	assert.ErrorIs(t, err, domainerrors.ErrContactNotFound)
}

func TestContactService_GetContact_NotFound(t *testing.T) {
	fixtures := createTestContactService(t, time.Now())
	ctx := context.Background()
	contactID := uuid.New()

	fixtures.contactRepo.EXPECT().
		FindByID(ctx, contactID).
		Return(nil, repository.ErrContactNotFound)

	_, err := fixtures.service.GetContact(ctx, uuid.New(), contactID)
	assert.ErrorIs(t, err, domainerrors.ErrContactNotFound)
}

func TestContactService_UpdateContact(t *testing.T) {
	fixtures := createTestContactService(t, time.Now())
	ctx := context.Background()

	userID := uuid.New()
	contact := ownedContact(userID, time.Date(1990, 3, 14, 0, 0, 0, 0, time.UTC))

	fixtures.contactRepo.EXPECT().FindByID(ctx, contact.ID).Return(contact, nil)
	fixtures.contactRepo.EXPECT().
		Update(ctx, mock.AnythingOfType("*entity.Contact")).
		Run(func(_ context.Context, updated *entity.Contact) {
			assert.Equal(t, "Robert", updated.FirstName)
		}).
		Return(nil)

	updated, err := fixtures.service.UpdateContact(ctx, userID, contact.ID, &usecase.ContactInput{
		FirstName: "Robert",
		LastName:  "Smith",
		Email:     "bob@example.com",
		Birthday:  contact.Birthday,
	})

	require.NoError(t, err)
	assert.Equal(t, "Robert", updated.FirstName)
}

func TestContactService_DeleteContact(t *testing.T) {
	fixtures := createTestContactService(t, time.Now())
	ctx := context.Background()

	userID := uuid.New()
	contact := ownedContact(userID, time.Now())

	fixtures.contactRepo.EXPECT().FindByID(ctx, contact.ID).Return(contact, nil)
	fixtures.contactRepo.EXPECT().Delete(ctx, contact.ID).Return(nil)

	err := fixtures.service.DeleteContact(ctx, userID, contact.ID)
	require.NoError(t, err)
}

func TestContactService_SearchContacts(t *testing.T) {
	fixtures := createTestContactService(t, time.Now())
	ctx := context.Background()

	userID := uuid.New()
	filter := repository.ContactSearch{FirstName: "Bo"}
	expected := []*entity.Contact{ownedContact(userID, time.Now())}

	fixtures.contactRepo.EXPECT().Search(ctx, userID, filter).Return(expected, nil)

	contacts, err := fixtures.service.SearchContacts(ctx, userID, filter)

	require.NoError(t, err)
	assert.Equal(t, expected, contacts)
}

func TestContactService_UpcomingBirthdays_WrapsYearEnd(t *testing.T) {
	today := time.Date(2025, 12, 28, 12, 0, 0, 0, time.UTC)
	fixtures := createTestContactService(t, today)
	ctx := context.Background()
	userID := uuid.New()

	inWindow := ownedContact(userID, time.Date(1990, 12, 30, 0, 0, 0, 0, time.UTC))
	wrapped := ownedContact(userID, time.Date(1985, 1, 2, 0, 0, 0, 0, time.UTC))
	outside := ownedContact(userID, time.Date(1970, 6, 15, 0, 0, 0, 0, time.UTC))

	fixtures.contactRepo.EXPECT().
		ListAllByUser(ctx, userID).
		Return([]*entity.Contact{inWindow, wrapped, outside}, nil)

	contacts, err := fixtures.service.UpcomingBirthdays(ctx, userID, 7, false)

	require.NoError(t, err)
	assert.ElementsMatch(t, []*entity.Contact{inWindow, wrapped}, contacts)
}

func TestContactService_UpcomingBirthdays_ExcludesOutOfWindow(t *testing.T) {
	today := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	fixtures := createTestContactService(t, today)
	ctx := context.Background()
	userID := uuid.New()

	janContact := ownedContact(userID, time.Date(1992, 1, 3, 0, 0, 0, 0, time.UTC))

	fixtures.contactRepo.EXPECT().
		ListAllByUser(ctx, userID).
		Return([]*entity.Contact{janContact}, nil)

	contacts, err := fixtures.service.UpcomingBirthdays(ctx, userID, 5, false)

	require.NoError(t, err)
	assert.Empty(t, contacts)
}
