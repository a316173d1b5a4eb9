package handler

import (
	"net/http"
	"testing"
	"time"

	"contacthub/internal/domain/entity"
	domainerrors "contacthub/internal/domain/errors"
	"contacthub/internal/domain/repository"
	mockusecase "contacthub/internal/mocks/usecase"
	"contacthub/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestContactHandler(t *testing.T) (*ContactHandler, *mockusecase.MockContactUsecase) {
	contactUC := mockusecase.NewMockContactUsecase(t)
	h := NewContactHandler(ContactHandlerParams{
		ContactUC: contactUC,
		Logger:    newTestLogger(),
	})

	return h, contactUC
}

func TestContactHandler_CreateContact(t *testing.T) {
	h, contactUC := newTestContactHandler(t)
	userID := uuid.New()

	contactUC.EXPECT().
		CreateContact(mock.Anything, userID, &usecase.ContactInput{
			FirstName: "Grace",
			LastName:  "Hopper",
			Email:     "grace@example.com",
			Birthday:  time.Date(1906, time.December, 9, 0, 0, 0, 0, time.UTC),
		}).
		Return(&entity.Contact{ID: uuid.New(), UserID: userID, FirstName: "Grace"}, nil)

	c, rec := newTestContext(http.MethodPost, "/api/contacts",
		`{"first_name":"Grace","last_name":"Hopper","email":"grace@example.com","birthday":"1906-12-09"}`)
	setCaller(c, userID)

	require.NoError(t, h.CreateContact(c))
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), "Grace")
}

func TestContactHandler_CreateContact_BadBirthday(t *testing.T) {
	h, _ := newTestContactHandler(t)

	c, rec := newTestContext(http.MethodPost, "/api/contacts",
		`{"first_name":"Grace","birthday":"09/12/1906"}`)
	setCaller(c, uuid.New())

	require.NoError(t, h.CreateContact(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestContactHandler_CreateContact_MissingCaller(t *testing.T) {
	h, _ := newTestContactHandler(t)

	c, rec := newTestContext(http.MethodPost, "/api/contacts", `{"first_name":"Grace"}`)

	require.NoError(t, h.CreateContact(c))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestContactHandler_ListContacts_ClampsPaging(t *testing.T) {
	h, contactUC := newTestContactHandler(t)
	userID := uuid.New()

	contactUC.EXPECT().
		ListContacts(mock.Anything, userID, 0, defaultListLimit).
		Return([]*entity.Contact{}, nil)

	c, rec := newTestContext(http.MethodGet, "/api/contacts?offset=-3&limit=9999", "")
	setCaller(c, userID)

	require.NoError(t, h.ListContacts(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestContactHandler_SearchContacts(t *testing.T) {
	h, contactUC := newTestContactHandler(t)
	userID := uuid.New()

	contactUC.EXPECT().
		SearchContacts(mock.Anything, userID, repository.ContactSearch{FirstName: "Gra"}).
		Return([]*entity.Contact{{FirstName: "Grace"}}, nil)

	c, rec := newTestContext(http.MethodGet, "/api/contacts/search?first_name=Gra", "")
	setCaller(c, userID)

	require.NoError(t, h.SearchContacts(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Grace")
}

func TestContactHandler_UpcomingBirthdays(t *testing.T) {
	h, contactUC := newTestContactHandler(t)
	userID := uuid.New()

	contactUC.EXPECT().
		UpcomingBirthdays(mock.Anything, userID, 14, false).
		Return([]*entity.Contact{}, nil)

	c, rec := newTestContext(http.MethodGet, "/api/contacts/birthdays?days=14&include_today=false", "")
	setCaller(c, userID)

	require.NoError(t, h.UpcomingBirthdays(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestContactHandler_UpcomingBirthdays_Defaults(t *testing.T) {
	h, contactUC := newTestContactHandler(t)
	userID := uuid.New()

	contactUC.EXPECT().
		UpcomingBirthdays(mock.Anything, userID, defaultWindowDays, true).
		Return([]*entity.Contact{}, nil)

	c, rec := newTestContext(http.MethodGet, "/api/contacts/birthdays", "")
	setCaller(c, userID)

	require.NoError(t, h.UpcomingBirthdays(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestContactHandler_GetContact_NotFound(t *testing.T) {
	h, contactUC := newTestContactHandler(t)
	userID := uuid.New()
	contactID := uuid.New()

	contactUC.EXPECT().
		GetContact(mock.Anything, userID, contactID).
		Return(nil, domainerrors.ErrContactNotFound)

	c, rec := newTestContext(http.MethodGet, "/api/contacts/"+contactID.String(), "")
	c.SetParamNames("id")
	c.SetParamValues(contactID.String())
	setCaller(c, userID)

	require.NoError(t, h.GetContact(c))
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "CONTACT_NOT_FOUND")
}

func TestContactHandler_DeleteContact(t *testing.T) {
	h, contactUC := newTestContactHandler(t)
	userID := uuid.New()
	contactID := uuid.New()

	contactUC.EXPECT().
		DeleteContact(mock.Anything, userID, contactID).
		Return(nil)

	c, rec := newTestContext(http.MethodDelete, "/api/contacts/"+contactID.String(), "")
	c.SetParamNames("id")
	c.SetParamValues(contactID.String())
	setCaller(c, userID)

	require.NoError(t, h.DeleteContact(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestContactHandler_DeleteContact_BadID(t *testing.T) {
	h, _ := newTestContactHandler(t)

	c, rec := newTestContext(http.MethodDelete, "/api/contacts/not-a-uuid", "")
	c.SetParamNames("id")
	c.SetParamValues("not-a-uuid")
	setCaller(c, uuid.New())

	require.NoError(t, h.DeleteContact(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "INVALID_ID")
}
