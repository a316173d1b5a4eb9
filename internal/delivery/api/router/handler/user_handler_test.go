package handler

import (
	"net/http"
	"testing"

	mockusecase "contacthub/internal/mocks/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestUserHandler(t *testing.T) (*UserHandler, *mockusecase.MockUserUsecase) {
	userUC := mockusecase.NewMockUserUsecase(t)
	h := NewUserHandler(UserHandlerParams{
		UserUC: userUC,
		Logger: newTestLogger(),
	})

	return h, userUC
}

func TestUserHandler_Me(t *testing.T) {
	h, userUC := newTestUserHandler(t)
	userID := uuid.New()

	c, rec := newTestContext(http.MethodGet, "/api/users/me", "")
	caller := setCaller(c, userID)

	userUC.EXPECT().
		Me(mock.Anything, userID).
		Return(caller, nil)

	require.NoError(t, h.Me(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), caller.Email)
}

func TestUserHandler_UpdateAvatar(t *testing.T) {
	h, userUC := newTestUserHandler(t)
	userID := uuid.New()

	c, rec := newTestContext(http.MethodPut, "/api/users/avatar",
		`{"avatar_url":"https://cdn.example.com/a.png"}`)
	caller := setCaller(c, userID)
	caller.AvatarURL = "https://cdn.example.com/a.png"

	userUC.EXPECT().
		UpdateAvatar(mock.Anything, userID, "https://cdn.example.com/a.png").
		Return(caller, nil)

	require.NoError(t, h.UpdateAvatar(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "https://cdn.example.com/a.png")
}

func TestUserHandler_UpdateAvatar_NotAURL(t *testing.T) {
	h, _ := newTestUserHandler(t)

	c, rec := newTestContext(http.MethodPut, "/api/users/avatar", `{"avatar_url":"not a url"}`)
	setCaller(c, uuid.New())

	require.NoError(t, h.UpdateAvatar(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "VALIDATION_ERROR")
}
