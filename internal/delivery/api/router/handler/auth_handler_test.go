package handler

import (
	"net/http"
	"testing"

	"contacthub/internal/domain/entity"
	domainerrors "contacthub/internal/domain/errors"
	mockusecase "contacthub/internal/mocks/usecase"
	"contacthub/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestAuthHandler(t *testing.T) (*AuthHandler, *mockusecase.MockAuthUsecase) {
	authUC := mockusecase.NewMockAuthUsecase(t)
	h := NewAuthHandler(AuthHandlerParams{
		AuthUC: authUC,
		Logger: newTestLogger(),
	})

	return h, authUC
}

func TestAuthHandler_Signup(t *testing.T) {
	h, authUC := newTestAuthHandler(t)

	authUC.EXPECT().
		Register(mock.Anything, &usecase.RegisterInput{
			Username: "taylor",
			Email:    "taylor@example.com",
			Password: "sup3rsecret",
		}).
		Return(&usecase.RegisterOutput{User: &entity.User{
			ID:       uuid.New(),
			Username: "taylor",
			Email:    "taylor@example.com",
		}}, nil)

	c, rec := newTestContext(http.MethodPost, "/api/auth/signup",
		`{"username":"taylor","email":"taylor@example.com","password":"sup3rsecret"}`)

	require.NoError(t, h.Signup(c))
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), "taylor@example.com")
	assert.Contains(t, rec.Body.String(), "request_id")
}

func TestAuthHandler_Signup_ValidationError(t *testing.T) {
	h, _ := newTestAuthHandler(t)

	c, rec := newTestContext(http.MethodPost, "/api/auth/signup",
		`{"username":"taylor","email":"not-an-email","password":"sup3rsecret"}`)

	require.NoError(t, h.Signup(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "VALIDATION_ERROR")
}

func TestAuthHandler_Login(t *testing.T) {
	h, authUC := newTestAuthHandler(t)

	authUC.EXPECT().
		Login(mock.Anything, &usecase.LoginInput{Email: "taylor@example.com", Password: "sup3rsecret"}).
		Return(&usecase.TokenPairOutput{
			AccessToken:  "access",
			RefreshToken: "refresh",
			TokenType:    "bearer",
		}, nil)

	c, rec := newTestContext(http.MethodPost, "/api/auth/login",
		`{"email":"taylor@example.com","password":"sup3rsecret"}`)

	require.NoError(t, h.Login(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"access_token":"access"`)
	assert.Contains(t, rec.Body.String(), `"refresh_token":"refresh"`)
	assert.Contains(t, rec.Body.String(), `"token_type":"bearer"`)
}

func TestAuthHandler_Login_BadCredentials(t *testing.T) {
	h, authUC := newTestAuthHandler(t)

	authUC.EXPECT().
		Login(mock.Anything, mock.Anything).
		Return(nil, domainerrors.ErrBadCredentials)

	c, rec := newTestContext(http.MethodPost, "/api/auth/login",
		`{"email":"taylor@example.com","password":"wrong-password"}`)

	require.NoError(t, h.Login(c))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "BAD_CREDENTIALS")
}

func TestAuthHandler_RefreshToken_Stale(t *testing.T) {
	h, authUC := newTestAuthHandler(t)

	authUC.EXPECT().
		Refresh(mock.Anything, &usecase.RefreshInput{RefreshToken: "rotated-out"}).
		Return(nil, domainerrors.ErrRefreshTokenStale)

	c, rec := newTestContext(http.MethodPost, "/api/auth/refresh_token",
		`{"refresh_token":"rotated-out"}`)

	require.NoError(t, h.RefreshToken(c))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "REFRESH_TOKEN_STALE")
}

func TestAuthHandler_RequestEmail_AlreadyConfirmed(t *testing.T) {
	h, authUC := newTestAuthHandler(t)

	authUC.EXPECT().
		RequestConfirmation(mock.Anything, "taylor@example.com").
		Return(&usecase.RequestConfirmationOutput{AlreadyConfirmed: true}, nil)

	c, rec := newTestContext(http.MethodPost, "/api/auth/request_email",
		`{"email":"taylor@example.com"}`)

	require.NoError(t, h.RequestEmail(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "already confirmed")
}

func TestAuthHandler_ConfirmedEmail(t *testing.T) {
	h, authUC := newTestAuthHandler(t)

	authUC.EXPECT().
		ConfirmEmail(mock.Anything, "mail-token").
		Return(&usecase.ConfirmEmailOutput{}, nil)

	c, rec := newTestContext(http.MethodGet, "/api/auth/confirmed_email/mail-token", "")
	c.SetParamNames("token")
	c.SetParamValues("mail-token")

	require.NoError(t, h.ConfirmedEmail(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Email verified")
}

func TestAuthHandler_ConfirmedEmail_InvalidToken(t *testing.T) {
	h, authUC := newTestAuthHandler(t)

	authUC.EXPECT().
		ConfirmEmail(mock.Anything, "garbage").
		Return(nil, domainerrors.ErrInvalidConfirmationToken)

	c, rec := newTestContext(http.MethodGet, "/api/auth/confirmed_email/garbage", "")
	c.SetParamNames("token")
	c.SetParamValues("garbage")

	require.NoError(t, h.ConfirmedEmail(c))
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Contains(t, rec.Body.String(), "INVALID_CONFIRMATION_TOKEN")
}
