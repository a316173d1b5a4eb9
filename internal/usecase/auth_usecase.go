// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"contacthub/internal/domain/entity"
)

// --- Input DTOs ---

// RegisterInput defines the data required to register a new account.
type RegisterInput struct {
	Username string
	Email    string
	Password string
}

// LoginInput defines the data required to log in.
type LoginInput struct {
	Email    string
	Password string
}

// RefreshInput carries the refresh token presented for rotation.
type RefreshInput struct {
	RefreshToken string
}

// --- Output DTOs ---

// RegisterOutput returns the newly created account, still unconfirmed.
type RegisterOutput struct {
	User *entity.User
}

// TokenPairOutput returns a freshly issued access/refresh pair.
type TokenPairOutput struct {
	AccessToken  string
	RefreshToken string
	TokenType    string
}

// ConfirmEmailOutput reports the confirmation outcome. Confirming twice is
// not an error; AlreadyConfirmed lets the boundary phrase it differently.
type ConfirmEmailOutput struct {
	AlreadyConfirmed bool
}

// RequestConfirmationOutput reports whether a mail was actually queued.
type RequestConfirmationOutput struct {
	AlreadyConfirmed bool
}

// AuthUsecase defines the contract for account and session lifecycle
// operations. The delivery layer depends on this interface only.
type AuthUsecase interface {
	// Register creates a new unconfirmed account and queues the
	// confirmation mail.
	Register(ctx context.Context, input *RegisterInput) (*RegisterOutput, error)

	// Login verifies credentials and issues a fresh token pair. The new
	// refresh token replaces any previously stored one, revoking it.
	Login(ctx context.Context, input *LoginInput) (*TokenPairOutput, error)

	// Refresh rotates a presented refresh token into a new pair. Presenting
	// a token that no longer matches the stored one is treated as reuse of
	// a rotated-out token: the stored token is cleared and the call fails.
	Refresh(ctx context.Context, input *RefreshInput) (*TokenPairOutput, error)

	// ResolveCaller maps a presented access token to its identity record.
	// Every protected route calls this as a pre-condition guard.
	ResolveCaller(ctx context.Context, accessToken string) (*entity.User, error)

	// RequestConfirmation re-issues and dispatches a confirmation mail.
	RequestConfirmation(ctx context.Context, email string) (*RequestConfirmationOutput, error)

	// ConfirmEmail resolves a confirmation token and marks the account
	// confirmed. Idempotent.
	ConfirmEmail(ctx context.Context, token string) (*ConfirmEmailOutput, error)
}
