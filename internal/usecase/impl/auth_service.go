// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "contacthub/internal/delivery/context"
	"contacthub/internal/domain/entity"
	domainerrors "contacthub/internal/domain/errors"
	"contacthub/internal/domain/repository"
	"contacthub/internal/domain/service"
	"contacthub/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const tokenTypeBearer = "bearer"

// mailDispatchTimeout bounds the background confirmation-mail send, which
// outlives the originating request.
const mailDispatchTimeout = 30 * time.Second

// authService implements the AuthUsecase interface. It holds no mutable
// in-process state; all durable state lives in the directory and the cache.
type authService struct {
	txManager      repository.TransactionManager
	userRepo       repository.UserRepository
	hasher         service.PasswordHasher
	tokenCodec     service.TokenCodec
	identityCache  service.IdentityCache
	mailDispatcher service.MailDispatcher
	avatarResolver service.AvatarResolver
	logger         *slog.Logger
}

// AuthServiceParams holds dependencies for authService, injected by Fx.
type AuthServiceParams struct {
	fx.In

	TxManager      repository.TransactionManager
	UserRepo       repository.UserRepository
	Hasher         service.PasswordHasher
	TokenCodec     service.TokenCodec
	IdentityCache  service.IdentityCache
	MailDispatcher service.MailDispatcher
	AvatarResolver service.AvatarResolver
	Logger         *slog.Logger
}

// NewAuthService is the constructor for authService. It receives all dependencies as interfaces.
func NewAuthService(params AuthServiceParams) usecase.AuthUsecase {
	return &authService{
		txManager:      params.TxManager,
		userRepo:       params.UserRepo,
		hasher:         params.Hasher,
		tokenCodec:     params.TokenCodec,
		identityCache:  params.IdentityCache,
		mailDispatcher: params.MailDispatcher,
		avatarResolver: params.AvatarResolver,
		logger:         params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *authService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Register creates a new unconfirmed account and queues the confirmation mail.
func (srv *authService) Register(ctx context.Context, input *usecase.RegisterInput) (*usecase.RegisterOutput, error) {
	email := entity.NormalizeEmail(input.Email)
	srv.log(ctx).Info("Starting registration", slog.String("email", email))

	_, err := srv.userRepo.FindByEmail(ctx, email)
	if err == nil {
		srv.log(ctx).Warn("Registration rejected, email taken", slog.String("email", email))

		return nil, domainerrors.ErrAlreadyExists.WrapMessage("email already registered")
	}
	if !errors.Is(err, repository.ErrUserNotFound) {
		return nil, errors.Wrap(err, "failed to check email availability")
	}

	hashedPassword, err := srv.hasher.Hash(input.Password)
	if err != nil {
		srv.log(ctx).Error("Failed to hash password during registration", slog.Any("error", err))

		return nil, domainerrors.ErrPasswordHashFailed.WrapMessage("failed to hash password")
	}

	newUser := &entity.User{
		Username:     input.Username,
		Email:        email,
		PasswordHash: hashedPassword,
		AvatarURL:    srv.avatarResolver.AvatarURL(email),
	}

	// The unique email constraint closes the race between the availability
	// check above and this insert.
	if err := srv.userRepo.Create(ctx, newUser); err != nil {
		return nil, errors.Wrap(err, "failed to create user during registration")
	}

	srv.dispatchConfirmationMail(ctx, newUser)

	srv.log(ctx).Debug("Registration completed", slog.Any("userID", newUser.ID))

	return &usecase.RegisterOutput{User: newUser}, nil
}

// Login verifies credentials and issues a fresh access/refresh pair. The new
// refresh token overwrites the stored one, which is the sole revocation
// mechanism for earlier refresh tokens.
func (srv *authService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.TokenPairOutput, error) {
	email := entity.NormalizeEmail(input.Email)
	srv.log(ctx).Debug("Starting login", slog.String("email", email))

	user, err := srv.userRepo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			srv.log(ctx).Warn("Login failed, unknown email", slog.String("email", email))

			return nil, domainerrors.ErrUnknownIdentity.WrapMessage("invalid email")
		}

		return nil, errors.Wrap(err, "failed to find user during login")
	}

	if !user.Confirmed {
		srv.log(ctx).Warn("Login rejected, email not confirmed", slog.String("email", email))

		return nil, domainerrors.ErrNotConfirmed.WrapMessage("email not confirmed")
	}

	// bcrypt is CPU-bound; keep it outside any transaction.
	if !srv.hasher.Check(input.Password, user.PasswordHash) {
		srv.log(ctx).Warn("Login failed, password mismatch", slog.String("email", email))

		return nil, domainerrors.ErrBadCredentials.WrapMessage("invalid password")
	}

	pair, err := srv.issueTokenPair(user.Email)
	if err != nil {
		return nil, err
	}

	if err := srv.userRepo.UpdateRefreshToken(ctx, user.ID, &pair.RefreshToken); err != nil {
		return nil, errors.Wrap(err, "failed to persist refresh token during login")
	}

	user.RefreshToken = &pair.RefreshToken
	srv.identityCache.Put(ctx, user)

	srv.log(ctx).Debug("Login completed", slog.Any("userID", user.ID))

	return pair, nil
}

// Refresh rotates a presented refresh token into a new pair. The read and
// rewrite of the stored token run under a row lock so two concurrent
// rotations for the same identity cannot both succeed.
func (srv *authService) Refresh(ctx context.Context, input *usecase.RefreshInput) (*usecase.TokenPairOutput, error) {
	claims, err := srv.tokenCodec.Decode(input.RefreshToken, service.ScopeRefresh)
	if err != nil {
		srv.log(ctx).Warn("Refresh rejected at decode", slog.Any("error", err))

		return nil, err
	}

	var pair *usecase.TokenPairOutput
	var staleErr error
	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()

		user, err := userRepo.FindByEmailForUpdate(ctx, claims.Subject)
		if err != nil {
			if errors.Is(err, repository.ErrUserNotFound) {
				return domainerrors.ErrUnknownIdentity.WrapMessage("unknown refresh subject")
			}

			return errors.Wrap(err, "failed to load user for refresh")
		}

		// A mismatch means this token was already rotated out. Someone is
		// replaying it, so revoke the live one too before failing. The
		// callback must return nil here: an error would roll the
		// transaction back and undo the clear, so the stale failure is
		// carried out of the callback and surfaced after the commit.
		if user.RefreshToken == nil || *user.RefreshToken != input.RefreshToken {
			if clearErr := userRepo.UpdateRefreshToken(ctx, user.ID, nil); clearErr != nil {
				return errors.Wrap(clearErr, "failed to clear refresh token after reuse detection")
			}
			srv.log(ctx).Warn("Refresh token reuse detected, session revoked", slog.Any("userID", user.ID))

			staleErr = domainerrors.ErrRefreshTokenStale.WrapMessage("refresh token superseded")

			return nil
		}

		pair, err = srv.issueTokenPair(user.Email)
		if err != nil {
			return err
		}

		if err := userRepo.UpdateRefreshToken(ctx, user.ID, &pair.RefreshToken); err != nil {
			return errors.Wrap(err, "failed to persist rotated refresh token")
		}

		return nil
	})
	if err != nil {
		return nil, err
	}
	if staleErr != nil {
		return nil, staleErr
	}

	srv.log(ctx).Debug("Refresh token rotated", slog.String("email", claims.Subject))

	return pair, nil
}

// ResolveCaller maps a presented access token to its identity record, serving
// from the cache when possible. Any decode defect reads as Unauthenticated;
// the caller learns nothing about why the token was rejected.
func (srv *authService) ResolveCaller(ctx context.Context, accessToken string) (*entity.User, error) {
	claims, err := srv.tokenCodec.Decode(accessToken, service.ScopeAccess)
	if err != nil {
		return nil, domainerrors.ErrUnauthenticated.WrapMessage("invalid access token")
	}

	if cached, ok := srv.identityCache.Get(ctx, claims.Subject); ok {
		return cached, nil
	}

	user, err := srv.userRepo.FindByEmail(ctx, claims.Subject)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUnauthenticated.WrapMessage("unknown subject")
		}

		return nil, errors.Wrap(err, "failed to resolve caller from directory")
	}

	srv.identityCache.Put(ctx, user)

	return user, nil
}

// RequestConfirmation re-issues and dispatches a confirmation mail for an
// unconfirmed account.
func (srv *authService) RequestConfirmation(ctx context.Context, email string) (*usecase.RequestConfirmationOutput, error) {
	user, err := srv.userRepo.FindByEmail(ctx, entity.NormalizeEmail(email))
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUnknownIdentity.WrapMessage("unknown email")
		}

		return nil, errors.Wrap(err, "failed to find user for confirmation request")
	}

	if user.Confirmed {
		return &usecase.RequestConfirmationOutput{AlreadyConfirmed: true}, nil
	}

	srv.dispatchConfirmationMail(ctx, user)

	return &usecase.RequestConfirmationOutput{}, nil
}

// ConfirmEmail resolves a confirmation token and marks the account confirmed.
// A second confirmation is a reported no-op, not an error.
func (srv *authService) ConfirmEmail(ctx context.Context, token string) (*usecase.ConfirmEmailOutput, error) {
	claims, err := srv.tokenCodec.Decode(token, service.ScopeEmail)
	if err != nil {
		srv.log(ctx).Warn("Confirmation token rejected", slog.Any("error", err))

		return nil, domainerrors.ErrInvalidConfirmationToken.WrapMessage("verification error")
	}

	user, err := srv.userRepo.FindByEmail(ctx, claims.Subject)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrInvalidConfirmationToken.WrapMessage("verification error")
		}

		return nil, errors.Wrap(err, "failed to find user for confirmation")
	}

	if user.Confirmed {
		return &usecase.ConfirmEmailOutput{AlreadyConfirmed: true}, nil
	}

	if err := srv.userRepo.MarkConfirmed(ctx, user.ID); err != nil {
		return nil, errors.Wrap(err, "failed to mark user confirmed")
	}

	user.Confirmed = true
	srv.identityCache.Put(ctx, user)

	srv.log(ctx).Info("Email confirmed", slog.Any("userID", user.ID))

	return &usecase.ConfirmEmailOutput{}, nil
}

// issueTokenPair mints a fresh access/refresh pair for the subject.
func (srv *authService) issueTokenPair(subject string) (*usecase.TokenPairOutput, error) {
	accessToken, err := srv.tokenCodec.Issue(subject, service.ScopeAccess)
	if err != nil {
		return nil, errors.Wrap(err, "failed to issue access token")
	}

	refreshToken, err := srv.tokenCodec.Issue(subject, service.ScopeRefresh)
	if err != nil {
		return nil, errors.Wrap(err, "failed to issue refresh token")
	}

	return &usecase.TokenPairOutput{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		TokenType:    tokenTypeBearer,
	}, nil
}

// dispatchConfirmationMail issues an email-scoped token and sends the mail in
// the background. Delivery failures are logged, never surfaced: the account
// can always re-request a mail.
func (srv *authService) dispatchConfirmationMail(ctx context.Context, user *entity.User) {
	emailToken, err := srv.tokenCodec.Issue(user.Email, service.ScopeEmail)
	if err != nil {
		srv.log(ctx).Error("Failed to issue confirmation token", slog.Any("error", err))

		return
	}

	logger := srv.log(ctx)
	go func() {
		sendCtx, cancel := context.WithTimeout(context.Background(), mailDispatchTimeout)
		defer cancel()

		if err := srv.mailDispatcher.SendConfirmation(sendCtx, user.Email, user.Username, emailToken); err != nil {
			logger.Error("Failed to send confirmation mail",
				slog.String("email", user.Email), slog.Any("error", err))
		}
	}()
}
