package impl

import (
	"context"
	"log/slog"

	deliverycontext "contacthub/internal/delivery/context"
	"contacthub/internal/domain/entity"
	domainerrors "contacthub/internal/domain/errors"
	"contacthub/internal/domain/repository"
	"contacthub/internal/domain/service"
	"contacthub/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// userService implements the UserUsecase interface.
type userService struct {
	userRepo      repository.UserRepository
	identityCache service.IdentityCache
	logger        *slog.Logger
}

// UserServiceParams holds dependencies for userService, injected by Fx.
type UserServiceParams struct {
	fx.In

	UserRepo      repository.UserRepository
	IdentityCache service.IdentityCache
	Logger        *slog.Logger
}

// NewUserService is the constructor for userService.
func NewUserService(params UserServiceParams) usecase.UserUsecase {
	return &userService{
		userRepo:      params.UserRepo,
		identityCache: params.IdentityCache,
		logger:        params.Logger,
	}
}

func (srv *userService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Me returns the freshest directory copy of the account, bypassing the cache.
func (srv *userService) Me(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	user, err := srv.userRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrNotFound.WrapMessage("account not found")
		}

		return nil, errors.Wrap(err, "failed to load account")
	}

	return user, nil
}

// UpdateAvatar replaces the avatar URL and refreshes the identity cache so
// subsequent caller resolutions see the new value without waiting out the TTL.
func (srv *userService) UpdateAvatar(ctx context.Context, id uuid.UUID, avatarURL string) (*entity.User, error) {
	user, err := srv.userRepo.UpdateAvatar(ctx, id, avatarURL)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrNotFound.WrapMessage("account not found")
		}

		return nil, errors.Wrap(err, "failed to update avatar")
	}

	srv.identityCache.Put(ctx, user)

	srv.log(ctx).Debug("Avatar updated", slog.Any("userID", id))

	return user, nil
}
