package usecase

import (
	"context"

	"contacthub/internal/domain/entity"

	"github.com/google/uuid"
)

// UserUsecase defines profile operations for the authenticated account.
type UserUsecase interface {
	// Me returns the freshest directory copy of the account.
	Me(ctx context.Context, id uuid.UUID) (*entity.User, error)

	// UpdateAvatar replaces the avatar URL and refreshes the identity
	// cache so subsequent resolutions see the new value immediately.
	UpdateAvatar(ctx context.Context, id uuid.UUID, avatarURL string) (*entity.User, error)
}
