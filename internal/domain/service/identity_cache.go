package service

import (
	"context"

	"contacthub/internal/domain/entity"
)

// IdentityCache is the best-effort write-through cache in front of the user
// directory. A miss (or any store failure) falls back to the directory, so
// cache trouble degrades to extra directory calls, never to a wrong identity.
type IdentityCache interface {
	// Get returns the cached identity snapshot for an email, or false on miss.
	Get(ctx context.Context, email string) (*entity.User, bool)

	// Put stores an identity snapshot under the email key with the configured TTL.
	Put(ctx context.Context, user *entity.User)
}
