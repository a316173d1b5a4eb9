package cache

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"contacthub/config"
	"contacthub/internal/domain/entity"
	"contacthub/internal/domain/service"
	"contacthub/internal/errors"

	"go.uber.org/fx"
)

// userCacheKeyPrefix is the wire-exact key scheme for identity snapshots.
const userCacheKeyPrefix = "user:"

// snapshotVersion guards the serialized schema. Entries written by an older
// build decode into the zero value of removed fields; entries with a newer
// version are treated as misses rather than deserialized blindly.
const snapshotVersion = 1

// userSnapshot is the fixed, versioned cache entry schema. Credential fields
// carry a json:"-" tag on the entity and never enter the snapshot; callers
// needing them must hit the directory.
type userSnapshot struct {
	Version int          `json:"v"`
	User    *entity.User `json:"user"`
}

// userCache implements service.IdentityCache with a bounded TTL on top of a
// byte-oriented Store. Store failures degrade to misses.
type userCache struct {
	store  Store
	ttl    time.Duration
	logger *slog.Logger
}

// UserCacheParams holds dependencies for the identity cache, injected by Fx.
type UserCacheParams struct {
	fx.In

	Store  Store
	Config *config.Config
	Logger *slog.Logger
}

// NewUserCache is the constructor for userCache.
func NewUserCache(params UserCacheParams) service.IdentityCache {
	return &userCache{
		store:  params.Store,
		ttl:    params.Config.Cache.UserTTL,
		logger: params.Logger,
	}
}

// Get returns the cached identity for an email, or false on miss. Decode
// trouble and store errors both count as misses.
func (c *userCache) Get(ctx context.Context, email string) (*entity.User, bool) {
	raw, err := c.store.Get(ctx, userCacheKey(email))
	if err != nil {
		if !errors.Is(err, ErrKeyNotFound) {
			c.logger.Warn("Identity cache read failed, falling back to directory",
				slog.String("email", email), slog.Any("error", err))
		}

		return nil, false
	}

	var snapshot userSnapshot
	if err := json.Unmarshal(raw, &snapshot); err != nil {
		c.logger.Warn("Identity cache entry is not decodable, treating as miss",
			slog.String("email", email), slog.Any("error", err))

		return nil, false
	}

	if snapshot.Version != snapshotVersion || snapshot.User == nil {
		return nil, false
	}

	return snapshot.User, true
}

// Put stores an identity snapshot. Failures are logged, never propagated: the
// cache is best-effort and the directory remains the source of truth.
func (c *userCache) Put(ctx context.Context, user *entity.User) {
	raw, err := json.Marshal(userSnapshot{Version: snapshotVersion, User: user})
	if err != nil {
		c.logger.Warn("Identity snapshot marshal failed", slog.Any("error", err))

		return
	}

	if err := c.store.Set(ctx, userCacheKey(user.Email), raw, c.ttl); err != nil {
		c.logger.Warn("Identity cache write failed",
			slog.String("email", user.Email), slog.Any("error", err))
	}
}

func userCacheKey(email string) string {
	return userCacheKeyPrefix + entity.NormalizeEmail(email)
}
