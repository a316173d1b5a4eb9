package cache

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"contacthub/internal/domain/entity"
	"contacthub/internal/errors"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeStore struct {
	entries map[string][]byte
	ttls    map[string]time.Duration
	getErr  error
	setErr  error
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		entries: make(map[string][]byte),
		ttls:    make(map[string]time.Duration),
	}
}

func (s *fakeStore) Get(_ context.Context, key string) ([]byte, error) {
	if s.getErr != nil {
		return nil, s.getErr
	}

	value, ok := s.entries[key]
	if !ok {
		return nil, ErrKeyNotFound
	}

	return value, nil
}

func (s *fakeStore) Set(_ context.Context, key string, value []byte, ttl time.Duration) error {
	if s.setErr != nil {
		return s.setErr
	}

	s.entries[key] = value
	s.ttls[key] = ttl

	return nil
}

func newTestUserCache(store Store, ttl time.Duration) *userCache {
	return &userCache{
		store:  store,
		ttl:    ttl,
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

func TestUserCache_PutThenGet(t *testing.T) {
	store := newFakeStore()
	userCache := newTestUserCache(store, 900*time.Second)

	user := &entity.User{
		ID:        uuid.New(),
		Username:  "taylor",
		Email:     "taylor@example.com",
		Confirmed: true,
		AvatarURL: "https://www.gravatar.com/avatar/abc",
	}

	userCache.Put(context.Background(), user)

	cached, ok := userCache.Get(context.Background(), "taylor@example.com")
	require.True(t, ok)
	assert.Equal(t, user.ID, cached.ID)
	assert.Equal(t, user.Username, cached.Username)
	assert.Equal(t, user.Email, cached.Email)
	assert.True(t, cached.Confirmed)
}

func TestUserCache_KeySchemeAndTTL(t *testing.T) {
	store := newFakeStore()
	userCache := newTestUserCache(store, 900*time.Second)

	user := &entity.User{ID: uuid.New(), Email: "Taylor@Example.COM"}
	userCache.Put(context.Background(), user)

	require.Contains(t, store.entries, "user:taylor@example.com")
	assert.Equal(t, 900*time.Second, store.ttls["user:taylor@example.com"])

	// Lookups normalize the same way, so mixed-case reads still hit.
	_, ok := userCache.Get(context.Background(), "TAYLOR@example.com")
	assert.True(t, ok)
}

func TestUserCache_MissOnAbsentKey(t *testing.T) {
	userCache := newTestUserCache(newFakeStore(), time.Minute)

	cached, ok := userCache.Get(context.Background(), "nobody@example.com")
	assert.False(t, ok)
	assert.Nil(t, cached)
}

func TestUserCache_StoreErrorIsMiss(t *testing.T) {
	store := newFakeStore()
	store.getErr = errors.New("connection refused")
	userCache := newTestUserCache(store, time.Minute)

	_, ok := userCache.Get(context.Background(), "taylor@example.com")
	assert.False(t, ok)
}

func TestUserCache_CorruptEntryIsMiss(t *testing.T) {
	store := newFakeStore()
	store.entries["user:taylor@example.com"] = []byte("{not json")
	userCache := newTestUserCache(store, time.Minute)

	_, ok := userCache.Get(context.Background(), "taylor@example.com")
	assert.False(t, ok)
}

func TestUserCache_VersionMismatchIsMiss(t *testing.T) {
	store := newFakeStore()
	store.entries["user:taylor@example.com"] = []byte(`{"v":99,"user":{"email":"taylor@example.com"}}`)
	userCache := newTestUserCache(store, time.Minute)

	_, ok := userCache.Get(context.Background(), "taylor@example.com")
	assert.False(t, ok)
}

func TestUserCache_WriteFailureIsSwallowed(t *testing.T) {
	store := newFakeStore()
	store.setErr = errors.New("connection refused")
	userCache := newTestUserCache(store, time.Minute)

	assert.NotPanics(t, func() {
		userCache.Put(context.Background(), &entity.User{ID: uuid.New(), Email: "taylor@example.com"})
	})
}
