// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// User is the identity record owned by the user directory. The auth service
// only ever holds a transient copy of it, possibly served from the cache.
type User struct {
	ID           uuid.UUID `json:"id"`
	Username     string    `json:"username"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Confirmed    bool      `json:"confirmed"`
	// RefreshToken is the single refresh token currently on record.
	// Overwriting it revokes the previous one; nil means no active session.
	RefreshToken *string   `json:"-"`
	AvatarURL    string    `json:"avatar_url"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// NormalizeEmail lowercases an email address so it can serve as the
// case-insensitive directory and cache key.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
