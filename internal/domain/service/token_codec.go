package service

import "time"

// TokenScope tags a token with the single operation class allowed to accept
// it. Presenting an access token where a refresh token is expected is a scope
// mismatch, not merely an invalid token.
type TokenScope string

// Wire-exact scope literals.
const (
	ScopeAccess  TokenScope = "access_token"
	ScopeRefresh TokenScope = "refresh_token"
	ScopeEmail   TokenScope = "email_token"
)

// TokenClaims is the decoded claims set of a signed token.
type TokenClaims struct {
	Subject   string     // "sub": the subject email
	Scope     TokenScope // "scope"
	IssuedAt  time.Time  // "iat"
	ExpiresAt time.Time  // "exp"
}

// TokenCodec encodes and decodes signed, expiring claims sets into opaque
// strings. Tokens are immutable bearer capabilities once issued.
type TokenCodec interface {
	// Issue creates a signed token for the subject with the scope's
	// configured TTL, setting iat to now.
	Issue(subject string, scope TokenScope) (string, error)

	// Decode verifies signature and expiry and enforces the expected scope.
	// Failures map onto the domain errors ErrTokenExpired, ErrTokenMalformed
	// and ErrTokenScopeMismatch respectively.
	Decode(tokenString string, expected TokenScope) (*TokenClaims, error)
}
