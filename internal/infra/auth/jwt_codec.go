// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"contacthub/config"
	domainerrors "contacthub/internal/domain/errors"
	"contacthub/internal/domain/service"
)

// jwtCodec is a concrete implementation of the TokenCodec interface using the
// JWT standard: HS256 with a single process-wide secret. The scope claim is
// what keeps access, refresh and email-confirmation tokens from being played
// against each other's operations.
type jwtCodec struct {
	secret     string
	accessTTL  time.Duration // Time-to-live for access tokens.
	refreshTTL time.Duration // Time-to-live for refresh tokens.
	emailTTL   time.Duration // Time-to-live for email-confirmation tokens.
}

// NewJWTCodec is the constructor for jwtCodec.
// It takes configuration values to create a new token codec instance.
func NewJWTCodec(cfg *config.Config) (service.TokenCodec, error) {
	if cfg.SecretKey.JWT == "" {
		return nil, errors.New("jwt secret must be provided")
	}

	return &jwtCodec{
		secret:     cfg.SecretKey.JWT,
		accessTTL:  cfg.Auth.AccessTokenTTL,
		refreshTTL: cfg.Auth.RefreshTokenTTL,
		emailTTL:   cfg.Auth.EmailTokenTTL,
	}, nil
}

// Issue creates a signed token carrying the scope's TTL.
func (c *jwtCodec) Issue(subject string, scope service.TokenScope) (string, error) {
	now := time.Now()

	claims := jwt.MapClaims{
		"sub":   subject,                          // Subject (who the token is for)
		"iat":   now.Unix(),                       // Issued At
		"exp":   now.Add(c.ttlFor(scope)).Unix(),  // Expiration Time
		"scope": string(scope),                    // Operation class allowed to accept this token
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	return token.SignedString([]byte(c.secret))
}

// Decode verifies the token and enforces the expected scope. Expiry, broken
// signature/structure and scope mismatch surface as distinct domain errors.
func (c *jwtCodec) Decode(tokenString string, expected service.TokenScope) (*service.TokenClaims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (any, error) {
		// Ensure the signing method is what we expect.
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}

		return []byte(c.secret), nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, domainerrors.ErrTokenExpired
		}

		return nil, domainerrors.ErrTokenMalformed
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, domainerrors.ErrTokenMalformed
	}

	scope, _ := claims["scope"].(string)
	if service.TokenScope(scope) != expected {
		return nil, domainerrors.ErrTokenScopeMismatch
	}

	subject, _ := claims["sub"].(string)
	if subject == "" {
		return nil, domainerrors.ErrTokenMalformed
	}

	return &service.TokenClaims{
		Subject:   subject,
		Scope:     service.TokenScope(scope),
		IssuedAt:  unixClaim(claims, "iat"),
		ExpiresAt: unixClaim(claims, "exp"),
	}, nil
}

// ttlFor maps a scope onto its configured lifetime.
func (c *jwtCodec) ttlFor(scope service.TokenScope) time.Duration {
	switch scope {
	case service.ScopeRefresh:
		return c.refreshTTL
	case service.ScopeEmail:
		return c.emailTTL
	default:
		return c.accessTTL
	}
}

// unixClaim reads a numeric claim as a time. JSON numbers decode as float64.
func unixClaim(claims jwt.MapClaims, key string) time.Time {
	seconds, _ := claims[key].(float64)

	return time.Unix(int64(seconds), 0)
}
