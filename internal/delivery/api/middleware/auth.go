package middleware

import (
	"strings"

	"contacthub/internal/delivery/api/response"
	"contacthub/internal/domain/entity"
	"contacthub/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

const callerContextKey = "caller"

// AuthMiddleware guards protected routes by resolving the bearer access
// token into the calling identity.
type AuthMiddleware struct {
	authUC usecase.AuthUsecase
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(authUC usecase.AuthUsecase) *AuthMiddleware {
	return &AuthMiddleware{authUC: authUC}
}

// Authenticate validates the access token and stores the resolved caller
// on the echo context for handlers to use.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get("Authorization")
		if authHeader == "" {
			return response.Unauthorized(c, "UNAUTHENTICATED", "Authorization header is missing")
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader {
			return response.Unauthorized(c, "UNAUTHENTICATED", "Invalid token format, must be Bearer token")
		}

		caller, err := m.authUC.ResolveCaller(c.Request().Context(), tokenString)
		if err != nil {
			return response.HandleAppError(c, err)
		}

		c.Set(callerContextKey, caller)

		return next(c)
	}
}

// GetCaller returns the identity resolved by Authenticate.
func GetCaller(c echo.Context) (*entity.User, bool) {
	caller, ok := c.Get(callerContextKey).(*entity.User)

	return caller, ok
}

// GetCallerID returns the resolved caller's ID.
func GetCallerID(c echo.Context) (uuid.UUID, bool) {
	caller, ok := GetCaller(c)
	if !ok {
		return uuid.Nil, false
	}

	return caller.ID, true
}
