package handler

import (
	"log/slog"
	"net/http"

	"contacthub/internal/delivery/api/middleware"
	"contacthub/internal/delivery/api/response"
	"contacthub/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// UserHandlerParams holds dependencies for UserHandler, injected by Fx.
type UserHandlerParams struct {
	fx.In

	UserUC usecase.UserUsecase
	Logger *slog.Logger
}

// UserHandler holds dependencies for profile handlers
type UserHandler struct {
	userUC usecase.UserUsecase
	logger *slog.Logger
}

// NewUserHandler is the constructor for UserHandler
func NewUserHandler(params UserHandlerParams) *UserHandler {
	return &UserHandler{
		userUC: params.UserUC,
		logger: params.Logger,
	}
}

// UpdateAvatarRequest represents the request body for replacing the avatar URL
type UpdateAvatarRequest struct {
	AvatarURL string `json:"avatar_url" validate:"required,url"`
}

// Me handles returning the caller's own profile
func (h *UserHandler) Me(c echo.Context) error {
	userID, ok := middleware.GetCallerID(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHENTICATED", "Caller missing from context")
	}

	user, err := h.userUC.Me(c.Request().Context(), userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, user)
}

// UpdateAvatar handles replacing the caller's avatar URL
func (h *UserHandler) UpdateAvatar(c echo.Context) error {
	userID, ok := middleware.GetCallerID(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHENTICATED", "Caller missing from context")
	}

	var req UpdateAvatarRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid avatar input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	user, err := h.userUC.UpdateAvatar(c.Request().Context(), userID, req.AvatarURL)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, user)
}
