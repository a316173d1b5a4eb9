package handler

import (
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"contacthub/internal/delivery/api/middleware"
	"contacthub/internal/delivery/api/response"
	"contacthub/internal/domain/repository"
	"contacthub/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

const (
	birthdayLayout = "2006-01-02"

	defaultListLimit  = 50
	maxListLimit      = 200
	defaultWindowDays = 7
)

// ContactHandlerParams holds dependencies for ContactHandler, injected by Fx.
type ContactHandlerParams struct {
	fx.In

	ContactUC usecase.ContactUsecase
	Logger    *slog.Logger
}

// ContactHandler holds dependencies for contact-book handlers
type ContactHandler struct {
	contactUC usecase.ContactUsecase
	logger    *slog.Logger
}

// NewContactHandler is the constructor for ContactHandler
func NewContactHandler(params ContactHandlerParams) *ContactHandler {
	return &ContactHandler{
		contactUC: params.ContactUC,
		logger:    params.Logger,
	}
}

// ContactRequest represents the request body for creating or replacing a contact
type ContactRequest struct {
	FirstName string `json:"first_name" validate:"required,max=64"`
	LastName  string `json:"last_name" validate:"max=64"`
	Email     string `json:"email" validate:"omitempty,email"`
	Phone     string `json:"phone" validate:"max=32"`
	Birthday  string `json:"birthday" validate:"omitempty,datetime=2006-01-02"`
	Notes     string `json:"notes" validate:"max=1024"`
}

func (r *ContactRequest) toInput() (*usecase.ContactInput, error) {
	var birthday time.Time
	if r.Birthday != "" {
		parsed, err := time.Parse(birthdayLayout, r.Birthday)
		if err != nil {
			return nil, err
		}
		birthday = parsed
	}

	return &usecase.ContactInput{
		FirstName: r.FirstName,
		LastName:  r.LastName,
		Email:     r.Email,
		Phone:     r.Phone,
		Birthday:  birthday,
		Notes:     r.Notes,
	}, nil
}

// CreateContact handles creating a contact for the caller
func (h *ContactHandler) CreateContact(c echo.Context) error {
	userID, ok := middleware.GetCallerID(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHENTICATED", "Caller missing from context")
	}

	var req ContactRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid contact input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	input, err := req.toInput()
	if err != nil {
		return response.BadRequest(c, "INVALID_BIRTHDAY", "Birthday must use the YYYY-MM-DD format")
	}

	contact, err := h.contactUC.CreateContact(c.Request().Context(), userID, input)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, contact)
}

// GetContact handles retrieving a single contact
func (h *ContactHandler) GetContact(c echo.Context) error {
	userID, ok := middleware.GetCallerID(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHENTICATED", "Caller missing from context")
	}

	contactID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid contact ID")
	}

	contact, err := h.contactUC.GetContact(c.Request().Context(), userID, contactID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, contact)
}

// ListContacts handles listing the caller's contacts with offset/limit paging
func (h *ContactHandler) ListContacts(c echo.Context) error {
	userID, ok := middleware.GetCallerID(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHENTICATED", "Caller missing from context")
	}

	offset := queryInt(c, "offset", 0)
	if offset < 0 {
		offset = 0
	}

	limit := queryInt(c, "limit", defaultListLimit)
	if limit <= 0 || limit > maxListLimit {
		limit = defaultListLimit
	}

	contacts, err := h.contactUC.ListContacts(c.Request().Context(), userID, offset, limit)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, contacts)
}

// SearchContacts handles searching contacts by name or email prefix
func (h *ContactHandler) SearchContacts(c echo.Context) error {
	userID, ok := middleware.GetCallerID(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHENTICATED", "Caller missing from context")
	}

	filter := repository.ContactSearch{
		FirstName: c.QueryParam("first_name"),
		LastName:  c.QueryParam("last_name"),
		Email:     c.QueryParam("email"),
	}

	contacts, err := h.contactUC.SearchContacts(c.Request().Context(), userID, filter)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, contacts)
}

// UpcomingBirthdays handles the birthday window query
func (h *ContactHandler) UpcomingBirthdays(c echo.Context) error {
	userID, ok := middleware.GetCallerID(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHENTICATED", "Caller missing from context")
	}

	days := queryInt(c, "days", defaultWindowDays)
	if days < 0 {
		return response.BadRequest(c, "INVALID_WINDOW", "days must not be negative")
	}

	includeToday := c.QueryParam("include_today") != "false"

	contacts, err := h.contactUC.UpcomingBirthdays(c.Request().Context(), userID, days, includeToday)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, contacts)
}

// UpdateContact handles replacing an existing contact
func (h *ContactHandler) UpdateContact(c echo.Context) error {
	userID, ok := middleware.GetCallerID(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHENTICATED", "Caller missing from context")
	}

	contactID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid contact ID")
	}

	var req ContactRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid contact input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	input, err := req.toInput()
	if err != nil {
		return response.BadRequest(c, "INVALID_BIRTHDAY", "Birthday must use the YYYY-MM-DD format")
	}

	contact, err := h.contactUC.UpdateContact(c.Request().Context(), userID, contactID, input)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, contact)
}

// DeleteContact handles removing a contact
func (h *ContactHandler) DeleteContact(c echo.Context) error {
	userID, ok := middleware.GetCallerID(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHENTICATED", "Caller missing from context")
	}

	contactID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid contact ID")
	}

	if err := h.contactUC.DeleteContact(c.Request().Context(), userID, contactID); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Contact deleted"})
}

// queryInt parses an integer query parameter, falling back on absence or garbage.
func queryInt(c echo.Context, name string, fallback int) int {
	raw := c.QueryParam(name)
	if raw == "" {
		return fallback
	}

	value, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}

	return value
}
