package handler

import (
	"io"
	"log/slog"
	"net/http/httptest"
	"strings"

	"contacthub/internal/delivery/api/validator"
	"contacthub/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

func newTestContext(method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	e.Validator = validator.New()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}

	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), rec
}

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func setCaller(c echo.Context, id uuid.UUID) *entity.User {
	caller := &entity.User{
		ID:        id,
		Username:  "taylor",
		Email:     "taylor@example.com",
		Confirmed: true,
	}
	c.Set("caller", caller)

	return caller
}
