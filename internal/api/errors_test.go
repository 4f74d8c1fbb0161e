package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/unity-forge/backend/internal/models"
)

func TestFromError(t *testing.T) {
	tests := []struct {
		err    error
		status int
		code   string
	}{
		{fmt.Errorf("scale: %w", models.ErrInvalidInput), http.StatusBadRequest, "BAD_REQUEST"},
		{fmt.Errorf("scene: %w", models.ErrNotFound), http.StatusNotFound, "NOT_FOUND"},
		{fmt.Errorf("unity: %w", models.ErrExternalTool), http.StatusBadGateway, "EXTERNAL_TOOL_ERROR"},
		{fmt.Errorf("create scene: %w", context.Canceled), http.StatusServiceUnavailable, "SERVICE_UNAVAILABLE"},
		{errors.New("disk full"), http.StatusInternalServerError, "INTERNAL_ERROR"},
		{NewValidationError("path"), http.StatusBadRequest, "VALIDATION_ERROR"},
	}
	for _, tt := range tests {
		apiErr := FromError(tt.err)
		assert.Equal(t, tt.status, apiErr.Status, tt.err.Error())
		assert.Equal(t, tt.code, apiErr.Code, tt.err.Error())
	}

	notFound := FromError(fmt.Errorf("scene file not found: /p/Main.unity: %w", models.ErrNotFound))
	assert.Equal(t, "scene file not found: /p/Main.unity: not found", notFound.Message)
}

func TestErrorHandler_HidesInternalDetails(t *testing.T) {
	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)

	ErrorHandler(errors.New("secret path /etc/x"), c)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.NotContains(t, rec.Body.String(), "secret")
}

func TestErrorHandler_HTTPError(t *testing.T) {
	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)

	ErrorHandler(echo.NewHTTPError(http.StatusRequestEntityTooLarge, "too big"), c)

	assert.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
	assert.Contains(t, rec.Body.String(), `"code":"HTTP_ERROR"`)
}
