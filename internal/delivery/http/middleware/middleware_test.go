package middleware

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"testing"

	"career-guide/internal/pkg/response"

	"github.com/gofiber/fiber/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newApp() *fiber.App {
	quiet := log.New(io.Discard, "", 0)
	app := fiber.New()
	app.Use(NewAccessLogMiddleware(quiet).Middleware())
	app.Use(NewErrorMiddleware(quiet).Middleware())

	app.Get("/app-error", func(c fiber.Ctx) error {
		return NewAppError(fiber.StatusNotFound, "Student not found", nil, errors.New("missing"))
	})
	app.Get("/app-error-default", func(c fiber.Ctx) error {
		return NewAppError(fiber.StatusBadRequest, "", []string{"text: required"}, nil)
	})
	app.Get("/internal", func(c fiber.Ctx) error {
		return NewAppError(fiber.StatusInternalServerError, "db password leaked", nil, errors.New("secret"))
	})
	app.Get("/plain", func(c fiber.Ctx) error {
		return errors.New("boom")
	})
	app.Get("/panic", func(c fiber.Ctx) error {
		panic("kaboom")
	})
	app.Get("/unavailable", func(c fiber.Ctx) error {
		return fiber.ErrServiceUnavailable
	})
	return app
}

func get(t *testing.T, app *fiber.App, path string, headers map[string]string) (*http.Response, response.SemanticResponse) {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	var body response.SemanticResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	return resp, body
}

func TestErrorMiddleware(t *testing.T) {
	app := newApp()

	tests := []struct {
		path    string
		status  int
		message string
	}{
		{path: "/app-error", status: http.StatusNotFound, message: "Student not found"},
		{path: "/app-error-default", status: http.StatusBadRequest, message: response.MessageBadRequest},
		{path: "/internal", status: http.StatusInternalServerError, message: response.MessageInternalServerError},
		{path: "/plain", status: http.StatusInternalServerError, message: response.MessageInternalServerError},
		{path: "/panic", status: http.StatusInternalServerError, message: response.MessageInternalServerError},
		{path: "/unavailable", status: http.StatusServiceUnavailable, message: response.MessageServiceUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			resp, body := get(t, app, tt.path, nil)
			assert.Equal(t, tt.status, resp.StatusCode)
			assert.Equal(t, tt.status, body.Status)
			assert.Equal(t, tt.message, body.Message)
		})
	}
}

func TestErrorMiddleware_KeepsClientData(t *testing.T) {
	_, body := get(t, newApp(), "/app-error-default", nil)
	assert.Equal(t, []interface{}{"text: required"}, body.Data)
}

func TestAccessLog_RequestID(t *testing.T) {
	app := newApp()

	resp, _ := get(t, app, "/app-error", nil)
	assert.Len(t, resp.Header.Get(HeaderRequestID), 36)

	resp, _ = get(t, app, "/app-error", map[string]string{HeaderRequestID: "rid-123"})
	assert.Equal(t, "rid-123", resp.Header.Get(HeaderRequestID))
}

func TestAppError_Unwrap(t *testing.T) {
	cause := errors.New("cause")
	err := NewAppError(fiber.StatusBadRequest, "bad", nil, cause)
	assert.ErrorIs(t, err, cause)
	assert.Equal(t, "bad: cause", err.Error())

	var nilErr *AppError
	assert.Empty(t, nilErr.Error())
	assert.Nil(t, nilErr.Unwrap())
}

func TestAccessLog_SkipPathsAndFailureRID(t *testing.T) {
	var buf bytes.Buffer
	logger := log.New(&buf, "", 0)

	app := fiber.New()
	app.Use(NewAccessLogMiddleware(logger, "/health").Middleware())
	app.Use(NewErrorMiddleware(logger).Middleware())
	app.Get("/health", func(c fiber.Ctx) error { return c.SendStatus(fiber.StatusOK) })
	app.Get("/plain", func(c fiber.Ctx) error { return errors.New("boom") })

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/health", nil))
	require.NoError(t, err)
	assert.NotEmpty(t, resp.Header.Get(HeaderRequestID))
	assert.Empty(t, buf.String())

	req := httptest.NewRequest(http.MethodGet, "/plain", nil)
	req.Header.Set(HeaderRequestID, "rid-9")
	_, err = app.Test(req)
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "request failed | rid=rid-9")
	assert.Contains(t, buf.String(), "HTTP access | rid=rid-9")
}
