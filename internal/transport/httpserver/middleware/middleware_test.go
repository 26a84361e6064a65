package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/kenobicjj/youtubeanalystAPI/internal/transport/httpserver/dto"
)

func TestHealthCheck(t *testing.T) {
	tests := []struct {
		name       string
		ready      func() bool
		path       string
		wantStatus int
	}{
		{"liveness always ok", func() bool { return false }, "/livez", fiber.StatusOK},
		{"ready", func() bool { return true }, "/readyz", fiber.StatusOK},
		{"not ready", func() bool { return false }, "/readyz", fiber.StatusServiceUnavailable},
		{"nil probe is ready", nil, "/readyz", fiber.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := fiber.New()
			app.Use(NewHealthCheck(tt.ready))

			resp, err := app.Test(httptest.NewRequest(http.MethodGet, tt.path, nil))
			require.NoError(t, err)
			assert.Equal(t, tt.wantStatus, resp.StatusCode)
		})
	}
}

func TestRecover(t *testing.T) {
	app := fiber.New()
	app.Use(Recover(zap.NewNop()))
	app.Get("/boom", func(_ *fiber.Ctx) error {
		panic("boom")
	})

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/boom", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusInternalServerError, resp.StatusCode)

	var body dto.ErrorResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "PANIC", body.Code)
	assert.Equal(t, "internal server error", body.Error)
}

func TestLogger_PassesThrough(t *testing.T) {
	app := fiber.New()
	app.Use(Logger(zap.NewNop()))
	app.Post("/analyze", func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusBadRequest).SendString("bad")
	})

	resp, err := app.Test(httptest.NewRequest(http.MethodPost, "/analyze", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestCORS(t *testing.T) {
	app := fiber.New()
	app.Use(CORS(""))
	app.Get("/check_ollama", func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/check_ollama", nil)
	req.Header.Set(fiber.HeaderOrigin, "http://localhost:3000")

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, "*", resp.Header.Get(fiber.HeaderAccessControlAllowOrigin))
}
