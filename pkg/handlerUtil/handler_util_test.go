package handlerUtil

import (
	"encoding/json"
	"errors"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"BreathePulse/internal/api/coaching"
	"BreathePulse/pkg/log"
)

func newErrorTestApp(t *testing.T, requestID string, handledErr error) *fiber.App {
	t.Helper()

	t.Setenv("APP_ENV", "test")
	logger := log.NewLogger()
	logger.SetOutput(io.Discard)

	h := New(logger)

	app := fiber.New()
	app.Get("/boom", func(c *fiber.Ctx) error {
		return h.Handle(c, requestID, handledErr, "/boom", "testOperation")
	})

	return app
}

func TestHandleMapsDomainError(t *testing.T) {
	app := newErrorTestApp(t, "req-1", coaching.ErrHabitNotFound)

	resp, err := app.Test(httptest.NewRequest("GET", "/boom", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

func TestHandleUnexpectedErrorReturnsTraceID(t *testing.T) {
	app := newErrorTestApp(t, "req-7", errors.New("connection reset"))

	resp, err := app.Test(httptest.NewRequest("GET", "/boom", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusInternalServerError, resp.StatusCode)

	var body struct {
		Error   string `json:"error"`
		TraceID string `json:"trace_id"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))

	assert.Equal(t, "An unexpected error occurred", body.Error)
	assert.Equal(t, "req-7", body.TraceID)
}
