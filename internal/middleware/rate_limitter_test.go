package middleware

import (
	"io"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRateLimitTestApp(burst int) *fiber.App {
	logger := logrus.New()
	logger.SetOutput(io.Discard)

	m := &middleware{
		rateLimitter: newRateLimiter(0, burst),
		log:          logger,
	}

	app := fiber.New()
	app.Get("/limited", m.NewRateLimiter, func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})

	return app
}

func TestRateLimiterRejectsWhenBurstExhausted(t *testing.T) {
	app := newRateLimitTestApp(1)

	resp, err := app.Test(httptest.NewRequest("GET", "/limited", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	resp, err = app.Test(httptest.NewRequest("GET", "/limited", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusTooManyRequests, resp.StatusCode)

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), ErrTooManyRequests.Error())
}

func TestRateLimiterAllowsWithinBurst(t *testing.T) {
	app := newRateLimitTestApp(3)

	for i := 0; i < 3; i++ {
		resp, err := app.Test(httptest.NewRequest("GET", "/limited", nil))
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	}
}
