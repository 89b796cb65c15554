package middleware

import (
	"io"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	jwtPkg "BreathePulse/pkg/jwt"
)

func newAuthTestApp(t *testing.T) *fiber.App {
	t.Helper()

	logger := logrus.New()
	logger.SetOutput(io.Discard)

	m := New(logger)

	app := fiber.New()
	app.Get("/protected", m.NewTokenMiddleware, func(c *fiber.Ctx) error {
		user, err := jwtPkg.GetUserLoginData(c)
		if err != nil {
			return err
		}
		return c.JSON(user)
	})

	return app
}

func TestTokenMiddlewareValidToken(t *testing.T) {
	t.Setenv("JWT_ACCESS_TOKEN_SECRET", "test-secret")
	app := newAuthTestApp(t)

	token, _, err := jwtPkg.Sign(map[string]interface{}{
		"id":       "user-1",
		"email":    "dana@example.com",
		"username": "dana",
	}, time.Hour)
	require.NoError(t, err)

	req := httptest.NewRequest("GET", "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), "user-1")
	assert.Contains(t, string(body), "dana@example.com")
}

func TestTokenMiddlewareRejectsBadRequests(t *testing.T) {
	t.Setenv("JWT_ACCESS_TOKEN_SECRET", "test-secret")
	app := newAuthTestApp(t)

	tests := []struct {
		name   string
		header string
	}{
		{name: "missing header", header: ""},
		{name: "not a bearer token", header: "Basic dXNlcjpwYXNz"},
		{name: "garbage token", header: "Bearer not-a-jwt"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest("GET", "/protected", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}

			resp, err := app.Test(req)
			require.NoError(t, err)
			assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
		})
	}
}

func TestTokenMiddlewareRejectsExpiredToken(t *testing.T) {
	t.Setenv("JWT_ACCESS_TOKEN_SECRET", "test-secret")
	app := newAuthTestApp(t)

	token, _, err := jwtPkg.Sign(map[string]interface{}{
		"id":       "user-1",
		"email":    "dana@example.com",
		"username": "dana",
	}, -time.Hour)
	require.NoError(t, err)

	req := httptest.NewRequest("GET", "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

// A validly signed token may still carry claims of the wrong type; the
// middleware must reject it instead of panicking.
func TestTokenMiddlewareRejectsNonStringClaims(t *testing.T) {
	t.Setenv("JWT_ACCESS_TOKEN_SECRET", "test-secret")
	app := newAuthTestApp(t)

	token, _, err := jwtPkg.Sign(map[string]interface{}{
		"id":       42,
		"email":    "dana@example.com",
		"username": "dana",
	}, time.Hour)
	require.NoError(t, err)

	req := httptest.NewRequest("GET", "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}
