package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/savioruz/reserva/internal/domains/auth"
	"github.com/savioruz/reserva/pkg/constant"
	"github.com/savioruz/reserva/pkg/jwt"
	log "github.com/savioruz/reserva/pkg/logger/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestRateLimiter_Allow(t *testing.T) {
	rl := NewRateLimiter(1, 2)
	now := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)
	rl.now = func() time.Time { return now }
	rl.lastSweep = now

	assert.True(t, rl.Allow("1.1.1.1"))
	assert.True(t, rl.Allow("1.1.1.1"))
	assert.False(t, rl.Allow("1.1.1.1"), "burst exhausted")
	assert.True(t, rl.Allow("2.2.2.2"), "buckets are per ip")

	now = now.Add(time.Second)
	assert.True(t, rl.Allow("1.1.1.1"), "one token refilled")

	now = now.Add(visitorTTL + time.Second)
	rl.Allow("3.3.3.3")
	assert.Equal(t, 1, rl.size(), "stale visitors swept")
}

func TestRateLimit_Returns429(t *testing.T) {
	app := fiber.New()
	app.Use(RateLimit(NewRateLimiter(0.001, 1)))
	app.Get("/", func(c *fiber.Ctx) error { return c.SendStatus(fiber.StatusOK) })

	res, err := app.Test(httptest.NewRequest(http.MethodGet, "/", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, res.StatusCode)

	res, err = app.Test(httptest.NewRequest(http.MethodGet, "/", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusTooManyRequests, res.StatusCode)
}

func TestRequireRole(t *testing.T) {
	j := jwt.Initialize("reserva", "test-secret", time.Hour, time.Hour)

	app := fiber.New()
	app.Get("/staff", StaffOnly(), func(c *fiber.Ctx) error {
		s, ok := auth.FromContext(c)
		if !ok {
			return c.SendStatus(fiber.StatusInternalServerError)
		}

		return c.SendString(s.UserID)
	})

	call := func(token string) int {
		req := httptest.NewRequest(http.MethodGet, "/staff", nil)
		if token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}

		res, err := app.Test(req)
		require.NoError(t, err)

		return res.StatusCode
	}

	t.Run("error: missing token", func(t *testing.T) {
		assert.Equal(t, http.StatusUnauthorized, call(""))
	})

	t.Run("error: customer token", func(t *testing.T) {
		token, err := j.GenerateAccessToken("u-1", "guest@example.com", constant.UserRoleUser)
		require.NoError(t, err)
		assert.Equal(t, http.StatusForbidden, call(token))
	})

	t.Run("error: refresh token is not an access token", func(t *testing.T) {
		token, err := j.GenerateRefreshToken("u-2", "staff@example.com", constant.UserRoleStaff)
		require.NoError(t, err)
		assert.Equal(t, http.StatusUnauthorized, call(token))
	})

	t.Run("success: staff token", func(t *testing.T) {
		token, err := j.GenerateAccessToken("u-2", "staff@example.com", constant.UserRoleStaff)
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, call(token))
	})

	t.Run("success: admin token", func(t *testing.T) {
		token, err := j.GenerateAccessToken("u-3", "admin@example.com", constant.UserRoleAdmin)
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, call(token))
	})
}

func TestLogger_LevelByStatus(t *testing.T) {
	ctrl := gomock.NewController(t)
	l := log.NewMockInterface(ctrl)

	app := fiber.New()
	app.Use(RequestID(), Logger(l))
	app.Get("/ok", func(c *fiber.Ctx) error { return c.SendStatus(fiber.StatusOK) })
	app.Get("/bad", func(c *fiber.Ctx) error { return c.SendStatus(fiber.StatusBadRequest) })
	app.Get("/boom", func(c *fiber.Ctx) error { return c.SendStatus(fiber.StatusInternalServerError) })

	send := func(path string) {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		req.Header.Set(RequestIDHeader, "req-42")

		_, err := app.Test(req)
		require.NoError(t, err)
	}

	l.EXPECT().Info(gomock.Cond(func(x any) bool {
		return strings.HasPrefix(x.(string), "req-42 - ") && strings.Contains(x.(string), "GET /ok - 200")
	}))
	send("/ok")

	l.EXPECT().Warn(gomock.Cond(func(x any) bool { return strings.Contains(x.(string), " - 400 ") }))
	send("/bad")

	l.EXPECT().Error(gomock.Cond(func(x any) bool { return strings.Contains(x.(string), " - 500 ") }))
	send("/boom")
}

func TestRecovery(t *testing.T) {
	ctrl := gomock.NewController(t)
	l := log.NewMockInterface(ctrl)
	l.EXPECT().Error(gomock.Cond(func(x any) bool { return strings.Contains(x.(string), "PANIC DETECTED: kaboom") }))

	app := fiber.New()
	app.Use(RequestID(), Recovery(l))
	app.Get("/", func(c *fiber.Ctx) error { panic("kaboom") })

	res, err := app.Test(httptest.NewRequest(http.MethodGet, "/", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusInternalServerError, res.StatusCode)
}
