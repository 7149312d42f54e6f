package httpserver

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	t.Run("success: defaults", func(t *testing.T) {
		s := New()

		assert.Equal(t, _defaultAddr, s.address)
		assert.Equal(t, fiber.DefaultBodyLimit, s.App.Config().BodyLimit)
	})

	t.Run("success: options shape the built app", func(t *testing.T) {
		s := New(Port("8080"), ReadTimeout(time.Second), BodyLimit(6<<20))

		assert.Equal(t, ":8080", s.address)
		assert.Equal(t, time.Second, s.App.Config().ReadTimeout)
		assert.Equal(t, 6<<20, s.App.Config().BodyLimit)
	})

	t.Run("success: error handler installed", func(t *testing.T) {
		s := New(ErrorHandler(func(c *fiber.Ctx, err error) error {
			return c.Status(fiber.StatusTeapot).SendString(err.Error())
		}))

		s.App.Get("/", func(c *fiber.Ctx) error { return fiber.ErrBadGateway })

		res, err := s.App.Test(httptest.NewRequest(http.MethodGet, "/", nil))
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusTeapot, res.StatusCode)
	})

	t.Run("success: provided app is kept", func(t *testing.T) {
		app := fiber.New()

		s := New(App(app), BodyLimit(1))

		assert.Same(t, app, s.App)
	})
}
