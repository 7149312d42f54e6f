package http

import (
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/savioruz/reserva/config"
	addonHandler "github.com/savioruz/reserva/internal/domains/addons/handler"
	authHandler "github.com/savioruz/reserva/internal/domains/auth/handler"
	availabilityHandler "github.com/savioruz/reserva/internal/domains/availability/handler"
	bookingHandler "github.com/savioruz/reserva/internal/domains/bookings/handler"
	paymentHandler "github.com/savioruz/reserva/internal/domains/payments/handler"
	resourceHandler "github.com/savioruz/reserva/internal/domains/resources/handler"
	shiftHandler "github.com/savioruz/reserva/internal/domains/shifts/handler"
	uploadHandler "github.com/savioruz/reserva/internal/domains/uploads/handler"
	uploadService "github.com/savioruz/reserva/internal/domains/uploads/service"
	userHandler "github.com/savioruz/reserva/internal/domains/user/handler"
	"github.com/savioruz/reserva/pkg/logger"
	log "github.com/savioruz/reserva/pkg/logger/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestApp(t *testing.T, cfg *config.Config) *fiber.App {
	t.Helper()

	ctrl := gomock.NewController(t)
	l := log.NewMockInterface(ctrl)
	l.EXPECT().Info(gomock.Any(), gomock.Any()).AnyTimes()
	l.EXPECT().Warn(gomock.Any(), gomock.Any()).AnyTimes()
	l.EXPECT().Error(gomock.Any(), gomock.Any()).AnyTimes()

	app := fiber.New()
	NewRouter(app, cfg, l, testHandlers(l, nil))

	return app
}

func testHandlers(l logger.Interface, uploads uploadService.UploadService) Handlers {
	v := validator.New()

	return Handlers{
		Auth:         authHandler.New(nil, l, v),
		User:         userHandler.New(nil, l, v),
		Availability: availabilityHandler.New(nil, l, v),
		Resource:     resourceHandler.New(nil, l, v),
		Shift:        shiftHandler.New(nil, l, v),
		Addon:        addonHandler.New(nil, l, v),
		Booking:      bookingHandler.New(nil, l, v),
		Payment:      paymentHandler.New(nil, l, v),
		Upload:       uploadHandler.New(uploads, l),
	}
}

func testConfig(dir string) *config.Config {
	cfg := &config.Config{}
	cfg.Metrics.Enabled = true
	cfg.Upload.Driver = "disk"
	cfg.Upload.Dir = dir

	return cfg
}

func TestRouter_Infrastructure(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "courts"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "courts", "a.png"), []byte("png"), 0o600))

	app := newTestApp(t, testConfig(dir))

	t.Run("success: healthz carries a request id", func(t *testing.T) {
		res, err := app.Test(httptest.NewRequest(http.MethodGet, "/healthz", nil))
		require.NoError(t, err)

		body, _ := io.ReadAll(res.Body)
		assert.Equal(t, http.StatusOK, res.StatusCode)
		assert.JSONEq(t, `{"status":"ok"}`, string(body))
		assert.NotEmpty(t, res.Header.Get("X-Request-ID"))
	})

	t.Run("success: incoming request id is echoed", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
		req.Header.Set("X-Request-ID", "req-1")

		res, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, "req-1", res.Header.Get("X-Request-ID"))
	})

	t.Run("success: metrics exposed", func(t *testing.T) {
		res, err := app.Test(httptest.NewRequest(http.MethodGet, "/metrics", nil))
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, res.StatusCode)
	})

	t.Run("success: uploaded images served from disk", func(t *testing.T) {
		res, err := app.Test(httptest.NewRequest(http.MethodGet, "/images/courts/a.png", nil))
		require.NoError(t, err)

		body, _ := io.ReadAll(res.Body)
		assert.Equal(t, http.StatusOK, res.StatusCode)
		assert.Equal(t, "png", string(body))
	})

	t.Run("error: unknown route", func(t *testing.T) {
		res, err := app.Test(httptest.NewRequest(http.MethodGet, "/nope", nil))
		require.NoError(t, err)

		body, _ := io.ReadAll(res.Body)
		assert.Equal(t, http.StatusNotFound, res.StatusCode)
		assert.JSONEq(t, `{"error":"route not found"}`, string(body))
	})

	t.Run("error: staff routes need a token", func(t *testing.T) {
		res, err := app.Test(httptest.NewRequest(http.MethodGet, "/v1/bookings", nil))
		require.NoError(t, err)
		assert.Equal(t, http.StatusUnauthorized, res.StatusCode)
	})
}

func TestRouter_RateLimit(t *testing.T) {
	cfg := testConfig(t.TempDir())
	cfg.Metrics.Enabled = false
	cfg.RateLimit.Enabled = true
	cfg.RateLimit.RPS = 0.001
	cfg.RateLimit.Burst = 1

	app := newTestApp(t, cfg)

	res, err := app.Test(httptest.NewRequest(http.MethodGet, "/v1/bookings", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, res.StatusCode)

	res, err = app.Test(httptest.NewRequest(http.MethodGet, "/v1/bookings", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusTooManyRequests, res.StatusCode)
	assert.Equal(t, "1", res.Header.Get("Retry-After"))

	res, err = app.Test(httptest.NewRequest(http.MethodGet, "/healthz", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, res.StatusCode, "health checks are not limited")
}
