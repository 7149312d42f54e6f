package http

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/savioruz/reserva/config"
	"github.com/savioruz/reserva/internal/delivery/http/response"
	uploadService "github.com/savioruz/reserva/internal/domains/uploads/service"
	"github.com/savioruz/reserva/pkg/failure"
)

// uploadBodyFactor leaves room above UPLOAD_MAX_SIZE so the upload service itself rejects most oversized images.
const uploadBodyFactor = 4

// BodyLimit is the request body cap for the server, in bytes.
func BodyLimit(cfg *config.Config) int {
	return int(cfg.Upload.MaxSize) * uploadBodyFactor
}

// ErrorHandler writes every error fiber surfaces in the {error} envelope.
// Bodies over BodyLimit on the upload route get the same 400 the upload service returns.
func ErrorHandler(cfg *config.Config) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		var fe *fiber.Error
		if !errors.As(err, &fe) {
			return response.WithError(c, err)
		}

		if fe.Code == fiber.StatusRequestEntityTooLarge && strings.HasPrefix(c.Path(), "/v1/uploads/") {
			return response.WithError(c, uploadService.TooLargeError(cfg.Upload.MaxSize))
		}

		return response.WithError(c, &failure.Failure{Code: fe.Code, Message: fe.Message})
	}
}
