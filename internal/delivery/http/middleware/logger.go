package middleware

import (
	"strconv"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/savioruz/reserva/pkg/logger"
)

func buildRequestMessage(ctx *fiber.Ctx, took time.Duration) string {
	var result strings.Builder

	result.WriteString(GetRequestID(ctx))
	result.WriteString(" - ")
	result.WriteString(ctx.IP())
	result.WriteString(" - ")
	result.WriteString(ctx.Method())
	result.WriteString(" ")
	result.WriteString(ctx.OriginalURL())
	result.WriteString(" - ")
	result.WriteString(strconv.Itoa(ctx.Response().StatusCode()))
	result.WriteString(" ")
	result.WriteString(strconv.Itoa(len(ctx.Response().Body())))
	result.WriteString(" - ")
	result.WriteString(strconv.FormatInt(took.Milliseconds(), 10))
	result.WriteString("ms")

	return result.String()
}

// Logger writes one line per request. Server errors are logged as errors and client errors as warnings.
func Logger(l logger.Interface) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		start := time.Now()

		if err := ctx.Next(); err != nil {
			// render the error now so the logged status is the one the client gets
			if herr := ctx.App().ErrorHandler(ctx, err); herr != nil {
				_ = ctx.SendStatus(fiber.StatusInternalServerError)
			}
		}

		msg := buildRequestMessage(ctx, time.Since(start))

		switch status := ctx.Response().StatusCode(); {
		case status >= fiber.StatusInternalServerError:
			l.Error(msg)
		case status >= fiber.StatusBadRequest:
			l.Warn(msg)
		default:
			l.Info(msg)
		}

		return nil
	}
}
