package response

import (
	"github.com/gofiber/fiber/v2"
	"github.com/savioruz/reserva/pkg/failure"
)

type Data[T any] struct {
	Data T `json:"data,omitempty"`
}

type Error struct {
	Error   *string  `json:"error,omitempty"`
	Details []string `json:"details,omitempty"`
}

type Message struct {
	Message string `json:"message"`
}

func WithJSON(ctx *fiber.Ctx, code int, payload interface{}) error {
	err := response(ctx, code, Data[any]{Data: payload})
	if err != nil {
		return err
	}

	return nil
}

func WithMessage(ctx *fiber.Ctx, code int, msg string) error {
	return response(ctx, code, Message{Message: msg})
}

func WithError(ctx *fiber.Ctx, err error) error {
	code := failure.GetCode(err)
	errMsg := err.Error()

	return response(ctx, code, Error{Error: &errMsg, Details: failure.GetDetails(err)})
}

// WithFile writes a binary attachment such as a receipt or an export.
func WithFile(ctx *fiber.Ctx, contentType, filename string, body []byte) error {
	ctx.Set(fiber.HeaderContentType, contentType)
	ctx.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)

	return ctx.Status(fiber.StatusOK).Send(body)
}

func response(ctx *fiber.Ctx, code int, payload interface{}) error {
	if payload == nil {
		return ctx.SendStatus(code)
	}

	ctx.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSONCharsetUTF8)

	if err := ctx.Status(code).JSON(payload); err != nil {
		return err
	}

	return nil
}
