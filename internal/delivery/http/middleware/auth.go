package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/savioruz/reserva/internal/delivery/http/response"
	"github.com/savioruz/reserva/internal/domains/auth"
	"github.com/savioruz/reserva/pkg/failure"
	"github.com/savioruz/reserva/pkg/jwt"
)

const bearerParts = 2

func bearerToken(c *fiber.Ctx) (string, error) {
	authHeader := c.Get(fiber.HeaderAuthorization)
	if authHeader == "" {
		return "", failure.Unauthorized("missing authorization header")
	}

	parts := strings.Split(authHeader, " ")
	if len(parts) != bearerParts || parts[0] != "Bearer" {
		return "", failure.Unauthorized("invalid authorization header format")
	}

	return parts[1], nil
}

func verify(c *fiber.Ctx) error {
	token, err := bearerToken(c)
	if err != nil {
		return err
	}

	j, err := jwt.GetInstance()
	if err != nil {
		return failure.InternalError(err)
	}

	claims, err := j.ValidateToken(token, jwt.TokenTypeAccess)
	if err != nil {
		return failure.Unauthorized("invalid token")
	}

	auth.WithSession(c, auth.Session{
		UserID: claims.ID,
		Email:  claims.Email,
		Level:  claims.Level,
	})

	return nil
}

// Jwt requires a valid bearer access token and stores the caller session.
func Jwt() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if err := verify(c); err != nil {
			return response.WithError(c, err)
		}

		return c.Next()
	}
}

// OptionalJwt attaches a session when a valid token is sent and lets anonymous guests through.
func OptionalJwt() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if c.Get(fiber.HeaderAuthorization) != "" {
			if err := verify(c); err != nil {
				return response.WithError(c, err)
			}
		}

		return c.Next()
	}
}
