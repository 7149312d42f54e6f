package middleware

import (
	"slices"

	"github.com/gofiber/fiber/v2"
	"github.com/savioruz/reserva/internal/delivery/http/response"
	"github.com/savioruz/reserva/internal/domains/auth"
	"github.com/savioruz/reserva/pkg/constant"
	"github.com/savioruz/reserva/pkg/failure"
)

func checkRole(c *fiber.Ctx, allowedRoles []string) error {
	session, ok := auth.FromContext(c)
	if !ok {
		return failure.Unauthorized("role information not found")
	}

	if !slices.Contains(allowedRoles, session.Level) {
		return failure.Forbidden("insufficient permissions")
	}

	return nil
}

// RequireRole verifies the bearer token and then the caller's level.
func RequireRole(allowedRoles ...string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if err := verify(c); err != nil {
			return response.WithError(c, err)
		}

		if err := checkRole(c, allowedRoles); err != nil {
			return response.WithError(c, err)
		}

		return c.Next()
	}
}

func AdminOnly() fiber.Handler {
	return RequireRole(constant.UserRoleAdmin)
}

// StaffOnly admits staff and admins.
func StaffOnly() fiber.Handler {
	return RequireRole(constant.UserRoleStaff, constant.UserRoleAdmin)
}
