// Package auth carries the authenticated caller through a request.
package auth

import (
	"github.com/gofiber/fiber/v2"
	"github.com/savioruz/reserva/pkg/constant"
)

// Session is the caller identity taken from a verified access token.
type Session struct {
	UserID string
	Email  string
	Level  string
}

func (s Session) IsAdmin() bool {
	return s.Level == constant.UserRoleAdmin
}

func (s Session) IsStaff() bool {
	return s.Level == constant.UserRoleStaff || s.IsAdmin()
}

func WithSession(c *fiber.Ctx, s Session) {
	c.Locals(constant.JwtFieldSession, s)
}

// FromContext returns the session stored by the auth middleware, if any.
func FromContext(c *fiber.Ctx) (Session, bool) {
	s, ok := c.Locals(constant.JwtFieldSession).(Session)
	if !ok || s.UserID == "" {
		return Session{}, false
	}

	return s, true
}
