package handler

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/savioruz/reserva/internal/delivery/http/middleware"
	"github.com/savioruz/reserva/internal/delivery/http/response"
	"github.com/savioruz/reserva/internal/domains/auth"
	"github.com/savioruz/reserva/internal/domains/user/service"
	"github.com/savioruz/reserva/pkg/failure"
	"github.com/savioruz/reserva/pkg/logger"
)

type Handler struct {
	service   service.UserService
	logger    logger.Interface
	validator *validator.Validate
}

func New(s service.UserService, l logger.Interface, v *validator.Validate) *Handler {
	return &Handler{
		service:   s,
		logger:    l,
		validator: v,
	}
}

func (h *Handler) RegisterRoutes(r fiber.Router) {
	users := r.Group("/users")

	users.Get("/profile", middleware.Jwt(), h.Profile)
}

// Profile godoc
// @Summary Get user profile
// @Description Get the profile of the authenticated user
// @Tags users
// @Accept json
// @Produce json
// @Success 200 {object} response.Data[dto.UserProfileResponse]
// @Failure 401 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /users/profile [get]
// @Security BearerAuth
func (h *Handler) Profile(ctx *fiber.Ctx) error {
	session, ok := auth.FromContext(ctx)
	if !ok {
		h.logger.Error("http - user - profile - session is missing")

		return response.WithError(ctx, failure.Unauthorized("unauthorized"))
	}

	data, err := h.service.Profile(ctx.UserContext(), session.UserID)
	if err != nil {
		h.logger.Error("http - user - profile - request_id: " + middleware.GetRequestID(ctx) + " - " + err.Error())

		return response.WithError(ctx, err)
	}

	return response.WithJSON(ctx, fiber.StatusOK, data)
}
