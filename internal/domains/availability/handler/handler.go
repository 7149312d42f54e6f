package handler

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/savioruz/reserva/internal/delivery/http/middleware"
	"github.com/savioruz/reserva/internal/delivery/http/response"
	"github.com/savioruz/reserva/internal/domains/auth"
	"github.com/savioruz/reserva/internal/domains/availability/dto"
	"github.com/savioruz/reserva/internal/domains/availability/service"
	"github.com/savioruz/reserva/pkg/failure"
	"github.com/savioruz/reserva/pkg/logger"
)

type Handler struct {
	service   service.AvailabilityService
	logger    logger.Interface
	validator *validator.Validate
}

func New(s service.AvailabilityService, l logger.Interface, v *validator.Validate) *Handler {
	return &Handler{
		service:   s,
		logger:    l,
		validator: v,
	}
}

func (h *Handler) RegisterRoutes(r fiber.Router) {
	availability := r.Group("/public/availability")

	availability.Get("/", middleware.OptionalJwt(), h.Query)
	availability.Post("/calculate-price", h.CalculatePrice)
}

// Query godoc
// @Summary Check availability
// @Description Per resource availability for a date and time window. Conflicts carry a reason; booking tokens are shown to staff only.
// @Tags availability
// @Produce json
// @Param request query dto.AvailabilityRequest true "Availability request"
// @Success 200 {object} response.Data[dto.AvailabilityResponse]
// @Failure 400 {object} response.Error
// @Failure 429 {object} response.Error
// @Router /public/availability [get]
func (h *Handler) Query(ctx *fiber.Ctx) error {
	var req dto.AvailabilityRequest
	if err := ctx.QueryParser(&req); err != nil {
		h.logger.Error("http - availability - query - query parsing error: " + err.Error())

		return response.WithError(ctx, failure.BadRequest(err))
	}

	if err := h.validator.Struct(req); err != nil {
		h.logger.Error("http - availability - query - validate error: " + err.Error())

		return response.WithError(ctx, failure.BadRequest(err))
	}

	session, _ := auth.FromContext(ctx)

	data, err := h.service.Query(ctx.UserContext(), req, session.IsStaff())
	if err != nil {
		h.logger.Error("http - availability - query - request_id: " + middleware.GetRequestID(ctx) + " - " + err.Error())

		return response.WithError(ctx, err)
	}

	return response.WithJSON(ctx, fiber.StatusOK, data)
}

// CalculatePrice godoc
// @Summary Calculate price
// @Description Validate and price a selection of slots and services without booking it
// @Tags availability
// @Accept json
// @Produce json
// @Param request body dto.PriceRequest true "Price request"
// @Success 200 {object} response.Data[dto.PriceResponse]
// @Failure 400 {object} response.Error
// @Router /public/availability/calculate-price [post]
func (h *Handler) CalculatePrice(ctx *fiber.Ctx) error {
	var req dto.PriceRequest
	if err := ctx.BodyParser(&req); err != nil {
		h.logger.Error("http - availability - calculate price - body parsing error: " + err.Error())

		return response.WithError(ctx, failure.BadRequest(err))
	}

	if err := h.validator.Struct(req); err != nil {
		h.logger.Error("http - availability - calculate price - validate error: " + err.Error())

		return response.WithError(ctx, failure.BadRequest(err))
	}

	data, err := h.service.CalculatePrice(ctx.UserContext(), req)
	if err != nil {
		h.logger.Error("http - availability - calculate price - request_id: " + middleware.GetRequestID(ctx) + " - " + err.Error())

		return response.WithError(ctx, err)
	}

	return response.WithJSON(ctx, fiber.StatusOK, data)
}
