package handler

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/savioruz/reserva/internal/delivery/http/middleware"
	"github.com/savioruz/reserva/internal/delivery/http/response"
	"github.com/savioruz/reserva/internal/domains/shifts/dto"
	"github.com/savioruz/reserva/internal/domains/shifts/service"
	"github.com/savioruz/reserva/pkg/constant"
	"github.com/savioruz/reserva/pkg/failure"
	"github.com/savioruz/reserva/pkg/logger"
)

type Handler struct {
	service   service.ShiftService
	logger    logger.Interface
	validator *validator.Validate
}

func New(s service.ShiftService, l logger.Interface, v *validator.Validate) *Handler {
	return &Handler{
		service:   s,
		logger:    l,
		validator: v,
	}
}

func (h *Handler) RegisterRoutes(r fiber.Router) {
	r.Get("/resources/:id/shifts", h.ListByResource)
	r.Post("/resources/:id/shifts", middleware.AdminOnly(), h.Create)

	shifts := r.Group("/shifts")
	shifts.Put("/:id", middleware.AdminOnly(), h.Update)
	shifts.Delete("/:id", middleware.AdminOnly(), h.Delete)
}

func (h *Handler) id(ctx *fiber.Ctx) (string, error) {
	id := ctx.Params(constant.RequestParamID)
	if err := h.validator.Var(id, constant.RequestValidateUUID); err != nil {
		return "", failure.BadRequestFromString("id must be a valid uuid")
	}

	return id, nil
}

func (h *Handler) body(ctx *fiber.Ctx, op string) (req dto.ShiftRequest, err error) {
	if err = ctx.BodyParser(&req); err != nil {
		h.logger.Error("http - shift - " + op + " - body parsing error: " + err.Error())

		return req, failure.BadRequest(err)
	}

	if err = h.validator.Struct(req); err != nil {
		h.logger.Error("http - shift - " + op + " - validate error: " + err.Error())

		return req, failure.BadRequest(err)
	}

	return req, nil
}

// ListByResource godoc
// @Summary List shifts of a resource
// @Tags shifts
// @Produce json
// @Param id path string true "Resource ID"
// @Success 200 {object} response.Data[[]dto.ShiftResponse]
// @Failure 404 {object} response.Error
// @Router /resources/{id}/shifts [get]
func (h *Handler) ListByResource(ctx *fiber.Ctx) error {
	id, err := h.id(ctx)
	if err != nil {
		return response.WithError(ctx, err)
	}

	data, err := h.service.ListByResource(ctx.UserContext(), id)
	if err != nil {
		h.logger.Error("http - shift - list - request_id: " + middleware.GetRequestID(ctx) + " - " + err.Error())

		return response.WithError(ctx, err)
	}

	return response.WithJSON(ctx, fiber.StatusOK, data)
}

// Create godoc
// @Summary Create shift
// @Description Add a priced time frame to a resource. Shifts of one resource must not overlap.
// @Tags shifts
// @Accept json
// @Produce json
// @Param id path string true "Resource ID"
// @Param shift body dto.ShiftRequest true "Shift request"
// @Success 201 {object} response.Data[dto.ShiftResponse]
// @Failure 400 {object} response.Error
// @Failure 409 {object} response.Error
// @Router /resources/{id}/shifts [post]
// @Security BearerAuth
func (h *Handler) Create(ctx *fiber.Ctx) error {
	id, err := h.id(ctx)
	if err != nil {
		return response.WithError(ctx, err)
	}

	req, err := h.body(ctx, "create")
	if err != nil {
		return response.WithError(ctx, err)
	}

	data, err := h.service.Create(ctx.UserContext(), id, req)
	if err != nil {
		h.logger.Error("http - shift - create - request_id: " + middleware.GetRequestID(ctx) + " - " + err.Error())

		return response.WithError(ctx, err)
	}

	return response.WithJSON(ctx, fiber.StatusCreated, data)
}

// Update godoc
// @Summary Update shift
// @Tags shifts
// @Accept json
// @Produce json
// @Param id path string true "Shift ID"
// @Param shift body dto.ShiftRequest true "Shift request"
// @Success 200 {object} response.Data[dto.ShiftResponse]
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Router /shifts/{id} [put]
// @Security BearerAuth
func (h *Handler) Update(ctx *fiber.Ctx) error {
	id, err := h.id(ctx)
	if err != nil {
		return response.WithError(ctx, err)
	}

	req, err := h.body(ctx, "update")
	if err != nil {
		return response.WithError(ctx, err)
	}

	data, err := h.service.Update(ctx.UserContext(), id, req)
	if err != nil {
		h.logger.Error("http - shift - update - request_id: " + middleware.GetRequestID(ctx) + " - " + err.Error())

		return response.WithError(ctx, err)
	}

	return response.WithJSON(ctx, fiber.StatusOK, data)
}

// Delete godoc
// @Summary Delete shift
// @Tags shifts
// @Produce json
// @Param id path string true "Shift ID"
// @Success 200 {object} response.Message
// @Failure 404 {object} response.Error
// @Router /shifts/{id} [delete]
// @Security BearerAuth
func (h *Handler) Delete(ctx *fiber.Ctx) error {
	id, err := h.id(ctx)
	if err != nil {
		return response.WithError(ctx, err)
	}

	if err := h.service.Delete(ctx.UserContext(), id); err != nil {
		h.logger.Error("http - shift - delete - request_id: " + middleware.GetRequestID(ctx) + " - " + err.Error())

		return response.WithError(ctx, err)
	}

	return response.WithMessage(ctx, fiber.StatusOK, "deleted")
}
