package handler

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/savioruz/reserva/internal/delivery/http/middleware"
	"github.com/savioruz/reserva/internal/delivery/http/response"
	"github.com/savioruz/reserva/internal/domains/addons/dto"
	"github.com/savioruz/reserva/internal/domains/addons/service"
	"github.com/savioruz/reserva/pkg/constant"
	"github.com/savioruz/reserva/pkg/failure"
	"github.com/savioruz/reserva/pkg/logger"
)

type Handler struct {
	service   service.AddonService
	logger    logger.Interface
	validator *validator.Validate
}

func New(s service.AddonService, l logger.Interface, v *validator.Validate) *Handler {
	return &Handler{
		service:   s,
		logger:    l,
		validator: v,
	}
}

func (h *Handler) RegisterRoutes(r fiber.Router) {
	services := r.Group("/services")

	services.Get("/", h.List)
	services.Post("/", middleware.AdminOnly(), h.Create)
	services.Put("/:id", middleware.AdminOnly(), h.Update)
	services.Delete("/:id", middleware.AdminOnly(), h.Delete)
}

// List godoc
// @Summary List active add-on services
// @Tags services
// @Produce json
// @Success 200 {object} response.Data[[]dto.AddonResponse]
// @Router /services [get]
func (h *Handler) List(ctx *fiber.Ctx) error {
	data, err := h.service.List(ctx.UserContext())
	if err != nil {
		h.logger.Error("http - addon - list - request_id: " + middleware.GetRequestID(ctx) + " - " + err.Error())

		return response.WithError(ctx, err)
	}

	return response.WithJSON(ctx, fiber.StatusOK, data)
}

// Create godoc
// @Summary Create add-on service
// @Tags services
// @Accept json
// @Produce json
// @Param service body dto.AddonRequest true "Service request"
// @Success 201 {object} response.Data[dto.AddonResponse]
// @Failure 400 {object} response.Error
// @Router /services [post]
// @Security BearerAuth
func (h *Handler) Create(ctx *fiber.Ctx) error {
	var req dto.AddonRequest
	if err := ctx.BodyParser(&req); err != nil {
		h.logger.Error("http - addon - create - body parsing error: " + err.Error())

		return response.WithError(ctx, failure.BadRequest(err))
	}

	if err := h.validator.Struct(req); err != nil {
		h.logger.Error("http - addon - create - validate error: " + err.Error())

		return response.WithError(ctx, failure.BadRequest(err))
	}

	data, err := h.service.Create(ctx.UserContext(), req)
	if err != nil {
		h.logger.Error("http - addon - create - request_id: " + middleware.GetRequestID(ctx) + " - " + err.Error())

		return response.WithError(ctx, err)
	}

	return response.WithJSON(ctx, fiber.StatusCreated, data)
}

// Update godoc
// @Summary Update add-on service
// @Tags services
// @Accept json
// @Produce json
// @Param id path string true "Service ID"
// @Param service body dto.AddonRequest true "Service request"
// @Success 200 {object} response.Data[dto.AddonResponse]
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Router /services/{id} [put]
// @Security BearerAuth
func (h *Handler) Update(ctx *fiber.Ctx) error {
	id := ctx.Params(constant.RequestParamID)
	if err := h.validator.Var(id, constant.RequestValidateUUID); err != nil {
		return response.WithError(ctx, failure.BadRequestFromString("id must be a valid uuid"))
	}

	var req dto.AddonRequest
	if err := ctx.BodyParser(&req); err != nil {
		h.logger.Error("http - addon - update - body parsing error: " + err.Error())

		return response.WithError(ctx, failure.BadRequest(err))
	}

	if err := h.validator.Struct(req); err != nil {
		h.logger.Error("http - addon - update - validate error: " + err.Error())

		return response.WithError(ctx, failure.BadRequest(err))
	}

	data, err := h.service.Update(ctx.UserContext(), id, req)
	if err != nil {
		h.logger.Error("http - addon - update - request_id: " + middleware.GetRequestID(ctx) + " - " + err.Error())

		return response.WithError(ctx, err)
	}

	return response.WithJSON(ctx, fiber.StatusOK, data)
}

// Delete godoc
// @Summary Deactivate add-on service
// @Tags services
// @Produce json
// @Param id path string true "Service ID"
// @Success 200 {object} response.Message
// @Failure 404 {object} response.Error
// @Router /services/{id} [delete]
// @Security BearerAuth
func (h *Handler) Delete(ctx *fiber.Ctx) error {
	id := ctx.Params(constant.RequestParamID)
	if err := h.validator.Var(id, constant.RequestValidateUUID); err != nil {
		return response.WithError(ctx, failure.BadRequestFromString("id must be a valid uuid"))
	}

	if err := h.service.Delete(ctx.UserContext(), id); err != nil {
		h.logger.Error("http - addon - delete - request_id: " + middleware.GetRequestID(ctx) + " - " + err.Error())

		return response.WithError(ctx, err)
	}

	return response.WithMessage(ctx, fiber.StatusOK, "deleted")
}
