package handler

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/savioruz/reserva/internal/delivery/http/middleware"
	"github.com/savioruz/reserva/internal/delivery/http/response"
	"github.com/savioruz/reserva/internal/domains/resources/dto"
	"github.com/savioruz/reserva/internal/domains/resources/service"
	"github.com/savioruz/reserva/pkg/constant"
	"github.com/savioruz/reserva/pkg/failure"
	"github.com/savioruz/reserva/pkg/gdto"
	"github.com/savioruz/reserva/pkg/logger"
)

const localKind = "resource_kind"

type Handler struct {
	service   service.ResourceService
	logger    logger.Interface
	validator *validator.Validate
}

func New(s service.ResourceService, l logger.Interface, v *validator.Validate) *Handler {
	return &Handler{
		service:   s,
		logger:    l,
		validator: v,
	}
}

func (h *Handler) RegisterRoutes(r fiber.Router) {
	for path, kind := range map[string]string{
		"/courts": constant.ResourceKindCourt,
		"/tables": constant.ResourceKindTable,
	} {
		g := r.Group(path, withKind(kind))

		g.Get("/", h.List)
		g.Get("/:id", h.Get)
		g.Post("/", middleware.AdminOnly(), h.Create)
		g.Put("/:id", middleware.AdminOnly(), h.Update)
		g.Delete("/:id", middleware.AdminOnly(), h.Delete)
	}

	r.Put("/tables/:id/status", middleware.StaffOnly(), h.UpdateTableStatus)
}

func withKind(kind string) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		ctx.Locals(localKind, kind)

		return ctx.Next()
	}
}

func kindOf(ctx *fiber.Ctx) string {
	kind, _ := ctx.Locals(localKind).(string)

	return kind
}

func (h *Handler) id(ctx *fiber.Ctx) (string, error) {
	id := ctx.Params(constant.RequestParamID)
	if err := h.validator.Var(id, constant.RequestValidateUUID); err != nil {
		return "", failure.BadRequestFromString("id must be a valid uuid")
	}

	return id, nil
}

// List godoc
// @Summary List courts or tables
// @Description Paginated list of courts or tables ordered by name
// @Tags resources
// @Produce json
// @Param pagination query gdto.PaginationRequest false "Pagination request"
// @Success 200 {object} response.Data[gdto.Page[dto.ResourceResponse]]
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /courts [get]
// @Router /tables [get]
func (h *Handler) List(ctx *fiber.Ctx) error {
	var req gdto.PaginationRequest
	if err := ctx.QueryParser(&req); err != nil {
		h.logger.Error("http - resource - list - query parsing error: " + err.Error())

		return response.WithError(ctx, failure.BadRequestFromString(err.Error()))
	}

	if err := h.validator.Struct(req); err != nil {
		h.logger.Error("http - resource - list - validate error: " + err.Error())

		return response.WithError(ctx, failure.BadRequest(err))
	}

	data, err := h.service.List(ctx.UserContext(), kindOf(ctx), req)
	if err != nil {
		h.logger.Error("http - resource - list - request_id: " + middleware.GetRequestID(ctx) + " - " + err.Error())

		return response.WithError(ctx, err)
	}

	return response.WithJSON(ctx, fiber.StatusOK, data)
}

// Get godoc
// @Summary Get court or table
// @Tags resources
// @Produce json
// @Param id path string true "Resource ID"
// @Success 200 {object} response.Data[dto.ResourceResponse]
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Router /courts/{id} [get]
// @Router /tables/{id} [get]
func (h *Handler) Get(ctx *fiber.Ctx) error {
	id, err := h.id(ctx)
	if err != nil {
		return response.WithError(ctx, err)
	}

	data, err := h.service.Get(ctx.UserContext(), kindOf(ctx), id)
	if err != nil {
		h.logger.Error("http - resource - get - request_id: " + middleware.GetRequestID(ctx) + " - " + err.Error())

		return response.WithError(ctx, err)
	}

	return response.WithJSON(ctx, fiber.StatusOK, data)
}

// Create godoc
// @Summary Create court or table
// @Tags resources
// @Accept json
// @Produce json
// @Param resource body dto.ResourceCreateRequest true "Resource create request"
// @Success 201 {object} response.Data[dto.ResourceResponse]
// @Failure 400 {object} response.Error
// @Failure 401 {object} response.Error
// @Failure 403 {object} response.Error
// @Router /courts [post]
// @Router /tables [post]
// @Security BearerAuth
func (h *Handler) Create(ctx *fiber.Ctx) error {
	var req dto.ResourceCreateRequest
	if err := ctx.BodyParser(&req); err != nil {
		h.logger.Error("http - resource - create - body parsing error: " + err.Error())

		return response.WithError(ctx, failure.BadRequest(err))
	}

	if err := h.validator.Struct(req); err != nil {
		h.logger.Error("http - resource - create - validate error: " + err.Error())

		return response.WithError(ctx, failure.BadRequest(err))
	}

	data, err := h.service.Create(ctx.UserContext(), kindOf(ctx), req)
	if err != nil {
		h.logger.Error("http - resource - create - request_id: " + middleware.GetRequestID(ctx) + " - " + err.Error())

		return response.WithError(ctx, err)
	}

	return response.WithJSON(ctx, fiber.StatusCreated, data)
}

// Update godoc
// @Summary Update court or table
// @Description Partial update. Table status is rejected here; use the versioned table status route.
// @Tags resources
// @Accept json
// @Produce json
// @Param id path string true "Resource ID"
// @Param resource body dto.ResourceUpdateRequest true "Resource update request"
// @Success 200 {object} response.Data[dto.ResourceResponse]
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Router /courts/{id} [put]
// @Router /tables/{id} [put]
// @Security BearerAuth
func (h *Handler) Update(ctx *fiber.Ctx) error {
	id, err := h.id(ctx)
	if err != nil {
		return response.WithError(ctx, err)
	}

	var req dto.ResourceUpdateRequest
	if err := ctx.BodyParser(&req); err != nil {
		h.logger.Error("http - resource - update - body parsing error: " + err.Error())

		return response.WithError(ctx, failure.BadRequest(err))
	}

	if err := h.validator.Struct(req); err != nil {
		h.logger.Error("http - resource - update - validate error: " + err.Error())

		return response.WithError(ctx, failure.BadRequest(err))
	}

	data, err := h.service.Update(ctx.UserContext(), kindOf(ctx), id, req)
	if err != nil {
		h.logger.Error("http - resource - update - request_id: " + middleware.GetRequestID(ctx) + " - " + err.Error())

		return response.WithError(ctx, err)
	}

	return response.WithJSON(ctx, fiber.StatusOK, data)
}

// Delete godoc
// @Summary Delete court or table
// @Tags resources
// @Produce json
// @Param id path string true "Resource ID"
// @Success 200 {object} response.Message
// @Failure 404 {object} response.Error
// @Router /courts/{id} [delete]
// @Router /tables/{id} [delete]
// @Security BearerAuth
func (h *Handler) Delete(ctx *fiber.Ctx) error {
	id, err := h.id(ctx)
	if err != nil {
		return response.WithError(ctx, err)
	}

	if err := h.service.Delete(ctx.UserContext(), kindOf(ctx), id); err != nil {
		h.logger.Error("http - resource - delete - request_id: " + middleware.GetRequestID(ctx) + " - " + err.Error())

		return response.WithError(ctx, err)
	}

	return response.WithMessage(ctx, fiber.StatusOK, "deleted")
}

// UpdateTableStatus godoc
// @Summary Update table status
// @Description Change a table's status. The version must match the one last read, otherwise 409 is returned.
// @Tags resources
// @Accept json
// @Produce json
// @Param id path string true "Table ID"
// @Param status body dto.TableStatusRequest true "Table status request"
// @Success 200 {object} response.Data[dto.ResourceResponse]
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Router /tables/{id}/status [put]
// @Security BearerAuth
func (h *Handler) UpdateTableStatus(ctx *fiber.Ctx) error {
	id, err := h.id(ctx)
	if err != nil {
		return response.WithError(ctx, err)
	}

	var req dto.TableStatusRequest
	if err := ctx.BodyParser(&req); err != nil {
		h.logger.Error("http - resource - update table status - body parsing error: " + err.Error())

		return response.WithError(ctx, failure.BadRequest(err))
	}

	if err := h.validator.Struct(req); err != nil {
		h.logger.Error("http - resource - update table status - validate error: " + err.Error())

		return response.WithError(ctx, failure.BadRequest(err))
	}

	data, err := h.service.UpdateTableStatus(ctx.UserContext(), id, req)
	if err != nil {
		h.logger.Error("http - resource - update table status - request_id: " + middleware.GetRequestID(ctx) + " - " + err.Error())

		return response.WithError(ctx, err)
	}

	return response.WithJSON(ctx, fiber.StatusOK, data)
}
