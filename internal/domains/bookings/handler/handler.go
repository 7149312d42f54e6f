package handler

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/savioruz/reserva/internal/delivery/http/middleware"
	"github.com/savioruz/reserva/internal/delivery/http/response"
	"github.com/savioruz/reserva/internal/domains/auth"
	"github.com/savioruz/reserva/internal/domains/bookings/dto"
	"github.com/savioruz/reserva/internal/domains/bookings/service"
	"github.com/savioruz/reserva/pkg/constant"
	"github.com/savioruz/reserva/pkg/failure"
	"github.com/savioruz/reserva/pkg/gdto"
	"github.com/savioruz/reserva/pkg/logger"
)

type Handler struct {
	service   service.BookingService
	logger    logger.Interface
	validator *validator.Validate
}

func New(s service.BookingService, l logger.Interface, v *validator.Validate) *Handler {
	return &Handler{
		service:   s,
		logger:    l,
		validator: v,
	}
}

func (h *Handler) RegisterRoutes(r fiber.Router) {
	public := r.Group("/public/bookings")

	public.Post("/", middleware.OptionalJwt(), h.Create)
	public.Get("/:token", h.Lookup)
	public.Put("/:token/cancel", h.Cancel)
	public.Get("/:token/receipt", h.Receipt)

	bookings := r.Group("/bookings")

	bookings.Get("/", middleware.StaffOnly(), h.List)
	bookings.Get("/mine", middleware.Jwt(), h.Mine)
	bookings.Get("/export", middleware.StaffOnly(), h.Export)
	bookings.Put("/:id", middleware.StaffOnly(), h.UpdateStatus)
}

// Create godoc
// @Summary Submit a booking
// @Description Re-prices the draft, checks every slot and stores a pending booking. Signed in callers may omit the contact snapshot.
// @Tags bookings
// @Accept json
// @Produce json
// @Param booking body dto.CreateBookingRequest true "Booking draft"
// @Success 201 {object} response.Data[dto.BookingEnvelope]
// @Failure 400 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 429 {object} response.Error
// @Router /public/bookings [post]
func (h *Handler) Create(ctx *fiber.Ctx) error {
	var req dto.CreateBookingRequest
	if err := ctx.BodyParser(&req); err != nil {
		h.logger.Error("http - booking - create - body parsing error: " + err.Error())

		return response.WithError(ctx, failure.BadRequest(err))
	}

	if err := h.validator.Struct(req); err != nil {
		h.logger.Error("http - booking - create - validate error: " + err.Error())

		return response.WithError(ctx, failure.BadRequest(err))
	}

	req.UserID = Owner(ctx, req.UserID)

	data, err := h.service.Create(ctx.UserContext(), req)
	if err != nil {
		h.logger.Error("http - booking - create - request_id: " + middleware.GetRequestID(ctx) + " - " + err.Error())

		return response.WithError(ctx, err)
	}

	return response.WithJSON(ctx, fiber.StatusCreated, data)
}

// Owner decides whose booking a draft becomes. Staff may book on behalf of another account,
// everyone else books for themselves, and anonymous callers always book as guests.
func Owner(ctx *fiber.Ctx, requested string) string {
	session, ok := auth.FromContext(ctx)
	if !ok {
		return ""
	}

	if requested != "" && session.IsStaff() {
		return requested
	}

	return session.UserID
}

// Lookup godoc
// @Summary Look up a booking by token
// @Tags bookings
// @Produce json
// @Param token path string true "Booking token (ma_pd)"
// @Success 200 {object} response.Data[dto.BookingResponse]
// @Failure 404 {object} response.Error
// @Router /public/bookings/{token} [get]
func (h *Handler) Lookup(ctx *fiber.Ctx) error {
	data, err := h.service.Lookup(ctx.UserContext(), ctx.Params(constant.RequestParamToken))
	if err != nil {
		h.logger.Error("http - booking - lookup - request_id: " + middleware.GetRequestID(ctx) + " - " + err.Error())

		return response.WithError(ctx, err)
	}

	return response.WithJSON(ctx, fiber.StatusOK, data)
}

// Cancel godoc
// @Summary Cancel a pending booking by token
// @Tags bookings
// @Accept json
// @Produce json
// @Param token path string true "Booking token (ma_pd)"
// @Param request body dto.CancelRequest false "Cancel reason"
// @Success 200 {object} response.Data[dto.BookingResponse]
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Router /public/bookings/{token}/cancel [put]
func (h *Handler) Cancel(ctx *fiber.Ctx) error {
	var req dto.CancelRequest
	if len(ctx.Body()) > 0 {
		if err := ctx.BodyParser(&req); err != nil {
			h.logger.Error("http - booking - cancel - body parsing error: " + err.Error())

			return response.WithError(ctx, failure.BadRequest(err))
		}
	}

	if err := h.validator.Struct(req); err != nil {
		h.logger.Error("http - booking - cancel - validate error: " + err.Error())

		return response.WithError(ctx, failure.BadRequest(err))
	}

	data, err := h.service.Cancel(ctx.UserContext(), ctx.Params(constant.RequestParamToken), req)
	if err != nil {
		h.logger.Error("http - booking - cancel - request_id: " + middleware.GetRequestID(ctx) + " - " + err.Error())

		return response.WithError(ctx, err)
	}

	return response.WithJSON(ctx, fiber.StatusOK, data)
}

// Receipt godoc
// @Summary Download a booking receipt
// @Tags bookings
// @Produce application/pdf
// @Param token path string true "Booking token (ma_pd)"
// @Success 200 {file} file
// @Failure 404 {object} response.Error
// @Router /public/bookings/{token}/receipt [get]
func (h *Handler) Receipt(ctx *fiber.Ctx) error {
	token := ctx.Params(constant.RequestParamToken)

	pdf, err := h.service.Receipt(ctx.UserContext(), token)
	if err != nil {
		h.logger.Error("http - booking - receipt - request_id: " + middleware.GetRequestID(ctx) + " - " + err.Error())

		return response.WithError(ctx, err)
	}

	return response.WithFile(ctx, constant.ContentTypePDF, "receipt-"+token+".pdf", pdf)
}

// List godoc
// @Summary List bookings
// @Description Staff listing with optional status, kind, date range and free text filters
// @Tags bookings
// @Produce json
// @Param request query dto.ListBookingsRequest false "Filters"
// @Success 200 {object} response.Data[gdto.Page[dto.BookingResponse]]
// @Failure 400 {object} response.Error
// @Failure 401 {object} response.Error
// @Failure 403 {object} response.Error
// @Security ApiKeyAuth
// @Router /bookings [get]
func (h *Handler) List(ctx *fiber.Ctx) error {
	var req dto.ListBookingsRequest
	if err := ctx.QueryParser(&req); err != nil {
		h.logger.Error("http - booking - list - query parsing error: " + err.Error())

		return response.WithError(ctx, failure.BadRequest(err))
	}

	if err := h.validator.Struct(req); err != nil {
		h.logger.Error("http - booking - list - validate error: " + err.Error())

		return response.WithError(ctx, failure.BadRequest(err))
	}

	data, err := h.service.List(ctx.UserContext(), req)
	if err != nil {
		h.logger.Error("http - booking - list - request_id: " + middleware.GetRequestID(ctx) + " - " + err.Error())

		return response.WithError(ctx, err)
	}

	return response.WithJSON(ctx, fiber.StatusOK, data)
}

// Mine godoc
// @Summary List my bookings
// @Tags bookings
// @Produce json
// @Param pagination query gdto.PaginationRequest false "Pagination request"
// @Success 200 {object} response.Data[gdto.Page[dto.BookingResponse]]
// @Failure 401 {object} response.Error
// @Security ApiKeyAuth
// @Router /bookings/mine [get]
func (h *Handler) Mine(ctx *fiber.Ctx) error {
	session, ok := auth.FromContext(ctx)
	if !ok {
		return response.WithError(ctx, failure.Unauthorized("unauthorized"))
	}

	var req gdto.PaginationRequest
	if err := ctx.QueryParser(&req); err != nil {
		h.logger.Error("http - booking - mine - query parsing error: " + err.Error())

		return response.WithError(ctx, failure.BadRequest(err))
	}

	if err := h.validator.Struct(req); err != nil {
		h.logger.Error("http - booking - mine - validate error: " + err.Error())

		return response.WithError(ctx, failure.BadRequest(err))
	}

	data, err := h.service.Mine(ctx.UserContext(), session.UserID, req)
	if err != nil {
		h.logger.Error("http - booking - mine - request_id: " + middleware.GetRequestID(ctx) + " - " + err.Error())

		return response.WithError(ctx, err)
	}

	return response.WithJSON(ctx, fiber.StatusOK, data)
}

// UpdateStatus godoc
// @Summary Change booking status
// @Description Applies the lifecycle of the booking's kind. Canceling frees the slots.
// @Tags bookings
// @Accept json
// @Produce json
// @Param id path string true "Booking ID"
// @Param request body dto.UpdateStatusRequest true "New status"
// @Success 200 {object} response.Data[dto.BookingResponse]
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Security ApiKeyAuth
// @Router /bookings/{id} [put]
func (h *Handler) UpdateStatus(ctx *fiber.Ctx) error {
	id := ctx.Params(constant.RequestParamID)
	if err := h.validator.Var(id, constant.RequestValidateUUID); err != nil {
		return response.WithError(ctx, failure.BadRequestFromString("id must be a valid uuid"))
	}

	var req dto.UpdateStatusRequest
	if err := ctx.BodyParser(&req); err != nil {
		h.logger.Error("http - booking - updateStatus - body parsing error: " + err.Error())

		return response.WithError(ctx, failure.BadRequest(err))
	}

	if err := h.validator.Struct(req); err != nil {
		h.logger.Error("http - booking - updateStatus - validate error: " + err.Error())

		return response.WithError(ctx, failure.BadRequest(err))
	}

	data, err := h.service.UpdateStatus(ctx.UserContext(), id, req)
	if err != nil {
		h.logger.Error("http - booking - updateStatus - request_id: " + middleware.GetRequestID(ctx) + " - " + err.Error())

		return response.WithError(ctx, err)
	}

	return response.WithJSON(ctx, fiber.StatusOK, data)
}

// Export godoc
// @Summary Export bookings
// @Tags bookings
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param request query dto.ExportRequest true "Date range"
// @Success 200 {file} file
// @Failure 400 {object} response.Error
// @Security ApiKeyAuth
// @Router /bookings/export [get]
func (h *Handler) Export(ctx *fiber.Ctx) error {
	var req dto.ExportRequest
	if err := ctx.QueryParser(&req); err != nil {
		h.logger.Error("http - booking - export - query parsing error: " + err.Error())

		return response.WithError(ctx, failure.BadRequest(err))
	}

	if err := h.validator.Struct(req); err != nil {
		h.logger.Error("http - booking - export - validate error: " + err.Error())

		return response.WithError(ctx, failure.BadRequest(err))
	}

	xlsx, err := h.service.Export(ctx.UserContext(), req)
	if err != nil {
		h.logger.Error("http - booking - export - request_id: " + middleware.GetRequestID(ctx) + " - " + err.Error())

		return response.WithError(ctx, err)
	}

	return response.WithFile(ctx, constant.ContentTypeXLSX, "bookings-"+req.DateFrom+"-"+req.DateTo+".xlsx", xlsx)
}
