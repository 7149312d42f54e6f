package handler

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/savioruz/reserva/internal/delivery/http/middleware"
	"github.com/savioruz/reserva/internal/delivery/http/response"
	bookingdto "github.com/savioruz/reserva/internal/domains/bookings/dto"
	bookings "github.com/savioruz/reserva/internal/domains/bookings/handler"
	"github.com/savioruz/reserva/internal/domains/payments/dto"
	"github.com/savioruz/reserva/internal/domains/payments/service"
	"github.com/savioruz/reserva/pkg/constant"
	"github.com/savioruz/reserva/pkg/failure"
	"github.com/savioruz/reserva/pkg/logger"
)

type Handler struct {
	service   service.PaymentService
	logger    logger.Interface
	validator *validator.Validate
}

func New(s service.PaymentService, l logger.Interface, v *validator.Validate) *Handler {
	return &Handler{
		service:   s,
		logger:    l,
		validator: v,
	}
}

func (h *Handler) RegisterRoutes(r fiber.Router) {
	public := r.Group("/public/payments")

	public.Post("/", middleware.OptionalJwt(), h.CreateHold)
	public.Get("/:hold/qr", h.QR)
	public.Post("/:hold/confirm", h.Confirm)
	public.Delete("/:hold", h.Abandon)

	payments := r.Group("/payments")

	payments.Post("/callbacks", h.Callbacks)
}

// CreateHold godoc
// @Summary Start a bank transfer
// @Description Prices the draft and holds it until the transfer is confirmed. No booking is stored yet.
// @Tags payments
// @Accept json
// @Produce json
// @Param booking body bookingdto.CreateBookingRequest true "Booking draft"
// @Success 201 {object} response.Data[dto.HoldEnvelope]
// @Failure 400 {object} response.Error
// @Failure 429 {object} response.Error
// @Router /public/payments [post]
func (h *Handler) CreateHold(ctx *fiber.Ctx) error {
	var req bookingdto.CreateBookingRequest
	if err := ctx.BodyParser(&req); err != nil {
		h.logger.Error("http - payments - createHold - body parsing error: " + err.Error())

		return response.WithError(ctx, failure.BadRequest(err))
	}

	if req.PaymentMethod == "" {
		req.PaymentMethod = constant.PaymentMethodBankTransfer
	}

	if err := h.validator.Struct(req); err != nil {
		h.logger.Error("http - payments - createHold - validate error: " + err.Error())

		return response.WithError(ctx, failure.BadRequest(err))
	}

	req.UserID = bookings.Owner(ctx, req.UserID)

	data, err := h.service.CreateHold(ctx.UserContext(), req)
	if err != nil {
		h.logger.Error("http - payments - createHold - request_id: " + middleware.GetRequestID(ctx) + " - " + err.Error())

		return response.WithError(ctx, err)
	}

	return response.WithJSON(ctx, fiber.StatusCreated, data)
}

// QR godoc
// @Summary Transfer QR code
// @Tags payments
// @Produce image/png
// @Param hold path string true "Hold ID"
// @Success 200 {file} file
// @Failure 404 {object} response.Error
// @Router /public/payments/{hold}/qr [get]
func (h *Handler) QR(ctx *fiber.Ctx) error {
	hold, err := h.holdID(ctx)
	if err != nil {
		return response.WithError(ctx, err)
	}

	png, err := h.service.QR(ctx.UserContext(), hold)
	if err != nil {
		h.logger.Error("http - payments - qr - request_id: " + middleware.GetRequestID(ctx) + " - " + err.Error())

		return response.WithError(ctx, err)
	}

	ctx.Set(fiber.HeaderContentType, constant.ContentTypePNG)

	return ctx.Status(fiber.StatusOK).Send(png)
}

// Confirm godoc
// @Summary Confirm a bank transfer
// @Description Submits the held draft. The slots are checked again, so a slot taken meanwhile yields 409.
// @Tags payments
// @Produce json
// @Param hold path string true "Hold ID"
// @Success 201 {object} response.Data[bookingdto.BookingEnvelope]
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Router /public/payments/{hold}/confirm [post]
func (h *Handler) Confirm(ctx *fiber.Ctx) error {
	hold, err := h.holdID(ctx)
	if err != nil {
		return response.WithError(ctx, err)
	}

	data, err := h.service.Confirm(ctx.UserContext(), hold)
	if err != nil {
		h.logger.Error("http - payments - confirm - request_id: " + middleware.GetRequestID(ctx) + " - " + err.Error())

		return response.WithError(ctx, err)
	}

	return response.WithJSON(ctx, fiber.StatusCreated, data)
}

// Abandon godoc
// @Summary Abandon a bank transfer
// @Tags payments
// @Produce json
// @Param hold path string true "Hold ID"
// @Success 200 {object} response.Message
// @Router /public/payments/{hold} [delete]
func (h *Handler) Abandon(ctx *fiber.Ctx) error {
	hold, err := h.holdID(ctx)
	if err != nil {
		return response.WithError(ctx, err)
	}

	if err = h.service.Abandon(ctx.UserContext(), hold); err != nil {
		h.logger.Error("http - payments - abandon - request_id: " + middleware.GetRequestID(ctx) + " - " + err.Error())

		return response.WithError(ctx, err)
	}

	return response.WithMessage(ctx, fiber.StatusOK, "payment hold released")
}

// Callbacks godoc
// @Summary Payment callbacks
// @Description Invoice callbacks from the payment gateway. A paid invoice submits the held draft.
// @Tags payments
// @Accept json
// @Produce json
// @Param callback body dto.PaymentCallbackRequest true "Payment callback request"
// @Param x-callback-token header string true "Callback verification token"
// @Success 200 {object} response.Message
// @Failure 400 {object} response.Error
// @Failure 401 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /payments/callbacks [post]
func (h *Handler) Callbacks(ctx *fiber.Ctx) error {
	var req dto.PaymentCallbackRequest
	if err := ctx.BodyParser(&req); err != nil {
		h.logger.Error("http - payments - callbacks - body parsing error: " + err.Error())

		return response.WithError(ctx, failure.BadRequest(err))
	}

	if err := h.validator.Struct(req); err != nil {
		h.logger.Error("http - payments - callbacks - validate error: " + err.Error())

		return response.WithError(ctx, failure.BadRequest(err))
	}

	if err := h.service.Callbacks(ctx.UserContext(), req, ctx.Get(constant.RequestHeaderCallback)); err != nil {
		h.logger.Error("http - payments - callbacks - request_id: " + middleware.GetRequestID(ctx) + " - " + err.Error())

		return response.WithError(ctx, err)
	}

	return response.WithMessage(ctx, fiber.StatusOK, "payment callback processed successfully")
}

func (h *Handler) holdID(ctx *fiber.Ctx) (string, error) {
	hold := ctx.Params(constant.RequestParamHold)
	if err := h.validator.Var(hold, constant.RequestValidateUUID); err != nil {
		return "", failure.BadRequestFromString("hold must be a valid uuid")
	}

	return hold, nil
}
