package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/savioruz/reserva/internal/delivery/http/middleware"
	"github.com/savioruz/reserva/internal/delivery/http/response"
	"github.com/savioruz/reserva/internal/domains/uploads/service"
	"github.com/savioruz/reserva/pkg/constant"
	"github.com/savioruz/reserva/pkg/failure"
	"github.com/savioruz/reserva/pkg/logger"
)

type Handler struct {
	service service.UploadService
	logger  logger.Interface
}

func New(s service.UploadService, l logger.Interface) *Handler {
	return &Handler{
		service: s,
		logger:  l,
	}
}

func (h *Handler) RegisterRoutes(r fiber.Router) {
	uploads := r.Group("/uploads")

	uploads.Post("/:type", middleware.AdminOnly(), h.Upload)
}

// Upload godoc
// @Summary Upload an image
// @Description Stores a single image (at most 5MB) for dishes, buffet or courts and writes a 300px thumbnail.
// @Tags uploads
// @Accept multipart/form-data
// @Produce json
// @Param type path string true "Entity type" Enums(dishes, buffet, courts)
// @Param image formData file true "Image file"
// @Success 201 {object} response.Data[dto.UploadResponse]
// @Failure 400 {object} response.Error
// @Failure 401 {object} response.Error
// @Failure 403 {object} response.Error
// @Security ApiKeyAuth
// @Router /uploads/{type} [post]
func (h *Handler) Upload(ctx *fiber.Ctx) error {
	kind := ctx.Params(constant.RequestParamType)

	form, err := ctx.MultipartForm()
	if err != nil {
		h.logger.Error("http - uploads - upload - multipart parsing error: " + err.Error())

		return response.WithError(ctx, failure.BadRequest(err))
	}

	data, err := h.service.Upload(ctx.UserContext(), kind, form.File[constant.UploadFormField])
	if err != nil {
		h.logger.Error("http - uploads - upload - request_id: " + middleware.GetRequestID(ctx) + " - " + err.Error())

		return response.WithError(ctx, err)
	}

	return response.WithJSON(ctx, fiber.StatusCreated, data)
}
