package service

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"io"
	"mime/multipart"
	"net/http"
	"path"

	"github.com/disintegration/imaging"
	"github.com/google/uuid"
	"github.com/savioruz/reserva/config"
	"github.com/savioruz/reserva/internal/domains/uploads/dto"
	"github.com/savioruz/reserva/pkg/constant"
	"github.com/savioruz/reserva/pkg/failure"
	"github.com/savioruz/reserva/pkg/helper"
	"github.com/savioruz/reserva/pkg/logger"
	"github.com/savioruz/reserva/pkg/storage"

	_ "golang.org/x/image/webp"
)

type UploadService interface {
	// Upload stores one image under its entity type and writes a thumbnail next to it.
	Upload(ctx context.Context, kind string, files []*multipart.FileHeader) (res dto.UploadResponse, err error)
}

const (
	identifier = "service - uploads - %s"

	bytesPerMB = 1 << 20
	sniffLen   = 512

	msgBadType  = "type must be one of dishes, buffet, courts"
	msgOneFile  = "chỉ được tải lên 1 tệp"
	msgNotImage = "chỉ chấp nhận tệp hình ảnh"
	msgTooLarge = "kích thước tệp vượt quá %dMB"
)

var extensions = map[string]string{
	constant.ContentTypeJPEG: ".jpg",
	constant.ContentTypePNG:  ".png",
	constant.ContentTypeGIF:  ".gif",
	constant.ContentTypeWEBP: ".webp",
}

type uploadService struct {
	storage storage.Interface
	cfg     *config.Config
	logger  logger.Interface
}

// TooLargeError is the 400 returned for an image above maxSize bytes.
func TooLargeError(maxSize int64) error {
	return failure.BadRequestFromString(fmt.Sprintf(msgTooLarge, maxSize/bytesPerMB))
}

func New(st storage.Interface, cfg *config.Config, l logger.Interface) UploadService {
	return &uploadService{
		storage: st,
		cfg:     cfg,
		logger:  l,
	}
}

func (s *uploadService) Upload(ctx context.Context, kind string, files []*multipart.FileHeader) (res dto.UploadResponse, err error) {
	if !helper.IsValidUploadType(kind) {
		return res, failure.BadRequestFromString(msgBadType)
	}

	if len(files) != 1 {
		return res, failure.BadRequestFromString(msgOneFile)
	}

	file := files[0]
	if file.Size > s.cfg.Upload.MaxSize {
		return res, TooLargeError(s.cfg.Upload.MaxSize)
	}

	body, err := read(file, s.cfg.Upload.MaxSize)
	if err != nil {
		s.logger.Error(identifier, "upload - failed to read file: "+err.Error())

		return res, failure.InternalError(err)
	}

	if int64(len(body)) > s.cfg.Upload.MaxSize {
		return res, TooLargeError(s.cfg.Upload.MaxSize)
	}

	contentType := http.DetectContentType(body[:min(len(body), sniffLen)])

	if !helper.IsValidImageType(contentType) {
		return res, failure.BadRequestFromString(msgNotImage)
	}

	img, err := imaging.Decode(bytes.NewReader(body), imaging.AutoOrientation(true))
	if err != nil {
		return res, failure.BadRequestFromString(msgNotImage)
	}

	thumb, thumbType, err := thumbnail(img, contentType)
	if err != nil {
		s.logger.Error(identifier, "upload - failed to encode thumbnail: "+err.Error())

		return res, failure.InternalError(err)
	}

	name := uuid.NewString() + extensions[contentType]
	key := path.Join(kind, name)
	thumbKey := path.Join(kind, constant.UploadThumbDir, name)

	res.Path, err = s.storage.Put(ctx, key, contentType, body)
	if err != nil {
		s.logger.Error(identifier, "upload - failed to store image: "+err.Error())

		return res, failure.InternalError(err)
	}

	res.Thumbnail, err = s.storage.Put(ctx, thumbKey, thumbType, thumb)
	if err != nil {
		s.logger.Error(identifier, "upload - failed to store thumbnail: "+err.Error())

		if delErr := s.storage.Delete(context.WithoutCancel(ctx), key); delErr != nil {
			s.logger.Error(identifier, "upload - failed to clean up image: "+delErr.Error())
		}

		return dto.UploadResponse{}, failure.InternalError(err)
	}

	return res, nil
}

func read(file *multipart.FileHeader, limit int64) ([]byte, error) {
	f, err := file.Open()
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return io.ReadAll(io.LimitReader(f, limit+1))
}

// thumbnail scales img down to the thumbnail width. WebP has no encoder, so its thumbnail is a JPEG.
func thumbnail(img image.Image, contentType string) ([]byte, string, error) {
	if img.Bounds().Dx() > constant.UploadThumbWidth {
		img = imaging.Resize(img, constant.UploadThumbWidth, 0, imaging.Lanczos)
	}

	format, thumbType := imaging.JPEG, constant.ContentTypeJPEG

	switch contentType {
	case constant.ContentTypePNG:
		format, thumbType = imaging.PNG, contentType
	case constant.ContentTypeGIF:
		format, thumbType = imaging.GIF, contentType
	}

	var buf bytes.Buffer
	if err := imaging.Encode(&buf, img, format); err != nil {
		return nil, "", err
	}

	return buf.Bytes(), thumbType, nil
}
