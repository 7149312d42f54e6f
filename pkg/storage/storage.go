package storage

import (
	"context"
	"errors"
)

//go:generate go run go.uber.org/mock/mockgen -source=storage.go -destination=mock/storage_mock.go -package=mock github.com/savioruz/reserva/pkg/storage Interface

var (
	ErrInvalidKey         = errors.New("invalid object key")
	ErrFailedToUploadFile = errors.New("failed to upload file")
	ErrFailedToDeleteFile = errors.New("failed to delete file")
)

// Interface stores uploaded objects under a slash separated key such as "dishes/abc.jpg".
type Interface interface {
	Put(ctx context.Context, key, contentType string, body []byte) (url string, err error)
	Delete(ctx context.Context, key string) error
}
