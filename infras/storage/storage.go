package storage

//go:generate go run go.uber.org/mock/mockgen -source=./storage.go -destination=./mocks/storage_mock.go -package=mocks

import (
	"context"
	"hospitality/config"
	"hospitality/infras/otel"
	"hospitality/shared/constant"
	"hospitality/shared/timezone"
	"mime/multipart"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"fmt"
)

// Storage persists uploaded files and serves back public URLs for them.
// The active driver is selected by configuration: local disk for single
// host deployments, S3-compatible object storage otherwise.
type Storage interface {
	Save(ctx context.Context, file multipart.File, fileHeader *multipart.FileHeader) (fileName string, err error)
	SaveBytes(ctx context.Context, fileName, contentType string, data []byte) (url string, err error)
	Delete(ctx context.Context, fileName string) error
	URL(fileName string) string
}

func New(cfg *config.Config, otel otel.Otel) Storage {
	switch cfg.Storage.Driver {
	case constant.StorageDriverS3:
		return newS3Storage(cfg, otel)
	case constant.StorageDriverLocal, constant.Empty:
		return newLocalStorage(cfg, otel)
	default:
		log.Warn().Str("driver", cfg.Storage.Driver).Msg("Unknown storage driver, falling back to local disk")

		return newLocalStorage(cfg, otel)
	}
}

// GenerateFileName builds a collision-free stored name, keeping the
// original extension.
func GenerateFileName(originalName string) string {
	ext := filepath.Ext(originalName)

	return fmt.Sprintf("%d-%s%s", timezone.Now().UnixMilli(), uuid.NewString(), ext)
}
