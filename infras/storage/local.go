package storage

import (
	"context"
	"errors"
	"fmt"
	"hospitality/config"
	"hospitality/infras/otel"
	"hospitality/shared/constant"
	"io"
	"mime/multipart"
	"os"
	"path"
	"path/filepath"

	"github.com/rs/zerolog/log"
)

const (
	defaultLocalDir = "uploads"
	localDirPerm    = 0o755
)

type localImpl struct {
	dir       string
	publicURL string
	otel      otel.Otel
}

func newLocalStorage(cfg *config.Config, otl otel.Otel) Storage {
	dir := cfg.Storage.LocalDir
	if dir == "" {
		dir = defaultLocalDir
	}

	if err := os.MkdirAll(dir, localDirPerm); err != nil {
		log.Fatal().Err(err).Str("dir", dir).Msg("Failed to create uploads directory")
	}

	log.Info().Str("dir", dir).Msg("Local storage initialized")

	return &localImpl{
		dir:       dir,
		publicURL: cfg.Storage.PublicURL,
		otel:      otl,
	}
}

func (s *localImpl) Save(ctx context.Context, file multipart.File, fileHeader *multipart.FileHeader) (fileName string, err error) {
	_, scope := s.otel.NewScope(ctx, constant.OtelStorageScopeName, constant.OtelStorageScopeName+".Save")
	defer scope.End()
	defer scope.TraceIfError(err)

	fileName = GenerateFileName(fileHeader.Filename)
	scope.SetAttribute("file_name", fileName)

	dst, err := os.Create(filepath.Join(s.dir, fileName))
	if err != nil {
		return constant.Empty, fmt.Errorf("failed to create file: %w", err)
	}
	defer dst.Close()

	if _, err = io.Copy(dst, file); err != nil {
		return constant.Empty, fmt.Errorf("failed to write file: %w", err)
	}

	return fileName, nil
}

func (s *localImpl) SaveBytes(ctx context.Context, fileName, _ string, data []byte) (url string, err error) {
	_, scope := s.otel.NewScope(ctx, constant.OtelStorageScopeName, constant.OtelStorageScopeName+".SaveBytes")
	defer scope.End()
	defer scope.TraceIfError(err)

	scope.SetAttribute("file_name", fileName)

	if err = os.WriteFile(filepath.Join(s.dir, fileName), data, 0o644); err != nil {
		return constant.Empty, fmt.Errorf("failed to write file: %w", err)
	}

	return s.URL(fileName), nil
}

func (s *localImpl) Delete(ctx context.Context, fileName string) (err error) {
	_, scope := s.otel.NewScope(ctx, constant.OtelStorageScopeName, constant.OtelStorageScopeName+".Delete")
	defer scope.End()
	defer scope.TraceIfError(err)

	scope.SetAttribute("file_name", fileName)

	err = os.Remove(filepath.Join(s.dir, filepath.Base(fileName)))
	if errors.Is(err, os.ErrNotExist) {
		// a missing file is already deleted
		return nil
	}

	if err != nil {
		return fmt.Errorf("failed to delete file: %w", err)
	}

	return nil
}

func (s *localImpl) URL(fileName string) string {
	return s.publicURL + path.Join("/", defaultLocalDir, fileName)
}

// Dir exposes the uploads directory so the HTTP transport can serve it.
func (s *localImpl) Dir() string {
	return s.dir
}
