package service

import (
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// UploadService stores question attachments on local disk under random
// names. Only the contract the attempt workflow needs: save a file, hand
// back a URL path, remove it when the owning test is deleted.
type UploadService interface {
	Save(file *multipart.FileHeader) (string, error)
	Remove(fileURL string) error
}

type uploadService struct {
	dir       string
	urlPrefix string
}

func NewUploadService(dir string) (UploadService, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("error creating upload directory %s: %w", dir, err)
	}
	return &uploadService{dir: dir, urlPrefix: "/uploads/"}, nil
}

func (s *uploadService) Save(file *multipart.FileHeader) (string, error) {
	src, err := file.Open()
	if err != nil {
		return "", fmt.Errorf("error opening uploaded file: %w", err)
	}
	defer src.Close()

	name := uuid.New().String() + filepath.Ext(file.Filename)
	dst, err := os.Create(filepath.Join(s.dir, name))
	if err != nil {
		return "", fmt.Errorf("error creating file: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return "", fmt.Errorf("error writing file: %w", err)
	}
	log.Info().Str("file", name).Int64("size", file.Size).Msg("Upload stored")
	return s.urlPrefix + name, nil
}

func (s *uploadService) Remove(fileURL string) error {
	name := strings.TrimPrefix(fileURL, s.urlPrefix)
	// Uploaded names are uuid-generated; refuse anything that would escape
	// the upload directory.
	if name == "" || strings.Contains(name, "/") || strings.Contains(name, "..") {
		return fmt.Errorf("invalid upload reference: %s", fileURL)
	}
	if err := os.Remove(filepath.Join(s.dir, name)); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("error removing file %s: %w", name, err)
	}
	return nil
}
