package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"aventra/internal/config"
)

var (
	ErrObjectNotFound = errors.New("object not found")
	ErrInvalidName    = errors.New("invalid object name")
)

type ObjectInfo struct {
	Size        int64
	ContentType string
}

// Storage keeps uploaded files under flat object names.
type Storage interface {
	Save(ctx context.Context, name string, r io.Reader, size int64, contentType string) error
	Open(ctx context.Context, name string) (io.ReadCloser, ObjectInfo, error)
	Delete(ctx context.Context, name string) error
}

// New builds the backend selected by cfg.Storage.Backend.
func New(ctx context.Context, cfg *config.Config) (Storage, error) {
	switch cfg.Storage.Backend {
	case "", "local":
		return NewLocalStorage(cfg.Storage.UploadDir)
	case "minio":
		return NewMinIOClient(ctx, cfg.Storage.MinIO)
	default:
		return nil, fmt.Errorf("unknown storage backend %q", cfg.Storage.Backend)
	}
}

// ValidateName rejects names that could escape the upload namespace.
func ValidateName(name string) error {
	if name == "" || name == "." || name == ".." ||
		strings.ContainsAny(name, `/\`) || strings.Contains(name, "..") ||
		strings.ContainsRune(name, 0) {
		return fmt.Errorf("%q: %w", name, ErrInvalidName)
	}
	return nil
}
