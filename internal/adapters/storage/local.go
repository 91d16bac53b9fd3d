package storage

import (
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path"
	"path/filepath"

	portssvc "github.com/shopward/shopward_backend/internal/core/ports/services"
	"github.com/shopward/shopward_backend/internal/utils"
)

// LocalFileStore stores uploaded files flat under a single directory on the
// local filesystem. The relative paths it hands out ("<dirname>/<file>") are
// what the database rows carry.
type LocalFileStore struct {
	dir string
}

// NewLocalFileStore creates a file store rooted at dir, creating it if needed.
func NewLocalFileStore(dir string) (*LocalFileStore, error) {
	if dir == "" {
		return nil, fmt.Errorf("file store directory cannot be empty")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create file store directory %s: %w", dir, err)
	}
	return &LocalFileStore{dir: dir}, nil
}

var _ portssvc.FileStoreSvc = (*LocalFileStore)(nil)

// Save stores the uploaded file under a collision-free name and returns the
// relative path to record.
func (s *LocalFileStore) Save(ctx context.Context, file *multipart.FileHeader) (string, error) {
	name := utils.UniqueUploadFilename(file.Filename)

	src, err := file.Open()
	if err != nil {
		return "", fmt.Errorf("failed to open uploaded file %s: %w", file.Filename, err)
	}
	defer src.Close()

	dst, err := os.Create(filepath.Join(s.dir, name))
	if err != nil {
		return "", fmt.Errorf("failed to create stored file %s: %w", name, err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return "", fmt.Errorf("failed to write stored file %s: %w", name, err)
	}

	return path.Join(filepath.Base(s.dir), name), nil
}

// Remove unlinks a stored file by the relative path previously returned by Save.
func (s *LocalFileStore) Remove(ctx context.Context, relPath string) error {
	if relPath == "" {
		return fmt.Errorf("relative path cannot be empty")
	}
	name := path.Base(relPath)
	if err := os.Remove(filepath.Join(s.dir, name)); err != nil {
		return fmt.Errorf("failed to remove stored file %s: %w", name, err)
	}
	return nil
}
