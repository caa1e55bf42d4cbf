package storage

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/brtkwt/BestStoreAPI/domain"
)

// LocalStorage implements domain.FileStorage on the local filesystem
type LocalStorage struct {
	dir string
}

// NewLocalStorage creates a local image store rooted at dir
func NewLocalStorage(dir string) (domain.FileStorage, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create image directory: %w", err)
	}
	return &LocalStorage{dir: dir}, nil
}

// Save implements domain.FileStorage
func (s *LocalStorage) Save(ctx context.Context, name string, data io.Reader) error {
	f, err := os.Create(filepath.Join(s.dir, name))
	if err != nil {
		return fmt.Errorf("failed to create image file: %w", err)
	}
	defer f.Close()

	if _, err := io.Copy(f, data); err != nil {
		return fmt.Errorf("failed to write image file: %w", err)
	}
	return nil
}

// Delete implements domain.FileStorage. A missing file is not an error;
// the record it belonged to is already gone.
func (s *LocalStorage) Delete(ctx context.Context, name string) error {
	err := os.Remove(filepath.Join(s.dir, name))
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to delete image file: %w", err)
	}
	return nil
}
