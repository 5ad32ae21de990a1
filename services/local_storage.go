package services

import (
	"context"
	"errors"
	"fmt"
	"mime/multipart"
	"os"
	"path/filepath"

	"github.com/suranga-printers/print-shop-api/utils"
)

// LocalStorage keeps uploads on the server's disk and serves them under /uploads
type LocalStorage struct {
	dir string
}

// NewLocalStorage creates a storage rooted at dir
func NewLocalStorage(dir string) *LocalStorage {
	return &LocalStorage{dir: dir}
}

// Save writes the file below the upload directory
func (s *LocalStorage) Save(_ context.Context, fileHeader *multipart.FileHeader, folder string) (string, error) {
	return utils.SaveUploadedFile(fileHeader, s.dir, folder)
}

// URL returns the server-relative path of key
func (s *LocalStorage) URL(_ context.Context, key string) (string, error) {
	return utils.UploadURL(key), nil
}

// Delete removes key from disk
func (s *LocalStorage) Delete(_ context.Context, key string) error {
	if key == "" {
		return nil
	}
	path, err := s.Path(key)
	if err != nil {
		return err
	}
	if err := os.Remove(path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("failed to delete file: %w", err)
	}
	return nil
}

// Path resolves key to a file path, rejecting keys that escape the upload directory
func (s *LocalStorage) Path(key string) (string, error) {
	if !utils.SafeKey(key) {
		return "", fmt.Errorf("invalid storage key %q", key)
	}
	return filepath.Join(s.dir, filepath.FromSlash(key)), nil
}
