package services

import (
	"context"
	"mime/multipart"
)

// Storage folders
const (
	QuoteFolder     = "quotes"
	PortfolioFolder = "portfolio"
)

// FileStorage stores uploaded files and hands out URLs for them
type FileStorage interface {
	// Save stores the file under folder and returns its storage key
	Save(ctx context.Context, fileHeader *multipart.FileHeader, folder string) (string, error)

	// URL returns a URL for the key; local storage returns a server-relative path
	URL(ctx context.Context, key string) (string, error)

	// Delete removes the key; deleting a missing key is not an error
	Delete(ctx context.Context, key string) error
}

var storageInstance FileStorage

// GetFileStorage returns the configured storage backend
func GetFileStorage() FileStorage {
	return storageInstance
}

// SetFileStorage sets the storage backend (also used by tests)
func SetFileStorage(storage FileStorage) {
	storageInstance = storage
}
