package services

import (
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"sync"
)

// MockStorage is an in-memory FileStorage for tests
type MockStorage struct {
	files   map[string][]byte
	counter int
	mu      sync.RWMutex

	// FailSave makes Save return an error, to exercise storage failure paths
	FailSave bool
}

// NewMockStorage creates an empty mock storage
func NewMockStorage() *MockStorage {
	return &MockStorage{
		files: make(map[string][]byte),
	}
}

// Save stores the file content under folder/mock_<n>_<filename>
func (m *MockStorage) Save(_ context.Context, fileHeader *multipart.FileHeader, folder string) (string, error) {
	if m.FailSave {
		return "", fmt.Errorf("mock storage: save failed")
	}

	file, err := fileHeader.Open()
	if err != nil {
		return "", fmt.Errorf("failed to open file: %w", err)
	}
	defer file.Close()

	content, err := io.ReadAll(file)
	if err != nil {
		return "", fmt.Errorf("failed to read file: %w", err)
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.counter++
	key := fmt.Sprintf("%s/mock_%d_%s", folder, m.counter, fileHeader.Filename)
	m.files[key] = content

	return key, nil
}

// URL returns a fake absolute URL for stored keys
func (m *MockStorage) URL(_ context.Context, key string) (string, error) {
	if key == "" {
		return "", nil
	}

	m.mu.RLock()
	_, exists := m.files[key]
	m.mu.RUnlock()

	if !exists {
		return "", fmt.Errorf("file not found in mock storage: %s", key)
	}
	return fmt.Sprintf("https://files.test/%s", key), nil
}

// Delete removes a stored key
func (m *MockStorage) Delete(_ context.Context, key string) error {
	m.mu.Lock()
	delete(m.files, key)
	m.mu.Unlock()
	return nil
}

// Files returns a copy of all stored files
func (m *MockStorage) Files() map[string][]byte {
	m.mu.RLock()
	defer m.mu.RUnlock()

	files := make(map[string][]byte, len(m.files))
	for k, v := range m.files {
		files[k] = v
	}
	return files
}

// Exists reports whether key is stored
func (m *MockStorage) Exists(key string) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	_, exists := m.files[key]
	return exists
}
