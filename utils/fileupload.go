package utils

import (
	"fmt"
	"io"
	"mime"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

const (
	// MaxAttachmentSize is the per-file limit for quote attachments (20MB)
	MaxAttachmentSize = 20 * 1024 * 1024
	// MaxImageSize is the limit for portfolio images (10MB)
	MaxImageSize = 10 * 1024 * 1024
	// UploadRoute is the URL prefix local uploads are served under
	UploadRoute = "/uploads"
)

// AttachmentFormats are the extensions accepted on quote attachments
var AttachmentFormats = []string{".pdf", ".jpg", ".jpeg", ".png", ".webp", ".zip"}

// ImageFormats are the extensions accepted for portfolio images
var ImageFormats = []string{".jpg", ".jpeg", ".png", ".webp"}

// FileUploadError represents a file upload validation error
type FileUploadError struct {
	Code    string
	Message string
}

func (e *FileUploadError) Error() string {
	return e.Message
}

// ValidateAttachment checks a quote attachment's size and extension
func ValidateAttachment(fileHeader *multipart.FileHeader) error {
	return validateFile(fileHeader, MaxAttachmentSize, AttachmentFormats)
}

// ValidateImageFile checks a portfolio image's size and extension
func ValidateImageFile(fileHeader *multipart.FileHeader) error {
	return validateFile(fileHeader, MaxImageSize, ImageFormats)
}

func validateFile(fileHeader *multipart.FileHeader, maxSize int64, formats []string) error {
	if fileHeader.Size > maxSize {
		return &FileUploadError{
			Code:    "FILE_TOO_LARGE",
			Message: fmt.Sprintf("%s exceeds maximum allowed size of %d MB", fileHeader.Filename, maxSize/(1024*1024)),
		}
	}

	ext := strings.ToLower(filepath.Ext(fileHeader.Filename))
	for _, allowed := range formats {
		if ext == allowed {
			return nil
		}
	}
	return &FileUploadError{
		Code:    "INVALID_FILE_FORMAT",
		Message: fmt.Sprintf("Only %s files are allowed", strings.Join(formats, ", ")),
	}
}

// ContentType guesses a MIME type from the file extension
func ContentType(filename string) string {
	if ct := mime.TypeByExtension(strings.ToLower(filepath.Ext(filename))); ct != "" {
		return ct
	}
	return "application/octet-stream"
}

// UniqueFilename returns a collision-free name that keeps the original extension
func UniqueFilename(original string) string {
	return uuid.NewString() + strings.ToLower(filepath.Ext(original))
}

// SaveUploadedFile saves the uploaded file under uploadDir/folder
// Returns the storage key (folder/filename)
func SaveUploadedFile(fileHeader *multipart.FileHeader, uploadDir, folder string) (key string, err error) {
	dir := filepath.Join(uploadDir, folder)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("failed to create upload directory: %w", err)
	}

	filename := UniqueFilename(fileHeader.Filename)

	src, err := fileHeader.Open()
	if err != nil {
		return "", fmt.Errorf("failed to open uploaded file: %w", err)
	}
	defer func() {
		if closeErr := src.Close(); closeErr != nil {
			log.Warn().Err(closeErr).Msg("failed to close source file")
		}
	}()

	dst, err := os.Create(filepath.Join(dir, filename))
	if err != nil {
		return "", fmt.Errorf("failed to create destination file: %w", err)
	}
	defer func() {
		if closeErr := dst.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("failed to close destination file: %w", closeErr)
		}
	}()

	if _, err := io.Copy(dst, src); err != nil {
		return "", fmt.Errorf("failed to save file: %w", err)
	}

	return path(folder, filename), nil
}

// UploadURL returns the server-relative URL for a locally stored key
func UploadURL(key string) string {
	if key == "" {
		return ""
	}
	return UploadRoute + "/" + strings.TrimLeft(key, "/")
}

// SafeKey reports whether key stays inside the upload directory
func SafeKey(key string) bool {
	if key == "" || strings.Contains(key, "..") || strings.Contains(key, "\\") {
		return false
	}
	return !strings.HasPrefix(key, "/")
}

func path(folder, filename string) string {
	if folder == "" {
		return filename
	}
	return folder + "/" + filename
}
