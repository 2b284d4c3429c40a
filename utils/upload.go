package utils

import (
	"fmt"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Size caps per upload family.
const (
	MaxDocumentSize = 50 << 20       // 50MB for PDF/DOC/DOCX
	MaxDatasetSize  = 1 << 30        // 1GB for dataset archives
	MaxMediaSize    = 1 << 30        // 1GB for a single image/audio/video file
	MaxCombinedSize = 5 * (1 << 30)  // 5GB combined on the documentary path
	MaxImageSize    = 10 << 20       // 10MB thumbnails
)

var documentMimeTypes = map[string]bool{
	"application/pdf":    true,
	"application/msword": true,
	"application/vnd.openxmlformats-officedocument.wordprocessingml.document": true,
}

var datasetMimeTypes = map[string]bool{
	"text/csv":              true,
	"application/json":      true,
	"application/zip":       true,
	"application/x-zip-compressed": true,
	"application/vnd.ms-excel":     true,
	"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet": true,
}

var imageMimeTypes = map[string]bool{
	"image/jpeg": true,
	"image/jpg":  true,
	"image/png":  true,
	"image/gif":  true,
	"image/webp": true,
}

var avMimeTypes = map[string]bool{
	"video/mp4":       true,
	"video/webm":      true,
	"video/quicktime": true,
	"audio/mpeg":      true,
	"audio/wav":       true,
	"audio/mp4":       true,
}

// IsAllowedDocumentType reports whether the MIME type is PDF/DOC/DOCX.
func IsAllowedDocumentType(mimeType string) bool {
	return documentMimeTypes[normalizeMime(mimeType)]
}

// IsAllowedDatasetType accepts documents plus tabular/archive formats.
func IsAllowedDatasetType(mimeType string) bool {
	m := normalizeMime(mimeType)
	return documentMimeTypes[m] || datasetMimeTypes[m]
}

// IsAllowedMediaType accepts images and audio/video.
func IsAllowedMediaType(mimeType string) bool {
	m := normalizeMime(mimeType)
	return imageMimeTypes[m] || avMimeTypes[m]
}

// IsAllowedImageType accepts images only (thumbnails).
func IsAllowedImageType(mimeType string) bool {
	return imageMimeTypes[normalizeMime(mimeType)]
}

// IsAllowedVideoType accepts video only (documentary main file).
func IsAllowedVideoType(mimeType string) bool {
	m := normalizeMime(mimeType)
	return strings.HasPrefix(m, "video/") && avMimeTypes[m]
}

func normalizeMime(mimeType string) string {
	// Content-Type may carry parameters, e.g. "text/csv; charset=utf-8".
	if idx := strings.Index(mimeType, ";"); idx >= 0 {
		mimeType = mimeType[:idx]
	}
	return strings.ToLower(strings.TrimSpace(mimeType))
}

// FileMimeType returns the declared Content-Type of a multipart file header.
func FileMimeType(header *multipart.FileHeader) string {
	return normalizeMime(header.Header.Get("Content-Type"))
}

// GenerateStoredName builds a collision-resistant filename preserving the
// original extension. Concurrent uploads never race on the same name.
func GenerateStoredName(originalName string) string {
	ext := strings.ToLower(filepath.Ext(originalName))
	return fmt.Sprintf("%d_%s%s", time.Now().UnixNano(), uuid.New().String(), ext)
}

// UploadRoot returns the configured upload directory.
func UploadRoot() string {
	root := os.Getenv("UPLOAD_PATH")
	if root == "" {
		root = "./uploads"
	}
	return root
}

// UploadDir ensures and returns a subdirectory of the upload root.
func UploadDir(subdir string) (string, error) {
	dir := filepath.Join(UploadRoot(), subdir)
	if err := os.MkdirAll(dir, os.ModePerm); err != nil {
		return "", fmt.Errorf("failed to create upload directory: %w", err)
	}
	return dir, nil
}

// RemoveStoredFile deletes a stored upload, used to clean up after a failed
// record insert. Errors are returned for logging but never block the caller.
func RemoveStoredFile(path string) error {
	if path == "" {
		return nil
	}
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}
