package utils

import (
	"mime/multipart"
	"strings"
)

// MaxImageSize is the largest accepted photo upload.
const MaxImageSize = 2 << 20

// ValidateImage enforces the photo upload constraints: an image content
// type and at most MaxImageSize bytes.
func ValidateImage(file *multipart.FileHeader) error {
	if file == nil {
		return Validation("photo is required")
	}
	contentType := file.Header.Get("Content-Type")
	if !strings.HasPrefix(contentType, "image/") {
		return Validation("photo must be an image")
	}
	if file.Size > MaxImageSize {
		return Validation("photo must not exceed 2 MiB")
	}
	return nil
}
