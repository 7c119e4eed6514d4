package utils

import (
	"context"
	"errors"
	"io"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
)

// ErrStorageDisabled is returned when uploads are attempted without object
// storage credentials.
var ErrStorageDisabled = errors.New("object storage is not configured")

// CloudinaryStorage stores uploaded photos in a Cloudinary folder.
type CloudinaryStorage struct {
	cld          *cloudinary.Cloudinary
	uploadPreset string
}

// NewCloudinaryStorage initializes the Cloudinary client
func NewCloudinaryStorage(cloudName, apiKey, apiSecret, uploadPreset string) (*CloudinaryStorage, error) {
	cld, err := cloudinary.NewFromParams(cloudName, apiKey, apiSecret)
	if err != nil {
		return nil, err
	}
	return &CloudinaryStorage{cld: cld, uploadPreset: uploadPreset}, nil
}

// Store uploads r under folder/name and returns the secure URL.
func (s *CloudinaryStorage) Store(ctx context.Context, r io.Reader, folder, name string) (string, error) {
	if s == nil || s.cld == nil {
		return "", ErrStorageDisabled
	}

	resp, err := s.cld.Upload.Upload(ctx, r, uploader.UploadParams{
		PublicID:     name,
		Folder:       folder,
		UploadPreset: s.uploadPreset,
	})
	if err != nil {
		return "", err
	}
	if resp.Error.Message != "" {
		return "", errors.New(resp.Error.Message)
	}
	return resp.SecureURL, nil
}
