package utils

import (
	"mime/multipart"
	"net/textproto"
	"testing"

	"github.com/stretchr/testify/assert"
)

func fileHeader(contentType string, size int64) *multipart.FileHeader {
	h := textproto.MIMEHeader{}
	h.Set("Content-Type", contentType)
	return &multipart.FileHeader{Filename: "photo", Header: h, Size: size}
}

func TestValidateImage(t *testing.T) {
	assert.NoError(t, ValidateImage(fileHeader("image/png", 1024)))
	assert.NoError(t, ValidateImage(fileHeader("image/jpeg", MaxImageSize)))

	assert.ErrorIs(t, ValidateImage(fileHeader("image/jpeg", MaxImageSize+1)), ErrValidation)
	assert.ErrorIs(t, ValidateImage(fileHeader("application/pdf", 10)), ErrValidation)
	assert.ErrorIs(t, ValidateImage(nil), ErrValidation)
}

func TestValidateStruct(t *testing.T) {
	type input struct {
		Email        string `validate:"required,email"`
		ReserveCount int    `validate:"gt=0"`
	}

	assert.NoError(t, ValidateStruct(input{Email: "a@b.co", ReserveCount: 1}))

	err := ValidateStruct(input{Email: "nope", ReserveCount: 0})
	assert.ErrorIs(t, err, ErrValidation)
	assert.Contains(t, err.Error(), "reserve_count must be greater than 0")
	assert.Contains(t, err.Error(), "email must be a valid email")
}
