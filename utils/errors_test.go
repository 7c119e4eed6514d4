package utils

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHTTPStatus(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want int
	}{
		{"unauthenticated", Unauthenticated("no token"), http.StatusUnauthorized},
		{"forbidden", Forbidden("not yours"), http.StatusForbidden},
		{"not found", NotFound("Booking not found."), http.StatusNotFound},
		{"conflict", Conflict("exists"), http.StatusBadRequest},
		{"validation", Validation("bad input"), http.StatusBadRequest},
		{"wrapped", fmt.Errorf("confirm: %w", Forbidden("not yours")), http.StatusForbidden},
		{"internal", errors.New("connection reset"), http.StatusInternalServerError},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, HTTPStatus(tc.err))
		})
	}
}

func TestWrapErrorKeepsCause(t *testing.T) {
	cause := errors.New("duplicate key")
	err := WrapError(ErrConflict, "Resume already exists", cause)

	assert.ErrorIs(t, err, ErrConflict)
	assert.ErrorIs(t, err, cause)
	assert.Equal(t, "Resume already exists: duplicate key", err.Error())
}

func TestNewErrorResponseHidesInternalErrors(t *testing.T) {
	resp := NewErrorResponse(errors.New("pq: password authentication failed"))
	assert.Equal(t, "internal", resp.Error)

	resp = NewErrorResponse(NotFound("Tour not found."))
	assert.Equal(t, "Tour not found.", resp.Message)
	assert.Equal(t, "not found", resp.Error)
}

func TestStorageDisabledIsUnavailable(t *testing.T) {
	err := fmt.Errorf("upload photo: %w", ErrStorageDisabled)
	assert.Equal(t, 503, HTTPStatus(err))
	assert.Equal(t, "Photo uploads are not available", NewErrorResponse(err).Message)
}
