package errors

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAppError_Error(t *testing.T) {
	err := NotFound("testimonial", "t-123")
	assert.Contains(t, err.Error(), "NOT_FOUND")
	assert.Contains(t, err.Error(), "t-123")
}

func TestAppError_Unwrap(t *testing.T) {
	err := PermissionDenied("write rejected by policy")
	assert.ErrorIs(t, err, ErrPermissionDenied)
}

func TestValidationFailed_PreservesDetails(t *testing.T) {
	details := []string{
		"Name is required",
		"Please enter a valid email address",
		"Message must be at least 10 characters",
	}

	err := ValidationFailed(details)

	require.Equal(t, "VALIDATION_ERROR", err.Code)
	assert.Equal(t, details, err.Details)
	assert.Equal(t, http.StatusBadRequest, err.Status)
	assert.ErrorIs(t, err, ErrValidation)
	assert.Equal(t, "Name is required. Please enter a valid email address. Message must be at least 10 characters", err.Message)
}

func TestHTTPStatus(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
	}{
		{"not found", ErrNotFound, http.StatusNotFound},
		{"already exists", ErrAlreadyExists, http.StatusConflict},
		{"invalid input", ErrInvalidInput, http.StatusBadRequest},
		{"validation", ErrValidation, http.StatusBadRequest},
		{"unauthorized", ErrUnauthorized, http.StatusUnauthorized},
		{"permission denied", ErrPermissionDenied, http.StatusForbidden},
		{"constraint", ErrConstraint, http.StatusUnprocessableEntity},
		{"unavailable", ErrUnavailable, http.StatusServiceUnavailable},
		{"unknown", errors.New("boom"), http.StatusInternalServerError},
		{"wrapped sentinel", fmt.Errorf("insert testimonial: %w", ErrAlreadyExists), http.StatusConflict},
		{"app error", Duplicate("duplicate submission detected"), http.StatusConflict},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.status, HTTPStatus(tt.err))
		})
	}
}

func TestWrap(t *testing.T) {
	base := errors.New("connection refused")
	wrapped := Wrap(base, "probe testimonials")

	assert.ErrorIs(t, wrapped, base)
	assert.Contains(t, wrapped.Error(), "probe testimonials")
}
