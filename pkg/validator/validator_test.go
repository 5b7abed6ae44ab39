package validator

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type contactForm struct {
	Name    string `json:"name" validate:"required,max=100"`
	Email   string `json:"email" validate:"required,email"`
	Subject string `json:"subject" validate:"required,max=255"`
	Message string `json:"message" validate:"required"`
}

func TestValidate_Valid(t *testing.T) {
	form := contactForm{
		Name:    "Jane Doe",
		Email:   "jane@example.com",
		Subject: "Project inquiry",
		Message: "I would like to discuss a project.",
	}

	assert.NoError(t, Validate(form))
}

func TestValidate_MissingFields(t *testing.T) {
	err := Validate(contactForm{})

	require.Error(t, err)
	var valErr *ValidationError
	require.True(t, errors.As(err, &valErr))

	fields := valErr.Fields()
	assert.Equal(t, "is required", fields["name"])
	assert.Equal(t, "is required", fields["email"])
	assert.Equal(t, "is required", fields["subject"])
	assert.Equal(t, "is required", fields["message"])
}

func TestValidate_BadEmail(t *testing.T) {
	form := contactForm{
		Name:    "Jane",
		Email:   "not-an-email",
		Subject: "Hello",
		Message: "Hi there",
	}

	err := Validate(form)

	require.Error(t, err)
	var valErr *ValidationError
	require.True(t, errors.As(err, &valErr))
	assert.Equal(t, "must be a valid email address", valErr.Fields()["email"])
}

func TestValidate_OneOf(t *testing.T) {
	type statusBody struct {
		Status string `validate:"required,oneof=approved rejected"`
	}

	err := Validate(statusBody{Status: "pending"})

	require.Error(t, err)
	var valErr *ValidationError
	require.True(t, errors.As(err, &valErr))
	assert.Equal(t, "must be one of: approved rejected", valErr.Fields()["Status"])
}
