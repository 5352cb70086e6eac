package apperror

import (
	"errors"
	"fmt"
	"testing"

	"github.com/kuskoveckis/FreeCodeCamp-Exercise-Tracker/internal/model/data"
	"github.com/stretchr/testify/assert"
)

func TestKindsSurviveWrapping(t *testing.T) {
	err := fmt.Errorf("append log entry: %w", NotFound("unknown user id"))

	assert.True(t, errors.Is(err, ErrNotFound))
	assert.False(t, errors.Is(err, ErrConflict))

	var appErr *Error
	assert.True(t, errors.As(err, &appErr))
	assert.Equal(t, "unknown user id", appErr.Message)
}

func TestValidationError(t *testing.T) {
	err := Validation("invalid input", []data.ValidationErrorData{{Field: "username", Message: "Username is required"}})

	assert.True(t, errors.Is(err, ErrValidation))

	var vErr *ValidationError
	if assert.True(t, errors.As(err, &vErr)) {
		assert.Len(t, vErr.Fields, 1)
		assert.Equal(t, "invalid input", vErr.Error())
	}
}
