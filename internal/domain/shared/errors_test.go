package shared

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDomainError(t *testing.T) {
	t.Run("message with and without field", func(t *testing.T) {
		assert.Equal(t, "Resource not found", ErrNotFound.Error())
		assert.Equal(t, "round: out of range", NewFieldError("INVALID_INPUT", "round", "out of range").Error())
	})

	t.Run("errors.Is matches by code", func(t *testing.T) {
		err := fmt.Errorf("aggregate: %w", NewFieldError("INVALID_INPUT", "round", "out of range"))
		assert.ErrorIs(t, err, ErrInvalidInput)
		assert.NotErrorIs(t, err, ErrNotFound)
		assert.False(t, errors.Is(err, errors.New("INVALID_INPUT")))
	})

	t.Run("errors.As exposes the field", func(t *testing.T) {
		err := fmt.Errorf("wrapped: %w", NewFieldError("NEGATIVE_VALUE_NOT_ALLOWED", "shipping", "shipping cannot be negative"))
		var de *DomainError
		assert.True(t, errors.As(err, &de))
		assert.Equal(t, "shipping", de.Field)
		assert.Equal(t, "NEGATIVE_VALUE_NOT_ALLOWED", de.Code)
	})
}
