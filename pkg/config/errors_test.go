package config

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidationErrorFormat(t *testing.T) {
	withField := NewValidationError("llm", "model", ErrMissingRequiredField)
	assert.Equal(t, "llm: field 'model': missing required field", withField.Error())

	withoutField := NewValidationError("queue", "", ErrMissingRequiredField)
	assert.Equal(t, "queue: missing required field", withoutField.Error())
}

func TestValidationErrorUnwrap(t *testing.T) {
	err := NewValidationError("llm", "max_tokens", fmt.Errorf("%w: must be at least 1", ErrInvalidValue))
	assert.ErrorIs(t, err, ErrInvalidValue)
}

func TestLoadErrorUnwrap(t *testing.T) {
	inner := fmt.Errorf("%w: /etc/flowcore/flowcore.yaml", ErrConfigNotFound)
	err := NewLoadError("flowcore.yaml", inner)

	assert.Contains(t, err.Error(), "flowcore.yaml")
	assert.True(t, errors.Is(err, ErrConfigNotFound))
}
