package apperr

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorMatchesKind(t *testing.T) {
	err := fmt.Errorf("update message: %w", Unauthorized("edit limit reached"))

	assert.True(t, errors.Is(err, ErrUnauthorized))
	assert.False(t, errors.Is(err, ErrNotFound))
	assert.Equal(t, "edit limit reached", Message(err))
}

func TestMessageOfForeignError(t *testing.T) {
	assert.Empty(t, Message(errors.New("boom")))
}
