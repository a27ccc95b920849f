package errors

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWrap(t *testing.T) {
	t.Run("Success_PreservesErrorChain", func(t *testing.T) {
		wrapped := Wrap(ErrInvalidInput, "text field is required")

		assert.True(t, Is(wrapped, ErrInvalidInput))
		assert.Equal(t, "text field is required: invalid input", wrapped.Error())
	})

	t.Run("Success_NilErrorReturnsNil", func(t *testing.T) {
		assert.Nil(t, Wrap(nil, "context"))
	})

	t.Run("Success_DoubleWrapKeepsSentinel", func(t *testing.T) {
		inner := Wrap(ErrUnavailable, "entropy source unavailable")
		outer := Wrap(inner, "generate token")

		assert.True(t, Is(outer, ErrUnavailable))
	})
}

func TestNew(t *testing.T) {
	err := New("something went wrong")
	assert.EqualError(t, err, "something went wrong")
}
