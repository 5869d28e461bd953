package xretry

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFatalError(t *testing.T) {
	t.Run("Error", func(t *testing.T) {
		err := NewFatalError(errors.New("bad config"))
		assert.Equal(t, "bad config", err.Error())
	})

	t.Run("ErrorNil", func(t *testing.T) {
		err := NewFatalError(nil)
		assert.Equal(t, "fatal error", err.Error())
	})

	t.Run("Unwrap", func(t *testing.T) {
		inner := errors.New("inner")
		err := NewFatalError(inner)
		assert.Same(t, inner, err.Unwrap())
	})

	t.Run("Retryable", func(t *testing.T) {
		assert.False(t, NewFatalError(errors.New("x")).Retryable())
	})
}

func TestIsRetryable(t *testing.T) {
	t.Run("NilIsNotRetryable", func(t *testing.T) {
		assert.False(t, IsRetryable(nil))
	})

	t.Run("PlainErrorIsRetryable", func(t *testing.T) {
		assert.True(t, IsRetryable(errors.New("anything")))
	})

	t.Run("FatalIsNotRetryable", func(t *testing.T) {
		assert.False(t, IsRetryable(NewFatalError(errors.New("x"))))
	})

	t.Run("WrappedFatalIsNotRetryable", func(t *testing.T) {
		err := fmt.Errorf("outer: %w", NewFatalError(errors.New("x")))
		assert.False(t, IsRetryable(err))
	})
}

func TestIsFatal(t *testing.T) {
	assert.False(t, IsFatal(nil))
	assert.False(t, IsFatal(errors.New("plain")))
	assert.True(t, IsFatal(NewFatalError(errors.New("x"))))
}

func TestExhaustedError(t *testing.T) {
	last := errors.New("element not visible")
	err := &ExhaustedError{
		Operation: "find login button",
		Attempts:  3,
		Elapsed:   3100 * time.Millisecond,
		Err:       last,
	}

	t.Run("MessageCarriesAllFields", func(t *testing.T) {
		msg := err.Error()
		assert.Contains(t, msg, `"find login button"`)
		assert.Contains(t, msg, "3 attempt(s)")
		assert.Contains(t, msg, "3.1s")
		assert.Contains(t, msg, "element not visible")
	})

	t.Run("Unwrap", func(t *testing.T) {
		assert.Same(t, last, err.Unwrap())
		assert.ErrorIs(t, err, last)
	})

	t.Run("IsExhausted", func(t *testing.T) {
		assert.True(t, IsExhausted(err))
		assert.True(t, IsExhausted(fmt.Errorf("wrapped: %w", err)))
		assert.False(t, IsExhausted(last))
		assert.False(t, IsExhausted(nil))
	})
}
