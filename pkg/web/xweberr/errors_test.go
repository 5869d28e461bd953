package xweberr

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/omeyang/qakit/pkg/resilience/xretry"
)

func TestElementNotFoundError(t *testing.T) {
	cause := errors.New("no such element")
	err := NewElementNotFound("id=login-button", cause)

	assert.Contains(t, err.Error(), `"id=login-button"`)
	assert.Contains(t, err.Error(), "no such element")
	assert.Same(t, cause, err.Unwrap())
	assert.True(t, err.Retryable())
	assert.True(t, IsElementNotFound(fmt.Errorf("wrapped: %w", err)))

	noCause := NewElementNotFound("css=.cart", nil)
	assert.Contains(t, noCause.Error(), `"css=.cart"`)
	assert.NoError(t, noCause.Unwrap())
}

func TestWaitTimeoutError(t *testing.T) {
	err := NewWaitTimeout("cart badge visible", 10*time.Second, nil)

	assert.Contains(t, err.Error(), "10s")
	assert.Contains(t, err.Error(), "cart badge visible")
	assert.True(t, err.Retryable())
	assert.True(t, IsWaitTimeout(err))
	assert.False(t, IsWaitTimeout(errors.New("other")))
}

func TestNavigationError(t *testing.T) {
	cause := errors.New("connection refused")
	err := NewNavigation("https://www.saucedemo.com", cause)

	assert.Contains(t, err.Error(), "https://www.saucedemo.com")
	assert.ErrorIs(t, err, cause)
	assert.True(t, err.Retryable())
	assert.True(t, IsNavigation(err))
}

func TestConfigError(t *testing.T) {
	t.Run("WithKeyAndCause", func(t *testing.T) {
		cause := errors.New("not a number")
		err := NewConfig("timeout", cause)
		assert.Contains(t, err.Error(), `"timeout"`)
		assert.Contains(t, err.Error(), "not a number")
		assert.Same(t, cause, err.Unwrap())
	})

	t.Run("Bare", func(t *testing.T) {
		err := NewConfig("", nil)
		assert.Equal(t, "xweberr: configuration error", err.Error())
	})

	t.Run("NotRetryable", func(t *testing.T) {
		err := NewConfig("browser", errors.New("unknown browser"))
		assert.False(t, err.Retryable())
		assert.True(t, IsConfig(err))
	})
}

func TestClassificationDrivesRetry(t *testing.T) {
	exec := xretry.NewExecutor(
		xretry.WithMaxRetries(3),
		xretry.WithBackoffPolicy(xretry.NewNoBackoff()),
	)

	t.Run("RetryableKindsAreRetried", func(t *testing.T) {
		var attempts int
		err := exec.Execute(context.Background(), "find element", func(_ context.Context) error {
			attempts++
			return NewElementNotFound("id=missing", nil)
		})

		assert.Equal(t, 3, attempts)
		assert.True(t, xretry.IsExhausted(err))
	})

	t.Run("ConfigErrorStopsImmediately", func(t *testing.T) {
		var attempts int
		err := exec.Execute(context.Background(), "load config", func(_ context.Context) error {
			attempts++
			return NewConfig("base_url", errors.New("empty"))
		})

		require.Error(t, err)
		assert.Equal(t, 1, attempts)
		assert.False(t, xretry.IsExhausted(err))
		assert.True(t, IsConfig(err))
	})
}
