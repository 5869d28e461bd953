package xretry

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestExponentialBackoff_NextDelay(t *testing.T) {
	t.Run("DefaultSequence", func(t *testing.T) {
		b := NewExponentialBackoff()

		// 1s → 2s → 4s → 8s，之后恒为上限 8s
		assert.Equal(t, 1*time.Second, b.NextDelay(1))
		assert.Equal(t, 2*time.Second, b.NextDelay(2))
		assert.Equal(t, 4*time.Second, b.NextDelay(3))
		assert.Equal(t, 8*time.Second, b.NextDelay(4))
		assert.Equal(t, 8*time.Second, b.NextDelay(5))
		assert.Equal(t, 8*time.Second, b.NextDelay(20))
	})

	t.Run("AttemptBelowOneClamped", func(t *testing.T) {
		b := NewExponentialBackoff()
		assert.Equal(t, b.NextDelay(1), b.NextDelay(0))
		assert.Equal(t, b.NextDelay(1), b.NextDelay(-5))
	})

	t.Run("CustomParameters", func(t *testing.T) {
		b := NewExponentialBackoff(
			WithInitialDelay(100*time.Millisecond),
			WithMultiplier(3),
			WithMaxDelay(1*time.Second),
		)

		assert.Equal(t, 100*time.Millisecond, b.NextDelay(1))
		assert.Equal(t, 300*time.Millisecond, b.NextDelay(2))
		assert.Equal(t, 900*time.Millisecond, b.NextDelay(3))
		assert.Equal(t, 1*time.Second, b.NextDelay(4))
	})

	t.Run("MultiplierOneIsFixedDelay", func(t *testing.T) {
		b := NewExponentialBackoff(
			WithInitialDelay(500*time.Millisecond),
			WithMultiplier(1),
		)
		assert.Equal(t, 500*time.Millisecond, b.NextDelay(1))
		assert.Equal(t, 500*time.Millisecond, b.NextDelay(10))
	})

	t.Run("InvalidOptionsIgnored", func(t *testing.T) {
		b := NewExponentialBackoff(
			WithInitialDelay(-1*time.Second),
			WithMultiplier(0.5),
			WithMaxDelay(0),
		)
		// 全部非法，保持默认值
		assert.Equal(t, 1*time.Second, b.NextDelay(1))
		assert.Equal(t, 8*time.Second, b.NextDelay(4))
	})

	t.Run("MaxDelayBelowInitialClamped", func(t *testing.T) {
		b := NewExponentialBackoff(
			WithInitialDelay(2*time.Second),
			WithMaxDelay(1*time.Second),
		)
		assert.Equal(t, 2*time.Second, b.NextDelay(1))
		assert.Equal(t, 2*time.Second, b.NextDelay(5))
	})

	t.Run("HugeAttemptReturnsCap", func(t *testing.T) {
		b := NewExponentialBackoff()
		assert.Equal(t, 8*time.Second, b.NextDelay(1<<30))
	})
}

func TestFixedBackoff_NextDelay(t *testing.T) {
	b := NewFixedBackoff(250 * time.Millisecond)
	assert.Equal(t, 250*time.Millisecond, b.NextDelay(1))
	assert.Equal(t, 250*time.Millisecond, b.NextDelay(100))

	neg := NewFixedBackoff(-1 * time.Second)
	assert.Equal(t, time.Duration(0), neg.NextDelay(1))
}

func TestNoBackoff_NextDelay(t *testing.T) {
	b := NewNoBackoff()
	assert.Equal(t, time.Duration(0), b.NextDelay(1))
	assert.Equal(t, time.Duration(0), b.NextDelay(99))
}
