package xretry

import (
	"math"
	"time"
)

// 指数退避的默认参数，与原始框架保持一致：1s → 2s → 4s，上限 8s。
const (
	defaultInitialDelay = 1 * time.Second
	defaultMultiplier   = 2.0
	defaultMaxDelay     = 8 * time.Second
)

// ExponentialBackoff 指数退避策略。
// delay = min(maxDelay, initialDelay * multiplier^(attempt-1))
//
// 不带抖动：UI 测试的重试通常是单调逻辑线程内的串行等待，
// 不存在惊群问题，确定性延迟更利于复现失败场景。
type ExponentialBackoff struct {
	initialDelay time.Duration
	multiplier   float64
	maxDelay     time.Duration
}

// ExponentialBackoffOption 指数退避配置选项。
type ExponentialBackoffOption func(*ExponentialBackoff)

// WithInitialDelay 设置初始延迟。d <= 0 时静默忽略（保持默认值）。
func WithInitialDelay(d time.Duration) ExponentialBackoffOption {
	return func(b *ExponentialBackoff) {
		if d > 0 {
			b.initialDelay = d
		}
	}
}

// WithMultiplier 设置乘数因子（>= 1.0）。
// 传入 1.0 表示固定延迟；小于 1.0 的值被忽略。
func WithMultiplier(m float64) ExponentialBackoffOption {
	return func(b *ExponentialBackoff) {
		if m >= 1 {
			b.multiplier = m
		}
	}
}

// WithMaxDelay 设置延迟上限。d <= 0 时静默忽略。
func WithMaxDelay(d time.Duration) ExponentialBackoffOption {
	return func(b *ExponentialBackoff) {
		if d > 0 {
			b.maxDelay = d
		}
	}
}

// NewExponentialBackoff 创建指数退避策略。
// 默认值：initialDelay=1s、multiplier=2.0、maxDelay=8s。
// 默认参数下前三次失败后的延迟依次为 1s、2s、4s。
func NewExponentialBackoff(opts ...ExponentialBackoffOption) *ExponentialBackoff {
	b := &ExponentialBackoff{
		initialDelay: defaultInitialDelay,
		multiplier:   defaultMultiplier,
		maxDelay:     defaultMaxDelay,
	}
	for _, opt := range opts {
		opt(b)
	}
	if b.maxDelay < b.initialDelay {
		b.maxDelay = b.initialDelay
	}
	return b
}

// NextDelay 返回第 attempt 次尝试失败后的等待时长。
func (b *ExponentialBackoff) NextDelay(attempt int) time.Duration {
	if attempt < 1 {
		attempt = 1
	}

	delay := float64(b.initialDelay) * math.Pow(b.multiplier, float64(attempt-1))

	// attempt 极大时 math.Pow 溢出为 +Inf，+Inf 与 maxDelay 的比较仍然成立，
	// 但 NaN 的比较恒为 false，需要单独拦截。
	if math.IsNaN(delay) || delay < 0 || delay >= float64(b.maxDelay) {
		return b.maxDelay
	}
	return time.Duration(delay)
}

// FixedBackoff 固定延迟退避策略。
type FixedBackoff struct {
	delay time.Duration
}

// NewFixedBackoff 创建固定延迟退避策略。负值按 0 处理。
func NewFixedBackoff(delay time.Duration) *FixedBackoff {
	if delay < 0 {
		delay = 0
	}
	return &FixedBackoff{delay: delay}
}

// NextDelay 返回固定延迟。
func (b *FixedBackoff) NextDelay(_ int) time.Duration {
	return b.delay
}

// NoBackoff 无延迟退避策略，主要用于测试。
type NoBackoff struct{}

// NewNoBackoff 创建无延迟退避策略。
func NewNoBackoff() *NoBackoff {
	return &NoBackoff{}
}

// NextDelay 恒返回 0。
func (b *NoBackoff) NextDelay(_ int) time.Duration {
	return 0
}

// 确保实现了 BackoffPolicy 接口
var (
	_ BackoffPolicy = (*ExponentialBackoff)(nil)
	_ BackoffPolicy = (*FixedBackoff)(nil)
	_ BackoffPolicy = (*NoBackoff)(nil)
)
