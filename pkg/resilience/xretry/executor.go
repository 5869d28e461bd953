package xretry

import (
	"context"
	"time"

	retry "github.com/avast/retry-go/v5"
)

// Executor 重试执行器。
//
// Executor 的配置在构造后不可变，可被任意多个 goroutine 并发使用；
// 每次 Execute 调用完全独立，调用之间不共享可变状态。
// 同一调用内的尝试严格串行：第 k+1 次尝试一定在第 k 次尝试
// （含其退避等待）完全结束之后才开始。
type Executor struct {
	maxRetries int
	backoff    BackoffPolicy
	observer   Observer
	timer      Timer
}

// ExecutorOption 执行器配置选项。
type ExecutorOption func(*Executor)

// WithMaxRetries 设置最大尝试次数（包含首次尝试）。
// 值不在此处校验：n < 1 时 Execute 会同步返回 ErrInvalidMaxRetries，
// 不执行任何尝试。
func WithMaxRetries(n int) ExecutorOption {
	return func(e *Executor) {
		e.maxRetries = n
	}
}

// WithBackoffPolicy 设置退避策略。nil 被静默忽略。
func WithBackoffPolicy(p BackoffPolicy) ExecutorOption {
	return func(e *Executor) {
		if p != nil {
			e.backoff = p
		}
	}
}

// WithObserver 设置诊断观测器。nil 被静默忽略。
func WithObserver(o Observer) ExecutorOption {
	return func(e *Executor) {
		if o != nil {
			e.observer = o
		}
	}
}

// WithTimer 设置退避等待使用的计时器，主要用于测试注入假时钟。
// nil 被静默忽略（使用真实时钟）。
func WithTimer(t Timer) ExecutorOption {
	return func(e *Executor) {
		if t != nil {
			e.timer = t
		}
	}
}

// NewExecutor 创建重试执行器。
// 默认配置：最大尝试 3 次、指数退避（1s/x2/上限 8s）、空观测器。
func NewExecutor(opts ...ExecutorOption) *Executor {
	e := &Executor{
		maxRetries: DefaultMaxRetries,
		backoff:    NewExponentialBackoff(),
		observer:   NoopObserver{},
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// MaxRetries 返回最大尝试次数。nil 接收者返回 0。
func (e *Executor) MaxRetries() int {
	if e == nil {
		return 0
	}
	return e.maxRetries
}

// Execute 执行带重试的操作。
//
// name 是人类可读的操作标签，仅用于诊断，不参与控制流。
// 首次成功的尝试立即返回，不再退避；所有尝试均失败时返回
// *ExhaustedError。致命错误（IsFatal）和上下文取消会提前终止
// 剩余尝试并原样返回。
func (e *Executor) Execute(ctx context.Context, name string, op Operation) error {
	if op == nil {
		return ErrNilOperation
	}
	_, err := Do(ctx, e, name, func(ctx context.Context) (struct{}, error) {
		return struct{}{}, op(ctx)
	})
	return err
}

// Do 执行带重试的操作并返回结果。
//
// 这是泛型函数，必须作为包级函数使用（方法不支持类型参数）。
// 成功时结果原样透传，执行器不检查也不修改它。
func Do[T any](ctx context.Context, e *Executor, name string, fn func(ctx context.Context) (T, error)) (T, error) {
	var zero T
	if e == nil {
		return zero, ErrNilExecutor
	}
	if ctx == nil {
		return zero, ErrNilContext
	}
	if fn == nil {
		return zero, ErrNilOperation
	}
	if e.maxRetries < 1 {
		return zero, ErrInvalidMaxRetries
	}

	backoff := e.backoff
	if backoff == nil {
		backoff = NewExponentialBackoff()
	}
	observer := e.observer
	if observer == nil {
		observer = NoopObserver{}
	}

	start := time.Now()
	attempts := 0

	opts := make([]retry.Option, 0, 6)
	opts = append(opts,
		retry.Context(ctx),
		retry.Attempts(uint(e.maxRetries)),
		// 聚合错误只需要最后一次尝试的失败，更早的失败已经进了诊断记录
		retry.LastErrorOnly(true),
		retry.RetryIf(func(err error) bool {
			return IsRetryable(err)
		}),
		// retry-go v5 的 n 从 1 开始，即刚刚失败的尝试序号，
		// 与 BackoffPolicy.NextDelay 的语义一致
		retry.DelayType(func(n uint, _ error, _ retry.DelayContext) time.Duration {
			return backoff.NextDelay(int(n))
		}),
	)
	if e.timer != nil {
		opts = append(opts, retry.WithTimer(e.timer))
	}

	result, err := retry.NewWithData[T](opts...).Do(func() (T, error) {
		attempts++
		attemptStart := time.Now()
		v, opErr := fn(ctx)
		observer.Attempt(ctx, AttemptRecord{
			Operation:  name,
			Attempt:    attempts,
			MaxRetries: e.maxRetries,
			StartedAt:  attemptStart,
			Duration:   time.Since(attemptStart),
			Err:        opErr,
		})
		return v, opErr
	})

	elapsed := time.Since(start)

	if err == nil {
		observer.Summary(ctx, SummaryRecord{
			Operation:     name,
			Succeeded:     true,
			Attempts:      attempts,
			TotalDuration: elapsed,
		})
		return result, nil
	}

	// 只有"额度用尽且最后一次失败仍是可重试错误"才算耗尽；
	// 致命错误和上下文取消属于提前终止，错误原样返回
	if attempts >= e.maxRetries && !IsFatal(err) && ctx.Err() == nil {
		err = &ExhaustedError{
			Operation: name,
			Attempts:  attempts,
			Elapsed:   elapsed,
			Err:       err,
		}
	}
	observer.Summary(ctx, SummaryRecord{
		Operation:     name,
		Succeeded:     false,
		Attempts:      attempts,
		TotalDuration: elapsed,
		Err:           err,
	})
	var empty T
	return empty, err
}
