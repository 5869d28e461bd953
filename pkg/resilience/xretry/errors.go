package xretry

import (
	"errors"
	"fmt"
	"time"
)

// 参数与用法错误。
var (
	// ErrNilExecutor 表示执行器为 nil。
	ErrNilExecutor = errors.New("xretry: nil executor")

	// ErrNilContext 表示上下文为 nil。
	ErrNilContext = errors.New("xretry: nil context")

	// ErrNilOperation 表示操作为 nil。
	ErrNilOperation = errors.New("xretry: nil operation")

	// ErrInvalidMaxRetries 表示最大尝试次数小于 1。
	// 在任何尝试开始之前同步返回，操作不会被执行。
	ErrInvalidMaxRetries = errors.New("xretry: max retries must be >= 1")
)

// RetryableError 可重试错误接口。
// 实现此接口的错误按 Retryable() 返回值决定是否继续重试。
type RetryableError interface {
	error
	Retryable() bool
}

// FatalError 致命错误标记。
// 操作闭包返回 FatalError 时，执行器立即终止剩余尝试并原样返回该错误
// （不包装为 ExhaustedError）。用于配置错误等重试无意义的场景。
type FatalError struct {
	Err error
}

// NewFatalError 将 err 标记为致命错误。
func NewFatalError(err error) *FatalError {
	return &FatalError{Err: err}
}

func (e *FatalError) Error() string {
	if e.Err == nil {
		return "fatal error"
	}
	return e.Err.Error()
}

func (e *FatalError) Unwrap() error {
	return e.Err
}

// Retryable 恒为 false。
func (e *FatalError) Retryable() bool {
	return false
}

// IsRetryable 判断错误是否可重试。
// 规则：
//   - nil：视为成功，无需重试
//   - 实现 RetryableError 接口：按 Retryable() 返回值判断
//   - 其他错误：默认可重试（执行器对错误种类保持盲目）
func IsRetryable(err error) bool {
	if err == nil {
		return false
	}

	var re RetryableError
	if errors.As(err, &re) {
		return re.Retryable()
	}

	return true
}

// IsFatal 判断错误是否为致命错误（不可重试）。
func IsFatal(err error) bool {
	if err == nil {
		return false
	}
	return !IsRetryable(err)
}

// ExhaustedError 表示所有尝试均失败后的聚合错误。
// 这是执行器自身产生的唯一失败类型（用法错误除外）。
// Err 是最后一次尝试的错误；更早的失败只出现在诊断记录里。
type ExhaustedError struct {
	// Operation 操作名，仅用于诊断。
	Operation string

	// Attempts 实际尝试次数，等于执行器的最大尝试次数。
	Attempts int

	// Elapsed 全部尝试的总耗时，包含退避等待。
	Elapsed time.Duration

	// Err 最后一次尝试的错误。
	Err error
}

func (e *ExhaustedError) Error() string {
	return fmt.Sprintf("xretry: operation %q failed after %d attempt(s) in %s: %v",
		e.Operation, e.Attempts, e.Elapsed.Round(time.Millisecond), e.Err)
}

func (e *ExhaustedError) Unwrap() error {
	return e.Err
}

// IsExhausted 判断错误链中是否包含 ExhaustedError。
func IsExhausted(err error) bool {
	var ex *ExhaustedError
	return errors.As(err, &ex)
}
