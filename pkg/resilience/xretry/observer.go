package xretry

import (
	"context"
	"time"
)

// AttemptRecord 单次尝试的诊断记录。
// 记录在尝试结束后立即发出，执行器不保留它。
type AttemptRecord struct {
	// Operation 操作名。
	Operation string

	// Attempt 尝试序号（从 1 开始）。
	Attempt int

	// MaxRetries 本次调用允许的最大尝试次数。
	MaxRetries int

	// StartedAt 尝试开始时间。
	StartedAt time.Time

	// Duration 本次尝试的执行耗时（不含退避等待）。
	Duration time.Duration

	// Err 本次尝试的错误；成功时为 nil。
	Err error
}

// SummaryRecord 一次 Execute 调用的终态摘要，每次调用恰好发出一条。
type SummaryRecord struct {
	// Operation 操作名。
	Operation string

	// Succeeded 调用是否最终成功。
	Succeeded bool

	// Attempts 实际尝试次数。
	Attempts int

	// TotalDuration 调用总耗时，包含退避等待。
	TotalDuration time.Duration

	// Err 失败时的终态错误（可能是 ExhaustedError）；成功时为 nil。
	Err error
}

// Observer 接收重试诊断记录的观测接口。
// 实现只做观测（日志、指标），不得影响控制流；
// 方法在执行器的调用 goroutine 上同步运行，应保持轻量。
type Observer interface {
	// Attempt 在每次尝试结束后调用。
	Attempt(ctx context.Context, rec AttemptRecord)

	// Summary 在调用结束时调用（成功或失败各一次）。
	Summary(ctx context.Context, rec SummaryRecord)
}

// NoopObserver 空观测器，默认值。
type NoopObserver struct{}

// Attempt 空实现。
func (NoopObserver) Attempt(_ context.Context, _ AttemptRecord) {}

// Summary 空实现。
func (NoopObserver) Summary(_ context.Context, _ SummaryRecord) {}

var _ Observer = NoopObserver{}
