package xdiag

import (
	"context"
	"log/slog"

	"github.com/omeyang/qakit/pkg/resilience/xretry"
)

// LogObserver 基于 log/slog 的重试诊断观测器。
//
// 每次尝试一条记录：成功为 Debug，失败为 Warn；
// 每次调用一条终态摘要：成功为 Info，失败为 Error。
// 对应原框架 RetryUtils 的逐次日志行为，但输出为结构化字段。
type LogObserver struct {
	logger *slog.Logger
}

// NewLogObserver 创建日志观测器。logger 为 nil 时使用 slog.Default()。
func NewLogObserver(logger *slog.Logger) *LogObserver {
	if logger == nil {
		logger = slog.Default()
	}
	return &LogObserver{logger: logger}
}

// Attempt 记录单次尝试结果。
func (o *LogObserver) Attempt(ctx context.Context, rec xretry.AttemptRecord) {
	attrs := []slog.Attr{
		slog.String("operation", rec.Operation),
		slog.Int("attempt", rec.Attempt),
		slog.Int("max_retries", rec.MaxRetries),
		slog.Duration("duration", rec.Duration),
	}
	if rec.Err != nil {
		attrs = append(attrs, slog.String("error", rec.Err.Error()))
		o.logger.LogAttrs(ctx, slog.LevelWarn, "retry attempt failed", attrs...)
		return
	}
	o.logger.LogAttrs(ctx, slog.LevelDebug, "retry attempt succeeded", attrs...)
}

// Summary 记录调用终态摘要。
func (o *LogObserver) Summary(ctx context.Context, rec xretry.SummaryRecord) {
	attrs := []slog.Attr{
		slog.String("operation", rec.Operation),
		slog.Bool("succeeded", rec.Succeeded),
		slog.Int("attempts", rec.Attempts),
		slog.Duration("total_duration", rec.TotalDuration),
	}
	if rec.Succeeded {
		o.logger.LogAttrs(ctx, slog.LevelInfo, "operation succeeded", attrs...)
		return
	}
	if rec.Err != nil {
		attrs = append(attrs, slog.String("last_error", rec.Err.Error()))
	}
	o.logger.LogAttrs(ctx, slog.LevelError, "operation failed", attrs...)
}

var _ xretry.Observer = (*LogObserver)(nil)
