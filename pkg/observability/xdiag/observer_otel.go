package xdiag

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"

	"github.com/omeyang/qakit/pkg/resilience/xretry"
)

const (
	defaultInstrumentationName = "github.com/omeyang/qakit/pkg/observability/xdiag"

	metricAttemptsTotal     = "qakit.retry.attempts.total"
	metricOperationDuration = "qakit.retry.operation.duration"

	outcomeOK    = "ok"
	outcomeError = "error"
)

type otelConfig struct {
	instrumentationName string
	meterProvider       metric.MeterProvider
}

// OTelOption OTel 观测器配置选项。
type OTelOption func(*otelConfig)

// WithInstrumentationName 设置 OTel instrumentation 名称。空值被忽略。
func WithInstrumentationName(name string) OTelOption {
	return func(c *otelConfig) {
		if name != "" {
			c.instrumentationName = name
		}
	}
}

// WithMeterProvider 设置 MeterProvider。nil 时使用全局默认。
func WithMeterProvider(provider metric.MeterProvider) OTelOption {
	return func(c *otelConfig) {
		if provider != nil {
			c.meterProvider = provider
		}
	}
}

// OTelObserver 基于 OpenTelemetry 指标的重试诊断观测器。
//
// 指标：
//   - qakit.retry.attempts.total（计数器）：按 operation、outcome 维度
//     累计每次尝试
//   - qakit.retry.operation.duration（直方图，单位秒）：按 operation、
//     succeeded 维度记录每次调用的总耗时
type OTelObserver struct {
	attempts metric.Int64Counter
	duration metric.Float64Histogram
}

// NewOTelObserver 创建 OTel 指标观测器。
func NewOTelObserver(opts ...OTelOption) (*OTelObserver, error) {
	cfg := &otelConfig{
		instrumentationName: defaultInstrumentationName,
		meterProvider:       otel.GetMeterProvider(),
	}
	for _, opt := range opts {
		opt(cfg)
	}

	meter := cfg.meterProvider.Meter(cfg.instrumentationName)

	attempts, err := meter.Int64Counter(
		metricAttemptsTotal,
		metric.WithDescription("total retry attempts"),
		metric.WithUnit("1"),
	)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCreateInstrument, err)
	}

	duration, err := meter.Float64Histogram(
		metricOperationDuration,
		metric.WithDescription("retried operation duration including backoff"),
		metric.WithUnit("s"),
	)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCreateInstrument, err)
	}

	return &OTelObserver{
		attempts: attempts,
		duration: duration,
	}, nil
}

// Attempt 累计尝试计数。
func (o *OTelObserver) Attempt(ctx context.Context, rec xretry.AttemptRecord) {
	outcome := outcomeOK
	if rec.Err != nil {
		outcome = outcomeError
	}
	o.attempts.Add(ctx, 1, metric.WithAttributes(
		attribute.String("operation", rec.Operation),
		attribute.String("outcome", outcome),
	))
}

// Summary 记录调用总耗时。
func (o *OTelObserver) Summary(ctx context.Context, rec xretry.SummaryRecord) {
	o.duration.Record(ctx, rec.TotalDuration.Seconds(), metric.WithAttributes(
		attribute.String("operation", rec.Operation),
		attribute.Bool("succeeded", rec.Succeeded),
	))
}

var _ xretry.Observer = (*OTelObserver)(nil)
