package xdiag

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
)

type loggerConfig struct {
	output    io.Writer
	level     slog.Level
	format    string
	addSource bool
}

// LoggerOption 日志构建选项。
type LoggerOption func(*loggerConfig)

// WithLogOutput 设置日志输出目标。nil 被静默忽略（默认 os.Stderr）。
func WithLogOutput(w io.Writer) LoggerOption {
	return func(c *loggerConfig) {
		if w != nil {
			c.output = w
		}
	}
}

// WithLogLevel 设置日志级别。
func WithLogLevel(level slog.Level) LoggerOption {
	return func(c *loggerConfig) {
		c.level = level
	}
}

// WithLogFormat 设置输出格式：text 或 json。
// 空值视为使用默认格式 text。
func WithLogFormat(format string) LoggerOption {
	return func(c *loggerConfig) {
		c.format = format
	}
}

// WithLogSource 设置是否记录源码位置。
func WithLogSource(enabled bool) LoggerOption {
	return func(c *loggerConfig) {
		c.addSource = enabled
	}
}

// NewLogger 构建 slog.Logger。
// 默认配置：text 格式、Info 级别、输出到 os.Stderr、不记录源码位置。
func NewLogger(opts ...LoggerOption) (*slog.Logger, error) {
	cfg := &loggerConfig{
		output: os.Stderr,
		level:  slog.LevelInfo,
		format: "text",
	}
	for _, opt := range opts {
		opt(cfg)
	}

	handlerOpts := &slog.HandlerOptions{
		Level:     cfg.level,
		AddSource: cfg.addSource,
	}

	var handler slog.Handler
	switch strings.ToLower(strings.TrimSpace(cfg.format)) {
	case "", "text":
		handler = slog.NewTextHandler(cfg.output, handlerOpts)
	case "json":
		handler = slog.NewJSONHandler(cfg.output, handlerOpts)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, cfg.format)
	}

	return slog.New(handler), nil
}
