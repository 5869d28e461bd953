package xdiag

import "errors"

// 日志与指标构建相关错误。
var (
	// ErrUnknownFormat 表示未知的日志输出格式。
	ErrUnknownFormat = errors.New("xdiag: unknown log format")

	// ErrCreateInstrument 表示 OTel 指标创建失败。
	ErrCreateInstrument = errors.New("xdiag: failed to create instrument")
)
