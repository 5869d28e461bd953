package xsuite

import "errors"

// 配置加载和校验相关错误。
// 它们总是被包装在 *xweberr.ConfigError 内返回。
var (
	// ErrUnsupportedFormat 表示不支持的配置格式。
	ErrUnsupportedFormat = errors.New("xsuite: unsupported config format")

	// ErrLoadFailed 表示配置读取失败。
	ErrLoadFailed = errors.New("xsuite: failed to load config")

	// ErrParseFailed 表示配置解析失败。
	ErrParseFailed = errors.New("xsuite: failed to parse config")

	// ErrInvalidValue 表示配置值非法。
	ErrInvalidValue = errors.New("xsuite: invalid config value")
)
