package xweberr

import (
	"errors"
	"fmt"
	"time"

	"github.com/omeyang/qakit/pkg/resilience/xretry"
)

// ElementNotFoundError 表示元素未在页面上找到。
// 页面可能尚未渲染完成，默认可重试。
type ElementNotFoundError struct {
	// Locator 定位表达式，如 "id=login-button"。
	Locator string

	// Err 底层驱动错误。
	Err error
}

// NewElementNotFound 创建元素未找到错误。
func NewElementNotFound(locator string, cause error) *ElementNotFoundError {
	return &ElementNotFoundError{Locator: locator, Err: cause}
}

func (e *ElementNotFoundError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("xweberr: element not found: locator %q", e.Locator)
	}
	return fmt.Sprintf("xweberr: element not found: locator %q: %v", e.Locator, e.Err)
}

func (e *ElementNotFoundError) Unwrap() error {
	return e.Err
}

// Retryable 恒为 true。
func (e *ElementNotFoundError) Retryable() bool {
	return true
}

// WaitTimeoutError 表示等待条件在超时时间内未满足。
type WaitTimeoutError struct {
	// Condition 等待的条件描述，如 "cart badge visible"。
	Condition string

	// Timeout 等待的超时时长。
	Timeout time.Duration

	// Err 底层驱动错误。
	Err error
}

// NewWaitTimeout 创建等待超时错误。
func NewWaitTimeout(condition string, timeout time.Duration, cause error) *WaitTimeoutError {
	return &WaitTimeoutError{Condition: condition, Timeout: timeout, Err: cause}
}

func (e *WaitTimeoutError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("xweberr: timed out after %s waiting for %s", e.Timeout, e.Condition)
	}
	return fmt.Sprintf("xweberr: timed out after %s waiting for %s: %v", e.Timeout, e.Condition, e.Err)
}

func (e *WaitTimeoutError) Unwrap() error {
	return e.Err
}

// Retryable 恒为 true。
func (e *WaitTimeoutError) Retryable() bool {
	return true
}

// NavigationError 表示页面跳转失败。
type NavigationError struct {
	// URL 目标地址。
	URL string

	// Err 底层驱动错误。
	Err error
}

// NewNavigation 创建页面跳转错误。
func NewNavigation(url string, cause error) *NavigationError {
	return &NavigationError{URL: url, Err: cause}
}

func (e *NavigationError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("xweberr: navigation to %s failed", e.URL)
	}
	return fmt.Sprintf("xweberr: navigation to %s failed: %v", e.URL, e.Err)
}

func (e *NavigationError) Unwrap() error {
	return e.Err
}

// Retryable 恒为 true。
func (e *NavigationError) Retryable() bool {
	return true
}

// ConfigError 表示配置加载或校验失败。
// 重试无法修复错误的配置，恒为不可重试，会使重试执行器立即终止。
type ConfigError struct {
	// Key 出错的配置键；整体加载失败时为空。
	Key string

	// Err 底层错误。
	Err error
}

// NewConfig 创建配置错误。
func NewConfig(key string, cause error) *ConfigError {
	return &ConfigError{Key: key, Err: cause}
}

func (e *ConfigError) Error() string {
	switch {
	case e.Key == "" && e.Err == nil:
		return "xweberr: configuration error"
	case e.Key == "":
		return fmt.Sprintf("xweberr: configuration error: %v", e.Err)
	case e.Err == nil:
		return fmt.Sprintf("xweberr: configuration error: key %q", e.Key)
	default:
		return fmt.Sprintf("xweberr: configuration error: key %q: %v", e.Key, e.Err)
	}
}

func (e *ConfigError) Unwrap() error {
	return e.Err
}

// Retryable 恒为 false。
func (e *ConfigError) Retryable() bool {
	return false
}

// IsElementNotFound 判断错误链中是否包含 ElementNotFoundError。
func IsElementNotFound(err error) bool {
	var target *ElementNotFoundError
	return errors.As(err, &target)
}

// IsWaitTimeout 判断错误链中是否包含 WaitTimeoutError。
func IsWaitTimeout(err error) bool {
	var target *WaitTimeoutError
	return errors.As(err, &target)
}

// IsNavigation 判断错误链中是否包含 NavigationError。
func IsNavigation(err error) bool {
	var target *NavigationError
	return errors.As(err, &target)
}

// IsConfig 判断错误链中是否包含 ConfigError。
func IsConfig(err error) bool {
	var target *ConfigError
	return errors.As(err, &target)
}

// 确保所有框架错误都参与 xretry 的重试分类
var (
	_ xretry.RetryableError = (*ElementNotFoundError)(nil)
	_ xretry.RetryableError = (*WaitTimeoutError)(nil)
	_ xretry.RetryableError = (*NavigationError)(nil)
	_ xretry.RetryableError = (*ConfigError)(nil)
)
