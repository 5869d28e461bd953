package xsuite

import (
	"fmt"
	"time"

	"github.com/omeyang/qakit/pkg/resilience/xretry"
	"github.com/omeyang/qakit/pkg/web/xweberr"
)

// RetryConfig 重试执行器的策略参数。
type RetryConfig struct {
	// MaxRetries 最大尝试次数（包含首次尝试）。
	MaxRetries int `koanf:"max_retries"`

	// InitialDelay 首次失败后的退避延迟。
	InitialDelay time.Duration `koanf:"initial_delay"`

	// Multiplier 退避乘数因子。
	Multiplier float64 `koanf:"multiplier"`

	// MaxDelay 退避延迟上限。
	MaxDelay time.Duration `koanf:"max_delay"`
}

// Config 测试套件配置。
type Config struct {
	// BaseURL 被测站点的根地址。
	BaseURL string `koanf:"base_url"`

	// Browser 浏览器类型，可被环境变量 QAKIT_BROWSER 覆盖。
	Browser string `koanf:"browser"`

	// Headless 是否以无头模式运行浏览器。
	Headless bool `koanf:"headless"`

	// Timeout 单次等待操作的超时时长。
	Timeout time.Duration `koanf:"timeout"`

	// Retry 重试策略。
	Retry RetryConfig `koanf:"retry"`
}

// Default 返回内置默认配置。
func Default() Config {
	return Config{
		BaseURL:  "https://www.saucedemo.com",
		Browser:  "chrome",
		Headless: false,
		Timeout:  10 * time.Second,
		Retry: RetryConfig{
			MaxRetries:   xretry.DefaultMaxRetries,
			InitialDelay: 1 * time.Second,
			Multiplier:   2.0,
			MaxDelay:     8 * time.Second,
		},
	}
}

// Validate 校验配置值。
// 返回的错误是 *xweberr.ConfigError，Key 指向第一个非法字段。
func (c *Config) Validate() error {
	if c.BaseURL == "" {
		return xweberr.NewConfig("base_url", fmt.Errorf("%w: must not be empty", ErrInvalidValue))
	}
	if c.Browser == "" {
		return xweberr.NewConfig("browser", fmt.Errorf("%w: must not be empty", ErrInvalidValue))
	}
	if c.Timeout <= 0 {
		return xweberr.NewConfig("timeout", fmt.Errorf("%w: must be positive, got %s", ErrInvalidValue, c.Timeout))
	}
	if c.Retry.MaxRetries < 1 {
		return xweberr.NewConfig("retry.max_retries", fmt.Errorf("%w: must be >= 1, got %d", ErrInvalidValue, c.Retry.MaxRetries))
	}
	if c.Retry.InitialDelay <= 0 {
		return xweberr.NewConfig("retry.initial_delay", fmt.Errorf("%w: must be positive, got %s", ErrInvalidValue, c.Retry.InitialDelay))
	}
	if c.Retry.Multiplier < 1 {
		return xweberr.NewConfig("retry.multiplier", fmt.Errorf("%w: must be >= 1, got %g", ErrInvalidValue, c.Retry.Multiplier))
	}
	if c.Retry.MaxDelay <= 0 {
		return xweberr.NewConfig("retry.max_delay", fmt.Errorf("%w: must be positive, got %s", ErrInvalidValue, c.Retry.MaxDelay))
	}
	return nil
}

// RetryOptions 把配置桥接为重试执行器的选项。
func (c *Config) RetryOptions() []xretry.ExecutorOption {
	return []xretry.ExecutorOption{
		xretry.WithMaxRetries(c.Retry.MaxRetries),
		xretry.WithBackoffPolicy(xretry.NewExponentialBackoff(
			xretry.WithInitialDelay(c.Retry.InitialDelay),
			xretry.WithMultiplier(c.Retry.Multiplier),
			xretry.WithMaxDelay(c.Retry.MaxDelay),
		)),
	}
}
