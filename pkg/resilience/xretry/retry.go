package xretry

import (
	"context"
	"time"

	retry "github.com/avast/retry-go/v5"
)

// Operation 是一次可重试的工作单元。
// 闭包由调用方持有，执行器不会在调用返回后保留它。
// 操作在重复执行下的幂等性由调用方保证。
type Operation func(ctx context.Context) error

// BackoffPolicy 定义退避策略接口。
// attempt 是刚刚失败的尝试序号（从 1 开始），
// 返回下一次尝试之前需要等待的时长。
type BackoffPolicy interface {
	NextDelay(attempt int) time.Duration
}

// Timer 是重试等待使用的计时器接口，别名自 retry-go。
// 主要用于测试：注入假计时器即可断言退避序列而无需真实等待。
type Timer = retry.Timer

// DefaultMaxRetries 默认最大尝试次数（包含首次尝试）。
const DefaultMaxRetries = 3
