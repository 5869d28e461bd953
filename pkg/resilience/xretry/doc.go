// Package xretry 提供面向 UI 自动化测试的重试执行器。
//
// # 设计理念
//
// UI 驱动操作（查找元素、等待可见、页面跳转）天然易抖动，xretry 把
// "有界重试 + 指数退避 + 逐次诊断" 封装为一个可复用的执行原语：
//   - Executor：不可变配置（最大尝试次数、退避策略、观测器），并发安全
//   - BackoffPolicy：计算两次尝试之间的延迟
//   - Observer：接收每次尝试的诊断记录和调用终态摘要（纯观测，不影响控制流）
//
// 底层使用 [avast/retry-go/v5] 实现重试循环。
//
// # 错误分类
//
// 执行器本身不解读错误——任何失败默认视为可重试。是否重试由调用方在
// 操作闭包内决定：
//   - NewFatalError(err)：标记为致命错误，立即终止剩余尝试并原样返回
//   - 实现 RetryableError 接口的错误按 Retryable() 返回值判断
//   - 其他错误一律重试
//
// 所有尝试耗尽后返回 *ExhaustedError，携带操作名、尝试次数、总耗时
// （含退避等待）和最后一次尝试的错误。中间失败只记录诊断，不保留。
//
// # 退避策略
//
// 默认 ExponentialBackoff：delay = min(cap, initial * multiplier^(attempt-1))，
// initial=1s、multiplier=2、cap=8s。即第 1 次失败后等 1s，第 2 次失败后
// 等 2s，第 3 次失败后等 4s。延迟只出现在两次尝试之间，最后一次尝试
// 之后不再等待。
//
// # 使用方式
//
//	exec := xretry.NewExecutor(
//	    xretry.WithMaxRetries(3),
//	)
//	el, err := xretry.Do(ctx, exec, "find login button", func(ctx context.Context) (Element, error) {
//	    return page.Find(ctx, loginButton)
//	})
//
// 无返回值的操作使用 Executor.Execute。
//
// [avast/retry-go/v5]: https://github.com/avast/retry-go
package xretry
