// Package xdiag 提供重试诊断的落地实现：结构化日志和 OTel 指标。
//
// xretry 只定义 Observer 接口，本包提供三个实现：
//   - LogObserver：基于 log/slog 的结构化日志观测器，每次尝试一条
//     记录（成功 Debug / 失败 Warn），每次调用一条终态摘要
//     （成功 Info / 失败 Error）
//   - OTelObserver：基于 OpenTelemetry 指标的观测器，按操作名和结果
//     维度累计尝试次数并记录调用耗时分布
//   - MultiObserver：按顺序扇出到多个观测器
//
// NewLogger 构建观测器使用的 slog.Logger（text/json 格式、级别、
// 输出目标可配）。
//
// 使用方式：
//
//	logger, _ := xdiag.NewLogger(xdiag.WithLogFormat("json"))
//	exec := xretry.NewExecutor(
//	    xretry.WithObserver(xdiag.NewLogObserver(logger)),
//	)
package xdiag
