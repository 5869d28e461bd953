// Package observability 提供可观测性相关的子包。
//
// 子包列表：
//   - xdiag: 重试诊断观测器，结构化日志与 OpenTelemetry 指标两种后端
//
// 设计原则：
//   - 遵循 OpenTelemetry 语义规范
//   - 观测器只读不改，不影响重试语义
//   - 支持多后端扇出组合
package observability
