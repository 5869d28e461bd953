// Package xtestdata 提供 UI 测试常用的测试数据生成与等待工具。
//
// # 功能概览
//
//   - [RandomEmail]: 基于 UUID 的唯一邮箱地址，用于注册类场景
//   - [Timestamp] / [FileTimestamp]: 人类可读与文件名安全两种时间戳格式
//   - [Sleep]: 感知 context 的固定等待，可被取消
//
// # 相关包
//
//   - 重试执行器：[github.com/omeyang/qakit/pkg/resilience/xretry]
package xtestdata
