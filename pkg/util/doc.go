// Package util 提供通用工具相关的子包。
//
// 子包列表：
//   - xtestdata: 测试数据生成与感知 context 的等待工具
//
// 设计原则：
//   - 函数无包级状态，可并发调用
//   - 等待类操作必须可被 context 取消
package util
