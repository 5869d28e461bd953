package xtestdata

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
)

const (
	// timestampLayout 人类可读的时间戳格式，用于日志与报告。
	timestampLayout = "2006-01-02 15:04:05"

	// fileTimestampLayout 文件名安全的时间戳格式，不含空格与冒号。
	fileTimestampLayout = "2006-01-02_15-04-05"

	// emailDomain 随机邮箱使用的固定域名。
	emailDomain = "example.com"
)

// RandomEmail 生成全局唯一的邮箱地址，形如
// "user-550e8400-e29b-41d4-a716-446655440000@example.com"。
func RandomEmail() string {
	return fmt.Sprintf("user-%s@%s", uuid.NewString(), emailDomain)
}

// Timestamp 返回当前时间的可读格式，如 "2026-08-29 15:04:05"。
func Timestamp() string {
	return time.Now().Format(timestampLayout)
}

// FileTimestamp 返回适合拼入文件名的当前时间，如 "2026-08-29_15-04-05"。
func FileTimestamp() string {
	return time.Now().Format(fileTimestampLayout)
}

// Sleep 等待固定时长 d，context 取消时提前返回 ctx.Err()。
// d 小于等于零时立即返回 nil。
func Sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return nil
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
