package xdiag

import (
	"context"

	"github.com/omeyang/qakit/pkg/resilience/xretry"
)

// MultiObserver 按顺序把诊断记录扇出到多个观测器。
// 典型用法：同时落日志和指标。
type MultiObserver struct {
	observers []xretry.Observer
}

// NewMultiObserver 创建扇出观测器，nil 项被跳过。
func NewMultiObserver(observers ...xretry.Observer) *MultiObserver {
	m := &MultiObserver{observers: make([]xretry.Observer, 0, len(observers))}
	for _, o := range observers {
		if o != nil {
			m.observers = append(m.observers, o)
		}
	}
	return m
}

// Attempt 依次转发尝试记录。
func (m *MultiObserver) Attempt(ctx context.Context, rec xretry.AttemptRecord) {
	for _, o := range m.observers {
		o.Attempt(ctx, rec)
	}
}

// Summary 依次转发终态摘要。
func (m *MultiObserver) Summary(ctx context.Context, rec xretry.SummaryRecord) {
	for _, o := range m.observers {
		o.Summary(ctx, rec)
	}
}

var _ xretry.Observer = (*MultiObserver)(nil)
