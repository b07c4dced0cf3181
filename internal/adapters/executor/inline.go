package executor

import "go.trai.ch/rescache/internal/core/ports"

var _ ports.Executor = (*Inline)(nil)

// Inline runs every task synchronously inside Submit. Tasks submitted by a
// running task run nested, before the outer Submit returns.
type Inline struct{}

// NewInline creates an Inline executor.
func NewInline() *Inline {
	return &Inline{}
}

// Submit runs task and returns a handle that is already done.
func (*Inline) Submit(task ports.Task) ports.TaskHandle {
	h := newHandle(task)
	h.finish(run(task))
	return h
}
