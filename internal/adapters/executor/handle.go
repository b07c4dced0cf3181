// Package executor provides the task executors used by the resource cache.
package executor

import (
	"sync/atomic"

	"go.trai.ch/rescache/internal/core/domain"
	"go.trai.ch/rescache/internal/core/ports"
	"go.trai.ch/zerr"
)

// handle implements ports.TaskHandle. err is written before done is set.
type handle struct {
	task ports.Task
	done atomic.Bool
	err  error
}

func newHandle(task ports.Task) *handle {
	return &handle{task: task}
}

// Task returns the submitted task.
func (h *handle) Task() ports.Task {
	return h.task
}

// Poll returns the current state of the task.
func (h *handle) Poll() ports.TaskResult {
	if !h.done.Load() {
		return ports.TaskResult{State: ports.TaskPending}
	}
	return ports.TaskResult{State: ports.TaskDone, Err: h.err}
}

func (h *handle) finish(err error) {
	h.err = err
	h.done.Store(true)
}

// run executes task and converts a panic into domain.ErrTaskPanicked.
func run(task ports.Task) (err error) {
	defer zerr.Defer(func(p error) {
		err = zerr.With(zerr.Wrap(domain.ErrTaskPanicked, p.Error()), "task", task.Name)
	})
	if task.Run == nil {
		return nil
	}
	return task.Run()
}
