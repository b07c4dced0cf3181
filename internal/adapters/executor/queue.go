package executor

import (
	"slices"
	"sync"

	"go.trai.ch/rescache/internal/core/ports"
)

var _ ports.Executor = (*Queue)(nil)

// Queue holds submitted tasks until they are run explicitly, in FIFO order.
// It gives tests full control over interleavings.
type Queue struct {
	mu    sync.Mutex
	tasks []*handle
}

// NewQueue creates an empty Queue.
func NewQueue() *Queue {
	return &Queue{}
}

// Submit enqueues task without running it.
func (q *Queue) Submit(task ports.Task) ports.TaskHandle {
	h := newHandle(task)
	q.mu.Lock()
	q.tasks = append(q.tasks, h)
	q.mu.Unlock()
	return h
}

// Len returns the number of tasks waiting to run.
func (q *Queue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.tasks)
}

// RunNext runs the oldest waiting task. It returns false if none is waiting.
func (q *Queue) RunNext() bool {
	q.mu.Lock()
	if len(q.tasks) == 0 {
		q.mu.Unlock()
		return false
	}
	h := q.tasks[0]
	q.tasks[0] = nil
	q.tasks = q.tasks[1:]
	q.mu.Unlock()

	h.finish(run(h.task))
	return true
}

// RunAt runs the waiting task at position i, counted from the oldest.
// It returns false if i is out of range.
func (q *Queue) RunAt(i int) bool {
	q.mu.Lock()
	if i < 0 || i >= len(q.tasks) {
		q.mu.Unlock()
		return false
	}
	h := q.tasks[i]
	q.tasks = slices.Delete(q.tasks, i, i+1)
	q.mu.Unlock()

	h.finish(run(h.task))
	return true
}

// Drain runs tasks, including the ones they submit, until none is waiting.
// It returns the number of tasks run.
func (q *Queue) Drain() int {
	n := 0
	for q.RunNext() {
		n++
	}
	return n
}
