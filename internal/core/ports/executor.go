// Package ports defines the core interfaces for the application.
package ports

// TaskState is the state of a submitted task.
type TaskState uint8

const (
	// TaskPending means the task has not finished yet.
	TaskPending TaskState = iota
	// TaskDone means the task has finished, successfully or not.
	TaskDone
)

// TaskResult is the outcome of polling a task handle.
type TaskResult struct {
	State TaskState
	// Err is set when a done task returned an error or panicked.
	Err error
}

// Done reports whether the task has finished.
func (r TaskResult) Done() bool {
	return r.State == TaskDone
}

// Task is one unit of work submitted to an Executor.
type Task struct {
	// Name identifies the task, e.g. "analyze:material0".
	Name string
	// Description is a human readable summary used for progress display.
	Description string
	// Run performs the work.
	Run func() error
}

// TaskHandle tracks a submitted task.
//
//go:generate go run go.uber.org/mock/mockgen -source=executor.go -destination=mocks/mock_executor.go -package=mocks
type TaskHandle interface {
	// Task returns the submitted task.
	Task() Task
	// Poll returns the current state without blocking.
	Poll() TaskResult
}

// Executor runs submitted tasks.
//
// Implementations must not block the caller for longer than it takes to
// enqueue the task, except for synchronous executors that run the task
// inside Submit. Panics raised by a task must be recovered and reported
// through the handle.
type Executor interface {
	Submit(task Task) TaskHandle
}

// ExecutorFunc adapts a function to the Executor interface.
type ExecutorFunc func(task Task) TaskHandle

// Submit calls f(task).
func (f ExecutorFunc) Submit(task Task) TaskHandle {
	return f(task)
}
