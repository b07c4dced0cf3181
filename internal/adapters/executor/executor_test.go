package executor_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/rescache/internal/adapters/executor"
	"go.trai.ch/rescache/internal/core/domain"
	"go.trai.ch/rescache/internal/core/ports"
)

func TestInline_RunsOnSubmit(t *testing.T) {
	exec := executor.NewInline()

	ran := false
	h := exec.Submit(ports.Task{Name: "inline", Run: func() error {
		ran = true
		return nil
	}})

	assert.True(t, ran)
	res := h.Poll()
	assert.True(t, res.Done())
	require.NoError(t, res.Err)
	assert.Equal(t, "inline", h.Task().Name)
}

func TestInline_NestedSubmit(t *testing.T) {
	exec := executor.NewInline()

	var order []string
	exec.Submit(ports.Task{Name: "outer", Run: func() error {
		order = append(order, "outer:start")
		exec.Submit(ports.Task{Name: "inner", Run: func() error {
			order = append(order, "inner")
			return nil
		}})
		order = append(order, "outer:end")
		return nil
	}})

	assert.Equal(t, []string{"outer:start", "inner", "outer:end"}, order)
}

func TestInline_ErrorsAndPanics(t *testing.T) {
	exec := executor.NewInline()
	errBroken := errors.New("broken")

	failed := exec.Submit(ports.Task{Name: "failed", Run: func() error { return errBroken }})
	panicked := exec.Submit(ports.Task{Name: "panicked", Run: func() error { panic(errBroken) }})

	assert.ErrorIs(t, failed.Poll().Err, errBroken)
	assert.ErrorIs(t, panicked.Poll().Err, domain.ErrTaskPanicked)
	assert.Contains(t, panicked.Poll().Err.Error(), "panic recovered")
}

func TestQueue_DefersUntilRun(t *testing.T) {
	q := executor.NewQueue()

	var order []string
	first := q.Submit(ports.Task{Name: "first", Run: func() error {
		order = append(order, "first")
		q.Submit(ports.Task{Name: "third", Run: func() error {
			order = append(order, "third")
			return nil
		}})
		return nil
	}})
	second := q.Submit(ports.Task{Name: "second", Run: func() error {
		order = append(order, "second")
		return nil
	}})

	assert.Equal(t, 2, q.Len())
	assert.False(t, first.Poll().Done())
	assert.False(t, second.Poll().Done())

	require.True(t, q.RunNext())
	assert.True(t, first.Poll().Done())
	assert.False(t, second.Poll().Done())

	assert.Equal(t, 2, q.Drain())
	assert.Equal(t, []string{"first", "second", "third"}, order)
	assert.Equal(t, 0, q.Len())
	assert.False(t, q.RunNext())
}

func TestQueue_RunAt(t *testing.T) {
	q := executor.NewQueue()

	var order []string
	for _, name := range []string{"a", "b", "c"} {
		q.Submit(ports.Task{Name: name, Run: func() error {
			order = append(order, name)
			return nil
		}})
	}

	require.True(t, q.RunAt(2))
	require.True(t, q.RunAt(0))
	assert.False(t, q.RunAt(1))
	require.True(t, q.RunAt(0))

	assert.Equal(t, []string{"c", "a", "b"}, order)
}

func TestExecutorFunc(t *testing.T) {
	var submitted string
	exec := ports.ExecutorFunc(func(task ports.Task) ports.TaskHandle {
		submitted = task.Name
		return executor.NewInline().Submit(task)
	})

	h := exec.Submit(ports.Task{Name: "adapted"})

	assert.Equal(t, "adapted", submitted)
	assert.True(t, h.Poll().Done())
}
