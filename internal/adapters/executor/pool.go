package executor

import (
	"context"
	"runtime"
	"sync"

	"go.trai.ch/rescache/internal/core/domain"
	"go.trai.ch/rescache/internal/core/ports"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

var _ ports.Executor = (*Pool)(nil)

// Pool runs tasks on a fixed set of worker goroutines. The queue is
// unbounded, so Submit never blocks. Each task runs inside a span.
type Pool struct {
	tracer ports.Tracer
	ctx    context.Context

	mu     sync.Mutex
	cond   *sync.Cond
	queue  []*handle
	closed bool

	g *errgroup.Group
}

// NewPool starts a pool with the given number of workers.
// A non-positive count uses one worker per CPU.
func NewPool(ctx context.Context, workers int, tracer ports.Tracer) *Pool {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	p := &Pool{
		tracer: tracer,
		ctx:    ctx,
		g:      &errgroup.Group{},
	}
	p.cond = sync.NewCond(&p.mu)

	for range workers {
		p.g.Go(func() error {
			p.work()
			return nil
		})
	}
	return p
}

// Submit enqueues task. Tasks submitted after Close finish immediately with
// domain.ErrExecutorClosed.
func (p *Pool) Submit(task ports.Task) ports.TaskHandle {
	h := newHandle(task)

	p.mu.Lock()
	if p.closed {
		p.mu.Unlock()
		h.finish(zerr.Wrap(domain.ErrExecutorClosed, task.Name))
		return h
	}
	p.queue = append(p.queue, h)
	p.mu.Unlock()
	p.cond.Signal()

	return h
}

// Close stops accepting tasks, waits for the queued ones to finish and
// stops the workers.
func (p *Pool) Close() error {
	p.mu.Lock()
	p.closed = true
	p.mu.Unlock()
	p.cond.Broadcast()

	return p.g.Wait()
}

func (p *Pool) work() {
	for {
		h, ok := p.next()
		if !ok {
			return
		}
		p.execute(h)
	}
}

// next blocks until a task is queued or the pool is closed and drained.
func (p *Pool) next() (*handle, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()

	for len(p.queue) == 0 && !p.closed {
		p.cond.Wait()
	}
	if len(p.queue) == 0 {
		return nil, false
	}
	h := p.queue[0]
	p.queue[0] = nil
	p.queue = p.queue[1:]
	return h, true
}

func (p *Pool) execute(h *handle) {
	_, span := p.tracer.Start(p.ctx, h.task.Name)
	span.SetAttribute("task.description", h.task.Description)

	err := run(h.task)
	if err != nil {
		span.RecordError(err)
	}
	span.End()

	h.finish(err)
}
