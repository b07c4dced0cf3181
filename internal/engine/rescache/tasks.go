package rescache

import (
	"go.trai.ch/rescache/internal/core/domain"
	"go.trai.ch/rescache/internal/core/ports"
	"go.trai.ch/zerr"
)

type taskKind uint8

const (
	// kindAnalyze stores a new snapshot and validates it.
	kindAnalyze taskKind = iota
	// kindRevalidate validates a resource again using its stored snapshot.
	kindRevalidate
	// kindDelete removes a resource.
	kindDelete
	// kindBuild inserts a batch of snapshots before validating any of them.
	kindBuild
)

func (k taskKind) String() string {
	switch k {
	case kindAnalyze:
		return "analyze"
	case kindRevalidate:
		return "revalidate"
	case kindDelete:
		return "delete"
	case kindBuild:
		return "build"
	default:
		return "unknown"
	}
}

func (k taskKind) describe(id string) string {
	switch k {
	case kindAnalyze:
		return "Analyzing " + id
	case kindRevalidate:
		return "Checking " + id
	case kindDelete:
		return "Removing " + id
	default:
		return "Building resource cache"
	}
}

// pendingTask is an outstanding handle together with what it was submitted for.
type pendingTask struct {
	kind taskKind
	id   string
	seq  uint64
	// snaps holds the snapshot of an Analyze task or the batch of a Build
	// task, so a failure can still record them.
	snaps  []*domain.Snapshot
	handle ports.TaskHandle
}

// followUp is a revalidation to submit once the state lock is released.
type followUp struct {
	id  string
	seq uint64
}

// cascade tracks which resources a single mutation has already scheduled
// for revalidation. Every resource is revalidated at most once per cascade,
// which bounds the work on reference cycles. Guarded by the state lock.
type cascade struct {
	visited map[string]struct{}
}

func newCascade(origins ...string) *cascade {
	cs := &cascade{visited: make(map[string]struct{}, len(origins))}
	for _, id := range origins {
		cs.visited[id] = struct{}{}
	}
	return cs
}

// mark records id as visited and reports whether it was new.
func (cs *cascade) mark(id string) bool {
	if _, ok := cs.visited[id]; ok {
		return false
	}
	cs.visited[id] = struct{}{}
	return true
}

// claim returns the follow-ups for the dependents that this cascade has not
// visited yet and that still have a record. Must hold c.mu.
func (c *Cache) claim(cs *cascade, dependents []string) []followUp {
	var out []followUp
	for _, id := range dependents {
		if !cs.mark(id) || !c.table.has(id) {
			continue
		}
		out = append(out, followUp{id: id, seq: c.applied[id]})
	}
	return out
}

func (c *Cache) submitRevalidations(next []followUp, cs *cascade) {
	for _, f := range next {
		c.submit(kindRevalidate, f.id, f.seq, nil, func() error {
			return c.revalidate(f.id, cs)
		})
	}
}

// submit hands a task to the executor and tracks its handle. It must not be
// called with c.mu held: synchronous executors run the task inside Submit.
func (c *Cache) submit(kind taskKind, id string, seq uint64, snaps []*domain.Snapshot, run func() error) {
	c.inflight.Add(1)
	defer c.inflight.Add(-1)

	task := ports.Task{
		Name:        kind.String() + ":" + id,
		Description: kind.describe(id),
		Run:         run,
	}
	c.metrics.submitted(kind)

	handle := c.exec.Submit(task)

	c.pendingMu.Lock()
	c.pending = append(c.pending, pendingTask{kind: kind, id: id, seq: seq, snaps: snaps, handle: handle})
	c.metrics.setPending(len(c.pending))
	c.pendingMu.Unlock()
}

type taskFailure struct {
	task pendingTask
	err  error
}

// collect polls every outstanding handle once, drops the finished ones and
// returns the failures among them.
func (c *Cache) collect() []taskFailure {
	c.pendingMu.Lock()
	defer c.pendingMu.Unlock()

	var failures []taskFailure
	kept := c.pending[:0]
	for _, p := range c.pending {
		res := p.handle.Poll()
		if !res.Done() {
			kept = append(kept, p)
			continue
		}
		if res.Err != nil {
			failures = append(failures, taskFailure{task: p, err: res.Err})
		}
	}
	clear(c.pending[len(kept):])
	c.pending = kept
	c.metrics.setPending(len(kept))
	return failures
}

// fail marks the resource of a failed task invalid and revalidates its dependents.
func (c *Cache) fail(f taskFailure) {
	c.metrics.failed()
	problem := zerr.With(zerr.Wrap(f.err, domain.ErrTaskFailure.Error()), "task", f.task.handle.Task().Name)
	c.logger.Error(problem)

	next, cs := c.applyFailure(f.task, problem)
	c.submitRevalidations(next, cs)
}

// applyFailure marks the resources of p invalid with problem. Snapshots the
// task never stored are inserted first, unless a later mutation of the same
// resource was already applied.
func (c *Cache) applyFailure(p pendingTask, problem error) ([]followUp, *cascade) {
	c.mu.Lock()
	defer c.mu.Unlock()

	var failed []string
	switch p.kind {
	case kindDelete:
		return nil, nil
	case kindRevalidate:
		if c.table.has(p.id) && c.applied[p.id] <= p.seq {
			failed = append(failed, p.id)
		}
	default:
		for _, snap := range p.snaps {
			if c.isStale(snap.ID, p.seq) {
				continue
			}
			if c.applied[snap.ID] < p.seq || !c.table.has(snap.ID) {
				c.applied[snap.ID] = p.seq
				c.table.insert(snap, nil)
			}
			failed = append(failed, snap.ID)
		}
		c.metrics.setResources(len(c.table.records))
	}
	if len(failed) == 0 {
		return nil, nil
	}

	for _, id := range failed {
		c.table.records[id].failure = problem
		c.refresh(id)
	}

	cs := newCascade(failed...)
	var next []followUp
	for _, id := range failed {
		next = append(next, c.claim(cs, c.table.graph.dependents(id))...)
	}
	return next, cs
}
