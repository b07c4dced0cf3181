// Package rescache implements the resource dependency cache: an incrementally
// updated index of resources, the references between them and their validity.
//
// Mutating calls never block; they snapshot the resource and submit a task to
// the executor. Validation runs in those tasks under a single state lock and
// pushes a report whenever a resource's validity differs from what was last
// reported for it. The owner polls task handles with TickPendingWork and
// drains reports with DequeuePendingUpdates.
package rescache

import (
	"slices"
	"sync"
	"sync/atomic"

	"go.trai.ch/rescache/internal/core/domain"
	"go.trai.ch/rescache/internal/core/ports"
)

// Cache is the resource dependency cache.
type Cache struct {
	root    string
	exec    ports.Executor
	prober  ports.FileProber
	logger  ports.Logger
	metrics *Metrics
	strict  bool

	// seq orders mutations of the same resource by submission.
	seq atomic.Uint64
	// inflight counts submissions that are not in pending yet.
	inflight atomic.Int64

	mu    sync.Mutex
	table *table
	// applied is the sequence number of the last mutation applied per ID.
	// Entries of removed IDs are pruned once no task is outstanding.
	applied map[string]uint64

	pendingMu sync.Mutex
	pending   []pendingTask

	updates updateQueue
}

// GraphNode is the diagnostics view of one resource in the dependency graph.
type GraphNode struct {
	// Uses lists every resource the node references, present or not.
	Uses []string
	// UsedBy lists the resources in the table that reference the node.
	UsedBy []string
}

// New creates a cache whose file references resolve against rootPath and
// whose tasks run on exec.
func New(rootPath string, exec ports.Executor, opts ...Option) *Cache {
	c := &Cache{
		root:    rootPath,
		exec:    exec,
		prober:  osProber(),
		logger:  nopLogger{},
		table:   newTable(),
		applied: make(map[string]uint64),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// AddResource submits res for analysis. A resource with the same ID is replaced.
func (c *Cache) AddResource(res domain.Resource) {
	if res.ID == "" {
		c.misuse("AddResource called with an empty resource id")
		return
	}
	snap := domain.NewSnapshot(res)
	c.inflight.Add(1)
	defer c.inflight.Add(-1)
	seq := c.seq.Add(1)
	c.submit(kindAnalyze, snap.ID, seq, []*domain.Snapshot{snap}, func() error {
		return c.analyze(snap, seq)
	})
}

// DelResource submits the removal of id. Removing an unknown ID is a no-op.
func (c *Cache) DelResource(id string) {
	if id == "" {
		c.misuse("DelResource called with an empty resource id")
		return
	}
	c.inflight.Add(1)
	defer c.inflight.Add(-1)
	seq := c.seq.Add(1)
	c.submit(kindDelete, id, seq, nil, func() error {
		return c.remove(id, seq)
	})
}

// BuildCache submits a batch of resources. All of them are inserted before
// any is validated, so references between them resolve regardless of order.
func (c *Cache) BuildCache(all []domain.Resource) {
	snaps := make([]*domain.Snapshot, 0, len(all))
	for _, res := range all {
		if res.ID == "" {
			c.misuse("BuildCache called with an empty resource id")
			continue
		}
		snaps = append(snaps, domain.NewSnapshot(res))
	}
	if len(snaps) == 0 {
		return
	}
	c.inflight.Add(1)
	defer c.inflight.Add(-1)
	seq := c.seq.Add(1)
	c.submit(kindBuild, "", seq, snaps, func() error {
		return c.build(snaps, seq)
	})
}

// HasPendingWork reports whether any submitted task has not been collected
// by TickPendingWork yet.
func (c *Cache) HasPendingWork() bool {
	c.pendingMu.Lock()
	defer c.pendingMu.Unlock()
	return len(c.pending) > 0
}

// TickPendingWork polls every outstanding task once and drops the finished
// ones. A failed task marks its resource invalid.
func (c *Cache) TickPendingWork() {
	for _, f := range c.collect() {
		c.fail(f)
	}
	c.pruneApplied()
}

// pruneApplied forgets the sequence numbers of removed IDs. With nothing
// outstanding no older mutation of them can still be applied.
func (c *Cache) pruneApplied() {
	c.pendingMu.Lock()
	defer c.pendingMu.Unlock()
	if len(c.pending) > 0 || c.inflight.Load() > 0 {
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	for id := range c.applied {
		if !c.table.has(id) {
			delete(c.applied, id)
		}
	}
}

// FirstPendingTask returns the oldest task that has not been collected yet.
func (c *Cache) FirstPendingTask() (ports.Task, bool) {
	c.pendingMu.Lock()
	defer c.pendingMu.Unlock()
	if len(c.pending) == 0 {
		return ports.Task{}, false
	}
	return c.pending[0].handle.Task(), true
}

// DequeuePendingUpdates removes and returns all queued updates.
func (c *Cache) DequeuePendingUpdates() []domain.ResourceUpdate {
	return c.updates.drain()
}

// IsValid returns the last computed validity of id. The second result is
// false if id is not in the table.
func (c *Cache) IsValid(id string) (valid, ok bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.table.isValid(id)
}

// Problem returns why id is invalid, or nil if it is valid or unknown.
func (c *Cache) Problem(id string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if rec, ok := c.table.records[id]; ok {
		return rec.problem
	}
	return nil
}

// GetResourceTable returns a copy of every resource in the table.
// It is a diagnostics view and must only be called while HasPendingWork is false.
func (c *Cache) GetResourceTable() map[string]domain.Resource {
	c.checkQuiescent("GetResourceTable")

	c.mu.Lock()
	defer c.mu.Unlock()
	out := make(map[string]domain.Resource, len(c.table.records))
	for id, rec := range c.table.records {
		out[id] = rec.snapshot.Resource.Clone()
	}
	return out
}

// GetResourceGraph returns the dependency graph of the resources in the table.
// It is a diagnostics view and must only be called while HasPendingWork is false.
func (c *Cache) GetResourceGraph() map[string]GraphNode {
	c.checkQuiescent("GetResourceGraph")

	c.mu.Lock()
	defer c.mu.Unlock()
	out := make(map[string]GraphNode, len(c.table.records))
	for _, id := range c.table.ids() {
		node := GraphNode{Uses: slices.Clone(c.table.graph.uses[id])}
		for _, dep := range c.table.graph.dependents(id) {
			if c.table.has(dep) {
				node.UsedBy = append(node.UsedBy, dep)
			}
		}
		out[id] = node
	}
	return out
}

// ClearCache drops every resource. It must only be called while HasPendingWork is false.
func (c *Cache) ClearCache() {
	c.checkQuiescent("ClearCache")

	c.mu.Lock()
	defer c.mu.Unlock()
	c.table.reset()
	clear(c.applied)
	c.metrics.setResources(0)
}

func (c *Cache) checkQuiescent(op string) {
	if c.HasPendingWork() {
		c.misuse(op + " called while work is pending")
	}
}

func (c *Cache) misuse(msg string) {
	if c.strict {
		panic(msg)
	}
	c.logger.Warn(msg)
}
