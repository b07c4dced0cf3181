package rescache

import (
	"go.trai.ch/rescache/internal/core/domain"
	"go.trai.ch/zerr"
)

// analyze is the body of an Analyze task: it stores snap and validates it,
// then revalidates everything that depends on it.
func (c *Cache) analyze(snap *domain.Snapshot, seq uint64) error {
	fileProblem := c.probeFiles(snap)
	next, cs := c.applySnapshot(snap, seq, fileProblem)
	c.submitRevalidations(next, cs)
	return nil
}

func (c *Cache) applySnapshot(snap *domain.Snapshot, seq uint64, fileProblem error) ([]followUp, *cascade) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.isStale(snap.ID, seq) {
		return nil, nil
	}
	c.applied[snap.ID] = seq
	dependents := c.table.insert(snap, fileProblem)
	c.metrics.setResources(len(c.table.records))
	c.refresh(snap.ID)

	cs := newCascade(snap.ID)
	return c.claim(cs, dependents), cs
}

// revalidate is the body of a Revalidate task. A resource deleted since the
// task was submitted is skipped.
func (c *Cache) revalidate(id string, cs *cascade) error {
	next := c.applyRevalidate(id, cs)
	c.submitRevalidations(next, cs)
	return nil
}

func (c *Cache) applyRevalidate(id string, cs *cascade) []followUp {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.table.has(id) {
		c.logger.Debug("skipping revalidation of removed resource " + id)
		return nil
	}
	c.refresh(id)
	return c.claim(cs, c.table.graph.dependents(id))
}

// remove is the body of a Delete task. No report is emitted for id itself.
func (c *Cache) remove(id string, seq uint64) error {
	next, cs := c.applyRemove(id, seq)
	c.submitRevalidations(next, cs)
	return nil
}

func (c *Cache) applyRemove(id string, seq uint64) ([]followUp, *cascade) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.isStale(id, seq) {
		return nil, nil
	}
	c.applied[id] = seq
	dependents, ok := c.table.remove(id)
	if !ok {
		return nil, nil
	}
	c.metrics.setResources(len(c.table.records))

	cs := newCascade(id)
	return c.claim(cs, dependents), cs
}

// build is the body of a Build task. Every snapshot is inserted before any
// of them is validated so that forward references resolve.
func (c *Cache) build(snaps []*domain.Snapshot, seq uint64) error {
	fileProblems := make([]error, len(snaps))
	for i, snap := range snaps {
		fileProblems[i] = c.probeFiles(snap)
	}
	next, cs := c.applyBuild(snaps, seq, fileProblems)
	c.submitRevalidations(next, cs)
	return nil
}

func (c *Cache) applyBuild(snaps []*domain.Snapshot, seq uint64, fileProblems []error) ([]followUp, *cascade) {
	c.mu.Lock()
	defer c.mu.Unlock()

	cs := newCascade()
	var next []followUp
	for i, snap := range snaps {
		if c.isStale(snap.ID, seq) {
			continue
		}
		c.applied[snap.ID] = seq
		c.table.insert(snap, fileProblems[i])
		if cs.mark(snap.ID) {
			next = append(next, followUp{id: snap.ID, seq: seq})
		}
	}
	c.metrics.setResources(len(c.table.records))
	return next, cs
}

// isStale reports whether a mutation submitted after seq was already applied to id.
func (c *Cache) isStale(id string, seq uint64) bool {
	if c.applied[id] > seq {
		c.metrics.stale()
		c.logger.Debug("dropping stale task for " + id)
		return true
	}
	return false
}

// refresh recomputes the validity of id and pushes a report if it differs
// from the last one reported. Must hold c.mu and id must have a record.
func (c *Cache) refresh(id string) {
	rec := c.table.records[id]
	problem := c.table.evaluate(id)
	rec.valid = problem == nil
	rec.problem = problem
	if problem != nil {
		c.logger.Debug(id + " is invalid: " + problem.Error())
	}

	if rec.reported && rec.lastReport == rec.valid {
		c.metrics.suppressed()
		return
	}
	rec.reported = true
	rec.lastReport = rec.valid
	c.updates.push(domain.AnalyzeResourceReport{ID: id, Valid: rec.valid})
	c.metrics.reported(rec.valid)
}

// probeFiles checks the required files of snap. It runs outside the state lock.
func (c *Cache) probeFiles(snap *domain.Snapshot) error {
	for _, uri := range snap.RequiredFiles() {
		path := domain.ResolveFileURI(c.root, uri)
		ok, err := c.prober.Exists(path)
		if err != nil {
			return zerr.With(zerr.With(zerr.Wrap(domain.ErrMissingFile, uri), "path", path), "probe_error", err.Error())
		}
		if !ok {
			return zerr.With(zerr.Wrap(domain.ErrMissingFile, uri), "path", path)
		}
	}
	return nil
}

// evaluate computes the validity of id against the current table and returns
// the reason it is invalid, or nil.
//
// A resource is invalid iff it is broken itself or it can reach a broken
// resource through required references. Every resource is visited at most
// once, so members of a reference cycle are valid together unless one of
// them reaches a broken resource.
func (t *table) evaluate(id string) error {
	rec := t.records[id]
	if err := t.localProblem(rec); err != nil {
		return err
	}

	visited := map[string]struct{}{id: {}}
	for _, dep := range rec.snapshot.RequiredResources() {
		if t.reachesBroken(dep, visited) {
			return zerr.With(zerr.Wrap(domain.ErrInvalidDependency, dep), "dependency", dep)
		}
	}
	return nil
}

// localProblem returns why rec is broken without looking past its direct references.
func (t *table) localProblem(rec *record) error {
	if rec.failure != nil {
		return rec.failure
	}
	for _, dep := range rec.snapshot.RequiredResources() {
		if !t.has(dep) {
			return zerr.With(zerr.Wrap(domain.ErrMissingDependency, dep), "dependency", dep)
		}
	}
	return rec.fileProblem
}

// reachesBroken reports whether id, which must have a record, is broken or
// reaches a broken resource.
func (t *table) reachesBroken(id string, visited map[string]struct{}) bool {
	if _, ok := visited[id]; ok {
		return false
	}
	visited[id] = struct{}{}

	rec := t.records[id]
	if t.localProblem(rec) != nil {
		return true
	}
	for _, dep := range rec.snapshot.RequiredResources() {
		if t.reachesBroken(dep, visited) {
			return true
		}
	}
	return false
}
