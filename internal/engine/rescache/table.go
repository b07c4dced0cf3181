package rescache

import (
	"maps"
	"slices"

	"go.trai.ch/rescache/internal/core/domain"
)

// record is the validity state of one resource known to the cache.
type record struct {
	snapshot *domain.Snapshot
	valid    bool
	// problem is the reason the resource is invalid, nil when valid.
	problem error
	// fileProblem is the outcome of the last probe of the required files.
	fileProblem error
	// failure is set when an analysis task for this resource failed.
	failure error

	reported   bool
	lastReport bool
}

// table is the validity table together with the dependency graph.
// It is not safe for concurrent use; the cache guards it with its state lock.
type table struct {
	records map[string]*record
	graph   *graph
}

func newTable() *table {
	return &table{
		records: make(map[string]*record),
		graph:   newGraph(),
	}
}

// insert stores snap as the current snapshot of its resource, replacing the
// outgoing edges atomically, and returns the resources that use it.
func (t *table) insert(snap *domain.Snapshot, fileProblem error) []string {
	rec, ok := t.records[snap.ID]
	if !ok {
		rec = &record{}
		t.records[snap.ID] = rec
	}
	if !ok || rec.snapshot.Digest != snap.Digest {
		t.graph.link(snap.ID, snap.Uses())
	}
	rec.snapshot = snap
	rec.fileProblem = fileProblem
	rec.failure = nil
	return t.graph.dependents(snap.ID)
}

// remove deletes the resource and its outgoing edges and returns the
// resources that used it. The second result is false if id was absent.
func (t *table) remove(id string) ([]string, bool) {
	if _, ok := t.records[id]; !ok {
		return nil, false
	}
	dependents := t.graph.dependents(id)
	t.graph.unlink(id)
	delete(t.records, id)
	return dependents, true
}

// isValid returns the last computed validity of id.
func (t *table) isValid(id string) (valid, ok bool) {
	rec, ok := t.records[id]
	if !ok {
		return false, false
	}
	return rec.valid, true
}

func (t *table) has(id string) bool {
	_, ok := t.records[id]
	return ok
}

func (t *table) ids() []string {
	return slices.Sorted(maps.Keys(t.records))
}

func (t *table) reset() {
	t.records = make(map[string]*record)
	t.graph = newGraph()
}
