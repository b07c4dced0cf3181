package rescache

import (
	"maps"
	"slices"

	"go.trai.ch/zerr"
)

var errTransposeViolation = zerr.New("dependency graph transpose violated")

// graph is the adjacency structure between resources.
//
// uses holds the outgoing resource references of every resource in the
// table. usedBy is the exact transpose of uses; it is keyed by any referenced
// ID, including IDs that have no table entry, so that dependents are found
// once a missing resource appears or a deleted one is re-added.
type graph struct {
	uses   map[string][]string
	usedBy map[string]map[string]struct{}
}

func newGraph() *graph {
	return &graph{
		uses:   make(map[string][]string),
		usedBy: make(map[string]map[string]struct{}),
	}
}

// link sets the outgoing edges of id, replacing any previous edges.
func (g *graph) link(id string, targets []string) {
	g.unlink(id)
	g.uses[id] = slices.Clone(targets)
	for _, target := range targets {
		set, ok := g.usedBy[target]
		if !ok {
			set = make(map[string]struct{})
			g.usedBy[target] = set
		}
		set[id] = struct{}{}
	}
}

// unlink removes the outgoing edges of id.
func (g *graph) unlink(id string) {
	for _, target := range g.uses[id] {
		set := g.usedBy[target]
		delete(set, id)
		if len(set) == 0 {
			delete(g.usedBy, target)
		}
	}
	delete(g.uses, id)
}

// dependents returns the sorted IDs that reference id.
func (g *graph) dependents(id string) []string {
	return slices.Sorted(maps.Keys(g.usedBy[id]))
}

// checkTranspose verifies that usedBy is the exact transpose of uses.
func (g *graph) checkTranspose() error {
	for a, targets := range g.uses {
		for _, b := range targets {
			if _, ok := g.usedBy[b][a]; !ok {
				return zerr.With(zerr.With(zerr.Wrap(errTransposeViolation, "missing used-by edge"), "from", a), "to", b)
			}
		}
	}
	for b, set := range g.usedBy {
		if len(set) == 0 {
			return zerr.With(zerr.Wrap(errTransposeViolation, "empty used-by set"), "id", b)
		}
		for a := range set {
			if !slices.Contains(g.uses[a], b) {
				return zerr.With(zerr.With(zerr.Wrap(errTransposeViolation, "stale used-by edge"), "from", a), "to", b)
			}
		}
	}
	return nil
}
