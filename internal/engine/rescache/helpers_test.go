package rescache_test

import (
	"maps"
	"slices"
	"testing"
	"time"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/require"
	"go.trai.ch/rescache/internal/adapters/executor"
	"go.trai.ch/rescache/internal/adapters/telemetry"
	"go.trai.ch/rescache/internal/core/domain"
	"go.trai.ch/rescache/internal/core/ports"
	"go.trai.ch/rescache/internal/engine/rescache"
)

const workRoot = "/work"

// harness pairs an executor with the way a test drives it to quiescence.
type harness struct {
	name   string
	exec   func(t *testing.T) ports.Executor
	settle func(t *testing.T, exec ports.Executor, c *rescache.Cache)
}

func inlineHarness() harness {
	return harness{
		name: "inline",
		exec: func(*testing.T) ports.Executor { return executor.NewInline() },
		settle: func(t *testing.T, _ ports.Executor, c *rescache.Cache) {
			t.Helper()
			// Failures dispatched by a tick may submit more work.
			for range 1000 {
				c.TickPendingWork()
				if !c.HasPendingWork() {
					return
				}
			}
			t.Fatal("inline executor did not settle")
		},
	}
}

func queueHarness() harness {
	return harness{
		name: "queue",
		exec: func(*testing.T) ports.Executor { return executor.NewQueue() },
		settle: func(t *testing.T, exec ports.Executor, c *rescache.Cache) {
			t.Helper()
			q := exec.(*executor.Queue)
			for range 1000 {
				q.Drain()
				c.TickPendingWork()
				if !c.HasPendingWork() {
					return
				}
			}
			t.Fatal("queue did not settle")
		},
	}
}

func poolHarness() harness {
	return harness{
		name: "pool",
		exec: func(t *testing.T) ports.Executor {
			p := executor.NewPool(t.Context(), 4, telemetry.NewNoOpTracer())
			t.Cleanup(func() { _ = p.Close() })
			return p
		},
		settle: func(t *testing.T, _ ports.Executor, c *rescache.Cache) {
			t.Helper()
			require.Eventually(t, func() bool {
				c.TickPendingWork()
				return !c.HasPendingWork()
			}, 5*time.Second, time.Millisecond)
		},
	}
}

func allHarnesses() []harness {
	return []harness{inlineHarness(), queueHarness(), poolHarness()}
}

// world is a cache over an in-memory workspace.
type world struct {
	t     *testing.T
	fs    afero.Fs
	exec  ports.Executor
	cache *rescache.Cache
	h     harness
}

func newWorld(t *testing.T, h harness, opts ...rescache.Option) *world {
	t.Helper()

	fs := afero.NewMemMapFs()
	writeFile(t, fs, "textures/test_bitmap0.png")
	writeFile(t, fs, "textures/test_bitmap1.png")

	prober := ports.FileProberFunc(func(path string) (bool, error) {
		return afero.Exists(fs, path)
	})

	exec := h.exec(t)
	opts = append([]rescache.Option{rescache.WithProber(prober)}, opts...)
	return &world{
		t:     t,
		fs:    fs,
		exec:  exec,
		cache: rescache.New(workRoot, exec, opts...),
		h:     h,
	}
}

func writeFile(t *testing.T, fs afero.Fs, rel string) {
	t.Helper()
	require.NoError(t, afero.WriteFile(fs, domain.ResolveFileURI(workRoot, rel), []byte("data"), 0o644))
}

func (w *world) settle() {
	w.t.Helper()
	w.h.settle(w.t, w.exec, w.cache)
}

// reports drains the update queue into a map, failing on duplicate IDs.
func (w *world) reports() map[string]bool {
	w.t.Helper()
	out := make(map[string]bool)
	for _, u := range w.cache.DequeuePendingUpdates() {
		r, ok := u.(domain.AnalyzeResourceReport)
		require.True(w.t, ok, "unexpected update %T", u)
		_, dup := out[r.ID]
		require.False(w.t, dup, "duplicate report for %s", r.ID)
		out[r.ID] = r.Valid
	}
	return out
}

// load builds the fixture workspace and discards the initial reports.
func (w *world) load() {
	w.t.Helper()
	w.cache.BuildCache(fixture())
	w.settle()
	got := w.reports()
	require.Len(w.t, got, len(fixture()))
	for id, valid := range got {
		require.True(w.t, valid, "%s should be valid after load", id)
	}
}

func material(id, texture string) domain.Resource {
	return domain.Resource{ID: id, Name: id, Content: &domain.Material{
		Textures: []string{"ws://textures/" + texture},
	}}
}

func entity(id string, materials ...string) domain.Resource {
	e := &domain.Entity{}
	for i, m := range materials {
		e.Nodes = append(e.Nodes, domain.EntityNode{
			Name:     id + "_node" + string(rune('0'+i)),
			Drawable: &domain.DrawableItem{MaterialID: m},
		})
	}
	return domain.Resource{ID: id, Name: id, Content: e}
}

func scene(id string, entities ...string) domain.Resource {
	s := &domain.Scene{}
	for _, e := range entities {
		s.Placements = append(s.Placements, domain.Placement{Name: e, EntityID: e})
	}
	return domain.Resource{ID: id, Name: id, Content: s}
}

// fixture is a small workspace: two materials backed by textures, one
// entity per material, and two scenes placing them.
func fixture() []domain.Resource {
	return []domain.Resource{
		material("material0", "test_bitmap0.png"),
		material("material1", "test_bitmap1.png"),
		entity("entity0", "material0"),
		entity("entity1", "material1"),
		scene("scene0", "entity0"),
		scene("scene1", "entity0", "entity1"),
	}
}

// referenceValidity evaluates validity from scratch: a resource is invalid
// iff some resource reachable from it over required references, itself
// included, has a missing required file or a missing required resource.
func referenceValidity(t *testing.T, fs afero.Fs, resources map[string]domain.Resource) map[string]bool {
	t.Helper()

	broken := make(map[string]bool, len(resources))
	for id, res := range resources {
		snap := domain.NewSnapshot(res)
		for _, dep := range snap.RequiredResources() {
			if _, ok := resources[dep]; !ok {
				broken[id] = true
			}
		}
		for _, uri := range snap.RequiredFiles() {
			ok, err := afero.Exists(fs, domain.ResolveFileURI(workRoot, uri))
			require.NoError(t, err)
			if !ok {
				broken[id] = true
			}
		}
	}

	out := make(map[string]bool, len(resources))
	for _, start := range slices.Sorted(maps.Keys(resources)) {
		seen := map[string]bool{start: true}
		stack := []string{start}
		valid := true
		for len(stack) > 0 && valid {
			id := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			if broken[id] {
				valid = false
				break
			}
			for _, dep := range domain.NewSnapshot(resources[id]).RequiredResources() {
				if _, ok := resources[dep]; ok && !seen[dep] {
					seen[dep] = true
					stack = append(stack, dep)
				}
			}
		}
		out[start] = valid
	}
	return out
}
