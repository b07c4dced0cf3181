package app

import (
	"context"
	"fmt"
	"slices"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.trai.ch/rescache/internal/adapters/executor"
	"go.trai.ch/rescache/internal/adapters/watcher"
	"go.trai.ch/rescache/internal/core/domain"
	"go.trai.ch/rescache/internal/engine/rescache"
	"go.trai.ch/zerr"
)

// session is one loaded workspace with its cache and worker pool.
type session struct {
	app      *App
	dir      string
	ws       *domain.Workspace
	pool     *executor.Pool
	cache    *rescache.Cache
	registry *prometheus.Registry
	renderer *Renderer
	index    *watcher.Index
	lastTask string
}

func newSession(ctx context.Context, a *App, dir string, ws *domain.Workspace, workers int, strict bool) *session {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	pool := a.executors.NewPool(ctx, workers)
	cache := a.caches.New(ws.Root, pool,
		rescache.WithStrict(strict),
		rescache.WithMetrics(rescache.NewMetrics(reg)),
	)

	index := watcher.NewIndex(ws.Root)
	for _, res := range ws.Resources {
		index.Update(res)
	}

	return &session{
		app:      a,
		dir:      dir,
		ws:       ws,
		pool:     pool,
		cache:    cache,
		registry: reg,
		renderer: NewRenderer(a.stdout),
		index:    index,
	}
}

func (s *session) close() {
	if err := s.pool.Close(); err != nil {
		s.app.logger.Error(err)
	}
}

// build submits the whole workspace and waits until the cache is quiescent.
func (s *session) build(ctx context.Context) error {
	s.app.logger.Debug(fmt.Sprintf("validating %d resources in %s", len(s.ws.Resources), s.ws.Root))
	s.cache.BuildCache(s.ws.Resources)
	return s.settle(ctx)
}

func (s *session) settle(ctx context.Context) error {
	ticker := time.NewTicker(s.app.pollInterval)
	defer ticker.Stop()

	for {
		s.cache.TickPendingWork()
		if !s.cache.HasPendingWork() {
			return nil
		}
		s.progress()

		select {
		case <-ctx.Done():
			return zerr.Wrap(ctx.Err(), "validation interrupted")
		case <-ticker.C:
		}
	}
}

// progress logs the oldest outstanding task whenever it changes.
func (s *session) progress() {
	task, ok := s.cache.FirstPendingTask()
	if !ok || task.Name == s.lastTask {
		return
	}
	s.lastTask = task.Name
	s.app.logger.Debug(task.Description)
}

// renderAll prints every resource in manifest order and returns how many
// are invalid. Queued reports are dropped.
func (s *session) renderAll() int {
	s.cache.DequeuePendingUpdates()

	invalid := 0
	for _, res := range s.ws.Resources {
		valid, _ := s.cache.IsValid(res.ID)
		if !valid {
			invalid++
		}
		s.renderer.Resource(res.ID, valid, s.cache.Problem(res.ID))
	}
	s.renderer.Summary(len(s.ws.Resources), invalid)
	return invalid
}

// renderUpdates prints the reports queued since the last call.
func (s *session) renderUpdates() {
	for _, u := range s.cache.DequeuePendingUpdates() {
		if r, ok := u.(domain.AnalyzeResourceReport); ok {
			s.renderer.Resource(r.ID, r.Valid, s.cache.Problem(r.ID))
		}
	}
}

// loop applies debounced file changes and prints reports until ctx is done.
func (s *session) loop(ctx context.Context, batches <-chan []string) error {
	ticker := time.NewTicker(s.app.pollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case paths := <-batches:
			s.apply(paths)
		case <-ticker.C:
			s.cache.TickPendingWork()
			s.renderUpdates()
			s.progress()
		}
	}
}

// apply re-submits the resources depending on any of paths. A change to the
// manifest reloads the workspace first.
func (s *session) apply(paths []string) {
	if slices.Contains(paths, s.ws.Manifest) {
		s.reload()
	}
	for _, id := range s.index.Affected(paths) {
		if res, ok := s.ws.Resource(id); ok {
			s.app.logger.Debug("re-analyzing " + id)
			s.cache.AddResource(res)
		}
	}
}

// reload loads the manifest again, removes the resources it no longer
// declares and submits the rest as one batch.
func (s *session) reload() {
	ws, err := s.app.loader.Load(s.dir)
	if err != nil {
		s.app.logger.Error(zerr.Wrap(err, "failed to reload workspace"))
		return
	}
	if ws.Root != s.ws.Root {
		s.app.logger.Warn("workspace root changed to " + ws.Root + ", restart to apply it")
		ws.Root = s.ws.Root
	}

	declared := make(map[string]bool, len(ws.Resources))
	for _, res := range ws.Resources {
		declared[res.ID] = true
	}
	for _, res := range s.ws.Resources {
		if !declared[res.ID] {
			s.cache.DelResource(res.ID)
			s.index.Remove(res.ID)
			s.renderer.Removed(res.ID)
		}
	}
	for _, res := range ws.Resources {
		s.index.Update(res)
	}

	s.app.logger.Info(fmt.Sprintf("reloaded %s: %d resources", ws.Manifest, len(ws.Resources)))
	s.cache.BuildCache(ws.Resources)
	s.ws = ws
}
