// Package app implements the application layer for rescache.
package app

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"time"

	"go.trai.ch/rescache/internal/adapters/executor"
	"go.trai.ch/rescache/internal/core/domain"
	"go.trai.ch/rescache/internal/core/ports"
	"go.trai.ch/rescache/internal/engine/rescache"
	"go.trai.ch/zerr"
)

// DefaultPollInterval is how often task handles are polled while work is pending.
const DefaultPollInterval = 10 * time.Millisecond

// App represents the main application logic.
type App struct {
	loader       ports.WorkspaceLoader
	executors    *executor.Factory
	caches       *rescache.Factory
	watcher      ports.Watcher
	logger       ports.Logger
	stdout       io.Writer
	pollInterval time.Duration
}

// New creates a new App instance.
func New(
	loader ports.WorkspaceLoader,
	executors *executor.Factory,
	caches *rescache.Factory,
	watcher ports.Watcher,
	log ports.Logger,
) *App {
	return &App{
		loader:       loader,
		executors:    executors,
		caches:       caches,
		watcher:      watcher,
		logger:       log,
		stdout:       os.Stdout,
		pollInterval: DefaultPollInterval,
	}
}

// WithOutput sets where results are printed.
func (a *App) WithOutput(w io.Writer) *App {
	a.stdout = w
	return a
}

// WithPollInterval sets how often pending tasks are polled.
func (a *App) WithPollInterval(d time.Duration) *App {
	a.pollInterval = d
	return a
}

// CheckOptions configures a validation run.
type CheckOptions struct {
	// Dir is where the manifest search starts. Empty means the working directory.
	Dir string
	// Workers overrides the manifest's worker count when positive.
	Workers int
	// Strict makes cache API misuse panic.
	Strict bool
}

// Check validates every resource of the workspace once and prints the
// result. It returns domain.ErrInvalidResources if any resource is invalid.
func (a *App) Check(ctx context.Context, opts CheckOptions) error {
	s, err := a.open(ctx, opts)
	if err != nil {
		return err
	}
	defer s.close()

	if err := s.build(ctx); err != nil {
		return err
	}

	if invalid := s.renderAll(); invalid > 0 {
		return domain.ErrInvalidResources
	}
	return nil
}

func (a *App) open(ctx context.Context, opts CheckOptions) (*session, error) {
	dir := opts.Dir
	if dir == "" {
		dir = "."
	}
	dir, err := filepath.Abs(dir)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to resolve directory"), "dir", opts.Dir)
	}

	ws, err := a.loader.Load(dir)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to load workspace")
	}

	workers := ws.Workers
	if opts.Workers > 0 {
		workers = opts.Workers
	}

	return newSession(ctx, a, dir, ws, workers, opts.Strict), nil
}
