package watcher_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/rescache/internal/adapters/fs"
	"go.trai.ch/rescache/internal/adapters/watcher"
	"go.trai.ch/rescache/internal/core/ports"
	"go.trai.ch/rescache/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

func startWatcher(t *testing.T, root string) (<-chan ports.WatchEvent, *watcher.Watcher) {
	t.Helper()
	ctrl := gomock.NewController(t)
	mockLogger := mocks.NewMockLogger(ctrl)
	mockLogger.EXPECT().Error(gomock.Any()).AnyTimes()

	w := watcher.NewWatcher(fs.NewOsWalker(), mockLogger)
	ctx, cancel := context.WithCancel(context.Background())
	require.NoError(t, w.Start(ctx, root))

	out := make(chan ports.WatchEvent, 64)
	done := make(chan struct{})
	go func() {
		defer close(done)
		for ev := range w.Events() {
			select {
			case out <- ev:
			default:
			}
		}
	}()

	t.Cleanup(func() {
		cancel()
		_ = w.Stop()
		<-done
	})
	return out, w
}

func waitFor(t *testing.T, events <-chan ports.WatchEvent, path string) ports.WatchEvent {
	t.Helper()
	deadline := time.After(5 * time.Second)
	for {
		select {
		case ev := <-events:
			if ev.Path == path {
				return ev
			}
		case <-deadline:
			t.Fatalf("no event for %s", path)
		}
	}
}

func TestWatcher_ReportsFileChanges(t *testing.T) {
	root := t.TempDir()
	events, _ := startWatcher(t, root)

	path := filepath.Join(root, "test_bitmap0.png")
	require.NoError(t, os.WriteFile(path, []byte("data"), 0o644))
	ev := waitFor(t, events, path)
	assert.Contains(t, []ports.WatchOp{ports.OpCreate, ports.OpWrite}, ev.Operation)

	require.NoError(t, os.Remove(path))
	for {
		ev = waitFor(t, events, path)
		if ev.Operation == ports.OpRemove {
			break
		}
	}
}

func TestWatcher_WatchesNewDirectories(t *testing.T) {
	root := t.TempDir()
	events, _ := startWatcher(t, root)

	dir := filepath.Join(root, "textures")
	require.NoError(t, os.Mkdir(dir, 0o755))
	ev := waitFor(t, events, dir)
	assert.Equal(t, ports.OpCreate, ev.Operation)

	// The new directory is added after its create event is delivered.
	path := filepath.Join(dir, "test_bitmap1.png")
	require.Eventually(t, func() bool {
		if err := os.WriteFile(path, []byte("data"), 0o644); err != nil {
			return false
		}
		select {
		case ev := <-events:
			return ev.Path == path
		case <-time.After(100 * time.Millisecond):
			return false
		}
	}, 5*time.Second, 10*time.Millisecond)
}

func TestWatcher_StartTwice(t *testing.T) {
	root := t.TempDir()
	_, w := startWatcher(t, root)
	require.Error(t, w.Start(context.Background(), root))
}

func TestWatcher_StopBeforeStart(t *testing.T) {
	w := watcher.NewWatcher(fs.NewOsWalker(), nil)
	assert.NoError(t, w.Stop())
}
