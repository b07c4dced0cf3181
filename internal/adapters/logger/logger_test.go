package logger_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"strings"
	"sync"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/rescache/internal/adapters/logger"
	"go.trai.ch/rescache/internal/core/domain"
	"go.trai.ch/zerr"
)

// newTestLogger creates a logger writing to a buffer without ANSI escape codes.
func newTestLogger(t *testing.T) (*logger.Logger, *bytes.Buffer) {
	t.Helper()
	t.Setenv("NO_COLOR", "1")

	buf := &bytes.Buffer{}
	lg := logger.New().(*logger.Logger)
	lg.SetOutput(buf)
	return lg, buf
}

func TestLogger_Messages(t *testing.T) {
	tests := []struct {
		name       string
		log        func(lg *logger.Logger)
		goldenName string
	}{
		{
			name:       "info",
			log:        func(lg *logger.Logger) { lg.Info("loaded 6 resources") },
			goldenName: "info_basic",
		},
		{
			name:       "warn",
			log:        func(lg *logger.Logger) { lg.Warn("AddResource called with an empty resource id") },
			goldenName: "warn_basic",
		},
		{
			name: "debug when verbose",
			log: func(lg *logger.Logger) {
				lg.SetVerbose(true)
				lg.Debug("analyze:material0 finished in 1ms")
			},
			goldenName: "debug_verbose",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lg, buf := newTestLogger(t)
			tt.log(lg)

			g := goldie.New(t)
			g.Assert(t, tt.goldenName, buf.Bytes())
		})
	}
}

func TestLogger_DebugHiddenByDefault(t *testing.T) {
	lg, buf := newTestLogger(t)
	lg.Debug("scene0 is invalid")
	assert.Empty(t, buf.String())

	lg.SetVerbose(true)
	lg.SetVerbose(false)
	lg.Debug("scene0 is invalid")
	assert.Empty(t, buf.String())
}

func TestLogger_Error(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		goldenName string
	}{
		{
			name:       "standard error",
			err:        os.ErrPermission,
			goldenName: "error_simple",
		},
		{
			name: "zerr chain",
			err: zerr.Wrap(
				zerr.Wrap(errors.New("database connection failed"), "failed to load manifest"),
				"failed to check workspace",
			),
			goldenName: "error_chain_zerr",
		},
		{
			name: "missing file",
			err: zerr.With(
				zerr.Wrap(domain.ErrMissingFile, "ws://textures/test_bitmap0.png"),
				"path", "/work/textures/test_bitmap0.png",
			),
			goldenName: "error_missing_file",
		},
		{
			name:       "metadata on a standard error",
			err:        zerr.With(errors.New("connection refused"), "retry", 3),
			goldenName: "error_metadata_carried",
		},
		{
			name:       "multiline",
			err:        errors.New("yaml: unmarshal errors:\n  line 3: cannot unmarshal"),
			goldenName: "error_multiline",
		},
		{
			name: "sorted metadata",
			err: zerr.With(
				zerr.With(zerr.New("invalid resources found"), "workspace", "/work"),
				"count", 2,
			),
			goldenName: "error_metadata_sorted",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lg, buf := newTestLogger(t)
			lg.Error(tt.err)

			g := goldie.New(t)
			g.Assert(t, tt.goldenName, buf.Bytes())
		})
	}
}

func TestLogger_Error_Nil(t *testing.T) {
	lg, buf := newTestLogger(t)
	lg.Error(nil)
	assert.Empty(t, buf.String())
}

func TestLogger_SetJSON(t *testing.T) {
	lg, buf := newTestLogger(t)
	lg.SetJSON(true)

	lg.Error(zerr.With(zerr.Wrap(domain.ErrMissingDependency, "material0"), "dependency", "material0"))

	var record map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &record))
	assert.Equal(t, "ERROR", record["level"])
	assert.Equal(t, "operation failed", record["msg"])
	assert.Contains(t, buf.String(), "material0")
	assert.NotContains(t, buf.String(), "✗")
}

func TestLogger_FormatSwitching(t *testing.T) {
	lg, buf := newTestLogger(t)

	lg.Error(errors.New("pretty"))
	pretty := buf.String()
	buf.Reset()

	lg.SetJSON(true)
	lg.Error(errors.New("json"))
	jsonOut := buf.String()
	buf.Reset()

	lg.SetJSON(false)
	lg.Error(errors.New("pretty again"))
	back := buf.String()

	assert.Contains(t, pretty, "✗")
	assert.Contains(t, jsonOut, `"error"`)
	assert.NotContains(t, jsonOut, "✗")
	assert.Contains(t, back, "✗ Error: pretty again")
}

func TestLogger_SetOutputNil(t *testing.T) {
	require.NotPanics(t, func() {
		lg := logger.New().(*logger.Logger)
		lg.SetOutput(nil)
	})
}

func TestLogger_ConcurrentAccess(t *testing.T) {
	lg, buf := newTestLogger(t)

	var wg sync.WaitGroup
	for range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			lg.Info("concurrent info")
			lg.Warn("concurrent warn")
			lg.Error(errors.New("concurrent error"))
			lg.Debug("hidden")
		}()
	}
	wg.Add(1)
	go func() {
		defer wg.Done()
		lg.SetVerbose(false)
		lg.SetJSON(false)
	}()
	wg.Wait()

	assert.Equal(t, 24, strings.Count(buf.String(), "\n"))
}
