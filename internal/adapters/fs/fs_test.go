package fs_test

import (
	"errors"
	"os"
	"path/filepath"
	"slices"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/rescache/internal/adapters/fs"
)

func TestProber_Exists(t *testing.T) {
	mem := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(mem, "/work/textures/test_bitmap0.png", []byte("png"), 0o644))
	prober := fs.NewProber(mem)

	tests := []struct {
		name string
		path string
		want bool
	}{
		{name: "existing file", path: "/work/textures/test_bitmap0.png", want: true},
		{name: "existing directory", path: "/work/textures", want: true},
		{name: "missing file", path: "/work/textures/test_bitmap1.png", want: false},
		{name: "missing directory", path: "/elsewhere/file.png", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := prober.Exists(tt.path)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

type failingFs struct {
	afero.Fs
}

func (failingFs) Stat(string) (os.FileInfo, error) {
	return nil, errors.New("input/output error")
}

func TestProber_StatError(t *testing.T) {
	prober := fs.NewProber(failingFs{Fs: afero.NewMemMapFs()})

	ok, err := prober.Exists("/work/a.png")
	require.Error(t, err)
	assert.False(t, ok)
	assert.Contains(t, err.Error(), "failed to stat file")
}

func TestProber_OsFilesystem(t *testing.T) {
	tmpDir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(tmpDir, "a.png"), []byte("png"), 0o600))

	prober := fs.NewOsProber()

	ok, err := prober.Exists(filepath.Join(tmpDir, "a.png"))
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = prober.Exists(filepath.Join(tmpDir, "b.png"))
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestWalker_WalkDirs(t *testing.T) {
	mem := afero.NewMemMapFs()
	for _, dir := range []string{
		"/work/textures/ui",
		"/work/scripts",
		"/work/.git/objects",
		"/work/.jj",
		"/work/node_modules/pkg",
		"/work/build/out",
	} {
		require.NoError(t, mem.MkdirAll(dir, 0o755))
	}
	require.NoError(t, afero.WriteFile(mem, "/work/scripts/main.lua", []byte("--"), 0o644))

	walker := fs.NewWalker(mem)
	dirs := slices.Collect(walker.WalkDirs("/work", []string{"build"}))

	assert.ElementsMatch(t, []string{
		"/work",
		"/work/scripts",
		"/work/textures",
		"/work/textures/ui",
	}, dirs)
}

func TestWalker_WalkDirs_StopsEarly(t *testing.T) {
	mem := afero.NewMemMapFs()
	require.NoError(t, mem.MkdirAll("/work/a/b/c", 0o755))

	walker := fs.NewWalker(mem)
	var seen []string
	for dir := range walker.WalkDirs("/work", nil) {
		seen = append(seen, dir)
		if len(seen) == 2 {
			break
		}
	}
	assert.Len(t, seen, 2)
}

func TestWalker_IsDir(t *testing.T) {
	mem := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(mem, "/work/a.png", []byte("png"), 0o644))
	walker := fs.NewWalker(mem)

	assert.True(t, walker.IsDir("/work"))
	assert.False(t, walker.IsDir("/work/a.png"))
	assert.False(t, walker.IsDir("/missing"))
}
