// Package fs provides file system adapters for probing and walking workspaces.
package fs

import (
	"io/fs"
	"iter"
	"path/filepath"

	"github.com/spf13/afero"
)

// skipDirs are directories that never hold workspace content.
var skipDirs = map[string]bool{
	".git":         true,
	".jj":          true,
	"node_modules": true,
}

// Walker walks workspace directory trees.
type Walker struct {
	fs afero.Fs
}

// NewWalker creates a Walker over fs.
func NewWalker(fs afero.Fs) *Walker {
	return &Walker{fs: fs}
}

// NewOsWalker creates a Walker over the operating system filesystem.
func NewOsWalker() *Walker {
	return NewWalker(afero.NewOsFs())
}

// WalkDirs yields root and every directory below it, skipping VCS metadata
// and directories whose name matches one of the ignore patterns.
// Directories that cannot be read are skipped.
func (w *Walker) WalkDirs(root string, ignores []string) iter.Seq[string] {
	return func(yield func(string) bool) {
		_ = afero.Walk(w.fs, root, func(path string, info fs.FileInfo, err error) error {
			if err != nil {
				if info != nil && info.IsDir() {
					return filepath.SkipDir
				}
				return nil
			}
			if !info.IsDir() {
				return nil
			}
			if path != root && shouldSkip(info.Name(), ignores) {
				return filepath.SkipDir
			}
			if !yield(path) {
				return filepath.SkipAll
			}
			return nil
		})
	}
}

// IsDir reports whether path is an existing directory.
func (w *Walker) IsDir(path string) bool {
	ok, err := afero.IsDir(w.fs, path)
	return err == nil && ok
}

func shouldSkip(name string, ignores []string) bool {
	if skipDirs[name] {
		return true
	}
	for _, ignore := range ignores {
		if matched, _ := filepath.Match(ignore, name); matched {
			return true
		}
	}
	return false
}
