package domain

import (
	"path/filepath"
	"strings"
	"time"
)

const (
	// ManifestFileName is the name of the workspace manifest.
	ManifestFileName = "rescache.yaml"

	// WorkspaceScheme prefixes file URIs that are relative to the workspace root.
	WorkspaceScheme = "ws://"

	// DefaultDebounce is the default window for coalescing file change events.
	DefaultDebounce = 50 * time.Millisecond
)

// ResolveFileURI maps a file reference to a filesystem path.
// "ws://" URIs and relative paths resolve against root; absolute paths are kept.
func ResolveFileURI(root, uri string) string {
	if rest, ok := strings.CutPrefix(uri, WorkspaceScheme); ok {
		return filepath.Join(root, filepath.FromSlash(rest))
	}
	p := filepath.FromSlash(uri)
	if filepath.IsAbs(p) {
		return filepath.Clean(p)
	}
	return filepath.Join(root, p)
}
