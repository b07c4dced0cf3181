package watcher

import (
	"maps"
	"path/filepath"
	"slices"
	"strings"
	"sync"
	"unique"

	"go.trai.ch/rescache/internal/core/domain"
)

// Index maps the files resources depend on to the IDs of those resources.
type Index struct {
	mu       sync.RWMutex
	root     string
	pathToID map[unique.Handle[string]]map[string]struct{}
	idToPath map[string][]unique.Handle[string]
}

// NewIndex creates an empty index resolving file references against root.
func NewIndex(root string) *Index {
	return &Index{
		root:     root,
		pathToID: make(map[unique.Handle[string]]map[string]struct{}),
		idToPath: make(map[string][]unique.Handle[string]),
	}
}

// Update replaces the indexed files of res with its current required files.
func (x *Index) Update(res domain.Resource) {
	files := domain.NewSnapshot(res).RequiredFiles()

	x.mu.Lock()
	defer x.mu.Unlock()

	x.removeLocked(res.ID)
	if len(files) == 0 {
		return
	}

	handles := make([]unique.Handle[string], 0, len(files))
	for _, uri := range files {
		h := unique.Make(domain.ResolveFileURI(x.root, uri))
		ids, ok := x.pathToID[h]
		if !ok {
			ids = make(map[string]struct{})
			x.pathToID[h] = ids
		}
		ids[res.ID] = struct{}{}
		handles = append(handles, h)
	}
	x.idToPath[res.ID] = handles
}

// Remove drops every file indexed for id.
func (x *Index) Remove(id string) {
	x.mu.Lock()
	defer x.mu.Unlock()
	x.removeLocked(id)
}

func (x *Index) removeLocked(id string) {
	for _, h := range x.idToPath[id] {
		ids := x.pathToID[h]
		delete(ids, id)
		if len(ids) == 0 {
			delete(x.pathToID, h)
		}
	}
	delete(x.idToPath, id)
}

// Affected returns the sorted IDs of resources depending on any of paths.
// A path also matches every indexed file below it, so removing or renaming
// a directory affects the resources using files inside it.
func (x *Index) Affected(paths []string) []string {
	x.mu.RLock()
	defer x.mu.RUnlock()

	out := make(map[string]struct{})
	for _, p := range paths {
		p = filepath.Clean(p)
		if ids, ok := x.pathToID[unique.Make(p)]; ok {
			maps.Copy(out, ids)
			continue
		}
		prefix := p + string(filepath.Separator)
		for h, ids := range x.pathToID {
			if strings.HasPrefix(h.Value(), prefix) {
				maps.Copy(out, ids)
			}
		}
	}
	return slices.Sorted(maps.Keys(out))
}

// Len returns the number of indexed files.
func (x *Index) Len() int {
	x.mu.RLock()
	defer x.mu.RUnlock()
	return len(x.pathToID)
}
