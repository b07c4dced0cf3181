package domain

import "time"

// Workspace is a loaded resource manifest.
type Workspace struct {
	// Manifest is the path of the manifest the workspace was loaded from.
	Manifest string
	// Root is the absolute directory file references resolve against.
	Root string
	// Workers is the number of validation workers; zero means one per CPU.
	Workers int
	// Debounce is the watch mode event coalescing window.
	Debounce time.Duration
	// Resources lists the declared resources in manifest order.
	Resources []Resource
}

// Resource returns the declared resource with the given ID.
func (w *Workspace) Resource(id string) (Resource, bool) {
	for _, r := range w.Resources {
		if r.ID == id {
			return r, true
		}
	}
	return Resource{}, false
}
