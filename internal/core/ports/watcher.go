package ports

import (
	"context"
	"iter"
)

// WatchOp is the kind of change a WatchEvent reports.
type WatchOp uint8

// Changes reported by a Watcher.
const (
	OpCreate WatchOp = iota
	OpWrite
	OpRemove
	OpRename
)

var watchOpNames = [...]string{
	OpCreate: "create",
	OpWrite:  "write",
	OpRemove: "remove",
	OpRename: "rename",
}

func (op WatchOp) String() string {
	if int(op) < len(watchOpNames) {
		return watchOpNames[op]
	}
	return "unknown"
}

// WatchEvent is a single change below the watched workspace root.
type WatchEvent struct {
	// Path is absolute.
	Path      string
	Operation WatchOp
}

// Watcher reports changes to files below a workspace root so that the
// resources referencing them can be re-validated.
//
//go:generate go run go.uber.org/mock/mockgen -source=watcher.go -destination=mocks/mock_watcher.go -package=mocks
type Watcher interface {
	// Start watches root and every directory below it, including ones
	// created later.
	Start(ctx context.Context, root string) error
	// Stop ends the event stream. It is safe to call before Start.
	Stop() error
	// Events yields changes until the watcher stops.
	Events() iter.Seq[WatchEvent]
}
