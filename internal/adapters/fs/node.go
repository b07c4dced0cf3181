package fs

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/rescache/internal/core/ports"
)

const (
	// ProberNodeID is the unique identifier for the file prober Graft node.
	ProberNodeID graft.ID = "adapter.fs.prober"
	// WalkerNodeID is the unique identifier for the directory walker Graft node.
	WalkerNodeID graft.ID = "adapter.fs.walker"
)

func init() {
	graft.Register(graft.Node[ports.FileProber]{
		ID:        ProberNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.FileProber, error) {
			return NewOsProber(), nil
		},
	})

	graft.Register(graft.Node[*Walker]{
		ID:        WalkerNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (*Walker, error) {
			return NewOsWalker(), nil
		},
	})
}
