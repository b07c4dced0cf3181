package rescache

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/rescache/internal/adapters/fs"     //nolint:depguard // Wired in engine wiring
	"go.trai.ch/rescache/internal/adapters/logger" //nolint:depguard // Wired in engine wiring
	"go.trai.ch/rescache/internal/core/ports"
)

// NodeID is the unique identifier for the cache factory Graft node.
const NodeID graft.ID = "engine.rescache"

// Factory creates caches that share a file prober and a logger.
type Factory struct {
	prober ports.FileProber
	logger ports.Logger
}

// NewFactory creates a Factory.
func NewFactory(prober ports.FileProber, logger ports.Logger) *Factory {
	return &Factory{prober: prober, logger: logger}
}

// New creates a cache rooted at rootPath that runs its tasks on exec.
// Options passed here override the factory defaults.
func (f *Factory) New(rootPath string, exec ports.Executor, opts ...Option) *Cache {
	defaults := []Option{WithProber(f.prober), WithLogger(f.logger)}
	return New(rootPath, exec, append(defaults, opts...)...)
}

func init() {
	graft.Register(graft.Node[*Factory]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			fs.ProberNodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (*Factory, error) {
			prober, err := graft.Dep[ports.FileProber](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			return NewFactory(prober, log), nil
		},
	})
}
