package executor

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/rescache/internal/adapters/telemetry"
	"go.trai.ch/rescache/internal/core/ports"
)

// NodeID is the unique identifier for the executor factory Graft node.
const NodeID graft.ID = "adapter.executor"

// Factory creates worker pools that trace their tasks.
type Factory struct {
	tracer ports.Tracer
}

// NewFactory creates a Factory using tracer for the pools it creates.
func NewFactory(tracer ports.Tracer) *Factory {
	return &Factory{tracer: tracer}
}

// NewPool starts a pool with the given number of workers.
func (f *Factory) NewPool(ctx context.Context, workers int) *Pool {
	return NewPool(ctx, workers, f.tracer)
}

func init() {
	graft.Register(graft.Node[*Factory]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{telemetry.TracerNodeID},
		Run: func(ctx context.Context) (*Factory, error) {
			tracer, err := graft.Dep[ports.Tracer](ctx)
			if err != nil {
				return nil, err
			}
			return NewFactory(tracer), nil
		},
	})
}
