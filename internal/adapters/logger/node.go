package logger

import (
	"context"
	"os"

	"github.com/grindlemire/graft"
	"go.trai.ch/rescache/internal/core/ports"
)

// NodeID identifies the logger node.
const NodeID graft.ID = "adapter.logger"

// FormatEnv selects JSON logging when set to "json". The --json flag still
// overrides it once the command line is parsed.
const FormatEnv = "RESCACHE_LOG_FORMAT"

func init() {
	graft.Register(graft.Node[ports.Logger]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.Logger, error) {
			l := New()
			if os.Getenv(FormatEnv) == "json" {
				l.(*Logger).SetJSON(true)
			}
			return l, nil
		},
	})
}
