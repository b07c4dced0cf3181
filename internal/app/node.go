package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/rescache/internal/adapters/config"   //nolint:depguard // Wired in app layer
	"go.trai.ch/rescache/internal/adapters/executor" //nolint:depguard // Wired in app layer
	"go.trai.ch/rescache/internal/adapters/logger"   //nolint:depguard // Wired in app layer
	"go.trai.ch/rescache/internal/adapters/watcher"  //nolint:depguard // Wired in app layer
	"go.trai.ch/rescache/internal/core/ports"
	"go.trai.ch/rescache/internal/engine/rescache"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

func init() {
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			config.NodeID,
			executor.NodeID,
			rescache.NodeID,
			watcher.NodeID,
			logger.NodeID,
		},
		Run: runAppNode,
	})

	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			AppNodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (*Components, error) {
			app, err := graft.Dep[*App](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			return NewComponents(app, log), nil
		},
	})
}

func runAppNode(ctx context.Context) (*App, error) {
	loader, err := graft.Dep[ports.WorkspaceLoader](ctx)
	if err != nil {
		return nil, err
	}

	executors, err := graft.Dep[*executor.Factory](ctx)
	if err != nil {
		return nil, err
	}

	caches, err := graft.Dep[*rescache.Factory](ctx)
	if err != nil {
		return nil, err
	}

	w, err := graft.Dep[ports.Watcher](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	return New(loader, executors, caches, w, log), nil
}
