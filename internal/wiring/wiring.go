// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/rescache/internal/adapters/config"
	_ "go.trai.ch/rescache/internal/adapters/executor"
	_ "go.trai.ch/rescache/internal/adapters/fs"
	_ "go.trai.ch/rescache/internal/adapters/logger"
	_ "go.trai.ch/rescache/internal/adapters/telemetry"
	_ "go.trai.ch/rescache/internal/adapters/watcher"
	// Register app and engine nodes.
	_ "go.trai.ch/rescache/internal/app"
	_ "go.trai.ch/rescache/internal/engine/rescache"
)
