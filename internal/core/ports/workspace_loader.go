package ports

import "go.trai.ch/rescache/internal/core/domain"

// WorkspaceLoader defines the interface for loading the resource manifest.
//
//go:generate go run go.uber.org/mock/mockgen -source=workspace_loader.go -destination=mocks/mock_workspace_loader.go -package=mocks
type WorkspaceLoader interface {
	// Load finds the manifest starting at cwd and walking up, and returns the declared workspace.
	Load(cwd string) (*domain.Workspace, error)
}
