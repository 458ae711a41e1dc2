package ports

import "go.trai.ch/ember/internal/core/domain"

// WorkspaceStore persists a workspace snapshot to durable storage.
// Read-back is handled by the WorkspaceLoader, not the store.
//
//go:generate mockgen -source=store.go -destination=mocks/mock_store.go -package=mocks
type WorkspaceStore interface {
	// SaveWorkspace writes the snapshot to the snapshot's directory.
	// A failed save must leave in-memory state untouched; the error is
	// local to the save.
	SaveWorkspace(snap domain.WorkspaceSnapshot) error
}

// LoadedWorkspace is what a WorkspaceLoader produces: live resources plus
// the workspace-level state that rides along with them.
type LoadedWorkspace struct {
	Dir            string
	Settings       domain.ProjectSettings
	Properties     map[string]any
	UserProperties map[string]any
	Resources      []Resource
}

// WorkspaceLoader reads a workspace directory back into live resources,
// including the engine's primitive resources that are never persisted.
type WorkspaceLoader interface {
	Load(dir string) (*LoadedWorkspace, error)
}
