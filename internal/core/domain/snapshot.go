package domain

import "os"

// File permissions for persisted workspace files.
const (
	DirPerm  os.FileMode = 0o755
	FilePerm os.FileMode = 0o644
)

// Workspace file names. Primitive resources are never persisted; they are
// recreated by the engine on workspace load and have fixed ids.
const (
	ContentFileName        = "content.json"
	PropertiesFileName     = "workspace.json"
	UserPropertiesFileName = ".workspace_private.json"
)

// ResourceSnapshot is the serializable form of one resource, detached
// from the live object so persistence can run without the cache lock.
// Content travels to the content file; the property bags travel to the
// workspace properties files.
type ResourceSnapshot struct {
	ID             string
	Type           string
	Name           string
	Dependencies   []string
	Files          []string
	Data           map[string]any
	Properties     map[string]any
	UserProperties map[string]any
}

// WorkspaceSnapshot is everything a workspace save persists: the
// non-primitive resources, the project settings and the workspace-level
// property bags.
type WorkspaceSnapshot struct {
	Dir            string
	Settings       ProjectSettings
	Properties     map[string]any
	UserProperties map[string]any
	Resources      []ResourceSnapshot
}
