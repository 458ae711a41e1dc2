package content

import "go.trai.ch/ember/internal/core/domain"

// contentFile is the structure of content.json: the serialized
// user-defined resources. Primitive resources are never written here.
type contentFile struct {
	Resources []contentEntry `json:"resources"`
}

// contentEntry is one serialized resource.
type contentEntry struct {
	ID           string         `json:"id"`
	Type         string         `json:"type"`
	Name         string         `json:"name,omitempty"`
	Dependencies []string       `json:"dependencies,omitempty"`
	Files        []string       `json:"files,omitempty"`
	Data         map[string]any `json:"data,omitempty"`
}

// propertiesFile is the structure of workspace.json: project settings,
// the shared workspace property bag and each resource's shared
// properties, keyed by resource id.
type propertiesFile struct {
	Project       domain.ProjectSettings    `json:"project"`
	Workspace     map[string]any            `json:"workspace,omitempty"`
	Resources     map[string]map[string]any `json:"resources,omitempty"`
	ContentDigest string                    `json:"content_digest,omitempty"`
}

// userPropertiesFile is the structure of .workspace_private.json: the
// per-user property bags that never leave the machine.
type userPropertiesFile struct {
	User      map[string]any            `json:"user,omitempty"`
	Resources map[string]map[string]any `json:"resources,omitempty"`
}
