package content

import (
	"os"
	"path/filepath"
	"strings"

	"go.trai.ch/ember/internal/core/domain"
	"go.trai.ch/ember/internal/core/ports"
	"go.trai.ch/zerr"
)

// URI schemes used by resource file references.
const (
	schemeWorkspace = "ws://"
	schemeApp       = "app://"
	schemeFile      = "fs://"
)

var _ ports.FileResolver = (*Resolver)(nil)

// Resolver maps resource file URIs to filesystem paths. ws:// is
// relative to the workspace directory, app:// to the engine installation
// directory, fs:// is an absolute path spelled as a URI.
type Resolver struct {
	workspaceDir string
	appDir       string
}

// NewResolver creates a resolver for the given workspace and engine
// installation directories.
func NewResolver(workspaceDir, appDir string) *Resolver {
	return &Resolver{workspaceDir: workspaceDir, appDir: appDir}
}

// Resolve maps the URI to an absolute filesystem path. It fails only on
// an unknown scheme, never on a missing file.
func (r *Resolver) Resolve(uri string) (string, error) {
	switch {
	case strings.HasPrefix(uri, schemeWorkspace):
		return filepath.Join(r.workspaceDir, filepath.FromSlash(strings.TrimPrefix(uri, schemeWorkspace))), nil
	case strings.HasPrefix(uri, schemeApp):
		return filepath.Join(r.appDir, filepath.FromSlash(strings.TrimPrefix(uri, schemeApp))), nil
	case strings.HasPrefix(uri, schemeFile):
		return filepath.FromSlash(strings.TrimPrefix(uri, schemeFile)), nil
	case filepath.IsAbs(uri):
		return uri, nil
	default:
		return "", zerr.With(domain.ErrUnknownURIScheme, "uri", uri)
	}
}

// Exists reports whether the URI resolves to an existing file or
// directory. An unresolvable URI does not exist.
func (r *Resolver) Exists(uri string) bool {
	path, err := r.Resolve(uri)
	if err != nil {
		return false
	}
	_, err = os.Stat(path)
	return err == nil
}
