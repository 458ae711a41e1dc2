package content

import (
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"go.trai.ch/ember/internal/core/domain"
	"go.trai.ch/ember/internal/core/ports"
	"go.trai.ch/zerr"
)

// enginePrimitives are the built-in resources every workspace starts
// with. Their ids are fixed and they are never persisted.
var enginePrimitives = []struct {
	id   string
	typ  string
	name string
}{
	{"_default_material", "material", "Default"},
	{"_checkerboard_material", "material", "Checkerboard"},
	{"_rect_drawable", "drawable", "Rectangle"},
	{"_circle_drawable", "drawable", "Circle"},
	{"_default_font", "font", "Default Font"},
}

var _ ports.WorkspaceLoader = (*Loader)(nil)

// Loader reads a workspace directory back into live resources.
type Loader struct {
	log ports.Logger
}

// NewLoader creates a loader with the given logger.
func NewLoader(log ports.Logger) *Loader {
	return &Loader{log: log}
}

// Load reads content.json and the workspace property files from dir and
// returns the live resources plus the workspace-level state. The
// property files are optional; a workspace that has never been saved
// with properties still loads.
func (l *Loader) Load(dir string) (*ports.LoadedWorkspace, error) {
	entries, err := l.readContent(dir)
	if err != nil {
		return nil, err
	}

	props, err := l.readProperties(dir)
	if err != nil {
		return nil, err
	}
	userProps, err := l.readUserProperties(dir)
	if err != nil {
		return nil, err
	}

	ws := &ports.LoadedWorkspace{
		Dir:            dir,
		Settings:       props.Project,
		Properties:     props.Workspace,
		UserProperties: userProps.User,
	}

	seen := make(map[string]bool, len(entries))
	for _, entry := range entries {
		if entry.ID == "" {
			return nil, zerr.With(domain.ErrMissingResourceID, "type", entry.Type)
		}
		if seen[entry.ID] {
			return nil, zerr.With(domain.ErrDuplicateResourceID, "id", entry.ID)
		}
		seen[entry.ID] = true

		res := NewResource(entry.ID, entry.Type, entry.Name)
		res.deps = entry.Dependencies
		res.files = entry.Files
		if entry.Data != nil {
			res.data = entry.Data
		}
		for key, value := range props.Resources[entry.ID] {
			res.props[key] = value
		}
		for key, value := range userProps.Resources[entry.ID] {
			res.userProps[key] = value
		}
		ws.Resources = append(ws.Resources, res)
	}

	for _, prim := range enginePrimitives {
		ws.Resources = append(ws.Resources, NewPrimitive(prim.id, prim.typ, prim.name))
	}

	l.log.Debug("loaded workspace", "dir", dir, "resources", len(ws.Resources))
	return ws, nil
}

func (l *Loader) readContent(dir string) ([]contentEntry, error) {
	filename := filepath.Join(dir, domain.ContentFileName)
	data, err := os.ReadFile(filename)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, zerr.With(domain.ErrWorkspaceNotFound, "dir", dir)
		}
		return nil, zerr.With(zerr.Wrap(err, domain.ErrContentReadFailed.Error()), "file", filename)
	}

	var file contentFile
	if err := json.Unmarshal(data, &file); err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrContentParseFailed.Error()), "file", filename)
	}
	return file.Resources, nil
}

func (l *Loader) readProperties(dir string) (propertiesFile, error) {
	props := propertiesFile{Project: domain.DefaultProjectSettings()}

	filename := filepath.Join(dir, domain.PropertiesFileName)
	data, err := os.ReadFile(filename)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return props, nil
		}
		return props, zerr.With(zerr.Wrap(err, domain.ErrPropertiesReadFailed.Error()), "file", filename)
	}
	if err := json.Unmarshal(data, &props); err != nil {
		return props, zerr.With(zerr.Wrap(err, domain.ErrPropertiesParseFailed.Error()), "file", filename)
	}
	return props, nil
}

func (l *Loader) readUserProperties(dir string) (userPropertiesFile, error) {
	var props userPropertiesFile

	filename := filepath.Join(dir, domain.UserPropertiesFileName)
	data, err := os.ReadFile(filename)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return props, nil
		}
		return props, zerr.With(zerr.Wrap(err, domain.ErrPropertiesReadFailed.Error()), "file", filename)
	}
	if err := json.Unmarshal(data, &props); err != nil {
		return props, zerr.With(zerr.Wrap(err, domain.ErrPropertiesParseFailed.Error()), "file", filename)
	}
	return props, nil
}
