package content

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/cespare/xxhash/v2"
	"go.trai.ch/ember/internal/core/domain"
	"go.trai.ch/ember/internal/core/ports"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

var _ ports.WorkspaceStore = (*Store)(nil)

// Store persists a workspace snapshot to its directory as the three
// workspace files. The snapshot is already detached from live state, so
// the store runs without any cache coordination.
type Store struct {
	log ports.Logger
}

// NewStore creates a store with the given logger.
func NewStore(log ports.Logger) *Store {
	return &Store{log: log}
}

// SaveWorkspace writes content.json, workspace.json and
// .workspace_private.json. The three files are independent and are
// written concurrently; the first failure is returned and in-memory
// state is never touched.
func (s *Store) SaveWorkspace(snap domain.WorkspaceSnapshot) error {
	started := time.Now()

	if err := os.MkdirAll(snap.Dir, domain.DirPerm); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrSaveWriteFailed.Error()), "dir", snap.Dir)
	}

	contentData, err := marshalFile(buildContentFile(snap))
	if err != nil {
		return err
	}
	digest := fmt.Sprintf("%016x", xxhash.Sum64(contentData))

	propsData, err := marshalFile(buildPropertiesFile(snap, digest))
	if err != nil {
		return err
	}
	userData, err := marshalFile(buildUserPropertiesFile(snap))
	if err != nil {
		return err
	}

	var g errgroup.Group
	g.Go(func() error { return writeFile(snap.Dir, domain.ContentFileName, contentData) })
	g.Go(func() error { return writeFile(snap.Dir, domain.PropertiesFileName, propsData) })
	g.Go(func() error { return writeFile(snap.Dir, domain.UserPropertiesFileName, userData) })
	if err := g.Wait(); err != nil {
		return err
	}

	s.log.Debug("workspace save complete",
		"dir", snap.Dir,
		"resources", len(snap.Resources),
		"digest", digest,
		"took", time.Since(started).String(),
	)
	return nil
}

func buildContentFile(snap domain.WorkspaceSnapshot) contentFile {
	file := contentFile{Resources: make([]contentEntry, 0, len(snap.Resources))}
	for _, res := range snap.Resources {
		file.Resources = append(file.Resources, contentEntry{
			ID:           res.ID,
			Type:         res.Type,
			Name:         res.Name,
			Dependencies: res.Dependencies,
			Files:        res.Files,
			Data:         res.Data,
		})
	}
	return file
}

func buildPropertiesFile(snap domain.WorkspaceSnapshot, digest string) propertiesFile {
	file := propertiesFile{
		Project:       snap.Settings,
		Workspace:     snap.Properties,
		ContentDigest: digest,
	}
	for _, res := range snap.Resources {
		if len(res.Properties) == 0 {
			continue
		}
		if file.Resources == nil {
			file.Resources = make(map[string]map[string]any)
		}
		file.Resources[res.ID] = res.Properties
	}
	return file
}

func buildUserPropertiesFile(snap domain.WorkspaceSnapshot) userPropertiesFile {
	file := userPropertiesFile{User: snap.UserProperties}
	for _, res := range snap.Resources {
		if len(res.UserProperties) == 0 {
			continue
		}
		if file.Resources == nil {
			file.Resources = make(map[string]map[string]any)
		}
		file.Resources[res.ID] = res.UserProperties
	}
	return file
}

func marshalFile(v any) ([]byte, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, zerr.Wrap(err, domain.ErrSaveMarshalFailed.Error())
	}
	return append(data, '\n'), nil
}

func writeFile(dir, name string, data []byte) error {
	filename := filepath.Join(dir, name)
	if err := os.WriteFile(filename, data, domain.FilePerm); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrSaveWriteFailed.Error()), "file", filename)
	}
	return nil
}
