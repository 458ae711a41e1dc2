package watcher

import (
	"path/filepath"
	"sort"

	"go.trai.ch/ember/internal/core/ports"
)

// RefIndex maps absolute file paths back to the resources that reference
// them. It is rebuilt whenever the set of resources changes; lookups are
// read only afterwards.
type RefIndex struct {
	byPath map[string][]string
}

// BuildRefIndex resolves every file reference of every resource and
// records the owning resource id under the resolved path. References
// that fail to resolve are skipped; validation already reports them.
func BuildRefIndex(resources map[string]ports.Resource, resolver ports.FileResolver) *RefIndex {
	idx := &RefIndex{byPath: make(map[string][]string)}
	for id, res := range resources {
		for _, uri := range res.ListFileRefs() {
			path, err := resolver.Resolve(uri)
			if err != nil {
				continue
			}
			path = filepath.Clean(path)
			idx.byPath[path] = append(idx.byPath[path], id)
		}
	}
	return idx
}

// Affected returns the deduplicated, sorted ids of resources referencing
// any of the given paths.
func (x *RefIndex) Affected(paths []string) []string {
	seen := make(map[string]struct{})
	for _, path := range paths {
		for _, id := range x.byPath[filepath.Clean(path)] {
			seen[id] = struct{}{}
		}
	}
	if len(seen) == 0 {
		return nil
	}
	ids := make([]string, 0, len(seen))
	for id := range seen {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}
