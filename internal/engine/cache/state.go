// Package cache implements the asynchronous resource dependency cache of
// the editor workspace.
//
// The cache keeps a store of content resources, derives a reverse
// dependency graph from it and maintains a memoized validity verdict per
// resource. All mutation happens in tasks executed by an external task
// pool; validity changes propagate through the graph as a chain of
// self-scheduled tasks rather than one unbounded traversal, so the owning
// goroutine stays responsive and progress is observable between ticks.
package cache

import (
	"maps"
	"slices"
	"sync"

	"go.trai.ch/ember/internal/core/domain"
	"go.trai.ch/ember/internal/core/ports"
)

// cacheState is the only mutable state shared between the owning
// goroutine and pool workers. Every field access requires holding mu.
// The lock is never held across a pool submission or file I/O.
type cacheState struct {
	mu sync.Mutex

	resources map[string]ports.Resource
	graph     *domain.DependencyGraph
	settings  domain.ProjectSettings

	// submitQueue holds tasks spawned by worker tasks. Workers cannot
	// call the pool themselves; the owning goroutine forwards these on
	// the next tick.
	submitQueue []ports.Task

	// updates holds completed validation reports until an observer
	// drains them.
	updates []domain.ValidationReport
}

func newCacheState() *cacheState {
	return &cacheState{
		resources: make(map[string]ports.Resource),
		graph:     domain.NewDependencyGraph(),
		settings:  domain.DefaultProjectSettings(),
	}
}

// sortedResourceIDs returns the ids currently in the store in stable
// order. Caller holds mu.
func (st *cacheState) sortedResourceIDs() []string {
	return slices.Sorted(maps.Keys(st.resources))
}

// buildSnapshotLocked detaches everything a workspace save needs from the
// live state so the actual write can run with the lock released.
// Primitive resources are skipped; they are recreated on load and their
// ids are fixed. Caller holds mu.
func (st *cacheState) buildSnapshotLocked(props, userProps map[string]any, dir string) domain.WorkspaceSnapshot {
	snap := domain.WorkspaceSnapshot{
		Dir:            dir,
		Settings:       st.settings,
		Properties:     props,
		UserProperties: userProps,
	}
	for _, id := range st.sortedResourceIDs() {
		res := st.resources[id]
		if res.IsPrimitive() {
			continue
		}
		snap.Resources = append(snap.Resources, res.Snapshot())
	}
	return snap
}
