package cache

import (
	"fmt"

	"go.trai.ch/ember/internal/core/domain"
	"go.trai.ch/ember/internal/core/ports"
)

// addResourceTask inserts a resource copy into the store.
type addResourceTask struct {
	state *cacheState
	id    string
	res   ports.Resource
}

func (t *addResourceTask) Name() string { return "AddCacheResource" }

func (t *addResourceTask) Description() string {
	return fmt.Sprintf("Add resource to cache. [id=%s]", t.id)
}

func (t *addResourceTask) Run() {
	t.state.mu.Lock()
	defer t.state.mu.Unlock()
	t.state.resources[t.id] = t.res
}

// delResourceTask erases a resource from the store. The dependency graph
// keeps its node until the next rebuild; the invalidation task scheduled
// alongside relies on those stale edges to find the dependents.
type delResourceTask struct {
	state *cacheState
	id    string
}

func (t *delResourceTask) Name() string { return "DeleteCacheResource" }

func (t *delResourceTask) Description() string {
	return fmt.Sprintf("Delete resource from cache. [id=%s]", t.id)
}

func (t *delResourceTask) Run() {
	t.state.mu.Lock()
	defer t.state.mu.Unlock()
	delete(t.state.resources, t.id)
}

// rebuildGraphTask rebuilds the reverse dependency graph wholesale. With
// sweep set it also queues a validation task for every resource, which
// is how BuildCache runs its initial full pass; the enumeration happens
// here rather than on the owning goroutine so that resources whose add
// tasks executed just before us are included.
type rebuildGraphTask struct {
	state    *cacheState
	resolver ports.FileResolver
	sweep    bool
}

func (t *rebuildGraphTask) Name() string { return "RebuildDependencyGraph" }

func (t *rebuildGraphTask) Description() string {
	return "Rebuild resource dependency graph."
}

func (t *rebuildGraphTask) Run() {
	t.state.mu.Lock()
	defer t.state.mu.Unlock()

	t.state.graph = domain.BuildDependencyGraph(t.state.resources)
	if !t.sweep {
		return
	}
	for _, id := range t.state.sortedResourceIDs() {
		t.state.submitQueue = append(t.state.submitQueue, &validateResourceTask{
			state:    t.state,
			resolver: t.resolver,
			id:       id,
		})
	}
}

// validateResourceTask computes the verdict for one resource, queues the
// observer report and cascades the verdict to the resource's dependents.
// With reset set the memoized verdict is discarded first; the file
// watcher uses that to force recomputation after a referenced file
// changed.
type validateResourceTask struct {
	state    *cacheState
	resolver ports.FileResolver
	id       string
	reset    bool
}

func (t *validateResourceTask) Name() string { return "ValidateCacheResource" }

func (t *validateResourceTask) Description() string {
	return fmt.Sprintf("Validate resource. [id=%s]", t.id)
}

func (t *validateResourceTask) Run() {
	t.state.mu.Lock()
	defer t.state.mu.Unlock()

	if t.reset {
		if res, ok := t.state.resources[t.id]; ok {
			res.SetValidity(domain.ValidityUnknown)
		}
	}

	valid := validateResource(t.state, t.resolver, t.id)
	t.state.updates = append(t.state.updates, domain.ValidationReport{
		ResourceID: t.id,
		Valid:      valid,
	})
	cascadeVerdict(t.state, t.resolver, t.id, valid)
}

// invalidateDependentsTask condemns every dependent of a deleted resource
// using the graph as it stood before the delete, and schedules each for
// validation so the cascade continues past the first hop. It must run
// after the delete task and before the rebuild that drops the edges.
type invalidateDependentsTask struct {
	state    *cacheState
	resolver ports.FileResolver
	id       string
}

func (t *invalidateDependentsTask) Name() string { return "InvalidateResourceDependents" }

func (t *invalidateDependentsTask) Description() string {
	return fmt.Sprintf("Invalidate resource dependents. [id=%s]", t.id)
}

func (t *invalidateDependentsTask) Run() {
	t.state.mu.Lock()
	defer t.state.mu.Unlock()

	for _, dep := range t.state.graph.UsedBy(t.id) {
		res, ok := t.state.resources[dep]
		if !ok {
			continue
		}
		res.SetValidity(domain.ValidityInvalid)
		t.state.submitQueue = append(t.state.submitQueue, &validateResourceTask{
			state:    t.state,
			resolver: t.resolver,
			id:       dep,
		})
	}
}

// updateSettingsTask replaces the settings snapshot. No graph
// interaction.
type updateSettingsTask struct {
	state    *cacheState
	settings domain.ProjectSettings
}

func (t *updateSettingsTask) Name() string { return "UpdateCacheSettings" }

func (t *updateSettingsTask) Description() string {
	return "Update project settings in cache."
}

func (t *updateSettingsTask) Run() {
	t.state.mu.Lock()
	defer t.state.mu.Unlock()
	t.state.settings = t.settings
}

// saveWorkspaceTask persists the store and settings. The snapshot is
// taken under the lock, the write happens with the lock released. A
// failed write is recorded on the task and never mutates validity state.
type saveWorkspaceTask struct {
	state     *cacheState
	store     ports.WorkspaceStore
	props     map[string]any
	userProps map[string]any
	dir       string
	err       error
}

func (t *saveWorkspaceTask) Name() string { return "SaveWorkspace" }

func (t *saveWorkspaceTask) Description() string {
	return "Save project workspace."
}

func (t *saveWorkspaceTask) Run() {
	t.state.mu.Lock()
	snap := t.state.buildSnapshotLocked(t.props, t.userProps, t.dir)
	t.state.mu.Unlock()

	t.err = t.store.SaveWorkspace(snap)
}

// Err returns the save failure, if any. Inspected by the tick loop once
// the task completes.
func (t *saveWorkspaceTask) Err() error { return t.err }
