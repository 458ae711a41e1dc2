package cache

import (
	"go.trai.ch/ember/internal/core/domain"
	"go.trai.ch/ember/internal/core/ports"
)

// lifecycle is the two-state controller lifecycle. Until BuildCache has
// run once there is no dependency graph, so add and delete operations
// skip graph maintenance and validation; the first BuildCache catches
// everything up.
type lifecycle uint8

const (
	lifecycleUninitialized lifecycle = iota
	lifecycleInitialized
)

// failer is implemented by tasks that can carry a failure, inspected
// after completion.
type failer interface {
	Err() error
}

// Cache is the controller for the asynchronous resource dependency
// cache. All methods must be called from the owning goroutine; none of
// them block. Effects of an operation become visible only after enough
// TickPendingWork calls have drained the work it scheduled.
type Cache struct {
	pool     ports.TaskPool
	store    ports.WorkspaceStore
	resolver ports.FileResolver
	log      ports.Logger

	state   *cacheState
	pending []ports.TaskHandle
	phase   lifecycle
}

// New creates a cache on top of the given task pool. The pool must
// execute tasks in submission order; see ports.TaskPool.
func New(pool ports.TaskPool, store ports.WorkspaceStore, resolver ports.FileResolver, log ports.Logger) *Cache {
	return &Cache{
		pool:     pool,
		store:    store,
		resolver: resolver,
		log:      log,
		state:    newCacheState(),
	}
}

// AddResource puts a copy of the resource into the cache under its id.
// The copy's memoized validity is cleared so a re-added id never inherits
// a stale verdict. Once the cache is initialized this also schedules a
// graph rebuild and a validation of the new resource, which cascades to
// its dependents.
func (c *Cache) AddResource(res ports.Resource) {
	cp := res.Clone()
	cp.SetValidity(domain.ValidityUnknown)
	id := cp.ID()

	if c.HasPendingWork() {
		c.submit(&addResourceTask{state: c.state, id: id, res: cp})
	} else {
		c.state.mu.Lock()
		c.state.resources[id] = cp
		c.state.mu.Unlock()
		c.log.Debug("add resource to cache", "id", id)
	}

	if c.phase == lifecycleInitialized {
		c.submit(&rebuildGraphTask{state: c.state, resolver: c.resolver})
		c.submit(&validateResourceTask{state: c.state, resolver: c.resolver, id: id})
	}
}

// DelResource removes the resource from the cache. Once initialized this
// also condemns the dependents of the deleted id, found through the graph
// as it stood before the delete, and then rebuilds the graph to drop the
// node. The ordering is significant: the dependents must be discovered
// before the edges referencing the deleted id disappear.
func (c *Cache) DelResource(id string) {
	if c.HasPendingWork() {
		c.submit(&delResourceTask{state: c.state, id: id})
	} else {
		c.state.mu.Lock()
		delete(c.state.resources, id)
		c.state.mu.Unlock()
		c.log.Debug("delete resource from cache", "id", id)
	}

	if c.phase == lifecycleInitialized {
		c.submit(&invalidateDependentsTask{state: c.state, resolver: c.resolver, id: id})
		c.submit(&rebuildGraphTask{state: c.state, resolver: c.resolver})
	}
}

// UpdateSettings replaces the project settings snapshot carried by the
// cache.
func (c *Cache) UpdateSettings(settings domain.ProjectSettings) {
	if c.HasPendingWork() {
		c.submit(&updateSettingsTask{state: c.state, settings: settings})
		return
	}
	c.state.mu.Lock()
	c.state.settings = settings
	c.state.mu.Unlock()
	c.log.Debug("update project settings in cache")
}

// SaveWorkspace schedules a save of the resource store, settings and the
// given workspace property bags to dir. Purely I/O; a failed save leaves
// in-memory state untouched and is reported through the log when the
// task completes.
func (c *Cache) SaveWorkspace(props, userProps map[string]any, dir string) {
	c.submit(&saveWorkspaceTask{
		state:     c.state,
		store:     c.store,
		props:     props,
		userProps: userProps,
		dir:       dir,
	})
}

// BuildCache schedules a graph rebuild followed by a validation of every
// resource, and marks the cache initialized so subsequent adds and
// deletes maintain the graph incrementally.
func (c *Cache) BuildCache() {
	c.submit(&rebuildGraphTask{state: c.state, resolver: c.resolver, sweep: true})
	c.phase = lifecycleInitialized
}

// Revalidate discards the memoized verdict of the given resources and
// schedules each for validation. Used when a referenced file changed on
// disk behind the cache's back. No-op before the first BuildCache.
func (c *Cache) Revalidate(ids []string) {
	if c.phase != lifecycleInitialized {
		return
	}
	for _, id := range ids {
		c.submit(&validateResourceTask{state: c.state, resolver: c.resolver, id: id, reset: true})
	}
}

// TickPendingWork is the cooperative drain step. It forwards tasks that
// worker tasks queued for submission, then retires completed handles
// from the front of the pending sequence, stopping at the first
// incomplete one so completions are observed in submission order. A slow
// early task delays the visible completion of later, already-finished
// tasks; that is an accepted latency trade-off, not a defect.
func (c *Cache) TickPendingWork() {
	if c.state.mu.TryLock() {
		queued := c.state.submitQueue
		c.state.submitQueue = nil
		c.state.mu.Unlock()
		for _, t := range queued {
			c.submit(t)
		}
	}

	for len(c.pending) > 0 {
		handle := c.pending[0]
		if !handle.IsComplete() {
			return
		}
		task := handle.Task()
		c.log.Info(task.Description())
		if f, ok := task.(failer); ok && f.Err() != nil {
			c.log.Error(f.Err())
		}
		c.pending = c.pending[1:]
	}
}

// DequeuePendingUpdates drains the completed validation reports. If the
// state lock is contended this tick it returns nothing; delivery is
// eventual, never blocking.
func (c *Cache) DequeuePendingUpdates() []domain.ValidationReport {
	if !c.state.mu.TryLock() {
		return nil
	}
	defer c.state.mu.Unlock()

	updates := c.state.updates
	c.state.updates = nil
	return updates
}

// HasPendingWork reports whether any task is in flight or waiting for
// submission.
func (c *Cache) HasPendingWork() bool {
	if len(c.pending) > 0 {
		return true
	}
	c.state.mu.Lock()
	defer c.state.mu.Unlock()
	return len(c.state.submitQueue) > 0
}

// Close tears the cache down. Closing with work outstanding is a
// programming error in the caller's drain loop, not a recoverable
// condition.
func (c *Cache) Close() {
	if c.HasPendingWork() {
		panic("resource cache closed with pending work")
	}
}

// UnsafeResources returns the live resource store without
// synchronization. Only for offline inspection and tests when no tasks
// are in flight.
func (c *Cache) UnsafeResources() map[string]ports.Resource {
	return c.state.resources
}

// UnsafeGraph returns the live dependency graph without synchronization.
// Only for offline inspection and tests when no tasks are in flight.
func (c *Cache) UnsafeGraph() *domain.DependencyGraph {
	return c.state.graph
}

// UnsafeSettings returns the current settings snapshot without
// synchronization. Only for offline inspection and tests when no tasks
// are in flight.
func (c *Cache) UnsafeSettings() domain.ProjectSettings {
	return c.state.settings
}

func (c *Cache) submit(t ports.Task) {
	c.pending = append(c.pending, c.pool.Submit(t))
}
