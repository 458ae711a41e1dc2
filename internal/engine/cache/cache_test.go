package cache_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/ember/internal/core/domain"
	"go.trai.ch/ember/internal/core/ports"
	"go.trai.ch/ember/internal/core/ports/mocks"
	"go.trai.ch/ember/internal/engine/cache"
	"go.uber.org/mock/gomock"
)

func newTestCache(resolver ports.FileResolver, store ports.WorkspaceStore) *cache.Cache {
	if store == nil {
		store = nopStore{}
	}
	return cache.New(&syncPool{}, store, resolver, &testLogger{})
}

type nopStore struct{}

func (nopStore) SaveWorkspace(domain.WorkspaceSnapshot) error { return nil }

// drain ticks until no work is left and returns the final verdict per
// reported resource, later reports overriding earlier ones.
func drain(t *testing.T, c *cache.Cache) map[string]bool {
	t.Helper()

	verdicts := make(map[string]bool)
	for range 10000 {
		if !c.HasPendingWork() {
			break
		}
		c.TickPendingWork()
		for _, r := range c.DequeuePendingUpdates() {
			verdicts[r.ResourceID] = r.Valid
		}
	}
	require.False(t, c.HasPendingWork(), "cache did not settle")
	for _, r := range c.DequeuePendingUpdates() {
		verdicts[r.ResourceID] = r.Valid
	}
	return verdicts
}

func validity(c *cache.Cache, id string) domain.Validity {
	return c.UnsafeResources()[id].Validity()
}

func TestCache_Scenario(t *testing.T) {
	resolver := newFakeResolver()
	c := newTestCache(resolver, nil)

	c.AddResource(&fakeResource{id: "m", primitive: true})
	c.AddResource(&fakeResource{id: "p", deps: []string{"m"}})
	c.BuildCache()

	verdicts := drain(t, c)
	assert.Equal(t, map[string]bool{"m": true, "p": true}, verdicts)

	c.DelResource("m")
	verdicts = drain(t, c)
	assert.Equal(t, map[string]bool{"p": false}, verdicts)
	assert.Equal(t, domain.ValidityInvalid, validity(c, "p"))

	c.AddResource(&fakeResource{id: "m", primitive: true})
	c.BuildCache()
	verdicts = drain(t, c)
	assert.True(t, verdicts["p"])
	assert.Equal(t, domain.ValidityValid, validity(c, "p"))

	c.Close()
}

func TestCache_AddBeforeBuildTakesFastPath(t *testing.T) {
	c := newTestCache(newFakeResolver(), nil)

	c.AddResource(&fakeResource{id: "a"})
	c.AddResource(&fakeResource{id: "b", deps: []string{"a"}})

	// Nothing scheduled before the first BuildCache.
	assert.False(t, c.HasPendingWork())
	assert.Len(t, c.UnsafeResources(), 2)
	assert.Equal(t, 0, c.UnsafeGraph().NodeCount())
}

func TestCache_BuildCacheValidatesEverything(t *testing.T) {
	resolver := newFakeResolver()
	resolver.exists["ws://a.png"] = true
	c := newTestCache(resolver, nil)

	c.AddResource(&fakeResource{id: "a", files: []string{"ws://a.png"}})
	c.AddResource(&fakeResource{id: "b", deps: []string{"a"}})
	c.AddResource(&fakeResource{id: "broken", files: []string{"ws://gone.png"}})
	c.BuildCache()

	verdicts := drain(t, c)
	assert.Equal(t, map[string]bool{"a": true, "b": true, "broken": false}, verdicts)
	assert.Equal(t, domain.ValidityValid, validity(c, "a"))
	assert.Equal(t, domain.ValidityValid, validity(c, "b"))
	assert.Equal(t, domain.ValidityInvalid, validity(c, "broken"))
	assert.True(t, c.UnsafeGraph().HasNode("a"))

	c.Close()
}

func TestCache_DanglingDependencyIsInvalid(t *testing.T) {
	c := newTestCache(newFakeResolver(), nil)

	c.AddResource(&fakeResource{id: "p", deps: []string{"missing"}})
	c.BuildCache()

	verdicts := drain(t, c)
	assert.Equal(t, map[string]bool{"p": false}, verdicts)
}

// A broken first dependency must condemn the dependent without the
// second dependency or the dependent's own files ever being evaluated.
func TestCache_ShortCircuitSkipsLaterChecks(t *testing.T) {
	resolver := newFakeResolver()
	resolver.exists["ws://b.png"] = true
	c := newTestCache(resolver, nil)

	c.AddResource(&fakeResource{id: "a", files: []string{"ws://a.png"}})
	c.AddResource(&fakeResource{id: "b", files: []string{"ws://b.png"}})
	c.AddResource(&fakeResource{id: "m", deps: []string{"a", "b"}, files: []string{"ws://m.bin"}})
	c.BuildCache()

	verdicts := drain(t, c)
	assert.Equal(t, map[string]bool{"a": false, "b": true, "m": false}, verdicts)

	// One probe each for a and b from their own validation; none for m:
	// its validation stopped at the memoized invalid verdict of a.
	assert.Equal(t, 1, resolver.callCount("ws://a.png"))
	assert.Equal(t, 1, resolver.callCount("ws://b.png"))
	assert.Equal(t, 0, resolver.callCount("ws://m.bin"))
}

func TestCache_CascadeReachesTransitiveDependents(t *testing.T) {
	resolver := newFakeResolver()
	resolver.exists["ws://a.png"] = true
	c := newTestCache(resolver, nil)

	c.AddResource(&fakeResource{id: "a", files: []string{"ws://a.png"}})
	c.AddResource(&fakeResource{id: "b", deps: []string{"a"}})
	c.AddResource(&fakeResource{id: "c", deps: []string{"b"}})
	c.BuildCache()
	drain(t, c)

	// The file disappears behind the cache's back.
	resolver.exists["ws://a.png"] = false
	c.Revalidate([]string{"a"})

	verdicts := drain(t, c)
	assert.Equal(t, map[string]bool{"a": false, "b": false, "c": false}, verdicts)
	assert.Equal(t, domain.ValidityInvalid, validity(c, "b"))
	assert.Equal(t, domain.ValidityInvalid, validity(c, "c"))

	// And the recovery runs the same frontier in reverse.
	resolver.exists["ws://a.png"] = true
	c.Revalidate([]string{"a"})

	verdicts = drain(t, c)
	assert.Equal(t, map[string]bool{"a": true, "b": true, "c": true}, verdicts)

	c.Close()
}

func TestCache_DeletePropagatesToDependents(t *testing.T) {
	c := newTestCache(newFakeResolver(), nil)

	c.AddResource(&fakeResource{id: "m"})
	c.AddResource(&fakeResource{id: "p", deps: []string{"m"}})
	c.AddResource(&fakeResource{id: "q", deps: []string{"p"}})
	c.BuildCache()
	drain(t, c)

	c.DelResource("m")
	verdicts := drain(t, c)

	assert.Equal(t, map[string]bool{"p": false, "q": false}, verdicts)
	assert.NotContains(t, c.UnsafeResources(), "m")
	assert.False(t, c.UnsafeGraph().HasNode("m"))
}

func TestCache_ReAddResetsStaleVerdict(t *testing.T) {
	c := newTestCache(newFakeResolver(), nil)

	stale := &fakeResource{id: "a", validity: domain.ValidityInvalid}
	c.AddResource(stale)

	// The stored copy starts over at unknown and the caller's instance is
	// not aliased.
	assert.Equal(t, domain.ValidityUnknown, validity(c, "a"))
	assert.Equal(t, domain.ValidityInvalid, stale.validity)
	assert.NotSame(t, ports.Resource(stale), c.UnsafeResources()["a"])
}

func TestCache_RevalidateIsIdempotent(t *testing.T) {
	resolver := newFakeResolver()
	resolver.exists["ws://a.png"] = true
	c := newTestCache(resolver, nil)

	c.AddResource(&fakeResource{id: "a", files: []string{"ws://a.png"}})
	c.AddResource(&fakeResource{id: "b", deps: []string{"a"}})
	c.BuildCache()

	first := drain(t, c)
	c.Revalidate([]string{"a", "b"})
	second := drain(t, c)

	assert.Equal(t, first, second)
	assert.Equal(t, 2, c.UnsafeGraph().NodeCount())
}

func TestCache_RevalidateBeforeBuildIsNoOp(t *testing.T) {
	c := newTestCache(newFakeResolver(), nil)
	c.AddResource(&fakeResource{id: "a"})

	c.Revalidate([]string{"a"})
	assert.False(t, c.HasPendingWork())
}

func TestCache_UpdateSettings(t *testing.T) {
	c := newTestCache(newFakeResolver(), nil)

	settings := domain.DefaultProjectSettings()
	settings.ApplicationName = "asteroids"
	settings.TicksPerSecond = 120
	c.UpdateSettings(settings)

	assert.Equal(t, "asteroids", c.UnsafeSettings().ApplicationName)
	assert.Equal(t, uint(120), c.UnsafeSettings().TicksPerSecond)
}

func TestCache_TickRetiresHandlesInSubmissionOrder(t *testing.T) {
	pool := &manualPool{}
	c := cache.New(pool, nopStore{}, newFakeResolver(), &testLogger{})

	c.AddResource(&fakeResource{id: "a"})
	c.BuildCache()
	c.AddResource(&fakeResource{id: "b"})

	// The rebuild from BuildCache, then the queued add, rebuild and
	// validate for b.
	require.Len(t, pool.handles, 4)

	// A handle completing behind a still-running one must not be retired
	// past it.
	pool.complete(0)
	pool.complete(2)
	c.TickPendingWork()
	assert.True(t, c.HasPendingWork())

	for c.HasPendingWork() {
		c.TickPendingWork()
		for i, h := range pool.handles {
			if !h.done {
				pool.complete(i)
			}
		}
	}

	c.DequeuePendingUpdates()
	c.Close()
}

func TestCache_CloseWithPendingWorkPanics(t *testing.T) {
	pool := &manualPool{}
	c := cache.New(pool, nopStore{}, newFakeResolver(), &testLogger{})

	c.AddResource(&fakeResource{id: "a"})
	c.BuildCache()

	assert.PanicsWithValue(t, "resource cache closed with pending work", func() {
		c.Close()
	})
}

func TestCache_SaveWorkspaceSkipsPrimitives(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	store := mocks.NewMockWorkspaceStore(ctrl)
	c := newTestCache(newFakeResolver(), store)

	settings := domain.DefaultProjectSettings()
	settings.ApplicationName = "asteroids"
	c.UpdateSettings(settings)
	c.AddResource(&fakeResource{id: "ship", typ: "entity"})
	c.AddResource(&fakeResource{id: "_default_material", primitive: true})

	var saved domain.WorkspaceSnapshot
	store.EXPECT().SaveWorkspace(gomock.Any()).DoAndReturn(func(snap domain.WorkspaceSnapshot) error {
		saved = snap
		return nil
	})

	c.SaveWorkspace(map[string]any{"camera": "top"}, map[string]any{"pane": "left"}, "/tmp/ws")
	drain(t, c)

	assert.Equal(t, "/tmp/ws", saved.Dir)
	assert.Equal(t, "asteroids", saved.Settings.ApplicationName)
	assert.Equal(t, map[string]any{"camera": "top"}, saved.Properties)
	assert.Equal(t, map[string]any{"pane": "left"}, saved.UserProperties)
	require.Len(t, saved.Resources, 1)
	assert.Equal(t, "ship", saved.Resources[0].ID)
}

func TestCache_SaveWorkspaceFailureIsLoggedNotFatal(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	store := mocks.NewMockWorkspaceStore(ctrl)
	store.EXPECT().SaveWorkspace(gomock.Any()).Return(assert.AnError)

	log := &testLogger{}
	c := cache.New(&syncPool{}, store, newFakeResolver(), log)

	c.AddResource(&fakeResource{id: "a"})
	c.BuildCache()
	drain(t, c)
	valid := validity(c, "a")

	c.SaveWorkspace(nil, nil, "/tmp/ws")
	drain(t, c)

	require.Len(t, log.errs, 1)
	assert.ErrorIs(t, log.errs[0], assert.AnError)
	// Validity state survives the failed save untouched.
	assert.Equal(t, valid, validity(c, "a"))

	c.Close()
}
