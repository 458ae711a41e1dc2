package cache_test

import (
	"io"
	"sync"

	"go.trai.ch/ember/internal/core/domain"
	"go.trai.ch/ember/internal/core/ports"
)

// fakeResource is a minimal in-memory ports.Resource for driving the
// cache without the content adapter.
type fakeResource struct {
	id        string
	typ       string
	primitive bool
	deps      []string
	files     []string
	validity  domain.Validity
}

func (r *fakeResource) ID() string                 { return r.id }
func (r *fakeResource) Type() string               { return r.typ }
func (r *fakeResource) IsPrimitive() bool          { return r.primitive }
func (r *fakeResource) ListDependencies() []string { return r.deps }
func (r *fakeResource) ListFileRefs() []string     { return r.files }

func (r *fakeResource) Validity() domain.Validity     { return r.validity }
func (r *fakeResource) SetValidity(v domain.Validity) { r.validity = v }

func (r *fakeResource) Clone() ports.Resource {
	cp := *r
	cp.deps = append([]string(nil), r.deps...)
	cp.files = append([]string(nil), r.files...)
	return &cp
}

func (r *fakeResource) Snapshot() domain.ResourceSnapshot {
	return domain.ResourceSnapshot{
		ID:           r.id,
		Type:         r.typ,
		Dependencies: append([]string(nil), r.deps...),
		Files:        append([]string(nil), r.files...),
	}
}

// fakeResolver answers existence from a map and counts queries per URI.
type fakeResolver struct {
	mu     sync.Mutex
	exists map[string]bool
	calls  map[string]int
}

func newFakeResolver() *fakeResolver {
	return &fakeResolver{
		exists: make(map[string]bool),
		calls:  make(map[string]int),
	}
}

func (f *fakeResolver) Resolve(uri string) (string, error) {
	return uri, nil
}

func (f *fakeResolver) Exists(uri string) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls[uri]++
	return f.exists[uri]
}

func (f *fakeResolver) callCount(uri string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls[uri]
}

// syncPool executes every task inline on Submit. It satisfies the
// ordering contract trivially and makes ticks deterministic.
type syncPool struct{}

type doneHandle struct {
	task ports.Task
}

func (h *doneHandle) IsComplete() bool { return true }
func (h *doneHandle) Task() ports.Task { return h.task }

func (p *syncPool) Submit(t ports.Task) ports.TaskHandle {
	t.Run()
	return &doneHandle{task: t}
}

// manualPool defers execution until the test releases tasks, to observe
// in-flight states.
type manualPool struct {
	handles []*manualHandle
}

type manualHandle struct {
	task ports.Task
	done bool
}

func (h *manualHandle) IsComplete() bool { return h.done }
func (h *manualHandle) Task() ports.Task { return h.task }

func (p *manualPool) Submit(t ports.Task) ports.TaskHandle {
	h := &manualHandle{task: t}
	p.handles = append(p.handles, h)
	return h
}

// complete runs the i-th submitted task and marks it done.
func (p *manualPool) complete(i int) {
	p.handles[i].task.Run()
	p.handles[i].done = true
}

// testLogger discards everything but keeps errors for assertions.
type testLogger struct {
	mu   sync.Mutex
	errs []error
}

func (l *testLogger) Debug(string, ...any) {}
func (l *testLogger) Info(string, ...any)  {}
func (l *testLogger) Warn(string, ...any)  {}

func (l *testLogger) Error(err error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.errs = append(l.errs, err)
}

func (l *testLogger) SetOutput(io.Writer) {}

func (l *testLogger) SetVerbose(bool) {}
func (l *testLogger) SetJSON(bool)    {}
