package ports

// Task is a unit of asynchronous cache work. Run executes on a pool
// worker; the name and description exist for logging only.
type Task interface {
	// Name returns a short machine-friendly task name, e.g. "AddCacheResource".
	Name() string

	// Description returns the human-readable one-liner logged when the
	// task completes.
	Description() string

	// Run performs the work. It must acquire whatever locks it needs and
	// must not block indefinitely; there is no cancellation path.
	Run()
}

// TaskHandle is a non-blocking reference to a submitted task.
type TaskHandle interface {
	// IsComplete reports whether the task has finished running. It must
	// be safe to poll from the submitting goroutine at any time.
	IsComplete() bool

	// Task returns the submitted task for post-hoc inspection. Only valid
	// once IsComplete reports true.
	Task() Task
}

// TaskPool is the external executor the cache hands its tasks to.
//
// The contract the cache requires: Submit is called only from the cache's
// owning goroutine, and tasks execute in strict submission order with no
// overlap. The pool adapter satisfies this with a single worker; it is
// what serializes two tasks that touch the same resource id.
//
//go:generate mockgen -source=pool.go -destination=mocks/mock_pool.go -package=mocks
type TaskPool interface {
	Submit(t Task) TaskHandle
}
