// Package pool implements the task pool the resource cache submits its
// work to.
package pool

import (
	"sync"
	"sync/atomic"

	"go.trai.ch/ember/internal/core/ports"
)

var _ ports.TaskPool = (*Pool)(nil)

// handle is the pollable completion flag for one submitted task.
type handle struct {
	task ports.Task
	done atomic.Bool
}

// IsComplete reports whether the task has finished running.
func (h *handle) IsComplete() bool { return h.done.Load() }

// Task returns the submitted task once complete, nil before that.
func (h *handle) Task() ports.Task {
	if !h.done.Load() {
		return nil
	}
	return h.task
}

// Pool executes tasks on a single worker goroutine in strict submission
// order. That ordering is the contract the resource cache depends on;
// it is also what serializes two tasks touching the same resource id.
// Submit never blocks: the queue is unbounded.
type Pool struct {
	mu     sync.Mutex
	cond   *sync.Cond
	queue  []*handle
	closed bool
	wg     sync.WaitGroup
}

// New creates a pool and starts its worker goroutine.
func New() *Pool {
	p := &Pool{}
	p.cond = sync.NewCond(&p.mu)
	p.wg.Add(1)
	go p.worker()
	return p
}

// Submit appends the task to the execution queue and returns its handle.
// Submitting to a closed pool is a programming error and panics.
func (p *Pool) Submit(t ports.Task) ports.TaskHandle {
	h := &handle{task: t}

	p.mu.Lock()
	if p.closed {
		p.mu.Unlock()
		panic("task submitted to a closed pool")
	}
	p.queue = append(p.queue, h)
	p.cond.Signal()
	p.mu.Unlock()

	return h
}

// Close runs the queue dry and stops the worker. Blocks until the worker
// has exited.
func (p *Pool) Close() {
	p.mu.Lock()
	p.closed = true
	p.cond.Broadcast()
	p.mu.Unlock()
	p.wg.Wait()
}

func (p *Pool) worker() {
	defer p.wg.Done()
	for {
		p.mu.Lock()
		for len(p.queue) == 0 && !p.closed {
			p.cond.Wait()
		}
		if len(p.queue) == 0 {
			p.mu.Unlock()
			return
		}
		h := p.queue[0]
		p.queue = p.queue[1:]
		p.mu.Unlock()

		h.task.Run()
		h.done.Store(true)
	}
}
