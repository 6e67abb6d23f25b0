package events

import (
	"context"
	"fmt"
	"sync"

	"github.com/renato0307/tabstash/internal/logging"
)

// Task is a unit of work executed on the queue goroutine
type Task func(ctx context.Context)

// Queue runs tasks one at a time in submission order.
// Post never blocks, so a running task may enqueue more work.
type Queue struct {
	mu      sync.Mutex
	pending []Task
	wake    chan struct{}
}

// NewQueue creates an empty Queue
func NewQueue() *Queue {
	return &Queue{wake: make(chan struct{}, 1)}
}

// Post enqueues a task
func (q *Queue) Post(task Task) {
	q.mu.Lock()
	q.pending = append(q.pending, task)
	q.mu.Unlock()

	select {
	case q.wake <- struct{}{}:
	default:
	}
}

// Do enqueues a task and waits until it has run or ctx is done.
// A panicking task is reported as an error.
// It must not be called from the queue goroutine.
func (q *Queue) Do(ctx context.Context, task Task) error {
	done := make(chan error, 1)
	q.Post(func(ctx context.Context) {
		defer func() {
			if r := recover(); r != nil {
				done <- fmt.Errorf("task panicked: %v", r)
				panic(r)
			}
			done <- nil
		}()
		task(ctx)
	})

	select {
	case err := <-done:
		return err
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Len returns the number of tasks waiting to run
func (q *Queue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.pending)
}

// Run processes tasks until ctx is cancelled
func (q *Queue) Run(ctx context.Context) error {
	logging.Logger.Info("Task queue started")
	for {
		q.Drain(ctx)

		select {
		case <-ctx.Done():
			logging.Logger.Info("Task queue stopped", "pending", q.Len())
			return nil
		case <-q.wake:
		}
	}
}

// Drain runs queued tasks on the calling goroutine until the queue is empty
// and returns how many ran. Tasks posted while draining are run too.
func (q *Queue) Drain(ctx context.Context) int {
	ran := 0
	for {
		task, ok := q.next()
		if !ok {
			return ran
		}
		q.run(ctx, task)
		ran++
	}
}

func (q *Queue) next() (Task, bool) {
	q.mu.Lock()
	defer q.mu.Unlock()
	if len(q.pending) == 0 {
		return nil, false
	}
	task := q.pending[0]
	q.pending[0] = nil
	q.pending = q.pending[1:]
	return task, true
}

func (q *Queue) run(ctx context.Context, task Task) {
	defer func() {
		if r := recover(); r != nil {
			logging.Logger.Error("Task panicked", "panic", r)
		}
	}()
	task(ctx)
}
