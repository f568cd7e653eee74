package animation

import (
	"context"
	"fmt"
	"sync"

	"github.com/go-drift/flipbook/pkg/errors"
)

// Task is a cancellable, pausable unit of background work.
//
// Pausing is cooperative: the task body calls Checkpoint at each point where
// it is safe to suspend, and Checkpoint blocks while the task is paused.
// Cancellation is immediate for anything waiting on the task context.
type Task struct {
	ctx    context.Context
	cancel context.CancelFunc
	done   chan struct{}

	mu     sync.Mutex
	paused bool
	resume chan struct{}
	err    error
}

// Spawn runs fn on a new goroutine and returns its handle. A panic in fn is
// recovered, reported under op and stored as the task error.
func Spawn(parent context.Context, op string, fn func(t *Task) error) *Task {
	ctx, cancel := context.WithCancel(parent)
	t := &Task{
		ctx:    ctx,
		cancel: cancel,
		done:   make(chan struct{}),
	}
	go t.run(op, fn)
	return t
}

func (t *Task) run(op string, fn func(t *Task) error) {
	var err error
	defer func() {
		t.mu.Lock()
		t.err = err
		t.paused = false
		t.mu.Unlock()
		t.cancel()
		close(t.done)
	}()
	defer errors.RecoverWithCallback(op, func(r any) {
		err = fmt.Errorf("%s: panic: %v", op, r)
	})
	err = fn(t)
}

// Context returns the context cancelled by Cancel.
func (t *Task) Context() context.Context {
	return t.ctx
}

// Checkpoint blocks while the task is paused. It returns the context error
// once the task is cancelled.
func (t *Task) Checkpoint() error {
	for {
		t.mu.Lock()
		if !t.paused {
			t.mu.Unlock()
			return t.ctx.Err()
		}
		wait := t.resume
		t.mu.Unlock()

		select {
		case <-wait:
		case <-t.ctx.Done():
			return t.ctx.Err()
		}
	}
}

// Pause suspends the task at its next checkpoint. Pausing a finished or
// already paused task does nothing.
func (t *Task) Pause() {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.paused || t.finished() {
		return
	}
	t.paused = true
	t.resume = make(chan struct{})
}

// Resume releases a paused task.
func (t *Task) Resume() {
	t.mu.Lock()
	defer t.mu.Unlock()
	if !t.paused {
		return
	}
	t.paused = false
	close(t.resume)
}

// Paused reports whether the task is suspended.
func (t *Task) Paused() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.paused
}

// Cancel stops the task. It does not wait for the body to return.
func (t *Task) Cancel() {
	t.cancel()
}

// Done is closed after the task body returns.
func (t *Task) Done() <-chan struct{} {
	return t.done
}

// Err returns the body's error after Done is closed.
func (t *Task) Err() error {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.err
}

func (t *Task) finished() bool {
	select {
	case <-t.done:
		return true
	default:
		return false
	}
}
