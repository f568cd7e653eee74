package animation

import "sync"

// Cell is a mutable observable value.
//
// Writes are serialized and readers always see the latest committed write.
// Listeners run on the writing goroutine, in registration order, only when
// the value actually changes. A listener must not write to the same cell.
type Cell[T comparable] struct {
	mu        sync.RWMutex
	value     T
	listeners []cellListener[T]
	nextID    int
}

type cellListener[T any] struct {
	id int
	fn func(T)
}

// NewCell creates a cell holding initial.
func NewCell[T comparable](initial T) *Cell[T] {
	return &Cell[T]{value: initial}
}

// Get returns the current value.
func (c *Cell[T]) Get() T {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.value
}

// Set stores v and notifies listeners if it differs from the current value.
// It reports whether the value changed.
func (c *Cell[T]) Set(v T) bool {
	c.mu.Lock()
	if c.value == v {
		c.mu.Unlock()
		return false
	}
	c.value = v
	listeners := make([]cellListener[T], len(c.listeners))
	copy(listeners, c.listeners)
	c.mu.Unlock()

	for _, l := range listeners {
		l.fn(v)
	}
	return true
}

// AddListener adds a callback that fires whenever the value changes.
// Returns an unsubscribe function.
func (c *Cell[T]) AddListener(fn func(T)) func() {
	c.mu.Lock()
	defer c.mu.Unlock()
	id := c.nextID
	c.nextID++
	c.listeners = append(c.listeners, cellListener[T]{id: id, fn: fn})
	return func() {
		c.mu.Lock()
		defer c.mu.Unlock()
		for i, l := range c.listeners {
			if l.id == id {
				c.listeners = append(c.listeners[:i:i], c.listeners[i+1:]...)
				return
			}
		}
	}
}
