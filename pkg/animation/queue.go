package animation

// Queue is a FIFO backlog of pending builders.
//
// Queue has no locking of its own; the flipbook driver goroutine is its only
// owner.
type Queue struct {
	items []Builder
}

// NewQueue returns an empty queue.
func NewQueue() *Queue {
	return &Queue{}
}

// Push appends b to the back of the queue.
func (q *Queue) Push(b Builder) {
	q.items = append(q.items, b)
}

// PopFront removes and returns the oldest entry.
func (q *Queue) PopFront() (Builder, bool) {
	if len(q.items) == 0 {
		return Builder{}, false
	}
	b := q.items[0]
	q.items[0] = Builder{}
	q.items = q.items[1:]
	if len(q.items) == 0 {
		q.items = nil
	}
	return b, true
}

// DropAll discards every entry.
func (q *Queue) DropAll() {
	clear(q.items)
	q.items = nil
}

// PlayNow replaces the whole backlog with b.
func (q *Queue) PlayNow(b Builder) {
	q.DropAll()
	q.Push(b)
}

// IsEmpty reports whether the queue has no entries.
func (q *Queue) IsEmpty() bool {
	return len(q.items) == 0
}

// Size returns the number of entries.
func (q *Queue) Size() int {
	return len(q.items)
}

// Snapshot returns a copy of the pending entries, front first.
func (q *Queue) Snapshot() []Builder {
	out := make([]Builder, len(q.items))
	copy(out, q.items)
	return out
}
