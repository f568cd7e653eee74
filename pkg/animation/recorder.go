package animation

import (
	"sync"
	"time"

	"github.com/go-drift/flipbook/pkg/geometry"
)

// Frame is a committed rectangle and the time it was committed, relative
// to the start of a recording.
type Frame struct {
	At   time.Duration
	Rect geometry.Rect
}

// Recorder captures every rectangle a Flipbook commits.
type Recorder struct {
	mu          sync.Mutex
	start       time.Time
	frames      []Frame
	unsubscribe func()
}

// Record starts capturing frames from f.
func Record(f *Flipbook) *Recorder {
	r := &Recorder{start: Now()}
	r.unsubscribe = f.AddRectListener(r.add)
	return r
}

func (r *Recorder) add(rect geometry.Rect) {
	now := Now()
	r.mu.Lock()
	defer r.mu.Unlock()
	r.frames = append(r.frames, Frame{At: now.Sub(r.start), Rect: rect})
}

// Frames returns a copy of the captured frames in commit order.
func (r *Recorder) Frames() []Frame {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Frame, len(r.frames))
	copy(out, r.frames)
	return out
}

// Reset discards captured frames and restarts the time base.
func (r *Recorder) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.frames = nil
	r.start = Now()
}

// Stop detaches the recorder from its flipbook.
func (r *Recorder) Stop() {
	if r.unsubscribe != nil {
		r.unsubscribe()
	}
}
