package animation

import (
	"sync"
	"time"
)

// Stopwatch accumulates running time across start/stop cycles.
//
// Elapsed time only advances while a lap is open. Stopping freezes the
// total, which is how a paused transition keeps its progress.
// The zero value is an idle stopwatch. All methods are safe for concurrent
// use.
type Stopwatch struct {
	mu       sync.Mutex
	lapStart time.Time
	running  bool
	elapsed  time.Duration
}

// Start opens a new lap. Starting a running stopwatch restarts the lap
// without folding the time since the previous lap start.
func (s *Stopwatch) Start() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lapStart = Now()
	s.running = true
}

// Stop closes the current lap without opening another.
func (s *Stopwatch) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lap()
	s.running = false
}

// Elapsed folds the current lap into the total, reopens a lap and returns
// the total. Calling it every frame is safe.
func (s *Stopwatch) Elapsed() time.Duration {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lap()
	return s.elapsed
}

// Clear resets the stopwatch to idle with zero elapsed time.
func (s *Stopwatch) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.running = false
	s.lapStart = time.Time{}
	s.elapsed = 0
}

// Running reports whether a lap is open.
func (s *Stopwatch) Running() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.running
}

func (s *Stopwatch) lap() {
	if !s.running {
		return
	}
	now := Now()
	if d := now.Sub(s.lapStart); d > 0 {
		s.elapsed += d
	}
	s.lapStart = now
}
