package animation

import (
	"context"
	"time"

	"github.com/go-drift/flipbook/pkg/geometry"
)

// Transition is a running interpolation between two resolved rectangles.
//
// Step is called repeatedly with the total running time; it computes the
// rectangle for that instant and paces the caller to the builder's frame
// rate cap. A Transition is owned by a single stepping goroutine.
type Transition struct {
	tween            *Tween[geometry.Rect]
	easing           Easing
	duration         time.Duration
	minFrameDuration time.Duration
	linearProgress   float32
}

// NewTransition binds b to concrete endpoints.
func NewTransition(b Builder, from, to geometry.Rect) *Transition {
	return &Transition{
		tween:            TweenRect(from, to),
		easing:           b.Easing,
		duration:         b.Duration,
		minFrameDuration: b.FrameDuration(),
	}
}

// Step computes the rectangle at totalElapsed and returns it after at
// least the minimum frame duration has passed since the call began.
//
// If ctx is cancelled while pacing, Step returns the computed rectangle
// together with the context error.
func (t *Transition) Step(ctx context.Context, totalElapsed time.Duration) (geometry.Rect, error) {
	frameStart := Now()

	t.linearProgress = t.progressAt(totalElapsed)
	var current geometry.Rect
	if t.linearProgress >= 1 {
		current = t.tween.End
	} else {
		eased := t.easing.Ease(t.linearProgress)
		current = t.tween.Evaluate(float64(eased))
	}

	frameDuration := Now().Sub(frameStart)
	if frameDuration < t.minFrameDuration {
		if err := Sleep(ctx, t.minFrameDuration-frameDuration); err != nil {
			return current, err
		}
	}
	return current, nil
}

func (t *Transition) progressAt(elapsed time.Duration) float32 {
	if t.duration <= 0 {
		return 1
	}
	p := elapsed.Seconds() / t.duration.Seconds()
	switch {
	case p < 0:
		p = 0
	case p > 1:
		p = 1
	}
	return float32(p)
}

// IsFinished reports whether the last step reached the end of the duration.
func (t *Transition) IsFinished() bool {
	return t.linearProgress >= 1
}

// Progress returns the linear progress of the last step in [0, 1].
func (t *Transition) Progress() float32 {
	return t.linearProgress
}

// From returns the origin.
func (t *Transition) From() geometry.Rect {
	return t.tween.Begin
}

// To returns the destination.
func (t *Transition) To() geometry.Rect {
	return t.tween.End
}

// Duration returns the configured length.
func (t *Transition) Duration() time.Duration {
	return t.duration
}

// MinFrameDuration returns the pacing interval derived from the fps cap.
func (t *Transition) MinFrameDuration() time.Duration {
	return t.minFrameDuration
}
