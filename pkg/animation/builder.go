package animation

import (
	"fmt"
	"time"

	"github.com/go-drift/flipbook/pkg/errors"
	"github.com/go-drift/flipbook/pkg/geometry"
)

// Supported frame rate caps, in frames per second.
const (
	MaxRate60Hz  uint64 = 60
	MaxRate90Hz  uint64 = 90
	MaxRate120Hz uint64 = 120
)

// DefaultDuration is the transition length used by NewBuilder.
const DefaultDuration = 1000 * time.Millisecond

// Builder describes a queued animation request before its endpoints are
// resolved.
//
// A nil From resolves to the flipbook's current rectangle when the entry is
// dequeued. A nil To makes the entry a pure delay: it consumes Duration of
// wall time without moving anything.
//
// Builder methods use value receivers and return the modified copy, so
// requests can be chained:
//
//	b := animation.NewBuilder().
//	    AnimateTo(geometry.RectFromXYWH(400, 0, 100, 100)).
//	    WithEasing(animation.BackOut).
//	    AtMax120Hz()
type Builder struct {
	From     *geometry.Rect
	To       *geometry.Rect
	Duration time.Duration
	Easing   Easing
	FPSCap   uint64
}

// NewBuilder returns a builder with the default duration, easing and cap.
func NewBuilder() Builder {
	return Builder{
		Duration: DefaultDuration,
		Easing:   DefaultEasing,
		FPSCap:   MaxRate60Hz,
	}
}

// NewDelay returns a pure delay entry lasting d.
func NewDelay(d time.Duration) Builder {
	return NewBuilder().WithDuration(d)
}

// AnimateFrom sets an explicit origin.
func (b Builder) AnimateFrom(from geometry.Rect) Builder {
	b.From = &from
	return b
}

// AnimateTo sets the destination.
func (b Builder) AnimateTo(to geometry.Rect) Builder {
	b.To = &to
	return b
}

// WithDuration sets the transition length.
func (b Builder) WithDuration(d time.Duration) Builder {
	b.Duration = d
	return b
}

// WithEasing sets the curve.
func (b Builder) WithEasing(e Easing) Builder {
	b.Easing = e
	return b
}

// WithFPSCap sets the frame rate cap.
func (b Builder) WithFPSCap(fps uint64) Builder {
	b.FPSCap = fps
	return b
}

// AtMax90Hz caps stepping at 90 frames per second.
func (b Builder) AtMax90Hz() Builder {
	return b.WithFPSCap(MaxRate90Hz)
}

// AtMax120Hz caps stepping at 120 frames per second.
func (b Builder) AtMax120Hz() Builder {
	return b.WithFPSCap(MaxRate120Hz)
}

// IsDelay reports whether the entry has no destination.
func (b Builder) IsDelay() bool {
	return b.To == nil
}

// FrameDuration returns the minimum time a single step may take, in whole
// milliseconds. A cap outside the supported set falls back to 60Hz.
func (b Builder) FrameDuration() time.Duration {
	fps := b.FPSCap
	if !supportedCap(fps) {
		fps = MaxRate60Hz
	}
	return time.Duration(1000/fps) * time.Millisecond
}

// Validate reports configuration the engine would silently normalize.
func (b Builder) Validate() error {
	if !supportedCap(b.FPSCap) {
		return &errors.Error{
			Op:   "animation.Builder.Validate",
			Kind: errors.KindConfig,
			Err:  fmt.Errorf("fps cap %d is not one of 60, 90, 120", b.FPSCap),
		}
	}
	if !b.Easing.valid() {
		return &errors.Error{
			Op:   "animation.Builder.Validate",
			Kind: errors.KindConfig,
			Err:  fmt.Errorf("invalid easing %d", int(b.Easing)),
		}
	}
	return nil
}

func (b Builder) String() string {
	switch {
	case b.IsDelay():
		return fmt.Sprintf("delay(%v)", b.Duration)
	case b.From == nil:
		return fmt.Sprintf("to %v over %v (%v)", *b.To, b.Duration, b.Easing)
	default:
		return fmt.Sprintf("%v to %v over %v (%v)", *b.From, *b.To, b.Duration, b.Easing)
	}
}

func supportedCap(fps uint64) bool {
	return fps == MaxRate60Hz || fps == MaxRate90Hz || fps == MaxRate120Hz
}
