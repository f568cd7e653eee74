package animation

import "github.com/go-drift/flipbook/pkg/geometry"

// Tween interpolates between Begin and End values based on eased progress.
//
// Use [TweenRect] for rectangles or create custom tweens with a Lerp
// function. See ExampleTween_customType.
type Tween[T any] struct {
	// Begin is the starting value (when t = 0).
	Begin T
	// End is the ending value (when t = 1).
	End T
	// Lerp interpolates between Begin and End. t may fall outside [0, 1]
	// for overshooting curves.
	Lerp func(a, b T, t float64) T
}

// Evaluate returns the interpolated value at t.
func (tw *Tween[T]) Evaluate(t float64) T {
	if tw.Lerp == nil {
		return tw.End
	}
	return tw.Lerp(tw.Begin, tw.End, t)
}

// LerpRect linearly interpolates between two rectangles.
func LerpRect(a, b geometry.Rect, t float64) geometry.Rect {
	return a.Lerp(b, t)
}

// TweenRect creates a tween for rectangles.
func TweenRect(begin, end geometry.Rect) *Tween[geometry.Rect] {
	return &Tween[geometry.Rect]{
		Begin: begin,
		End:   end,
		Lerp:  LerpRect,
	}
}

// TweenFloat64 creates a tween for float64 values.
func TweenFloat64(begin, end float64) *Tween[float64] {
	return &Tween[float64]{
		Begin: begin,
		End:   end,
		Lerp:  geometry.LerpFloat64,
	}
}
