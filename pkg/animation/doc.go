// Package animation drives rectangle animations for UI elements.
//
// # Core Components
//
//   - [Flipbook]: the controller handle. Commands (Queue, PlayNow, Pause,
//     Resume, DropAll, SetRect) are applied in order by a driver goroutine
//     that owns the backlog and the running task.
//
//   - [Builder]: an unresolved request. A nil From resolves to the current
//     rectangle when dequeued; a nil To makes the entry a pure delay.
//
//   - [Transition]: a resolved from/to interpolation. Step computes the
//     rectangle for a given running time and paces the caller to the
//     builder's frame rate cap.
//
//   - [Stopwatch]: running time that freezes while paused.
//
//   - [Easing]: the Penner curve family (linear, quad, cubic, quart,
//     quint, sine, expo, circ, elastic, back, bounce).
//
// # Basic Usage
//
//	fb := animation.New(animation.WithInitialRect(geometry.RectFromXYWH(0, 0, 100, 100)))
//	defer fb.Close()
//
//	fb.AddRectListener(func(r geometry.Rect) {
//	    host.Repaint(r)
//	})
//
//	fb.Queue(animation.NewBuilder().AnimateTo(geometry.RectFromXYWH(400, 0, 100, 100)))
//	fb.Queue(animation.NewDelay(250 * time.Millisecond))
//	fb.Queue(animation.NewBuilder().
//	    AnimateTo(geometry.RectFromXYWH(400, 300, 100, 100)).
//	    WithEasing(animation.BounceOut))
//
// Implicit origins that equal the destination are rejected as degenerate
// and skipped. Explicit origins always run for the full duration, even
// when they equal the destination.
package animation
