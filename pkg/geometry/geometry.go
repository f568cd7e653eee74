// Package geometry provides the rectangle value types animated by flipbook.
//
// All values are in pixel coordinates with the origin at the top-left of
// the host surface. Types are plain values: copy them freely and compare
// them with ==.
package geometry

import (
	"fmt"
	"image"
	"math"

	"golang.org/x/image/math/fixed"
)

// epsilon is the tolerance for floating-point comparisons.
const epsilon = 0.0001

// Offset represents a 2D point or vector in pixel coordinates.
type Offset struct {
	X float64
	Y float64
}

// Size represents width and height dimensions in pixels.
type Size struct {
	Width  float64
	Height float64
}

// Rect is a rectangle described by its top-left position and its size.
type Rect struct {
	Position Offset
	Size     Size
}

// RectFromXYWH constructs a Rect from x, y, width, height values.
func RectFromXYWH(x, y, width, height float64) Rect {
	return Rect{
		Position: Offset{X: x, Y: y},
		Size:     Size{Width: width, Height: height},
	}
}

// Left returns the x coordinate of the left edge.
func (r Rect) Left() float64 {
	return r.Position.X
}

// Top returns the y coordinate of the top edge.
func (r Rect) Top() float64 {
	return r.Position.Y
}

// Right returns the x coordinate of the right edge.
func (r Rect) Right() float64 {
	return r.Position.X + r.Size.Width
}

// Bottom returns the y coordinate of the bottom edge.
func (r Rect) Bottom() float64 {
	return r.Position.Y + r.Size.Height
}

// Center returns the center point of the rectangle.
func (r Rect) Center() Offset {
	return Offset{
		X: r.Position.X + r.Size.Width*0.5,
		Y: r.Position.Y + r.Size.Height*0.5,
	}
}

// IsEmpty returns true if the rectangle has zero or negative area.
func (r Rect) IsEmpty() bool {
	return r.Size.Width <= 0 || r.Size.Height <= 0
}

// Translate returns a new rect offset by (dx, dy).
func (r Rect) Translate(dx, dy float64) Rect {
	r.Position.X += dx
	r.Position.Y += dy
	return r
}

// Lerp linearly interpolates every component of r toward other at t.
// t is not clamped so eased progress that overshoots [0, 1] moves the
// rectangle past either endpoint. t == 1 yields other exactly.
func (r Rect) Lerp(other Rect, t float64) Rect {
	if t == 1 {
		return other
	}
	return Rect{
		Position: LerpOffset(r.Position, other.Position, t),
		Size:     LerpSize(r.Size, other.Size, t),
	}
}

// ApproxEqual reports whether every component of r is within a small
// tolerance of the matching component of other.
func (r Rect) ApproxEqual(other Rect) bool {
	return floatEqual(r.Position.X, other.Position.X) &&
		floatEqual(r.Position.Y, other.Position.Y) &&
		floatEqual(r.Size.Width, other.Size.Width) &&
		floatEqual(r.Size.Height, other.Size.Height)
}

// CSS renders r as absolute positioning declarations.
func (r Rect) CSS() string {
	return fmt.Sprintf("width: %gpx; height: %gpx; left: %gpx; top: %gpx;",
		r.Size.Width, r.Size.Height, r.Position.X, r.Position.Y)
}

// String implements fmt.Stringer.
func (r Rect) String() string {
	return fmt.Sprintf("Rect(%g, %g, %gx%g)", r.Position.X, r.Position.Y, r.Size.Width, r.Size.Height)
}

// Image returns the integer pixel rectangle covering r.
func (r Rect) Image() image.Rectangle {
	return image.Rect(
		int(math.Floor(r.Left())),
		int(math.Floor(r.Top())),
		int(math.Ceil(r.Right())),
		int(math.Ceil(r.Bottom())),
	)
}

// Fixed returns r in 26.6 fixed-point coordinates for font and raster code.
func (r Rect) Fixed() fixed.Rectangle26_6 {
	return fixed.Rectangle26_6{
		Min: fixed.Point26_6{X: toFixed(r.Left()), Y: toFixed(r.Top())},
		Max: fixed.Point26_6{X: toFixed(r.Right()), Y: toFixed(r.Bottom())},
	}
}

func toFixed(v float64) fixed.Int26_6 {
	return fixed.Int26_6(math.Round(v * 64))
}

// LerpFloat64 linearly interpolates between two float64 values.
func LerpFloat64(a, b float64, t float64) float64 {
	return a + (b-a)*t
}

// LerpOffset linearly interpolates between two Offset values.
func LerpOffset(a, b Offset, t float64) Offset {
	return Offset{
		X: LerpFloat64(a.X, b.X, t),
		Y: LerpFloat64(a.Y, b.Y, t),
	}
}

// LerpSize linearly interpolates between two Size values.
func LerpSize(a, b Size, t float64) Size {
	return Size{
		Width:  LerpFloat64(a.Width, b.Width, t),
		Height: LerpFloat64(a.Height, b.Height, t),
	}
}

// floatEqual returns true if two float64 values are approximately equal.
func floatEqual(a, b float64) bool {
	return math.Abs(a-b) <= epsilon
}
