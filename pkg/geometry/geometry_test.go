package geometry

import (
	"image"
	"testing"

	"golang.org/x/image/math/fixed"
)

func TestRectLerpEndpoints(t *testing.T) {
	tests := []struct {
		name string
		a, b Rect
	}{
		{"move", RectFromXYWH(0, 0, 100, 100), RectFromXYWH(400, 0, 100, 100)},
		{"grow", RectFromXYWH(10, 10, 50, 50), RectFromXYWH(10, 10, 200, 300)},
		{"both", RectFromXYWH(-20, 35.5, 1, 1), RectFromXYWH(0.1, 0.2, 0.3, 0.4)},
		{"same", RectFromXYWH(1, 2, 3, 4), RectFromXYWH(1, 2, 3, 4)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.Lerp(tt.b, 0); !got.ApproxEqual(tt.a) {
				t.Errorf("Lerp(0) = %v, want %v", got, tt.a)
			}
			if got := tt.a.Lerp(tt.b, 1); got != tt.b {
				t.Errorf("Lerp(1) = %v, want %v", got, tt.b)
			}
		})
	}
}

func TestRectLerpMidpoint(t *testing.T) {
	a := RectFromXYWH(0, 0, 100, 100)
	b := RectFromXYWH(200, 100, 300, 50)
	got := a.Lerp(b, 0.5)
	want := RectFromXYWH(100, 50, 200, 75)
	if !got.ApproxEqual(want) {
		t.Errorf("Lerp(0.5) = %v, want %v", got, want)
	}
}

func TestRectLerpOvershoot(t *testing.T) {
	a := RectFromXYWH(0, 0, 10, 10)
	b := RectFromXYWH(100, 0, 10, 10)

	if got := a.Lerp(b, 1.1).Position.X; !floatEqual(got, 110) {
		t.Errorf("Lerp(1.1).X = %v, want 110", got)
	}
	if got := a.Lerp(b, -0.1).Position.X; !floatEqual(got, -10) {
		t.Errorf("Lerp(-0.1).X = %v, want -10", got)
	}
}

func TestRectEdges(t *testing.T) {
	r := RectFromXYWH(10, 20, 30, 40)
	if r.Left() != 10 || r.Top() != 20 || r.Right() != 40 || r.Bottom() != 60 {
		t.Errorf("edges = %v,%v,%v,%v", r.Left(), r.Top(), r.Right(), r.Bottom())
	}
	if c := r.Center(); c != (Offset{X: 25, Y: 40}) {
		t.Errorf("Center() = %v, want {25 40}", c)
	}
	if got := r.Translate(5, -5); got != RectFromXYWH(15, 15, 30, 40) {
		t.Errorf("Translate() = %v", got)
	}
	if r.IsEmpty() {
		t.Error("expected non-empty rect")
	}
	if !RectFromXYWH(0, 0, 0, 10).IsEmpty() {
		t.Error("expected zero-width rect to be empty")
	}
}

func TestRectCSS(t *testing.T) {
	got := RectFromXYWH(400, 0, 100, 50.5).CSS()
	want := "width: 100px; height: 50.5px; left: 400px; top: 0px;"
	if got != want {
		t.Errorf("CSS() = %q, want %q", got, want)
	}
}

func TestRectImage(t *testing.T) {
	got := RectFromXYWH(0.5, 1.2, 10, 10).Image()
	want := image.Rect(0, 1, 11, 12)
	if got != want {
		t.Errorf("Image() = %v, want %v", got, want)
	}
}

func TestRectFixed(t *testing.T) {
	got := RectFromXYWH(1, 2, 3, 4).Fixed()
	want := fixed.R(1, 2, 4, 6)
	if got != want {
		t.Errorf("Fixed() = %v, want %v", got, want)
	}
}

func TestRectStructuralEquality(t *testing.T) {
	a := RectFromXYWH(0, 0, 200, 200)
	b := Rect{Position: Offset{}, Size: Size{Width: 200, Height: 200}}
	if a != b {
		t.Errorf("%v != %v", a, b)
	}
}
