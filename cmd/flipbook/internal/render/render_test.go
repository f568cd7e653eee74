package render

import (
	"bytes"
	"context"
	"image"
	"image/color"
	"image/gif"
	"os"
	"testing"
	"time"

	"github.com/go-drift/flipbook/pkg/animation"
	"github.com/go-drift/flipbook/pkg/geometry"
)

func sameColor(a, b color.Color) bool {
	r1, g1, b1, a1 := a.RGBA()
	r2, g2, b2, a2 := b.RGBA()
	return r1 == r2 && g1 == g2 && b1 == b2 && a1 == a2
}

func sampleFrames() []animation.Frame {
	return []animation.Frame{
		{At: 0, Rect: geometry.RectFromXYWH(0, 0, 10, 10)},
		{At: 40 * time.Millisecond, Rect: geometry.RectFromXYWH(20, 0, 10, 10)},
		{At: 41 * time.Millisecond, Rect: geometry.RectFromXYWH(40, 0, 10, 10)},
	}
}

func TestFrameFillsRect(t *testing.T) {
	r := New(Options{Width: 64, Height: 32})
	img := r.Frame(animation.Frame{Rect: geometry.RectFromXYWH(8, 8, 16, 16)})

	if got := img.Bounds(); got != image.Rect(0, 0, 64, 32) {
		t.Fatalf("Bounds() = %v", got)
	}
	if c := img.At(16, 16); !sameColor(c, DefaultFill) {
		t.Errorf("inside rect = %v, want fill", c)
	}
	if c := img.At(40, 20); !sameColor(c, DefaultBackground) {
		t.Errorf("outside rect = %v, want background", c)
	}
	if c := img.At(24, 16); !sameColor(c, DefaultBackground) {
		t.Errorf("right edge is exclusive, got %v", c)
	}
}

func TestFrameClipsToCanvas(t *testing.T) {
	r := New(Options{Width: 20, Height: 20})
	img := r.Frame(animation.Frame{Rect: geometry.RectFromXYWH(-50, -50, 10, 10)})
	for y := 0; y < 20; y++ {
		for x := 0; x < 20; x++ {
			if !sameColor(img.At(x, y), DefaultBackground) {
				t.Fatalf("pixel (%d,%d) painted for an off-canvas rect", x, y)
			}
		}
	}
}

func TestFrameScale(t *testing.T) {
	r := New(Options{Width: 10, Height: 10, Scale: 3})
	img := r.Frame(animation.Frame{Rect: geometry.RectFromXYWH(0, 0, 5, 10)})

	if got := img.Bounds(); got != image.Rect(0, 0, 30, 30) {
		t.Fatalf("Bounds() = %v, want 30x30", got)
	}
	if c := img.At(14, 15); !sameColor(c, DefaultFill) {
		t.Errorf("scaled inside = %v, want fill", c)
	}
	if c := img.At(15, 15); !sameColor(c, DefaultBackground) {
		t.Errorf("scaled outside = %v, want background", c)
	}
}

func TestFrameLabels(t *testing.T) {
	plain := New(Options{Width: 200, Height: 40}).Frame(animation.Frame{})
	labeled := New(Options{Width: 200, Height: 40, Labels: true}).Frame(animation.Frame{})

	if bytes.Equal(plain.Pix, labeled.Pix) {
		t.Error("labels did not change the image")
	}
}

func TestWritePNGs(t *testing.T) {
	dir := t.TempDir()
	r := New(Options{Width: 16, Height: 16})

	paths, err := r.WritePNGs(context.Background(), dir, sampleFrames())
	if err != nil {
		t.Fatalf("WritePNGs() error: %v", err)
	}
	if len(paths) != 3 {
		t.Fatalf("wrote %d files, want 3", len(paths))
	}
	for _, p := range paths {
		f, err := os.Open(p)
		if err != nil {
			t.Fatal(err)
		}
		_, format, err := image.Decode(f)
		f.Close()
		if err != nil || format != "png" {
			t.Errorf("%s: format %q, err %v", p, format, err)
		}
	}
}

func TestWriteGIF(t *testing.T) {
	var buf bytes.Buffer
	r := New(Options{Width: 64, Height: 16})

	if err := r.WriteGIF(context.Background(), &buf, sampleFrames(), time.Second); err != nil {
		t.Fatalf("WriteGIF() error: %v", err)
	}
	anim, err := gif.DecodeAll(&buf)
	if err != nil {
		t.Fatalf("DecodeAll() error: %v", err)
	}
	if len(anim.Image) != 3 {
		t.Fatalf("decoded %d frames, want 3", len(anim.Image))
	}
	want := []int{4, 2, 100}
	for i, d := range anim.Delay {
		if d != want[i] {
			t.Errorf("Delay[%d] = %d, want %d", i, d, want[i])
		}
	}
}

func TestWriteGIFEmpty(t *testing.T) {
	var buf bytes.Buffer
	if err := New(Options{Width: 4, Height: 4}).WriteGIF(context.Background(), &buf, nil, time.Second); err == nil {
		t.Error("expected error for empty frame list")
	}
}

func TestAnimateCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	calls := 0
	err := New(Options{Width: 4, Height: 4}).Animate(ctx, sampleFrames(), func(int, image.Image) error {
		calls++
		return nil
	})
	if err == nil || calls != 0 {
		t.Errorf("Animate() = %v after %d calls, want cancellation before any frame", err, calls)
	}
}
