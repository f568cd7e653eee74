// Package render rasterizes recorded flipbook frames to PNG sequences and
// animated GIFs.
package render

import (
	"context"
	"fmt"
	"image"
	"image/color"
	"image/color/palette"
	"image/gif"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"time"

	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/go-drift/flipbook/pkg/animation"
)

// Default colors.
var (
	DefaultBackground = color.RGBA{R: 0x1e, G: 0x1e, B: 0x2e, A: 0xff}
	DefaultFill       = color.RGBA{R: 0x89, G: 0xb4, B: 0xfa, A: 0xff}
	DefaultText       = color.RGBA{R: 0xcd, G: 0xd6, B: 0xf4, A: 0xff}
)

// Options configures a Renderer. Zero colors fall back to the defaults and
// a zero scale to 1.
type Options struct {
	Width      int
	Height     int
	Scale      int
	Background color.Color
	Fill       color.Color
	Text       color.Color
	// Labels stamps each frame with its timestamp and rectangle.
	Labels bool
}

// Renderer draws frames onto a fixed-size canvas.
type Renderer struct {
	opts Options
	face font.Face
}

// New returns a renderer for opts.
func New(opts Options) *Renderer {
	if opts.Scale < 1 {
		opts.Scale = 1
	}
	if opts.Background == nil {
		opts.Background = DefaultBackground
	}
	if opts.Fill == nil {
		opts.Fill = DefaultFill
	}
	if opts.Text == nil {
		opts.Text = DefaultText
	}
	return &Renderer{opts: opts, face: basicfont.Face7x13}
}

// Bounds returns the output image bounds, after scaling.
func (r *Renderer) Bounds() image.Rectangle {
	return image.Rect(0, 0, r.opts.Width*r.opts.Scale, r.opts.Height*r.opts.Scale)
}

// Frame rasterizes a single frame.
func (r *Renderer) Frame(f animation.Frame) *image.RGBA {
	canvas := image.NewRGBA(image.Rect(0, 0, r.opts.Width, r.opts.Height))
	draw.Draw(canvas, canvas.Bounds(), image.NewUniform(r.opts.Background), image.Point{}, draw.Src)

	box := f.Rect.Image().Intersect(canvas.Bounds())
	if !box.Empty() {
		draw.Draw(canvas, box, image.NewUniform(r.opts.Fill), image.Point{}, draw.Over)
	}

	if r.opts.Labels {
		d := font.Drawer{
			Dst:  canvas,
			Src:  image.NewUniform(r.opts.Text),
			Face: r.face,
			Dot:  fixed.P(4, r.face.Metrics().Ascent.Ceil()+2),
		}
		d.DrawString(fmt.Sprintf("%5dms %v", f.At.Milliseconds(), f.Rect))
	}

	if r.opts.Scale == 1 {
		return canvas
	}
	scaled := image.NewRGBA(r.Bounds())
	draw.NearestNeighbor.Scale(scaled, scaled.Bounds(), canvas, canvas.Bounds(), draw.Src, nil)
	return scaled
}

// Animate rasterizes frames in order and hands each image to fn.
func (r *Renderer) Animate(ctx context.Context, frames []animation.Frame, fn func(i int, img image.Image) error) error {
	for i, f := range frames {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := fn(i, r.Frame(f)); err != nil {
			return err
		}
	}
	return nil
}

// WritePNGs writes one PNG per frame into dir and returns the file paths.
func (r *Renderer) WritePNGs(ctx context.Context, dir string, frames []animation.Frame) ([]string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create output directory: %w", err)
	}

	paths := make([]string, 0, len(frames))
	err := r.Animate(ctx, frames, func(i int, img image.Image) error {
		path := filepath.Join(dir, fmt.Sprintf("frame_%04d.png", i))
		if err := writePNG(path, img); err != nil {
			return err
		}
		paths = append(paths, path)
		return nil
	})
	return paths, err
}

func writePNG(path string, img image.Image) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()
	return png.Encode(f, img)
}

// WriteGIF encodes frames as a looping animated GIF. Each frame is held
// until the next one was committed; the last frame is held for hold.
func (r *Renderer) WriteGIF(ctx context.Context, w io.Writer, frames []animation.Frame, hold time.Duration) error {
	anim := &gif.GIF{}
	err := r.Animate(ctx, frames, func(i int, img image.Image) error {
		paletted := image.NewPaletted(img.Bounds(), palette.Plan9)
		draw.Draw(paletted, paletted.Bounds(), img, img.Bounds().Min, draw.Src)

		d := hold
		if i+1 < len(frames) {
			d = frames[i+1].At - frames[i].At
		}
		anim.Image = append(anim.Image, paletted)
		anim.Delay = append(anim.Delay, gifDelay(d))
		return nil
	})
	if err != nil {
		return err
	}
	if len(anim.Image) == 0 {
		return fmt.Errorf("no frames to encode")
	}
	return gif.EncodeAll(w, anim)
}

// gifDelay converts d to GIF delay units (1/100 s). Browsers clamp delays
// below 2 units, so shorter gaps are rounded up.
func gifDelay(d time.Duration) int {
	units := int((d + 5*time.Millisecond) / (10 * time.Millisecond))
	return max(units, 2)
}
