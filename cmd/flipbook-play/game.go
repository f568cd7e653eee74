package main

import (
	"fmt"
	"image/color"
	"log"
	"sync/atomic"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/go-drift/flipbook/internal/debug"
	"github.com/go-drift/flipbook/internal/savedata"
	"github.com/go-drift/flipbook/pkg/animation"
	"github.com/go-drift/flipbook/pkg/geometry"
)

const (
	nudgeStep  = 10
	delayStep  = 500 * time.Millisecond
	moveLength = 800 * time.Millisecond
)

var (
	backgroundColor = color.RGBA{25, 25, 38, 255}
	outlineColor    = color.RGBA{255, 255, 200, 255}
	laneColor       = color.RGBA{40, 40, 58, 255}
)

// element is one animated rectangle confined to a lane of the window.
type element struct {
	name      string
	lane      geometry.Rect
	fill      color.RGBA
	fb        *animation.Flipbook
	waypoints []geometry.Rect
	next      int
	paused    atomic.Bool
}

func newElement(name string, lane geometry.Rect, fill color.RGBA, start geometry.Rect, logger *log.Logger) *element {
	el := &element{
		name: name,
		lane: lane,
		fill: fill,
		fb:   animation.New(animation.WithInitialRect(start), animation.WithLogger(logger)),
	}
	// Corners and centre of the lane, inset by a margin.
	const margin = 20
	w, h := start.Size.Width, start.Size.Height
	left, top := lane.Left()+margin, lane.Top()+margin
	right, bottom := lane.Right()-margin-w, lane.Bottom()-margin-h
	el.waypoints = []geometry.Rect{
		geometry.RectFromXYWH(right, top, w, h),
		geometry.RectFromXYWH(right, bottom, w, h),
		geometry.RectFromXYWH(left, bottom, w, h),
		geometry.RectFromXYWH((left+right)/2, (top+bottom)/2, w*1.5, h*1.5),
		geometry.RectFromXYWH(left, top, w, h),
	}
	el.fb.AddStatusListener(func(s animation.Status) {
		if s == animation.Resting {
			el.paused.Store(false)
		}
	})
	return el
}

func (el *element) nextWaypoint() geometry.Rect {
	r := el.waypoints[el.next]
	el.next = (el.next + 1) % len(el.waypoints)
	return r
}

// game implements ebiten.Game for two flipbooks side by side.
type game struct {
	store    *savedata.Store
	elements []*element
	selected int
	easing   animation.Easing
}

func newGame(store *savedata.Store, logger *log.Logger, reset bool) *game {
	g := &game{store: store, easing: animation.DefaultEasing}

	half := float64(screenWidth) / 2
	lanes := []struct {
		name  string
		lane  geometry.Rect
		fill  color.RGBA
		start geometry.Rect
	}{
		{"left", geometry.RectFromXYWH(0, 60, half, screenHeight-60), color.RGBA{137, 180, 250, 255}, geometry.RectFromXYWH(20, 80, 80, 80)},
		{"right", geometry.RectFromXYWH(half, 60, half, screenHeight-60), color.RGBA{243, 139, 168, 255}, geometry.RectFromXYWH(half+20, 80, 80, 80)},
	}

	for _, l := range lanes {
		start := l.start
		if reset {
			if err := store.Forget(l.name); err != nil {
				log.Printf("[flipbook-play] Warning: %v", err)
			}
		} else if saved, ok, err := store.LoadRect(l.name); err != nil {
			log.Printf("[flipbook-play] Warning: %v (using default position)", err)
		} else if ok {
			start = saved
		}
		g.elements = append(g.elements, newElement(l.name, l.lane, l.fill, start, logger))
	}
	return g
}

// Close saves the final positions and stops every flipbook.
func (g *game) Close() {
	for _, el := range g.elements {
		if r, ok := el.fb.CurrentRect(); ok {
			if err := g.store.SaveRect(el.name, r); err != nil {
				log.Printf("[flipbook-play] Warning: %v", err)
			}
		}
		el.fb.Close()
	}
}

func (g *game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyTab) {
		g.selected = (g.selected + 1) % len(g.elements)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyE) {
		g.easing = (g.easing + 1) % animation.Easing(len(animation.Easings()))
		debug.Log("[flipbook-play] easing %v", g.easing)
	}

	el := g.elements[g.selected]
	move := func() animation.Builder {
		return animation.NewBuilder().
			AnimateTo(el.nextWaypoint()).
			WithDuration(moveLength).
			WithEasing(g.easing)
	}

	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyQ):
		el.fb.Queue(move())
	case inpututil.IsKeyJustPressed(ebiten.KeyP):
		el.paused.Store(false)
		el.fb.PlayNow(move())
	case inpututil.IsKeyJustPressed(ebiten.KeyD):
		el.fb.Queue(animation.NewDelay(delayStep))
	case inpututil.IsKeyJustPressed(ebiten.KeySpace):
		if el.paused.Load() {
			el.paused.Store(false)
			el.fb.Resume()
		} else if el.fb.Status() == animation.Busy {
			el.paused.Store(true)
			el.fb.Pause()
		}
	case inpututil.IsKeyJustPressed(ebiten.KeyX):
		el.paused.Store(false)
		el.fb.DropAll()
	}

	var dx, dy float64
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyArrowLeft):
		dx = -nudgeStep
	case inpututil.IsKeyJustPressed(ebiten.KeyArrowRight):
		dx = nudgeStep
	case inpututil.IsKeyJustPressed(ebiten.KeyArrowUp):
		dy = -nudgeStep
	case inpututil.IsKeyJustPressed(ebiten.KeyArrowDown):
		dy = nudgeStep
	}
	if dx != 0 || dy != 0 {
		debug.Log("[flipbook-play] %s: nudge %v,%v", el.name, dx, dy)
		if r, ok := el.fb.CurrentRect(); ok {
			el.fb.SetRect(r.Translate(dx, dy))
		}
	}
	return nil
}

func (g *game) Draw(screen *ebiten.Image) {
	screen.Fill(backgroundColor)

	for i, el := range g.elements {
		vector.DrawFilledRect(screen,
			float32(el.lane.Left()+4), float32(el.lane.Top()),
			float32(el.lane.Size.Width-8), float32(el.lane.Size.Height-4),
			laneColor, false)

		if r, ok := el.fb.CurrentRect(); ok {
			x, y := float32(r.Left()), float32(r.Top())
			w, h := float32(r.Size.Width), float32(r.Size.Height)
			vector.DrawFilledRect(screen, x, y, w, h, el.fill, true)
			if i == g.selected {
				vector.StrokeRect(screen, x-3, y-3, w+6, h+6, 2, outlineColor, true)
			}
		}

		state := el.fb.Status().String()
		if el.paused.Load() {
			state = "paused"
		}
		info := fmt.Sprintf("%s: %s, %d queued", el.name, state, el.fb.QueueLen())
		ebitenutil.DebugPrintAt(screen, info, int(el.lane.Left())+10, int(el.lane.Top())+6)
	}

	ebitenutil.DebugPrintAt(screen, "Q queue  P play now  D delay  Space pause/resume  X drop all  arrows nudge  Tab switch  E easing  Esc quit", 10, 10)
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("easing: %v   fps: %.0f", g.easing, ebiten.ActualFPS()), 10, 30)
}

func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return screenWidth, screenHeight
}
