// Command flipbook-play opens a window with two independently animated
// rectangles driven from the keyboard.
//
// Controls (acting on the selected rectangle, Tab switches):
//
//	Q       queue a move to the next waypoint
//	P       play the next waypoint now, discarding the backlog
//	D       queue a half-second delay
//	E       cycle the easing used for new moves
//	Space   pause or resume the running move
//	X       drop everything
//	Arrows  nudge the rectangle (ignored while it moves)
//	Esc     save positions and quit
package main

import (
	"errors"
	"flag"
	"io"
	"log"
	"os"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/go-drift/flipbook/internal/savedata"
)

const (
	appName      = "flipbook_play"
	screenWidth  = 960
	screenHeight = 540
)

func main() {
	reset := flag.Bool("reset", false, "forget saved positions")
	verbose := flag.Bool("verbose", false, "log engine events to stderr")
	flag.Parse()

	engineLog := log.New(io.Discard, "", 0)
	if *verbose {
		engineLog = log.New(os.Stderr, "", log.Ltime|log.Lmicroseconds)
	}

	store, err := savedata.Open(appName)
	if err != nil {
		log.Printf("[flipbook-play] Warning: %v (positions will not persist)", err)
	}

	g := newGame(store, engineLog, *reset)

	ebiten.SetWindowSize(screenWidth, screenHeight)
	ebiten.SetWindowTitle("flipbook player")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	err = ebiten.RunGame(g)
	g.Close()
	if err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
