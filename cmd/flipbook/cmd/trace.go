package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/go-drift/flipbook/pkg/animation"
)

func init() {
	RegisterCommand(&Command{
		Name:  "trace",
		Short: "Play a scene and print its frames",
		Long: `Play a scene in real time and print every frame the element commits.

Each line shows the time since the scene started and the rectangle, as
CSS absolute positioning by default.

Flags:
  --scene FILE       Scene file (default: flipbook.yaml in the project root)
  --timeout DUR      Give up if the scene has not come to rest (default: 30s)
  --rect             Print rectangles as Rect(x, y, wxh) instead of CSS`,
		Usage: "flipbook trace [--scene FILE] [--timeout DUR] [--rect]",
		Run:   runTrace,
	})
}

func runTrace(args []string) error {
	opts, err := parseSceneArgs(args)
	if err != nil {
		return err
	}
	asRect := false
	for _, arg := range opts.rest {
		switch arg {
		case "--rect":
			asRect = true
		default:
			return fmt.Errorf("unknown flag %q", arg)
		}
	}

	scene, err := loadScene(opts)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), opts.timeout)
	defer cancel()
	frames, err := playScene(ctx, scene)
	if err != nil {
		return err
	}

	printFrames(frames, asRect)
	return nil
}

func printFrames(frames []animation.Frame, asRect bool) {
	for _, f := range frames {
		ms := float64(f.At) / float64(time.Millisecond)
		if asRect {
			fmt.Fprintf(stdout, "%9.1fms  %v\n", ms, f.Rect)
		} else {
			fmt.Fprintf(stdout, "%9.1fms  %s\n", ms, f.Rect.CSS())
		}
	}
}
