package cmd

import (
	"context"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/go-drift/flipbook/cmd/flipbook/internal/config"
	"github.com/go-drift/flipbook/pkg/animation"
)

const defaultSceneTimeout = 30 * time.Second

// sceneOptions holds the flags shared by commands that play a scene.
type sceneOptions struct {
	path    string
	timeout time.Duration
	rest    []string
}

func parseSceneArgs(args []string) (sceneOptions, error) {
	opts := sceneOptions{timeout: defaultSceneTimeout}
	for i := 0; i < len(args); i++ {
		switch arg := args[i]; arg {
		case "--scene":
			if i+1 >= len(args) {
				return opts, fmt.Errorf("--scene requires a file path")
			}
			opts.path = args[i+1]
			i++
		case "--timeout":
			if i+1 >= len(args) {
				return opts, fmt.Errorf("--timeout requires a duration")
			}
			d, err := time.ParseDuration(args[i+1])
			if err != nil || d <= 0 {
				return opts, fmt.Errorf("invalid --timeout %q", args[i+1])
			}
			opts.timeout = d
			i++
		default:
			if v, ok := strings.CutPrefix(arg, "--scene="); ok {
				opts.path = v
				continue
			}
			opts.rest = append(opts.rest, arg)
		}
	}
	return opts, nil
}

// loadScene resolves the scene at opts.path, or flipbook.yaml in the
// project root (the current directory outside a Go module).
func loadScene(opts sceneOptions) (*config.Resolved, error) {
	root, err := config.FindProjectRoot()
	if err != nil {
		if root, err = os.Getwd(); err != nil {
			return nil, err
		}
	}
	scene, err := config.Resolve(root, opts.path)
	if err != nil {
		return nil, fmt.Errorf("failed to load scene: %w", err)
	}
	return scene, nil
}

// engineLogger returns the logger passed to the flipbook, or nil to keep
// the engine's default debug logger.
func engineLogger() *log.Logger {
	if !verbose {
		return nil
	}
	return log.New(os.Stderr, "", log.Ltime|log.Lmicroseconds)
}

// playScene drives a fresh flipbook through the scene's steps and returns
// every committed frame. The initial rectangle, if any, is frame zero.
func playScene(ctx context.Context, scene *config.Resolved) ([]animation.Frame, error) {
	var opts []animation.Option
	if scene.Initial != nil {
		opts = append(opts, animation.WithInitialRect(*scene.Initial))
	}
	if l := engineLogger(); l != nil {
		opts = append(opts, animation.WithLogger(l))
	}

	fb := animation.New(opts...)
	defer fb.Close()
	rec := animation.Record(fb)
	defer rec.Stop()

	for i, step := range scene.Steps {
		if err := issue(ctx, fb, step); err != nil {
			return nil, fmt.Errorf("step %d (%s): %w", i+1, step.Kind, err)
		}
	}

	if err := fb.Idle(ctx); err != nil {
		if ctx.Err() != nil {
			return nil, fmt.Errorf("scene did not come to rest (is it left paused?): %w", err)
		}
		return nil, err
	}

	frames := rec.Frames()
	if scene.Initial != nil {
		frames = append([]animation.Frame{{Rect: *scene.Initial}}, frames...)
	}
	return frames, nil
}

func issue(ctx context.Context, fb *animation.Flipbook, step config.Step) error {
	switch step.Kind {
	case config.StepQueue, config.StepPlayNow:
		b, err := step.Animation.Builder()
		if err != nil {
			return err
		}
		if step.Kind == config.StepQueue {
			fb.Queue(b)
		} else {
			fb.PlayNow(b)
		}
	case config.StepDelay:
		fb.Queue(animation.NewDelay(step.Duration))
	case config.StepPause:
		fb.Pause()
	case config.StepResume:
		fb.Resume()
	case config.StepDropAll:
		fb.DropAll()
	case config.StepSetRect:
		fb.SetRect(step.Rect.Rect())
	case config.StepWait:
		if err := fb.Flush(ctx); err != nil {
			return err
		}
		return animation.Sleep(ctx, step.Duration)
	default:
		return fmt.Errorf("unknown step %q", step.Kind)
	}
	return nil
}
