package cmd

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/go-drift/flipbook/cmd/flipbook/internal/cache"
	"github.com/go-drift/flipbook/cmd/flipbook/internal/config"
	"github.com/go-drift/flipbook/cmd/flipbook/internal/render"
	"github.com/go-drift/flipbook/pkg/animation"
)

// gifHold is how long the final frame of a GIF stays up before looping.
const gifHold = time.Second

func init() {
	RegisterCommand(&Command{
		Name:  "render",
		Short: "Render a scene to images",
		Long: `Play a scene in real time and rasterize every committed frame.

Frames are written as a PNG sequence, or as a single looping GIF whose
frame delays follow the recorded timing.

The output directory is taken from --out, then output.dir in the scene,
then <cache>/renders/<module>/<scene>.

Flags:
  --scene FILE       Scene file (default: flipbook.yaml in the project root)
  --timeout DUR      Give up if the scene has not come to rest (default: 30s)
  --out DIR          Output directory
  --gif              Write an animated GIF instead of PNGs
  --scale N          Integer upscale factor
  --no-labels        Omit the timestamp and rectangle caption`,
		Usage: "flipbook render [--scene FILE] [--out DIR] [--gif] [--scale N] [--no-labels]",
		Run:   runRender,
	})
}

type renderOptions struct {
	out      string
	gif      bool
	scale    int
	noLabels bool
}

func runRender(args []string) error {
	opts, err := parseSceneArgs(args)
	if err != nil {
		return err
	}
	var ropts renderOptions
	for i := 0; i < len(opts.rest); i++ {
		switch arg := opts.rest[i]; arg {
		case "--gif":
			ropts.gif = true
		case "--no-labels":
			ropts.noLabels = true
		case "--out":
			if i+1 >= len(opts.rest) {
				return fmt.Errorf("--out requires a directory path")
			}
			ropts.out = opts.rest[i+1]
			i++
		case "--scale":
			if i+1 >= len(opts.rest) {
				return fmt.Errorf("--scale requires a number")
			}
			n, err := strconv.Atoi(opts.rest[i+1])
			if err != nil || n < 1 {
				return fmt.Errorf("invalid --scale %q", opts.rest[i+1])
			}
			ropts.scale = n
			i++
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
	if len(frames) == 0 {
		return fmt.Errorf("scene %q committed no frames", scene.SceneName)
	}

	dir, err := outputDir(scene, ropts.out)
	if err != nil {
		return err
	}

	scale := scene.Scale
	if ropts.scale != 0 {
		scale = ropts.scale
	}
	r := render.New(render.Options{
		Width:  scene.Width,
		Height: scene.Height,
		Scale:  scale,
		Labels: !ropts.noLabels,
	})

	if ropts.gif || scene.GIF {
		return writeGIF(ctx, r, dir, scene.SceneName, frames)
	}

	paths, err := r.WritePNGs(ctx, dir, frames)
	if err != nil {
		return err
	}
	fmt.Fprintf(stdout, "Wrote %d frames to %s\n", len(paths), dir)
	return nil
}

func writeGIF(ctx context.Context, r *render.Renderer, dir, name string, frames []animation.Frame) (err error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}
	path := filepath.Join(dir, name+".gif")
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()
	if err := r.WriteGIF(ctx, f, frames, gifHold); err != nil {
		return err
	}
	fmt.Fprintf(stdout, "Wrote %d frames to %s\n", len(frames), path)
	return nil
}

func outputDir(scene *config.Resolved, flagDir string) (string, error) {
	switch {
	case flagDir != "":
		return flagDir, nil
	case scene.OutputDir != "":
		if filepath.IsAbs(scene.OutputDir) {
			return scene.OutputDir, nil
		}
		return filepath.Join(scene.Root, scene.OutputDir), nil
	default:
		return cache.RenderRoot(scene.ModulePath, scene.SceneName)
	}
}
