package cmd

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/go-drift/flipbook/cmd/flipbook/internal/config"
	"github.com/go-drift/flipbook/pkg/animation"
	"github.com/go-drift/flipbook/pkg/errors"
	fliptest "github.com/go-drift/flipbook/pkg/testing"
)

const slideScene = `
scene:
  name: slide
canvas: {width: 120, height: 20}
initial: {x: 0, y: 0, width: 10, height: 10}
steps:
  - queue:
      to: {x: 100, y: 0, width: 10, height: 10}
      duration: 64ms
      easing: linear
`

// captureOutput redirects command output for the duration of the test.
func captureOutput(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	prev := stdout
	stdout = &buf
	t.Cleanup(func() { stdout = prev })
	return &buf
}

// useFakeClock makes scenes play instantly with exact frame spacing.
func useFakeClock(t *testing.T) {
	t.Helper()
	prev := animation.SetClock(fliptest.NewFakeClock())
	t.Cleanup(func() { animation.SetClock(prev) })
}

func restoreErrorHandler(t *testing.T) {
	t.Helper()
	prev := errors.DefaultHandler
	t.Cleanup(func() { errors.SetHandler(prev) })
}

func writeScene(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "scene.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestRunHelpAndVersion(t *testing.T) {
	out := captureOutput(t)

	if err := run(nil); err != nil {
		t.Fatalf("run() error: %v", err)
	}
	for _, name := range []string{"easings", "trace", "render", "status"} {
		if !strings.Contains(out.String(), name) {
			t.Errorf("help does not list %q", name)
		}
	}

	out.Reset()
	if err := run([]string{"--version"}); err != nil {
		t.Fatalf("run(--version) error: %v", err)
	}
	if !strings.HasPrefix(out.String(), "flipbook version "+Version) {
		t.Errorf("version output = %q", out.String())
	}
	if !strings.Contains(out.String(), "development build") {
		t.Errorf("dev version not flagged: %q", out.String())
	}
}

func TestRunUnknownCommand(t *testing.T) {
	captureOutput(t)
	restoreErrorHandler(t)
	if err := run([]string{"explode"}); err == nil {
		t.Error("expected error for unknown command")
	}
}

func TestEasingsCommand(t *testing.T) {
	out := captureOutput(t)
	restoreErrorHandler(t)

	if err := run([]string{"easings"}); err != nil {
		t.Fatalf("easings error: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	if want := len(animation.Easings()) + 1; len(lines) != want {
		t.Errorf("printed %d lines, want %d", len(lines), want)
	}
	if !strings.Contains(out.String(), "sine-in-out") || !strings.Contains(out.String(), "(default)") {
		t.Error("default easing not marked")
	}
}

func TestParseSceneArgs(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		want    sceneOptions
		wantErr bool
	}{
		{"defaults", nil, sceneOptions{timeout: defaultSceneTimeout}, false},
		{"scene flag", []string{"--scene", "a.yaml"}, sceneOptions{path: "a.yaml", timeout: defaultSceneTimeout}, false},
		{"scene equals", []string{"--scene=b.yaml"}, sceneOptions{path: "b.yaml", timeout: defaultSceneTimeout}, false},
		{"timeout", []string{"--timeout", "2s"}, sceneOptions{timeout: 2 * time.Second}, false},
		{"passthrough", []string{"--gif", "--scene", "c.yaml"}, sceneOptions{path: "c.yaml", timeout: defaultSceneTimeout, rest: []string{"--gif"}}, false},
		{"missing scene value", []string{"--scene"}, sceneOptions{}, true},
		{"bad timeout", []string{"--timeout", "soon"}, sceneOptions{}, true},
		{"zero timeout", []string{"--timeout", "0s"}, sceneOptions{}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseSceneArgs(tt.args)
			if (err != nil) != tt.wantErr {
				t.Fatalf("parseSceneArgs(%v) error = %v, wantErr %v", tt.args, err, tt.wantErr)
			}
			if tt.wantErr {
				return
			}
			if got.path != tt.want.path || got.timeout != tt.want.timeout || strings.Join(got.rest, " ") != strings.Join(tt.want.rest, " ") {
				t.Errorf("parseSceneArgs(%v) = %+v, want %+v", tt.args, got, tt.want)
			}
		})
	}
}

func TestPlaySceneSnapshot(t *testing.T) {
	useFakeClock(t)
	path := writeScene(t, slideScene)
	scene, err := config.Resolve(filepath.Dir(path), path)
	if err != nil {
		t.Fatal(err)
	}

	frames, err := playScene(testContext(t), scene)
	if err != nil {
		t.Fatalf("playScene() error: %v", err)
	}

	var snap fliptest.Snapshot
	for _, f := range frames {
		snap.Add(f.At, f.Rect)
	}
	snap.MatchesFile(t, filepath.Join("testdata", "slide.snapshot.json"))
}

func TestTraceCommand(t *testing.T) {
	useFakeClock(t)
	restoreErrorHandler(t)
	out := captureOutput(t)
	path := writeScene(t, slideScene)

	if err := run([]string{"trace", "--scene", path, "--rect"}); err != nil {
		t.Fatalf("trace error: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	if len(lines) != 5 {
		t.Fatalf("trace printed %d lines, want 5:\n%s", len(lines), out)
	}
	if got := strings.TrimSpace(lines[4]); got != "80.0ms  Rect(100, 0, 10x10)" {
		t.Errorf("last line = %q", got)
	}

	out.Reset()
	if err := run([]string{"trace", "--scene", path}); err != nil {
		t.Fatalf("trace error: %v", err)
	}
	if !strings.Contains(out.String(), "width: 10px; height: 10px; left: 100px; top: 0px;") {
		t.Errorf("CSS trace missing destination:\n%s", out)
	}
}

func TestTraceRejectsUnknownFlag(t *testing.T) {
	captureOutput(t)
	restoreErrorHandler(t)
	if err := run([]string{"trace", "--sideways"}); err == nil {
		t.Error("expected error for unknown flag")
	}
}

func TestRenderCommandGIF(t *testing.T) {
	useFakeClock(t)
	restoreErrorHandler(t)
	out := captureOutput(t)
	path := writeScene(t, slideScene)
	dir := t.TempDir()

	if err := run([]string{"render", "--scene", path, "--out", dir, "--gif", "--scale", "2"}); err != nil {
		t.Fatalf("render error: %v", err)
	}
	gifPath := filepath.Join(dir, "slide.gif")
	if _, err := os.Stat(gifPath); err != nil {
		t.Fatalf("expected %s: %v", gifPath, err)
	}
	if !strings.Contains(out.String(), "Wrote 5 frames") {
		t.Errorf("output = %q", out)
	}
}

func TestRenderCommandPNGs(t *testing.T) {
	useFakeClock(t)
	restoreErrorHandler(t)
	captureOutput(t)
	path := writeScene(t, slideScene)
	dir := t.TempDir()

	if err := run([]string{"render", "--scene", path, "--out", dir, "--no-labels"}); err != nil {
		t.Fatalf("render error: %v", err)
	}
	matches, _ := filepath.Glob(filepath.Join(dir, "frame_*.png"))
	if len(matches) != 5 {
		t.Errorf("wrote %d PNGs, want 5", len(matches))
	}
}

func TestStatusCommand(t *testing.T) {
	restoreErrorHandler(t)
	out := captureOutput(t)
	path := writeScene(t, slideScene+"  - delay: 250ms\n  - pause\n")

	if err := run([]string{"status", "--scene", path}); err != nil {
		t.Fatalf("status error: %v", err)
	}
	for _, want := range []string{"Scene:   slide", "Canvas:  120x20 (x1)", "2. delay 250ms", "3. pause"} {
		if !strings.Contains(out.String(), want) {
			t.Errorf("status output missing %q:\n%s", want, out)
		}
	}
}

func TestPlaySceneTimesOutWhenPaused(t *testing.T) {
	restoreErrorHandler(t)
	path := writeScene(t, `
initial: {x: 0, y: 0, width: 10, height: 10}
steps:
  - queue: {to: {x: 100, y: 0, width: 10, height: 10}, duration: 10s}
  - wait: 20ms
  - pause
`)
	scene, err := config.Resolve(filepath.Dir(path), path)
	if err != nil {
		t.Fatal(err)
	}

	ctx, cancel := context.WithTimeout(testContext(t), 200*time.Millisecond)
	defer cancel()
	if _, err := playScene(ctx, scene); err == nil || !strings.Contains(err.Error(), "paused") {
		t.Errorf("playScene() error = %v, want a did-not-rest error", err)
	}
}

// testContext returns a context canceled when the test finishes
// (equivalent of testing.T.Context, which requires Go 1.24).
func testContext(t *testing.T) context.Context {
	t.Helper()
	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)
	return ctx
}
