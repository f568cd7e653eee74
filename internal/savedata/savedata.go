// Package savedata persists flipbook rectangles between runs of the
// interactive player using the platform's per-user data directory.
package savedata

import (
	"fmt"
	"log"

	"github.com/quasilyte/gdata/v2"
	"gopkg.in/yaml.v3"

	"github.com/go-drift/flipbook/pkg/geometry"
)

const rectsObject = "rects"

// Store loads and saves named rectangles. A Store without a backing
// manager works in memory-less degraded mode: loads find nothing and
// saves are dropped.
type Store struct {
	manager *gdata.Manager
}

type savedRect struct {
	X      float64 `yaml:"x"`
	Y      float64 `yaml:"y"`
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// Open opens the data directory for appName. On failure it returns a
// degraded Store together with the error, so callers may log and carry on.
func Open(appName string) (*Store, error) {
	m, err := gdata.Open(gdata.Config{AppName: appName})
	if err != nil {
		return &Store{}, fmt.Errorf("failed to open save data: %w", err)
	}
	return &Store{manager: m}, nil
}

// Enabled reports whether saves reach disk.
func (s *Store) Enabled() bool {
	return s.manager != nil
}

// LoadRect returns the rectangle saved under name, if any.
func (s *Store) LoadRect(name string) (geometry.Rect, bool, error) {
	if s.manager == nil || !s.manager.ObjectPropExists(rectsObject, name) {
		return geometry.Rect{}, false, nil
	}

	data, err := s.manager.LoadObjectProp(rectsObject, name)
	if err != nil {
		return geometry.Rect{}, false, fmt.Errorf("failed to load rect %q: %w", name, err)
	}
	if len(data) == 0 {
		return geometry.Rect{}, false, nil
	}

	var r savedRect
	if err := yaml.Unmarshal(data, &r); err != nil {
		return geometry.Rect{}, false, fmt.Errorf("failed to unmarshal rect %q: %w", name, err)
	}
	return geometry.RectFromXYWH(r.X, r.Y, r.Width, r.Height), true, nil
}

// SaveRect stores r under name.
func (s *Store) SaveRect(name string, r geometry.Rect) error {
	if s.manager == nil {
		return nil
	}

	data, err := yaml.Marshal(savedRect{
		X:      r.Position.X,
		Y:      r.Position.Y,
		Width:  r.Size.Width,
		Height: r.Size.Height,
	})
	if err != nil {
		return fmt.Errorf("failed to marshal rect %q: %w", name, err)
	}
	if err := s.manager.SaveObjectProp(rectsObject, name, data); err != nil {
		return fmt.Errorf("failed to save rect %q: %w", name, err)
	}
	log.Printf("[savedata] saved %s = %v", name, r)
	return nil
}

// Forget clears the rectangle saved under name.
func (s *Store) Forget(name string) error {
	if s.manager == nil {
		return nil
	}
	if err := s.manager.SaveObjectProp(rectsObject, name, nil); err != nil {
		return fmt.Errorf("failed to clear rect %q: %w", name, err)
	}
	return nil
}
