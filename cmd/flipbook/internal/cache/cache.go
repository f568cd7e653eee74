// Package cache provides centralized cache directory resolution for
// flipbook renders.
//
// Priority order: --cache-dir flag > FLIPBOOK_CACHE_DIR env > ~/.flipbook default.
package cache

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// EnvVar overrides the default cache root.
const EnvVar = "FLIPBOOK_CACHE_DIR"

var global struct {
	cacheDir string
}

// NormalizeVersion returns a clean release version, or empty if the version
// is not a valid release (e.g., dev builds, pseudo-versions from go install).
// Explicit prerelease tags (v0.2.0-rc1) are allowed.
//
// Examples:
//
//	"v0.1.0"                          -> "v0.1.0"
//	"0.1.0"                           -> "v0.1.0"
//	"flipbook-v0.1.0"                 -> "v0.1.0"
//	"v0.2.0-rc1"                      -> "v0.2.0-rc1" (prerelease allowed)
//	"0.1.0-dev"                       -> "" (dev build)
//	"v0.2.1-0.20260122153045-abc123"  -> "" (pseudo-version)
func NormalizeVersion(version string) string {
	version = strings.TrimPrefix(strings.TrimSpace(version), "flipbook-")

	if strings.HasSuffix(version, "-dev") {
		return ""
	}

	// Go pseudo-versions
	if strings.Contains(version, "-0.") {
		return ""
	}

	base := version
	if idx := strings.Index(version, "-"); idx != -1 {
		base = version[:idx]
	}
	base = strings.TrimPrefix(base, "v")
	if strings.Count(base, ".") != 2 {
		return ""
	}

	if !strings.HasPrefix(version, "v") {
		version = "v" + version
	}

	return version
}

// SetCacheDir sets an override for the cache directory.
// This is typically called when parsing the --cache-dir flag.
func SetCacheDir(dir string) {
	global.cacheDir = dir
}

// Root returns the cache root directory.
func Root() (string, error) {
	if global.cacheDir != "" {
		return global.cacheDir, nil
	}

	if envDir := os.Getenv(EnvVar); envDir != "" {
		return envDir, nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to resolve home directory: %w", err)
	}

	return filepath.Join(home, ".flipbook"), nil
}

// RenderRoot returns the default output directory for a scene.
// Returns: <cache_root>/renders/<module_slug>/<scene>
func RenderRoot(modulePath, scene string) (string, error) {
	root, err := Root()
	if err != nil {
		return "", err
	}

	moduleSlug := strings.ReplaceAll(modulePath, "/", "_")
	if moduleSlug == "" {
		moduleSlug = "_"
	}
	return filepath.Join(root, "renders", moduleSlug, scene), nil
}
