package icons

import (
	"fmt"
	"os"
	"path/filepath"
)

// CacheDir resolves (and creates) the per-plugin icon cache directory,
// honoring an XDG_CACHE_HOME override and defaulting to ~/.cache. The
// script path keys the directory so plugins do not share cache
// entries:
//
//	$XDG_CACHE_HOME/goxbar/<script basename>/
func CacheDir(script string) (string, error) {
	base := os.Getenv("XDG_CACHE_HOME")
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve cache dir: %w", err)
		}
		base = filepath.Join(home, ".cache")
	}

	dir := filepath.Join(base, "goxbar", filepath.Base(script))
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create cache dir %s: %w", dir, err)
	}
	return dir, nil
}
