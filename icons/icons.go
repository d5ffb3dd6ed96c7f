// Package icons fetches, caches and encodes the PNG images used for
// the image and templateImage menu attributes.
//
// An Icon couples a name with a Source that knows how to materialize
// the original PNG. Fetched images land in an XDG-style per-plugin
// cache directory and are resized on demand with pngcrush (when the
// Xcode copy is installed) or sips before being base64-encoded:
//
//	icon := icons.FromService("grafana")
//	img, err := icon.Base64(0)
//	if err != nil {
//	    cfg.Error(fmt.Sprintf("icon grafana: %v", err))
//	}
//	item := &goxbar.MenuItem{Title: "Grafana", Image: img}
//
// Everything here shells out to macOS imaging tools; on other
// platforms resizing falls back to the unmodified original.
package icons

import (
	"encoding/base64"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/exec"
	"path/filepath"
	"strconv"
	"time"
)

// DefaultSize is the rendered icon edge in points when no explicit
// size is requested.
const DefaultSize = 20

// pngcrushPath is the Xcode-bundled binary that produces the smallest
// files; sips is the fallback available on every macOS install.
const pngcrushPath = "/Applications/Xcode.app/Contents/Developer/usr/bin/pngcrush"

// Source materializes an icon's original PNG at dest.
type Source interface {
	Fetch(dest string) error
}

// Icon is a named, cached, resizable PNG.
type Icon struct {
	// Name keys the cache entries for this icon.
	Name string
	// Size is the default edge used by Base64 when called with 0.
	Size int
	// Dir is the cache directory; resolved via CacheDir when empty.
	Dir string
	// Source produces the original image on a cache miss.
	Source Source
}

// FromURL returns an icon fetched from an arbitrary URL.
func FromURL(name, url string) *Icon {
	return &Icon{Name: name, Size: DefaultSize, Source: &URLSource{URL: url}}
}

// FromService returns an icon from the dashboard-icons collection,
// keyed by service name.
func FromService(name string) *Icon {
	return &Icon{Name: name, Size: DefaultSize, Source: &ServiceSource{Service: name}}
}

// FromAppBundle returns an icon extracted from a locally installed
// macOS application bundle.
func FromAppBundle(name string) *Icon {
	return &Icon{Name: name, Size: DefaultSize, Source: &AppBundleSource{App: name}}
}

func (i *Icon) cacheDir() (string, error) {
	if i.Dir != "" {
		return i.Dir, nil
	}
	dir, err := CacheDir(os.Args[0])
	if err != nil {
		return "", err
	}
	i.Dir = dir
	return dir, nil
}

// PNG returns the path of the cached original, fetching it on a miss.
func (i *Icon) PNG() (string, error) {
	dir, err := i.cacheDir()
	if err != nil {
		return "", err
	}

	path := filepath.Join(dir, i.Name+".png")
	if _, err := os.Stat(path); err == nil {
		return path, nil
	}
	if i.Source == nil {
		return "", fmt.Errorf("icon %s: no source and no cached file", i.Name)
	}
	if err := i.Source.Fetch(path); err != nil {
		return "", fmt.Errorf("icon %s: %w", i.Name, err)
	}
	return path, nil
}

// Base64 returns the icon resized to size (or Icon.Size when 0) as a
// base64 string ready for the image/templateImage attributes.
func (i *Icon) Base64(size int) (string, error) {
	if size == 0 {
		size = i.Size
	}
	path, err := i.resize(size)
	if err != nil {
		return "", err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("icon %s: %w", i.Name, err)
	}
	return base64.StdEncoding.EncodeToString(data), nil
}

// resize produces a size×size variant, preferring pngcrush and falling
// back to sips. Resized files are cached next to the original. When
// neither tool is available the original is returned unchanged.
func (i *Icon) resize(size int) (string, error) {
	original, err := i.PNG()
	if err != nil {
		return "", err
	}

	if _, err := os.Stat(pngcrushPath); err == nil {
		if path, err := i.pngcrush(original, size); err == nil {
			return path, nil
		}
	}
	if _, err := exec.LookPath("sips"); err == nil {
		return i.sips(original, size)
	}
	return original, nil
}

func (i *Icon) sips(original string, size int) (string, error) {
	dir, _ := i.cacheDir()
	dest := filepath.Join(dir, fmt.Sprintf("%s.%d.png", i.Name, size))
	if _, err := os.Stat(dest); err == nil {
		return dest, nil
	}

	cmd := exec.Command("sips",
		"-Z", strconv.Itoa(size),
		"-s", "formatOptions", "high",
		"-s", "dpiWidth", "72",
		"-s", "dpiHeight", "72",
		original,
		"--out", dest,
	)
	if err := cmd.Run(); err != nil {
		return "", fmt.Errorf("sips %s: %w", i.Name, err)
	}
	return dest, nil
}

func (i *Icon) pngcrush(original string, size int) (string, error) {
	resized, err := i.sips(original, size)
	if err != nil {
		return "", err
	}

	dir, _ := i.cacheDir()
	dest := filepath.Join(dir, fmt.Sprintf("%s.%d.crush.png", i.Name, size))
	if _, err := os.Stat(dest); err == nil {
		return dest, nil
	}
	if err := exec.Command(pngcrushPath, "-brute", resized, dest).Run(); err != nil {
		return "", fmt.Errorf("pngcrush %s: %w", i.Name, err)
	}
	return dest, nil
}

// httpClient bounds icon downloads so a slow CDN cannot stall the
// whole plugin run.
var httpClient = &http.Client{Timeout: 10 * time.Second}

// URLSource downloads the icon from a fixed URL.
type URLSource struct {
	URL string
}

// Fetch implements Source.
func (s *URLSource) Fetch(dest string) error {
	resp, err := httpClient.Get(s.URL)
	if err != nil {
		return fmt.Errorf("fetch %s: %w", s.URL, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("fetch %s: unexpected status %s", s.URL, resp.Status)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("fetch %s: %w", s.URL, err)
	}
	if err := os.WriteFile(dest, data, 0o644); err != nil {
		return fmt.Errorf("cache %s: %w", dest, err)
	}
	return nil
}

// ServiceSource downloads from the walkxcode dashboard-icons
// collection on GitHub.
type ServiceSource struct {
	Service string
}

// Fetch implements Source.
func (s *ServiceSource) Fetch(dest string) error {
	src := &URLSource{
		URL: fmt.Sprintf("https://raw.githubusercontent.com/walkxcode/dashboard-icons/main/png/%s.png", s.Service),
	}
	return src.Fetch(dest)
}

// AppBundleSource extracts the icon of an installed macOS application
// via PlistBuddy and icns2png.
type AppBundleSource struct {
	// App is the bundle name without the .app extension.
	App string
	// IcnsSize selects the .icns variant to extract; 32 when zero.
	IcnsSize int
}

// Fetch implements Source.
func (s *AppBundleSource) Fetch(dest string) error {
	size := s.IcnsSize
	if size == 0 {
		size = 32
	}

	for _, apps := range []string{"/System/Applications", "/Applications"} {
		bundle := filepath.Join(apps, s.App+".app")
		if _, err := os.Stat(bundle); err != nil {
			continue
		}

		out, err := exec.Command("/usr/libexec/PlistBuddy",
			"-c", "Print :CFBundleIconFile",
			filepath.Join(bundle, "Contents", "Info.plist"),
		).Output()
		if err != nil {
			return fmt.Errorf("read icon name of %s: %w", bundle, err)
		}
		icns := string(trimNewline(out))

		icnsPath := filepath.Join(bundle, "Contents", "Resources", icns+".icns")
		if err := exec.Command("icns2png",
			"--size", strconv.Itoa(size),
			"-x", icnsPath,
			"--out", filepath.Dir(dest),
		).Run(); err != nil {
			return fmt.Errorf("extract %s: %w", icnsPath, err)
		}

		extracted := filepath.Join(filepath.Dir(dest),
			fmt.Sprintf("%s_%dx%dx32.png", icns, size, size))
		if err := os.Rename(extracted, dest); err != nil {
			return fmt.Errorf("cache %s: %w", dest, err)
		}
		return nil
	}
	return fmt.Errorf("app bundle %s.app not found", s.App)
}

func trimNewline(b []byte) []byte {
	for len(b) > 0 && (b[len(b)-1] == '\n' || b[len(b)-1] == '\r') {
		b = b[:len(b)-1]
	}
	return b
}
