package icons

import (
	"encoding/base64"
	"net/http"
	"net/http/httptest"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"
)

// tiny but valid PNG payload; the tests never decode it, only move it
// around and encode it.
var pngFixture = []byte("\x89PNG\r\n\x1a\n fixture")

func TestCacheDir(t *testing.T) {
	base := t.TempDir()
	t.Setenv("XDG_CACHE_HOME", base)

	dir, err := CacheDir("/usr/local/bin/myplugin.1m")
	if err != nil {
		t.Fatalf("CacheDir() error: %v", err)
	}
	want := filepath.Join(base, "goxbar", "myplugin.1m")
	if dir != want {
		t.Errorf("CacheDir() = %q, want %q", dir, want)
	}
	if info, err := os.Stat(dir); err != nil || !info.IsDir() {
		t.Errorf("cache dir was not created: %v", err)
	}
}

func TestURLSourceFetch(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/icon.png" {
			http.NotFound(w, r)
			return
		}
		w.Write(pngFixture)
	}))
	defer srv.Close()

	dest := filepath.Join(t.TempDir(), "icon.png")
	src := &URLSource{URL: srv.URL + "/icon.png"}
	if err := src.Fetch(dest); err != nil {
		t.Fatalf("Fetch() error: %v", err)
	}

	data, err := os.ReadFile(dest)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != string(pngFixture) {
		t.Errorf("cached %q, want fixture", data)
	}
}

func TestURLSourceFetchBadStatus(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	defer srv.Close()

	src := &URLSource{URL: srv.URL + "/missing.png"}
	err := src.Fetch(filepath.Join(t.TempDir(), "icon.png"))
	if err == nil || !strings.Contains(err.Error(), "unexpected status") {
		t.Errorf("Fetch() error = %v, want status error", err)
	}
}

func TestIconPNGCachesFetch(t *testing.T) {
	fetches := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fetches++
		w.Write(pngFixture)
	}))
	defer srv.Close()

	icon := FromURL("svc", srv.URL+"/svc.png")
	icon.Dir = t.TempDir()

	for i := 0; i < 2; i++ {
		path, err := icon.PNG()
		if err != nil {
			t.Fatalf("PNG() call %d error: %v", i+1, err)
		}
		if filepath.Base(path) != "svc.png" {
			t.Errorf("PNG() = %q, want svc.png in cache dir", path)
		}
	}
	if fetches != 1 {
		t.Errorf("source fetched %d times, want 1", fetches)
	}
}

func TestIconPNGNoSource(t *testing.T) {
	icon := &Icon{Name: "orphan", Dir: t.TempDir()}
	if _, err := icon.PNG(); err == nil {
		t.Error("PNG() should fail without a source or cached file")
	}
}

func TestIconBase64(t *testing.T) {
	if _, err := exec.LookPath("sips"); err == nil {
		t.Skip("sips would reject the synthetic fixture")
	}

	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "pre.png"), pngFixture, 0o644); err != nil {
		t.Fatal(err)
	}

	// without macOS imaging tools the original bytes come back encoded
	icon := &Icon{Name: "pre", Size: DefaultSize, Dir: dir}
	got, err := icon.Base64(0)
	if err != nil {
		t.Fatalf("Base64() error: %v", err)
	}
	if want := base64.StdEncoding.EncodeToString(pngFixture); got != want {
		t.Errorf("Base64() = %q, want encoded original", got)
	}
}
