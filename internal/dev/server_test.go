package dev

import (
	"io"
	"log/slog"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/markout-dev/markout/internal/config"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	dir := t.TempDir()
	cfg := config.New()
	if err := cfg.SaveTo(filepath.Join(dir, "markout.json")); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return cfg
}

func writeOutput(t *testing.T, cfg *config.Config, name, content string) {
	t.Helper()
	full := filepath.Join(cfg.OutputPath(), filepath.FromSlash(name))
	if err := os.MkdirAll(filepath.Dir(full), 0755); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := os.WriteFile(full, []byte(content), 0644); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func get(t *testing.T, s *Server, path string) *httptest.ResponseRecorder {
	t.Helper()
	w := httptest.NewRecorder()
	s.Handler().ServeHTTP(w, httptest.NewRequest("GET", path, nil))
	return w
}

func TestServer_ServesPages(t *testing.T) {
	cfg := testConfig(t)
	writeOutput(t, cfg, "index.html", "<html><body><h1>Home</h1></body></html>")

	s := NewServer(ServerOptions{Config: cfg, Logger: discardLogger()})

	w := get(t, s, "/")
	if w.Code != 200 {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	body := w.Body.String()
	if !strings.Contains(body, "<h1>Home</h1>") {
		t.Errorf("body missing page content: %q", body)
	}
	if !strings.Contains(body, ReloadEndpoint) {
		t.Error("reload script not injected")
	}
	if got := w.Header().Get("Content-Type"); got != "text/html; charset=utf-8" {
		t.Errorf("Content-Type = %q, want %q", got, "text/html; charset=utf-8")
	}
	if got := w.Header().Get("Cache-Control"); got != "no-store" {
		t.Errorf("Cache-Control = %q, want %q", got, "no-store")
	}
}

func TestServer_PrettyURLs(t *testing.T) {
	cfg := testConfig(t)
	writeOutput(t, cfg, "about/index.html", "<html><body>About</body></html>")

	s := NewServer(ServerOptions{Config: cfg, Logger: discardLogger()})

	for _, path := range []string{"/about", "/about/", "/about/index.html"} {
		w := get(t, s, path)
		if w.Code != 200 {
			t.Errorf("GET %s: status = %d, want 200", path, w.Code)
			continue
		}
		if !strings.Contains(w.Body.String(), "About") {
			t.Errorf("GET %s: body missing page content", path)
		}
	}
}

func TestServer_StaticAsset(t *testing.T) {
	cfg := testConfig(t)
	writeOutput(t, cfg, "assets/app.css", "body{color:red}")

	s := NewServer(ServerOptions{Config: cfg, Logger: discardLogger()})

	w := get(t, s, "/assets/app.css")
	if w.Code != 200 {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	if got := w.Header().Get("Content-Type"); !strings.HasPrefix(got, "text/css") {
		t.Errorf("Content-Type = %q, want text/css", got)
	}
	if strings.Contains(w.Body.String(), "<script") {
		t.Error("reload script must not be injected into non-HTML files")
	}
}

func TestServer_NotFound(t *testing.T) {
	cfg := testConfig(t)
	writeOutput(t, cfg, "index.html", "<html></html>")

	s := NewServer(ServerOptions{Config: cfg, Logger: discardLogger()})

	if w := get(t, s, "/missing"); w.Code != 404 {
		t.Errorf("status = %d, want 404", w.Code)
	}
}

func TestServer_NotFoundPage(t *testing.T) {
	cfg := testConfig(t)
	writeOutput(t, cfg, "404.html", "<html><body>This page got lost</body></html>")

	s := NewServer(ServerOptions{Config: cfg, Logger: discardLogger()})

	w := get(t, s, "/missing")
	if w.Code != 404 {
		t.Fatalf("status = %d, want 404", w.Code)
	}
	if !strings.Contains(w.Body.String(), "This page got lost") {
		t.Error("custom 404 page not served")
	}
	if !strings.Contains(w.Body.String(), ReloadEndpoint) {
		t.Error("reload script not injected into 404 page")
	}
}

func TestServer_NoEscape(t *testing.T) {
	cfg := testConfig(t)
	writeOutput(t, cfg, "index.html", "<html></html>")

	// A sentinel one level above the output directory.
	secret := filepath.Join(cfg.Dir(), "secret.txt")
	if err := os.WriteFile(secret, []byte("classified"), 0644); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	s := NewServer(ServerOptions{Config: cfg, Logger: discardLogger()})

	// The mux cleans request paths before routing, so hit the file
	// handler directly with the raw path.
	w := httptest.NewRecorder()
	r := httptest.NewRequest("GET", "/", nil)
	r.URL.Path = "/../secret.txt"
	s.serveFile(w, r)

	if w.Code != 404 {
		t.Errorf("status = %d, want 404", w.Code)
	}
	if strings.Contains(w.Body.String(), "classified") {
		t.Error("request escaped the output directory")
	}
}

func TestServer_ReloadDisabled(t *testing.T) {
	cfg := testConfig(t)
	cfg.Dev.Reload = false
	writeOutput(t, cfg, "index.html", "<html><body>Home</body></html>")

	s := NewServer(ServerOptions{Config: cfg, Logger: discardLogger()})

	w := get(t, s, "/")
	if w.Code != 200 {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	if strings.Contains(w.Body.String(), ReloadEndpoint) {
		t.Error("reload script injected with live reload disabled")
	}

	if w := get(t, s, ReloadEndpoint); w.Code != 404 {
		t.Errorf("reload endpoint: status = %d, want 404", w.Code)
	}
}

func TestRequestFile(t *testing.T) {
	tests := []struct {
		urlPath string
		want    string
		ok      bool
	}{
		{"/", "index.html", true},
		{"/about", "about/index.html", true},
		{"/about/", "about/index.html", true},
		{"/assets/app.css", "assets/app.css", true},
		{"/a/../b.css", "b.css", true},
		{"/../etc/passwd", "etc/passwd", true},
		{"/bad\\path", "", false},
		{"/bad\x00path", "", false},
	}

	for _, tt := range tests {
		got, ok := requestFile(tt.urlPath)
		if got != tt.want || ok != tt.ok {
			t.Errorf("requestFile(%q) = (%q, %v), want (%q, %v)",
				tt.urlPath, got, ok, tt.want, tt.ok)
		}
	}
}

func TestInjectReload(t *testing.T) {
	cfg := testConfig(t)
	s := NewServer(ServerOptions{Config: cfg, Logger: discardLogger()})

	t.Run("before body close", func(t *testing.T) {
		out := string(s.injectReload([]byte("<html><body>hi</body></html>")))
		if !strings.Contains(out, ReloadEndpoint) {
			t.Fatal("script not injected")
		}
		if !strings.HasSuffix(out, "</body></html>") {
			t.Errorf("script not placed before </body>: %q", out[len(out)-40:])
		}
	})

	t.Run("no body tag", func(t *testing.T) {
		out := string(s.injectReload([]byte("<p>fragment</p>")))
		if !strings.HasPrefix(out, "<p>fragment</p>") {
			t.Error("fragment content should come first")
		}
		if !strings.Contains(out, ReloadEndpoint) {
			t.Error("script not appended")
		}
	})

	t.Run("disabled", func(t *testing.T) {
		off := testConfig(t)
		off.Dev.Reload = false
		d := NewServer(ServerOptions{Config: off, Logger: discardLogger()})

		in := "<html><body>hi</body></html>"
		if out := string(d.injectReload([]byte(in))); out != in {
			t.Errorf("got %q, want unchanged input", out)
		}
	})
}

func TestCollectWatchPaths(t *testing.T) {
	cfg := testConfig(t)
	cfg.Dev.Watch = []string{"pages", "."}

	paths := CollectWatchPaths(cfg)

	want := map[string]bool{
		filepath.Join(cfg.Dir(), "pages"):  true,
		filepath.Clean(cfg.Dir()):          true,
		filepath.Join(cfg.Dir(), "assets"): true,
	}
	if len(paths) != len(want) {
		t.Fatalf("got %d paths %v, want %d", len(paths), paths, len(want))
	}
	for _, p := range paths {
		if !want[p] {
			t.Errorf("unexpected watch path %q", p)
		}
	}
}

func TestIsWithinDir(t *testing.T) {
	dir := t.TempDir()

	tests := []struct {
		path string
		want bool
	}{
		{filepath.Join(dir, "a.css"), true},
		{filepath.Join(dir, "sub", "a.css"), true},
		{dir, true},
		{filepath.Join(dir, "..", "other"), false},
		{filepath.Dir(dir), false},
	}

	for _, tt := range tests {
		if got := isWithinDir(tt.path, dir); got != tt.want {
			t.Errorf("isWithinDir(%q, %q) = %v, want %v", tt.path, dir, got, tt.want)
		}
	}
}
