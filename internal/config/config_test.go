package config

import (
	stderrors "errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/markout-dev/markout/internal/errors"
)

// writeConfig writes contents as markout.json in dir.
func writeConfig(t *testing.T, dir, contents string) string {
	t.Helper()
	path := filepath.Join(dir, ConfigFileName)
	if err := os.WriteFile(path, []byte(contents), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestNew(t *testing.T) {
	cfg := New()

	if cfg.Dev.Port != DefaultPort {
		t.Errorf("Dev.Port = %d, want %d", cfg.Dev.Port, DefaultPort)
	}
	if cfg.Dev.Host != DefaultHost {
		t.Errorf("Dev.Host = %q, want %q", cfg.Dev.Host, DefaultHost)
	}
	if cfg.Output != DefaultOutput {
		t.Errorf("Output = %q, want %q", cfg.Output, DefaultOutput)
	}
	if cfg.Assets != DefaultAssets {
		t.Errorf("Assets = %q, want %q", cfg.Assets, DefaultAssets)
	}
	if !cfg.Dev.Reload {
		t.Error("Dev.Reload should default to true")
	}
}

func TestLoad_Missing(t *testing.T) {
	_, err := Load(t.TempDir())
	if err == nil {
		t.Fatal("expected error for missing config")
	}
	if !strings.Contains(err.Error(), "E105") {
		t.Errorf("expected E105 error, got: %v", err)
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, `{
  "name": "blog",
  "module": "example.com/blog",
  "baseUrl": "https://blog.example.com",
  "output": "build",
  "dev": {
    "port": 8080,
    "host": "0.0.0.0"
  },
  "publish": {
    "target": "s3",
    "bucket": "blog-site",
    "prune": true
  }
}
`)

	cfg, err := Load(dir)
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}

	if cfg.Name != "blog" {
		t.Errorf("Name = %q, want %q", cfg.Name, "blog")
	}
	if cfg.Module != "example.com/blog" {
		t.Errorf("Module = %q, want %q", cfg.Module, "example.com/blog")
	}
	if cfg.Output != "build" {
		t.Errorf("Output = %q, want %q", cfg.Output, "build")
	}
	if cfg.Dev.Port != 8080 || cfg.Dev.Host != "0.0.0.0" {
		t.Errorf("Dev = %s, want 0.0.0.0:8080", cfg.DevAddress())
	}

	want := PublishConfig{Target: "s3", Bucket: "blog-site", Prune: true}
	if cfg.Publish != want {
		t.Errorf("Publish = %+v, want %+v", cfg.Publish, want)
	}

	// Fields absent from the file keep their defaults.
	if cfg.Assets != DefaultAssets {
		t.Errorf("Assets = %q, want default %q", cfg.Assets, DefaultAssets)
	}
	if !cfg.Dev.Reload {
		t.Error("Dev.Reload should keep its default when omitted")
	}
}

func TestLoadFile_InvalidJSON(t *testing.T) {
	path := writeConfig(t, t.TempDir(), "{\n  \"name\": blog\n}\n")

	_, err := LoadFile(path)
	if err == nil {
		t.Fatal("expected error for invalid JSON")
	}
	if !strings.Contains(err.Error(), "E101") {
		t.Errorf("expected E101 error, got: %v", err)
	}

	// Syntax errors carry a resolved location.
	var me *errors.Error
	if !stderrors.As(err, &me) {
		t.Fatalf("expected *errors.Error, got %T", err)
	}
	if me.Location == nil {
		t.Fatal("expected location on syntax error")
	}
	if me.Location.Line != 2 {
		t.Errorf("Location.Line = %d, want %d", me.Location.Line, 2)
	}
}

func TestSave_NoPath(t *testing.T) {
	if err := New().Save(); err == nil {
		t.Error("expected error when saving without a path")
	}
}

func TestSaveTo_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), ConfigFileName)

	cfg := New()
	cfg.Name = "docs"
	cfg.Dev.Port = 9000
	if err := cfg.SaveTo(path); err != nil {
		t.Fatalf("SaveTo error: %v", err)
	}

	loaded, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile error: %v", err)
	}
	if loaded.Name != "docs" {
		t.Errorf("Name = %q, want %q", loaded.Name, "docs")
	}
	if loaded.Dev.Port != 9000 {
		t.Errorf("Dev.Port = %d, want %d", loaded.Dev.Port, 9000)
	}

	// Save without an explicit path goes back to the loaded file.
	loaded.Dev.Port = 9001
	if err := loaded.Save(); err != nil {
		t.Fatalf("Save error: %v", err)
	}
	reloaded, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile error: %v", err)
	}
	if reloaded.Dev.Port != 9001 {
		t.Errorf("Dev.Port = %d, want %d", reloaded.Dev.Port, 9001)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"defaults", func(c *Config) {}, false},
		{"negative port", func(c *Config) { c.Dev.Port = -1 }, true},
		{"port too high", func(c *Config) { c.Dev.Port = 70000 }, true},
		{"valid base url", func(c *Config) { c.BaseURL = "https://example.com" }, false},
		{"unknown publish target", func(c *Config) { c.Publish.Target = "ftp" }, true},
		{"s3 without bucket", func(c *Config) { c.Publish.Target = "s3" }, true},
		{"s3 with bucket", func(c *Config) { c.Publish.Target = "s3"; c.Publish.Bucket = "my-site" }, false},
		{"disk without dir", func(c *Config) { c.Publish.Target = "disk" }, true},
		{"disk with dir", func(c *Config) { c.Publish.Target = "disk"; c.Publish.Dir = "/var/www/site" }, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := New()
			tt.mutate(cfg)

			err := cfg.Validate()
			if tt.wantErr && err == nil {
				t.Error("expected validation error")
			}
			if !tt.wantErr && err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}

func TestDevAddress(t *testing.T) {
	tests := []struct {
		host string
		port int
		want string
	}{
		{"localhost", 3000, "localhost:3000"},
		{"0.0.0.0", 8080, "0.0.0.0:8080"},
		{"::1", 3000, "[::1]:3000"},
	}

	for _, tt := range tests {
		cfg := New()
		cfg.Dev.Host = tt.host
		cfg.Dev.Port = tt.port
		if got := cfg.DevAddress(); got != tt.want {
			t.Errorf("DevAddress(%q, %d) = %q, want %q", tt.host, tt.port, got, tt.want)
		}
	}
}

func TestDevURL(t *testing.T) {
	if got, want := New().DevURL(), "http://localhost:3000"; got != want {
		t.Errorf("DevURL = %q, want %q", got, want)
	}
}

func TestPaths(t *testing.T) {
	dir := t.TempDir()

	cfg := New()
	if err := cfg.SaveTo(filepath.Join(dir, ConfigFileName)); err != nil {
		t.Fatal(err)
	}

	// Relative paths resolve against the project root.
	if got, want := cfg.OutputPath(), filepath.Join(dir, "dist"); got != want {
		t.Errorf("OutputPath = %q, want %q", got, want)
	}
	if got, want := cfg.AssetsPath(), filepath.Join(dir, "assets"); got != want {
		t.Errorf("AssetsPath = %q, want %q", got, want)
	}

	// Catalog defaults to the embedded one.
	if got := cfg.CatalogPath(); got != "" {
		t.Errorf("CatalogPath = %q, want empty", got)
	}
	cfg.Catalog = "catalog.yaml"
	if got, want := cfg.CatalogPath(), filepath.Join(dir, "catalog.yaml"); got != want {
		t.Errorf("CatalogPath = %q, want %q", got, want)
	}

	// Absolute paths pass through untouched.
	cfg.Output = "/absolute/path"
	if got := cfg.OutputPath(); got != "/absolute/path" {
		t.Errorf("OutputPath absolute = %q, want %q", got, "/absolute/path")
	}
}

func TestModulePath(t *testing.T) {
	dir := t.TempDir()

	cfg := New()
	if err := cfg.SaveTo(filepath.Join(dir, ConfigFileName)); err != nil {
		t.Fatal(err)
	}

	// No module configured and no go.mod.
	if _, err := cfg.ModulePath(); err == nil {
		t.Error("ModulePath should fail without module setting or go.mod")
	}

	// go.mod fallback.
	gomod := "module example.com/demo\n\ngo 1.24\n"
	if err := os.WriteFile(filepath.Join(dir, "go.mod"), []byte(gomod), 0644); err != nil {
		t.Fatal(err)
	}
	got, err := cfg.ModulePath()
	if err != nil {
		t.Fatalf("ModulePath error: %v", err)
	}
	if got != "example.com/demo" {
		t.Errorf("ModulePath = %q, want %q", got, "example.com/demo")
	}

	// Explicit setting wins.
	cfg.Module = "example.com/override"
	got, err = cfg.ModulePath()
	if err != nil {
		t.Fatalf("ModulePath error: %v", err)
	}
	if got != "example.com/override" {
		t.Errorf("ModulePath = %q, want %q", got, "example.com/override")
	}
}

func TestExists(t *testing.T) {
	dir := t.TempDir()

	if Exists(dir) {
		t.Error("Exists should be false for an empty directory")
	}

	writeConfig(t, dir, "{}")

	if !Exists(dir) {
		t.Error("Exists should be true after creating config")
	}
}

func TestFindProjectRoot(t *testing.T) {
	root := t.TempDir()
	nested := filepath.Join(root, "a", "b", "c")
	if err := os.MkdirAll(nested, 0755); err != nil {
		t.Fatal(err)
	}

	// No config anywhere up the tree.
	if _, err := FindProjectRoot(nested); err == nil {
		t.Error("FindProjectRoot should fail when no config exists")
	}

	writeConfig(t, root, "{}")

	// Found from any depth.
	for _, start := range []string{nested, filepath.Join(root, "a"), root} {
		got, err := FindProjectRoot(start)
		if err != nil {
			t.Fatalf("FindProjectRoot(%q) error: %v", start, err)
		}
		if got != root {
			t.Errorf("FindProjectRoot(%q) = %q, want %q", start, got, root)
		}
	}
}

func TestFillDefaults(t *testing.T) {
	cfg := &Config{}
	cfg.fillDefaults()

	if cfg.Dev.Port != DefaultPort {
		t.Errorf("Dev.Port = %d, want %d", cfg.Dev.Port, DefaultPort)
	}
	if cfg.Dev.Host != DefaultHost {
		t.Errorf("Dev.Host = %q, want %q", cfg.Dev.Host, DefaultHost)
	}
	if cfg.Output != DefaultOutput {
		t.Errorf("Output = %q, want %q", cfg.Output, DefaultOutput)
	}
	if len(cfg.Dev.Watch) == 0 {
		t.Error("Dev.Watch should have a default")
	}

	// Explicit values survive.
	cfg = &Config{Output: "public"}
	cfg.fillDefaults()
	if cfg.Output != "public" {
		t.Errorf("Output = %q, want %q", cfg.Output, "public")
	}
	if got, want := cfg.Dev.Ignore[1], "public"; got != want {
		t.Errorf("Dev.Ignore[1] = %q, want %q", got, want)
	}
}

func TestLineCol(t *testing.T) {
	data := []byte("abc\ndef\nghi")

	tests := []struct {
		offset   int64
		wantLine int
		wantCol  int
	}{
		{0, 1, 1},
		{2, 1, 3},
		{4, 2, 1},
		{6, 2, 3},
		{8, 3, 1},
		{100, 3, 4},
	}

	for _, tt := range tests {
		line, col := lineCol(data, tt.offset)
		if line != tt.wantLine || col != tt.wantCol {
			t.Errorf("lineCol(%d) = (%d, %d), want (%d, %d)", tt.offset, line, col, tt.wantLine, tt.wantCol)
		}
	}
}
