package templates

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/markout-dev/markout/internal/config"
	"github.com/markout-dev/markout/internal/errors"
)

func TestGet(t *testing.T) {
	tests := []struct {
		name    string
		wantErr bool
	}{
		{"site", false},
		{"minimal", false},
		{"nonexistent", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tmpl, err := Get(tt.name)
			if tt.wantErr {
				merr, ok := err.(*errors.Error)
				if !ok {
					t.Fatalf("got %T, want *errors.Error", err)
				}
				if merr.Code != "E503" {
					t.Errorf("code = %q, want E503", merr.Code)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if tmpl.Name != tt.name {
				t.Errorf("Name = %q, want %q", tmpl.Name, tt.name)
			}
		})
	}
}

func TestList(t *testing.T) {
	names := List()
	want := []string{"minimal", "site"}
	if len(names) != len(want) {
		t.Fatalf("got %d templates, want %d", len(names), len(want))
	}
	for i := range want {
		if names[i] != want[i] {
			t.Errorf("names[%d] = %q, want %q", i, names[i], want[i])
		}
	}
}

func TestTemplate_Create_Site(t *testing.T) {
	tmpDir := t.TempDir()

	tmpl, err := Get("site")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	cfg := Config{
		ProjectName: "test-site",
		ModulePath:  "github.com/test/test-site",
		Description: "A test site",
	}

	if err := tmpl.Create(tmpDir, cfg); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for _, file := range []string{
		"main.go",
		"pages.go",
		"go.mod",
		"markout.json",
		"assets/app.css",
		"README.md",
	} {
		if _, err := os.Stat(filepath.Join(tmpDir, file)); err != nil {
			t.Errorf("file %q not created: %v", file, err)
		}
	}

	pages := readScaffold(t, tmpDir, "pages.go")
	if !strings.Contains(pages, "test-site") {
		t.Error("project name not substituted in pages.go")
	}
	if !strings.Contains(pages, "A test site") {
		t.Error("description not substituted in pages.go")
	}

	goMod := readScaffold(t, tmpDir, "go.mod")
	if !strings.Contains(goMod, "module github.com/test/test-site") {
		t.Error("module path not substituted in go.mod")
	}
	if !strings.Contains(goMod, "github.com/markout-dev/markout") {
		t.Error("markout dependency missing from go.mod")
	}

	mainGo := readScaffold(t, tmpDir, "main.go")
	if !strings.Contains(mainGo, "site.Build") {
		t.Error("build entrypoint missing from main.go")
	}
	if !strings.Contains(mainGo, "serve.New") {
		t.Error("serve entrypoint missing from main.go")
	}

	readme := readScaffold(t, tmpDir, "README.md")
	if !strings.Contains(readme, "# test-site") {
		t.Error("project name not substituted in README.md")
	}
}

func TestTemplate_Create_Minimal(t *testing.T) {
	tmpDir := t.TempDir()

	tmpl, err := Get("minimal")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	cfg := Config{
		ProjectName: "tiny",
		ModulePath:  "example.com/tiny",
		Description: "One page",
	}

	if err := tmpl.Create(tmpDir, cfg); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for _, file := range []string{"main.go", "go.mod", "markout.json"} {
		if _, err := os.Stat(filepath.Join(tmpDir, file)); err != nil {
			t.Errorf("file %q not created: %v", file, err)
		}
	}

	mainGo := readScaffold(t, tmpDir, "main.go")
	if !strings.Contains(mainGo, "Welcome to tiny") {
		t.Error("project name not substituted in main.go")
	}
	if !strings.Contains(mainGo, "One page") {
		t.Error("description not substituted in main.go")
	}

	goMod := readScaffold(t, tmpDir, "go.mod")
	if !strings.Contains(goMod, "module example.com/tiny") {
		t.Error("module path not substituted in go.mod")
	}
}

// Scaffolded projects must load through the config package without
// edits.
func TestTemplate_Create_ConfigLoads(t *testing.T) {
	for _, name := range List() {
		t.Run(name, func(t *testing.T) {
			tmpDir := t.TempDir()

			tmpl, err := Get(name)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			err = tmpl.Create(tmpDir, Config{
				ProjectName: "demo",
				ModulePath:  "example.com/demo",
				Description: "Demo project",
			})
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			cfg, err := config.Load(tmpDir)
			if err != nil {
				t.Fatalf("scaffolded markout.json does not load: %v", err)
			}
			if err := cfg.Validate(); err != nil {
				t.Fatalf("scaffolded markout.json does not validate: %v", err)
			}
			if cfg.Name != "demo" {
				t.Errorf("Name = %q, want %q", cfg.Name, "demo")
			}
			if cfg.Output == "" {
				t.Error("output directory not defaulted")
			}
		})
	}
}

func TestTemplate_Description(t *testing.T) {
	for _, name := range List() {
		tmpl, err := Get(name)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if tmpl.Description == "" {
			t.Errorf("template %q has no description", name)
		}
	}
}

func readScaffold(t *testing.T, dir, name string) string {
	t.Helper()
	data, err := os.ReadFile(filepath.Join(dir, name))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return string(data)
}
