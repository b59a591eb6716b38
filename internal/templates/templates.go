package templates

import (
	"bytes"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"text/template"

	"github.com/markout-dev/markout/internal/errors"
)

// Config carries the values substituted into scaffold files.
type Config struct {
	ProjectName string // directory and display name
	ModulePath  string // go.mod module path
	Description string // one-line project description
}

// Template is a named set of scaffold files, keyed by path relative to
// the project root.
type Template struct {
	Name        string
	Description string
	Files       map[string]string
}

var templates = map[string]*Template{
	"site":    siteTemplate(),
	"minimal": minimalTemplate(),
}

// Get looks up a template by name.
func Get(name string) (*Template, error) {
	if tmpl := templates[name]; tmpl != nil {
		return tmpl, nil
	}
	return nil, errors.New("E503").
		WithDetail("Template '" + name + "' not found").
		WithSuggestion("Available templates: " + strings.Join(List(), ", "))
}

// List returns all available template names, sorted.
func List() []string {
	names := make([]string, 0, len(templates))
	for name := range templates {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Create expands every file in the template and writes it under dir.
// Files go out in path order so a failure leaves a predictable prefix.
func (t *Template) Create(dir string, cfg Config) error {
	paths := make([]string, 0, len(t.Files))
	for p := range t.Files {
		paths = append(paths, p)
	}
	sort.Strings(paths)

	for _, relPath := range paths {
		if err := writeRendered(filepath.Join(dir, relPath), relPath, t.Files[relPath], cfg); err != nil {
			return err
		}
	}
	return nil
}

// writeRendered expands one scaffold file into dst, creating parent
// directories as needed.
func writeRendered(dst, name, content string, cfg Config) error {
	tmpl, err := template.New(name).Parse(content)
	if err != nil {
		return errors.Newf(errors.CategoryCLI, "invalid template %s: %v", name, err)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, cfg); err != nil {
		return errors.Newf(errors.CategoryCLI, "template execute error %s: %v", name, err)
	}

	if err := os.MkdirAll(filepath.Dir(dst), 0755); err != nil {
		return err
	}
	return os.WriteFile(dst, buf.Bytes(), 0644)
}

// siteTemplate returns the default multi-page template.
func siteTemplate() *Template {
	return &Template{
		Name:        "site",
		Description: "Multi-page site with a shared layout and static assets",
		Files: map[string]string{
			"main.go": `package main

import (
	"context"
	"log"
	"net/http"
	"os"

	"github.com/markout-dev/markout/pkg/serve"
	"github.com/markout-dev/markout/pkg/site"
)

func main() {
	s := site.New()
	s.MustRegister("/", home(s))
	s.MustRegister("/about", about(s))

	cmd := "build"
	if len(os.Args) > 1 {
		cmd = os.Args[1]
	}

	switch cmd {
	case "build":
		result, err := site.Build(context.Background(), s, site.NewDiskPublisher("dist"), site.BuildOptions{
			AssetsDir: "assets",
		})
		if err != nil {
			log.Fatal(err)
		}
		log.Printf("built %d pages and %d assets into dist/", result.Pages, result.Assets)

	case "serve":
		log.Println("serving on http://localhost:8080")
		if err := http.ListenAndServe(":8080", serve.New(s, serve.Config{Static: "assets"})); err != nil {
			log.Fatal(err)
		}

	default:
		log.Fatalf("unknown command %q (want build or serve)", cmd)
	}
}
`,
			"pages.go": `package main

import (
	. "github.com/markout-dev/markout/pkg/node"
	"github.com/markout-dev/markout/pkg/site"
)

// layout is the shared document shell.
func layout(s *site.Site, title string, content *Node) *Node {
	return Doctype(
		Html(Lang("en"),
			Head(
				Meta(Charset("utf-8")),
				Meta(Name("viewport"), Content("width=device-width, initial-scale=1")),
				Title(Text(title)),
				Link(Rel("stylesheet"), Href(s.Asset("app.css"))),
			),
			Body(
				Header(Nav(
					A(Href("/"), Text("{{.ProjectName}}")),
					A(Href("/about"), Text("About")),
				)),
				Main(content),
				Footer(P(Text("Built with markout"))),
			),
		),
	)
}

func home(s *site.Site) site.PageFunc {
	return func() *Node {
		return layout(s, "{{.ProjectName}}",
			Section(
				H1(Text("Welcome to {{.ProjectName}}")),
				P(Text("{{.Description}}")),
				P(
					Text("Edit "),
					Code(Text("pages.go")),
					Text(" and the preview reloads automatically."),
				),
			),
		)
	}
}

func about(s *site.Site) site.PageFunc {
	return func() *Node {
		return layout(s, "About - {{.ProjectName}}",
			Section(
				H1(Text("About")),
				P(Text("Pages are Go functions that return element trees. The build renders each one to plain HTML ahead of time.")),
			),
		)
	}
}
`,
			"go.mod": `module {{.ModulePath}}

go 1.24

require github.com/markout-dev/markout v0.1.0
`,
			"markout.json": `{
  "name": "{{.ProjectName}}",
  "module": "{{.ModulePath}}",
  "output": "dist",
  "assets": "assets",
  "dev": {
    "port": 3000,
    "reload": true
  }
}
`,
			"assets/app.css": `:root {
  font-family: system-ui, sans-serif;
  line-height: 1.6;
  color: #1a1a1a;
}

body {
  max-width: 720px;
  margin: 0 auto;
  padding: 2rem 1rem;
}

header nav a {
  margin-right: 1rem;
}

footer {
  margin-top: 3rem;
  font-size: 0.875rem;
  color: #666;
}
`,
			"README.md": `# {{.ProjectName}}

{{.Description}}

## Development

` + "```bash" + `
# Start the preview server with live reload
markout preview

# Build the site into dist/
markout build

# Publish dist/ to the configured target
markout publish
` + "```" + `

## Pages

Pages live in pages.go as functions returning element trees.
Register a new one in main.go:

` + "```go" + `
s.MustRegister("/blog", blog(s))
` + "```" + `

The path /blog becomes blog/index.html in the build output.

## Assets

Files under assets/ are published with fingerprinted names.
Resolve them in pages with s.Asset("app.css").
`,
		},
	}
}

// minimalTemplate returns the smallest runnable project.
func minimalTemplate() *Template {
	return &Template{
		Name:        "minimal",
		Description: "Just the essentials: one page and a build entrypoint",
		Files: map[string]string{
			"main.go": `package main

import (
	"context"
	"log"

	. "github.com/markout-dev/markout/pkg/node"
	"github.com/markout-dev/markout/pkg/site"
)

func main() {
	s := site.New()
	s.MustRegister("/", func() *Node {
		return Doctype(
			Html(Lang("en"),
				Head(
					Meta(Charset("utf-8")),
					Title(Text("{{.ProjectName}}")),
				),
				Body(
					H1(Text("Welcome to {{.ProjectName}}")),
					P(Text("{{.Description}}")),
				),
			),
		)
	})

	if _, err := site.Build(context.Background(), s, site.NewDiskPublisher("dist"), site.BuildOptions{}); err != nil {
		log.Fatal(err)
	}
}
`,
			"go.mod": `module {{.ModulePath}}

go 1.24

require github.com/markout-dev/markout v0.1.0
`,
			"markout.json": `{
  "name": "{{.ProjectName}}",
  "module": "{{.ModulePath}}"
}
`,
		},
	}
}
