// Package site assembles rendered documents into a publishable static
// site.
//
// A Site is an ordered registry of pages. Each page is a function that
// builds a document tree on demand, so registration is cheap and pages
// can consult build products such as the asset manifest at render time:
//
//	s := site.New()
//	s.MustRegister("/", func() *node.Node {
//	    return render.Page{Title: "Home", Body: home()}.Node()
//	})
//
//	pub := site.NewDiskPublisher("dist")
//	result, err := site.Build(ctx, s, pub, site.BuildOptions{AssetsDir: "assets"})
//
// Page paths map onto directory-style output files so published sites
// need no URL rewriting: "/" becomes index.html and "/about" becomes
// about/index.html.
package site

import (
	"bytes"
	"strings"
	"sync"

	"github.com/markout-dev/markout/internal/errors"
	"github.com/markout-dev/markout/pkg/node"
	"github.com/markout-dev/markout/pkg/render"
)

// PageFunc builds the document tree for one page.
type PageFunc func() *node.Node

// Site is an ordered page registry. It is safe for concurrent use.
type Site struct {
	mu       sync.RWMutex
	pages    map[string]PageFunc
	order    []string
	manifest *Manifest
}

// New creates an empty site.
func New() *Site {
	return &Site{
		pages:    make(map[string]PageFunc),
		manifest: NewManifest(),
	}
}

// Register adds a page at the given path. The path must start with a
// slash and contain no dot segments; registering the same path twice is
// an error.
func (s *Site) Register(path string, fn PageFunc) error {
	if err := validatePagePath(path); err != nil {
		return err
	}
	if fn == nil {
		return errors.Newf(errors.CategoryBuild, "nil page function for %s", path)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.pages[path]; ok {
		return errors.New("E302").WithDetail("Path " + path + " is already registered")
	}
	s.pages[path] = fn
	s.order = append(s.order, path)
	return nil
}

// MustRegister is like Register but panics on error. Intended for page
// registration in main.
func (s *Site) MustRegister(path string, fn PageFunc) {
	if err := s.Register(path, fn); err != nil {
		panic(err)
	}
}

// Paths returns the registered page paths in registration order.
func (s *Site) Paths() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]string, len(s.order))
	copy(out, s.order)
	return out
}

// Page returns the page function registered at path.
func (s *Site) Page(path string) (PageFunc, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	fn, ok := s.pages[path]
	return fn, ok
}

// Len returns the number of registered pages.
func (s *Site) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.order)
}

// Render builds and renders the page registered at path.
func (s *Site) Render(path string) ([]byte, error) {
	fn, ok := s.Page(path)
	if !ok {
		return nil, errors.Newf(errors.CategoryBuild, "no page registered for %s", path)
	}

	var buf bytes.Buffer
	if err := render.Render(&buf, fn()); err != nil {
		return nil, errors.New("E304").WithDetail("Rendering " + path).Wrap(err)
	}
	return buf.Bytes(), nil
}

// SetManifest attaches the asset manifest consulted by Asset. Build
// calls this after publishing assets.
func (s *Site) SetManifest(m *Manifest) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if m != nil {
		s.manifest = m
	}
}

// Manifest returns the manifest consulted by Asset.
func (s *Site) Manifest() *Manifest {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.manifest
}

// Asset returns the site-absolute URL for a source asset name,
// resolving fingerprinted names through the manifest. Unknown names
// pass through unchanged, which keeps pages renderable before the
// first build.
func (s *Site) Asset(name string) string {
	s.mu.RLock()
	m := s.manifest
	s.mu.RUnlock()

	return "/" + m.Resolve(name)
}

// OutputFile maps a page path to its published file name.
func OutputFile(path string) string {
	if path == "/" {
		return "index.html"
	}
	return strings.TrimPrefix(path, "/") + "/index.html"
}

func validatePagePath(path string) error {
	invalid := func(reason string) error {
		return errors.New("E303").WithDetail("Path " + path + " " + reason)
	}

	if path == "" || !strings.HasPrefix(path, "/") {
		return invalid("must start with a slash")
	}
	if strings.IndexByte(path, 0) != -1 {
		return invalid("contains a NUL byte")
	}
	if strings.Contains(path, "\\") {
		return invalid("contains a backslash")
	}
	if path != "/" && strings.HasSuffix(path, "/") {
		return invalid("must not end with a slash")
	}
	for _, seg := range strings.Split(path[1:], "/") {
		if path != "/" && seg == "" {
			return invalid("contains an empty segment")
		}
		if seg == "." || seg == ".." {
			return invalid("contains a dot segment")
		}
	}
	return nil
}
