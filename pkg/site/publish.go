package site

import (
	"context"
	"io"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/markout-dev/markout/internal/errors"
)

// Publisher is the destination for built site files.
// Implement this interface to publish to storage the package does not
// cover.
type Publisher interface {
	// Put writes one file. The name is a slash-separated path relative
	// to the site root, for example "about/index.html".
	Put(ctx context.Context, name, contentType string, body io.Reader) error
}

// DiskPublisher writes the site into a local directory.
type DiskPublisher struct {
	root string
}

// NewDiskPublisher creates a publisher rooted at dir. The directory is
// created on first Put.
func NewDiskPublisher(dir string) *DiskPublisher {
	return &DiskPublisher{root: dir}
}

// Root returns the publish directory.
func (p *DiskPublisher) Root() string { return p.root }

// Put writes body to name under the publish root. Content type is
// dropped; on disk the extension carries it.
func (p *DiskPublisher) Put(ctx context.Context, name, contentType string, body io.Reader) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	rel, ok := publishRelPath(name)
	if !ok {
		return errors.New("E402").WithDetail("Refusing to write " + name)
	}

	dst := filepath.Join(p.root, filepath.FromSlash(rel))
	if err := os.MkdirAll(filepath.Dir(dst), 0755); err != nil {
		return errors.New("E401").WithDetail("Creating " + filepath.Dir(dst)).Wrap(err)
	}

	f, err := os.Create(dst)
	if err != nil {
		return errors.New("E401").WithDetail("Creating " + dst).Wrap(err)
	}
	if _, err := io.Copy(f, body); err != nil {
		f.Close()
		return errors.New("E401").WithDetail("Writing " + dst).Wrap(err)
	}
	if err := f.Close(); err != nil {
		return errors.New("E401").WithDetail("Writing " + dst).Wrap(err)
	}
	return nil
}

// publishRelPath returns a sanitized relative path for a publish name.
// It rejects traversal and absolute-path tricks so publishing cannot
// escape the configured root.
func publishRelPath(name string) (string, bool) {
	if name == "" {
		return "", false
	}

	// Reject NUL early (can appear via injected input).
	if strings.IndexByte(name, 0) != -1 {
		return "", false
	}

	// Reject platform-dependent separators.
	if strings.Contains(name, "\\") {
		return "", false
	}

	// A leading "/" indicates an absolute-path attempt.
	if strings.HasPrefix(name, "/") {
		return "", false
	}

	// Reject dot-segments before cleaning to avoid "cleaning away"
	// traversal attempts and changing the meaning of the name.
	for _, seg := range strings.Split(name, "/") {
		if seg == "." || seg == ".." {
			return "", false
		}
	}

	clean := path.Clean(name)
	if clean == "." || clean == "" || clean == ".." || strings.HasPrefix(clean, "../") || strings.HasPrefix(clean, "/") {
		return "", false
	}

	// Defense-in-depth: reject OS-absolute/volume paths after slash
	// conversion.
	osPath := filepath.FromSlash(clean)
	if filepath.IsAbs(osPath) || filepath.VolumeName(osPath) != "" {
		return "", false
	}

	return clean, true
}
