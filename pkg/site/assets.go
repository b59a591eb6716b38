package site

import (
	"bytes"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	stderrors "errors"
	"io/fs"
	"mime"
	"os"
	"path"
	"path/filepath"
	"sync"

	"github.com/markout-dev/markout/internal/errors"
)

// Manifest holds the mapping from source asset names to fingerprinted
// published paths. It is safe for concurrent use.
type Manifest struct {
	mu      sync.RWMutex
	entries map[string]string
}

// NewManifest creates an empty manifest.
func NewManifest() *Manifest {
	return &Manifest{entries: make(map[string]string)}
}

// LoadManifest reads a manifest.json file:
//
//	{"app.css": "assets/app.a1b2c3d4.css"}
func LoadManifest(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var entries map[string]string
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, err
	}
	return &Manifest{entries: entries}, nil
}

// Resolve returns the published path for the given source name. If not
// found, the name is returned unchanged.
func (m *Manifest) Resolve(name string) string {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if resolved, ok := m.entries[name]; ok {
		return resolved
	}
	return name
}

// Has reports whether the manifest contains the given source name.
func (m *Manifest) Has(name string) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()

	_, ok := m.entries[name]
	return ok
}

// Set adds or updates an entry.
func (m *Manifest) Set(name, resolved string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.entries[name] = resolved
}

// Len returns the number of entries.
func (m *Manifest) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return len(m.entries)
}

// All returns a copy of all entries.
func (m *Manifest) All() map[string]string {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make(map[string]string, len(m.entries))
	for k, v := range m.entries {
		out[k] = v
	}
	return out
}

// MarshalJSON encodes the manifest as a flat object.
func (m *Manifest) MarshalJSON() ([]byte, error) {
	return json.MarshalIndent(m.All(), "", "  ")
}

// FingerprintName inserts a content hash before the file extension:
// "css/app.css" becomes "css/app.a1b2c3d4.css". Fingerprinted names
// change whenever content changes, so published assets can be cached
// forever.
func FingerprintName(name string, data []byte) string {
	sum := sha256.Sum256(data)
	hash := hex.EncodeToString(sum[:4])

	ext := path.Ext(name)
	return name[:len(name)-len(ext)] + "." + hash + ext
}

// PublishAssets walks dir, publishes every regular file under prefix
// with a fingerprinted name, and returns the resulting manifest. Files
// and directories starting with a dot are skipped.
func PublishAssets(ctx context.Context, pub Publisher, dir, prefix string) (*Manifest, error) {
	manifest := NewManifest()

	err := filepath.WalkDir(dir, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if name := d.Name(); len(name) > 0 && name[0] == '.' && p != dir {
			if d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		if d.IsDir() {
			return nil
		}

		rel, err := filepath.Rel(dir, p)
		if err != nil {
			return err
		}
		name := filepath.ToSlash(rel)

		data, err := os.ReadFile(p)
		if err != nil {
			return err
		}

		published := path.Join(prefix, FingerprintName(name, data))
		if err := pub.Put(ctx, published, contentTypeFor(name), bytes.NewReader(data)); err != nil {
			return err
		}

		manifest.Set(name, published)
		return nil
	})
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.New("E305").WithDetail("Assets directory " + dir + " does not exist")
		}
		var merr *errors.Error
		if stderrors.As(err, &merr) {
			return nil, err
		}
		return nil, errors.New("E301").WithDetail("Publishing assets from " + dir).Wrap(err)
	}

	return manifest, nil
}

func contentTypeFor(name string) string {
	if ct := mime.TypeByExtension(path.Ext(name)); ct != "" {
		return ct
	}
	return "application/octet-stream"
}
