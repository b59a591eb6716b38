package dev

import (
	"cmp"
	"context"
	"io/fs"
	"path"
	"path/filepath"
	"strings"
	"sync"
	"time"
)

// ChangeType classifies a detected file change.
type ChangeType int

const (
	// ChangePage is a Go source change. Pages are Go code, so any .go
	// file forces a rebuild.
	ChangePage ChangeType = iota

	// ChangeStyle is a stylesheet change.
	ChangeStyle

	// ChangeAsset is any other file change.
	ChangeAsset
)

// Change is a detected file change.
type Change struct {
	Path string
	Type ChangeType
}

// WatcherConfig tunes polling and path filtering.
type WatcherConfig struct {
	// Paths lists the directory trees to poll.
	Paths []string

	// Ignore patterns to skip (globs or directory names).
	Ignore []string

	// Debounce is the polling interval.
	Debounce time.Duration
}

// DefaultIgnore contains patterns skipped by every watcher.
var DefaultIgnore = []string{
	"*_test.go",
	".git",
	"node_modules",
	"dist",
	"tmp",
	"*.tmp",
	"*.swp",
	"*~",
}

// Watcher monitors files for changes by polling modification times.
// Polling needs no platform-specific watch APIs and behaves the same
// on network and container filesystems.
type Watcher struct {
	config WatcherConfig
	ignore []string

	mu       sync.Mutex
	onChange func(Change)
	running  bool
	primed   bool
	quit     chan struct{}
	seen     map[string]time.Time
}

// NewWatcher builds a watcher over the configured paths. Call Start to
// begin polling. Ignore patterns are normalized once here rather than
// on every poll.
func NewWatcher(config WatcherConfig) *Watcher {
	config.Debounce = cmp.Or(config.Debounce, 100*time.Millisecond)

	patterns := config.Ignore
	if len(patterns) == 0 {
		patterns = DefaultIgnore
	}

	w := &Watcher{
		config: config,
		seen:   make(map[string]time.Time),
	}
	for _, pat := range patterns {
		if pat = strings.TrimSpace(pat); pat != "" {
			w.ignore = append(w.ignore, pat)
		}
	}
	return w
}

// OnChange registers the callback invoked for each detected change.
func (w *Watcher) OnChange(fn func(Change)) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.onChange = fn
}

// Start begins watching for file changes. It blocks until the context
// is canceled or Stop is called.
func (w *Watcher) Start(ctx context.Context) error {
	if !w.begin() {
		return nil
	}

	// The first poll primes the state, so files that already exist are
	// not reported as new.
	w.poll()

	ticker := time.NewTicker(w.config.Debounce)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			w.poll()
		case <-w.quit:
			return nil
		case <-ctx.Done():
			return ctx.Err()
		}
	}
}

// begin flips the watcher into the running state. It reports false when
// Start has already been called.
func (w *Watcher) begin() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.running {
		return false
	}
	w.running = true
	w.quit = make(chan struct{})
	return true
}

// Stop halts polling. Safe to call more than once.
func (w *Watcher) Stop() {
	w.mu.Lock()
	defer w.mu.Unlock()
	if !w.running {
		return
	}
	w.running = false
	close(w.quit)
}

// IsRunning reports whether Start has been called and Stop has not.
func (w *Watcher) IsRunning() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.running
}

// poll takes a fresh snapshot of the watched trees and reports every
// path that is new, modified, or gone since the previous snapshot.
func (w *Watcher) poll() {
	w.mu.Lock()
	notify := w.onChange
	prev := w.seen
	primed := w.primed
	w.mu.Unlock()

	next := make(map[string]time.Time, len(prev))
	var changed []string

	for _, root := range w.config.Paths {
		filepath.WalkDir(root, func(p string, d fs.DirEntry, err error) error {
			if err != nil {
				return nil
			}
			if d.IsDir() {
				if w.shouldIgnore(p) {
					return fs.SkipDir
				}
				return nil
			}
			if w.shouldIgnore(p) {
				return nil
			}
			info, err := d.Info()
			if err != nil {
				return nil
			}
			mod := info.ModTime()
			next[p] = mod
			if last, ok := prev[p]; !ok || mod.After(last) {
				changed = append(changed, p)
			}
			return nil
		})
	}

	for p := range prev {
		if _, ok := next[p]; !ok {
			changed = append(changed, p)
		}
	}

	w.mu.Lock()
	w.seen = next
	w.primed = true
	w.mu.Unlock()

	if notify == nil || !primed {
		return
	}

	// One callback per change type per poll keeps burst saves from
	// queueing redundant rebuilds.
	notified := make(map[ChangeType]bool, 3)
	for _, p := range changed {
		t := classifyChange(p)
		if notified[t] {
			continue
		}
		notified[t] = true
		notify(Change{Path: p, Type: t})
	}
}

// shouldIgnore reports whether a path matches the ignore list. Bare
// names match any path segment, glob patterns match the base name, and
// patterns containing a separator match the slashed path as a whole
// (globs) or as a consecutive segment run (literals).
func (w *Watcher) shouldIgnore(p string) bool {
	base := filepath.Base(p)
	slashed := filepath.ToSlash(p)

	for _, pattern := range w.ignore {
		if ignoreMatch(pattern, base, slashed) {
			return true
		}
	}
	return false
}

func ignoreMatch(pattern, base, slashed string) bool {
	sep := strings.ContainsAny(pattern, `/\`)
	glob := strings.ContainsAny(pattern, "*?[")

	switch {
	case glob && sep:
		ok, _ := path.Match(filepath.ToSlash(pattern), slashed)
		return ok
	case glob:
		ok, _ := path.Match(pattern, base)
		return ok
	case sep:
		return segmentRunMatch(slashed, filepath.ToSlash(pattern))
	default:
		return hasSegment(slashed, pattern)
	}
}

func hasSegment(slashed, name string) bool {
	for _, seg := range strings.Split(slashed, "/") {
		if seg == name {
			return true
		}
	}
	return false
}

// segmentRunMatch reports whether the pattern's segments appear as a
// consecutive run anywhere in the path.
func segmentRunMatch(slashed, pattern string) bool {
	ps := pathSegments(slashed)
	qs := pathSegments(pattern)
	if len(qs) == 0 {
		return false
	}
	for i := 0; i+len(qs) <= len(ps); i++ {
		j := 0
		for j < len(qs) && ps[i+j] == qs[j] {
			j++
		}
		if j == len(qs) {
			return true
		}
	}
	return false
}

func pathSegments(p string) []string {
	var segs []string
	for _, s := range strings.Split(p, "/") {
		if s != "" && s != "." {
			segs = append(segs, s)
		}
	}
	return segs
}

// kindForExt maps file extensions to the rebuild kind they trigger.
var kindForExt = map[string]ChangeType{
	".go":   ChangePage,
	".css":  ChangeStyle,
	".scss": ChangeStyle,
	".sass": ChangeStyle,
	".less": ChangeStyle,
}

// classifyChange determines the change type from the file extension.
func classifyChange(path string) ChangeType {
	if t, ok := kindForExt[strings.ToLower(filepath.Ext(path))]; ok {
		return t
	}
	return ChangeAsset
}
