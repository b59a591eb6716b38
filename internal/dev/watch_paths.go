package dev

import (
	"path/filepath"

	"github.com/markout-dev/markout/internal/config"
)

// CollectWatchPaths returns the directories the preview should watch:
// the configured watch entries plus the assets directory, resolved
// against the project root and deduplicated. An empty result falls
// back to the project root itself.
func CollectWatchPaths(cfg *config.Config) []string {
	root := cfg.Dir()

	candidates := make([]string, 0, len(cfg.Dev.Watch)+1)
	for _, p := range cfg.Dev.Watch {
		if p == "" {
			continue
		}
		if !filepath.IsAbs(p) {
			p = filepath.Join(root, p)
		}
		candidates = append(candidates, p)
	}
	candidates = append(candidates, cfg.AssetsPath())

	seen := make(map[string]struct{}, len(candidates))
	paths := candidates[:0]
	for _, p := range candidates {
		if p == "" {
			continue
		}
		p = filepath.Clean(p)
		if _, dup := seen[p]; dup {
			continue
		}
		seen[p] = struct{}{}
		paths = append(paths, p)
	}

	if len(paths) == 0 {
		paths = append(paths, filepath.Clean(root))
	}
	return paths
}
