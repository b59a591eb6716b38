package site

import (
	"bytes"
	"context"
	"log/slog"
)

// ManifestFile is the name the asset manifest is published under.
const ManifestFile = "manifest.json"

// BuildOptions configures a build.
type BuildOptions struct {
	// AssetsDir is the source directory for static assets. Empty skips
	// asset publishing.
	AssetsDir string

	// AssetsPrefix is the published subdirectory for assets.
	// Default: "assets".
	AssetsPrefix string

	// Logger receives build progress. Default: slog.Default().
	Logger *slog.Logger
}

// BuildResult reports what a build published.
type BuildResult struct {
	// Pages is the number of pages rendered.
	Pages int

	// Assets is the number of asset files published.
	Assets int

	// Keep holds every published name. Pass it to S3Publisher.Prune to
	// drop files no longer part of the site.
	Keep map[string]bool

	// Manifest maps source asset names to their published paths.
	Manifest *Manifest
}

// Build publishes assets, then renders and publishes every registered
// page in registration order. Assets go first so pages resolve
// fingerprinted names through the site's manifest.
func Build(ctx context.Context, s *Site, pub Publisher, opts BuildOptions) (*BuildResult, error) {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	prefix := opts.AssetsPrefix
	if prefix == "" {
		prefix = "assets"
	}

	result := &BuildResult{
		Keep:     make(map[string]bool),
		Manifest: NewManifest(),
	}

	if opts.AssetsDir != "" {
		manifest, err := PublishAssets(ctx, pub, opts.AssetsDir, prefix)
		if err != nil {
			return nil, err
		}
		s.SetManifest(manifest)
		result.Manifest = manifest
		result.Assets = manifest.Len()
		for _, published := range manifest.All() {
			result.Keep[published] = true
		}

		data, err := manifest.MarshalJSON()
		if err != nil {
			return nil, err
		}
		if err := pub.Put(ctx, ManifestFile, "application/json", bytes.NewReader(data)); err != nil {
			return nil, err
		}
		result.Keep[ManifestFile] = true

		logger.Info("assets published", "dir", opts.AssetsDir, "count", result.Assets)
	}

	for _, path := range s.Paths() {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		html, err := s.Render(path)
		if err != nil {
			return nil, err
		}

		name := OutputFile(path)
		if err := pub.Put(ctx, name, "text/html; charset=utf-8", bytes.NewReader(html)); err != nil {
			return nil, err
		}
		result.Keep[name] = true
		result.Pages++

		logger.Debug("page rendered", "path", path, "file", name, "bytes", len(html))
	}

	logger.Info("build complete", "pages", result.Pages, "assets", result.Assets)
	return result, nil
}
