package main

import (
	"context"
	"fmt"
	"mime"
	"os"
	"path/filepath"
	"sort"
	"time"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/spf13/cobra"

	"github.com/markout-dev/markout/internal/config"
	"github.com/markout-dev/markout/internal/dev"
	"github.com/markout-dev/markout/internal/errors"
	"github.com/markout-dev/markout/pkg/site"
)

func publishCmd() *cobra.Command {
	var (
		skipBuild    bool
		prune        bool
		bucket       string
		prefix       string
		region       string
		cacheControl string
	)

	cmd := &cobra.Command{
		Use:   "publish",
		Short: "Publish the built site",
		Long: `Build the site and copy the output to the publish target.

Targets are configured under "publish" in markout.json:

  "publish": {
    "target": "s3",
    "bucket": "my-site",
    "prefix": "prod",
    "region": "us-east-1",
    "prune": true
  }

The disk target copies into a directory instead:

  "publish": { "target": "disk", "dir": "/var/www/site" }

Examples:
  markout publish
  markout publish --skip-build
  markout publish --bucket=staging-bucket --prune`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPublish(skipBuild, prune, bucket, prefix, region, cacheControl)
		},
	}

	cmd.Flags().BoolVar(&skipBuild, "skip-build", false, "Publish the existing output without rebuilding")
	cmd.Flags().BoolVar(&prune, "prune", false, "Delete remote files no longer in the site (s3 only)")
	cmd.Flags().StringVar(&bucket, "bucket", "", "S3 bucket override")
	cmd.Flags().StringVar(&prefix, "prefix", "", "S3 key prefix override")
	cmd.Flags().StringVar(&region, "region", "", "AWS region override")
	cmd.Flags().StringVar(&cacheControl, "cache-control", "", "Cache-Control header for uploaded objects")

	return cmd
}

func runPublish(skipBuild, prune bool, bucket, prefix, region, cacheControl string) error {
	cfg, err := config.LoadFromWorkingDir()
	if err != nil {
		return err
	}

	// Apply command-line overrides. A bucket override implies the s3
	// target.
	if bucket != "" {
		cfg.Publish.Bucket = bucket
		cfg.Publish.Target = "s3"
	}
	if prefix != "" {
		cfg.Publish.Prefix = prefix
	}
	if region != "" {
		cfg.Publish.Region = region
	}
	if prune {
		cfg.Publish.Prune = true
	}

	if cfg.Publish.Target == "" {
		return errors.Newf(errors.CategoryPublish, "no publish target configured").
			WithSuggestion(`Set "publish.target" in markout.json to "disk" or "s3", or pass --bucket`)
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	ctx, cancel := signalContext()
	defer cancel()

	if !skipBuild {
		fmt.Println("  Building site...")
		rebuilder := dev.NewRebuilder(dev.RebuilderConfig{Dir: cfg.Dir()})
		result := rebuilder.Run(ctx)
		if !result.Success {
			return result.Err
		}
		success("Built in %s", result.Duration.Round(time.Millisecond))
	}

	root := cfg.OutputPath()
	files, err := outputFiles(root)
	if err != nil {
		return err
	}
	if len(files) == 0 {
		return errors.New("E405").
			WithSuggestion("Run 'markout build' first or drop --skip-build")
	}

	pub, target, err := newPublisher(ctx, cfg, cacheControl)
	if err != nil {
		return err
	}

	info("Publishing %d files to %s...", len(files), target)

	keep := make(map[string]bool, len(files))
	for _, name := range files {
		f, err := os.Open(filepath.Join(root, filepath.FromSlash(name)))
		if err != nil {
			return err
		}
		err = pub.Put(ctx, name, contentType(name), f)
		f.Close()
		if err != nil {
			return err
		}
		keep[name] = true
	}

	if cfg.Publish.Prune {
		if s3pub, ok := pub.(*site.S3Publisher); ok {
			n, err := s3pub.Prune(ctx, keep)
			if err != nil {
				return err
			}
			if n > 0 {
				info("Pruned %d stale objects", n)
			}
		} else {
			warn("Prune is only supported for the s3 target")
		}
	}

	fmt.Println()
	success("Published %d files to %s", len(files), target)

	return nil
}

// newPublisher builds the publisher for the configured target and a
// printable description of it.
func newPublisher(ctx context.Context, cfg *config.Config, cacheControl string) (site.Publisher, string, error) {
	switch cfg.Publish.Target {
	case "disk":
		dir := cfg.Publish.Dir
		if !filepath.IsAbs(dir) {
			dir = filepath.Join(cfg.Dir(), dir)
		}
		return site.NewDiskPublisher(dir), dir, nil

	case "s3":
		var loadOpts []func(*awsconfig.LoadOptions) error
		if cfg.Publish.Region != "" {
			loadOpts = append(loadOpts, awsconfig.WithRegion(cfg.Publish.Region))
		}
		awsCfg, err := awsconfig.LoadDefaultConfig(ctx, loadOpts...)
		if err != nil {
			return nil, "", errors.Newf(errors.CategoryPublish, "loading AWS credentials: %v", err).
				WithSuggestion("Configure credentials via environment variables, shared config, or an instance role")
		}
		pub := site.NewS3Publisher(s3.NewFromConfig(awsCfg), cfg.Publish.Bucket, cfg.Publish.Prefix)
		if cacheControl != "" {
			pub = pub.WithCacheControl(cacheControl)
		}
		return pub, "s3://" + cfg.Publish.Bucket + "/" + cfg.Publish.Prefix, nil

	default:
		return nil, "", errors.Newf(errors.CategoryPublish, "unknown publish target %q", cfg.Publish.Target).
			WithSuggestion(`Use "disk" or "s3"`)
	}
}

// outputFiles lists the files under dir as sorted slash-separated
// relative names. A missing directory is an empty site, not an error.
func outputFiles(dir string) ([]string, error) {
	if _, err := os.Stat(dir); os.IsNotExist(err) {
		return nil, nil
	}

	var files []string
	err := filepath.WalkDir(dir, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		rel, err := filepath.Rel(dir, path)
		if err != nil {
			return err
		}
		files = append(files, filepath.ToSlash(rel))
		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.Strings(files)
	return files, nil
}

func contentType(name string) string {
	if ct := mime.TypeByExtension(filepath.Ext(name)); ct != "" {
		return ct
	}
	return "application/octet-stream"
}
