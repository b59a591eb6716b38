package main

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/markout-dev/markout/internal/config"
	"github.com/markout-dev/markout/internal/dev"
)

func buildCmd() *cobra.Command {
	var clean bool

	cmd := &cobra.Command{
		Use:   "build",
		Short: "Build the site",
		Long: `Render the site into the output directory.

This command runs the project's build program ("go run . build" by
default). The program renders every registered page to HTML and
publishes fingerprinted assets into the output directory from
markout.json.

Examples:
  markout build
  markout build --clean`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBuildCmd(clean)
		},
	}

	cmd.Flags().BoolVar(&clean, "clean", false, "Remove the output directory before building")

	return cmd
}

func runBuildCmd(clean bool) error {
	cfg, err := config.LoadFromWorkingDir()
	if err != nil {
		return err
	}

	if clean {
		info("Cleaning %s/...", cfg.Output)
		if err := os.RemoveAll(cfg.OutputPath()); err != nil {
			return err
		}
	}

	fmt.Println("  Building site...")
	fmt.Println()

	ctx, cancel := signalContext()
	defer cancel()

	rebuilder := dev.NewRebuilder(dev.RebuilderConfig{Dir: cfg.Dir()})
	result := rebuilder.Run(ctx)
	if !result.Success {
		return result.Err
	}

	pages, total := countOutput(cfg.OutputPath())

	fmt.Println()
	success("Built %d pages in %s", pages, result.Duration.Round(time.Millisecond))
	info("Output: %s/ (%s)", cfg.Output, formatBytes(total))

	return nil
}

// countOutput tallies rendered pages and total bytes in the output
// directory.
func countOutput(dir string) (pages int, total int64) {
	filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil || d.IsDir() {
			return nil
		}
		if strings.HasSuffix(path, ".html") {
			pages++
		}
		if fi, err := d.Info(); err == nil {
			total += fi.Size()
		}
		return nil
	})
	return pages, total
}

// formatBytes renders a byte count in human units.
func formatBytes(b int64) string {
	units := []string{"B", "KB", "MB", "GB", "TB"}

	size := float64(b)
	i := 0
	for size >= 1024 && i < len(units)-1 {
		size /= 1024
		i++
	}
	if i == 0 {
		return fmt.Sprintf("%d B", b)
	}
	return fmt.Sprintf("%.1f %s", size, units[i])
}
