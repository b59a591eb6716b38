package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/markout-dev/markout/internal/errors"
)

const banner = `
  ┌┬┐┌─┐┬─┐┬┌─┌─┐┬ ┬┌┬┐
  │││├─┤├┬┘├┴┐│ ││ │ │
  ┴ ┴┴ ┴┴└─┴ ┴└─┘└─┘ ┴
`

func main() {
	root := &cobra.Command{
		Use:   "markout",
		Short: "Render typed HTML trees to static sites",
		Long: `Markout builds HTML documents from typed Go trees.

Write pages as plain Go functions, preview them with live
reload, and publish the rendered output anywhere. Features:

  • Typed element and attribute constructors
  • Deterministic document rendering
  • Fingerprinted asset pipeline
  • Live-reload preview server
  • Disk and S3 publish targets`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(
		createCmd(),
		buildCmd(),
		previewCmd(),
		publishCmd(),
		genCmd(),
		versionCmd(),
	)

	if err := root.Execute(); err != nil {
		errors.PrintError(err)
		os.Exit(1)
	}
}

func printBanner() {
	fmt.Print(banner)
}

// status prints a glyph-prefixed line. Errors go to stderr, everything
// else to stdout.
func status(w io.Writer, glyph, format string, args ...any) {
	fmt.Fprintf(w, "%s %s\n", glyph, fmt.Sprintf(format, args...))
}

func success(format string, args ...any) {
	status(os.Stdout, "\033[32m✓\033[0m", format, args...)
}

func warn(format string, args ...any) {
	status(os.Stdout, "\033[33m⚠\033[0m", format, args...)
}

func errorMsg(format string, args ...any) {
	status(os.Stderr, "\033[31m✗\033[0m", format, args...)
}

func info(format string, args ...any) {
	fmt.Printf("  %s\n", fmt.Sprintf(format, args...))
}

// signalContext returns a context cancelled on SIGINT or SIGTERM.
func signalContext() (context.Context, context.CancelFunc) {
	ctx, cancel := context.WithCancel(context.Background())

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-sigCh
		cancel()
	}()

	return ctx, cancel
}
