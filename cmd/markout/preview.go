package main

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/markout-dev/markout/internal/config"
	"github.com/markout-dev/markout/internal/dev"
)

func previewCmd() *cobra.Command {
	var (
		port        int
		host        string
		openBrowser bool
	)

	cmd := &cobra.Command{
		Use:   "preview",
		Short: "Start the preview server",
		Long: `Start the preview server with live reload.

The preview server builds the site, watches for file changes,
rebuilds, and automatically refreshes connected browsers.

Features:
  • Rebuild and reload on file change
  • Build error overlay in the browser
  • In-place stylesheet refresh
  • Custom 404 page support

Examples:
  markout preview
  markout preview --port=8080
  markout preview --host=0.0.0.0`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPreview(port, host, openBrowser)
		},
	}

	cmd.Flags().IntVarP(&port, "port", "p", 0, "Port to serve on (default from markout.json)")
	cmd.Flags().StringVarP(&host, "host", "H", "", "Host to bind to (default from markout.json)")
	cmd.Flags().BoolVarP(&openBrowser, "open", "o", false, "Open browser on start")

	return cmd
}

func runPreview(port int, host string, openBrowser bool) error {
	cfg, err := config.LoadFromWorkingDir()
	if err != nil {
		return err
	}

	// Apply command-line overrides
	if port > 0 {
		cfg.Dev.Port = port
	}
	if host != "" {
		cfg.Dev.Host = host
	}
	if openBrowser {
		cfg.Dev.OpenBrowser = true
	}

	printBanner()
	fmt.Println("  preview")
	fmt.Println()

	server := dev.NewServer(dev.ServerOptions{
		Config: cfg,
		OnBuild: func(result dev.RebuildResult) {
			if result.Success {
				success("Built in %s", result.Duration.Round(time.Millisecond))
			}
		},
		OnReload: func(clients int) {
			success("Reloaded %d browsers", clients)
		},
	})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-sigCh
		fmt.Println("\n\n  Shutting down...")
		cancel()
	}()

	if cfg.Dev.OpenBrowser {
		go openURL(cfg.DevURL())
	}

	return server.Start(ctx)
}

// openURL opens a URL in the default browser.
func openURL(url string) {
	var cmd *exec.Cmd

	switch {
	case commandExists("xdg-open"):
		cmd = exec.Command("xdg-open", url)
	case commandExists("open"):
		cmd = exec.Command("open", url)
	case commandExists("start"):
		cmd = exec.Command("cmd", "/c", "start", url)
	default:
		return
	}

	cmd.Start()
}

// commandExists checks if a command exists in PATH.
func commandExists(name string) bool {
	_, err := exec.LookPath(name)
	return err == nil
}
