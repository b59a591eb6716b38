package main

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"
)

// Build metadata, overridden by the release pipeline via -ldflags.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func versionCmd() *cobra.Command {
	var short bool

	cmd := &cobra.Command{
		Use:   "version",
		Short: "Show version and build metadata",
		Long:  "Show version, commit, and build metadata for the markout CLI.",
		Run: func(cmd *cobra.Command, args []string) {
			if short {
				fmt.Println(version)
				return
			}

			printBanner()
			fmt.Println()
			rows := []struct{ label, value string }{
				{"Version", version},
				{"Commit", commit},
				{"Built", date},
				{"Go version", runtime.Version()},
				{"OS/Arch", runtime.GOOS + "/" + runtime.GOARCH},
			}
			for _, row := range rows {
				fmt.Printf("  %-11s %s\n", row.label+":", row.value)
			}
			fmt.Println()
		},
	}

	cmd.Flags().BoolVarP(&short, "short", "s", false, "Print only the version number")

	return cmd
}
