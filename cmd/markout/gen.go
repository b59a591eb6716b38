package main

import (
	"os"
	"path/filepath"
	"sort"

	"github.com/spf13/cobra"

	"github.com/markout-dev/markout/internal/catalog"
	"github.com/markout-dev/markout/internal/config"
)

func genCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "gen <type>",
		Short: "Generate code",
		Long: `Generate code from the element and attribute catalog.

Types:
  catalog   Generate element and attribute constructor files

Examples:
  markout gen catalog                      # Embedded catalog into the current directory
  markout gen catalog --dir=pkg/node       # Write into pkg/node
  markout gen catalog --catalog=ui.yaml --package=ui`,
	}

	cmd.AddCommand(genCatalogCmd())

	return cmd
}

func genCatalogCmd() *cobra.Command {
	var (
		catalogFile string
		dir         string
		pkg         string
	)

	cmd := &cobra.Command{
		Use:   "catalog",
		Short: "Generate element and attribute constructors",
		Long: `Generate Go constructor files from a YAML element catalog.

Reads the embedded catalog by default. A project can point at its own
catalog file via "catalog" in markout.json, or pass --catalog directly.

The output is deterministic - running it multiple times produces
identical files unless the catalog changes.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGenCatalog(catalogFile, dir, pkg)
		},
	}

	cmd.Flags().StringVar(&catalogFile, "catalog", "", "Catalog YAML file (default: embedded catalog)")
	cmd.Flags().StringVarP(&dir, "dir", "o", ".", "Output directory")
	cmd.Flags().StringVar(&pkg, "package", "node", "Package name for generated files")

	return cmd
}

func runGenCatalog(catalogFile, dir, pkg string) error {
	// A project config may point at a custom catalog.
	if catalogFile == "" {
		if wd, err := os.Getwd(); err == nil && config.Exists(wd) {
			cfg, err := config.Load(wd)
			if err != nil {
				return err
			}
			catalogFile = cfg.CatalogPath()
		}
	}

	var (
		c   *catalog.Catalog
		err error
	)
	if catalogFile == "" {
		info("Loading embedded catalog...")
		c, err = catalog.Load()
	} else {
		info("Loading %s...", catalogFile)
		c, err = catalog.LoadFile(catalogFile)
	}
	if err != nil {
		return err
	}

	elements, attrs := 0, 0
	for _, g := range c.Elements {
		elements += len(g.Tags)
	}
	for _, g := range c.Attributes {
		attrs += len(g.Attrs)
	}
	info("Found %d elements and %d attributes", elements, attrs)

	gen := catalog.NewGenerator(c, pkg)
	files, err := gen.Files()
	if err != nil {
		return err
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	names := make([]string, 0, len(files))
	for name := range files {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		out := filepath.Join(dir, name)
		if err := os.WriteFile(out, files[name], 0644); err != nil {
			return err
		}
		info("Wrote %s (%d bytes)", out, len(files[name]))
	}

	success("Generated %d files", len(files))
	return nil
}
