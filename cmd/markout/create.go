package main

import (
	"bufio"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/markout-dev/markout/internal/errors"
	"github.com/markout-dev/markout/internal/templates"
)

type createOptions struct {
	template    string
	module      string
	description string
	skipPrompts bool
}

func createCmd() *cobra.Command {
	var opts createOptions

	cmd := &cobra.Command{
		Use:   "create <name>",
		Short: "Create a new markout site",
		Long: `Create a new markout site with the specified name.

Templates:
  site      Multi-page site with a shared layout and static assets (default)
  minimal   Just the essentials: one page and a build entrypoint

Examples:
  markout create my-site
  markout create my-site --template=minimal
  markout create my-site --module=github.com/me/my-site`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCreate(args[0], opts)
		},
	}

	cmd.Flags().StringVarP(&opts.template, "template", "t", "site", "Project template (site, minimal)")
	cmd.Flags().StringVarP(&opts.module, "module", "m", "", "Go module path (default: project name)")
	cmd.Flags().StringVarP(&opts.description, "description", "d", "", "Project description")
	cmd.Flags().BoolVarP(&opts.skipPrompts, "yes", "y", false, "Skip prompts and use defaults")

	return cmd
}

func runCreate(name string, opts createOptions) error {
	printBanner()
	fmt.Println("  Creating a new markout site...")
	fmt.Println()

	if err := checkProjectName(name); err != nil {
		return err
	}

	projectDir, err := filepath.Abs(name)
	if err != nil {
		return err
	}
	if _, err := os.Stat(projectDir); !os.IsNotExist(err) {
		return errors.New("E501").
			WithDetail(fmt.Sprintf("%q already exists in this directory", name)).
			WithSuggestion("Pick another name or remove the existing directory")
	}

	if !opts.skipPrompts {
		if err := opts.promptMissing(); err != nil {
			return err
		}
	}
	if opts.module == "" {
		opts.module = name
	}
	if opts.description == "" {
		opts.description = "A markout site"
	}

	tmpl, err := templates.Get(opts.template)
	if err != nil {
		return err
	}

	info("Setting up the project directory...")
	if err := os.MkdirAll(projectDir, 0755); err != nil {
		return err
	}

	info("Creating project from '%s' template...", opts.template)
	err = tmpl.Create(projectDir, templates.Config{
		ProjectName: name,
		ModulePath:  opts.module,
		Description: opts.description,
	})
	if err != nil {
		// A half-written project is worse than none.
		os.RemoveAll(projectDir)
		return err
	}

	info("Resolving dependencies...")
	if err := goModTidy(projectDir); err != nil {
		warn("go mod tidy failed: %v", err)
	}

	fmt.Println()
	success("Project created in %s/", name)
	fmt.Printf(`
  To get started:

    cd %s
    markout preview

  Your site will be running at http://localhost:3000

`, name)

	return nil
}

// promptMissing asks for any fields the flags left blank.
func (o *createOptions) promptMissing() error {
	in := bufio.NewReader(os.Stdin)

	ask := func(label string, dst *string) error {
		if *dst != "" {
			return nil
		}
		fmt.Printf("? %s: ", label)
		line, err := in.ReadString('\n')
		if err != nil {
			return err
		}
		*dst = strings.TrimSpace(line)
		return nil
	}

	if err := ask("Module path (blank uses the project name)", &o.module); err != nil {
		return err
	}
	return ask("Description", &o.description)
}

// checkProjectName rejects names that would not survive as a directory
// name or module path element.
func checkProjectName(name string) error {
	ok := name != "" && !strings.ContainsAny(name, " /\\")
	if ok && name[0] >= '0' && name[0] <= '9' {
		ok = false
	}
	if !ok {
		return errors.New("E502").
			WithDetail("Project name must be a valid directory and Go module name").
			WithSuggestion("Stick to lowercase letters, digits, and hyphens")
	}
	return nil
}

func goModTidy(dir string) error {
	tidy := exec.Command("go", "mod", "tidy")
	tidy.Dir = dir
	return tidy.Run()
}
