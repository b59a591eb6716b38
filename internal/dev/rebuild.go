package dev

import (
	"bytes"
	"context"
	stderrors "errors"
	"os"
	"os/exec"
	"time"

	"github.com/markout-dev/markout/internal/errors"
)

// RebuilderConfig configures how the site program is run.
type RebuilderConfig struct {
	// Dir is the project root directory.
	Dir string

	// Command is the build command. Defaults to "go run . build",
	// the contract the scaffolded site programs follow.
	Command []string

	// Env are additional environment variables.
	Env []string
}

// RebuildResult contains the outcome of one build run.
type RebuildResult struct {
	// Success indicates whether the build succeeded.
	Success bool

	// Duration is how long the build took.
	Duration time.Duration

	// Output is the combined program output.
	Output string

	// Err is the build error, if any.
	Err error
}

// Rebuilder runs the project's site program to regenerate the output
// directory. The program is a plain Go main, so each run compiles and
// executes it through the Go toolchain.
type Rebuilder struct {
	config RebuilderConfig
}

// NewRebuilder creates a rebuilder for the given project directory.
func NewRebuilder(config RebuilderConfig) *Rebuilder {
	if len(config.Command) == 0 {
		config.Command = []string{"go", "run", ".", "build"}
	}
	return &Rebuilder{config: config}
}

// Command returns the build command line.
func (r *Rebuilder) Command() []string {
	return r.config.Command
}

// Run executes the build command and captures its output.
func (r *Rebuilder) Run(ctx context.Context) RebuildResult {
	start := time.Now()

	name := r.config.Command[0]
	cmd := exec.CommandContext(ctx, name, r.config.Command[1:]...)
	cmd.Dir = r.config.Dir
	cmd.Env = append(os.Environ(), r.config.Env...)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	duration := time.Since(start)

	output := stderr.String()
	if output == "" {
		output = stdout.String()
	}

	if err != nil {
		merr := errors.New("E301").WithDetail(output).Wrap(err)
		if stderrors.Is(err, exec.ErrNotFound) {
			merr = errors.New("E306").
				WithSuggestion("Install Go from https://go.dev/dl/ and make sure it is in PATH").
				Wrap(err)
		}
		return RebuildResult{
			Success:  false,
			Duration: duration,
			Output:   output,
			Err:      merr,
		}
	}

	return RebuildResult{
		Success:  true,
		Duration: duration,
		Output:   output,
	}
}
