package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"projector/internal/cli"
	"projector/internal/report"
	"projector/internal/resolver"
)

// Set via -ldflags at build time.
var version = "dev"

// Exit codes.
const (
	exitOK          = 0
	exitFailure     = 1
	exitUsage       = 2
	exitEnvironment = 3
)

func main() {
	exitCode := run(os.Args[1:], resolver.OSEnv{}, os.Stdout, os.Stderr)
	os.Exit(exitCode)
}

// app carries the state of one invocation between cobra and run.
type app struct {
	env    resolver.Env
	stdout io.Writer
	stderr io.Writer

	opts    cli.Options
	format  string
	verbose bool

	exitCode int
}

// run orchestrates the full execution flow and returns the process exit code.
// It is separated from main() so tests can supply their own environment and writers.
func run(args []string, env resolver.Env, stdout, stderr io.Writer) int {
	a := &app{env: env, stdout: stdout, stderr: stderr}

	cmd := newRootCmd(a)
	cmd.SetArgs(args)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	if err := cmd.Execute(); err != nil {
		// Flag parsing and --format errors land here.
		fmt.Fprintln(stderr, "Error:", err)
		return exitUsage
	}
	return a.exitCode
}

// resolve runs the resolver for the captured tokens and reports the outcome.
func (a *app) resolve(args []string) error {
	format, err := report.ParseFormat(a.format)
	if err != nil {
		return err
	}

	log := newLogger(a.stderr, a.verbose)
	opts := cli.NewOptions(args, a.opts.ConfigPath, a.opts.WorkingDir)

	cfg, err := resolver.New(a.env, log).Resolve(opts)
	if err != nil {
		if rerr := report.RenderError(a.stderr, err, format); rerr != nil {
			log.Error().Err(rerr).Msg("cannot render error")
		}
		a.exitCode = exitCodeFor(err)
		return nil
	}

	if err := report.Render(a.stdout, cfg, format); err != nil {
		fmt.Fprintf(a.stderr, "Error: cannot write result: %v\n", err)
		a.exitCode = exitFailure
		return nil
	}

	a.exitCode = exitOK
	return nil
}

// exitCodeFor maps a resolution error to an exit code.
func exitCodeFor(err error) int {
	var countErr *resolver.ArgumentCountError
	var envErr *resolver.MissingEnvError
	var wdErr *resolver.WorkingDirError
	switch {
	case errors.As(err, &countErr):
		return exitUsage
	case errors.As(err, &envErr), errors.As(err, &wdErr):
		return exitEnvironment
	default:
		return exitFailure
	}
}
