package commands

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path"

	"github.com/flying-elephant/libwacom/internal/scenario"
	"github.com/flying-elephant/libwacom/internal/testharness/engine"
	"github.com/flying-elephant/libwacom/internal/testharness/reporter"
	"github.com/flying-elephant/libwacom/pkg/log"
)

// ValidateOptions configures the validate command.
type ValidateOptions struct {
	SourceOptions
	RuleSelection

	JSON     bool
	JUnit    bool
	EventLog string
	FailFast bool
	Pattern  string
}

// RunValidate runs the validate command.
// It exits with exitValidation if any check failed; skipped checks do not count.
func RunValidate(args []string, stdout, stderr io.Writer) int {
	opts, err := parseValidateArgs(args)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			printValidateUsage(stdout)
			return exitSuccess
		}
		fmt.Fprintf(stderr, "Error: %v\n", err)
		printValidateUsage(stderr)
		return exitCommandError
	}
	if opts.JSON && opts.JUnit {
		fmt.Fprintln(stderr, "Error: -json and -junit are mutually exclusive")
		return exitCommandError
	}

	registry, err := opts.registry()
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return exitCommandError
	}

	gen, logger, err := opts.load(stderr)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return exitCommandError
	}

	targets := scenario.Filter(gen.All(), opts.Pattern)
	if opts.Pattern != "" && len(targets) == 0 {
		fmt.Fprintf(stderr, "Error: no layouts match %q\n", opts.Pattern)
		return exitCommandError
	}

	var events log.Logger = log.NoopLogger{}
	if opts.EventLog != "" {
		fl, err := log.NewFileLogger(opts.EventLog)
		if err != nil {
			fmt.Fprintf(stderr, "Error: opening event log: %v\n", err)
			return exitCommandError
		}
		defer func() {
			if err := fl.Close(); err != nil {
				logger.Error("closing event log", "path", opts.EventLog, "error", err)
			}
		}()
		events = fl
	}
	if opts.Verbose {
		events = log.NewMultiLogger(events, log.NewSlogAdapter(logger))
	}

	e := engine.NewWithConfig(&engine.EngineConfig{
		Registry:           registry,
		Root:               gen.Config().Root,
		EventLogger:        events,
		Logger:             logger,
		StopOnFirstFailure: opts.FailFast,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	result := e.RunSuite(ctx, targets)

	var rep reporter.Reporter
	switch {
	case opts.JSON:
		rep = reporter.NewJSONReporter(stdout, true)
	case opts.JUnit:
		rep = reporter.NewJUnitReporter(stdout)
	default:
		rep = reporter.NewTextReporter(stdout, opts.Verbose)
	}
	rep.ReportSuite(result)

	if result.Failed() {
		return exitValidation
	}
	if result.Interrupted {
		return exitCommandError
	}
	return exitSuccess
}

func parseValidateArgs(args []string) (ValidateOptions, error) {
	fs := flag.NewFlagSet("validate", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	opts := ValidateOptions{}

	opts.SourceOptions.register(fs)
	opts.RuleSelection.register(fs)
	fs.BoolVar(&opts.JSON, "json", false, "Output results as JSON")
	fs.BoolVar(&opts.JUnit, "junit", false, "Output results as JUnit XML")
	fs.StringVar(&opts.EventLog, "event-log", "", "Append run events to this file")
	fs.BoolVar(&opts.FailFast, "failfast", false, "Stop after the first failure")

	if err := fs.Parse(args); err != nil {
		return opts, err
	}

	p, err := pattern(fs)
	if err != nil {
		return opts, err
	}
	if _, err := path.Match(p, ""); err != nil {
		return opts, fmt.Errorf("invalid pattern %q: %w", p, err)
	}
	opts.Pattern = p
	return opts, nil
}

func printValidateUsage(w io.Writer) {
	fmt.Fprintln(w, `
Usage: layoutcheck validate [options] [pattern]

The optional pattern is a glob matched against the layout file name or the
device name.

Options:
  -root DIR        Source root (default $MESON_SOURCE_ROOT or .)
  -data DIR        Descriptor directory (default <root>/data)
  -layouts DIR     Layout directory (default <data>/layouts)
  -db FILE         Device database (default <data>/devices.yaml)
  -disable IDS     Comma-separated rule IDs to disable
  -category NAME   Only run rules in this category
  -json            Output results as JSON
  -junit           Output results as JUnit XML
  -event-log FILE  Append run events to FILE
  -failfast        Stop after the first failure
  -v, -verbose     List passing checks and log debug output

Exit status is 0 when nothing failed, 1 on usage or load errors and 2 when
at least one check failed.

Examples:
  layoutcheck validate
  layoutcheck validate -disable BUTTON-001 'cintiq-*'
  layoutcheck validate -category controls -junit > report.xml`)
}
