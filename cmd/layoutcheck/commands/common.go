// Package commands implements the layoutcheck CLI commands.
package commands

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/flying-elephant/libwacom/internal/scenario"
	"github.com/flying-elephant/libwacom/pkg/check"
	"github.com/flying-elephant/libwacom/pkg/check/rules"
)

// Version is the layoutcheck release.
const Version = "0.1.0"

const (
	exitSuccess      = 0
	exitCommandError = 1
	exitValidation   = 2
)

// SourceOptions locates the device database and layout files.
type SourceOptions struct {
	Root       string
	DataDir    string
	LayoutsDir string
	Catalog    string
	Verbose    bool
}

func (o *SourceOptions) register(fs *flag.FlagSet) {
	fs.StringVar(&o.Root, "root", "", "Source root (default $"+scenario.RootEnv+" or .)")
	fs.StringVar(&o.DataDir, "data", "", "Descriptor directory (default <root>/data)")
	fs.StringVar(&o.LayoutsDir, "layouts", "", "Layout directory (default <data>/layouts)")
	fs.StringVar(&o.Catalog, "db", "", "Device database (default <data>/devices.yaml)")
	fs.BoolVar(&o.Verbose, "verbose", false, "Verbose output and debug logging")
	fs.BoolVar(&o.Verbose, "v", false, "Verbose output (shorthand)")
}

// config merges the flags over the environment defaults.
func (o *SourceOptions) config(logger *slog.Logger) scenario.Config {
	cfg := scenario.ConfigFromEnv()
	if o.Root != "" {
		cfg = scenario.Config{Root: o.Root}
	}
	if o.DataDir != "" {
		cfg.DataDir = o.DataDir
		cfg.LayoutsDir = ""
		cfg.CatalogFile = ""
	}
	if o.LayoutsDir != "" {
		cfg.LayoutsDir = o.LayoutsDir
	}
	if o.Catalog != "" {
		cfg.CatalogFile = o.Catalog
	}
	cfg.Logger = logger
	return cfg.WithDefaults()
}

// load builds the generator for the configured sources.
func (o *SourceOptions) load(stderr io.Writer) (*scenario.Generator, *slog.Logger, error) {
	logger := newLogger(stderr, o.Verbose)
	gen, err := scenario.Load(o.config(logger))
	if err != nil {
		return nil, logger, err
	}
	return gen, logger, nil
}

// newLogger returns a text logger on w; verbose enables debug records.
func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// RuleSelection restricts the default rule set.
type RuleSelection struct {
	Disable  string
	Category string
}

func (s *RuleSelection) register(fs *flag.FlagSet) {
	fs.StringVar(&s.Disable, "disable", "", "Comma-separated rule IDs to disable")
	fs.StringVar(&s.Category, "category", "", "Only run rules in this category")
}

// registry returns the default registry with the selection applied.
func (s *RuleSelection) registry() (*check.RuleRegistry, error) {
	registry := rules.NewDefaultRegistry()

	if s.Category != "" {
		if len(registry.RulesByCategory(s.Category)) == 0 {
			return nil, fmt.Errorf("unknown rule category %q (have %s)",
				s.Category, strings.Join(registry.Categories(), ", "))
		}
		registry.DisableAll()
		registry.EnableCategory(s.Category)
	}

	for _, id := range splitList(s.Disable) {
		if registry.GetRule(id) == nil {
			return nil, fmt.Errorf("unknown rule %q", id)
		}
		registry.Disable(id)
	}
	return registry, nil
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

// pattern returns the optional single positional argument.
func pattern(fs *flag.FlagSet) (string, error) {
	switch fs.NArg() {
	case 0:
		return "", nil
	case 1:
		return fs.Arg(0), nil
	default:
		return "", fmt.Errorf("expected at most one pattern, got %d", fs.NArg())
	}
}
