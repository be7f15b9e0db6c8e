package commands

import (
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"

	"github.com/flying-elephant/libwacom/internal/scenario"
	"github.com/flying-elephant/libwacom/pkg/check"
)

// ListOptions configures the list command.
type ListOptions struct {
	SourceOptions

	Scope   string
	JSON    bool
	Pattern string
}

// TargetOutput describes a validation target.
type TargetOutput struct {
	Layout        string `json:"layout"`
	Device        string `json:"device"`
	Loaded        bool   `json:"loaded"`
	Autogenerated bool   `json:"autogenerated"`
	Buttons       int    `json:"buttons"`
	Rings         int    `json:"rings"`
	Strips        int    `json:"strips"`
	Dials         int    `json:"dials"`
}

// RunList runs the list command.
func RunList(args []string, stdout, stderr io.Writer) int {
	opts, err := parseListArgs(args)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			printListUsage(stdout)
			return exitSuccess
		}
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return exitCommandError
	}

	scope, err := check.ParseScope(opts.Scope)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return exitCommandError
	}

	gen, _, err := opts.load(stderr)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return exitCommandError
	}

	targets := scenario.Filter(gen.View(scope), opts.Pattern)
	out := make([]TargetOutput, 0, len(targets))
	for _, t := range targets {
		out = append(out, TargetOutput{
			Layout:        t.ID(),
			Device:        t.Name(),
			Loaded:        t.Document != nil,
			Autogenerated: t.Autogenerated,
			Buttons:       t.Device.NumButtons,
			Rings:         t.Device.NumRings,
			Strips:        t.Device.NumStrips,
			Dials:         t.Device.NumDials,
		})
	}

	if opts.JSON {
		data, _ := json.MarshalIndent(out, "", "  ")
		fmt.Fprintln(stdout, string(data))
		return exitSuccess
	}

	fmt.Fprintf(stdout, "%-32s %-7s %-5s %-6s %-5s %-5s %s\n",
		"LAYOUT", "BUTTONS", "RINGS", "STRIPS", "DIALS", "FLAGS", "DEVICE")
	for _, o := range out {
		fmt.Fprintf(stdout, "%-32s %-7d %-5d %-6d %-5d %-5s %s\n",
			o.Layout, o.Buttons, o.Rings, o.Strips, o.Dials, targetFlags(o), o.Device)
	}
	fmt.Fprintf(stdout, "\n%d layouts\n", len(out))
	return exitSuccess
}

// targetFlags abbreviates the target state: A autogenerated, ! not loaded.
func targetFlags(o TargetOutput) string {
	flags := ""
	if o.Autogenerated {
		flags += "A"
	}
	if !o.Loaded {
		flags += "!"
	}
	if flags == "" {
		flags = "-"
	}
	return flags
}

func parseListArgs(args []string) (ListOptions, error) {
	fs := flag.NewFlagSet("list", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	opts := ListOptions{}

	opts.SourceOptions.register(fs)
	fs.StringVar(&opts.Scope, "scope", "all", "Restrict to all, buttons, rings, strips or dials")
	fs.BoolVar(&opts.JSON, "json", false, "Output as JSON")

	if err := fs.Parse(args); err != nil {
		return opts, err
	}
	p, err := pattern(fs)
	if err != nil {
		return opts, err
	}
	opts.Pattern = p
	return opts, nil
}

func printListUsage(w io.Writer) {
	fmt.Fprintln(w, `
Usage: layoutcheck list [options] [pattern]

Options:
  -root, -data, -layouts, -db   Source locations, as for validate
  -scope NAME                   all, buttons, rings, strips or dials
  -json                         Output as JSON

Flags column: A = autogenerated, ! = layout could not be loaded.`)
}
