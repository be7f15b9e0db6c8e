package commands

import (
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
)

// RuleOutput describes a registered rule.
type RuleOutput struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Category     string `json:"category"`
	Scope        string `json:"scope"`
	Downgradable bool   `json:"downgradable"`
	Enabled      bool   `json:"enabled"`
}

// RunRules runs the rules command.
func RunRules(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("rules", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	var sel RuleSelection
	sel.register(fs)
	asJSON := fs.Bool("json", false, "Output as JSON")

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			fmt.Fprintln(stdout, "Usage: layoutcheck rules [-json] [-category NAME] [-disable IDS]")
			return exitSuccess
		}
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return exitCommandError
	}

	registry, err := sel.registry()
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return exitCommandError
	}

	var out []RuleOutput
	for _, r := range registry.AllRules() {
		out = append(out, RuleOutput{
			ID:           r.ID(),
			Name:         r.Name(),
			Category:     r.Category(),
			Scope:        r.Scope().String(),
			Downgradable: r.Downgradable(),
			Enabled:      registry.IsEnabled(r.ID()),
		})
	}

	if *asJSON {
		data, _ := json.MarshalIndent(out, "", "  ")
		fmt.Fprintln(stdout, string(data))
		return exitSuccess
	}

	for _, r := range out {
		state := "enabled"
		if !r.Enabled {
			state = "disabled"
		}
		skip := ""
		if r.Downgradable {
			skip = " (skipped on autogenerated layouts)"
		}
		fmt.Fprintf(stdout, "%-11s %-9s %-8s %-8s %s%s\n", r.ID, r.Category, r.Scope, state, r.Name, skip)
	}
	return exitSuccess
}
