package commands

import (
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/flying-elephant/libwacom/pkg/check"
	"github.com/flying-elephant/libwacom/pkg/log"
)

// EventsOptions configures the events command.
type EventsOptions struct {
	Filter  log.Filter
	JSON    bool
	Summary bool
	Path    string
}

// EventOutput is the JSON line representation of an event.
type EventOutput struct {
	Timestamp     string   `json:"timestamp"`
	RunID         string   `json:"run_id"`
	Category      string   `json:"category"`
	Phase         string   `json:"phase,omitempty"`
	Root          string   `json:"root,omitempty"`
	Targets       int      `json:"targets,omitempty"`
	Rules         []string `json:"rules,omitempty"`
	Passed        int      `json:"passed,omitempty"`
	Failed        int      `json:"failed,omitempty"`
	Skipped       int      `json:"skipped,omitempty"`
	Device        string   `json:"device,omitempty"`
	Layout        string   `json:"layout,omitempty"`
	Rule          string   `json:"rule,omitempty"`
	Status        string   `json:"status,omitempty"`
	Message       string   `json:"message,omitempty"`
	Autogenerated bool     `json:"autogenerated,omitempty"`
	Duration      string   `json:"duration,omitempty"`
}

// RunEvents runs the events command.
func RunEvents(args []string, stdout, stderr io.Writer) int {
	opts, err := parseEventsArgs(args)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			printEventsUsage(stdout)
			return exitSuccess
		}
		fmt.Fprintf(stderr, "Error: %v\n", err)
		printEventsUsage(stderr)
		return exitCommandError
	}

	r, err := log.NewFilteredReader(opts.Path, opts.Filter)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return exitCommandError
	}
	defer r.Close()

	counts := make(map[check.Status]int)
	runs := make(map[string]bool)
	var n int
	for {
		event, err := r.Next()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			fmt.Fprintf(stderr, "Error: reading %s: %v\n", opts.Path, err)
			return exitCommandError
		}
		n++
		runs[event.RunID] = true
		if event.Result != nil {
			counts[event.Result.Status]++
		}

		switch {
		case opts.Summary:
		case opts.JSON:
			data, _ := json.Marshal(eventToOutput(event))
			fmt.Fprintln(stdout, string(data))
		default:
			formatEvent(stdout, event)
		}
	}

	if opts.Summary {
		fmt.Fprintf(stdout, "Events:  %d\n", n)
		fmt.Fprintf(stdout, "Runs:    %d\n", len(runs))
		fmt.Fprintf(stdout, "Passed:  %d\n", counts[check.StatusPass])
		fmt.Fprintf(stdout, "Failed:  %d\n", counts[check.StatusFail])
		fmt.Fprintf(stdout, "Skipped: %d\n", counts[check.StatusSkip])
	}
	return exitSuccess
}

// formatEvent writes a one-line representation of the event.
func formatEvent(w io.Writer, event log.Event) {
	ts := event.Timestamp.UTC().Format("2006-01-02T15:04:05.000Z")
	run := shortenRunID(event.RunID)

	switch {
	case event.Run != nil && event.Run.Phase == log.RunStarted:
		fmt.Fprintf(w, "%s [run:%s] STARTED root=%s targets=%d rules=%s\n",
			ts, run, event.Run.Root, event.Run.Targets, strings.Join(event.Run.Rules, ","))
	case event.Run != nil:
		fmt.Fprintf(w, "%s [run:%s] FINISHED passed=%d failed=%d skipped=%d duration=%s\n",
			ts, run, event.Run.Passed, event.Run.Failed, event.Run.Skipped,
			event.Run.Duration.Round(time.Millisecond))
	case event.Result != nil:
		fmt.Fprintf(w, "%s [run:%s] %-4s %s/%s", ts, run, event.Result.Status, event.Layout, event.Result.RuleID)
		if event.Result.Message != "" {
			fmt.Fprintf(w, ": %s", event.Result.Message)
		}
		fmt.Fprintln(w)
	default:
		fmt.Fprintf(w, "%s [run:%s] %s\n", ts, run, event.Category)
	}
}

// shortenRunID returns the first 8 characters of the run ID.
func shortenRunID(id string) string {
	if len(id) >= 8 {
		return id[:8]
	}
	return id
}

func eventToOutput(event log.Event) EventOutput {
	out := EventOutput{
		Timestamp: event.Timestamp.UTC().Format(time.RFC3339Nano),
		RunID:     event.RunID,
		Category:  strings.ToLower(event.Category.String()),
		Device:    event.Device,
		Layout:    event.Layout,
	}
	if run := event.Run; run != nil {
		out.Phase = strings.ToLower(run.Phase.String())
		out.Root = run.Root
		out.Targets = run.Targets
		out.Rules = run.Rules
		out.Passed = run.Passed
		out.Failed = run.Failed
		out.Skipped = run.Skipped
		if run.Duration > 0 {
			out.Duration = run.Duration.String()
		}
	}
	if res := event.Result; res != nil {
		out.Rule = res.RuleID
		out.Status = strings.ToLower(res.Status.String())
		out.Message = res.Message
		out.Autogenerated = res.Autogenerated
		out.Duration = res.Duration.String()
	}
	return out
}

// ParseStatusFlag parses pass, fail or skip.
func ParseStatusFlag(s string) (check.Status, error) {
	switch strings.ToLower(s) {
	case "pass", "passed":
		return check.StatusPass, nil
	case "fail", "failed":
		return check.StatusFail, nil
	case "skip", "skipped":
		return check.StatusSkip, nil
	default:
		return 0, fmt.Errorf("invalid status %q: must be pass, fail or skip", s)
	}
}

// ParseCategoryFlag parses run or result.
func ParseCategoryFlag(s string) (log.Category, error) {
	switch strings.ToLower(s) {
	case "run":
		return log.CategoryRun, nil
	case "result":
		return log.CategoryResult, nil
	default:
		return 0, fmt.Errorf("invalid category %q: must be run or result", s)
	}
}

func parseEventsArgs(args []string) (EventsOptions, error) {
	fs := flag.NewFlagSet("events", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	opts := EventsOptions{}

	fs.StringVar(&opts.Filter.RunID, "run", "", "Filter by run ID")
	fs.StringVar(&opts.Filter.Device, "device", "", "Filter by device name")
	fs.StringVar(&opts.Filter.Layout, "layout", "", "Filter by layout file name")
	fs.StringVar(&opts.Filter.RuleID, "rule", "", "Filter by rule ID")
	status := fs.String("status", "", "Filter by status (pass, fail, skip)")
	category := fs.String("category", "", "Filter by category (run, result)")
	fs.BoolVar(&opts.JSON, "json", false, "Output JSON lines")
	fs.BoolVar(&opts.Summary, "summary", false, "Only print counts")

	if err := fs.Parse(args); err != nil {
		return opts, err
	}

	if *status != "" {
		s, err := ParseStatusFlag(*status)
		if err != nil {
			return opts, err
		}
		opts.Filter.Status = &s
	}
	if *category != "" {
		c, err := ParseCategoryFlag(*category)
		if err != nil {
			return opts, err
		}
		opts.Filter.Category = &c
	}

	if fs.NArg() != 1 {
		return opts, errors.New("log file path required")
	}
	opts.Path = fs.Arg(0)
	return opts, nil
}

func printEventsUsage(w io.Writer) {
	fmt.Fprintln(w, `
Usage: layoutcheck events [options] <file.vlog>

Options:
  -run ID          Only events of this run
  -device NAME     Only events for this device
  -layout FILE     Only events for this layout
  -rule ID         Only results of this rule
  -status STATUS   Only results with status pass, fail or skip
  -category NAME   Only run or result events
  -json            Output JSON lines
  -summary         Only print counts`)
}
