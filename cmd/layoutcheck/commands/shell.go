package commands

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"path"
	"strings"

	"github.com/chzyer/readline"

	"github.com/flying-elephant/libwacom/internal/scenario"
	"github.com/flying-elephant/libwacom/internal/testharness/engine"
	"github.com/flying-elephant/libwacom/internal/testharness/reporter"
	"github.com/flying-elephant/libwacom/pkg/check"
	"github.com/flying-elephant/libwacom/pkg/device"
)

// RunShell runs the interactive shell command.
func RunShell(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("shell", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	var src SourceOptions
	src.register(fs)

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			fmt.Fprintln(stdout, "Usage: layoutcheck shell [-root DIR] [-data DIR] [-layouts DIR] [-db FILE]")
			return exitSuccess
		}
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return exitCommandError
	}

	gen, logger, err := src.load(stderr)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return exitCommandError
	}

	sh := NewShell(gen, logger)
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := sh.Run(ctx); err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return exitCommandError
	}
	return exitSuccess
}

// Shell inspects layouts and runs rules interactively.
// The rule registry persists between commands so rules can be toggled.
type Shell struct {
	gen      *scenario.Generator
	registry *check.RuleRegistry
	logger   *slog.Logger
	rl       *readline.Instance
	out      io.Writer
}

// NewShell creates a shell over gen with the default rules enabled.
func NewShell(gen *scenario.Generator, logger *slog.Logger) *Shell {
	sel := RuleSelection{}
	registry, _ := sel.registry()
	return &Shell{
		gen:      gen,
		registry: registry,
		logger:   logger,
		out:      io.Discard,
	}
}

// SetOutput directs command output to w.
func (s *Shell) SetOutput(w io.Writer) {
	s.out = w
}

// Registry returns the shell's rule registry.
func (s *Shell) Registry() *check.RuleRegistry {
	return s.registry
}

// Run starts the interactive command loop. It returns when the user quits,
// input ends, or ctx is cancelled.
func (s *Shell) Run(ctx context.Context) error {
	rl, err := readline.NewEx(&readline.Config{
		Prompt:          "layout> ",
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
		AutoComplete:    s.completer(),
	})
	if err != nil {
		return fmt.Errorf("failed to create readline: %w", err)
	}
	s.rl = rl
	defer rl.Close()

	s.out = rl.Stdout()
	s.printHelp()

	for {
		select {
		case <-ctx.Done():
			return nil
		default:
		}

		line, err := rl.Readline()
		if err != nil {
			if errors.Is(err, readline.ErrInterrupt) {
				continue
			}
			// EOF
			return nil
		}

		if !s.Execute(ctx, line) {
			return nil
		}
	}
}

// Execute runs a single command line. It returns false when the shell
// should exit.
func (s *Shell) Execute(ctx context.Context, line string) bool {
	input := strings.TrimSpace(line)
	if input == "" {
		return true
	}

	parts := strings.Fields(input)
	cmd := strings.ToLower(parts[0])
	args := parts[1:]

	switch cmd {
	case "help", "?":
		s.printHelp()
	case "list", "ls":
		s.cmdList(args)
	case "show", "s":
		s.cmdShow(args)
	case "ids":
		s.cmdIDs(args)
	case "check", "c":
		s.cmdCheck(args)
	case "run", "r":
		s.cmdRun(ctx, args)
	case "rules":
		s.cmdRules()
	case "enable":
		s.cmdToggle(args, true)
	case "disable":
		s.cmdToggle(args, false)
	case "quit", "exit", "q":
		fmt.Fprintln(s.out, "Exiting...")
		return false
	default:
		fmt.Fprintf(s.out, "Unknown command: %s (type 'help' for commands)\n", cmd)
	}
	return true
}

func (s *Shell) printHelp() {
	fmt.Fprintln(s.out, `Commands:
  list [pattern]            List layouts, optionally matching a glob
  show <layout|device>      Show device attributes and required elements
  ids <layout|device>       List element ids present in the layout
  check <layout|device> [rule]
                            Run enabled rules (or one rule) against a layout
  run [pattern]             Validate all matching layouts
  rules                     List rules and their state
  enable <rule|category>    Enable a rule or category
  disable <rule|category>   Disable a rule or category
  quit                      Exit the shell`)
}

func (s *Shell) target(args []string) *check.Target {
	if len(args) == 0 {
		fmt.Fprintln(s.out, "Usage: <command> <layout|device>")
		return nil
	}
	key := strings.Join(args, " ")
	t := s.gen.Find(key)
	if t == nil {
		fmt.Fprintf(s.out, "No layout or device named %q\n", key)
	}
	return t
}

func (s *Shell) cmdList(args []string) {
	p := ""
	if len(args) > 0 {
		p = args[0]
	}
	targets := scenario.Filter(s.gen.All(), p)
	for _, t := range targets {
		mark := " "
		if t.Autogenerated {
			mark = "A"
		}
		fmt.Fprintf(s.out, "%s %-32s %s\n", mark, t.ID(), t.Name())
	}
	fmt.Fprintf(s.out, "%d layouts\n", len(targets))
}

func (s *Shell) cmdShow(args []string) {
	t := s.target(args)
	if t == nil {
		return
	}
	d := t.Device
	fmt.Fprintf(s.out, "Device:        %s\n", d.Name)
	fmt.Fprintf(s.out, "Layout:        %s\n", d.LayoutFilename)
	fmt.Fprintf(s.out, "Loaded:        %t\n", t.Document != nil)
	fmt.Fprintf(s.out, "Autogenerated: %t\n", t.Autogenerated)
	fmt.Fprintf(s.out, "Controls:      %d buttons, %d rings, %d strips, %d dials\n",
		d.NumButtons, d.NumRings, d.NumStrips, d.NumDials)

	for _, c := range []device.ControlType{device.ControlButton, device.ControlRing, device.ControlStrip, device.ControlDial} {
		reqs := check.DeviceRequirements(d, c)
		if len(reqs) == 0 {
			continue
		}
		fmt.Fprintf(s.out, "\n%s elements:\n", c)
		for _, req := range reqs {
			status := "ok"
			if err := t.HasItem(req.ID, req.Classes...); err != nil {
				status = err.Error()
			}
			fmt.Fprintf(s.out, "  %-20s [%s] %s\n", req.ID, strings.Join(req.Classes, " "), status)
		}
	}
}

func (s *Shell) cmdIDs(args []string) {
	t := s.target(args)
	if t == nil {
		return
	}
	if t.Document == nil {
		fmt.Fprintf(s.out, "%s: %v\n", t.ID(), check.ErrMissingLayout)
		return
	}
	ids := t.Document.IDs()
	for _, id := range ids {
		fmt.Fprintln(s.out, id)
	}
	fmt.Fprintf(s.out, "%d ids\n", len(ids))
}

func (s *Shell) cmdCheck(args []string) {
	if len(args) == 0 {
		fmt.Fprintln(s.out, "Usage: check <layout|device> [rule]")
		return
	}

	// A trailing argument naming a rule selects it; device names may contain spaces.
	var only check.Rule
	if len(args) > 1 {
		if r := s.registry.GetRule(args[len(args)-1]); r != nil {
			only = r
			args = args[:len(args)-1]
		}
	}

	t := s.target(args)
	if t == nil {
		return
	}

	e := engine.NewWithConfig(&engine.EngineConfig{Registry: s.registry, Logger: s.logger})
	var results []*engine.TestResult
	if only != nil {
		results = append(results, e.Run(only, t))
	} else {
		results = e.RunTarget(t)
	}

	rep := reporter.NewTextReporter(s.out, true)
	for _, r := range results {
		rep.ReportTest(r)
	}
}

func (s *Shell) cmdRun(ctx context.Context, args []string) {
	p := ""
	if len(args) > 0 {
		p = args[0]
		if _, err := path.Match(p, ""); err != nil {
			fmt.Fprintf(s.out, "Invalid pattern %q: %v\n", p, err)
			return
		}
	}

	e := engine.NewWithConfig(&engine.EngineConfig{
		Registry: s.registry,
		Root:     s.gen.Config().Root,
		Logger:   s.logger,
	})
	result := e.RunSuite(ctx, scenario.Filter(s.gen.All(), p))
	reporter.NewTextReporter(s.out, false).ReportSuite(result)
}

func (s *Shell) cmdRules() {
	for _, r := range s.registry.AllRules() {
		state := "on "
		if !s.registry.IsEnabled(r.ID()) {
			state = "off"
		}
		fmt.Fprintf(s.out, "[%s] %-11s %-9s %s\n", state, r.ID(), r.Category(), r.Name())
	}
}

func (s *Shell) cmdToggle(args []string, enable bool) {
	if len(args) != 1 {
		fmt.Fprintln(s.out, "Usage: enable|disable <rule|category>")
		return
	}
	name := args[0]

	switch {
	case s.registry.GetRule(name) != nil:
		if enable {
			s.registry.Enable(name)
		} else {
			s.registry.Disable(name)
		}
	case len(s.registry.RulesByCategory(name)) > 0:
		if enable {
			s.registry.EnableCategory(name)
		} else {
			s.registry.DisableCategory(name)
		}
	default:
		fmt.Fprintf(s.out, "Unknown rule or category: %s\n", name)
		return
	}
	fmt.Fprintf(s.out, "%d of %d rules enabled\n", s.registry.EnabledCount(), s.registry.Count())
}

func (s *Shell) completer() *readline.PrefixCompleter {
	layouts := func(string) []string {
		return scenario.IDs(s.gen.All())
	}
	rules := func(string) []string {
		var out []string
		for _, r := range s.registry.AllRules() {
			out = append(out, r.ID())
		}
		out = append(out, s.registry.Categories()...)
		return out
	}

	return readline.NewPrefixCompleter(
		readline.PcItem("help"),
		readline.PcItem("list"),
		readline.PcItem("show", readline.PcItemDynamic(layouts)),
		readline.PcItem("ids", readline.PcItemDynamic(layouts)),
		readline.PcItem("check", readline.PcItemDynamic(layouts)),
		readline.PcItem("run"),
		readline.PcItem("rules"),
		readline.PcItem("enable", readline.PcItemDynamic(rules)),
		readline.PcItem("disable", readline.PcItemDynamic(rules)),
		readline.PcItem("quit"),
	)
}
