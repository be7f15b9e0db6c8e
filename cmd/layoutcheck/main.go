// layoutcheck validates tablet layout diagrams against the device database.
package main

import (
	"fmt"
	"os"

	"github.com/flying-elephant/libwacom/cmd/layoutcheck/commands"
)

const (
	exitSuccess      = 0
	exitCommandError = 1
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(exitCommandError)
	}

	cmd := os.Args[1]
	args := os.Args[2:]

	var exitCode int
	switch cmd {
	case "validate":
		exitCode = commands.RunValidate(args, os.Stdout, os.Stderr)
	case "list":
		exitCode = commands.RunList(args, os.Stdout, os.Stderr)
	case "rules":
		exitCode = commands.RunRules(args, os.Stdout, os.Stderr)
	case "events":
		exitCode = commands.RunEvents(args, os.Stdout, os.Stderr)
	case "shell":
		exitCode = commands.RunShell(args, os.Stdout, os.Stderr)
	case "help", "-h", "--help":
		printUsage()
		exitCode = exitSuccess
	case "version", "-v", "--version":
		fmt.Printf("layoutcheck version %s\n", commands.Version)
		exitCode = exitSuccess
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", cmd)
		printUsage()
		exitCode = exitCommandError
	}

	os.Exit(exitCode)
}

func printUsage() {
	fmt.Println(`layoutcheck - tablet layout diagram validation

Usage:
  layoutcheck <command> [options] [pattern]

Commands:
  validate   Check layout diagrams against the device database
  list       List devices that have a layout diagram
  rules      List validation rules
  events     Show a validation event log
  shell      Inspect layouts interactively

Options:
  -h, --help     Show this help message
  -v, --version  Show version information

The source root defaults to $MESON_SOURCE_ROOT, or the current directory.
Layouts are read from <root>/data/layouts, descriptors from <root>/data and
the device database from <root>/data/devices.yaml.

Examples:
  layoutcheck validate
  layoutcheck validate -root ~/src/libwacom 'intuos-pro-*'
  layoutcheck validate -junit -event-log results.vlog > report.xml
  layoutcheck list -scope strips
  layoutcheck events -status fail results.vlog

For command-specific help, run:
  layoutcheck <command> --help`)
}
