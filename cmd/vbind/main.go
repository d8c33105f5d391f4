package main

import (
	"fmt"
	"io"
	"os"
)

const version = "0.1.0"

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	if len(args) < 1 {
		printUsage(stderr)
		return 1
	}

	cmd := args[0]
	args = args[1:]

	switch cmd {
	case "render":
		if err := runRender(args, stdout, stderr); err != nil {
			fmt.Fprintf(stderr, "error: %v\n", err)
			return 1
		}
	case "version":
		fmt.Fprintf(stdout, "vbind version %s\n", version)
	case "help", "-h", "--help":
		printUsage(stdout)
	default:
		fmt.Fprintf(stderr, "unknown command: %s\n", cmd)
		printUsage(stderr)
		return 1
	}
	return 0
}

func printUsage(w io.Writer) {
	fmt.Fprintln(w, `vbind - reactive markup bindings

Usage:
  vbind <command> [arguments]

Commands:
  render [flags] <markup.html>   Mount markup, replay a scenario, print the result
  version                        Print version
  help                           Show this help

Options for render:
  --config file.yaml   Scenario: mount selector, data, methods and steps
  --state              Stamp an encoded v-state snapshot on the mount root
  --sensitive          Encrypt the snapshot instead of signing it
  -v                   Log lifecycle diagnostics to stderr

Environment:
  VBIND_KEY   Snapshot key; required for --state and for restoring v-state
  VBIND_EL    Default mount selector (default "#app")

Examples:
  vbind render page.html
  vbind render --config counter.yaml page.html
  VBIND_KEY=secret vbind render --state --config counter.yaml page.html`)
}
