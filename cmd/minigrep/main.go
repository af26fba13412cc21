// Package main is the entry point for the minigrep tool.
// minigrep prints every line of a file that contains a query string,
// optionally ignoring case.
package main

import (
	"io"
	"log"
	"os"

	"github.com/f4ah6o/minigrep-go/internal/config"
	"github.com/f4ah6o/minigrep-go/internal/search"
	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
)

func main() {
	os.Exit(run(os.Args, os.LookupEnv, os.Stdout, os.Stderr, stderrColorEnabled()))
}

// stderrColorEnabled applies color's NO_COLOR and TERM rules to stderr.
// color.NoColor is derived from stdout, so it cannot be used here.
func stderrColorEnabled() bool {
	if os.Getenv("NO_COLOR") != "" || os.Getenv("TERM") == "dumb" {
		return false
	}
	fd := os.Stderr.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// run executes one search and returns the process exit code.
// Usage: minigrep <QUERY> <FILE_PATH> [c]
func run(args []string, lookupEnv func(string) (string, bool), stdout, stderr io.Writer, colorize bool) int {
	logger := log.New(stderr, "", 0)

	colorError := color.New(color.FgRed)
	if colorize {
		colorError.EnableColor()
	} else {
		colorError.DisableColor()
	}

	cfg, err := config.Build(args, lookupEnv)
	if err != nil {
		logger.Print(colorError.Sprintf("Problem parsing arguments: %v", err))
		return 1
	}

	if err := search.Run(cfg, stdout); err != nil {
		logger.Print(colorError.Sprintf("Application error: %v", err))
		return 1
	}

	return 0
}
