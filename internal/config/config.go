// Package config builds the run configuration for minigrep from the
// process arguments and the IGNORE_CASE environment variable.
package config

import (
	"errors"
	"os"
)

const (
	// EnvIgnoreCase enables case-insensitive search when set to any value.
	EnvIgnoreCase = "IGNORE_CASE"
	// IgnoreCaseArg is the optional third positional argument that forces
	// case-insensitive search.
	IgnoreCaseArg = "c"
)

// ErrInsufficientArguments is returned when the query or the file path is missing.
var ErrInsufficientArguments = errors.New("not enough arguments")

// Config holds the settings for a single search.
type Config struct {
	Query      string
	FilePath   string
	IgnoreCase bool
}

// Build creates a Config from the full argument vector (args[0] is the
// program name). lookupEnv has the signature of os.LookupEnv; nil means
// os.LookupEnv.
//
// A third positional argument other than "c" is ignored and the
// IGNORE_CASE environment variable decides instead.
func Build(args []string, lookupEnv func(string) (string, bool)) (Config, error) {
	if len(args) < 3 {
		return Config{}, ErrInsufficientArguments
	}
	if lookupEnv == nil {
		lookupEnv = os.LookupEnv
	}

	cfg := Config{
		Query:    args[1],
		FilePath: args[2],
	}

	if len(args) > 3 && args[3] == IgnoreCaseArg {
		cfg.IgnoreCase = true
	} else {
		_, cfg.IgnoreCase = lookupEnv(EnvIgnoreCase)
	}

	return cfg, nil
}
