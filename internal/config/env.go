// This file contains environment variable utilities for configuration override.

package config

import (
	"flag"
	"os"
	"strconv"
	"strings"
	"time"
)

// ─────────────────────────────────────────────────────────────────────────────
// Environment Variable Utilities
// ─────────────────────────────────────────────────────────────────────────────

// isFlagSet checks if a flag was explicitly set on the command line.
// This is used to determine whether to apply environment variable overrides.
func isFlagSet(fs *flag.FlagSet, name string) bool {
	found := false
	fs.Visit(func(f *flag.Flag) {
		if f.Name == name {
			found = true
		}
	})
	return found
}

// isFlagSetAny checks if any of the specified flags were explicitly set.
func isFlagSetAny(fs *flag.FlagSet, names ...string) bool {
	for _, name := range names {
		if isFlagSet(fs, name) {
			return true
		}
	}
	return false
}

// envOverride declares a single environment variable override.
// Each entry maps an env key (without the UTILKIT_ prefix) to the CLI flag
// name(s) it corresponds to and a function that applies the env value.
type envOverride struct {
	envKey string
	flags  []string
	apply  func(*AppConfig, string)
}

// envOverrides is the declarative table of all environment variable overrides.
// Setting a section input through the environment also selects that section.
var envOverrides = []envOverride{
	{"GREET", []string{"greet"}, func(c *AppConfig, v string) {
		c.Greet = v
		c.RunGreet = true
	}},
	{"INITIAL", []string{"initial"}, func(c *AppConfig, v string) {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil {
			c.Initial = parsed
			c.RunAccumulate = true
		}
	}},
	{"ADD", []string{"add"}, func(c *AppConfig, v string) {
		c.AddList = v
		c.RunAccumulate = true
	}},
	{"N", []string{"n"}, func(c *AppConfig, v string) {
		if parsed, err := strconv.Atoi(v); err == nil {
			c.N = parsed
			c.RunFibonacci = true
		}
	}},
	{"ALGO", []string{"algo"}, func(c *AppConfig, v string) {
		c.Algo = v
		c.RunFibonacci = true
	}},

	{"TIMEOUT", []string{"timeout"}, func(c *AppConfig, v string) {
		if parsed, err := time.ParseDuration(v); err == nil {
			c.Timeout = parsed
		}
	}},

	{"INTERACTIVE", []string{"interactive", "i"}, func(c *AppConfig, v string) {
		c.Interactive = parseBoolEnv(v, c.Interactive)
	}},
	{"QUIET", []string{"quiet", "q"}, func(c *AppConfig, v string) {
		c.Quiet = parseBoolEnv(v, c.Quiet)
	}},
	{"VERBOSE", []string{"verbose", "v"}, func(c *AppConfig, v string) {
		c.Verbose = parseBoolEnv(v, c.Verbose)
	}},
	{"METRICS", []string{"metrics"}, func(c *AppConfig, v string) {
		c.Metrics = parseBoolEnv(v, c.Metrics)
	}},
}

// parseBoolEnv parses a boolean environment variable value.
// Accepts "true", "1", "yes" as true; "false", "0", "no" as false (case-insensitive).
// Returns defaultVal if the value is not recognized.
func parseBoolEnv(val string, defaultVal bool) bool {
	switch strings.ToLower(val) {
	case "true", "1", "yes":
		return true
	case "false", "0", "no":
		return false
	}
	return defaultVal
}

// applyEnvOverrides applies environment variable values to the configuration
// for any flags that were not explicitly set on the command line.
// This implements the priority: CLI flags > Environment variables > Defaults.
//
// Supported environment variables (all prefixed with UTILKIT_):
//   - GREET, INITIAL, ADD, N, ALGO, TIMEOUT,
//     INTERACTIVE, QUIET, VERBOSE, METRICS
//
// NO_COLOR is read without prefix by the ui package.
func applyEnvOverrides(config *AppConfig, fs *flag.FlagSet) {
	for _, o := range envOverrides {
		if isFlagSetAny(fs, o.flags...) {
			continue
		}
		if val, ok := os.LookupEnv(EnvPrefix + o.envKey); ok && (val != "" || o.envKey == "GREET") {
			o.apply(config, val)
		}
	}
}
