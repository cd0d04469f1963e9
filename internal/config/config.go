// Package config handles command-line and environment configuration for the
// utilkit binary.
package config

import (
	"flag"
	"fmt"
	"io"
	"slices"
	"strconv"
	"strings"
	"time"

	apperrors "github.com/agbru/utilkit/internal/errors"
	"github.com/agbru/utilkit/internal/fibonacci"
)

const (
	// EnvPrefix is prepended to every environment variable key.
	EnvPrefix = "UTILKIT_"

	// AlgoAll selects every registered Fibonacci strategy.
	AlgoAll = "all"

	// DefaultN is the Fibonacci index used when -n is not given.
	DefaultN = 10
	// DefaultAlgo is the strategy used when --algo is not given.
	DefaultAlgo = fibonacci.AlgoNaive
	// DefaultTimeout bounds each calculation run.
	DefaultTimeout = time.Minute

	// DemoName, DemoInitial and DemoAddend drive the default run when no
	// section is selected explicitly.
	DemoName    = "World"
	DemoInitial = 10
	DemoAddend  = 5
)

// AppConfig holds the resolved application configuration.
type AppConfig struct {
	// Greet is the name passed to the greeter. It may be empty.
	Greet string
	// Initial is the accumulator's starting value.
	Initial float64
	// AddList is the raw comma-separated list of addends.
	AddList string
	// Addends is AddList parsed by Validate.
	Addends []float64
	// N is the Fibonacci index.
	N int
	// Algo is a strategy key or AlgoAll.
	Algo string
	// Timeout bounds a single calculation run.
	Timeout time.Duration

	// RunGreet, RunAccumulate and RunFibonacci select which sections run.
	// When none is selected the demo runs all three.
	RunGreet      bool
	RunAccumulate bool
	RunFibonacci  bool

	// Completion names a shell to print a completion script for.
	Completion string

	Interactive bool
	Quiet       bool
	Verbose     bool
	Metrics     bool
	NoColor     bool
}

// IsDemo reports whether no section was requested explicitly.
func (c AppConfig) IsDemo() bool {
	return !c.RunGreet && !c.RunAccumulate && !c.RunFibonacci && !c.Interactive
}

// WithDemoDefaults returns a copy of c with every section enabled and the
// demo inputs filled in. It is a no-op unless IsDemo is true.
func (c AppConfig) WithDemoDefaults() AppConfig {
	if !c.IsDemo() {
		return c
	}
	c.RunGreet, c.RunAccumulate, c.RunFibonacci = true, true, true
	c.Greet = DemoName
	c.Initial = DemoInitial
	c.Addends = []float64{DemoAddend}
	return c
}

// ParseConfig parses args into an AppConfig, applies UTILKIT_* environment
// overrides for flags that were not set, and validates the result.
//
// Parameters:
//   - programName: The name shown in usage output.
//   - args: The command-line arguments without the program name.
//   - errorWriter: Destination for usage and parse errors.
//   - availableAlgos: The registered strategy keys.
//
// Returns:
//   - AppConfig: The resolved configuration.
//   - error: flag.ErrHelp for -h, a parse error, or a validation error.
func ParseConfig(programName string, args []string, errorWriter io.Writer, availableAlgos []string) (AppConfig, error) {
	fs := flag.NewFlagSet(programName, flag.ContinueOnError)
	fs.SetOutput(errorWriter)

	cfg := AppConfig{}
	fs.StringVar(&cfg.Greet, "greet", "", "Print the greeting for `name`.")
	fs.Float64Var(&cfg.Initial, "initial", 0, "Initial accumulator value.")
	fs.StringVar(&cfg.AddList, "add", "", "Comma-separated `values` to add to the accumulator.")
	fs.IntVar(&cfg.N, "n", DefaultN, "Index of the Fibonacci number to compute (0-"+strconv.Itoa(fibonacci.MaxSafeN)+").")
	fs.StringVar(&cfg.Algo, "algo", DefaultAlgo, "Fibonacci strategy: "+strings.Join(availableAlgos, ", ")+", or all.")
	fs.DurationVar(&cfg.Timeout, "timeout", DefaultTimeout, "Maximum duration of a calculation.")
	fs.BoolVar(&cfg.Interactive, "interactive", false, "Start the interactive session.")
	fs.BoolVar(&cfg.Interactive, "i", false, "Shorthand for --interactive.")
	fs.BoolVar(&cfg.Quiet, "quiet", false, "Print bare results only.")
	fs.BoolVar(&cfg.Quiet, "q", false, "Shorthand for --quiet.")
	fs.BoolVar(&cfg.Verbose, "verbose", false, "Enable debug logging.")
	fs.BoolVar(&cfg.Verbose, "v", false, "Shorthand for --verbose.")
	fs.BoolVar(&cfg.Metrics, "metrics", false, "Print Prometheus metrics on exit.")
	fs.BoolVar(&cfg.NoColor, "no-color", false, "Disable colored output.")
	fs.StringVar(&cfg.Completion, "completion", "", "Print a completion script for `shell` (bash, zsh, fish).")

	fs.Usage = func() {
		fmt.Fprintf(errorWriter, "Usage: %s [flags]\n\n", programName)
		fmt.Fprintf(errorWriter, "Without section flags, greets %q, accumulates %d+%d and computes F(%d).\n\n",
			DemoName, DemoInitial, DemoAddend, DefaultN)
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		return AppConfig{}, err
	}
	if fs.NArg() > 0 {
		err := apperrors.NewConfigError("unexpected argument %q", fs.Arg(0))
		fmt.Fprintln(errorWriter, err)
		return AppConfig{}, err
	}

	cfg.RunGreet = isFlagSet(fs, "greet")
	cfg.RunAccumulate = isFlagSetAny(fs, "add", "initial")
	cfg.RunFibonacci = isFlagSetAny(fs, "n", "algo")

	applyEnvOverrides(&cfg, fs)

	if err := cfg.Validate(availableAlgos); err != nil {
		fmt.Fprintln(errorWriter, err)
		return AppConfig{}, err
	}
	return cfg, nil
}

// Validate checks ranges and parses AddList into Addends.
func (c *AppConfig) Validate(availableAlgos []string) error {
	if c.N < 0 || c.N > fibonacci.MaxSafeN {
		return apperrors.ValidationError{
			Field:   "n",
			Message: fmt.Sprintf("must be between 0 and %d, got %d", fibonacci.MaxSafeN, c.N),
		}
	}
	if c.Timeout <= 0 {
		return apperrors.ValidationError{Field: "timeout", Message: "must be positive"}
	}
	if c.Algo != AlgoAll && !slices.Contains(availableAlgos, c.Algo) {
		return apperrors.NewConfigError("unknown algorithm %q (available: %s, all)", c.Algo, strings.Join(availableAlgos, ", "))
	}

	addends, err := ParseAddends(c.AddList)
	if err != nil {
		return err
	}
	c.Addends = addends
	return nil
}

// ParseAddends parses a comma-separated list of numbers. Blank entries are
// skipped; an empty list yields nil.
func ParseAddends(list string) ([]float64, error) {
	if strings.TrimSpace(list) == "" {
		return nil, nil
	}
	parts := strings.Split(list, ",")
	addends := make([]float64, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		v, err := strconv.ParseFloat(p, 64)
		if err != nil {
			return nil, apperrors.ValidationError{Field: "add", Message: fmt.Sprintf("%q is not a number", p)}
		}
		addends = append(addends, v)
	}
	return addends, nil
}
