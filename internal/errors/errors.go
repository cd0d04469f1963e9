package apperrors

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"
)

// Process exit codes returned by utilkit.
const (
	ExitSuccess       = 0
	ExitErrorGeneric  = 1
	ExitErrorTimeout  = 2   // the fibonacci section hit --timeout
	ExitErrorMismatch = 3   // strategies disagreed on F(n)
	ExitErrorConfig   = 4   // bad flag, env value or shell name
	ExitErrorCanceled = 130 // SIGINT or SIGTERM
)

// ConfigError reports unusable user input such as an unknown algorithm key.
type ConfigError struct {
	Message string
}

func (e ConfigError) Error() string { return e.Message }

// NewConfigError returns a ConfigError with a fmt.Sprintf message.
func NewConfigError(format string, a ...any) error {
	return ConfigError{Message: fmt.Sprintf(format, a...)}
}

// CalculationError marks an error raised by a Fibonacci strategy. It unwraps
// to Cause.
type CalculationError struct {
	Cause error
}

func (e CalculationError) Error() string { return e.Cause.Error() }

func (e CalculationError) Unwrap() error { return e.Cause }

// TimeoutError reports that Operation did not finish within Limit.
type TimeoutError struct {
	Operation string
	Limit     time.Duration
}

func (e TimeoutError) Error() string {
	return fmt.Sprintf("operation %q timed out after %s", e.Operation, e.Limit)
}

// ValidationError reports an out-of-range or malformed value for Field.
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("validation error for %q: %s", e.Field, e.Message)
}

// WrapError prefixes err with a formatted message, keeping it in the chain.
// A nil err stays nil.
func WrapError(err error, format string, args ...any) error {
	if err == nil {
		return nil
	}
	message := fmt.Sprintf(format, args...)
	return fmt.Errorf("%s: %w", message, err)
}

// IsContextError reports whether err stems from context cancellation or a deadline.
func IsContextError(err error) bool {
	return errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}

// ColorProvider supplies the ANSI sequences used by HandleCalculationError.
// A nil ColorProvider prints without colors.
type ColorProvider interface {
	Yellow() string
	Red() string
	Reset() string
}

// HandleCalculationError reports err on out and returns the matching exit
// code. A nil err yields ExitSuccess and prints nothing.
//
// Parameters:
//   - err: The error returned by the calculation.
//   - duration: How long the calculation ran before failing (0 if unknown).
//   - out: The writer for the diagnostic line.
//   - colors: Optional color provider.
//
// Returns:
//   - int: One of the Exit* codes.
func HandleCalculationError(err error, duration time.Duration, out io.Writer, colors ColorProvider) int {
	if err == nil {
		return ExitSuccess
	}

	yellow, red, reset := "", "", ""
	if colors != nil {
		yellow, red, reset = colors.Yellow(), colors.Red(), colors.Reset()
	}

	msSuffix := ""
	if duration > 0 {
		msSuffix = fmt.Sprintf(" after %s", duration)
	}

	var timeoutErr TimeoutError
	switch {
	case errors.Is(err, context.DeadlineExceeded), errors.As(err, &timeoutErr):
		fmt.Fprintf(out, "%sCalculation timed out%s.%s\n", yellow, msSuffix, reset)
		return ExitErrorTimeout
	case errors.Is(err, context.Canceled):
		fmt.Fprintf(out, "%sCalculation canceled%s.%s\n", yellow, msSuffix, reset)
		return ExitErrorCanceled
	}

	var cfgErr ConfigError
	var valErr ValidationError
	if errors.As(err, &cfgErr) || errors.As(err, &valErr) {
		fmt.Fprintf(out, "%sConfiguration error: %v%s\n", red, err, reset)
		return ExitErrorConfig
	}

	fmt.Fprintf(out, "%sError during calculation: %v%s\n", red, err, reset)
	return ExitErrorGeneric
}
