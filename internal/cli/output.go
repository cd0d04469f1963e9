// # Naming Conventions
//
// Functions in this package follow consistent naming patterns:
//
//   - Display* functions write formatted output to an [io.Writer].
//     Examples: [DisplayResult], [DisplayQuietResult], [DisplayProgress].
//
//   - Format* functions return a formatted string without performing I/O.
//     Examples: [FormatQuietResult], [FormatExecutionDuration].

package cli

import (
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/agbru/utilkit/internal/format"
	"github.com/agbru/utilkit/internal/greeter"
	"github.com/agbru/utilkit/internal/ui"
)

// DisplayGreeting writes the greeting for name.
func DisplayGreeting(out io.Writer, name string) error {
	return greeter.Fprint(out, name)
}

// FormatNumber renders an accumulator value without a trailing ".0" for whole
// numbers.
func FormatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// DisplayAccumulator writes the accumulator trace: the starting value, every
// addend and the final value. In quiet mode only the final value is printed.
//
// Parameters:
//   - out: The output writer.
//   - initial: The starting value.
//   - addends: The values added in order.
//   - final: The value after all additions.
//   - quiet: Print only the final value.
func DisplayAccumulator(out io.Writer, initial float64, addends []float64, final float64, quiet bool) {
	if quiet {
		fmt.Fprintln(out, FormatNumber(final))
		return
	}
	fmt.Fprintf(out, "Accumulator: %s%s%s", ui.ColorCyan(), FormatNumber(initial), ui.ColorReset())
	for _, a := range addends {
		fmt.Fprintf(out, " + %s%s%s", ui.ColorCyan(), FormatNumber(a), ui.ColorReset())
	}
	fmt.Fprintf(out, " = %s%s%s\n", ui.ColorGreen(), FormatNumber(final), ui.ColorReset())
}

// FormatQuietResult formats a Fibonacci result for quiet mode.
func FormatQuietResult(result int) string {
	return strconv.Itoa(result)
}

// DisplayQuietResult outputs a bare result suitable for scripting.
func DisplayQuietResult(out io.Writer, result int) {
	fmt.Fprintln(out, FormatQuietResult(result))
}

// DisplayResult writes F(n) with its duration and the strategy that produced
// it. Values of four digits or more are also shown grouped.
//
// Parameters:
//   - result: The calculated Fibonacci number.
//   - n: The index.
//   - duration: The calculation duration.
//   - algo: The display name of the strategy.
//   - out: The output writer.
func DisplayResult(result, n int, duration time.Duration, algo string, out io.Writer) {
	fmt.Fprintf(out, "\n%sResult:%s\n", ui.ColorBold(), ui.ColorReset())
	fmt.Fprintf(out, "  Algorithm: %s%s%s\n", ui.ColorCyan(), algo, ui.ColorReset())
	fmt.Fprintf(out, "  Time:      %s%s%s\n", ui.ColorGreen(), FormatExecutionDuration(duration), ui.ColorReset())
	fmt.Fprintf(out, "  F(%d) = %s%d%s", n, ui.ColorGreen(), result, ui.ColorReset())
	if grouped := format.FormatInt(result); grouped != strconv.Itoa(result) {
		fmt.Fprintf(out, " (%s)", grouped)
	}
	fmt.Fprintln(out)
}
