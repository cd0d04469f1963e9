package cli

import (
	"fmt"
	"io"
	"runtime"

	"github.com/agbru/utilkit/internal/config"
	"github.com/agbru/utilkit/internal/format"
	"github.com/agbru/utilkit/internal/orchestration"
	"github.com/agbru/utilkit/internal/sysmon"
	"github.com/agbru/utilkit/internal/ui"
)

// sampleHost is replaced in tests.
var sampleHost = sysmon.Sample

// PrintExecutionConfig displays the Fibonacci target, the timeout, the
// runtime environment and the current host load.
func PrintExecutionConfig(cfg config.AppConfig, out io.Writer) {
	fmt.Fprintf(out, "--- Execution Configuration ---\n")
	fmt.Fprintf(out, "Calculating %sF(%d)%s with a timeout of %s%s%s.\n",
		ui.ColorMagenta(), cfg.N, ui.ColorReset(), ui.ColorYellow(), cfg.Timeout, ui.ColorReset())
	fmt.Fprintf(out, "Environment: %s%d%s logical processors, Go %s%s%s.\n",
		ui.ColorCyan(), runtime.NumCPU(), ui.ColorReset(), ui.ColorCyan(), runtime.Version(), ui.ColorReset())
	if host := sampleHost(); host.Available() {
		fmt.Fprintf(out, "Host load: %s%s%s of %s.\n",
			ui.ColorCyan(), host, ui.ColorReset(), format.FormatBytes(host.MemTotal))
	}
}

// PrintExecutionMode displays whether a single strategy runs or all of them
// are compared.
func PrintExecutionMode(calculators []orchestration.Selection, out io.Writer) {
	var modeDesc string
	switch {
	case len(calculators) > 1:
		modeDesc = fmt.Sprintf("Parallel comparison of %d algorithms", len(calculators))
	case len(calculators) == 1:
		modeDesc = fmt.Sprintf("Single calculation with the %s%s%s algorithm",
			ui.ColorGreen(), calculators[0].Name(), ui.ColorReset())
	default:
		modeDesc = "No algorithm selected"
	}
	fmt.Fprintf(out, "Execution mode: %s.\n", modeDesc)
	fmt.Fprintf(out, "\n--- Starting Execution ---\n")
}
