// Package format provides pure string formatting helpers shared by the CLI
// and the REPL: durations, grouped integers and textual progress bars.
package format
