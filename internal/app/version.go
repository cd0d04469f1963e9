package app

import (
	"fmt"
	"io"
	"runtime"
)

// Build information, overridden at link time:
//
//	go build -ldflags "-X github.com/agbru/utilkit/internal/app.Version=v1.2.0"
var (
	Version   = "dev"
	Commit    = "none"
	BuildDate = "unknown"
)

// HasVersionFlag reports whether args contain --version, -version or -V
// before any "--" terminator.
func HasVersionFlag(args []string) bool {
	for _, arg := range args {
		switch arg {
		case "--version", "-version", "-V":
			return true
		case "--":
			return false
		}
	}
	return false
}

// PrintVersion writes the version banner to out.
func PrintVersion(out io.Writer) {
	fmt.Fprintf(out, "utilkit %s\n", Version)
	fmt.Fprintf(out, "Commit: %s\n", Commit)
	fmt.Fprintf(out, "Built: %s\n", BuildDate)
	fmt.Fprintf(out, "Go: %s %s/%s\n", runtime.Version(), runtime.GOOS, runtime.GOARCH)
}
