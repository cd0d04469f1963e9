// Package greeter formats and prints the greeting message.
package greeter

import (
	"fmt"
	"io"
	"os"
)

// MessageFormat is the greeting template. The name is substituted verbatim.
const MessageFormat = "Hello from Python, %s!"

// Format returns the greeting for name without performing any I/O.
func Format(name string) string {
	return fmt.Sprintf(MessageFormat, name)
}

// Fprint writes the greeting for name, followed by a newline, to w.
//
// Parameters:
//   - w: The destination writer.
//   - name: The name to greet. Empty names are allowed.
//
// Returns:
//   - error: The write error, if any.
func Fprint(w io.Writer, name string) error {
	_, err := fmt.Fprintln(w, Format(name))
	return err
}

// Greet prints the greeting for name to standard output.
func Greet(name string) {
	_ = Fprint(os.Stdout, name)
}
