package format

import (
	"fmt"
	"time"
)

// FormatExecutionDuration formats a calculation time at the coarsest unit that
// keeps it readable: nanoseconds below 1µs, whole microseconds below 1ms,
// whole milliseconds below 1s, and time.Duration's own form above that.
func FormatExecutionDuration(d time.Duration) string {
	switch {
	case d < time.Microsecond:
		return fmt.Sprintf("%dns", d.Nanoseconds())
	case d < time.Millisecond:
		return fmt.Sprintf("%dµs", d.Microseconds())
	case d < time.Second:
		return fmt.Sprintf("%dms", d.Milliseconds())
	}
	return d.String()
}
