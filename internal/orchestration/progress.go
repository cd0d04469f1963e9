package orchestration

import (
	"fmt"
	"time"
)

// ProgressUpdate is sent once per calculator when it finishes.
type ProgressUpdate struct {
	// CalculatorIndex is the position of the calculator in the run.
	CalculatorIndex int
	// Name is the calculator's display name.
	Name string
	// Duration is how long the calculator ran.
	Duration time.Duration
	// Err is the calculator's error, if any.
	Err error
}

// ProgressTracker counts finished calculators for display.
type ProgressTracker struct {
	total    int
	done     int
	failed   int
	lastName string
}

// NewProgressTracker returns a tracker for total calculators. It returns nil
// if total <= 0.
func NewProgressTracker(total int) *ProgressTracker {
	if total <= 0 {
		return nil
	}
	return &ProgressTracker{total: total}
}

// Update records a finished calculator. Out-of-range indexes are ignored.
func (p *ProgressTracker) Update(u ProgressUpdate) {
	if u.CalculatorIndex < 0 || u.CalculatorIndex >= p.total || p.done >= p.total {
		return
	}
	p.done++
	if u.Err != nil {
		p.failed++
	}
	p.lastName = u.Name
}

// Fraction returns the finished share in [0, 1].
func (p *ProgressTracker) Fraction() float64 {
	return float64(p.done) / float64(p.total)
}

// Done reports whether every calculator has finished.
func (p *ProgressTracker) Done() bool {
	return p.done == p.total
}

// Summary returns a one-line description such as "2/3 done (last: Iterative)".
func (p *ProgressTracker) Summary() string {
	s := fmt.Sprintf("%d/%d done", p.done, p.total)
	if p.failed > 0 {
		s += fmt.Sprintf(", %d failed", p.failed)
	}
	if p.lastName != "" {
		s += fmt.Sprintf(" (last: %s)", p.lastName)
	}
	return s
}
