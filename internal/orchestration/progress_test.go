package orchestration

import (
	"errors"
	"testing"
)

func TestProgressTracker(t *testing.T) {
	t.Parallel()

	if NewProgressTracker(0) != nil {
		t.Error("zero calculators should give a nil tracker")
	}

	p := NewProgressTracker(3)
	p.Update(ProgressUpdate{CalculatorIndex: 0, Name: "Iterative"})
	p.Update(ProgressUpdate{CalculatorIndex: 9, Name: "ignored"})
	if got := p.Summary(); got != "1/3 done (last: Iterative)" {
		t.Errorf("Summary() = %q", got)
	}

	p.Update(ProgressUpdate{CalculatorIndex: 1, Name: "Memo", Err: errors.New("x")})
	p.Update(ProgressUpdate{CalculatorIndex: 2, Name: "Naive"})
	if !p.Done() || p.Fraction() != 1 {
		t.Errorf("tracker should be complete, fraction %v", p.Fraction())
	}
	if got := p.Summary(); got != "3/3 done, 1 failed (last: Naive)" {
		t.Errorf("Summary() = %q", got)
	}

	p.Update(ProgressUpdate{CalculatorIndex: 0, Name: "extra"})
	if p.Fraction() != 1 {
		t.Error("updates past completion should be ignored")
	}
}
