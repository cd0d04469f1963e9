package accumulator

import (
	"math"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

func TestAccumulator(t *testing.T) {
	t.Parallel()

	t.Run("New then Add", func(t *testing.T) {
		t.Parallel()
		if got := New(5).Add(3).Value(); got != 8 {
			t.Errorf("New(5).Add(3).Value() = %d, want 8", got)
		}
	})

	t.Run("Zero value starts at zero", func(t *testing.T) {
		t.Parallel()
		var acc Accumulator[int]
		if got := acc.Add(1).Add(2).Add(3).Value(); got != 6 {
			t.Errorf("Add(1).Add(2).Add(3).Value() = %d, want 6", got)
		}
	})

	t.Run("New(0) matches zero value", func(t *testing.T) {
		t.Parallel()
		var zero Accumulator[float64]
		if New(0.0).Value() != zero.Value() {
			t.Error("New(0) should hold the same value as the zero Accumulator")
		}
	})

	t.Run("Add returns the same instance", func(t *testing.T) {
		t.Parallel()
		acc := New(0)
		if acc.Add(1) != acc {
			t.Error("Add should return its receiver")
		}
	})

	t.Run("Value has no side effects", func(t *testing.T) {
		t.Parallel()
		acc := New(7)
		_ = acc.Value()
		_ = acc.Value()
		if got := acc.Value(); got != 7 {
			t.Errorf("Value() = %d after repeated reads, want 7", got)
		}
	})

	t.Run("Negative and fractional addends", func(t *testing.T) {
		t.Parallel()
		if got := New(1.5).Add(-0.25).Add(2).Value(); got != 3.25 {
			t.Errorf("Value() = %v, want 3.25", got)
		}
	})

	t.Run("Integer overflow wraps natively", func(t *testing.T) {
		t.Parallel()
		if got := New[int8](math.MaxInt8).Add(1).Value(); got != math.MinInt8 {
			t.Errorf("Value() = %d, want %d", got, math.MinInt8)
		}
	})

	t.Run("Named numeric types", func(t *testing.T) {
		t.Parallel()
		type cents int64
		if got := New(cents(100)).Add(cents(25)).Value(); got != cents(125) {
			t.Errorf("Value() = %d, want 125", got)
		}
	})
}

func TestAccumulator_String(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name     string
		got      string
		expected string
	}{
		{"int", New(42).String(), "42"},
		{"float", New(2.5).String(), "2.5"},
		{"negative", New(-3).String(), "-3"},
	}
	for _, tt := range tests {
		if tt.got != tt.expected {
			t.Errorf("%s: String() = %q, want %q", tt.name, tt.got, tt.expected)
		}
	}
}

// TestChaining_PropertyBased verifies that after any sequence of additions
// a1..ak on an accumulator started at v, Value() equals v + a1 + ... + ak.
func TestChaining_PropertyBased(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200
	properties := gopter.NewProperties(parameters)

	properties.Property("Value equals initial plus all addends", prop.ForAll(
		func(initial int64, addends []int64) bool {
			acc := New(initial)
			want := initial
			for _, a := range addends {
				acc = acc.Add(a)
				want += a
			}
			return acc.Value() == want
		},
		gen.Int64Range(-1_000_000, 1_000_000),
		gen.SliceOf(gen.Int64Range(-1_000_000, 1_000_000)),
	))

	properties.Property("chained and sequential calls agree", prop.ForAll(
		func(a, b, c int) bool {
			chained := New(0).Add(a).Add(b).Add(c).Value()

			seq := New(0)
			seq.Add(a)
			seq.Add(b)
			seq.Add(c)
			return chained == seq.Value()
		},
		gen.IntRange(-1000, 1000),
		gen.IntRange(-1000, 1000),
		gen.IntRange(-1000, 1000),
	))

	properties.TestingRun(t)
}
