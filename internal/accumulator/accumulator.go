// Package accumulator provides a running numeric total that is mutated by
// chained additions.
package accumulator

import "fmt"

// Number is the set of numeric kinds an Accumulator can hold.
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// Accumulator holds a running total. The zero value holds 0 and is ready to
// use. An Accumulator is not safe for concurrent use.
type Accumulator[T Number] struct {
	value T
}

// New returns an Accumulator holding initial.
func New[T Number](initial T) *Accumulator[T] {
	return &Accumulator[T]{value: initial}
}

// Add adds n to the total in place and returns the receiver, so calls can be
// chained: acc.Add(1).Add(2). Overflow follows Go's native arithmetic.
func (a *Accumulator[T]) Add(n T) *Accumulator[T] {
	a.value += n
	return a
}

// Value returns the current total.
func (a *Accumulator[T]) Value() T {
	return a.value
}

// String implements fmt.Stringer.
func (a *Accumulator[T]) String() string {
	return fmt.Sprintf("%v", a.value)
}
