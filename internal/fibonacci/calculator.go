//go:generate mockgen -destination=mocks/mock_calculator.go -package=mocks github.com/agbru/utilkit/internal/fibonacci Calculator

package fibonacci

import "context"

// Calculator computes Fibonacci numbers. Implementations are stateless and
// safe for concurrent use.
type Calculator interface {
	// Name returns a human readable description of the method.
	Name() string
	// Calculate returns F(n). It returns ctx.Err() if the context is
	// cancelled before the result is known.
	Calculate(ctx context.Context, n int) (int, error)
}

// coreCalculator is the algorithm-specific part of a Calculator. CalculateCore
// is only called with n >= 2 and a live context.
type coreCalculator interface {
	Name() string
	CalculateCore(ctx context.Context, n int) (int, error)
}

// FibCalculator adapts a coreCalculator into a Calculator. It handles the
// shared base case and the up-front context check so that the algorithms only
// deal with n >= 2.
type FibCalculator struct {
	core coreCalculator
}

// NewCalculator wraps an algorithm into a Calculator.
func NewCalculator(core coreCalculator) Calculator {
	return &FibCalculator{core: core}
}

// Name returns the name of the wrapped algorithm.
func (c *FibCalculator) Name() string {
	return c.core.Name()
}

// Calculate returns F(n), or n itself when n <= 1.
func (c *FibCalculator) Calculate(ctx context.Context, n int) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	if n <= 1 {
		return n, nil
	}
	return c.core.CalculateCore(ctx, n)
}

// NaiveRecursion computes F(n) by the direct double recursion of Fibonacci,
// polling the context periodically so long runs can be cancelled.
type NaiveRecursion struct{}

// Name implements coreCalculator.
func (NaiveRecursion) Name() string { return "Naive Recursion (O(φⁿ))" }

// CalculateCore implements coreCalculator.
func (NaiveRecursion) CalculateCore(ctx context.Context, n int) (int, error) {
	var (
		calls uint
		err   error
		fib   func(k int) int
	)
	fib = func(k int) int {
		if err != nil {
			return 0
		}
		calls++
		if calls&naiveCancelCheckMask == 0 {
			if err = ctx.Err(); err != nil {
				return 0
			}
		}
		if k <= 1 {
			return k
		}
		return fib(k-1) + fib(k-2)
	}

	result := fib(n)
	if err != nil {
		return 0, err
	}
	return result, nil
}

// Iterative computes F(n) with a linear loop over consecutive pairs.
type Iterative struct{}

// Name implements coreCalculator.
func (Iterative) Name() string { return "Iterative (O(n))" }

// CalculateCore implements coreCalculator.
func (Iterative) CalculateCore(ctx context.Context, n int) (int, error) {
	a, b := 0, 1
	for i := 0; i < n; i++ {
		if i&iterativeCancelCheckMask == iterativeCancelCheckMask {
			if err := ctx.Err(); err != nil {
				return 0, err
			}
		}
		a, b = b, a+b
	}
	return a, nil
}

// MemoizedRecursion computes F(n) top-down, caching each term for the
// duration of a single call.
type MemoizedRecursion struct{}

// Name implements coreCalculator.
func (MemoizedRecursion) Name() string { return "Memoized Recursion (O(n))" }

// CalculateCore implements coreCalculator.
func (MemoizedRecursion) CalculateCore(ctx context.Context, n int) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	memo := make([]int, n+1)
	known := make([]bool, n+1)

	var fib func(k int) int
	fib = func(k int) int {
		if k <= 1 {
			return k
		}
		if known[k] {
			return memo[k]
		}
		memo[k] = fib(k-1) + fib(k-2)
		known[k] = true
		return memo[k]
	}
	return fib(n), nil
}
