// Package fibonacci computes terms of the Fibonacci sequence.
//
// Fibonacci is the reference definition: plain recursion, no memoization.
// The Calculator implementations registered in the default factory compute
// the same values with different methods and can be compared side by side.
//
// Every method honors the base case literally: for any n <= 1, including
// negative n, the result is n itself.
package fibonacci

// Fibonacci returns F(n) with F(0) = 0, F(1) = 1 and
// F(n) = F(n-1) + F(n-2), computed by direct recursion in exponential time.
// For n <= 1 it returns n unchanged, negative values included. Results for
// n > MaxSafeN wrap around like any other int overflow.
func Fibonacci(n int) int {
	if n <= 1 {
		return n
	}
	return Fibonacci(n-1) + Fibonacci(n-2)
}
