// Package apperrors defines the application's exit codes and structured error
// types, separating configuration mistakes from calculation failures while
// carrying the underlying cause.
//
// Error Wrapping Guidelines:
// Wrapping follows Go's conventions with fmt.Errorf and %w. Types that carry a
// cause implement Unwrap() so errors.Is() and errors.As() see through them.
package apperrors
