// Package orchestration runs Fibonacci strategies side by side and compares
// their results. Presentation is kept out of this package behind the
// ProgressReporter and ResultPresenter interfaces.
package orchestration
