package orchestration

import (
	"io"
	"sync"
	"time"
)

// CalculationResult encapsulates the outcome of a single Fibonacci calculation.
type CalculationResult struct {
	// Key is the registry key of the strategy used.
	Key string
	// Name is the display name of the strategy used.
	Name string
	// Result is the computed Fibonacci number. Meaningless if Err is set.
	Result int
	// Duration is the time taken to complete the calculation.
	Duration time.Duration
	// Err contains any error that occurred during the calculation.
	Err error
}

// ProgressReporter displays progress while calculators run.
//
// DisplayProgress is started in its own goroutine and must call wg.Done
// once progressChan is closed and drained.
type ProgressReporter interface {
	DisplayProgress(wg *sync.WaitGroup, progressChan <-chan ProgressUpdate, numCalculators int, out io.Writer)
}

// ProgressReporterFunc is a function adapter that implements ProgressReporter.
type ProgressReporterFunc func(wg *sync.WaitGroup, progressChan <-chan ProgressUpdate, numCalculators int, out io.Writer)

// DisplayProgress calls the underlying function.
func (f ProgressReporterFunc) DisplayProgress(wg *sync.WaitGroup, progressChan <-chan ProgressUpdate, numCalculators int, out io.Writer) {
	f(wg, progressChan, numCalculators, out)
}

// NullProgressReporter drains the progress channel without displaying
// anything. Used in quiet mode and tests.
type NullProgressReporter struct{}

// DisplayProgress drains the channel without output.
func (NullProgressReporter) DisplayProgress(wg *sync.WaitGroup, progressChan <-chan ProgressUpdate, _ int, _ io.Writer) {
	defer wg.Done()
	for range progressChan {
	}
}

// ResultPresenter presents calculation results.
type ResultPresenter interface {
	// PresentComparisonTable displays the comparison summary table.
	PresentComparisonTable(results []CalculationResult, out io.Writer)
	// PresentResult displays the final calculation result.
	PresentResult(result CalculationResult, n int, out io.Writer)
}

// ErrorHandler handles calculation errors and returns exit codes.
type ErrorHandler interface {
	HandleError(err error, duration time.Duration, out io.Writer) int
}

// CalculationRecorder receives one observation per finished calculator,
// labelled with the calculator's registry key.
// *metrics.Registry satisfies it.
type CalculationRecorder interface {
	ObserveCalculation(algorithm string, d time.Duration, err error)
}
