package orchestration

import (
	"context"
	"fmt"
	"io"
	"sort"
	"sync"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/errgroup"

	apperrors "github.com/agbru/utilkit/internal/errors"
)

// tracerName identifies spans created by this package.
const tracerName = "github.com/agbru/utilkit/internal/orchestration"

// ExecuteCalculations runs every calculator concurrently for index n and
// collects their results in input order.
//
// Each run is wrapped in an OpenTelemetry span and, when recorder is non-nil,
// reported to it under its registry key. A failing calculator does not cancel
// the others.
//
// Parameters:
//   - ctx: The context for cancellation and deadlines.
//   - calculators: The selected calculators to execute.
//   - n: The Fibonacci index.
//   - progressReporter: Displays progress (use NullProgressReporter for quiet mode).
//   - recorder: Optional metrics sink.
//   - out: The io.Writer for progress output.
//
// Returns:
//   - []CalculationResult: One result per calculator, in input order.
func ExecuteCalculations(ctx context.Context, calculators []Selection, n int, progressReporter ProgressReporter, recorder CalculationRecorder, out io.Writer) []CalculationResult {
	g, ctx := errgroup.WithContext(ctx)
	tracer := otel.Tracer(tracerName)
	results := make([]CalculationResult, len(calculators))
	progressChan := make(chan ProgressUpdate, len(calculators))

	var displayWg sync.WaitGroup
	displayWg.Add(1)
	go progressReporter.DisplayProgress(&displayWg, progressChan, len(calculators), out)

	for i, calc := range calculators {
		idx, calculator := i, calc
		g.Go(func() error {
			spanCtx, span := tracer.Start(ctx, "fibonacci.calculate", trace.WithAttributes(
				attribute.String("fibonacci.algorithm", calculator.Key),
				attribute.String("fibonacci.strategy", calculator.Name()),
				attribute.Int("fibonacci.n", n),
			))
			defer span.End()

			startTime := time.Now()
			res, err := calculator.Calculate(spanCtx, n)
			elapsed := time.Since(startTime)

			if err != nil {
				span.RecordError(err)
				span.SetStatus(codes.Error, err.Error())
			} else {
				span.SetAttributes(attribute.Int("fibonacci.result", res))
			}
			if recorder != nil {
				recorder.ObserveCalculation(calculator.Key, elapsed, err)
			}

			results[idx] = CalculationResult{
				Key: calculator.Key, Name: calculator.Name(), Result: res, Duration: elapsed, Err: err,
			}
			progressChan <- ProgressUpdate{CalculatorIndex: idx, Name: calculator.Name(), Duration: elapsed, Err: err}
			return nil
		})
	}

	_ = g.Wait()
	close(progressChan)
	displayWg.Wait()

	return results
}

// AnalyzeComparisonResults sorts results (successes first, then by
// duration), presents the comparison table, checks that all successful
// results agree and presents the winner.
//
// Parameters:
//   - results: The results to analyze. The slice is sorted in place.
//   - n: The Fibonacci index.
//   - presenter: Formats the table and the final result.
//   - errHandler: Maps the first error to an exit code when nothing succeeded.
//   - out: The io.Writer for the report.
//
// Returns:
//   - int: An exit code indicating success (0) or the type of failure.
func AnalyzeComparisonResults(results []CalculationResult, n int, presenter ResultPresenter, errHandler ErrorHandler, out io.Writer) int {
	sort.SliceStable(results, func(i, j int) bool {
		if (results[i].Err == nil) != (results[j].Err == nil) {
			return results[i].Err == nil
		}
		return results[i].Duration < results[j].Duration
	})

	var firstValidResult *CalculationResult
	var firstError error
	for i := range results {
		if results[i].Err != nil {
			if firstError == nil {
				firstError = results[i].Err
			}
		} else if firstValidResult == nil {
			firstValidResult = &results[i]
		}
	}

	presenter.PresentComparisonTable(results, out)

	if firstValidResult == nil {
		if firstError == nil {
			fmt.Fprintf(out, "\nGlobal Status: Failure. No algorithm was run.\n")
			return apperrors.ExitErrorGeneric
		}
		fmt.Fprintf(out, "\nGlobal Status: Failure. No algorithm could complete the calculation.\n")
		return errHandler.HandleError(firstError, 0, out)
	}

	for _, res := range results {
		if res.Err == nil && res.Result != firstValidResult.Result {
			fmt.Fprintf(out, "\nGlobal Status: CRITICAL ERROR! An inconsistency was detected between the results of the algorithms.\n")
			return apperrors.ExitErrorMismatch
		}
	}

	fmt.Fprintf(out, "\nGlobal Status: Success. All valid results are consistent.\n")
	presenter.PresentResult(*firstValidResult, n, out)
	return apperrors.ExitSuccess
}

// FindBestResult returns the fastest successful result, or nil if none
// succeeded.
func FindBestResult(results []CalculationResult) *CalculationResult {
	var best *CalculationResult
	for i := range results {
		if results[i].Err == nil && (best == nil || results[i].Duration < best.Duration) {
			best = &results[i]
		}
	}
	return best
}
