package app

import (
	"context"
	"fmt"
	"io"

	"github.com/agbru/utilkit/internal/accumulator"
	"github.com/agbru/utilkit/internal/cli"
	"github.com/agbru/utilkit/internal/config"
	apperrors "github.com/agbru/utilkit/internal/errors"
	"github.com/agbru/utilkit/internal/logging"
	"github.com/agbru/utilkit/internal/metrics"
	"github.com/agbru/utilkit/internal/orchestration"
)

// runAccumulate folds the configured addends into a float64 accumulator.
func (a *Application) runAccumulate(cfg config.AppConfig, out io.Writer) {
	acc := accumulator.New(cfg.Initial)
	for _, v := range cfg.Addends {
		a.Metrics.ObserveOperation(metrics.OpAdd)
		acc.Add(v)
	}
	a.Metrics.ObserveOperation(metrics.OpValue)
	a.Metrics.SetAccumulatorValue(acc.Value())
	a.Logger.Debug("accumulated", logging.Int("addends", len(cfg.Addends)), logging.Float64("value", acc.Value()))

	cli.DisplayAccumulator(out, cfg.Initial, cfg.Addends, acc.Value(), cfg.Quiet)
}

// runCalculate computes F(n) with the selected strategies under the
// configured timeout.
func (a *Application) runCalculate(ctx context.Context, cfg config.AppConfig, out io.Writer) int {
	ctx, cancelTimeout := context.WithTimeout(ctx, cfg.Timeout)
	defer cancelTimeout()

	calculatorsToRun := orchestration.GetCalculatorsToRun(cfg.Algo, a.Factory)
	if len(calculatorsToRun) == 0 {
		fmt.Fprintf(a.ErrWriter, "Configuration error: unknown algorithm %q\n", cfg.Algo)
		return apperrors.ExitErrorConfig
	}
	a.Metrics.ObserveOperation(metrics.OpFibonacci)

	if !cfg.Quiet {
		cli.PrintExecutionConfig(cfg, out)
		cli.PrintExecutionMode(calculatorsToRun, out)
	}

	var progressReporter orchestration.ProgressReporter = cli.CLIProgressReporter{}
	progressOut := out
	if cfg.Quiet {
		progressReporter = orchestration.NullProgressReporter{}
		progressOut = io.Discard
	}

	results := orchestration.ExecuteCalculations(ctx, calculatorsToRun, cfg.N, progressReporter, a.Metrics, progressOut)
	for _, r := range results {
		if r.Err != nil {
			a.Logger.Error("calculation failed", r.Err, logging.String("algorithm", r.Name), logging.Int("n", cfg.N))
		} else {
			a.Logger.Debug("calculation finished", logging.String("algorithm", r.Name), logging.Int("n", cfg.N))
		}
	}

	presenter := cli.CLIResultPresenter{}
	if cfg.Quiet {
		return a.presentQuiet(results, presenter, out)
	}
	return orchestration.AnalyzeComparisonResults(results, cfg.N, presenter, presenter, out)
}

// presentQuiet prints only the winning value. Mismatches and failures are
// reported on ErrWriter so stdout stays machine readable.
func (a *Application) presentQuiet(results []orchestration.CalculationResult, handler orchestration.ErrorHandler, out io.Writer) int {
	best := orchestration.FindBestResult(results)
	if best == nil {
		for _, r := range results {
			if r.Err != nil {
				return handler.HandleError(r.Err, r.Duration, a.ErrWriter)
			}
		}
		return apperrors.ExitErrorGeneric
	}
	for _, r := range results {
		if r.Err == nil && r.Result != best.Result {
			fmt.Fprintf(a.ErrWriter, "inconsistent results: %s=%d, %s=%d\n", best.Name, best.Result, r.Name, r.Result)
			return apperrors.ExitErrorMismatch
		}
	}
	cli.DisplayQuietResult(out, best.Result)
	return apperrors.ExitSuccess
}
