// Package app wires configuration, logging, metrics and presentation into
// the utilkit command.
package app

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os/signal"
	"syscall"

	"github.com/agbru/utilkit/internal/cli"
	"github.com/agbru/utilkit/internal/config"
	apperrors "github.com/agbru/utilkit/internal/errors"
	"github.com/agbru/utilkit/internal/fibonacci"
	"github.com/agbru/utilkit/internal/logging"
	"github.com/agbru/utilkit/internal/metrics"
	"github.com/agbru/utilkit/internal/ui"
)

// Application represents the utilkit application instance.
type Application struct {
	Config    config.AppConfig
	Factory   fibonacci.CalculatorFactory
	Logger    logging.Logger
	Metrics   *metrics.Registry
	ErrWriter io.Writer
	// In is the REPL input. Nil means os.Stdin.
	In io.Reader
}

// AppOption configures an Application during construction.
type AppOption func(*Application)

// WithFactory sets a custom CalculatorFactory for the application.
func WithFactory(f fibonacci.CalculatorFactory) AppOption {
	return func(a *Application) { a.Factory = f }
}

// WithLogger replaces the console logger built by Run.
func WithLogger(l logging.Logger) AppOption {
	return func(a *Application) { a.Logger = l }
}

// New creates a new Application instance by parsing command-line arguments.
// args[0] is the program name.
func New(args []string, errWriter io.Writer, opts ...AppOption) (*Application, error) {
	app := &Application{ErrWriter: errWriter}
	for _, opt := range opts {
		opt(app)
	}
	if app.Factory == nil {
		app.Factory = fibonacci.NewDefaultFactory()
	}

	programName := "utilkit"
	var cmdArgs []string
	if len(args) > 0 {
		programName = args[0]
		cmdArgs = args[1:]
	}

	cfg, err := config.ParseConfig(programName, cmdArgs, errWriter, app.Factory.List())
	if err != nil {
		return nil, err
	}

	app.Config = cfg
	return app, nil
}

// Run executes the configured sections and returns the process exit code.
func (a *Application) Run(ctx context.Context, out io.Writer) int {
	if a.Config.Completion != "" {
		return a.runCompletion(out)
	}

	ui.InitTheme(a.Config.NoColor)
	if a.Logger == nil {
		a.Logger = logging.NewConsoleLogger(a.ErrWriter, "utilkit", a.Config.Verbose, !ui.ColorsEnabled())
	}
	a.Metrics = metrics.NewRegistry()

	ctx, stopSignals := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stopSignals()

	var code int
	if a.Config.Interactive {
		code = a.runREPL(ctx, out)
	} else {
		code = a.runSections(ctx, out)
	}

	if a.Config.Metrics {
		if err := a.Metrics.WriteText(out); err != nil {
			a.Logger.Error("writing metrics failed", err)
			if code == apperrors.ExitSuccess {
				code = apperrors.ExitErrorGeneric
			}
		}
	}
	return code
}

// runSections runs greet, accumulate and fibonacci in that order, stopping at
// the first failure. With no section selected the demo runs all three.
func (a *Application) runSections(ctx context.Context, out io.Writer) int {
	demo := a.Config.IsDemo()
	cfg := a.Config.WithDemoDefaults()
	a.Logger.Debug("running sections",
		logging.Bool("greet", cfg.RunGreet),
		logging.Bool("accumulate", cfg.RunAccumulate),
		logging.Bool("fibonacci", cfg.RunFibonacci),
	)

	if demo && !cfg.Quiet {
		fmt.Fprintln(out, ui.Banner("utilkit "+Version))
	}

	if cfg.RunGreet {
		if code := a.runGreet(cfg, out); code != apperrors.ExitSuccess {
			return code
		}
	}
	if cfg.RunAccumulate {
		a.runAccumulate(cfg, out)
	}
	if cfg.RunFibonacci {
		return a.runCalculate(ctx, cfg, out)
	}
	return apperrors.ExitSuccess
}

func (a *Application) runGreet(cfg config.AppConfig, out io.Writer) int {
	a.Metrics.ObserveOperation(metrics.OpGreet)
	if err := cli.DisplayGreeting(out, cfg.Greet); err != nil {
		a.Logger.Error("greeting failed", err)
		return apperrors.ExitErrorGeneric
	}
	return apperrors.ExitSuccess
}

// runCompletion generates shell completion scripts.
func (a *Application) runCompletion(out io.Writer) int {
	if err := cli.GenerateCompletion(out, a.Config.Completion, a.Factory.List()); err != nil {
		fmt.Fprintf(a.ErrWriter, "Error generating completion: %v\n", err)
		return apperrors.ExitErrorConfig
	}
	return apperrors.ExitSuccess
}

// runREPL starts the interactive session on a.In and out.
func (a *Application) runREPL(ctx context.Context, out io.Writer) int {
	repl := cli.NewREPL(a.Factory, cli.REPLConfig{
		DefaultAlgo: a.Config.Algo,
		Timeout:     a.Config.Timeout,
		Initial:     a.Config.Initial,
		Metrics:     a.Metrics,
		Logger:      a.Logger,
	})
	if a.In != nil {
		repl.SetInput(a.In)
	}
	repl.SetOutput(out)
	repl.Start(ctx)
	return apperrors.ExitSuccess
}

// IsHelpError checks if the error is a help flag error (--help was used).
func IsHelpError(err error) bool {
	return errors.Is(err, flag.ErrHelp)
}

// ExitCodeForError maps an error returned by New to a process exit code.
func ExitCodeForError(err error) int {
	if err == nil || IsHelpError(err) {
		return apperrors.ExitSuccess
	}
	var cfgErr apperrors.ConfigError
	var valErr apperrors.ValidationError
	if errors.As(err, &cfgErr) || errors.As(err, &valErr) {
		return apperrors.ExitErrorConfig
	}
	return apperrors.ExitErrorGeneric
}
