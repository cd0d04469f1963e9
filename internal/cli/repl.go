package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/agbru/utilkit/internal/accumulator"
	"github.com/agbru/utilkit/internal/config"
	"github.com/agbru/utilkit/internal/fibonacci"
	"github.com/agbru/utilkit/internal/logging"
	"github.com/agbru/utilkit/internal/metrics"
	"github.com/agbru/utilkit/internal/orchestration"
	"github.com/agbru/utilkit/internal/ui"
)

// REPLConfig holds configuration for the REPL session.
type REPLConfig struct {
	// DefaultAlgo is the strategy used by fib. "all" or "" picks the
	// first registered key.
	DefaultAlgo string
	// Timeout is the maximum duration of each calculation.
	Timeout time.Duration
	// Initial is the accumulator's starting value.
	Initial float64
	// Metrics, if set, receives one observation per command.
	Metrics *metrics.Registry
	// Logger, if set, receives debug traces of each command.
	Logger logging.Logger
}

// REPL is an interactive session over the greeter, a float64 accumulator and
// the Fibonacci strategies.
type REPL struct {
	config      REPLConfig
	factory     fibonacci.CalculatorFactory
	acc         *accumulator.Accumulator[float64]
	currentAlgo string
	in          io.Reader
	out         io.Writer
}

// NewREPL creates a new REPL instance reading from stdin and writing to
// stdout.
func NewREPL(factory fibonacci.CalculatorFactory, cfg REPLConfig) *REPL {
	currentAlgo := cfg.DefaultAlgo
	if _, err := factory.Get(currentAlgo); err != nil {
		if keys := factory.List(); len(keys) > 0 {
			currentAlgo = keys[0]
		}
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = config.DefaultTimeout
	}

	return &REPL{
		config:      cfg,
		factory:     factory,
		acc:         accumulator.New(cfg.Initial),
		currentAlgo: currentAlgo,
		in:          os.Stdin,
		out:         os.Stdout,
	}
}

// SetInput sets a custom input reader.
func (r *REPL) SetInput(in io.Reader) {
	r.in = in
}

// SetOutput sets a custom output writer.
func (r *REPL) SetOutput(out io.Writer) {
	r.out = out
}

// Value returns the current accumulator value.
func (r *REPL) Value() float64 {
	return r.acc.Value()
}

// CurrentAlgo returns the key of the strategy used by fib.
func (r *REPL) CurrentAlgo() string {
	return r.currentAlgo
}

// Start reads commands until exit, EOF or ctx is done.
func (r *REPL) Start(ctx context.Context) {
	fmt.Fprintln(r.out, ui.Banner("utilkit - interactive mode"))
	r.printHelp()
	fmt.Fprintln(r.out)

	reader := bufio.NewReader(r.in)

	for ctx.Err() == nil {
		fmt.Fprint(r.out, ui.ColorGreen()+"utilkit> "+ui.ColorReset())

		input, err := reader.ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			fmt.Fprintf(r.out, "%sRead error: %v%s\n", ui.ColorRed(), err, ui.ColorReset())
			return
		}

		line := strings.TrimRight(input, "\r\n")
		if strings.TrimSpace(line) != "" && !r.processCommand(ctx, line) {
			return
		}
		if errors.Is(err, io.EOF) {
			fmt.Fprintln(r.out, "\nGoodbye!")
			return
		}
	}
}

func (r *REPL) printHelp() {
	cmds := []struct{ usage, help string }{
		{"greet <name>", "Print the greeting for name"},
		{"add <x>", "Add x to the accumulator"},
		{"value", "Show the accumulator value"},
		{"reset [v]", "Reset the accumulator to v (default 0)"},
		{"fib <n>", "Calculate F(n) with the current algorithm"},
		{"<n>", "Shorthand for fib <n>"},
		{"algo <key>", "Change algorithm (" + strings.Join(r.factory.List(), ", ") + ")"},
		{"compare <n>", "Compare all algorithms for F(n)"},
		{"list", "List available algorithms"},
		{"help", "Display this help"},
		{"exit / quit", "Exit interactive mode"},
	}
	fmt.Fprintf(r.out, "%sAvailable commands:%s\n", ui.ColorBold(), ui.ColorReset())
	for _, c := range cmds {
		fmt.Fprintf(r.out, "  %s%-13s%s - %s\n", ui.ColorYellow(), c.usage, ui.ColorReset(), c.help)
	}
}

// processCommand executes one command line, without its line terminator. It
// returns false when the session should end.
func (r *REPL) processCommand(ctx context.Context, input string) bool {
	parts := strings.Fields(input)
	cmd := strings.ToLower(parts[0])
	args := parts[1:]

	if r.config.Logger != nil {
		r.config.Logger.Debug("repl command", logging.String("command", cmd), logging.Int("args", len(args)))
	}

	switch cmd {
	case "greet", "g":
		r.cmdGreet(commandArgument(input))
	case "add", "+":
		r.cmdAdd(args)
	case "value", "val":
		r.cmdValue()
	case "reset":
		r.cmdReset(args)
	case "fib", "f", "calc":
		r.cmdFib(ctx, args)
	case "algo", "a":
		r.cmdAlgo(args)
	case "compare", "cmp":
		r.cmdCompare(ctx, args)
	case "list", "ls":
		r.cmdList()
	case "help", "h", "?":
		r.printHelp()
	case "exit", "quit", "q":
		fmt.Fprintf(r.out, "%sGoodbye!%s\n", ui.ColorGreen(), ui.ColorReset())
		return false
	default:
		if n, err := strconv.Atoi(cmd); err == nil {
			r.calculate(ctx, n)
		} else {
			r.errorf("Unknown command: %s", cmd)
			fmt.Fprintf(r.out, "Type %shelp%s to see available commands.\n", ui.ColorYellow(), ui.ColorReset())
		}
	}
	return true
}

func (r *REPL) errorf(format string, args ...any) {
	fmt.Fprintf(r.out, "%s%s%s\n", ui.ColorRed(), fmt.Sprintf(format, args...), ui.ColorReset())
}

func (r *REPL) observe(op string) {
	if r.config.Metrics != nil {
		r.config.Metrics.ObserveOperation(op)
	}
}

func (r *REPL) cmdGreet(name string) {
	r.observe(metrics.OpGreet)
	_ = DisplayGreeting(r.out, name)
}

// commandArgument returns the text after the command word and the single
// separator that follows it, keeping inner and trailing whitespace.
func commandArgument(line string) string {
	rest := strings.TrimLeft(line, " \t")
	i := strings.IndexAny(rest, " \t")
	if i < 0 {
		return ""
	}
	return rest[i+1:]
}

func (r *REPL) cmdAdd(args []string) {
	if len(args) != 1 {
		r.errorf("Usage: add <x>")
		return
	}
	x, err := strconv.ParseFloat(args[0], 64)
	if err != nil {
		r.errorf("Invalid number: %s", args[0])
		return
	}
	r.observe(metrics.OpAdd)
	r.acc.Add(x)
	r.printValue()
}

func (r *REPL) cmdValue() {
	r.observe(metrics.OpValue)
	r.printValue()
}

func (r *REPL) printValue() {
	v := r.acc.Value()
	if r.config.Metrics != nil {
		r.config.Metrics.SetAccumulatorValue(v)
	}
	fmt.Fprintf(r.out, "Value: %s%s%s\n", ui.ColorGreen(), FormatNumber(v), ui.ColorReset())
}

func (r *REPL) cmdReset(args []string) {
	var v float64
	if len(args) > 0 {
		parsed, err := strconv.ParseFloat(args[0], 64)
		if err != nil {
			r.errorf("Invalid number: %s", args[0])
			return
		}
		v = parsed
	}
	r.acc = accumulator.New(v)
	r.printValue()
}

// parseIndex parses a Fibonacci index. Negative values are accepted and
// returned unchanged by every strategy.
func (r *REPL) parseIndex(usage string, args []string) (int, bool) {
	if len(args) == 0 {
		r.errorf("Usage: %s", usage)
		return 0, false
	}
	n, err := strconv.Atoi(args[0])
	if err != nil {
		r.errorf("Invalid value: %s", args[0])
		return 0, false
	}
	if n > fibonacci.MaxSafeN {
		r.errorf("n must be at most %d", fibonacci.MaxSafeN)
		return 0, false
	}
	return n, true
}

func (r *REPL) cmdFib(ctx context.Context, args []string) {
	if n, ok := r.parseIndex("fib <n>", args); ok {
		r.calculate(ctx, n)
	}
}

func (r *REPL) calculate(ctx context.Context, n int) {
	if n > fibonacci.MaxSafeN {
		r.errorf("n must be at most %d", fibonacci.MaxSafeN)
		return
	}
	calc, err := r.factory.Get(r.currentAlgo)
	if err != nil {
		r.errorf("Algorithm not found: %s", r.currentAlgo)
		return
	}

	ctx, cancel := context.WithTimeout(ctx, r.config.Timeout)
	defer cancel()

	r.observe(metrics.OpFibonacci)
	start := time.Now()
	result, err := calc.Calculate(ctx, n)
	duration := time.Since(start)
	if r.config.Metrics != nil {
		r.config.Metrics.ObserveCalculation(r.currentAlgo, duration, err)
	}

	if err != nil {
		r.errorf("Error: %v", err)
		return
	}
	DisplayResult(result, n, duration, calc.Name(), r.out)
	fmt.Fprintln(r.out)
}

func (r *REPL) cmdAlgo(args []string) {
	if len(args) == 0 {
		r.errorf("Usage: algo <key>")
		fmt.Fprintf(r.out, "Available algorithms: %s\n", strings.Join(r.factory.List(), ", "))
		return
	}

	name := strings.ToLower(args[0])
	calc, err := r.factory.Get(name)
	if err != nil {
		r.errorf("Unknown algorithm: %s", name)
		fmt.Fprintf(r.out, "Available algorithms: %s\n", strings.Join(r.factory.List(), ", "))
		return
	}

	r.currentAlgo = name
	fmt.Fprintf(r.out, "Algorithm changed to: %s%s%s\n", ui.ColorGreen(), calc.Name(), ui.ColorReset())
}

func (r *REPL) cmdCompare(ctx context.Context, args []string) {
	n, ok := r.parseIndex("compare <n>", args)
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(ctx, r.config.Timeout)
	defer cancel()

	r.observe(metrics.OpFibonacci)
	calculators := orchestration.GetCalculatorsToRun(config.AlgoAll, r.factory)
	var recorder orchestration.CalculationRecorder
	if r.config.Metrics != nil {
		recorder = r.config.Metrics
	}
	results := orchestration.ExecuteCalculations(ctx, calculators, n, orchestration.NullProgressReporter{}, recorder, r.out)
	presenter := CLIResultPresenter{}
	orchestration.AnalyzeComparisonResults(results, n, presenter, presenter, r.out)
	fmt.Fprintln(r.out)
}

func (r *REPL) cmdList() {
	fmt.Fprintf(r.out, "\n%sAvailable algorithms:%s\n", ui.ColorBold(), ui.ColorReset())
	all := r.factory.GetAll()
	for _, name := range r.factory.List() {
		marker := "  "
		if name == r.currentAlgo {
			marker = ui.ColorGreen() + "► " + ui.ColorReset()
		}
		fmt.Fprintf(r.out, "%s%s%-10s%s - %s\n", marker, ui.ColorYellow(), name, ui.ColorReset(), all[name].Name())
	}
	fmt.Fprintln(r.out)
}
