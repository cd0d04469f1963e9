package cli

import (
	"fmt"
	"io"
	"strings"
)

// FlagCompletion describes a CLI flag for shell completion generation.
type FlagCompletion struct {
	Long      string   // long flag name without "--"
	Short     string   // short flag without "-"
	Help      string   // description text
	Values    []string // suggested values (nil = boolean or free-form)
	ValueName string   // label for the value; empty for booleans
	IsAlgo    bool     // values come from the algorithm list
}

// CompletionShells lists the shells GenerateCompletion supports.
var CompletionShells = []string{"bash", "zsh", "fish"}

var flagRegistry = []FlagCompletion{
	{Long: "help", Short: "h", Help: "Show help message"},
	{Long: "version", Help: "Show version information"},
	{Long: "greet", Help: "Print the greeting for a name", ValueName: "name"},
	{Long: "initial", Help: "Initial accumulator value", ValueName: "number"},
	{Long: "add", Help: "Comma-separated values to add", ValueName: "values"},
	{Short: "n", Help: "Fibonacci index", ValueName: "number"},
	{Long: "algo", Help: "Fibonacci strategy", IsAlgo: true, ValueName: "algorithm"},
	{Long: "timeout", Help: "Maximum calculation time", Values: []string{"1s", "10s", "1m", "5m"}, ValueName: "duration"},
	{Long: "interactive", Short: "i", Help: "Start the interactive session"},
	{Long: "quiet", Short: "q", Help: "Print bare results only"},
	{Long: "verbose", Short: "v", Help: "Enable debug logging"},
	{Long: "metrics", Help: "Print Prometheus metrics on exit"},
	{Long: "no-color", Help: "Disable colored output"},
	{Long: "completion", Help: "Generate completion script", Values: CompletionShells, ValueName: "shell"},
}

// GenerateCompletion writes a completion script for shell to out.
//
// Parameters:
//   - out: The writer to output the completion script.
//   - shell: One of CompletionShells.
//   - algorithms: The registered strategy keys.
//
// Returns:
//   - error: An error if the shell is not supported or the write fails.
func GenerateCompletion(out io.Writer, shell string, algorithms []string) error {
	var script string
	switch shell {
	case "bash":
		script = bashCompletion(algorithms)
	case "zsh":
		script = zshCompletion(algorithms)
	case "fish":
		script = fishCompletion(algorithms)
	default:
		return fmt.Errorf("unsupported shell: %s (accepted values: %s)", shell, strings.Join(CompletionShells, ", "))
	}
	if _, err := io.WriteString(out, script); err != nil {
		return fmt.Errorf("completion %s generation failed: %w", shell, err)
	}
	return nil
}

func bashCompletion(algorithms []string) string {
	var opts []string
	var cases strings.Builder
	for _, f := range flagRegistry {
		var patterns []string
		if f.Long != "" {
			opts = append(opts, "--"+f.Long)
			patterns = append(patterns, "--"+f.Long)
		}
		if f.Short != "" {
			opts = append(opts, "-"+f.Short)
			patterns = append(patterns, "-"+f.Short)
		}

		var words string
		switch {
		case f.IsAlgo:
			words = "${algorithms}"
		case len(f.Values) > 0:
			words = strings.Join(f.Values, " ")
		default:
			continue
		}
		fmt.Fprintf(&cases, "        %s)\n            COMPREPLY=( $(compgen -W \"%s\" -- \"${cur}\") )\n            return 0\n            ;;\n",
			strings.Join(patterns, "|"), words)
	}

	return fmt.Sprintf(`# Bash completion script for utilkit
# Add this to your ~/.bashrc or ~/.bash_completion

_utilkit_completions() {
    local cur prev opts algorithms
    COMPREPLY=()
    cur="${COMP_WORDS[COMP_CWORD]}"
    prev="${COMP_WORDS[COMP_CWORD-1]}"

    opts="%s"
    algorithms="%s all"

    case "${prev}" in
%s    esac

    if [[ "${cur}" == -* ]]; then
        COMPREPLY=( $(compgen -W "${opts}" -- "${cur}") )
        return 0
    fi
}

complete -F _utilkit_completions utilkit
`, strings.Join(opts, " "), strings.Join(algorithms, " "), cases.String())
}

func zshCompletion(algorithms []string) string {
	args := make([]string, 0, len(flagRegistry))
	for _, f := range flagRegistry {
		args = append(args, zshArgEntry(f))
	}

	return fmt.Sprintf(`#compdef utilkit

# Zsh completion script for utilkit
# Add this to your ~/.zshrc or place in $fpath

_utilkit() {
    local -a algorithms
    algorithms=(%s all)

    _arguments -s \
%s
}

_utilkit "$@"
`, strings.Join(algorithms, " "), strings.Join(args, " \\\n"))
}

// zshArgEntry formats a single FlagCompletion as a zsh _arguments entry.
func zshArgEntry(f FlagCompletion) string {
	valueSuffix := ""
	switch {
	case f.IsAlgo:
		valueSuffix = fmt.Sprintf(":%s:($algorithms)", f.ValueName)
	case len(f.Values) > 0:
		valueSuffix = fmt.Sprintf(":%s:(%s)", f.ValueName, strings.Join(f.Values, " "))
	case f.ValueName != "":
		valueSuffix = fmt.Sprintf(":%s:", f.ValueName)
	}

	if f.Long != "" && f.Short != "" {
		return fmt.Sprintf("        '(-%s --%s)'{-%s,--%s}'[%s]%s'",
			f.Short, f.Long, f.Short, f.Long, f.Help, valueSuffix)
	}
	if f.Long != "" {
		return fmt.Sprintf("        '--%s[%s]%s'", f.Long, f.Help, valueSuffix)
	}
	return fmt.Sprintf("        '-%s[%s]%s'", f.Short, f.Help, valueSuffix)
}

func fishCompletion(algorithms []string) string {
	lines := []string{
		"# Fish completion script for utilkit",
		"# Add this to ~/.config/fish/completions/utilkit.fish",
		"",
		"complete -c utilkit -f",
	}
	algoList := strings.Join(algorithms, " ")
	for _, f := range flagRegistry {
		lines = append(lines, fishCompleteLine(f, algoList))
	}
	return strings.Join(lines, "\n") + "\n"
}

// fishCompleteLine formats a single FlagCompletion as a fish complete command.
func fishCompleteLine(f FlagCompletion, algoList string) string {
	parts := []string{"complete -c utilkit"}
	if f.Short != "" {
		parts = append(parts, "-s "+f.Short)
	}
	if f.Long != "" {
		parts = append(parts, "-l "+f.Long)
	}
	parts = append(parts, fmt.Sprintf("-d '%s'", f.Help))

	switch {
	case f.IsAlgo:
		parts = append(parts, fmt.Sprintf("-xa '%s all'", algoList))
	case len(f.Values) > 0:
		parts = append(parts, fmt.Sprintf("-xa '%s'", strings.Join(f.Values, " ")))
	case f.ValueName != "":
		parts = append(parts, "-x")
	}
	return strings.Join(parts, " ")
}
