package cli

import (
	"bytes"
	"errors"
	"strings"
	"testing"
)

func TestGenerateCompletion(t *testing.T) {
	algos := []string{"iterative", "memo", "naive"}

	tests := []struct {
		shell    string
		contains []string
	}{
		{"bash", []string{
			"complete -F _utilkit_completions utilkit",
			`algorithms="iterative memo naive all"`,
			"--algo)",
			`compgen -W "bash zsh fish"`,
			"-i",
		}},
		{"zsh", []string{
			"#compdef utilkit",
			"algorithms=(iterative memo naive all)",
			"'--algo[Fibonacci strategy]:algorithm:($algorithms)'",
			"'(-q --quiet)'{-q,--quiet}'[Print bare results only]'",
			"'-n[Fibonacci index]:number:'",
		}},
		{"fish", []string{
			"complete -c utilkit -f",
			"complete -c utilkit -l algo -d 'Fibonacci strategy' -xa 'iterative memo naive all'",
			"complete -c utilkit -s n -d 'Fibonacci index' -x",
			"complete -c utilkit -s v -l verbose -d 'Enable debug logging'",
		}},
	}

	for _, tt := range tests {
		t.Run(tt.shell, func(t *testing.T) {
			var buf bytes.Buffer
			if err := GenerateCompletion(&buf, tt.shell, algos); err != nil {
				t.Fatalf("GenerateCompletion: %v", err)
			}
			for _, s := range tt.contains {
				if !strings.Contains(buf.String(), s) {
					t.Errorf("%s script should contain %q:\n%s", tt.shell, s, buf.String())
				}
			}
		})
	}
}

func TestGenerateCompletion_Unsupported(t *testing.T) {
	err := GenerateCompletion(&bytes.Buffer{}, "tcsh", nil)
	if err == nil || !strings.Contains(err.Error(), "unsupported shell") {
		t.Errorf("expected unsupported shell error, got %v", err)
	}
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("disk full") }

func TestGenerateCompletion_WriteError(t *testing.T) {
	err := GenerateCompletion(failingWriter{}, "bash", nil)
	if err == nil || !strings.Contains(err.Error(), "disk full") {
		t.Errorf("expected write error, got %v", err)
	}
}
