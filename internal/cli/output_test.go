package cli

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/agbru/utilkit/internal/config"
	"github.com/agbru/utilkit/internal/fibonacci"
	"github.com/agbru/utilkit/internal/orchestration"
	"github.com/agbru/utilkit/internal/sysmon"
)

func TestDisplayAccumulator(t *testing.T) {
	tests := []struct {
		name    string
		initial float64
		addends []float64
		final   float64
		quiet   bool
		want    string
	}{
		{"demo", 10, []float64{5}, 15, false, "Accumulator: 10 + 5 = 15\n"},
		{"no addends", 3, nil, 3, false, "Accumulator: 3 = 3\n"},
		{"fractions", 0.5, []float64{1.25, -2}, -0.25, false, "Accumulator: 0.5 + 1.25 + -2 = -0.25\n"},
		{"quiet", 10, []float64{5}, 15, true, "15\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			DisplayAccumulator(&buf, tt.initial, tt.addends, tt.final, tt.quiet)
			if buf.String() != tt.want {
				t.Errorf("got %q, want %q", buf.String(), tt.want)
			}
		})
	}
}

func TestDisplayGreeting(t *testing.T) {
	var buf bytes.Buffer
	if err := DisplayGreeting(&buf, "World"); err != nil {
		t.Fatal(err)
	}
	if buf.String() != "Hello from Python, World!\n" {
		t.Errorf("got %q", buf.String())
	}
}

func TestDisplayResult(t *testing.T) {
	tests := []struct {
		name     string
		result   int
		n        int
		contains []string
	}{
		{"small", 55, 10, []string{"F(10) = 55\n", "Algorithm: Iterative", "Time:"}},
		{"grouped", 7540113804746346429, 92, []string{"F(92) = 7540113804746346429 (7,540,113,804,746,346,429)\n"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			DisplayResult(tt.result, tt.n, time.Millisecond, "Iterative", &buf)
			out := buf.String()
			for _, s := range tt.contains {
				if !strings.Contains(out, s) {
					t.Errorf("output should contain %q:\n%s", s, out)
				}
			}
		})
	}
}

func TestDisplayQuietResult(t *testing.T) {
	var buf bytes.Buffer
	DisplayQuietResult(&buf, 832040)
	if buf.String() != "832040\n" {
		t.Errorf("got %q", buf.String())
	}
}

func TestPrintExecutionConfig(t *testing.T) {
	originalSample := sampleHost
	defer func() { sampleHost = originalSample }()
	sampleHost = func() sysmon.Snapshot {
		return sysmon.Snapshot{CPUPercent: 3, MemPercent: 50, MemTotal: 8 << 30}
	}

	var buf bytes.Buffer
	PrintExecutionConfig(config.AppConfig{N: 30, Timeout: time.Minute}, &buf)
	out := buf.String()
	for _, s := range []string{"Execution Configuration", "F(30)", "1m0s", "logical processors", "Host load: CPU 3.0%, memory 50.0% of 8.0 GiB."} {
		if !strings.Contains(out, s) {
			t.Errorf("output should contain %q:\n%s", s, out)
		}
	}
}

func TestPrintExecutionMode(t *testing.T) {
	factory := fibonacci.NewDefaultFactory()

	tests := []struct {
		name string
		keys []string
		want string
	}{
		{"single", []string{fibonacci.AlgoMemo}, "Single calculation with the Memoized Recursion (O(n)) algorithm"},
		{"comparison", factory.List(), "Parallel comparison of 3 algorithms"},
		{"none", nil, "No algorithm selected"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var calcs []orchestration.Selection
			for _, k := range tt.keys {
				calcs = append(calcs, orchestration.Selection{Key: k, Calculator: factory.MustGet(k)})
			}
			var buf bytes.Buffer
			PrintExecutionMode(calcs, &buf)
			if !strings.Contains(buf.String(), tt.want) {
				t.Errorf("output should contain %q:\n%s", tt.want, buf.String())
			}
		})
	}
}
