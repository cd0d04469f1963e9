package logging

import (
	"bytes"
	"encoding/json"
	"errors"
	"log"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"
)

var (
	_ Logger = (*ZerologAdapter)(nil)
	_ Logger = (*StdLoggerAdapter)(nil)
)

func TestFields(t *testing.T) {
	boom := errors.New("boom")
	tests := []struct {
		name      string
		field     Field
		wantKey   string
		wantValue any
	}{
		{"String", String("algorithm", "naive"), "algorithm", "naive"},
		{"Int", Int("n", 92), "n", 92},
		{"Uint64", Uint64("bytes", 1<<40), "bytes", uint64(1 << 40)},
		{"Float64", Float64("value", 15.5), "value", 15.5},
		{"Bool", Bool("quiet", true), "quiet", true},
		{"Err", Err(boom), "error", boom},
		{"Err nil", Err(nil), "error", nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.field.Key != tt.wantKey || tt.field.Value != tt.wantValue {
				t.Errorf("got %+v, want {%s %v}", tt.field, tt.wantKey, tt.wantValue)
			}
		})
	}
}

// decode parses the single JSON entry written by a ZerologAdapter.
func decode(t *testing.T, buf *bytes.Buffer) map[string]any {
	t.Helper()
	var entry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("invalid log entry %q: %v", buf.String(), err)
	}
	return entry
}

func TestZerologAdapter(t *testing.T) {
	t.Run("Info carries component and typed fields", func(t *testing.T) {
		var buf bytes.Buffer
		NewLogger(&buf, "utilkit").Info("calculation finished",
			String("algorithm", "memo"), Int("n", 40), Bool("quiet", false), Float64("value", 2.5))

		entry := decode(t, &buf)
		want := map[string]any{
			"level":     "info",
			"message":   "calculation finished",
			"component": "utilkit",
			"algorithm": "memo",
			"n":         float64(40),
			"quiet":     false,
			"value":     2.5,
		}
		for k, v := range want {
			if entry[k] != v {
				t.Errorf("%s = %v, want %v", k, entry[k], v)
			}
		}
	})

	t.Run("Error records the cause", func(t *testing.T) {
		var buf bytes.Buffer
		NewLogger(&buf, "utilkit").Error("calculation failed", errors.New("context deadline exceeded"), String("algorithm", "naive"))

		entry := decode(t, &buf)
		if entry["level"] != "error" || entry["error"] != "context deadline exceeded" || entry["algorithm"] != "naive" {
			t.Errorf("unexpected entry %v", entry)
		}
	})

	t.Run("Debug respects the level", func(t *testing.T) {
		var buf bytes.Buffer
		NewZerologAdapter(zerolog.New(&buf).Level(zerolog.InfoLevel)).Debug("hidden")
		if buf.Len() != 0 {
			t.Errorf("debug entry should be filtered, got %q", buf.String())
		}
		NewZerologAdapter(zerolog.New(&buf).Level(zerolog.DebugLevel)).Debug("shown")
		if entry := decode(t, &buf); entry["message"] != "shown" {
			t.Errorf("unexpected entry %v", entry)
		}
	})

	t.Run("Printf and Println log at info", func(t *testing.T) {
		var buf bytes.Buffer
		NewLogger(&buf, "utilkit").Printf("F(%d) = %d", 10, 55)
		if entry := decode(t, &buf); entry["message"] != "F(10) = 55" {
			t.Errorf("Printf message = %v", entry["message"])
		}

		buf.Reset()
		NewLogger(&buf, "utilkit").Println("accumulator", 15)
		if entry := decode(t, &buf); entry["message"] != "accumulator 15" {
			t.Errorf("Println message = %v", entry["message"])
		}
	})

	t.Run("other value types", func(t *testing.T) {
		var buf bytes.Buffer
		NewLogger(&buf, "utilkit").Info("mixed",
			Field{Key: "elapsed", Value: 1500 * time.Millisecond},
			Field{Key: "cause", Value: errors.New("oops")},
			Field{Key: "big", Value: int64(1) << 62},
			Field{Key: "algos", Value: []string{"iter", "memo"}},
		)
		out := buf.String()
		for _, want := range []string{`"elapsed":1500`, `"cause":"oops"`, `"big":4611686018427387904`, `"algos":["iter","memo"]`} {
			if !strings.Contains(out, want) {
				t.Errorf("output %s should contain %s", out, want)
			}
		}
	})

	if NewDefaultLogger() == nil {
		t.Error("NewDefaultLogger returned nil")
	}
}

func TestNewConsoleLogger(t *testing.T) {
	tests := []struct {
		verbose   bool
		wantDebug bool
	}{
		{verbose: false, wantDebug: false},
		{verbose: true, wantDebug: true},
	}
	for _, tt := range tests {
		var buf bytes.Buffer
		logger := NewConsoleLogger(&buf, "utilkit", tt.verbose, true)
		logger.Debug("running sections", Bool("greet", true))
		logger.Info("greeted", String("name", "World"))

		out := buf.String()
		if got := strings.Contains(out, "running sections"); got != tt.wantDebug {
			t.Errorf("verbose=%v: debug entry present = %v", tt.verbose, got)
		}
		if !strings.Contains(out, "greeted") || !strings.Contains(out, "World") {
			t.Errorf("verbose=%v: info entry missing:\n%s", tt.verbose, out)
		}
		if strings.Contains(out, "\x1b[") {
			t.Errorf("noColor logger wrote escape codes: %q", out)
		}
	}
}

func TestStdLoggerAdapter(t *testing.T) {
	tests := []struct {
		name string
		log  func(Logger)
		want string
	}{
		{"Info", func(l Logger) { l.Info("greeted", String("name", "Ada")) }, "[INFO] greeted name=Ada\n"},
		{"Error", func(l Logger) { l.Error("add failed", errors.New("not a number"), String("input", "x")) }, "[ERROR] add failed: not a number input=x\n"},
		{"Debug", func(l Logger) { l.Debug("repl command", Int("args", 1)) }, "[DEBUG] repl command args=1\n"},
		{"Printf", func(l Logger) { l.Printf("value is %d", 15) }, "value is 15\n"},
		{"Println", func(l Logger) { l.Println("a", "b") }, "a b\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			tt.log(NewStdLoggerAdapter(log.New(&buf, "", 0)))
			if buf.String() != tt.want {
				t.Errorf("got %q, want %q", buf.String(), tt.want)
			}
		})
	}
}
