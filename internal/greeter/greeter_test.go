package greeter

import (
	"bytes"
	"errors"
	"testing"
)

func TestFormat(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"World", "World", "Hello from Python, World!"},
		{"Empty name", "", "Hello from Python, !"},
		{"Name with spaces", "Ada Lovelace", "Hello from Python, Ada Lovelace!"},
		{"Format verbs are not interpreted", "%d%s", "Hello from Python, %d%s!"},
		{"Markup is not escaped", "<b>x</b>", "Hello from Python, <b>x</b>!"},
		{"Unicode", "世界", "Hello from Python, 世界!"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := Format(tt.input); got != tt.expected {
				t.Errorf("Format(%q) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}

func TestFprint(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	if err := Fprint(&buf, "World"); err != nil {
		t.Fatalf("Fprint returned error: %v", err)
	}
	if got, want := buf.String(), "Hello from Python, World!\n"; got != want {
		t.Errorf("Fprint wrote %q, want %q", got, want)
	}
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("disk full") }

func TestFprint_PropagatesWriteError(t *testing.T) {
	t.Parallel()
	if err := Fprint(failingWriter{}, "World"); err == nil {
		t.Error("Fprint should return the writer's error")
	}
}
