package logging

import (
	"bytes"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input    string
		expected log.Level
	}{
		{"debug", log.DebugLevel},
		{"INFO", log.InfoLevel},
		{" warn ", log.WarnLevel},
		{"error", log.ErrorLevel},
		{"", log.InfoLevel},
		{"verbose", log.InfoLevel},
	}

	for _, test := range tests {
		if got := ParseLevel(test.input); got != test.expected {
			t.Errorf("ParseLevel(%q) = %v, expected %v", test.input, got, test.expected)
		}
	}
}

func TestNew_WritesKeyValues(t *testing.T) {
	var buf bytes.Buffer
	logger := New(&buf, "info")

	logger.Info("file uploaded", "name", "doc.pdf")

	out := buf.String()
	if !strings.Contains(out, "file uploaded") {
		t.Errorf("Expected message in output, got %q", out)
	}
	if !strings.Contains(out, "doc.pdf") {
		t.Errorf("Expected key/value in output, got %q", out)
	}
	if !strings.Contains(out, Prefix) {
		t.Errorf("Expected prefix %q in output, got %q", Prefix, out)
	}
}

func TestNew_RespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := New(&buf, "warn")

	logger.Info("hidden")
	if buf.Len() != 0 {
		t.Errorf("Expected info to be filtered at warn level, got %q", buf.String())
	}

	logger.Warn("shown")
	if !strings.Contains(buf.String(), "shown") {
		t.Errorf("Expected warn record, got %q", buf.String())
	}
}

func TestOrDiscard(t *testing.T) {
	if OrDiscard(nil) == nil {
		t.Fatal("OrDiscard(nil) should return a usable logger")
	}

	logger := New(&bytes.Buffer{}, "info")
	if OrDiscard(logger) != logger {
		t.Error("OrDiscard should return the given logger unchanged")
	}
}
