package logging

import (
	"bytes"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want log.Level
	}{
		{"debug", log.DebugLevel},
		{"info", log.InfoLevel},
		{"warn", log.WarnLevel},
		{"warning", log.WarnLevel},
		{"error", log.ErrorLevel},
		{"ERROR", log.ErrorLevel},
		{"", log.WarnLevel},
		{"verbose", log.WarnLevel},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			if got := ParseLevel(tt.in); got != tt.want {
				t.Errorf("ParseLevel(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestNewRespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	opts := DefaultOptions()
	opts.Level = log.WarnLevel
	logger := New(&buf, opts)

	logger.Info("quiet")
	logger.Warn("loud")

	out := buf.String()
	if strings.Contains(out, "quiet") {
		t.Error("info message should be suppressed at warn level")
	}
	if !strings.Contains(out, "loud") {
		t.Error("warn message should be written")
	}
}

func TestDiscardDropsEverything(t *testing.T) {
	// Must not panic or write anywhere.
	Discard().Error("nothing to see")
}
