package telemetry

import (
	"testing"

	"github.com/rs/zerolog"
)

func TestNewLoggerLevel(t *testing.T) {
	tests := []struct {
		level string
		want  zerolog.Level
	}{
		{"trace", zerolog.TraceLevel},
		{"debug", zerolog.DebugLevel},
		{"info", zerolog.InfoLevel},
		{"warn", zerolog.WarnLevel},
		{"error", zerolog.ErrorLevel},
		{"fatal", zerolog.FatalLevel},
		{"bogus", zerolog.InfoLevel},
		{"", zerolog.InfoLevel},
	}

	for _, tt := range tests {
		l, err := NewLogger(LoggingConfig{Level: tt.level, Output: "stderr"})
		if err != nil {
			t.Fatalf("NewLogger(%q): %v", tt.level, err)
		}
		if got := l.Zerolog().GetLevel(); got != tt.want {
			t.Errorf("level %q parsed to %s, want %s", tt.level, got, tt.want)
		}
	}
}

func TestNewComponentLogger(t *testing.T) {
	l, err := NewLogger(DefaultLoggingConfig())
	if err != nil {
		t.Fatalf("NewLogger: %v", err)
	}

	child := l.NewComponentLogger("resolver")
	if child == l {
		t.Error("component logger should be a new logger")
	}
	if child.Zerolog().GetLevel() != l.Zerolog().GetLevel() {
		t.Error("component logger should inherit the parent level")
	}
}
