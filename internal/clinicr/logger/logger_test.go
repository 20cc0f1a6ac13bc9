package logger

import (
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want zapcore.Level
	}{
		{"debug", zapcore.DebugLevel},
		{"info", zapcore.InfoLevel},
		{"warn", zapcore.WarnLevel},
		{"error", zapcore.ErrorLevel},
		{"", zapcore.InfoLevel},
		{"verbose", zapcore.InfoLevel},
	}
	for _, tt := range tests {
		if got := parseLevel(tt.in); got != tt.want {
			t.Errorf("parseLevel(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestL_LazyInit(t *testing.T) {
	logger = nil
	if L() == nil {
		t.Fatal("L() = nil, want default logger")
	}
}

func TestInitLogger_Development(t *testing.T) {
	if err := InitLogger(LogConfig{Level: "debug", Development: true}); err != nil {
		t.Fatalf("InitLogger() error = %v", err)
	}
	if !L().Desugar().Core().Enabled(zapcore.DebugLevel) {
		t.Error("debug level not enabled after InitLogger(debug)")
	}
	Set(zap.NewNop())
}
