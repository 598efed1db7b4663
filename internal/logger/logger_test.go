package logger

import (
	"os"
	"path/filepath"
	"testing"

	"go.uber.org/zap/zapcore"
)

func TestParseLevel(t *testing.T) {
	cases := map[string]zapcore.Level{
		"debug":   zapcore.DebugLevel,
		"warn":    zapcore.WarnLevel,
		"error":   zapcore.ErrorLevel,
		"info":    zapcore.InfoLevel,
		"unknown": zapcore.InfoLevel,
		"":        zapcore.InfoLevel,
	}
	for in, want := range cases {
		if got := parseLevel(in); got != want {
			t.Errorf("parseLevel(%q) = %v, want %v", in, got, want)
		}
	}
}

func TestInit_NoFile(t *testing.T) {
	if err := Init("debug", ""); err != nil {
		t.Fatalf("Init() error: %v", err)
	}
	if Log == nil {
		t.Fatal("Log is nil after Init")
	}
	Debug("debug message")
	Info("info message")
	Sync()
}

func TestInit_WithFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "test.log")

	if err := Init("info", path); err != nil {
		t.Fatalf("Init() error: %v", err)
	}
	Info("written to file")
	Sync()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading log file: %v", err)
	}
	if len(data) == 0 {
		t.Error("log file is empty after logging")
	}
}

func TestLog_UsableBeforeInit(t *testing.T) {
	// The package-level logger must never be nil.
	Error("no-op before init")
}
