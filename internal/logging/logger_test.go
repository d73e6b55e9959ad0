package logging

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in      string
		want    zapcore.Level
		wantErr bool
	}{
		{"debug", zapcore.DebugLevel, false},
		{"info", zapcore.InfoLevel, false},
		{"warn", zapcore.WarnLevel, false},
		{"error", zapcore.ErrorLevel, false},
		{"verbose", zapcore.InfoLevel, true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseLevel(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseLevel(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParseLevel(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestNewSilentByDefault(t *testing.T) {
	t.Setenv(LogLevelEnvVar, "")

	l, err := New(Options{})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	if l.Core().Enabled(zapcore.ErrorLevel) {
		t.Error("logger should be a no-op when no level is configured")
	}
}

func TestNewFromEnv(t *testing.T) {
	t.Setenv(LogLevelEnvVar, "warn")

	l, err := New(Options{File: filepath.Join(t.TempDir(), "log.txt")})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	if l.Core().Enabled(zapcore.InfoLevel) {
		t.Error("info should be disabled at warn level")
	}
	if !l.Core().Enabled(zapcore.WarnLevel) {
		t.Error("warn should be enabled at warn level")
	}
}

func TestNewRejectsUnknownLevel(t *testing.T) {
	if _, err := New(Options{Level: "loud"}); err == nil {
		t.Error("New() should fail for an unknown level")
	}
}

func TestNewWritesToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "foodpicker.log")

	l, err := New(Options{Level: "debug", File: path, JSON: true})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	l.Info("hello", zap.String("food", "Oden"))
	_ = l.Sync()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), `"food":"Oden"`) {
		t.Errorf("log file missing field, got: %s", data)
	}
}

func TestLogTransition(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)

	LogTransition(zap.New(core), "pick", "idle", "showing", "Burger", false)

	entries := logs.All()
	if len(entries) != 1 {
		t.Fatalf("got %d entries, want 1", len(entries))
	}
	fields := entries[0].ContextMap()
	if fields["op"] != "pick" || fields["selected"] != "Burger" || fields["to"] != "showing" {
		t.Errorf("unexpected fields: %v", fields)
	}
}

func TestGlobalHelpers(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	prev := GetLogger()
	SetLogger(zap.New(core))
	t.Cleanup(func() { SetLogger(prev) })

	LogCatalogLoaded("built-in", 9)
	Debug("hidden")
	Error("failed")

	if logs.Len() != 2 {
		t.Fatalf("got %d entries, want 2", logs.Len())
	}
	if logs.All()[1].Level != zapcore.ErrorLevel {
		t.Errorf("second entry level = %v, want error", logs.All()[1].Level)
	}
	if logs.All()[0].ContextMap()["items"] != int64(9) {
		t.Errorf("items field = %v", logs.All()[0].ContextMap()["items"])
	}
}
