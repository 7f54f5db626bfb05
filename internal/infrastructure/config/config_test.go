package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/ichscheine/goAIME-sub001/internal/sessiontimer"
)

func TestLoad_ReadsEnvironment(t *testing.T) {
	t.Setenv("SERVER_ADDRESS", ":9090")
	t.Setenv("SHUTDOWN_TIMEOUT", "3s")
	t.Setenv("DATABASE_PATH", ":memory:")
	t.Setenv("TIMER_STORE_DIR", "")
	t.Setenv("TICK_INTERVAL", "250ms")
	t.Setenv("LOG_LEVEL", "debug")

	cfg := Load()

	if cfg.ServerAddress != ":9090" {
		t.Errorf("expected :9090, got %q", cfg.ServerAddress)
	}
	if cfg.ShutdownTimeout != 3*time.Second {
		t.Errorf("expected 3s, got %v", cfg.ShutdownTimeout)
	}
	if cfg.DatabasePath != ":memory:" {
		t.Errorf("expected :memory:, got %q", cfg.DatabasePath)
	}
	if cfg.TickInterval != 250*time.Millisecond {
		t.Errorf("expected 250ms, got %v", cfg.TickInterval)
	}
	if cfg.LogLevel != slog.LevelDebug {
		t.Errorf("expected debug level, got %v", cfg.LogLevel)
	}
}

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("SERVER_ADDRESS", ":8080")
	t.Setenv("SHUTDOWN_TIMEOUT", "10s")
	t.Setenv("DATABASE_PATH", "")
	t.Setenv("TICK_INTERVAL", "")
	t.Setenv("LOG_LEVEL", "")

	cfg := Load()

	if cfg.DatabasePath != "goaime.db" {
		t.Errorf("expected default database path, got %q", cfg.DatabasePath)
	}
	if cfg.TickInterval != 100*time.Millisecond {
		t.Errorf("expected 100ms tick, got %v", cfg.TickInterval)
	}
	if cfg.LogLevel != slog.LevelInfo {
		t.Errorf("expected info level, got %v", cfg.LogLevel)
	}
}

func TestLoadPresets_DefaultsWhenMissing(t *testing.T) {
	presets, err := LoadPresets(filepath.Join(t.TempDir(), "missing.toml"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	amc10, ok := presets.Lookup("AMC10")
	if !ok {
		t.Fatal("expected amc10 preset")
	}
	if amc10.Mode != sessiontimer.Countdown || amc10.Duration != 75*time.Minute {
		t.Errorf("unexpected amc10 preset %+v", amc10)
	}
}

func TestLoadPresets_MergesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "presets.toml")
	content := `
[presets.mathcounts]
mode = "countdown"
duration = "40m"

[presets.amc10]
mode = "countdown"
duration = "60m"
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write presets: %v", err)
	}

	presets, err := LoadPresets(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if p, _ := presets.Lookup("mathcounts"); p.Duration != 40*time.Minute {
		t.Errorf("expected mathcounts 40m, got %+v", p)
	}
	if p, _ := presets.Lookup("amc10"); p.Duration != time.Hour {
		t.Errorf("expected amc10 overridden to 60m, got %+v", p)
	}
	if _, ok := presets.Lookup("aime"); !ok {
		t.Error("expected defaults to be kept")
	}

	names := presets.Names()
	if names[0] != "aime" {
		t.Errorf("expected sorted names, got %v", names)
	}
}

func TestLoadPresets_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr string
	}{
		{"bad mode", "[presets.x]\nmode = \"hourglass\"\n", "unknown mode"},
		{"bad duration", "[presets.x]\nmode = \"countdown\"\nduration = \"soon\"\n", "invalid duration"},
		{"countdown without duration", "[presets.x]\nmode = \"countdown\"\n", "needs a duration"},
		{"bad toml", "[presets.x\n", "parse presets"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "presets.toml")
			os.WriteFile(path, []byte(tt.content), 0o644)

			_, err := LoadPresets(path)
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("expected error containing %q, got %v", tt.wantErr, err)
			}
		})
	}
}
