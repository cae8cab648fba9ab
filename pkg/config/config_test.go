package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

var allKeys = []string{
	"HAMGAP_ENV_FILE", "HAMGAP_SERVER_URL", "HAMGAP_USERNAME", "HAMGAP_LOCALE",
	"HAMGAP_LOG_FILE", "HAMGAP_LOG_LEVEL", "HAMGAP_DIAL_TIMEOUT", "HAMGAP_RECONNECT_MAX_DELAY",
}

func clearEnv() {
	for _, key := range allKeys {
		_ = os.Unsetenv(key)
	}
}

func writeEnvFile(t *testing.T, dir string, body string) string {
	t.Helper()
	path := filepath.Join(dir, "test.env")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("failed to write env file: %v", err)
	}
	return path
}

func TestLoadReadsExplicitEnvFile(t *testing.T) {
	clearEnv()

	envPath := writeEnvFile(t, t.TempDir(), `
HAMGAP_SERVER_URL=ws://chat.example.com/ws
HAMGAP_USERNAME=alice
HAMGAP_LOCALE=fa
HAMGAP_LOG_FILE=/var/log/hamgap.log
HAMGAP_LOG_LEVEL=debug
HAMGAP_DIAL_TIMEOUT=5
HAMGAP_RECONNECT_MAX_DELAY=60
`)
	t.Setenv("HAMGAP_ENV_FILE", envPath)

	cfg := Load()

	if cfg.ServerURL != "ws://chat.example.com/ws" {
		t.Fatalf("ServerURL = %q, want %q", cfg.ServerURL, "ws://chat.example.com/ws")
	}
	if cfg.Username != "alice" {
		t.Fatalf("Username = %q, want %q", cfg.Username, "alice")
	}
	if cfg.Locale != "fa" {
		t.Fatalf("Locale = %q, want %q", cfg.Locale, "fa")
	}
	if cfg.LogFile != "/var/log/hamgap.log" {
		t.Fatalf("LogFile = %q", cfg.LogFile)
	}
	if cfg.LogLevel != "debug" {
		t.Fatalf("LogLevel = %q, want %q", cfg.LogLevel, "debug")
	}
	if cfg.DialTimeout != 5*time.Second {
		t.Fatalf("DialTimeout = %s, want 5s", cfg.DialTimeout)
	}
	if cfg.ReconnectMaxDelay != 60*time.Second {
		t.Fatalf("ReconnectMaxDelay = %s, want 60s", cfg.ReconnectMaxDelay)
	}
}

func TestLoadEnvVarOverridesEnvFile(t *testing.T) {
	clearEnv()

	envPath := writeEnvFile(t, t.TempDir(), `
HAMGAP_SERVER_URL=ws://file.example.com
HAMGAP_USERNAME=file_user
`)
	t.Setenv("HAMGAP_ENV_FILE", envPath)
	t.Setenv("HAMGAP_USERNAME", "real_user")

	cfg := Load()

	if cfg.Username != "real_user" {
		t.Fatalf("Username = %q, want %q", cfg.Username, "real_user")
	}
	if cfg.ServerURL != "ws://file.example.com" {
		t.Fatalf("ServerURL = %q, want the file value", cfg.ServerURL)
	}
}

func TestLoadFallsBackToDefaultsWhenNoEnvFile(t *testing.T) {
	clearEnv()

	cfg := Load()

	if cfg.ServerURL != "ws://127.0.0.1:8080" {
		t.Fatalf("ServerURL = %q, want default", cfg.ServerURL)
	}
	if cfg.Username != "" {
		t.Fatalf("Username = %q, want empty", cfg.Username)
	}
	if cfg.Locale != "en" {
		t.Fatalf("Locale = %q, want %q", cfg.Locale, "en")
	}
	if cfg.LogFile != "hamgap.log" {
		t.Fatalf("LogFile = %q, want %q", cfg.LogFile, "hamgap.log")
	}
	if cfg.LogLevel != "info" {
		t.Fatalf("LogLevel = %q, want %q", cfg.LogLevel, "info")
	}
	if cfg.DialTimeout != 10*time.Second {
		t.Fatalf("DialTimeout = %s, want 10s", cfg.DialTimeout)
	}
	if cfg.ReconnectMaxDelay != 30*time.Second {
		t.Fatalf("ReconnectMaxDelay = %s, want 30s", cfg.ReconnectMaxDelay)
	}
}

func TestParseSecondsRejectsBadValues(t *testing.T) {
	clearEnv()

	tests := []struct {
		value string
		want  time.Duration
	}{
		{value: "abc", want: 10 * time.Second},
		{value: "-5", want: 10 * time.Second},
		{value: "0", want: 10 * time.Second},
		{value: "20", want: 20 * time.Second},
	}

	for _, tt := range tests {
		t.Setenv("HAMGAP_DIAL_TIMEOUT", tt.value)
		cfg := Load()
		if cfg.DialTimeout != tt.want {
			t.Fatalf("DialTimeout for %q = %s, want %s", tt.value, cfg.DialTimeout, tt.want)
		}
	}
}
