package config

import (
	"os"
	"path/filepath"
	"testing"
)

// clearEnv registers restores for the variables Load reads and removes them
// from the environment so defaults apply.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{EnvHost, EnvPort, EnvDebug, EnvAppName} {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)

	cfg := Load()
	if cfg.Host != DefaultHost {
		t.Errorf("expected default host %q, got %q", DefaultHost, cfg.Host)
	}
	if cfg.Port != DefaultPort {
		t.Errorf("expected default port %d, got %d", DefaultPort, cfg.Port)
	}
	if cfg.Debug != DefaultDebug {
		t.Errorf("expected default debug %t, got %t", DefaultDebug, cfg.Debug)
	}
	if cfg.AppName != DefaultAppName {
		t.Errorf("expected default app name %q, got %q", DefaultAppName, cfg.AppName)
	}
}

func TestLoadFromEnvironment(t *testing.T) {
	clearEnv(t)
	t.Setenv(EnvHost, "0.0.0.0")
	t.Setenv(EnvPort, "9100")
	t.Setenv(EnvDebug, "true")
	t.Setenv(EnvAppName, "FinanceAI Dev")

	cfg := Load()
	if cfg.Host != "0.0.0.0" {
		t.Errorf("host: expected 0.0.0.0, got %q", cfg.Host)
	}
	if cfg.Port != 9100 {
		t.Errorf("port: expected 9100, got %d", cfg.Port)
	}
	if !cfg.Debug {
		t.Error("debug: expected true")
	}
	if cfg.AppName != "FinanceAI Dev" {
		t.Errorf("app name: expected FinanceAI Dev, got %q", cfg.AppName)
	}
}

func TestLoadMalformedValuesFallBack(t *testing.T) {
	testCases := []struct {
		name  string
		key   string
		value string
	}{
		{"port not a number", EnvPort, "eight-thousand"},
		{"port zero", EnvPort, "0"},
		{"port negative", EnvPort, "-1"},
		{"port too large", EnvPort, "65536"},
		{"debug not a bool", EnvDebug, "yes-please"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			clearEnv(t)
			t.Setenv(tc.key, tc.value)

			cfg := Load()
			if cfg.Port != DefaultPort {
				t.Errorf("port: expected default %d, got %d", DefaultPort, cfg.Port)
			}
			if cfg.Debug != DefaultDebug {
				t.Errorf("debug: expected default %t, got %t", DefaultDebug, cfg.Debug)
			}
		})
	}
}

func TestLoadBoolCoercion(t *testing.T) {
	testCases := []struct {
		value    string
		expected bool
	}{
		{"true", true},
		{"TRUE", true},
		{"1", true},
		{"t", true},
		{"false", false},
		{"0", false},
	}

	for _, tc := range testCases {
		clearEnv(t)
		t.Setenv(EnvDebug, tc.value)
		if cfg := Load(); cfg.Debug != tc.expected {
			t.Errorf("DEBUG=%q: expected %t, got %t", tc.value, tc.expected, cfg.Debug)
		}
	}
}

func TestLoadIdempotent(t *testing.T) {
	clearEnv(t)
	t.Setenv(EnvPort, "9100")
	t.Setenv(EnvDebug, "true")

	first := Load()
	second := Load()
	if *first != *second {
		t.Errorf("expected identical settings, got %+v and %+v", first, second)
	}
}

func TestLoadEnvFile(t *testing.T) {
	clearEnv(t)

	envFile := filepath.Join(t.TempDir(), ".env")
	content := "HOST=10.1.2.3\nPORT=9100\nDEBUG=true\n"
	if err := os.WriteFile(envFile, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write env file: %v", err)
	}

	LoadEnvFile(envFile)

	cfg := Load()
	if cfg.Host != "10.1.2.3" {
		t.Errorf("host: expected 10.1.2.3, got %q", cfg.Host)
	}
	if cfg.Port != 9100 {
		t.Errorf("port: expected 9100, got %d", cfg.Port)
	}
	if !cfg.Debug {
		t.Error("debug: expected true")
	}
}

func TestLoadEnvFileProcessEnvWins(t *testing.T) {
	clearEnv(t)
	t.Setenv(EnvPort, "9200")

	envFile := filepath.Join(t.TempDir(), ".env")
	if err := os.WriteFile(envFile, []byte("PORT=9100\n"), 0644); err != nil {
		t.Fatalf("failed to write env file: %v", err)
	}

	LoadEnvFile(envFile)

	if cfg := Load(); cfg.Port != 9200 {
		t.Errorf("expected process environment to win, got port %d", cfg.Port)
	}
}

func TestLoadEnvFileMissing(t *testing.T) {
	clearEnv(t)

	LoadEnvFile(filepath.Join(t.TempDir(), "does-not-exist.env"))

	if cfg := Load(); cfg.Port != DefaultPort {
		t.Errorf("expected default port %d, got %d", DefaultPort, cfg.Port)
	}
}
