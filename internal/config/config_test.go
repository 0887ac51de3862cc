package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"VESTR_API_URL", "VESTR_API_TIMEOUT",
		"VESTR_REDIS_ADDR", "VESTR_REDIS_PASSWORD", "VESTR_REDIS_DB",
		"VESTR_SESSION_TTL", "VESTR_SESSION_PROFILE",
		"VESTR_LOG_LEVEL", "VESTR_LOG_FORMAT", "VESTR_LOCALE",
		"VESTR_QUESTION_CACHE_TTL",
	} {
		t.Setenv(key, "")
		_ = os.Unsetenv(key)
	}
	// Keep a developer's .env out of the test.
	chdir(t, t.TempDir())
}

func TestLoadDefaultsWhenFileMissing(t *testing.T) {
	clearEnv(t)

	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.API.URL != DefaultAPIURL {
		t.Errorf("API.URL = %q, want %q", cfg.API.URL, DefaultAPIURL)
	}
	if cfg.Log.Level != "info" || cfg.Log.Format != "text" {
		t.Errorf("Log = %+v, want info/text", cfg.Log)
	}
	if cfg.Redis.Addr != "" || cfg.Redis.Profile != "default" {
		t.Errorf("Redis = %+v, want memory defaults", cfg.Redis)
	}
}

func TestLoadYAMLThenEnvOverride(t *testing.T) {
	clearEnv(t)

	path := filepath.Join(t.TempDir(), "config.yaml")
	data := []byte("api:\n  url: http://yaml.example/api\n  timeout: 3s\nredis:\n  addr: localhost:6379\n  ttl: 1h\ncache:\n  ttl: \"0\"\nlog:\n  level: debug\n")
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	t.Setenv("VESTR_API_URL", "http://env.example/api")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.API.URL != "http://env.example/api" {
		t.Errorf("API.URL = %q, want env override", cfg.API.URL)
	}
	if cfg.API.Timeout != "3s" || cfg.Redis.Addr != "localhost:6379" || cfg.Log.Level != "debug" {
		t.Errorf("yaml values lost: %+v", cfg)
	}
	if got := TTLDuration(cfg.Redis.TTL, time.Minute); got != time.Hour {
		t.Errorf("TTLDuration = %v, want 1h", got)
	}
	if got := TTLDuration(cfg.Cache.TTL, time.Minute); got != 0 {
		t.Errorf("cache TTL = %v, want disabled", got)
	}
}

func TestLoadRejectsUnknownLogFormat(t *testing.T) {
	clearEnv(t)
	t.Setenv("VESTR_LOG_FORMAT", "xml")

	if _, err := Load(""); err == nil {
		t.Fatal("Load() should reject log format xml")
	}
}

func TestTTLDurationFallback(t *testing.T) {
	tests := []struct {
		raw  string
		want time.Duration
	}{
		{"", time.Minute},
		{"bogus", time.Minute},
		{"90s", 90 * time.Second},
		{"0", 0},
	}
	for _, tt := range tests {
		if got := TTLDuration(tt.raw, time.Minute); got != tt.want {
			t.Errorf("TTLDuration(%q) = %v, want %v", tt.raw, got, tt.want)
		}
	}
}

// chdir changes the working directory for the test and restores it on cleanup
// (equivalent of testing.T.Chdir, which needs Go 1.24).
func chdir(t *testing.T, dir string) {
	t.Helper()
	old, err := os.Getwd()
	if err != nil {
		t.Fatalf("Getwd: %v", err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("Chdir: %v", err)
	}
	t.Cleanup(func() { _ = os.Chdir(old) })
}
