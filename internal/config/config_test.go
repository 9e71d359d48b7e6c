package config

import (
	"os"
	"path/filepath"
	"testing"
)

var envKeys = []string{
	"LOGPIE_CONFIG", "LOGPIE_LOG_LEVEL", "LOGPIE_DIR", "LOGPIE_FILE",
	"LOGPIE_MAX_SIZE", "LOGPIE_STDOUT", "LOGPIE_TIMEZONE",
	"LOGPIE_NAME", "LOGPIE_ENABLED",
}

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range envKeys {
		t.Setenv(key, "")
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if cfg != Default() {
		t.Fatalf("Load() = %+v, want defaults %+v", cfg, Default())
	}
	if cfg.Output.Dir != "logs" || cfg.Output.File != "logpie.log" {
		t.Errorf("unexpected default output %+v", cfg.Output)
	}
	if !cfg.Recorder.Enabled {
		t.Error("expected recorder enabled by default")
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("LOGPIE_LOG_LEVEL", "debug")
	t.Setenv("LOGPIE_DIR", "/var/log/app")
	t.Setenv("LOGPIE_MAX_SIZE", "1048576")
	t.Setenv("LOGPIE_STDOUT", "true")
	t.Setenv("LOGPIE_TIMEZONE", "local")
	t.Setenv("LOGPIE_ENABLED", "false")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if cfg.Log.Level != "debug" {
		t.Errorf("Log.Level = %q, want debug", cfg.Log.Level)
	}
	if cfg.Output.Dir != "/var/log/app" {
		t.Errorf("Output.Dir = %q", cfg.Output.Dir)
	}
	if cfg.Output.MaxSize != 1048576 {
		t.Errorf("Output.MaxSize = %d, want 1048576", cfg.Output.MaxSize)
	}
	if !cfg.Output.Stdout {
		t.Error("expected Output.Stdout = true")
	}
	if cfg.Output.Timezone != "local" {
		t.Errorf("Output.Timezone = %q, want local", cfg.Output.Timezone)
	}
	if cfg.Recorder.Enabled {
		t.Error("expected Recorder.Enabled = false")
	}
}

func TestLoad_MalformedEnvKeepsDefault(t *testing.T) {
	clearEnv(t)
	t.Setenv("LOGPIE_MAX_SIZE", "ten megs")
	t.Setenv("LOGPIE_ENABLED", "maybe")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if cfg.Output.MaxSize != 0 {
		t.Errorf("Output.MaxSize = %d, want 0", cfg.Output.MaxSize)
	}
	if !cfg.Recorder.Enabled {
		t.Error("expected Recorder.Enabled to keep default true")
	}
}

func TestLoad_YAMLFile(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "logpie.yaml")
	data := []byte(`
log:
  level: warn
output:
  dir: /tmp/logpie
  max_size: 2048
recorder:
  name: worker
`)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	t.Setenv("LOGPIE_CONFIG", path)
	t.Setenv("LOGPIE_DIR", "/srv/logs")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if cfg.Log.Level != "warn" {
		t.Errorf("Log.Level = %q, want warn", cfg.Log.Level)
	}
	if cfg.Output.MaxSize != 2048 {
		t.Errorf("Output.MaxSize = %d, want 2048", cfg.Output.MaxSize)
	}
	if cfg.Recorder.Name != "worker" {
		t.Errorf("Recorder.Name = %q, want worker", cfg.Recorder.Name)
	}
	// Keys absent from the file keep their defaults.
	if cfg.Output.File != "logpie.log" || !cfg.Recorder.Enabled {
		t.Errorf("defaults lost: %+v", cfg)
	}
	// Environment wins over the file.
	if cfg.Output.Dir != "/srv/logs" {
		t.Errorf("Output.Dir = %q, want /srv/logs", cfg.Output.Dir)
	}
}

func TestLoad_MissingFile(t *testing.T) {
	clearEnv(t)
	t.Setenv("LOGPIE_CONFIG", filepath.Join(t.TempDir(), "absent.yaml"))

	if _, err := Load(); err == nil {
		t.Fatal("expected error for missing config file")
	}
}

func TestLoad_InvalidYAML(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "bad.yaml")
	os.WriteFile(path, []byte("output: [unterminated"), 0o644)
	t.Setenv("LOGPIE_CONFIG", path)

	if _, err := Load(); err == nil {
		t.Fatal("expected parse error")
	}
}
