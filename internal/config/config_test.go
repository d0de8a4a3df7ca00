package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func isolate(t *testing.T) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	t.Chdir(t.TempDir())
}

func TestLoadEmbeddedDefault(t *testing.T) {
	isolate(t)

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg != Default() {
		t.Errorf("embedded defaults drifted from Default():\n%+v\n%+v", cfg, Default())
	}
}

func TestLoadCustomPath(t *testing.T) {
	path, err := filepath.Abs(filepath.Join("testdata", "custom.yaml"))
	if err != nil {
		t.Fatal(err)
	}
	isolate(t)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load(%s) failed: %v", path, err)
	}

	if !cfg.Debug {
		t.Error("Debug = false, expected true")
	}
	if cfg.Levels.Set != "testdata/custom.skb" {
		t.Errorf("Levels.Set = %q", cfg.Levels.Set)
	}
	if cfg.Server.IdleTimeout != 90*time.Second {
		t.Errorf("IdleTimeout = %v, expected 90s", cfg.Server.IdleTimeout)
	}
	if cfg.Theme.Keeper != "red" {
		t.Errorf("Theme.Keeper = %q, expected red", cfg.Theme.Keeper)
	}
	// Unset keys keep their defaults.
	if cfg.Theme.Wall != Default().Theme.Wall || cfg.Server.Address != Default().Server.Address {
		t.Errorf("missing keys should fall back to defaults, got %+v", cfg)
	}
}

func TestLoadCustomPathErrors(t *testing.T) {
	if _, err := Load(filepath.Join("testdata", "absent.yaml")); err == nil {
		t.Error("Load() of a missing custom file should fail")
	}
	if _, err := Load(filepath.Join("testdata", "broken.yaml")); err == nil {
		t.Error("Load() of invalid yaml should fail")
	}
}

func TestLoadSearchOrder(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Chdir(t.TempDir())

	if err := os.MkdirAll("configs", 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join("configs", "sokoban.yaml"), []byte("levels:\n  set: local\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, _ := Load("")
	if cfg.Levels.Set != "local" {
		t.Errorf("Levels.Set = %q, expected local config", cfg.Levels.Set)
	}

	userDir := filepath.Join(home, ".sokoban")
	if err := os.MkdirAll(userDir, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(userDir, "config.yaml"), []byte("levels:\n  set: user\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, _ = Load("")
	if cfg.Levels.Set != "user" {
		t.Errorf("Levels.Set = %q, user config should win over local", cfg.Levels.Set)
	}
}

func TestApplyEnv(t *testing.T) {
	env := map[string]string{
		EnvDebug:       "true",
		EnvSet:         "debug",
		EnvDB:          "/data/results.db",
		EnvLogLevel:    "debug",
		EnvIdleTimeout: "not-a-duration",
		EnvAddress:     "",
	}
	lookup := func(k string) (string, bool) {
		v, ok := env[k]
		return v, ok
	}

	cfg := Default()
	applyEnv(&cfg, lookup)

	if !cfg.Debug || cfg.Levels.Set != "debug" || cfg.Storage.DBPath != "/data/results.db" || cfg.Logging.Level != "debug" {
		t.Errorf("overrides not applied: %+v", cfg)
	}
	if cfg.Server.IdleTimeout != Default().Server.IdleTimeout {
		t.Error("invalid durations should be ignored")
	}
	if cfg.Server.Address != Default().Server.Address {
		t.Error("empty values should be ignored")
	}
}

func TestLoadEnv(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".env")
	if err := os.WriteFile(path, []byte(EnvSet+"=from-dotenv\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	t.Setenv(EnvSet, "")
	os.Unsetenv(EnvSet)

	if err := LoadEnv(path); err != nil {
		t.Fatalf("LoadEnv() failed: %v", err)
	}
	if got := os.Getenv(EnvSet); got != "from-dotenv" {
		t.Errorf("%s = %q, expected from-dotenv", EnvSet, got)
	}

	if err := LoadEnv(filepath.Join(dir, "missing.env")); err != nil {
		t.Errorf("LoadEnv() of a missing file should be ignored, got %v", err)
	}
}
