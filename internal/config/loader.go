package config

import (
	_ "embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

//go:embed defaults/sokoban.yaml
var defaultYAML []byte

// Load reads the configuration and applies environment overrides.
// Search order: customPath -> ~/.sokoban/config.yaml -> ./configs/sokoban.yaml -> embedded default
func Load(customPath string) (Config, error) {
	cfg, err := loadFile(customPath)
	if err != nil {
		return cfg, err
	}
	applyEnv(&cfg, os.LookupEnv)
	return cfg, nil
}

func loadFile(customPath string) (Config, error) {
	// Try custom path first
	if customPath != "" {
		cfg := Default()
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("config: failed to parse %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("config.yaml"); userCfgPath != "" {
		if cfg, ok := tryFile(userCfgPath); ok {
			return cfg, nil
		}
	}

	// Try local configs directory
	if cfg, ok := tryFile(filepath.Join("configs", "sokoban.yaml")); ok {
		return cfg, nil
	}

	// Use embedded default YAML
	cfg := Default()
	if err := yaml.Unmarshal(defaultYAML, &cfg); err != nil {
		return Default(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

func tryFile(path string) (Config, bool) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, false
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, false
	}
	return cfg, true
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".sokoban", filename)
}

// LoadEnv loads .env files into the process environment. With no arguments
// it reads ./.env. Missing files are not an error; variables that are
// already set are not overwritten.
func LoadEnv(files ...string) error {
	if err := godotenv.Load(files...); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("config: loading env file: %w", err)
	}
	return nil
}

// Environment variables that override file settings.
const (
	EnvDebug       = "SOKOBAN_DEBUG"
	EnvSet         = "SOKOBAN_SET"
	EnvLevelsDir   = "SOKOBAN_LEVELS_DIR"
	EnvDB          = "SOKOBAN_DB"
	EnvLogFile     = "SOKOBAN_LOG_FILE"
	EnvLogLevel    = "SOKOBAN_LOG_LEVEL"
	EnvAddress     = "SOKOBAN_ADDRESS"
	EnvHostKey     = "SOKOBAN_HOST_KEY"
	EnvIdleTimeout = "SOKOBAN_IDLE_TIMEOUT"
)

func applyEnv(cfg *Config, lookup func(string) (string, bool)) {
	str := func(key string, dst *string) {
		if v, ok := lookup(key); ok && v != "" {
			*dst = v
		}
	}

	if v, ok := lookup(EnvDebug); ok {
		if b, err := strconv.ParseBool(v); err == nil {
			cfg.Debug = b
		}
	}
	str(EnvSet, &cfg.Levels.Set)
	str(EnvLevelsDir, &cfg.Levels.Dir)
	str(EnvDB, &cfg.Storage.DBPath)
	str(EnvLogFile, &cfg.Logging.File)
	str(EnvLogLevel, &cfg.Logging.Level)
	str(EnvAddress, &cfg.Server.Address)
	str(EnvHostKey, &cfg.Server.HostKey)
	if v, ok := lookup(EnvIdleTimeout); ok {
		if d, err := time.ParseDuration(v); err == nil {
			cfg.Server.IdleTimeout = d
		}
	}
}
