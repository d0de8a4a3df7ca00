// Package config provides YAML-based configuration loading for tui-sokoban,
// with .env and environment variable overrides.
package config

import "time"

// Config contains all runtime settings.
type Config struct {
	Debug   bool          `yaml:"debug"`
	Levels  LevelsConfig  `yaml:"levels"`
	Storage StorageConfig `yaml:"storage"`
	Logging LoggingConfig `yaml:"logging"`
	Server  ServerConfig  `yaml:"server"`
	Theme   ThemeConfig   `yaml:"theme"`
}

// LevelsConfig selects the map set to play.
type LevelsConfig struct {
	Set string `yaml:"set"` // registered set id or level file path
	Dir string `yaml:"dir"` // extra directory scanned by "sets"
}

// StorageConfig locates the results database.
type StorageConfig struct {
	DBPath string `yaml:"db_path"`
}

// LoggingConfig controls the log file. The terminal belongs to the UI,
// so logs never go to stdout.
type LoggingConfig struct {
	File  string `yaml:"file"`
	Level string `yaml:"level"` // debug, info, warn, error
}

// ServerConfig defines the SSH server.
type ServerConfig struct {
	Address     string        `yaml:"address"`
	HostKey     string        `yaml:"host_key"`
	IdleTimeout time.Duration `yaml:"idle_timeout"`
}

// ThemeConfig maps board tiles to palette color names.
type ThemeConfig struct {
	Wall           string `yaml:"wall"`
	Floor          string `yaml:"floor"`
	Crate          string `yaml:"crate"`
	Diamond        string `yaml:"diamond"`
	Keeper         string `yaml:"keeper"`
	CrateOnDiamond string `yaml:"crate_on_diamond"`
	HUD            string `yaml:"hud"`
}

// Default returns the hardcoded configuration used when no file is found
// and the embedded defaults cannot be decoded.
func Default() Config {
	return Config{
		Levels: LevelsConfig{
			Set: "classic",
		},
		Storage: StorageConfig{
			DBPath: "~/.sokoban/results.db",
		},
		Logging: LoggingConfig{
			File:  "~/.sokoban/sokoban.log",
			Level: "info",
		},
		Server: ServerConfig{
			Address:     "0.0.0.0:23235",
			HostKey:     ".ssh/sokoban_ed25519",
			IdleTimeout: 10 * time.Minute,
		},
		Theme: ThemeConfig{
			Wall:           "gray",
			Floor:          "default",
			Crate:          "orange",
			Diamond:        "bright_cyan",
			Keeper:         "bright_yellow",
			CrateOnDiamond: "bright_green",
			HUD:            "white",
		},
	}
}
