package config

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// EnvConfigPath overrides the settings file location.
const EnvConfigPath = "ELEMENTAL_CONFIG"

// DefaultConfigPath is used when EnvConfigPath is not set.
const DefaultConfigPath = "config/game.yaml"

// Settings holds runtime configuration loaded from YAML.
type Settings struct {
	Seed           int64  `yaml:"seed"` // 0 = time based
	LogLevel       string `yaml:"log_level"`
	TicksPerSecond int    `yaml:"ticks_per_second"`
	StartingMoney  int    `yaml:"starting_money"`
	StartingHealth int    `yaml:"starting_health"`
	TowersFile     string `yaml:"towers_file"` // optional tower overrides
	LevelFile      string `yaml:"level_file"`  // optional ASCII level
	PprofAddr      string `yaml:"pprof_addr"`  // empty disables the profiler
}

// DefaultSettings returns Settings with sensible defaults.
func DefaultSettings() Settings {
	return Settings{
		LogLevel:       "info",
		TicksPerSecond: TicksPerSecond,
		StartingMoney:  StartingMoney,
		StartingHealth: StartingHealth,
	}
}

// Load reads settings from a YAML file.
// If the file doesn't exist, returns defaults.
func Load(path string) (Settings, error) {
	cfg := DefaultSettings()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("validating config %s: %w", path, err)
	}
	return cfg, nil
}

// PathFromEnv returns the settings path honoring EnvConfigPath.
func PathFromEnv() string {
	if p := os.Getenv(EnvConfigPath); p != "" {
		return p
	}
	return DefaultConfigPath
}

// Validate rejects settings the simulation cannot run with.
func (s Settings) Validate() error {
	if s.TicksPerSecond <= 0 {
		return fmt.Errorf("ticks_per_second must be positive, got %d", s.TicksPerSecond)
	}
	if s.StartingHealth <= 0 {
		return fmt.Errorf("starting_health must be positive, got %d", s.StartingHealth)
	}
	if s.StartingMoney < 0 {
		return fmt.Errorf("starting_money must not be negative, got %d", s.StartingMoney)
	}
	return nil
}

// SlogLevel maps LogLevel to a slog level, defaulting to Info.
func (s Settings) SlogLevel() slog.Level {
	switch strings.ToLower(s.LogLevel) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
