// internal/app/bootstrap.go
package app

import (
	"fmt"
	"log/slog"
	"time"

	"elemental-defense/internal/config"
	"elemental-defense/internal/defs"
	"elemental-defense/internal/level"
)

// Bootstrap applies the settings that live outside a single game: tower
// overrides and the level. It fails fast on a tower table the simulation
// cannot run.
func Bootstrap(settings config.Settings) (*level.Level, Options, error) {
	if settings.TowersFile != "" {
		if err := defs.LoadTowerDefinitions(settings.TowersFile); err != nil {
			return nil, Options{}, err
		}
	}
	if err := defs.ValidateTowers(); err != nil {
		return nil, Options{}, fmt.Errorf("tower table: %w", err)
	}

	lvl := level.Default(config.CellSize)
	if settings.LevelFile != "" {
		var err error
		if lvl, err = level.Load(settings.LevelFile, config.CellSize); err != nil {
			return nil, Options{}, err
		}
	}

	opts := Options{
		Seed:           settings.Seed,
		StartingMoney:  settings.StartingMoney,
		StartingHealth: settings.StartingHealth,
	}
	if opts.Seed == 0 {
		opts.Seed = time.Now().UnixNano()
	}
	slog.Info("world ready", "seed", opts.Seed, "route", len(lvl.Route), "money", opts.StartingMoney, "health", opts.StartingHealth)
	return lvl, opts, nil
}
