// internal/app/simulate.go
package app

import (
	"context"
	"errors"

	"elemental-defense/internal/config"
	"elemental-defense/internal/defs"
	"elemental-defense/internal/event"
	"elemental-defense/pkg/grid"
)

// Result summarises one headless run.
type Result struct {
	Seed     int64
	Waves    int
	Kills    int
	Leaks    int
	Money    int
	Towers   int
	Shots    int
	GameTime float64
	Over     bool
}

// AutoBuild spends the player's money on towers next to the route, cycling
// through tower kinds. It returns how many towers were placed.
func (g *Game) AutoBuild() int {
	placed := 0
	for _, kind := range defs.AllTowerKinds() {
		def, _ := defs.TowerDef(kind)
		if !g.ECS.Player.CanAfford(def.Price) {
			continue
		}
		for _, cell := range g.buildSites() {
			_, err := g.PlaceTower(kind, cell)
			if err == nil {
				placed++
				break
			}
			if errors.Is(err, ErrInsufficientFunds) {
				break
			}
		}
	}
	g.ECS.Flash = nil
	return placed
}

// buildSites lists the route cells followed by the cells above them.
func (g *Game) buildSites() []grid.Cell {
	sites := make([]grid.Cell, 0, 2*len(g.Level.Route))
	sites = append(sites, g.Level.Route...)
	for _, c := range g.Level.Route {
		sites = append(sites, c.Add(grid.Up))
	}
	return sites
}

// Simulate runs a seeded game with automatic building until the game is over
// or maxTime seconds of game time have passed.
func Simulate(ctx context.Context, g *Game, seed int64, maxTime float64) (Result, error) {
	// rebuild after every finished wave
	g.EventDispatcher.Subscribe(event.WaveEnded, event.ListenerFunc(func(event.Event) { g.AutoBuild() }))
	g.AutoBuild()

	const dt = 1.0 / config.TicksPerSecond
	for tick := 0; g.GameTime() < maxTime && !g.IsOver(); tick++ {
		if tick%config.TicksPerSecond == 0 {
			if err := ctx.Err(); err != nil {
				return g.result(seed), err
			}
		}
		g.Update(dt)
	}
	return g.result(seed), nil
}

func (g *Game) result(seed int64) Result {
	return Result{
		Seed:     seed,
		Waves:    g.ECS.GameState.Wave,
		Kills:    g.ECS.Player.Kills,
		Leaks:    g.ECS.Player.Leaks,
		Money:    g.ECS.Player.Money,
		Towers:   len(g.ECS.Towers),
		Shots:    g.VisualEffectSystem.Shots,
		GameTime: g.GameTime(),
		Over:     g.IsOver(),
	}
}
