package app

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"elemental-defense/internal/config"
	"elemental-defense/internal/level"
)

func TestAutoBuildSpendsMoney(t *testing.T) {
	g := newTestGame(t, 0.5)
	placed := g.AutoBuild()

	assert.Positive(t, placed)
	assert.Len(t, g.ECS.Towers, placed)
	assert.Less(t, g.ECS.Player.Money, config.StartingMoney)
	assert.Nil(t, g.ECS.Flash)
}

func TestSimulateIsDeterministic(t *testing.T) {
	run := func() Result {
		opts := DefaultOptions()
		opts.Seed = 42
		g := NewGame(level.Default(config.CellSize), opts)
		res, err := Simulate(context.Background(), g, opts.Seed, 40)
		require.NoError(t, err)
		return res
	}
	first, second := run(), run()

	assert.Equal(t, first, second)
	assert.GreaterOrEqual(t, first.Waves, 1)
	assert.Positive(t, first.Towers)
	assert.Positive(t, first.Shots)
}

func TestSimulateStopsOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	g := NewGame(level.Default(config.CellSize), DefaultOptions())

	res, err := Simulate(ctx, g, 0, 1000)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Less(t, res.GameTime, 1.0)
}
