package component

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"elemental-defense/internal/defs"
)

func TestStatFormula(t *testing.T) {
	tests := []struct {
		name string
		base float64
		pre  []float64
		mult []float64
		post []float64
		want float64
	}{
		{name: "base only", base: 10, want: 10},
		{name: "empty multipliers are identity", base: 10, pre: []float64{2, 3}, post: []float64{1}, want: 16},
		{name: "full pipeline", base: 10, pre: []float64{5}, mult: []float64{2, 0.5, 3}, post: []float64{-4, 1}, want: 42},
		{name: "zero multiplier", base: 7, mult: []float64{0}, post: []float64{2}, want: 2},
		{name: "negative multiplier accepted", base: 4, mult: []float64{-1}, want: -4},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewStat(tt.base)
			s.Reset()
			for _, v := range tt.pre {
				s.AddPreFlat(v)
			}
			for _, v := range tt.mult {
				s.AddMultiplier(v)
			}
			for _, v := range tt.post {
				s.AddPostFlat(v)
			}
			s.Recalculate()
			assert.InDelta(t, tt.want, s.Value(), 1e-9)
		})
	}
}

func TestStatValueIsScheduledNotOnRead(t *testing.T) {
	s := NewStat(10)
	s.AddMultiplier(2)
	assert.Equal(t, 10.0, s.Value(), "value only changes on Recalculate")

	s.Recalculate()
	assert.Equal(t, 20.0, s.Value())
}

func TestStatResetDropsContributions(t *testing.T) {
	s := NewStat(10)
	s.AddMultiplier(0.5)
	s.Recalculate()
	require.Equal(t, 5.0, s.Value())

	s.Reset()
	assert.Equal(t, 10.0, s.Value())

	// Recalculate after a reset with no contributions is a no-op.
	s.Recalculate()
	assert.Equal(t, 10.0, s.Value())

	// Contributions do not accumulate across resets.
	s.AddMultiplier(0.5)
	s.Recalculate()
	assert.Equal(t, 5.0, s.Value())
}

func TestNewEnemyStats(t *testing.T) {
	def := defs.EnemyDefinition{Speed: 40, DamageTaken: map[defs.DamageType]float64{defs.DamageCold: 0.5}}
	stats := NewEnemyStats(def)

	assert.Equal(t, 40.0, stats.Value(StatMoveSpeed, 0))
	assert.Equal(t, 0.5, stats.Value(StatDamageTaken(defs.DamageCold), 0))
	assert.Equal(t, 1.0, stats.Value(StatDamageTaken(defs.DamagePhysical), 0))
	assert.Len(t, stats, 1+defs.DamageTypeCount)
	assert.Equal(t, 9.0, Stats{}.Value(StatMoveSpeed, 9))
}

func TestStatKeyString(t *testing.T) {
	assert.Equal(t, "move_speed", StatMoveSpeed.String())
	assert.Equal(t, "damage_taken(lightning)", StatDamageTaken(defs.DamageLightning).String())
}
