package defs

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStrengthTables(t *testing.T) {
	tests := []struct {
		strength int
		duration float64
		damage   float64
	}{
		{strength: 0, duration: 0, damage: 0},
		{strength: 1, duration: 1, damage: 0.67},
		{strength: 2, duration: 1.67, damage: 1.25},
		{strength: 3, duration: 2.5, damage: 2.0},
		{strength: 4, duration: 3, damage: 2.67},
		{strength: 5, duration: 4, damage: 4},
		{strength: 6, duration: 4, damage: 4},
		{strength: 100, duration: 4, damage: 4},
		{strength: -1, duration: 0, damage: 0},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.duration, DurationMultiplier(tt.strength), "duration tier %d", tt.strength)
		assert.Equal(t, tt.damage, DamageMultiplier(tt.strength), "damage tier %d", tt.strength)
	}
}

func TestStrengthTablesMonotonic(t *testing.T) {
	for a := 0; a < 10; a++ {
		for b := a + 1; b <= 10; b++ {
			assert.LessOrEqual(t, DurationMultiplier(a), DurationMultiplier(b))
			assert.LessOrEqual(t, DamageMultiplier(a), DamageMultiplier(b))
		}
	}
}

func TestStatusCatalog(t *testing.T) {
	kinds := AllStatusKinds()
	require.Len(t, kinds, 8)
	for _, k := range kinds {
		def := StatusDef(k)
		assert.NotEmpty(t, def.Name, "kind %d", k)
		assert.Positive(t, def.BaseDuration, def.Name)
		assert.NotZero(t, def.Color.A, def.Name)

		parsed, err := ParseStatusKind(def.Name)
		require.NoError(t, err)
		assert.Equal(t, k, parsed)
	}

	assert.False(t, StatusKind(StatusKindCount).Valid())
	assert.Equal(t, StatusDefinition{}, StatusDef(StatusKind(200)))
}

func TestDuration(t *testing.T) {
	assert.InDelta(t, 4.0*1.67, Duration(StatusWet, 2), 1e-9)
	assert.Zero(t, Duration(StatusWet, 0))
}

func TestLiquidStatus(t *testing.T) {
	k, ok := LiquidStatus(LiquidOil)
	require.True(t, ok)
	assert.Equal(t, StatusOiled, k)

	_, ok = LiquidStatus(LiquidType(99))
	assert.False(t, ok)
}
