package system

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"elemental-defense/internal/config"
	"elemental-defense/internal/defs"
	"elemental-defense/internal/entity"
	"elemental-defense/internal/event"
)

func TestVisualsCountTransitionsOnce(t *testing.T) {
	h := newHarness(fixedRand(0.99))
	visuals := NewVisualEffectSystem(h.ecs, h.dispatcher)
	e := h.spawn(0, 0)

	h.give(e, defs.StatusWet, 1)
	h.give(e, defs.StatusWet, 2) // refresh
	assert.Equal(t, 1, visuals.Applied[defs.StatusWet])

	h.statuses.Tick(100)
	h.rules.OnRemovals()
	assert.Equal(t, 1, visuals.Removed[defs.StatusWet])
}

func TestDamageNumbersRiseAndExpire(t *testing.T) {
	h := newHarness(fixedRand(0))
	visuals := NewVisualEffectSystem(h.ecs, h.dispatcher)
	e := h.spawn(50, 50)

	h.queues.Damage.Push(event.TryDamageToEnemy{Target: e, DamageRange: [2]float64{4, 4}, DamageType: defs.DamagePhysical, Strength: 3})
	h.damage.Update()

	require.Len(t, h.ecs.Texts, 1)
	assert.Contains(t, h.ecs.DamageFlashes, e)
	ids := entity.SortedIDs(h.ecs.Texts)
	assert.Equal(t, "8", h.ecs.Texts[ids[0]].Text)

	visuals.Update(config.DamageTextDuration / 2)
	assert.InDelta(t, 50-config.DamageTextRise/2, h.ecs.Positions[ids[0]].Y, 1e-9)
	assert.NotContains(t, h.ecs.DamageFlashes, e)

	visuals.Update(config.DamageTextDuration)
	assert.Empty(t, h.ecs.Texts)
}
