package system

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"elemental-defense/internal/component"
	"elemental-defense/internal/defs"
	"elemental-defense/internal/event"
)

func TestDamageResistanceHalves(t *testing.T) {
	h := newHarness(fixedRand(0.5))
	plain := h.spawn(0, 0)
	resistant := h.spawn(100, 0)
	h.ecs.Stats[resistant][component.StatDamageTaken(defs.DamageCold)] = component.NewStat(0.5)

	h.queues.Damage.Push(
		event.TryDamageToEnemy{Target: plain, DamageRange: [2]float64{8, 12}, DamageType: defs.DamageCold, Strength: 2},
		event.TryDamageToEnemy{Target: resistant, DamageRange: [2]float64{8, 12}, DamageType: defs.DamageCold, Strength: 2},
	)
	h.damage.Update()

	lostPlain := h.ecs.Healths[plain].Max - h.ecs.Healths[plain].Value
	lostResistant := h.ecs.Healths[resistant].Max - h.ecs.Healths[resistant].Value
	assert.InDelta(t, 10*1.25, lostPlain, 1e-9)
	assert.InDelta(t, lostPlain/2, lostResistant, 1e-9)
}

func TestDamageUsesOnlyItsOwnType(t *testing.T) {
	h := newHarness(fixedRand(0))
	e := h.spawn(0, 0)
	h.ecs.Stats[e][component.StatDamageTaken(defs.DamageCold)] = component.NewStat(0)

	h.queues.Damage.Push(event.TryDamageToEnemy{Target: e, DamageRange: [2]float64{4, 4}, DamageType: defs.DamagePhysical, Strength: 3})
	h.damage.Update()
	assert.InDelta(t, 40-4*2.0, h.ecs.Healths[e].Value, 1e-9)
}

func TestVulnerabilityRaisesDamage(t *testing.T) {
	h := newHarness(fixedRand(0.99))
	e := h.spawn(0, 0)
	h.give(e, defs.StatusAcidified, 1)

	h.stats.Reset()
	h.modifiers.Update()
	h.stats.Recalculate()
	assert.InDelta(t, 1.5, h.ecs.Stats[e].Value(component.StatDamageTaken(defs.DamagePhysical), 0), 1e-9)

	h.queues.Damage.Push(event.TryDamageToEnemy{Target: e, DamageRange: [2]float64{10, 10}, DamageType: defs.DamagePhysical, Strength: 2})
	h.damage.Update()
	assert.InDelta(t, 40-10*1.25*1.5, h.ecs.Healths[e].Value, 1e-9)
}

func TestKillDispatchedOnce(t *testing.T) {
	h := newHarness(fixedRand(0))
	e := h.spawn(0, 0)

	hit := event.TryDamageToEnemy{Target: e, DamageRange: [2]float64{100, 100}, DamageType: defs.DamagePhysical, Strength: 1}
	h.queues.Damage.Push(hit, hit)
	h.damage.Update()
	h.queues.Damage.Push(hit)
	h.damage.Update()

	assert.True(t, h.ecs.Enemies[e].Dead)
	assert.Zero(t, h.ecs.Healths[e].Value)
	assert.Equal(t, 1, h.rec.count(event.EnemyKilled))
	assert.Equal(t, 1, h.rec.count(event.DamageDealt))

	for _, ev := range h.rec.events {
		if ev.Type == event.EnemyKilled {
			assert.Equal(t, 5, ev.Data.(event.EnemyKilledData).Bounty)
		}
	}
}

func TestDamageForMissingTargetIsDropped(t *testing.T) {
	h := newHarness(fixedRand(0))
	h.queues.Damage.Push(event.TryDamageToEnemy{Target: 42, DamageRange: [2]float64{1, 1}, DamageType: defs.DamageLightning, Strength: 1})
	require.NotPanics(t, h.damage.Update)
	assert.Empty(t, h.rec.events)
}

func TestDamageDealtCarriesPosition(t *testing.T) {
	h := newHarness(fixedRand(0))
	e := h.spawn(12, 34)
	h.queues.Damage.Push(event.TryDamageToEnemy{Target: e, DamageRange: [2]float64{2, 2}, DamageType: defs.DamageChemical, Strength: 2})
	h.damage.Update()

	require.Equal(t, 1, h.rec.count(event.DamageDealt))
	data := h.rec.events[0].Data.(event.DamageDealtData)
	assert.Equal(t, 12.0, data.X)
	assert.Equal(t, 34.0, data.Y)
	assert.Equal(t, defs.DamageChemical, data.Type)
	assert.InDelta(t, 2.5, data.Amount, 1e-9)
}
