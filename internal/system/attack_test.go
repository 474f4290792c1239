package system

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"elemental-defense/internal/defs"
	"elemental-defense/internal/event"
)

func TestEntireCellHitsEveryEnemyInZone(t *testing.T) {
	h := newHarness(fixedRand(0.99))
	attack := NewAttackSystem(h.ecs, h.world, h.queues, fixedRand(0.99))
	tower := h.tower(defs.TowerFlamethrower, 100, 100)
	a := h.spawn(95, 100)
	b := h.spawn(110, 100)
	h.spawn(200, 100)
	h.collision.Sync()

	h.queues.Fired.Push(event.TowerFiredData{Tower: tower})
	attack.Update()

	damage := h.queues.Damage.Drain()
	require.Len(t, damage, 2)
	assert.Equal(t, a, damage[0].Target)
	assert.Equal(t, b, damage[1].Target)
	assert.Equal(t, defs.DamageBurning, damage[0].DamageType)
	assert.Equal(t, [2]float64{4, 6}, damage[0].DamageRange)
	assert.Equal(t, 1, damage[0].Strength)

	apply := h.queues.Apply.Drain()
	require.Len(t, apply, 2)
	assert.Equal(t, event.TryApplyStatus{Kind: defs.StatusBurned, Target: a, Strength: 1}, apply[0])
}

func TestTeslaEmitsOneLightningRequest(t *testing.T) {
	h := newHarness(fixedRand(0.99))
	attack := NewAttackSystem(h.ecs, h.world, h.queues, fixedRand(0.99))
	tower := h.tower(defs.TowerTesla, 100, 100)
	e := h.spawn(100, 100)
	h.collision.Sync()

	h.queues.Fired.Push(event.TowerFiredData{Tower: tower})
	attack.Update()

	damage := h.queues.Damage.Drain()
	require.Len(t, damage, 1)
	assert.Equal(t, event.TryDamageToEnemy{Target: e, DamageRange: [2]float64{8, 12}, DamageType: defs.DamageLightning, Strength: 1}, damage[0])
	assert.Zero(t, h.queues.Apply.Len())
}

func TestPushKnocksAwayFromTower(t *testing.T) {
	h := newHarness(fixedRand(0.99))
	attack := NewAttackSystem(h.ecs, h.world, h.queues, fixedRand(0.99))
	tower := h.tower(defs.TowerFan, 100, 100)
	e := h.spawn(110, 100)
	h.collision.Sync()

	h.queues.Fired.Push(event.TowerFiredData{Tower: tower})
	attack.Update()

	imp, ok := h.ecs.Impulses[e]
	require.True(t, ok)
	assert.Greater(t, imp.VX, 0.0)
	assert.InDelta(t, 0, imp.VY, 1e-9)
	assert.Zero(t, h.queues.Damage.Len(), "fans only push")
}

func TestFiredForMissingTowerIsDropped(t *testing.T) {
	h := newHarness(fixedRand(0.99))
	attack := NewAttackSystem(h.ecs, h.world, h.queues, fixedRand(0.99))

	h.queues.Fired.Push(event.TowerFiredData{Tower: 77})
	require.NotPanics(t, attack.Update)
	assert.Zero(t, h.queues.Damage.Len())
	assert.Zero(t, h.queues.Fired.Len())
}

func TestDripperSpawnsDroplet(t *testing.T) {
	h := newHarness(fixedRand(0.99))
	attack := NewAttackSystem(h.ecs, h.world, h.queues, fixedRand(0.99))
	tower := h.tower(defs.TowerOilDripper, 45, 45)

	h.queues.Fired.Push(event.TowerFiredData{Tower: tower})
	attack.Update()

	require.Len(t, h.ecs.Droplets, 1)
	for id, drop := range h.ecs.Droplets {
		assert.Equal(t, defs.LiquidOil, drop.Liquid)
		assert.Equal(t, 2, drop.Strength)
		assert.Equal(t, 45.0, h.ecs.Positions[id].Y)
	}
}

func TestTrapDoorOpensOnLuckyRoll(t *testing.T) {
	tests := []struct {
		roll float64
		open bool
	}{
		{roll: 0.1, open: true},
		{roll: 0.5, open: false},
		{roll: 0.9, open: false},
	}
	for _, tt := range tests {
		h := newHarness(fixedRand(tt.roll))
		attack := NewAttackSystem(h.ecs, h.world, h.queues, fixedRand(tt.roll))
		tower := h.tower(defs.TowerTrapDoor, 45, 45)

		h.queues.Fired.Push(event.TowerFiredData{Tower: tower})
		attack.Update()
		assert.Equal(t, tt.open, h.ecs.TrapDoors[tower].Open, "roll %v", tt.roll)
	}
}
