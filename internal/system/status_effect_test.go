package system

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"elemental-defense/internal/defs"
	"elemental-defense/internal/event"
)

func TestApplyLastRequestWins(t *testing.T) {
	h := newHarness(fixedRand(0.99))
	e := h.spawn(0, 0)

	h.statuses.Request(defs.StatusWet, e, 1)
	h.statuses.Request(defs.StatusWet, e, 3)
	assert.Equal(t, 2, h.statuses.Apply())

	inst, ok := h.status(e, defs.StatusWet)
	require.True(t, ok)
	assert.Equal(t, 3, inst.Strength)
	assert.InDelta(t, 4.0*2.5, inst.Remaining.Duration, 1e-9)
	assert.Equal(t, 1, h.ecs.StatusEffects[e].Len())
}

func TestRepeatedApplicationDoesNotStack(t *testing.T) {
	h := newHarness(fixedRand(0.99))
	e := h.spawn(0, 0)

	for i := 1; i <= 4; i++ {
		h.give(e, defs.StatusOiled, i)
		h.statuses.Tick(tick)
	}
	assert.Equal(t, 1, h.ecs.StatusEffects[e].Len())
	inst, ok := h.status(e, defs.StatusOiled)
	require.True(t, ok)
	assert.Equal(t, 4, inst.Strength)
	assert.Equal(t, 4, h.rec.count(event.StatusApplied))
}

func TestRefreshResetsTimer(t *testing.T) {
	h := newHarness(fixedRand(0.99))
	e := h.spawn(0, 0)

	h.give(e, defs.StatusChilled, 1)
	h.statuses.Tick(2.0)
	h.give(e, defs.StatusChilled, 1)

	inst, _ := h.status(e, defs.StatusChilled)
	assert.Equal(t, 0.0, inst.Remaining.Elapsed)
}

func TestZeroStrengthExpiresNextTick(t *testing.T) {
	h := newHarness(fixedRand(0.99))
	e := h.spawn(0, 0)

	h.give(e, defs.StatusIgnited, 0)
	inst, ok := h.status(e, defs.StatusIgnited)
	require.True(t, ok, "strength 0 is accepted")
	assert.Zero(t, inst.Remaining.Duration)

	h.statuses.Tick(tick)
	assert.False(t, h.ecs.StatusEffects[e].Has(defs.StatusIgnited))

	removed := h.queues.Removed.Drain()
	require.Len(t, removed, 1)
	assert.Equal(t, event.StatusRemovedData{Target: e, Kind: defs.StatusIgnited, Strength: 0, Cause: event.RemovalExpired}, removed[0])
}

func TestTickExpiresAfterDuration(t *testing.T) {
	h := newHarness(fixedRand(0.99))
	e := h.spawn(0, 0)

	h.give(e, defs.StatusWet, 1)
	h.statuses.Tick(3.9)
	assert.True(t, h.ecs.StatusEffects[e].Has(defs.StatusWet))
	assert.Zero(t, h.queues.Removed.Len())

	h.statuses.Tick(0.2)
	assert.False(t, h.ecs.StatusEffects[e].Has(defs.StatusWet))
	assert.Equal(t, 1, h.queues.Removed.Len())
}

func TestNegativeStrengthClampsToZero(t *testing.T) {
	h := newHarness(fixedRand(0.99))
	e := h.spawn(0, 0)

	h.give(e, defs.StatusWet, -3)
	inst, ok := h.status(e, defs.StatusWet)
	require.True(t, ok)
	assert.Equal(t, 0, inst.Strength)
}

func TestApplyDropsMissingAndDeadTargets(t *testing.T) {
	h := newHarness(fixedRand(0.99))
	dead := h.spawn(0, 0)
	h.ecs.Enemies[dead].Dead = true

	h.statuses.Request(defs.StatusWet, 999, 1)
	h.statuses.Request(defs.StatusWet, dead, 1)
	h.statuses.Request(defs.StatusKind(200), dead, 1)
	assert.Zero(t, h.statuses.Apply())
	assert.Zero(t, h.queues.Applied.Len())
	assert.False(t, h.ecs.StatusEffects[dead].Has(defs.StatusWet))
}

func TestApplyProcessesKindsInCatalogOrder(t *testing.T) {
	h := newHarness(fixedRand(0.99))
	e := h.spawn(0, 0)

	h.statuses.Request(defs.StatusOiled, e, 1)
	h.statuses.Request(defs.StatusChilled, e, 1)
	h.statuses.Request(defs.StatusWet, e, 1)
	h.statuses.Apply()

	applied := h.queues.Applied.Drain()
	require.Len(t, applied, 3)
	assert.Equal(t, defs.StatusWet, applied[0].Kind)
	assert.Equal(t, defs.StatusChilled, applied[1].Kind)
	assert.Equal(t, defs.StatusOiled, applied[2].Kind)
}

func TestForcedRemoval(t *testing.T) {
	h := newHarness(fixedRand(0.99))
	e := h.spawn(0, 0)
	h.give(e, defs.StatusAcidified, 2)

	assert.True(t, h.statuses.Remove(e, defs.StatusAcidified, event.RemovalConsumed))
	assert.False(t, h.statuses.Remove(e, defs.StatusAcidified, event.RemovalConsumed), "already gone")
	assert.False(t, h.statuses.Remove(999, defs.StatusWet, event.RemovalConsumed))

	removed := h.queues.Removed.Drain()
	require.Len(t, removed, 1)
	assert.Equal(t, 2, removed[0].Strength)
	assert.Equal(t, event.RemovalConsumed, removed[0].Cause)
}
