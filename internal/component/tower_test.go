package component

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTowerState_Lifecycle(t *testing.T) {
	s := NewTowerState()
	assert.Equal(t, TowerIdle, s.Current())
	assert.False(t, s.CanFire())

	s.Acquire()
	assert.Equal(t, TowerTargeting, s.Current())
	assert.True(t, s.CanFire())

	s.Fire(0.5)
	assert.Equal(t, TowerCooldown, s.Current())
	assert.False(t, s.CanFire())

	s.TickCooldown(0.3)
	assert.Equal(t, TowerCooldown, s.Current())

	s.TickCooldown(0.3)
	assert.Equal(t, TowerTargeting, s.Current(), "targets still present")
}

func TestTowerState_LosesTargetsDuringCooldown(t *testing.T) {
	s := NewTowerState()
	s.Acquire()
	s.Fire(0.1)

	s.Release()
	assert.Equal(t, TowerCooldown, s.Current(), "release does not cut the cooldown short")
	assert.False(t, s.HasTargets)

	s.TickCooldown(0.2)
	assert.Equal(t, TowerIdle, s.Current())
}

func TestTowerState_AcquireDuringCooldown(t *testing.T) {
	s := NewTowerState()
	s.Acquire()
	s.Fire(0.1)
	s.Release()
	s.Acquire()
	assert.Equal(t, TowerCooldown, s.Current())

	s.TickCooldown(0.1)
	assert.True(t, s.CanFire())
}

func TestTowerState_ZeroCooldownReadiesOnNextTick(t *testing.T) {
	s := NewTowerState()
	s.Acquire()
	s.Fire(0)
	assert.False(t, s.CanFire())
	s.TickCooldown(1.0 / 60)
	assert.True(t, s.CanFire())
}

func TestTowerState_IgnoresInvalidEvents(t *testing.T) {
	s := NewTowerState()
	s.Release()
	s.Fire(1)
	s.TickCooldown(1)
	assert.Equal(t, TowerIdle, s.Current())
}
