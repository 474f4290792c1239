// internal/event/messages.go
package event

import (
	"elemental-defense/internal/defs"
	"elemental-defense/internal/types"
)

// TryApplyStatus asks the status pipeline to insert or refresh a status.
type TryApplyStatus struct {
	Kind     defs.StatusKind
	Target   types.EntityID
	Strength int
}

// TryDamageToEnemy asks the damage system to hurt an enemy.
type TryDamageToEnemy struct {
	Target      types.EntityID
	DamageRange [2]float64
	DamageType  defs.DamageType
	Strength    int
}

// RemovalCause tells why a status left an entity.
type RemovalCause uint8

const (
	RemovalExpired RemovalCause = iota
	RemovalConsumed
)

func (c RemovalCause) String() string {
	if c == RemovalConsumed {
		return "consumed"
	}
	return "expired"
}

// StatusRemovedData is queued whenever a status instance is detached.
type StatusRemovedData struct {
	Target   types.EntityID
	Kind     defs.StatusKind
	Strength int
	Cause    RemovalCause
}

// StatusAppliedData is queued for every successful insert or refresh.
type StatusAppliedData struct {
	Target   types.EntityID
	Kind     defs.StatusKind
	Strength int
	Refresh  bool
}

// TowerFiredData names the tower whose attack should be dispatched.
type TowerFiredData struct {
	Tower types.EntityID
}

// DamageDealtData is a resolved hit, used for damage numbers.
type DamageDealtData struct {
	Target types.EntityID
	Amount float64
	Type   defs.DamageType
	X, Y   float64
}

// EnemyKilledData carries the bounty of a killed enemy.
type EnemyKilledData struct {
	Enemy  types.EntityID
	Bounty int
}

type EnemyEscapedData struct {
	Enemy types.EntityID
}

type WaveData struct {
	Wave int
}

type TowerData struct {
	Tower types.EntityID
	Kind  defs.TowerKind
}
