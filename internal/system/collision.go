// internal/system/collision.go
package system

import (
	"elemental-defense/internal/defs"
	"elemental-defense/internal/entity"
	"elemental-defense/internal/physics"
	"elemental-defense/internal/types"
)

// OverlapQuery is the live trigger-zone query the attack systems depend on.
type OverlapQuery interface {
	Overlapping(sensor types.EntityID) []types.EntityID
}

// RadiusQuery finds bodies around a point, as of the last Sync.
type RadiusQuery interface {
	Within(x, y, radius float64) []types.EntityID
}

// CollisionSystem mirrors entity positions into the physics world and steps it.
// Enemies are bodies; tower trigger zones and puddles are sensors.
type CollisionSystem struct {
	ecs   *entity.ECS
	world *physics.World
}

func NewCollisionSystem(ecs *entity.ECS, world *physics.World) *CollisionSystem {
	return &CollisionSystem{ecs: ecs, world: world}
}

func (s *CollisionSystem) Update() {
	s.Sync()
	s.world.Step()
}

// Sync upserts every collider and drops the ones whose entity is gone.
func (s *CollisionSystem) Sync() {
	for id, enemy := range s.ecs.Enemies {
		pos, ok := s.ecs.Positions[id]
		if !ok || !s.ecs.IsLiveEnemy(id) {
			continue
		}
		s.world.Upsert(id, physics.Collider{Kind: physics.Body, X: pos.X, Y: pos.Y, Radius: enemy.Radius})
	}
	for id, tower := range s.ecs.Towers {
		pos, ok := s.ecs.Positions[id]
		if !ok {
			continue
		}
		def, _ := defs.TowerDef(tower.Kind)
		s.world.Upsert(id, physics.Collider{Kind: physics.Sensor, X: pos.X, Y: pos.Y, Radius: def.TriggerRadius})
	}
	for id, puddle := range s.ecs.Puddles {
		if pos, ok := s.ecs.Positions[id]; ok {
			s.world.Upsert(id, physics.Collider{Kind: physics.Sensor, X: pos.X, Y: pos.Y, Radius: puddle.Radius})
		}
	}
	for _, id := range s.world.IDs() {
		_, isTower := s.ecs.Towers[id]
		_, isPuddle := s.ecs.Puddles[id]
		if !isTower && !isPuddle && !s.ecs.IsLiveEnemy(id) {
			s.world.Remove(id)
		}
	}
}
