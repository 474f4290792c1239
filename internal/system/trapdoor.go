// internal/system/trapdoor.go
package system

import (
	"elemental-defense/internal/defs"
	"elemental-defense/internal/entity"
	"elemental-defense/internal/event"
)

// TrapDoorSystem hurts enemies walking over an open trap door, once per
// enemy per opening, and closes the door when its timer runs out.
type TrapDoorSystem struct {
	ecs    *entity.ECS
	world  OverlapQuery
	queues *event.Queues
}

func NewTrapDoorSystem(ecs *entity.ECS, world OverlapQuery, queues *event.Queues) *TrapDoorSystem {
	return &TrapDoorSystem{ecs: ecs, world: world, queues: queues}
}

func (s *TrapDoorSystem) Update(deltaTime float64) {
	for _, id := range entity.SortedIDs(s.ecs.TrapDoors) {
		door := s.ecs.TrapDoors[id]
		if !door.Open {
			continue
		}
		tower, ok := s.ecs.Towers[id]
		if !ok {
			continue
		}
		def, _ := defs.TowerDef(tower.Kind)
		for _, target := range liveEnemies(s.ecs, s.world.Overlapping(id)) {
			if door.Dropped[target] {
				continue
			}
			door.Dropped[target] = true
			s.queues.Damage.Push(event.TryDamageToEnemy{
				Target:      target,
				DamageRange: def.DamageRange,
				DamageType:  defs.DamagePhysical,
				Strength:    def.Strength,
			})
		}

		door.Timer.Tick(deltaTime)
		if door.Timer.Finished() {
			door.Open = false
			door.Dropped = nil
		}
	}
}
