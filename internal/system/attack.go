// internal/system/attack.go
package system

import (
	"log/slog"

	"elemental-defense/internal/component"
	"elemental-defense/internal/config"
	"elemental-defense/internal/defs"
	"elemental-defense/internal/entity"
	"elemental-defense/internal/event"
	"elemental-defense/internal/types"
	"elemental-defense/internal/utils"
)

// AttackSystem dispatches fired towers by attack type.
type AttackSystem struct {
	ecs    *entity.ECS
	world  OverlapQuery
	queues *event.Queues
	rng    utils.RandSource
}

func NewAttackSystem(ecs *entity.ECS, world OverlapQuery, queues *event.Queues, rng utils.RandSource) *AttackSystem {
	return &AttackSystem{ecs: ecs, world: world, queues: queues, rng: rng}
}

func (s *AttackSystem) Update() {
	for _, fired := range s.queues.Fired.Drain() {
		tower, ok := s.ecs.Towers[fired.Tower]
		if !ok {
			slog.Warn("tower fired for missing tower", "tower", fired.Tower)
			continue
		}
		def, ok := defs.TowerDef(tower.Kind)
		if !ok {
			slog.Warn("tower fired with unknown kind", "tower", fired.Tower, "kind", tower.Kind)
			continue
		}

		switch def.Attack.Type {
		case defs.AttackEntireCell:
			s.hitEntireCell(fired.Tower, def)
		case defs.AttackDropsLiquid:
			s.dropLiquid(fired.Tower, def)
		case defs.AttackModifiesSelf:
			s.modifySelf(fired.Tower)
		default:
			slog.Warn("attack type has no behavior", "tower", fired.Tower, "attack", def.Attack.Type)
		}
	}
}

// hitEntireCell applies every effect to every enemy inside the trigger zone.
func (s *AttackSystem) hitEntireCell(towerID types.EntityID, def defs.TowerDefinition) {
	targets := liveEnemies(s.ecs, s.world.Overlapping(towerID))
	for _, target := range targets {
		for _, effect := range def.Attack.Effects {
			switch effect.Kind {
			case defs.EffectDamage:
				s.queues.Damage.Push(event.TryDamageToEnemy{
					Target:      target,
					DamageRange: def.DamageRange,
					DamageType:  effect.DamageType,
					Strength:    def.Strength,
				})
			case defs.EffectPush:
				s.push(towerID, target)
			case defs.EffectStatus:
				s.queues.Apply.Push(event.TryApplyStatus{Kind: effect.Status, Target: target, Strength: def.Strength})
			}
		}
	}
}

// push knocks the target away from the tower.
func (s *AttackSystem) push(towerID, target types.EntityID) {
	from, ok := s.ecs.Positions[towerID]
	to, ok2 := s.ecs.Positions[target]
	if !ok || !ok2 {
		return
	}
	dx, dy := utils.Normalize(to.X-from.X, to.Y-from.Y)
	if dx == 0 && dy == 0 {
		dx = 1
	}
	imp, ok := s.ecs.Impulses[target]
	if !ok {
		imp = &component.Impulse{}
		s.ecs.Impulses[target] = imp
	}
	imp.VX += dx * config.PushImpulse
	imp.VY += dy * config.PushImpulse
}

func (s *AttackSystem) dropLiquid(towerID types.EntityID, def defs.TowerDefinition) {
	pos, ok := s.ecs.Positions[towerID]
	if !ok {
		return
	}
	status, ok := defs.LiquidStatus(def.Attack.Liquid)
	if !ok {
		slog.Warn("liquid has no status", "tower", towerID, "liquid", def.Attack.Liquid)
		return
	}
	id := s.ecs.NewEntity()
	s.ecs.Positions[id] = &component.Position{X: pos.X, Y: pos.Y}
	s.ecs.Droplets[id] = &component.Droplet{
		Liquid:   def.Attack.Liquid,
		Strength: def.Strength,
		Lifetime: component.NewTimer(config.DropletLifetime),
	}
	s.ecs.Renderables[id] = &component.Renderable{
		Color:  defs.StatusDef(status).Color,
		Radius: config.DropletRadius,
	}
}

// modifySelf rolls whether a trap door opens.
func (s *AttackSystem) modifySelf(towerID types.EntityID) {
	door, ok := s.ecs.TrapDoors[towerID]
	if !ok {
		slog.Warn("self-modifying tower has no trap door", "tower", towerID)
		return
	}
	if door.Open || !utils.Chance(s.rng, config.TrapDoorOpenChance) {
		return
	}
	door.Open = true
	door.Timer = component.NewTimer(config.TrapDoorOpenDuration)
	door.Dropped = make(map[types.EntityID]bool)
}
