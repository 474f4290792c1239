// internal/system/status_modifier.go
package system

import (
	"elemental-defense/internal/component"
	"elemental-defense/internal/config"
	"elemental-defense/internal/defs"
	"elemental-defense/internal/entity"
	"elemental-defense/internal/event"
)

// StatusModifierSystem turns active statuses into stat contributions and
// damage-over-time pulses.
type StatusModifierSystem struct {
	ecs    *entity.ECS
	queues *event.Queues
}

func NewStatusModifierSystem(ecs *entity.ECS, queues *event.Queues) *StatusModifierSystem {
	return &StatusModifierSystem{ecs: ecs, queues: queues}
}

// Update runs between StatSystem.Reset and StatSystem.Recalculate.
func (s *StatusModifierSystem) Update() {
	for id, effects := range s.ecs.StatusEffects {
		stats, ok := s.ecs.Stats[id]
		if !ok {
			continue
		}
		for _, inst := range effects.Active() {
			def := defs.StatusDef(inst.Kind)
			if speed, ok := stats[component.StatMoveSpeed]; ok && def.SpeedMultiplier != 1 {
				speed.AddMultiplier(def.SpeedMultiplier)
			}
			for _, t := range defs.AllDamageTypes() {
				v, ok := def.Vulnerability[t]
				if !ok {
					continue
				}
				if taken, ok := stats[component.StatDamageTaken(t)]; ok {
					taken.AddMultiplier(v)
				}
			}
		}
	}
}

// Periodic queues one damage request per damaging status every StatusDamageInterval.
func (s *StatusModifierSystem) Periodic(deltaTime float64) {
	for _, id := range entity.SortedIDs(s.ecs.Enemies) {
		enemy := s.ecs.Enemies[id]
		if !s.ecs.IsLiveEnemy(id) {
			continue
		}
		var burning []*component.StatusInstance
		for _, inst := range s.ecs.StatusEffects[id].Active() {
			if defs.StatusDef(inst.Kind).DamagePerSecond > 0 {
				burning = append(burning, inst)
			}
		}
		if len(burning) == 0 {
			enemy.DotTimer = 0
			continue
		}
		enemy.DotTimer += deltaTime
		if enemy.DotTimer < config.StatusDamageInterval {
			continue
		}
		enemy.DotTimer -= config.StatusDamageInterval
		for _, inst := range burning {
			def := defs.StatusDef(inst.Kind)
			amount := def.DamagePerSecond * config.StatusDamageInterval
			s.queues.Damage.Push(event.TryDamageToEnemy{
				Target:      id,
				DamageRange: [2]float64{amount, amount},
				DamageType:  def.Element,
				Strength:    inst.Strength,
			})
		}
	}
}
