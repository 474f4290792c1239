// internal/system/damage.go
package system

import (
	"log/slog"

	"elemental-defense/internal/component"
	"elemental-defense/internal/defs"
	"elemental-defense/internal/entity"
	"elemental-defense/internal/event"
	"elemental-defense/internal/types"
	"elemental-defense/internal/utils"
)

// DamageSystem применяет запросы урона к здоровью с учетом стата
// получаемого урона того же типа.
type DamageSystem struct {
	ecs             *entity.ECS
	queues          *event.Queues
	rules           *InteractionSystem
	eventDispatcher *event.Dispatcher
	rng             utils.RandSource
}

func NewDamageSystem(ecs *entity.ECS, queues *event.Queues, rules *InteractionSystem, eventDispatcher *event.Dispatcher, rng utils.RandSource) *DamageSystem {
	return &DamageSystem{
		ecs:             ecs,
		queues:          queues,
		rules:           rules,
		eventDispatcher: eventDispatcher,
		rng:             rng,
	}
}

// Update обрабатывает все накопленные запросы. Запросы, добавленные во время
// обработки, ждут следующего тика.
func (s *DamageSystem) Update() {
	for _, req := range s.queues.Damage.Drain() {
		if !s.ecs.IsLiveEnemy(req.Target) {
			slog.Debug("damage for missing target dropped", "target", req.Target, "type", req.DamageType)
			continue
		}
		if req.DamageType == defs.DamageLightning && s.rules != nil {
			s.rules.OnLightningDamage(req)
		}
		s.resolve(req)
	}
}

func (s *DamageSystem) resolve(req event.TryDamageToEnemy) {
	if _, ok := s.ecs.Healths[req.Target]; !ok {
		return
	}
	amount := utils.Range(s.rng, req.DamageRange[0], req.DamageRange[1]) *
		defs.DamageMultiplier(req.Strength) *
		s.ecs.Stats[req.Target].Value(component.StatDamageTaken(req.DamageType), 1)
	ApplyDamage(s.ecs, s.eventDispatcher, req.Target, amount, req.DamageType)
}

// ApplyDamage наносит урон врагу и сообщает о смерти ровно один раз.
func ApplyDamage(ecs *entity.ECS, dispatcher *event.Dispatcher, target types.EntityID, amount float64, damageType defs.DamageType) {
	health, ok := ecs.Healths[target]
	enemy, isEnemy := ecs.Enemies[target]
	if !ok || !isEnemy || enemy.Dead {
		return
	}
	health.Value -= amount

	data := event.DamageDealtData{Target: target, Amount: amount, Type: damageType}
	if pos, ok := ecs.Positions[target]; ok {
		data.X, data.Y = pos.X, pos.Y
	}
	dispatcher.Dispatch(event.Event{Type: event.DamageDealt, Data: data})

	if health.Value <= 0 {
		health.Value = 0
		enemy.Dead = true
		dispatcher.Dispatch(event.Event{Type: event.EnemyKilled, Data: event.EnemyKilledData{Enemy: target, Bounty: enemy.Bounty}})
	}
}
