// internal/system/interaction.go
package system

import (
	"log/slog"

	"elemental-defense/internal/config"
	"elemental-defense/internal/defs"
	"elemental-defense/internal/entity"
	"elemental-defense/internal/event"
	"elemental-defense/internal/types"
	"elemental-defense/internal/utils"
)

// InteractionSystem содержит правила сочетания стихий. Правила читают текущие
// слоты статусов и молча ничего не делают, если условие не выполнено.
type InteractionSystem struct {
	ecs             *entity.ECS
	queues          *event.Queues
	statuses        *StatusEffectSystem
	bodies          RadiusQuery
	eventDispatcher *event.Dispatcher
	rng             utils.RandSource
}

func NewInteractionSystem(ecs *entity.ECS, queues *event.Queues, statuses *StatusEffectSystem, bodies RadiusQuery, eventDispatcher *event.Dispatcher, rng utils.RandSource) *InteractionSystem {
	return &InteractionSystem{
		ecs:             ecs,
		queues:          queues,
		statuses:        statuses,
		bodies:          bodies,
		eventDispatcher: eventDispatcher,
		rng:             rng,
	}
}

// OnLightningDamage вызывается до применения удара молнии: масло вспыхивает,
// цель может получить электрошок, мокрая цель чаще.
func (s *InteractionSystem) OnLightningDamage(req event.TryDamageToEnemy) {
	if req.DamageType != defs.DamageLightning {
		return
	}
	effects, ok := s.ecs.StatusEffects[req.Target]
	if !ok || !s.ecs.IsLiveEnemy(req.Target) {
		return
	}

	if oiled, ok := effects.Get(defs.StatusOiled); ok {
		s.statuses.Request(defs.StatusIgnited, req.Target, oiled.Strength+req.Strength)
		s.statuses.Remove(req.Target, defs.StatusOiled, event.RemovalConsumed)
	}

	wetness := effects.Strength(defs.StatusWet)
	effective := req.Strength + wetness
	chance := defs.DamageMultiplier(effective+wetness) * config.ShockChanceFactor
	if utils.Chance(s.rng, chance) {
		s.statuses.Request(defs.StatusElectrocuted, req.Target, max(1, effective-1))
	}
}

// OnApplied разбирает события применения текущего прохода и запускает комбо.
// Комбо срабатывает только на новый статус, обновление его не запускает.
func (s *InteractionSystem) OnApplied() {
	for _, applied := range s.queues.Applied.Drain() {
		if applied.Refresh {
			continue
		}
		effects, ok := s.ecs.StatusEffects[applied.Target]
		if !ok {
			continue
		}
		switch applied.Kind {
		case defs.StatusBurned:
			oiled, hasOil := effects.Get(defs.StatusOiled)
			if !hasOil || !effects.Has(defs.StatusBurned) {
				continue
			}
			s.statuses.Request(defs.StatusIgnited, applied.Target, oiled.Strength+1)
			s.statuses.Remove(applied.Target, defs.StatusOiled, event.RemovalConsumed)
			s.statuses.Remove(applied.Target, defs.StatusBurned, event.RemovalConsumed)
		case defs.StatusChilled:
			// снимается только Wet, Chilled остается на цели
			if !effects.Has(defs.StatusWet) || !effects.Has(defs.StatusChilled) {
				continue
			}
			s.statuses.Request(defs.StatusFrozen, applied.Target, config.FrozenComboStrength)
			s.statuses.Remove(applied.Target, defs.StatusWet, event.RemovalConsumed)
		}
	}
}

// OnRemovals разбирает очередь снятий, оповещает отрисовку и пускает цепную
// молнию от истекшего электрошока. Цепные удары попадают в фазу урона
// следующего тика.
func (s *InteractionSystem) OnRemovals() {
	for _, removed := range s.queues.Removed.Drain() {
		s.eventDispatcher.Dispatch(event.Event{Type: event.StatusRemoved, Data: removed})
		if removed.Kind == defs.StatusElectrocuted {
			s.chainLightning(removed.Target, removed.Strength)
		}
	}
}

func (s *InteractionSystem) chainLightning(source types.EntityID, strength int) {
	origin, ok := s.ecs.Positions[source]
	if !ok {
		slog.Debug("chain lightning source has no position", "enemy", source)
		return
	}
	for _, id := range s.bodies.Within(origin.X, origin.Y, config.ChainLightningRadius) {
		if id == source || !s.ecs.IsLiveEnemy(id) {
			continue
		}
		s.queues.Damage.Push(event.TryDamageToEnemy{
			Target:      id,
			DamageRange: [2]float64{config.ChainLightningDamage, config.ChainLightningDamage},
			DamageType:  defs.DamageLightning,
			Strength:    strength,
		})
	}
}
