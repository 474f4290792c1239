// internal/system/status_effect.go
package system

import (
	"log/slog"

	"elemental-defense/internal/component"
	"elemental-defense/internal/defs"
	"elemental-defense/internal/entity"
	"elemental-defense/internal/event"
	"elemental-defense/internal/types"
)

// StatusEffectSystem управляет жизненным циклом статусов: вставка, обновление,
// отсчёт таймеров и снятие.
type StatusEffectSystem struct {
	ecs             *entity.ECS
	queues          *event.Queues
	eventDispatcher *event.Dispatcher
}

func NewStatusEffectSystem(ecs *entity.ECS, queues *event.Queues, eventDispatcher *event.Dispatcher) *StatusEffectSystem {
	return &StatusEffectSystem{ecs: ecs, queues: queues, eventDispatcher: eventDispatcher}
}

// Tick продвигает таймеры активных статусов. Истекшие экземпляры снимаются
// и попадают в очередь фазы снятия.
func (s *StatusEffectSystem) Tick(deltaTime float64) {
	for _, id := range entity.SortedIDs(s.ecs.StatusEffects) {
		effects := s.ecs.StatusEffects[id]
		for _, inst := range effects.Active() {
			inst.Remaining.Tick(deltaTime)
			if inst.Remaining.Finished() {
				s.Remove(id, inst.Kind, event.RemovalExpired)
			}
		}
	}
}

// Apply разбирает накопленные запросы, группируя их по виду статуса в порядке
// каталога; внутри вида побеждает последний запрос.
// Возвращает число вставленных или обновленных экземпляров.
func (s *StatusEffectSystem) Apply() int {
	requests := s.queues.Apply.Drain()
	if len(requests) == 0 {
		return 0
	}
	applied := 0
	for _, kind := range defs.AllStatusKinds() {
		def := defs.StatusDef(kind)
		for _, req := range requests {
			if req.Kind == kind && s.applyOne(def, req) {
				applied++
			}
		}
	}
	for _, req := range requests {
		if !req.Kind.Valid() {
			slog.Warn("status request for unknown kind dropped", "kind", req.Kind, "target", req.Target)
		}
	}
	return applied
}

func (s *StatusEffectSystem) applyOne(def defs.StatusDefinition, req event.TryApplyStatus) bool {
	if !s.ecs.IsLiveEnemy(req.Target) {
		slog.Debug("status request for missing target", "status", def.Name, "target", req.Target)
		return false
	}
	effects, ok := s.ecs.StatusEffects[req.Target]
	if !ok {
		effects = &component.StatusEffects{}
		s.ecs.StatusEffects[req.Target] = effects
	}
	strength := max(req.Strength, 0)
	refresh := effects.Set(component.StatusInstance{
		Kind:      req.Kind,
		Strength:  strength,
		Remaining: component.NewTimer(def.BaseDuration * defs.DurationMultiplier(strength)),
	})

	data := event.StatusAppliedData{Target: req.Target, Kind: req.Kind, Strength: strength, Refresh: refresh}
	s.queues.Applied.Push(data)
	s.eventDispatcher.Dispatch(event.Event{Type: event.StatusApplied, Data: data})
	return true
}

// Remove снимает статус досрочно или по истечении. Если статуса нет, ничего не делает.
func (s *StatusEffectSystem) Remove(target types.EntityID, kind defs.StatusKind, cause event.RemovalCause) bool {
	effects, ok := s.ecs.StatusEffects[target]
	if !ok {
		return false
	}
	inst, ok := effects.Remove(kind)
	if !ok {
		return false
	}
	s.queues.Removed.Push(event.StatusRemovedData{
		Target:   target,
		Kind:     kind,
		Strength: inst.Strength,
		Cause:    cause,
	})
	return true
}

// Request ставит применение статуса в очередь ближайшей фазы применения.
func (s *StatusEffectSystem) Request(kind defs.StatusKind, target types.EntityID, strength int) {
	s.queues.Apply.Push(event.TryApplyStatus{Kind: kind, Target: target, Strength: strength})
}
