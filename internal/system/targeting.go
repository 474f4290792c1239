// internal/system/targeting.go
package system

import (
	"elemental-defense/internal/defs"
	"elemental-defense/internal/entity"
	"elemental-defense/internal/event"
	"elemental-defense/internal/physics"
	"elemental-defense/internal/types"
)

// ContactSource отдает контакты начала и конца, записанные последним шагом физики.
type ContactSource interface {
	OverlapQuery
	DrainContacts() []physics.Contact
}

// TargetingSystem следит за врагами в зоне срабатывания башен, отсчитывает
// перезарядку и запускает готовые башни.
type TargetingSystem struct {
	ecs             *entity.ECS
	world           ContactSource
	queues          *event.Queues
	eventDispatcher *event.Dispatcher
}

func NewTargetingSystem(ecs *entity.ECS, world ContactSource, queues *event.Queues, eventDispatcher *event.Dispatcher) *TargetingSystem {
	return &TargetingSystem{ecs: ecs, world: world, queues: queues, eventDispatcher: eventDispatcher}
}

func (s *TargetingSystem) Update(deltaTime float64) {
	for _, c := range s.world.DrainContacts() {
		if !c.Begin {
			continue
		}
		if state, ok := s.ecs.TowerStates[c.Sensor]; ok && s.ecs.IsLiveEnemy(c.Body) {
			state.Acquire()
		}
	}

	for _, id := range entity.SortedIDs(s.ecs.TowerStates) {
		state := s.ecs.TowerStates[id]
		tower, ok := s.ecs.Towers[id]
		if !ok {
			continue
		}

		// решает текущее пересечение: события контакта теряются, если враг
		// умер или исчез внутри зоны
		present := s.liveTargets(id)
		switch {
		case state.HasTargets && len(present) == 0:
			state.Release()
		case !state.HasTargets && len(present) > 0:
			state.Acquire()
		}

		state.TickCooldown(deltaTime)
		if !state.CanFire() {
			continue
		}
		def, _ := defs.TowerDef(tower.Kind)
		state.Fire(def.Cooldown)
		fired := event.TowerFiredData{Tower: id}
		s.queues.Fired.Push(fired)
		s.eventDispatcher.Dispatch(event.Event{Type: event.TowerFired, Data: fired})
	}
}

func (s *TargetingSystem) liveTargets(tower types.EntityID) []types.EntityID {
	return liveEnemies(s.ecs, s.world.Overlapping(tower))
}

func liveEnemies(ecs *entity.ECS, ids []types.EntityID) []types.EntityID {
	var out []types.EntityID
	for _, id := range ids {
		if ecs.IsLiveEnemy(id) {
			out = append(out, id)
		}
	}
	return out
}
