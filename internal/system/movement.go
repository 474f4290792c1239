// internal/system/movement.go
package system

import (
	"math"

	"elemental-defense/internal/component"
	"elemental-defense/internal/config"
	"elemental-defense/internal/entity"
	"elemental-defense/internal/event"
	"elemental-defense/internal/utils"
)

// MovementSystem обновляет позиции врагов: движение по пути со скоростью из
// StatMoveSpeed плюс затухающий отброс.
type MovementSystem struct {
	ecs             *entity.ECS
	eventDispatcher *event.Dispatcher
}

func NewMovementSystem(ecs *entity.ECS, eventDispatcher *event.Dispatcher) *MovementSystem {
	return &MovementSystem{ecs: ecs, eventDispatcher: eventDispatcher}
}

func (s *MovementSystem) Update(deltaTime float64) {
	for _, id := range entity.SortedIDs(s.ecs.Enemies) {
		enemy := s.ecs.Enemies[id]
		pos, hasPos := s.ecs.Positions[id]
		if !hasPos || !s.ecs.IsLiveEnemy(id) {
			continue
		}

		if imp, ok := s.ecs.Impulses[id]; ok {
			pos.X += imp.VX * deltaTime
			pos.Y += imp.VY * deltaTime
			decay := math.Max(0, 1-config.KnockbackDamping*deltaTime)
			imp.VX *= decay
			imp.VY *= decay
			if math.Hypot(imp.VX, imp.VY) < 1 {
				delete(s.ecs.Impulses, id)
			}
		}

		path, hasPath := s.ecs.Paths[id]
		if !hasPath {
			continue
		}
		speed := math.Max(0, s.ecs.Stats[id].Value(component.StatMoveSpeed, 0))
		step := speed * deltaTime
		for step > 0 && !path.Done() {
			target := path.Points[path.CurrentIndex]
			before := component.Position{X: pos.X, Y: pos.Y}
			var arrived bool
			pos.X, pos.Y, arrived = utils.MoveTowards(pos.X, pos.Y, target.X, target.Y, step)
			if !arrived {
				break
			}
			step -= before.Dist(*pos)
			path.CurrentIndex++
		}

		if path.Done() {
			enemy.ReachedEnd = true
			s.eventDispatcher.Dispatch(event.Event{Type: event.EnemyEscaped, Data: event.EnemyEscapedData{Enemy: id}})
		}
	}
}
