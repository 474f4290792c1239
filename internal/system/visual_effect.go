// internal/system/visual_effect.go
package system

import (
	"fmt"

	"elemental-defense/internal/component"
	"elemental-defense/internal/config"
	"elemental-defense/internal/defs"
	"elemental-defense/internal/entity"
	"elemental-defense/internal/event"
)

// VisualEffectSystem управляет визуальными эффектами: числа урона, вспышки,
// счётчики переходов статусов. Система только реагирует на события диспетчера.
type VisualEffectSystem struct {
	ecs *entity.ECS
	// Applied и Removed считают переходы статусов по видам; обновление переходом не считается.
	Applied [defs.StatusKindCount]int
	Removed [defs.StatusKindCount]int
	Shots   int
}

// NewVisualEffectSystem создает новую систему визуальных эффектов.
func NewVisualEffectSystem(ecs *entity.ECS, eventDispatcher *event.Dispatcher) *VisualEffectSystem {
	s := &VisualEffectSystem{ecs: ecs}
	eventDispatcher.Subscribe(event.DamageDealt, s)
	eventDispatcher.Subscribe(event.StatusApplied, s)
	eventDispatcher.Subscribe(event.StatusRemoved, s)
	eventDispatcher.Subscribe(event.TowerFired, s)
	return s
}

func (s *VisualEffectSystem) OnEvent(e event.Event) {
	switch data := e.Data.(type) {
	case event.DamageDealtData:
		s.spawnDamageText(data)
	case event.StatusAppliedData:
		if !data.Refresh && data.Kind.Valid() {
			s.Applied[data.Kind]++
		}
	case event.StatusRemovedData:
		if data.Kind.Valid() {
			s.Removed[data.Kind]++
		}
	case event.TowerFiredData:
		s.Shots++
	}
}

func (s *VisualEffectSystem) spawnDamageText(data event.DamageDealtData) {
	if data.Amount <= 0 {
		return
	}
	id := s.ecs.NewEntity()
	s.ecs.Positions[id] = &component.Position{X: data.X, Y: data.Y}
	s.ecs.Texts[id] = &component.FloatingText{
		Text:  fmt.Sprintf("%.0f", data.Amount),
		Color: config.DamageTextColor,
		Timer: component.NewTimer(config.DamageTextDuration),
	}
	if _, ok := s.ecs.Enemies[data.Target]; ok {
		s.ecs.DamageFlashes[data.Target] = &component.DamageFlash{Timer: component.NewTimer(config.DamageFlashDuration)}
	}
}

// Update обновляет все активные визуальные эффекты.
func (s *VisualEffectSystem) Update(deltaTime float64) {
	for id, flash := range s.ecs.DamageFlashes {
		flash.Timer.Tick(deltaTime)
		if flash.Timer.Finished() {
			delete(s.ecs.DamageFlashes, id)
		}
	}

	for id, text := range s.ecs.Texts {
		text.Timer.Tick(deltaTime)
		if text.Timer.Finished() {
			s.ecs.Despawn(id)
			continue
		}
		if pos, ok := s.ecs.Positions[id]; ok {
			pos.Y -= config.DamageTextRise * deltaTime / config.DamageTextDuration
		}
	}

	if flash := s.ecs.Flash; flash != nil {
		flash.Timer.Tick(deltaTime)
		if flash.Timer.Finished() {
			s.ecs.Flash = nil
		}
	}
}
