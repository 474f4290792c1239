// internal/system/stat.go
package system

import "elemental-defense/internal/entity"

// StatSystem сбрасывает вклады в статы в начале тика и пересчитывает
// измененные статы, когда все модификаторы отработали.
type StatSystem struct {
	ecs *entity.ECS
}

func NewStatSystem(ecs *entity.ECS) *StatSystem {
	return &StatSystem{ecs: ecs}
}

func (s *StatSystem) Reset() {
	for _, stats := range s.ecs.Stats {
		for _, stat := range stats {
			stat.Reset()
		}
	}
}

func (s *StatSystem) Recalculate() {
	for _, stats := range s.ecs.Stats {
		for _, stat := range stats {
			stat.Recalculate()
		}
	}
}
