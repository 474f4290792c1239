// internal/entity/ecs.go
package entity

import (
	"maps"
	"slices"

	"elemental-defense/internal/component"
	"elemental-defense/internal/types"
)

type ECS struct {
	GameTime      float64
	NextID        types.EntityID
	Positions     map[types.EntityID]*component.Position
	Paths         map[types.EntityID]*component.Path
	Impulses      map[types.EntityID]*component.Impulse
	Healths       map[types.EntityID]*component.Health
	Enemies       map[types.EntityID]*component.Enemy
	Stats         map[types.EntityID]component.Stats
	StatusEffects map[types.EntityID]*component.StatusEffects
	Towers        map[types.EntityID]*component.Tower
	TowerStates   map[types.EntityID]*component.TowerState
	TrapDoors     map[types.EntityID]*component.TrapDoor
	Droplets      map[types.EntityID]*component.Droplet
	Puddles       map[types.EntityID]*component.Puddle
	Renderables   map[types.EntityID]*component.Renderable
	Texts         map[types.EntityID]*component.FloatingText
	DamageFlashes map[types.EntityID]*component.DamageFlash
	Player        *component.Player
	Flash         *component.FlashMessage
	Wave          *component.Wave
	GameState     *component.GameState
}

func NewECS() *ECS {
	return &ECS{
		NextID:        1,
		Positions:     make(map[types.EntityID]*component.Position),
		Paths:         make(map[types.EntityID]*component.Path),
		Impulses:      make(map[types.EntityID]*component.Impulse),
		Healths:       make(map[types.EntityID]*component.Health),
		Enemies:       make(map[types.EntityID]*component.Enemy),
		Stats:         make(map[types.EntityID]component.Stats),
		StatusEffects: make(map[types.EntityID]*component.StatusEffects),
		Towers:        make(map[types.EntityID]*component.Tower),
		TowerStates:   make(map[types.EntityID]*component.TowerState),
		TrapDoors:     make(map[types.EntityID]*component.TrapDoor),
		Droplets:      make(map[types.EntityID]*component.Droplet),
		Puddles:       make(map[types.EntityID]*component.Puddle),
		Renderables:   make(map[types.EntityID]*component.Renderable),
		Texts:         make(map[types.EntityID]*component.FloatingText),
		DamageFlashes: make(map[types.EntityID]*component.DamageFlash),
		Player:        &component.Player{},
		GameState:     &component.GameState{Phase: component.PhasePlaying},
	}
}

func (ecs *ECS) NewEntity() types.EntityID {
	id := ecs.NextID
	ecs.NextID++
	return id
}

// Despawn removes every component of an entity.
func (ecs *ECS) Despawn(id types.EntityID) {
	delete(ecs.Positions, id)
	delete(ecs.Paths, id)
	delete(ecs.Impulses, id)
	delete(ecs.Healths, id)
	delete(ecs.Enemies, id)
	delete(ecs.Stats, id)
	delete(ecs.StatusEffects, id)
	delete(ecs.Towers, id)
	delete(ecs.TowerStates, id)
	delete(ecs.TrapDoors, id)
	delete(ecs.Droplets, id)
	delete(ecs.Puddles, id)
	delete(ecs.Renderables, id)
	delete(ecs.Texts, id)
	delete(ecs.DamageFlashes, id)
}

// IsLiveEnemy reports whether id is an enemy that can still be hit.
func (ecs *ECS) IsLiveEnemy(id types.EntityID) bool {
	e, ok := ecs.Enemies[id]
	return ok && !e.Dead && !e.ReachedEnd
}

// SortedIDs returns the keys of a component map in ascending order.
// Systems iterate through it so a seeded run is reproducible.
func SortedIDs[V any](m map[types.EntityID]V) []types.EntityID {
	return slices.Sorted(maps.Keys(m))
}

// TowerAt returns the tower occupying a cell.
func (ecs *ECS) TowerAt(cellX, cellY int) (types.EntityID, bool) {
	for _, id := range SortedIDs(ecs.Towers) {
		t := ecs.Towers[id]
		if t.Cell.X == cellX && t.Cell.Y == cellY {
			return id, true
		}
	}
	return 0, false
}
