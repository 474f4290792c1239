// internal/system/liquid.go
package system

import (
	"elemental-defense/internal/component"
	"elemental-defense/internal/config"
	"elemental-defense/internal/defs"
	"elemental-defense/internal/entity"
	"elemental-defense/internal/event"
	"elemental-defense/internal/types"
)

// SurfaceFinder answers where a falling droplet lands.
type SurfaceFinder interface {
	SurfaceBelow(x, y float64) (float64, bool)
}

// LiquidSystem drops droplets, lands them as puddles and soaks enemies
// standing in puddles.
type LiquidSystem struct {
	ecs    *entity.ECS
	level  SurfaceFinder
	world  OverlapQuery
	queues *event.Queues
}

func NewLiquidSystem(ecs *entity.ECS, level SurfaceFinder, world OverlapQuery, queues *event.Queues) *LiquidSystem {
	return &LiquidSystem{ecs: ecs, level: level, world: world, queues: queues}
}

func (s *LiquidSystem) Update(deltaTime float64) {
	for _, id := range entity.SortedIDs(s.ecs.Droplets) {
		s.fall(id, s.ecs.Droplets[id], deltaTime)
	}

	for _, id := range entity.SortedIDs(s.ecs.Puddles) {
		puddle := s.ecs.Puddles[id]
		status, ok := defs.LiquidStatus(puddle.Liquid)
		if !ok {
			continue
		}
		for _, target := range liveEnemies(s.ecs, s.world.Overlapping(id)) {
			s.queues.Apply.Push(event.TryApplyStatus{Kind: status, Target: target, Strength: puddle.Strength})
		}
	}
}

func (s *LiquidSystem) fall(id types.EntityID, drop *component.Droplet, deltaTime float64) {
	pos, ok := s.ecs.Positions[id]
	if !ok {
		s.ecs.Despawn(id)
		return
	}
	drop.Lifetime.Tick(deltaTime)
	if drop.Lifetime.Finished() {
		s.ecs.Despawn(id)
		return
	}

	surface, grounded := s.level.SurfaceBelow(pos.X, pos.Y)
	drop.VY += config.Gravity * deltaTime
	pos.Y += drop.VY * deltaTime
	if !grounded || pos.Y+config.DropletRadius < surface {
		return
	}

	// landed: the droplet entity becomes a puddle resting on the surface
	pos.Y = surface - 2
	delete(s.ecs.Droplets, id)
	s.ecs.Puddles[id] = &component.Puddle{
		Liquid:   drop.Liquid,
		Strength: drop.Strength,
		Radius:   config.PuddleRadius,
	}
	if r, ok := s.ecs.Renderables[id]; ok {
		r.Radius = config.PuddleRadius
		r.Color.A = config.PuddleAlpha
	}
}
