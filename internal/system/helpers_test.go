package system

import (
	"elemental-defense/internal/component"
	"elemental-defense/internal/config"
	"elemental-defense/internal/defs"
	"elemental-defense/internal/entity"
	"elemental-defense/internal/event"
	"elemental-defense/internal/physics"
	"elemental-defense/internal/types"
	"elemental-defense/internal/utils"
	"elemental-defense/pkg/grid"
)

const tick = 1.0 / 60

// fixedRand returns the same roll every time.
type fixedRand float64

func (f fixedRand) Float64() float64 { return float64(f) }
func (f fixedRand) Intn(n int) int   { return int(float64(f) * float64(n)) }

type recorder struct {
	events []event.Event
}

func (r *recorder) OnEvent(e event.Event) { r.events = append(r.events, e) }

func (r *recorder) count(t event.EventType) int {
	n := 0
	for _, e := range r.events {
		if e.Type == t {
			n++
		}
	}
	return n
}

type harness struct {
	ecs        *entity.ECS
	queues     *event.Queues
	dispatcher *event.Dispatcher
	world      *physics.World
	stats      *StatSystem
	statuses   *StatusEffectSystem
	modifiers  *StatusModifierSystem
	rules      *InteractionSystem
	damage     *DamageSystem
	collision  *CollisionSystem
	rec        *recorder
}

func newHarness(rng utils.RandSource) *harness {
	h := &harness{
		ecs:        entity.NewECS(),
		queues:     event.NewQueues(),
		dispatcher: event.NewDispatcher(),
		world:      physics.NewWorld(),
		rec:        &recorder{},
	}
	h.stats = NewStatSystem(h.ecs)
	h.statuses = NewStatusEffectSystem(h.ecs, h.queues, h.dispatcher)
	h.modifiers = NewStatusModifierSystem(h.ecs, h.queues)
	h.rules = NewInteractionSystem(h.ecs, h.queues, h.statuses, h.world, h.dispatcher, rng)
	h.damage = NewDamageSystem(h.ecs, h.queues, h.rules, h.dispatcher, rng)
	h.collision = NewCollisionSystem(h.ecs, h.world)
	for _, t := range []event.EventType{
		event.StatusApplied, event.StatusRemoved, event.DamageDealt,
		event.EnemyKilled, event.EnemyEscaped, event.TowerFired,
	} {
		h.dispatcher.Subscribe(t, h.rec)
	}
	return h
}

// spawn places a crawler standing still at (x, y).
func (h *harness) spawn(x, y float64) types.EntityID {
	def, _ := defs.EnemyDef("ENEMY_CRAWLER")
	return SpawnEnemy(h.ecs, def, []component.Position{{X: x, Y: y}})
}

// give applies a status right away, as if requested last tick.
func (h *harness) give(target types.EntityID, kind defs.StatusKind, strength int) {
	h.statuses.Request(kind, target, strength)
	h.applyAll()
	h.queues.Removed.Drain()
}

// applyAll runs the apply phase the way the game loop does.
func (h *harness) applyAll() {
	for pass := 0; pass < config.MaxApplyPasses && h.queues.Apply.Len() > 0; pass++ {
		h.statuses.Apply()
		h.rules.OnApplied()
	}
}

func (h *harness) tower(kind defs.TowerKind, x, y float64) types.EntityID {
	id := h.ecs.NewEntity()
	h.ecs.Positions[id] = &component.Position{X: x, Y: y}
	h.ecs.Towers[id] = &component.Tower{Kind: kind, Cell: grid.PixelToCell(x, y, config.CellSize)}
	h.ecs.TowerStates[id] = component.NewTowerState()
	def, _ := defs.TowerDef(kind)
	if def.Attack.Type == defs.AttackModifiesSelf {
		h.ecs.TrapDoors[id] = &component.TrapDoor{}
	}
	return id
}

func (h *harness) status(target types.EntityID, kind defs.StatusKind) (*component.StatusInstance, bool) {
	return h.ecs.StatusEffects[target].Get(kind)
}
