// internal/app/game.go
package app

import (
	"elemental-defense/internal/component"
	"elemental-defense/internal/config"
	"elemental-defense/internal/entity"
	"elemental-defense/internal/event"
	"elemental-defense/internal/level"
	"elemental-defense/internal/physics"
	"elemental-defense/internal/system"
	"elemental-defense/internal/utils"
)

// Options configure a new game world.
type Options struct {
	Seed           int64
	StartingMoney  int
	StartingHealth int
	// Rng overrides the seeded generator; tests use it to force rolls.
	Rng utils.RandSource
}

// DefaultOptions returns the compile-time defaults.
func DefaultOptions() Options {
	return Options{StartingMoney: config.StartingMoney, StartingHealth: config.StartingHealth}
}

// Phase names one step of the fixed tick schedule.
type Phase string

const (
	PhaseStatReset   Phase = "stat.reset"
	PhaseStatusTick  Phase = "status.tick"
	PhaseModify      Phase = "status.modify"
	PhaseRecalculate Phase = "stat.recalculate"
	PhaseMovement    Phase = "movement"
	PhasePhysics     Phase = "physics"
	PhaseTargeting   Phase = "targeting"
	PhaseAttack      Phase = "attack"
	PhaseLiquids     Phase = "liquids"
	PhasePeriodic    Phase = "status.periodic"
	PhaseDamage      Phase = "damage"
	PhaseStatusApply Phase = "status.apply"
	PhaseRemovals    Phase = "status.removals"
	PhaseCleanup     Phase = "cleanup"
)

// Game holds the main game state and logic.
type Game struct {
	Level           *level.Level
	ECS             *entity.ECS
	Queues          *event.Queues
	EventDispatcher *event.Dispatcher
	World           *physics.World
	Rng             utils.RandSource

	StatSystem           *system.StatSystem
	StatusEffectSystem   *system.StatusEffectSystem
	StatusModifierSystem *system.StatusModifierSystem
	InteractionSystem    *system.InteractionSystem
	DamageSystem         *system.DamageSystem
	MovementSystem       *system.MovementSystem
	CollisionSystem      *system.CollisionSystem
	TargetingSystem      *system.TargetingSystem
	AttackSystem         *system.AttackSystem
	LiquidSystem         *system.LiquidSystem
	TrapDoorSystem       *system.TrapDoorSystem
	WaveSystem           *system.WaveSystem
	EconomySystem        *system.EconomySystem
	VisualEffectSystem   *system.VisualEffectSystem

	SpeedMultiplier float64
	// OnPhase, when set, is called before each phase of Update.
	OnPhase func(Phase)

	waves    bool
	gameTime float64
}

// NewGame initializes a new game instance.
func NewGame(lvl *level.Level, opts Options) *Game {
	if lvl == nil {
		panic("level cannot be nil")
	}

	rng := opts.Rng
	if rng == nil {
		rng = utils.NewPRNGService(opts.Seed)
	}

	ecs := entity.NewECS()
	ecs.Player.Money = opts.StartingMoney
	ecs.Player.Health = opts.StartingHealth
	queues := event.NewQueues()
	eventDispatcher := event.NewDispatcher()
	world := physics.NewWorld()

	g := &Game{
		Level:           lvl,
		ECS:             ecs,
		Queues:          queues,
		EventDispatcher: eventDispatcher,
		World:           world,
		Rng:             rng,
		SpeedMultiplier: 1.0,
		waves:           true,
	}
	g.StatSystem = system.NewStatSystem(ecs)
	g.StatusEffectSystem = system.NewStatusEffectSystem(ecs, queues, eventDispatcher)
	g.StatusModifierSystem = system.NewStatusModifierSystem(ecs, queues)
	g.InteractionSystem = system.NewInteractionSystem(ecs, queues, g.StatusEffectSystem, world, eventDispatcher, rng)
	g.DamageSystem = system.NewDamageSystem(ecs, queues, g.InteractionSystem, eventDispatcher, rng)
	g.MovementSystem = system.NewMovementSystem(ecs, eventDispatcher)
	g.CollisionSystem = system.NewCollisionSystem(ecs, world)
	g.TargetingSystem = system.NewTargetingSystem(ecs, world, queues, eventDispatcher)
	g.AttackSystem = system.NewAttackSystem(ecs, world, queues, rng)
	g.LiquidSystem = system.NewLiquidSystem(ecs, lvl, world, queues)
	g.TrapDoorSystem = system.NewTrapDoorSystem(ecs, world, queues)
	g.WaveSystem = system.NewWaveSystem(ecs, lvl.Waypoints(), eventDispatcher)
	g.EconomySystem = system.NewEconomySystem(ecs, eventDispatcher)
	g.VisualEffectSystem = system.NewVisualEffectSystem(ecs, eventDispatcher)
	return g
}

// DisableWaves stops automatic wave spawning; enemies are then spawned by hand.
func (g *Game) DisableWaves() { g.waves = false }

// Update progresses the game state by one tick. The phase order is fixed:
// stats are reset, modified and recalculated before anything reads them, and
// statuses requested during the tick land after damage has been resolved.
func (g *Game) Update(deltaTime float64) {
	dt := deltaTime * g.SpeedMultiplier
	g.gameTime += dt
	g.ECS.GameTime = g.gameTime
	g.ECS.GameState.Time = g.gameTime
	g.ECS.GameState.Tick++

	g.VisualEffectSystem.Update(dt)
	if g.ECS.GameState.Phase != component.PhasePlaying {
		return
	}
	if g.waves {
		g.WaveSystem.Update(dt)
	}

	g.phase(PhaseStatReset)
	g.StatSystem.Reset()
	g.phase(PhaseStatusTick)
	g.StatusEffectSystem.Tick(dt)
	g.phase(PhaseModify)
	g.StatusModifierSystem.Update()
	g.phase(PhaseRecalculate)
	g.StatSystem.Recalculate()

	g.phase(PhaseMovement)
	g.MovementSystem.Update(dt)
	g.phase(PhasePhysics)
	g.CollisionSystem.Update()
	g.phase(PhaseTargeting)
	g.TargetingSystem.Update(dt)
	g.phase(PhaseAttack)
	g.AttackSystem.Update()
	g.phase(PhaseLiquids)
	g.LiquidSystem.Update(dt)
	g.TrapDoorSystem.Update(dt)

	g.phase(PhasePeriodic)
	g.StatusModifierSystem.Periodic(dt)
	g.phase(PhaseDamage)
	g.DamageSystem.Update()

	g.phase(PhaseStatusApply)
	for pass := 0; pass < config.MaxApplyPasses && g.Queues.Apply.Len() > 0; pass++ {
		g.StatusEffectSystem.Apply()
		g.InteractionSystem.OnApplied()
	}
	g.phase(PhaseRemovals)
	g.InteractionSystem.OnRemovals()

	g.phase(PhaseCleanup)
	g.cleanupDestroyedEntities()
}

func (g *Game) phase(p Phase) {
	if g.OnPhase != nil {
		g.OnPhase(p)
	}
}

// cleanupDestroyedEntities despawns enemies that died or escaped this tick.
func (g *Game) cleanupDestroyedEntities() {
	for _, id := range entity.SortedIDs(g.ECS.Enemies) {
		enemy := g.ECS.Enemies[id]
		if enemy.Dead || enemy.ReachedEnd {
			g.ECS.Despawn(id)
			g.World.Remove(id)
		}
	}
}

func (g *Game) GameTime() float64 { return g.gameTime }

func (g *Game) IsOver() bool {
	return g.ECS.GameState.Phase == component.PhaseGameOver
}
