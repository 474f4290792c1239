// internal/system/wave.go
package system

import (
	"log/slog"

	"elemental-defense/internal/component"
	"elemental-defense/internal/config"
	"elemental-defense/internal/defs"
	"elemental-defense/internal/entity"
	"elemental-defense/internal/event"
	"elemental-defense/internal/types"
)

type WaveSystem struct {
	ecs             *entity.ECS
	waypoints       []component.Position
	eventDispatcher *event.Dispatcher
	activeEnemies   int
	breakTimer      float64
}

func NewWaveSystem(ecs *entity.ECS, waypoints []component.Position, eventDispatcher *event.Dispatcher) *WaveSystem {
	ws := &WaveSystem{
		ecs:             ecs,
		waypoints:       waypoints,
		eventDispatcher: eventDispatcher,
		breakTimer:      config.FirstWaveDelay,
	}
	eventDispatcher.Subscribe(event.EnemyKilled, ws)
	eventDispatcher.Subscribe(event.EnemyEscaped, ws)
	return ws
}

func (s *WaveSystem) Update(deltaTime float64) {
	wave := s.ecs.Wave
	if wave == nil {
		s.breakTimer -= deltaTime
		if s.breakTimer <= 0 {
			s.ecs.Wave = s.StartWave(s.ecs.GameState.Wave + 1)
		}
		return
	}
	if wave.EnemiesToSpawn > 0 {
		wave.SpawnTimer += deltaTime
		if wave.SpawnTimer >= wave.SpawnInterval {
			s.spawnEnemy(wave)
			wave.EnemiesToSpawn--
			wave.SpawnTimer = 0
		}
	} else if s.activeEnemies <= 0 {
		s.ecs.Wave = nil
		s.activeEnemies = 0
		s.breakTimer = config.WaveBreak
		s.eventDispatcher.Dispatch(event.Event{Type: event.WaveEnded, Data: event.WaveData{Wave: wave.Number}})
	}
}

// StartWave строит расписание волны; первый враг появляется сразу.
func (s *WaveSystem) StartWave(waveNumber int) *component.Wave {
	waveDef := defs.Wave(waveNumber)
	s.ecs.GameState.Wave = waveNumber
	s.eventDispatcher.Dispatch(event.Event{Type: event.WaveStarted, Data: event.WaveData{Wave: waveNumber}})
	slog.Info("wave started", "wave", waveNumber, "enemy", waveDef.EnemyID, "count", waveDef.Count)
	return &component.Wave{
		Number:         waveNumber,
		EnemyID:        waveDef.EnemyID,
		EnemiesToSpawn: waveDef.Count,
		SpawnTimer:     waveDef.SpawnInterval.Seconds(),
		SpawnInterval:  waveDef.SpawnInterval.Seconds(),
	}
}

func (s *WaveSystem) spawnEnemy(wave *component.Wave) {
	def, ok := defs.EnemyDef(wave.EnemyID)
	if !ok {
		slog.Error("enemy definition not found", "id", wave.EnemyID)
		return
	}
	if len(s.waypoints) == 0 {
		slog.Error("no path to spawn enemies on")
		return
	}
	SpawnEnemy(s.ecs, def, s.waypoints)
	s.activeEnemies++
	s.eventDispatcher.Dispatch(event.Event{Type: event.EnemySpawned})
}

// SpawnEnemy создает врага в начале пути с новым набором статов.
func SpawnEnemy(ecs *entity.ECS, def defs.EnemyDefinition, waypoints []component.Position) types.EntityID {
	id := ecs.NewEntity()
	start := waypoints[0]
	ecs.Positions[id] = &component.Position{X: start.X, Y: start.Y}
	ecs.Paths[id] = &component.Path{Points: waypoints, CurrentIndex: 1}
	ecs.Healths[id] = component.NewHealth(def.Health)
	ecs.Stats[id] = component.NewEnemyStats(def)
	ecs.StatusEffects[id] = &component.StatusEffects{}
	ecs.Renderables[id] = &component.Renderable{Color: def.Color, Radius: float32(def.Radius), HasStroke: true}
	ecs.Enemies[id] = &component.Enemy{DefID: def.ID, Radius: def.Radius, Bounty: def.Bounty}
	return id
}

func (s *WaveSystem) OnEvent(e event.Event) {
	switch e.Type {
	case event.EnemyKilled, event.EnemyEscaped:
		s.activeEnemies--
	}
}
