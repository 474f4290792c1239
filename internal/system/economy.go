// internal/system/economy.go
package system

import (
	"log/slog"

	"elemental-defense/internal/component"
	"elemental-defense/internal/entity"
	"elemental-defense/internal/event"
)

// EconomySystem отвечает за деньги и здоровье игрока: награда за убийство,
// потеря здоровья за прорыв врага, конец игры.
type EconomySystem struct {
	ecs             *entity.ECS
	eventDispatcher *event.Dispatcher
}

func NewEconomySystem(ecs *entity.ECS, eventDispatcher *event.Dispatcher) *EconomySystem {
	s := &EconomySystem{ecs: ecs, eventDispatcher: eventDispatcher}
	eventDispatcher.Subscribe(event.EnemyKilled, s)
	eventDispatcher.Subscribe(event.EnemyEscaped, s)
	return s
}

// OnEvent обрабатывает события, на которые подписана система.
func (s *EconomySystem) OnEvent(e event.Event) {
	player := s.ecs.Player
	switch e.Type {
	case event.EnemyKilled:
		data, ok := e.Data.(event.EnemyKilledData)
		if !ok {
			return
		}
		player.Money += data.Bounty
		player.Kills++
	case event.EnemyEscaped:
		player.Health--
		player.Leaks++
		if !player.Alive() && s.ecs.GameState.Phase == component.PhasePlaying {
			s.ecs.GameState.Phase = component.PhaseGameOver
			slog.Info("game over", "wave", s.ecs.GameState.Wave, "kills", player.Kills)
			s.eventDispatcher.Dispatch(event.Event{Type: event.GameOver})
		}
	}
}

// Spend списывает деньги, если игроку хватает средств.
func (s *EconomySystem) Spend(cost int) bool {
	if !s.ecs.Player.CanAfford(cost) {
		return false
	}
	s.ecs.Player.Money -= cost
	return true
}

func (s *EconomySystem) Refund(amount int) {
	s.ecs.Player.Money += amount
}
