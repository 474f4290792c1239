// component/tower.go
package component

import (
	"context"
	"log/slog"

	"github.com/looplab/fsm"

	"elemental-defense/internal/defs"
	"elemental-defense/internal/types"
	"elemental-defense/pkg/grid"
)

type Tower struct {
	Kind defs.TowerKind
	Cell grid.Cell // cell the tower occupies
}

// Tower lifecycle states.
const (
	TowerIdle      = "idle"
	TowerTargeting = "targeting"
	TowerCooldown  = "cooldown"
)

// Tower lifecycle events.
const (
	EventAcquire = "acquire"
	EventRelease = "release"
	EventFire    = "fire"
	EventReady   = "ready"
	EventRest    = "rest"
)

// TowerState drives a tower through idle -> targeting -> cooldown.
//
// HasTargets is the target marker. It is tracked separately from the FSM so a
// cooling tower still remembers whether it should resume targeting or go idle.
type TowerState struct {
	FSM        *fsm.FSM
	HasTargets bool
	Cooldown   Timer
}

func NewTowerState() *TowerState {
	return &TowerState{
		FSM: fsm.NewFSM(
			TowerIdle,
			fsm.Events{
				{Name: EventAcquire, Src: []string{TowerIdle}, Dst: TowerTargeting},
				{Name: EventRelease, Src: []string{TowerTargeting}, Dst: TowerIdle},
				{Name: EventFire, Src: []string{TowerTargeting}, Dst: TowerCooldown},
				{Name: EventReady, Src: []string{TowerCooldown}, Dst: TowerTargeting},
				{Name: EventRest, Src: []string{TowerCooldown}, Dst: TowerIdle},
			},
			fsm.Callbacks{},
		),
	}
}

func (s *TowerState) Current() string { return s.FSM.Current() }

// Acquire sets the target marker.
func (s *TowerState) Acquire() {
	s.HasTargets = true
	s.event(EventAcquire)
}

// Release clears the target marker.
func (s *TowerState) Release() {
	s.HasTargets = false
	s.event(EventRelease)
}

// CanFire reports whether the tower has targets and is not cooling down.
func (s *TowerState) CanFire() bool {
	return s.FSM.Is(TowerTargeting)
}

// Fire starts the cooldown. The caller checks CanFire first.
func (s *TowerState) Fire(cooldown float64) {
	if s.event(EventFire) {
		s.Cooldown = NewTimer(cooldown)
	}
}

// TickCooldown advances the cooldown and leaves the cooldown state once it finishes.
func (s *TowerState) TickCooldown(dt float64) {
	if !s.FSM.Is(TowerCooldown) {
		return
	}
	s.Cooldown.Tick(dt)
	if !s.Cooldown.Finished() {
		return
	}
	if s.HasTargets {
		s.event(EventReady)
	} else {
		s.event(EventRest)
	}
}

func (s *TowerState) event(name string) bool {
	if !s.FSM.Can(name) {
		return false
	}
	if err := s.FSM.Event(context.Background(), name); err != nil {
		slog.Warn("tower state transition failed", "event", name, "state", s.FSM.Current(), "err", err)
		return false
	}
	return true
}

// TrapDoor is the self-modifying state of a trap door tower.
type TrapDoor struct {
	Open    bool
	Timer   Timer
	Dropped map[types.EntityID]bool // enemies already hit during the current opening
}
