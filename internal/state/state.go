// internal/state/state.go
package state

import "github.com/hajimehoshi/ebiten/v2"

// State — экран игры. Только верхнее состояние стека получает Update.
type State interface {
	Enter()
	Update(deltaTime float64)
	Draw(screen *ebiten.Image)
	Exit()
}

// StateMachine хранит стек состояний: пауза кладется поверх игры и снимается
// без пересоздания игры.
type StateMachine struct {
	stack []State
}

func NewStateMachine() *StateMachine {
	return &StateMachine{}
}

// SetState заменяет весь стек состоянием s.
func (sm *StateMachine) SetState(s State) {
	for len(sm.stack) > 0 {
		sm.Pop()
	}
	sm.Push(s)
}

// Push приостанавливает текущее состояние и кладет s сверху.
func (sm *StateMachine) Push(s State) {
	if s == nil {
		return
	}
	sm.stack = append(sm.stack, s)
	s.Enter()
}

// Pop снимает верхнее состояние и возобновляет нижнее.
func (sm *StateMachine) Pop() {
	if len(sm.stack) == 0 {
		return
	}
	top := sm.stack[len(sm.stack)-1]
	sm.stack = sm.stack[:len(sm.stack)-1]
	top.Exit()
}

// Current возвращает верхнее состояние или nil, если стек пуст.
func (sm *StateMachine) Current() State {
	if len(sm.stack) == 0 {
		return nil
	}
	return sm.stack[len(sm.stack)-1]
}

func (sm *StateMachine) Update(deltaTime float64) {
	if s := sm.Current(); s != nil {
		s.Update(deltaTime)
	}
}

func (sm *StateMachine) Draw(screen *ebiten.Image) {
	if s := sm.Current(); s != nil {
		s.Draw(screen)
	}
}
