// internal/state/play_state.go
package state

import (
	"log/slog"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"elemental-defense/internal/app"
	"elemental-defense/internal/defs"
	"elemental-defense/internal/render"
	"elemental-defense/internal/ui"
)

var towerKeys = []ebiten.Key{
	ebiten.Key1, ebiten.Key2, ebiten.Key3, ebiten.Key4, ebiten.Key5,
	ebiten.Key6, ebiten.Key7, ebiten.Key8, ebiten.Key9,
}

// PlayState — основное состояние: симуляция, ввод игрока и отрисовка.
type PlayState struct {
	sm       *StateMachine
	game     *app.Game
	renderer *render.RenderSystem
	hud      *ui.HUD
	selected defs.TowerKind
}

func NewPlayState(sm *StateMachine, game *app.Game, maxLives int) *PlayState {
	_, h := game.Level.Bounds()
	return &PlayState{
		sm:       sm,
		game:     game,
		renderer: render.NewRenderSystem(game.ECS, game.Level),
		hud:      ui.NewHUD(float32(h)+40, maxLives),
		selected: defs.TowerTesla,
	}
}

func (s *PlayState) Enter() {}

func (s *PlayState) Update(deltaTime float64) {
	if inpututil.IsKeyJustPressed(ebiten.KeyP) || inpututil.IsKeyJustPressed(ebiten.KeyF9) {
		s.sm.Push(NewPauseState(s.sm, s))
		return
	}
	for i, key := range towerKeys {
		if i < int(defs.TowerKindCount) && inpututil.IsKeyJustPressed(key) {
			s.selected = defs.TowerKind(i)
		}
	}

	s.game.SpeedMultiplier = s.hud.Speed.Speed()
	s.game.Update(deltaTime)

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		s.handleLeftClick(x, y)
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonRight) {
		x, y := ebiten.CursorPosition()
		cell := s.game.Level.CellAt(float64(x), float64(y))
		if err := s.game.RemoveTower(cell); err != nil {
			slog.Debug("remove tower", "cell", cell, "err", err)
		}
	}
}

// handleLeftClick: сначала UI, потом клетка уровня.
func (s *PlayState) handleLeftClick(x, y int) {
	if s.hud.Speed.IsClicked(x, y) {
		s.hud.Speed.ToggleState()
		return
	}
	if kind, ok := s.hud.Towers.HitTest(x, y); ok {
		s.selected = kind
		return
	}
	if s.game.IsOver() {
		return
	}
	cell := s.game.Level.CellAt(float64(x), float64(y))
	if _, err := s.game.PlaceTower(s.selected, cell); err != nil {
		slog.Debug("place tower", "kind", s.selected, "cell", cell, "err", err)
	}
}

func (s *PlayState) Draw(screen *ebiten.Image) {
	s.renderer.Draw(screen)
	s.hud.Draw(screen, s.game.ECS, s.selected)
}

func (s *PlayState) Exit() {}
