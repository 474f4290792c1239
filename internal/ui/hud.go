// internal/ui/hud.go
package ui

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"

	"elemental-defense/internal/component"
	"elemental-defense/internal/config"
	"elemental-defense/internal/defs"
	"elemental-defense/internal/entity"
)

// HUD собирает все элементы интерфейса под уровнем.
type HUD struct {
	Top      float32
	Health   *PlayerHealthIndicator
	Wave     *WaveIndicator
	Speed    *SpeedButton
	Towers   *TowerBar
	face     text.Face
	maxLives int
}

func NewHUD(top float32, maxLives int) *HUD {
	face := text.NewGoXFace(basicfont.Face7x13)
	return &HUD{
		Top:      top,
		Health:   NewPlayerHealthIndicator(20, top+30, face),
		Wave:     NewWaveIndicator(config.ScreenWidth/2, float64(top)+10, face),
		Speed:    NewSpeedButton(config.ScreenWidth-40, top+30, 12),
		Towers:   NewTowerBar(20, top+90, 120, 36, face),
		face:     face,
		maxLives: maxLives,
	}
}

func (h *HUD) Draw(screen *ebiten.Image, ecs *entity.ECS, selected defs.TowerKind) {
	vector.DrawFilledRect(screen, 0, h.Top, config.ScreenWidth, config.ScreenHeight-h.Top, color.RGBA{15, 15, 22, 255}, false)

	h.Health.Draw(screen, ecs.Player.Health, h.maxLives)
	h.Wave.Draw(screen, ecs.GameState.Wave)
	h.Speed.Draw(screen)
	h.Towers.Draw(screen, selected, ecs.Player.Money)

	stats := fmt.Sprintf("$%d   kills %d   leaks %d", ecs.Player.Money, ecs.Player.Kills, ecs.Player.Leaks)
	drawString(screen, h.face, stats, 240, float64(h.Top)+30, config.TextLightColor)
	h.drawLegend(screen, float64(h.Top)+150)

	if ecs.Flash != nil {
		drawString(screen, h.face, ecs.Flash.Text, 20, float64(h.Top)+135, config.FlashColor)
	}
	if ecs.GameState.Phase == component.PhaseGameOver {
		msg := fmt.Sprintf("GAME OVER - wave %d, %d kills", ecs.GameState.Wave, ecs.Player.Kills)
		w, _ := text.Measure(msg, h.face, 0)
		drawString(screen, h.face, msg, (config.ScreenWidth-w)/2, float64(h.Top)-20, config.FlashColor)
	}
}

// drawLegend выводит цвета статусов, которыми помечены враги.
func (h *HUD) drawLegend(screen *ebiten.Image, y float64) {
	x := 20.0
	for _, kind := range defs.AllStatusKinds() {
		def := defs.StatusDef(kind)
		vector.DrawFilledCircle(screen, float32(x+4), float32(y+7), 4, def.Color, true)
		drawString(screen, h.face, def.Name, x+12, y, config.TextLightColor)
		w, _ := text.Measure(def.Name, h.face, 0)
		x += w + 30
	}
}
