// internal/render/render.go
package render

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"

	"elemental-defense/internal/component"
	"elemental-defense/internal/config"
	"elemental-defense/internal/defs"
	"elemental-defense/internal/entity"
	"elemental-defense/internal/level"
	"elemental-defense/internal/types"
	"elemental-defense/pkg/grid"
)

// RenderSystem рисует уровень и сущности
type RenderSystem struct {
	ecs   *entity.ECS
	level *level.Level
	face  *text.GoXFace
}

func NewRenderSystem(ecs *entity.ECS, lvl *level.Level) *RenderSystem {
	return &RenderSystem{ecs: ecs, level: lvl, face: text.NewGoXFace(basicfont.Face7x13)}
}

func (s *RenderSystem) Draw(screen *ebiten.Image) {
	screen.Fill(config.BackgroundColor)
	s.drawLevel(screen)

	for _, id := range entity.SortedIDs(s.ecs.Puddles) {
		s.drawCircle(screen, id, nil)
	}
	for _, id := range entity.SortedIDs(s.ecs.Towers) {
		s.drawTower(screen, id)
	}
	for _, id := range entity.SortedIDs(s.ecs.Droplets) {
		s.drawCircle(screen, id, nil)
	}
	for _, id := range entity.SortedIDs(s.ecs.Enemies) {
		var tint color.Color
		if _, flashing := s.ecs.DamageFlashes[id]; flashing {
			tint = config.FlashColor
		}
		s.drawCircle(screen, id, tint)
		s.drawEnemyOverlay(screen, id)
	}
	for _, id := range entity.SortedIDs(s.ecs.Texts) {
		t := s.ecs.Texts[id]
		if pos, ok := s.ecs.Positions[id]; ok {
			s.DrawText(screen, t.Text, pos.X, pos.Y, t.Color)
		}
	}
}

func (s *RenderSystem) drawLevel(screen *ebiten.Image) {
	cs := float32(s.level.CellSize)
	for y := 0; y < s.level.Grid.Height; y++ {
		for x := 0; x < s.level.Grid.Width; x++ {
			c := grid.Cell{X: x, Y: y}
			if s.level.Grid.IsSolid(c) {
				vector.DrawFilledRect(screen, float32(x)*cs, float32(y)*cs, cs, cs, config.SolidColor, false)
			}
		}
	}
	for _, c := range s.level.Route {
		p := s.level.CellCenter(c)
		vector.DrawFilledCircle(screen, float32(p.X), float32(p.Y), 2, config.PathColor, true)
	}
	for c, clr := range map[grid.Cell]color.RGBA{s.level.Spawn: config.SpawnColor, s.level.Exit: config.ExitColor} {
		vector.StrokeRect(screen, float32(c.X)*cs+1, float32(c.Y)*cs+1, cs-2, cs-2, 2, clr, false)
	}
}

func (s *RenderSystem) drawTower(screen *ebiten.Image, id types.EntityID) {
	tower := s.ecs.Towers[id]
	pos, ok := s.ecs.Positions[id]
	if !ok {
		return
	}
	def, _ := defs.TowerDef(tower.Kind)
	x, y := float32(pos.X), float32(pos.Y)
	vector.StrokeCircle(screen, x, y, float32(def.TriggerRadius), 1, color.RGBA{def.Color.R, def.Color.G, def.Color.B, 60}, true)

	clr := def.Color
	if state, ok := s.ecs.TowerStates[id]; ok && state.Current() == component.TowerCooldown {
		clr = color.RGBA{clr.R / 2, clr.G / 2, clr.B / 2, 255}
	}
	if door, ok := s.ecs.TrapDoors[id]; ok {
		half := float32(s.level.CellSize) / 2
		if door.Open {
			clr = config.BackgroundColor
		}
		vector.DrawFilledRect(screen, x-half, y+half-4, half*2, 4, clr, false)
		return
	}
	vector.DrawFilledCircle(screen, x, y, 7, clr, true)
}

func (s *RenderSystem) drawCircle(screen *ebiten.Image, id types.EntityID, tint color.Color) {
	r, ok := s.ecs.Renderables[id]
	pos, hasPos := s.ecs.Positions[id]
	if !ok || !hasPos {
		return
	}
	x, y := float32(pos.X), float32(pos.Y)
	if r.HasStroke {
		vector.DrawFilledCircle(screen, x, y, r.Radius+1.5, color.Black, true)
	}
	var clr color.Color = r.Color
	if tint != nil {
		clr = tint
	}
	vector.DrawFilledCircle(screen, x, y, r.Radius, clr, true)
}

// drawEnemyOverlay рисует полоску здоровья и по точке на каждый активный статус.
func (s *RenderSystem) drawEnemyOverlay(screen *ebiten.Image, id types.EntityID) {
	pos, ok := s.ecs.Positions[id]
	enemy := s.ecs.Enemies[id]
	if !ok {
		return
	}
	x, y := float32(pos.X), float32(pos.Y-enemy.Radius-6)
	if h, ok := s.ecs.Healths[id]; ok {
		const w = 16
		vector.DrawFilledRect(screen, x-w/2, y, w, 3, color.RGBA{60, 0, 0, 255}, false)
		vector.DrawFilledRect(screen, x-w/2, y, w*float32(h.Fraction()), 3, color.RGBA{0, 200, 0, 255}, false)
	}
	for i, inst := range s.ecs.StatusEffects[id].Active() {
		dx := float32(i*5) - 8
		vector.DrawFilledCircle(screen, x+dx, y-4, 2, defs.StatusDef(inst.Kind).Color, false)
	}
}

// DrawText выводит строку текста с центром в (x, y).
func (s *RenderSystem) DrawText(screen *ebiten.Image, str string, x, y float64, clr color.Color) {
	w, h := text.Measure(str, s.face, 0)
	op := &text.DrawOptions{}
	op.GeoM.Translate(x-w/2, y-h/2)
	op.ColorScale.ScaleWithColor(clr)
	text.Draw(screen, str, s.face, op)
}
