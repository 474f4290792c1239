// internal/ui/tower_bar.go
package ui

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"elemental-defense/internal/defs"
)

// TowerButton is one clickable tower in the build bar.
type TowerButton struct {
	Kind          defs.TowerKind
	X, Y          float32
	Width, Height float32
}

func (b TowerButton) Contains(x, y int) bool {
	fx, fy := float32(x), float32(y)
	return fx >= b.X && fx < b.X+b.Width && fy >= b.Y && fy < b.Y+b.Height
}

// TowerBar lists every buildable tower; number keys select the same order.
type TowerBar struct {
	Buttons []TowerButton
	face    text.Face
}

func NewTowerBar(x, y, buttonWidth, buttonHeight float32, face text.Face) *TowerBar {
	bar := &TowerBar{face: face}
	for i, kind := range defs.AllTowerKinds() {
		bar.Buttons = append(bar.Buttons, TowerButton{
			Kind:   kind,
			X:      x + float32(i)*(buttonWidth+4),
			Y:      y,
			Width:  buttonWidth,
			Height: buttonHeight,
		})
	}
	return bar
}

// HitTest returns the tower under the cursor.
func (t *TowerBar) HitTest(x, y int) (defs.TowerKind, bool) {
	for _, b := range t.Buttons {
		if b.Contains(x, y) {
			return b.Kind, true
		}
	}
	return 0, false
}

func (t *TowerBar) Draw(screen *ebiten.Image, selected defs.TowerKind, money int) {
	for i, b := range t.Buttons {
		def, _ := defs.TowerDef(b.Kind)
		bg := color.RGBA{40, 40, 55, 230}
		if b.Kind == selected {
			bg = color.RGBA{70, 100, 120, 255}
		}
		vector.DrawFilledRect(screen, b.X, b.Y, b.Width, b.Height, bg, false)
		vector.StrokeRect(screen, b.X, b.Y, b.Width, b.Height, 1, def.Color, false)

		txt := color.Color(color.White)
		if money < def.Price {
			txt = color.RGBA{120, 120, 120, 255}
		}
		drawString(screen, t.face, fmt.Sprintf("%d %s", i+1, def.Name), float64(b.X)+4, float64(b.Y)+4, txt)
		drawString(screen, t.face, fmt.Sprintf("$%d", def.Price), float64(b.X)+4, float64(b.Y)+20, txt)
	}
}
