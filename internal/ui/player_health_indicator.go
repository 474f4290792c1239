// internal/ui/player_health_indicator.go
package ui

import (
	"image/color"
	"strconv"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/colornames"
)

const (
	HealthCols          = 10
	HealthCircleRadius  = 6.0
	HealthCircleSpacing = 3.0
)

// PlayerHealthIndicator отображает здоровье игрока сеткой кружков.
type PlayerHealthIndicator struct {
	X, Y float32
	face text.Face
}

func NewPlayerHealthIndicator(x, y float32, face text.Face) *PlayerHealthIndicator {
	return &PlayerHealthIndicator{X: x, Y: y, face: face}
}

// pipColor: пустые ячейки черные, при здоровье не больше половины все красные,
// иначе "избыток" синий.
func pipColor(j, health, maxHealth int) color.RGBA {
	if j >= health {
		return colornames.Black
	}
	half := maxHealth / 2
	if health > half && j < health-half {
		return colornames.Royalblue
	}
	return colornames.Red
}

func (i *PlayerHealthIndicator) Draw(screen *ebiten.Image, health, maxHealth int) {
	const step = HealthCircleRadius*2 + HealthCircleSpacing
	for j := 0; j < maxHealth; j++ {
		row, col := j/HealthCols, j%HealthCols
		x := i.X + float32(col)*step + HealthCircleRadius
		y := i.Y + float32(row)*step + HealthCircleRadius
		vector.DrawFilledCircle(screen, x, y, HealthCircleRadius, pipColor(j, health, maxHealth), true)
		vector.StrokeCircle(screen, x, y, HealthCircleRadius, 1, color.White, true)
	}
	drawString(screen, i.face, strconv.Itoa(max(health, 0))+"/"+strconv.Itoa(maxHealth), float64(i.X), float64(i.Y)-16, color.White)
}
