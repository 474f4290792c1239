// internal/ui/wave_indicator.go
package ui

import (
	"image/color"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/colornames"
)

// WaveIndicator отображает номер текущей волны римскими цифрами.
type WaveIndicator struct {
	X, Y  float64
	Color color.RGBA
	face  text.Face
}

func NewWaveIndicator(x, y float64, face text.Face) *WaveIndicator {
	return &WaveIndicator{X: x, Y: y, Color: colornames.Lightskyblue, face: face}
}

// toRoman конвертирует целое число в римское.
func toRoman(num int) string {
	if num <= 0 {
		return ""
	}
	val := []int{1000, 900, 500, 400, 100, 90, 50, 40, 10, 9, 5, 4, 1}
	syb := []string{"M", "CM", "D", "CD", "C", "XC", "L", "XL", "X", "IX", "V", "IV", "I"}

	var roman strings.Builder
	for i := 0; i < len(val); i++ {
		for num >= val[i] {
			roman.WriteString(syb[i])
			num -= val[i]
		}
	}
	return roman.String()
}

// waveColor выделяет каждую шестую волну: это волна големов.
func (i *WaveIndicator) waveColor(waveNumber int) color.RGBA {
	if waveNumber%6 == 0 {
		return colornames.Red
	}
	return i.Color
}

func (i *WaveIndicator) Draw(screen *ebiten.Image, waveNumber int) {
	if waveNumber <= 0 {
		return
	}
	label := "Wave " + toRoman(waveNumber)
	w, _ := text.Measure(label, i.face, 0)

	// Обводка
	for _, d := range [][2]float64{{-1, 0}, {1, 0}, {0, -1}, {0, 1}} {
		drawString(screen, i.face, label, i.X-w/2+d[0], i.Y+d[1], color.White)
	}
	drawString(screen, i.face, label, i.X-w/2, i.Y, i.waveColor(waveNumber))
}

func drawString(screen *ebiten.Image, face text.Face, s string, x, y float64, clr color.Color) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(clr)
	text.Draw(screen, s, face, op)
}
