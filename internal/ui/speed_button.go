// internal/ui/speed_button.go
package ui

import (
	"image/color"
	"math"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/colornames"
)

// SpeedButton переключает скорость симуляции.
type SpeedButton struct {
	X, Y          float32
	Size          float32
	LastClickTime time.Time
	Speeds        []float64
	StateColors   []color.RGBA
	CurrentState  int
}

func NewSpeedButton(x, y, size float32) *SpeedButton {
	return &SpeedButton{
		X:           x,
		Y:           y,
		Size:        size,
		Speeds:      []float64{1, 2, 4},
		StateColors: []color.RGBA{colornames.Limegreen, colornames.Gold, colornames.Orangered},
	}
}

// Speed возвращает множитель текущего состояния.
func (b *SpeedButton) Speed() float64 { return b.Speeds[b.CurrentState] }

func (b *SpeedButton) ToggleState() {
	b.CurrentState = (b.CurrentState + 1) % len(b.Speeds)
	b.LastClickTime = time.Now()
}

// IsClicked проверяет попадание по кругу, у кнопки неровная форма.
func (b *SpeedButton) IsClicked(x, y int) bool {
	dx, dy := float32(x)-b.X, float32(y)-b.Y
	r := b.Size * 1.5
	return dx*dx+dy*dy <= r*r
}

func (b *SpeedButton) Draw(screen *ebiten.Image) {
	elapsed := time.Since(b.LastClickTime).Seconds()
	size := b.Size * float32(1.0+0.3*math.Exp(-elapsed*8))
	clr := b.StateColors[b.CurrentState]

	height := size * 1.2
	offset := size * 0.8
	for k := 0; k <= b.CurrentState; k++ {
		left := b.X - size + float32(k)*offset
		top, tip, bottom := [2]float32{left, b.Y - height/2}, [2]float32{left + size, b.Y}, [2]float32{left, b.Y + height/2}
		vector.StrokeLine(screen, top[0], top[1], tip[0], tip[1], 2, clr, true)
		vector.StrokeLine(screen, tip[0], tip[1], bottom[0], bottom[1], 2, clr, true)
		vector.StrokeLine(screen, bottom[0], bottom[1], top[0], top[1], 2, clr, true)
	}
}
