package component

import "image/color"

// Renderable — компонент для отрисовки
type Renderable struct {
	Color     color.RGBA
	Radius    float32
	HasStroke bool
}

// FloatingText — число урона, которое поднимается над точкой попадания.
type FloatingText struct {
	Text  string
	Color color.RGBA
	Timer Timer
}

// DamageFlash указывает, что сущность должна быть отрисована цветом урона.
type DamageFlash struct {
	Timer Timer
}
