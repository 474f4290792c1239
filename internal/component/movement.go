// component/movement.go
package component

import "math"

// Position — world position in units.
type Position struct {
	X, Y float64
}

// Dist returns the distance between two positions.
func (p Position) Dist(o Position) float64 {
	return math.Hypot(p.X-o.X, p.Y-o.Y)
}

// Path is the precomputed list of waypoints an enemy walks.
type Path struct {
	Points       []Position
	CurrentIndex int
}

// Done reports whether the last waypoint was reached.
func (p *Path) Done() bool {
	return p.CurrentIndex >= len(p.Points)
}

// Impulse is a decaying knockback velocity.
type Impulse struct {
	VX, VY float64
}
