// internal/utils/math.go
package utils

import "math"

// Normalize returns the unit vector of (x, y), or zero for a zero vector.
func Normalize(x, y float64) (float64, float64) {
	l := math.Hypot(x, y)
	if l == 0 {
		return 0, 0
	}
	return x / l, y / l
}

// MoveTowards steps (x, y) towards (tx, ty) by at most step and reports arrival.
func MoveTowards(x, y, tx, ty, step float64) (nx, ny float64, arrived bool) {
	dx, dy := tx-x, ty-y
	dist := math.Hypot(dx, dy)
	if dist <= step || dist == 0 {
		return tx, ty, true
	}
	return x + dx/dist*step, y + dy/dist*step, false
}
