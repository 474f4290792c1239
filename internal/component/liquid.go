package component

import "elemental-defense/internal/defs"

// Droplet is a falling drop of liquid released by a dripper tower.
type Droplet struct {
	Liquid   defs.LiquidType
	Strength int
	VY       float64
	Lifetime Timer
}

// Puddle is a landed droplet. It stays for the rest of the game and applies
// its liquid's status to touching enemies every tick.
type Puddle struct {
	Liquid   defs.LiquidType
	Strength int
	Radius   float64
}
