// internal/defs/enemies.go
package defs

import "image/color"

// EnemyDefinition holds all the static data for a specific type of enemy.
type EnemyDefinition struct {
	ID     string
	Name   string
	Health float64
	Speed  float64 // world units per second
	Radius float64
	Bounty int
	// DamageTaken is the base of each StatDamageTaken stat; missing types default to 1.
	DamageTaken map[DamageType]float64
	Color       color.RGBA
}

// EnemyLibrary is the library of all enemy definitions, mapped by their ID.
var EnemyLibrary = map[string]EnemyDefinition{
	"ENEMY_CRAWLER": {
		ID: "ENEMY_CRAWLER", Name: "Crawler", Health: 40, Speed: 45, Radius: 8, Bounty: 5,
		Color: color.RGBA{200, 200, 200, 255},
	},
	"ENEMY_BRUTE": {
		ID: "ENEMY_BRUTE", Name: "Brute", Health: 140, Speed: 28, Radius: 11, Bounty: 15,
		DamageTaken: map[DamageType]float64{DamagePhysical: 0.6},
		Color:       color.RGBA{150, 110, 90, 255},
	},
	"ENEMY_SALAMANDER": {
		ID: "ENEMY_SALAMANDER", Name: "Salamander", Health: 70, Speed: 40, Radius: 8, Bounty: 10,
		DamageTaken: map[DamageType]float64{DamageBurning: 0.25, DamageCold: 1.5},
		Color:       color.RGBA{230, 120, 40, 255},
	},
	"ENEMY_GOLEM": {
		ID: "ENEMY_GOLEM", Name: "Golem", Health: 300, Speed: 20, Radius: 13, Bounty: 40,
		DamageTaken: map[DamageType]float64{DamagePhysical: 0.5, DamageLightning: 0.5, DamageChemical: 1.5},
		Color:       color.RGBA{110, 110, 130, 255},
	},
}

// EnemyDef looks up an enemy definition by ID.
func EnemyDef(id string) (EnemyDefinition, bool) {
	def, ok := EnemyLibrary[id]
	return def, ok
}

// BaseDamageTaken returns the base damage-taken multiplier of a type, 1 when unset.
func (d EnemyDefinition) BaseDamageTaken(t DamageType) float64 {
	if v, ok := d.DamageTaken[t]; ok {
		return v
	}
	return 1
}
