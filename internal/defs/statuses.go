package defs

import (
	"fmt"
	"image/color"

	"golang.org/x/image/colornames"
)

// StatusKind names a status effect. An entity carries at most one instance per kind.
type StatusKind uint8

const (
	StatusWet StatusKind = iota
	StatusIgnited
	StatusBurned
	StatusChilled
	StatusFrozen
	StatusElectrocuted
	StatusAcidified
	StatusOiled

	StatusKindCount = iota
)

// StatusDefinition holds the static metadata of a status kind.
type StatusDefinition struct {
	Name            string
	Color           color.RGBA
	BaseDuration    float64    // seconds at duration multiplier 1
	Element         DamageType // periodic damage and resistance lookup
	DamagePerSecond float64    // 0 = no damage over time
	SpeedMultiplier float64    // applied to StatMoveSpeed while active
	// Vulnerability multiplies the damage taken of one damage type while active.
	Vulnerability map[DamageType]float64
}

var statusLibrary = [StatusKindCount]StatusDefinition{
	StatusWet: {
		Name: "Wet", Color: colornames.Dodgerblue, BaseDuration: 4.0, Element: DamageCold,
		SpeedMultiplier: 0.9, Vulnerability: map[DamageType]float64{DamageLightning: 1.5},
	},
	StatusIgnited: {
		Name: "Ignited", Color: colornames.Orangered, BaseDuration: 3.0, Element: DamageBurning,
		DamagePerSecond: 8, SpeedMultiplier: 1.0,
	},
	StatusBurned: {
		Name: "Burned", Color: colornames.Darkorange, BaseDuration: 2.0, Element: DamageBurning,
		DamagePerSecond: 3, SpeedMultiplier: 1.0,
	},
	StatusChilled: {
		Name: "Chilled", Color: colornames.Lightblue, BaseDuration: 3.0, Element: DamageCold,
		SpeedMultiplier: 0.6,
	},
	StatusFrozen: {
		Name: "Frozen", Color: colornames.Powderblue, BaseDuration: 1.5, Element: DamageCold,
		SpeedMultiplier: 0.0, Vulnerability: map[DamageType]float64{DamagePhysical: 1.25},
	},
	StatusElectrocuted: {
		Name: "Electrocuted", Color: colornames.Yellow, BaseDuration: 1.0, Element: DamageLightning,
		SpeedMultiplier: 0.3,
	},
	StatusAcidified: {
		Name: "Acidified", Color: colornames.Chartreuse, BaseDuration: 4.0, Element: DamageChemical,
		DamagePerSecond: 2, SpeedMultiplier: 1.0, Vulnerability: map[DamageType]float64{DamagePhysical: 1.5},
	},
	StatusOiled: {
		Name: "Oiled", Color: colornames.Dimgray, BaseDuration: 6.0, Element: DamageChemical,
		SpeedMultiplier: 0.8, Vulnerability: map[DamageType]float64{DamageBurning: 1.5},
	},
}

// StatusDef returns the definition of a kind. Unknown kinds yield a zero definition.
func StatusDef(k StatusKind) StatusDefinition {
	if !k.Valid() {
		return StatusDefinition{}
	}
	return statusLibrary[k]
}

// Valid reports whether k is in the catalog.
func (k StatusKind) Valid() bool { return k < StatusKindCount }

func (k StatusKind) String() string {
	if k.Valid() {
		return statusLibrary[k].Name
	}
	return fmt.Sprintf("status(%d)", k)
}

// AllStatusKinds lists every kind in declaration order.
func AllStatusKinds() []StatusKind {
	out := make([]StatusKind, StatusKindCount)
	for i := range out {
		out[i] = StatusKind(i)
	}
	return out
}

// ParseStatusKind matches a kind by name, case sensitive.
func ParseStatusKind(s string) (StatusKind, error) {
	for i := range statusLibrary {
		if statusLibrary[i].Name == s {
			return StatusKind(i), nil
		}
	}
	return 0, fmt.Errorf("unknown status %q", s)
}

// Duration is the full timer length of a status applied at the given strength.
func Duration(k StatusKind, strength int) float64 {
	return StatusDef(k).BaseDuration * DurationMultiplier(strength)
}

var (
	durationTable = [...]float64{0, 1, 1.67, 2.5, 3, 4}
	damageTable   = [...]float64{0, 0.67, 1.25, 2.0, 2.67, 4}
)

// DurationMultiplier scales status duration by strength tier. Tiers above 5 saturate.
func DurationMultiplier(strength int) float64 {
	return lookupTier(durationTable[:], strength)
}

// DamageMultiplier scales damage by strength tier. Tiers above 5 saturate.
func DamageMultiplier(strength int) float64 {
	return lookupTier(damageTable[:], strength)
}

func lookupTier(table []float64, strength int) float64 {
	if strength <= 0 {
		return table[0]
	}
	if strength >= len(table) {
		return table[len(table)-1]
	}
	return table[strength]
}
