// internal/defs/types.go
package defs

import "fmt"

// DamageType tags attacks and selects the resistance stat.
type DamageType uint8

const (
	DamagePhysical DamageType = iota
	DamageBurning
	DamageCold
	DamageLightning
	DamageChemical

	DamageTypeCount = iota
)

var damageTypeNames = [DamageTypeCount]string{"physical", "burning", "cold", "lightning", "chemical"}

func (d DamageType) String() string {
	if int(d) < len(damageTypeNames) {
		return damageTypeNames[d]
	}
	return fmt.Sprintf("damage(%d)", d)
}

// AllDamageTypes lists every damage type in declaration order.
func AllDamageTypes() []DamageType {
	out := make([]DamageType, DamageTypeCount)
	for i := range out {
		out[i] = DamageType(i)
	}
	return out
}

// ParseDamageType is the inverse of String.
func ParseDamageType(s string) (DamageType, error) {
	for i, name := range damageTypeNames {
		if name == s {
			return DamageType(i), nil
		}
	}
	return 0, fmt.Errorf("unknown damage type %q", s)
}

// EffectKind selects what an AttackEffect does to an enemy.
type EffectKind uint8

const (
	EffectDamage EffectKind = iota
	EffectPush
	EffectStatus
)

// AttackEffect is one thing a tower does to every enemy it hits.
type AttackEffect struct {
	Kind       EffectKind
	DamageType DamageType // EffectDamage only
	Status     StatusKind // EffectStatus only
}

// Damage builds a damage effect.
func Damage(t DamageType) AttackEffect { return AttackEffect{Kind: EffectDamage, DamageType: t} }

// Push builds a knockback effect.
func Push() AttackEffect { return AttackEffect{Kind: EffectPush} }

// Status builds a status effect.
func Status(k StatusKind) AttackEffect { return AttackEffect{Kind: EffectStatus, Status: k} }

func (e AttackEffect) String() string {
	switch e.Kind {
	case EffectDamage:
		return "damage(" + e.DamageType.String() + ")"
	case EffectPush:
		return "push"
	case EffectStatus:
		return "status(" + e.Status.String() + ")"
	default:
		return fmt.Sprintf("effect(%d)", e.Kind)
	}
}

// LiquidType is what a dripper tower drops.
type LiquidType uint8

const (
	LiquidWater LiquidType = iota
	LiquidOil
	LiquidAcid
)

var liquidStatus = map[LiquidType]StatusKind{
	LiquidWater: StatusWet,
	LiquidOil:   StatusOiled,
	LiquidAcid:  StatusAcidified,
}

// LiquidStatus returns the status a puddle of this liquid applies.
func LiquidStatus(l LiquidType) (StatusKind, bool) {
	k, ok := liquidStatus[l]
	return k, ok
}

func (l LiquidType) String() string {
	switch l {
	case LiquidWater:
		return "water"
	case LiquidOil:
		return "oil"
	case LiquidAcid:
		return "acid"
	default:
		return fmt.Sprintf("liquid(%d)", l)
	}
}
