// internal/defs/towers.go
package defs

import (
	"fmt"
	"image/color"

	"golang.org/x/image/colornames"
)

// TowerKind identifies a tower definition.
type TowerKind uint8

const (
	TowerTesla TowerKind = iota
	TowerPiston
	TowerFan
	TowerFlamethrower
	TowerFreezer
	TowerWaterDripper
	TowerOilDripper
	TowerAcidDripper
	TowerTrapDoor

	TowerKindCount = iota
)

// AttackType selects how a fired tower affects the world.
type AttackType uint8

const (
	// AttackEntireCell hits every enemy inside the trigger zone with every effect.
	AttackEntireCell AttackType = iota
	// AttackDropsLiquid spawns a falling droplet that turns into a puddle.
	AttackDropsLiquid
	// AttackModifiesSelf changes the tower's own state (trap doors).
	AttackModifiesSelf
	// AttackContact is declared for data files but has no behavior; ValidateTowers rejects it.
	AttackContact
)

var attackTypeNames = map[AttackType]string{
	AttackEntireCell:   "entire_cell",
	AttackDropsLiquid:  "drops_liquid",
	AttackModifiesSelf: "modifies_self",
	AttackContact:      "contact",
}

func (a AttackType) String() string {
	if name, ok := attackTypeNames[a]; ok {
		return name
	}
	return fmt.Sprintf("attack(%d)", a)
}

// AttackSpec describes what a tower does when it fires.
type AttackSpec struct {
	Type    AttackType
	Effects []AttackEffect // AttackEntireCell
	Liquid  LiquidType     // AttackDropsLiquid
}

// Placement lists the level constraints of a tower cell.
type Placement struct {
	RequiresFloor   bool // solid cell directly below
	RequiresCeiling bool // solid cell directly above
	RequiresWall    bool // solid cell left or right
}

// TowerDefinition holds all the static data for a specific kind of tower.
type TowerDefinition struct {
	Kind          TowerKind
	Name          string
	Price         int
	Cooldown      float64    // seconds, 0 = fires every tick
	Strength      int        // strength tier of damage and statuses it applies
	DamageRange   [2]float64 // base damage before strength scaling
	TriggerRadius float64
	Attack        AttackSpec
	Placement     Placement
	Color         color.RGBA
}

// towerLibrary is the built-in table; LoadTowerDefinitions patches it.
var towerLibrary = defaultTowers()

func defaultTowers() [TowerKindCount]TowerDefinition {
	return [TowerKindCount]TowerDefinition{
		TowerTesla: {
			Name: "Tesla", Price: 120, Cooldown: 0.67, Strength: 1, DamageRange: [2]float64{8, 12},
			Attack:    AttackSpec{Type: AttackEntireCell, Effects: []AttackEffect{Damage(DamageLightning)}},
			Placement: Placement{RequiresFloor: true}, Color: colornames.Gold,
		},
		TowerPiston: {
			Name: "Piston", Price: 80, Cooldown: 3.5, Strength: 1, DamageRange: [2]float64{15, 25},
			Attack:    AttackSpec{Type: AttackEntireCell, Effects: []AttackEffect{Damage(DamagePhysical), Push()}},
			Placement: Placement{RequiresWall: true}, Color: colornames.Silver,
		},
		TowerFan: {
			Name: "Fan", Price: 60, Cooldown: 0, Strength: 1,
			Attack:    AttackSpec{Type: AttackEntireCell, Effects: []AttackEffect{Push()}},
			Placement: Placement{RequiresWall: true}, Color: colornames.Lightcyan,
		},
		TowerFlamethrower: {
			Name: "Flamethrower", Price: 150, Cooldown: 1.0, Strength: 1, DamageRange: [2]float64{4, 6},
			Attack: AttackSpec{Type: AttackEntireCell, Effects: []AttackEffect{
				Damage(DamageBurning), Status(StatusBurned),
			}},
			Placement: Placement{RequiresFloor: true}, Color: colornames.Orangered,
		},
		TowerFreezer: {
			Name: "Freezer", Price: 130, Cooldown: 1.5, Strength: 1, DamageRange: [2]float64{2, 4},
			Attack: AttackSpec{Type: AttackEntireCell, Effects: []AttackEffect{
				Damage(DamageCold), Status(StatusChilled),
			}},
			Placement: Placement{RequiresWall: true}, Color: colornames.Lightblue,
		},
		TowerWaterDripper: {
			Name: "Water dripper", Price: 70, Cooldown: 2.0, Strength: 2,
			Attack:    AttackSpec{Type: AttackDropsLiquid, Liquid: LiquidWater},
			Placement: Placement{RequiresCeiling: true}, Color: colornames.Dodgerblue,
		},
		TowerOilDripper: {
			Name: "Oil dripper", Price: 90, Cooldown: 2.5, Strength: 2,
			Attack:    AttackSpec{Type: AttackDropsLiquid, Liquid: LiquidOil},
			Placement: Placement{RequiresCeiling: true}, Color: colornames.Dimgray,
		},
		TowerAcidDripper: {
			Name: "Acid dripper", Price: 110, Cooldown: 3.0, Strength: 1,
			Attack:    AttackSpec{Type: AttackDropsLiquid, Liquid: LiquidAcid},
			Placement: Placement{RequiresCeiling: true}, Color: colornames.Chartreuse,
		},
		TowerTrapDoor: {
			Name: "Trap door", Price: 100, Cooldown: 2.0, Strength: 1, DamageRange: [2]float64{30, 50},
			Attack:    AttackSpec{Type: AttackModifiesSelf},
			Placement: Placement{RequiresFloor: true}, Color: colornames.Saddlebrown,
		},
	}
}

// TowerDef returns the definition for a kind.
func TowerDef(k TowerKind) (TowerDefinition, bool) {
	if k >= TowerKindCount {
		return TowerDefinition{}, false
	}
	def := towerLibrary[k]
	def.Kind = k
	if def.TriggerRadius == 0 {
		def.TriggerRadius = defaultTriggerRadius
	}
	return def, true
}

// AllTowerKinds lists every kind in declaration order.
func AllTowerKinds() []TowerKind {
	out := make([]TowerKind, TowerKindCount)
	for i := range out {
		out[i] = TowerKind(i)
	}
	return out
}

func (k TowerKind) String() string {
	if k < TowerKindCount {
		return towerLibrary[k].Name
	}
	return fmt.Sprintf("tower(%d)", k)
}

// ResetTowerDefinitions restores the built-in table.
func ResetTowerDefinitions() {
	towerLibrary = defaultTowers()
}

// defaultTriggerRadius mirrors config.TowerTriggerRadius; defs must not import config.
const defaultTriggerRadius = 22.0
