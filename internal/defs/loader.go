// internal/defs/loader.go
package defs

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// ErrInvalidTower is wrapped by every ValidateTowers failure.
var ErrInvalidTower = errors.New("invalid tower definition")

// TowerOverride is one entry of a tower YAML file. Nil fields keep the built-in value.
type TowerOverride struct {
	Name          string     `yaml:"name"`
	Price         *int       `yaml:"price"`
	Cooldown      *float64   `yaml:"cooldown"`
	Strength      *int       `yaml:"strength"`
	DamageRange   []float64  `yaml:"damage_range"`
	TriggerRadius *float64   `yaml:"trigger_radius"`
	Attack        *AttackDoc `yaml:"attack"`
}

// AttackDoc is the textual form of an AttackSpec.
//
//	attack:
//	  type: entire_cell
//	  effects: ["damage:lightning", "status:Wet", "push"]
type AttackDoc struct {
	Type    string   `yaml:"type"`
	Effects []string `yaml:"effects"`
	Liquid  string   `yaml:"liquid"`
}

// LoadTowerDefinitions reads tower overrides from a YAML file, patches the built-in
// table and validates the result. On error the table is left untouched.
func LoadTowerDefinitions(path string) error {
	file, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read tower definitions file: %w", err)
	}

	var overrides []TowerOverride
	if err := yaml.Unmarshal(file, &overrides); err != nil {
		return fmt.Errorf("failed to unmarshal tower definitions: %w", err)
	}

	patched := towerLibrary
	for _, o := range overrides {
		kind, ok := towerKindByName(o.Name)
		if !ok {
			return fmt.Errorf("%w: unknown tower %q", ErrInvalidTower, o.Name)
		}
		def := patched[kind]
		if err := o.apply(&def); err != nil {
			return fmt.Errorf("%w: %s: %v", ErrInvalidTower, o.Name, err)
		}
		patched[kind] = def
	}

	if err := validate(patched); err != nil {
		return err
	}
	towerLibrary = patched

	slog.Info("loaded tower overrides", "path", path, "count", len(overrides))
	return nil
}

// ValidateTowers checks the active table. Called once at startup so that an
// unimplemented attack or effect never reaches the simulation.
func ValidateTowers() error {
	return validate(towerLibrary)
}

func validate(table [TowerKindCount]TowerDefinition) error {
	for i, def := range table {
		if err := validateTower(def); err != nil {
			return fmt.Errorf("%w: %s: %v", ErrInvalidTower, TowerKind(i), err)
		}
	}
	return nil
}

func validateTower(def TowerDefinition) error {
	if def.Cooldown < 0 {
		return fmt.Errorf("negative cooldown %v", def.Cooldown)
	}
	if def.Price < 0 {
		return fmt.Errorf("negative price %d", def.Price)
	}
	if def.Strength < 0 {
		return fmt.Errorf("negative strength %d", def.Strength)
	}
	if def.DamageRange[0] > def.DamageRange[1] {
		return fmt.Errorf("damage range %v is inverted", def.DamageRange)
	}

	switch def.Attack.Type {
	case AttackEntireCell:
		if len(def.Attack.Effects) == 0 {
			return errors.New("entire_cell attack without effects")
		}
		for _, e := range def.Attack.Effects {
			if err := validateEffect(e); err != nil {
				return err
			}
		}
	case AttackDropsLiquid:
		if _, ok := LiquidStatus(def.Attack.Liquid); !ok {
			return fmt.Errorf("liquid %s has no status", def.Attack.Liquid)
		}
	case AttackModifiesSelf:
	default:
		return fmt.Errorf("attack type %s is not implemented", def.Attack.Type)
	}
	return nil
}

func validateEffect(e AttackEffect) error {
	switch e.Kind {
	case EffectDamage:
		if int(e.DamageType) >= DamageTypeCount {
			return fmt.Errorf("effect %s: unknown damage type", e)
		}
	case EffectPush:
	case EffectStatus:
		if !e.Status.Valid() {
			return fmt.Errorf("effect %s: unknown status", e)
		}
	default:
		return fmt.Errorf("effect %s is not implemented", e)
	}
	return nil
}

func (o TowerOverride) apply(def *TowerDefinition) error {
	if o.Price != nil {
		def.Price = *o.Price
	}
	if o.Cooldown != nil {
		def.Cooldown = *o.Cooldown
	}
	if o.Strength != nil {
		def.Strength = *o.Strength
	}
	if o.TriggerRadius != nil {
		def.TriggerRadius = *o.TriggerRadius
	}
	if o.DamageRange != nil {
		if len(o.DamageRange) != 2 {
			return fmt.Errorf("damage_range needs 2 values, got %d", len(o.DamageRange))
		}
		def.DamageRange = [2]float64{o.DamageRange[0], o.DamageRange[1]}
	}
	if o.Attack != nil {
		spec, err := o.Attack.parse()
		if err != nil {
			return err
		}
		def.Attack = spec
	}
	return nil
}

func (d AttackDoc) parse() (AttackSpec, error) {
	var spec AttackSpec
	found := false
	for t, name := range attackTypeNames {
		if name == d.Type {
			spec.Type, found = t, true
			break
		}
	}
	if !found {
		return spec, fmt.Errorf("unknown attack type %q", d.Type)
	}

	for _, raw := range d.Effects {
		e, err := parseEffect(raw)
		if err != nil {
			return spec, err
		}
		spec.Effects = append(spec.Effects, e)
	}

	if d.Liquid != "" {
		switch d.Liquid {
		case "water":
			spec.Liquid = LiquidWater
		case "oil":
			spec.Liquid = LiquidOil
		case "acid":
			spec.Liquid = LiquidAcid
		default:
			return spec, fmt.Errorf("unknown liquid %q", d.Liquid)
		}
	}
	return spec, nil
}

// parseEffect reads "push", "damage:<type>" or "status:<Name>".
func parseEffect(raw string) (AttackEffect, error) {
	head, arg, _ := strings.Cut(raw, ":")
	switch head {
	case "push":
		return Push(), nil
	case "damage":
		t, err := ParseDamageType(arg)
		if err != nil {
			return AttackEffect{}, err
		}
		return Damage(t), nil
	case "status":
		k, err := ParseStatusKind(arg)
		if err != nil {
			return AttackEffect{}, err
		}
		return Status(k), nil
	default:
		return AttackEffect{}, fmt.Errorf("unknown effect %q", raw)
	}
}

func towerKindByName(name string) (TowerKind, bool) {
	for i := range towerLibrary {
		if strings.EqualFold(towerLibrary[i].Name, name) {
			return TowerKind(i), true
		}
	}
	return 0, false
}
