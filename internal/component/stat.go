// internal/component/stat.go
package component

import (
	"fmt"

	"elemental-defense/internal/defs"
)

// Stat is a derived numeric value:
//
//	value = (base + Σpre) × Πmultipliers + Σpost
//
// Contributions are cleared every tick by Reset and re-added by the systems that
// own them. Value returns the cached result of the last Recalculate; it never
// recomputes on read.
type Stat struct {
	base  float64
	pre   []float64
	mult  []float64
	post  []float64
	value float64
	dirty bool
}

func NewStat(base float64) *Stat {
	return &Stat{base: base, value: base}
}

func (s *Stat) AddPreFlat(v float64) {
	s.pre = append(s.pre, v)
	s.dirty = true
}

func (s *Stat) AddMultiplier(v float64) {
	s.mult = append(s.mult, v)
	s.dirty = true
}

func (s *Stat) AddPostFlat(v float64) {
	s.post = append(s.post, v)
	s.dirty = true
}

// Reset drops every contribution; the value falls back to base until the next recalculation.
func (s *Stat) Reset() {
	s.pre = s.pre[:0]
	s.mult = s.mult[:0]
	s.post = s.post[:0]
	s.value = s.base
	s.dirty = false
}

// Recalculate recomputes the value if any contribution arrived since the last call.
func (s *Stat) Recalculate() {
	if !s.dirty {
		return
	}
	v := s.base
	for _, p := range s.pre {
		v += p
	}
	for _, m := range s.mult {
		v *= m
	}
	for _, p := range s.post {
		v += p
	}
	s.value = v
	s.dirty = false
}

func (s *Stat) Value() float64 { return s.value }

// StatKey selects one tracked quantity of an entity.
type StatKey uint8

const StatMoveSpeed StatKey = 0

// StatDamageTaken is the key of the damage-taken multiplier for a damage type.
// Lower is more resistant.
func StatDamageTaken(t defs.DamageType) StatKey {
	return StatKey(1 + t)
}

func (k StatKey) String() string {
	if k == StatMoveSpeed {
		return "move_speed"
	}
	return fmt.Sprintf("damage_taken(%s)", defs.DamageType(k-1))
}

// Stats holds every tracked stat of one entity.
type Stats map[StatKey]*Stat

// NewEnemyStats builds the stat block of a freshly spawned enemy.
func NewEnemyStats(def defs.EnemyDefinition) Stats {
	stats := Stats{StatMoveSpeed: NewStat(def.Speed)}
	for _, t := range defs.AllDamageTypes() {
		stats[StatDamageTaken(t)] = NewStat(def.BaseDamageTaken(t))
	}
	return stats
}

// Value returns the current value of a stat, or fallback when the entity doesn't track it.
func (s Stats) Value(key StatKey, fallback float64) float64 {
	if stat, ok := s[key]; ok {
		return stat.Value()
	}
	return fallback
}
