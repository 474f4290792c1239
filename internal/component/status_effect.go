// internal/component/status_effect.go
package component

import "elemental-defense/internal/defs"

// StatusInstance is one active status on an entity.
type StatusInstance struct {
	Kind      defs.StatusKind
	Strength  int
	Remaining Timer
}

// StatusEffects holds at most one instance per kind, indexed by kind.
type StatusEffects struct {
	slots [defs.StatusKindCount]*StatusInstance
}

// Get returns the active instance of a kind.
func (s *StatusEffects) Get(k defs.StatusKind) (*StatusInstance, bool) {
	if s == nil || !k.Valid() {
		return nil, false
	}
	inst := s.slots[k]
	return inst, inst != nil
}

func (s *StatusEffects) Has(k defs.StatusKind) bool {
	_, ok := s.Get(k)
	return ok
}

// Strength returns the strength of a kind, or 0 when absent.
func (s *StatusEffects) Strength(k defs.StatusKind) int {
	if inst, ok := s.Get(k); ok {
		return inst.Strength
	}
	return 0
}

// Set stores inst in its kind's slot, replacing any previous instance.
// Returns true when an instance was replaced.
func (s *StatusEffects) Set(inst StatusInstance) bool {
	if !inst.Kind.Valid() {
		return false
	}
	replaced := s.slots[inst.Kind] != nil
	s.slots[inst.Kind] = &inst
	return replaced
}

// Remove detaches a kind and returns the removed instance.
func (s *StatusEffects) Remove(k defs.StatusKind) (StatusInstance, bool) {
	inst, ok := s.Get(k)
	if !ok {
		return StatusInstance{}, false
	}
	s.slots[k] = nil
	return *inst, true
}

// Active returns the active instances in kind order.
func (s *StatusEffects) Active() []*StatusInstance {
	if s == nil {
		return nil
	}
	var out []*StatusInstance
	for _, inst := range s.slots {
		if inst != nil {
			out = append(out, inst)
		}
	}
	return out
}

func (s *StatusEffects) Len() int {
	if s == nil {
		return 0
	}
	n := 0
	for _, inst := range s.slots {
		if inst != nil {
			n++
		}
	}
	return n
}
