// internal/physics/world.go
package physics

import (
	"cmp"
	"maps"
	"slices"

	"elemental-defense/internal/types"
)

// ColliderKind separates moving bodies from static trigger volumes.
type ColliderKind uint8

const (
	Body ColliderKind = iota
	Sensor
)

// Collider is a circle attached to an entity.
type Collider struct {
	Kind   ColliderKind
	X, Y   float64
	Radius float64
}

type pair struct {
	sensor, body types.EntityID
}

// Contact is a sensor/body pair that started or stopped touching during Step.
type Contact struct {
	Sensor types.EntityID
	Body   types.EntityID
	Begin  bool
}

// World tracks sensor/body overlaps. Bodies never collide with each other.
type World struct {
	colliders map[types.EntityID]*Collider
	touching  map[pair]bool
	contacts  []Contact
}

func NewWorld() *World {
	return &World{
		colliders: make(map[types.EntityID]*Collider),
		touching:  make(map[pair]bool),
	}
}

// Upsert creates or moves the collider of an entity.
func (w *World) Upsert(id types.EntityID, c Collider) {
	if cur, ok := w.colliders[id]; ok {
		*cur = c
		return
	}
	w.colliders[id] = &c
}

// Remove drops an entity's collider. Pairs it was part of end without a contact event.
func (w *World) Remove(id types.EntityID) {
	delete(w.colliders, id)
	for p := range w.touching {
		if p.sensor == id || p.body == id {
			delete(w.touching, p)
		}
	}
}

// IDs lists every entity with a collider in ascending order.
func (w *World) IDs() []types.EntityID {
	return slices.Sorted(maps.Keys(w.colliders))
}

// Step recomputes every sensor/body pair and records begin/end contacts.
func (w *World) Step() {
	ids := slices.Sorted(maps.Keys(w.colliders))
	now := make(map[pair]bool, len(w.touching))
	for _, sid := range ids {
		s := w.colliders[sid]
		if s.Kind != Sensor {
			continue
		}
		for _, bid := range ids {
			b := w.colliders[bid]
			if b.Kind != Body || !circlesOverlap(s, b) {
				continue
			}
			p := pair{sensor: sid, body: bid}
			now[p] = true
			if !w.touching[p] {
				w.contacts = append(w.contacts, Contact{Sensor: sid, Body: bid, Begin: true})
			}
		}
	}
	for _, p := range sortedPairs(w.touching) {
		if !now[p] {
			w.contacts = append(w.contacts, Contact{Sensor: p.sensor, Body: p.body, Begin: false})
		}
	}
	w.touching = now
}

// DrainContacts returns the contacts recorded since the last drain.
func (w *World) DrainContacts() []Contact {
	out := w.contacts
	w.contacts = nil
	return out
}

// Overlapping returns the bodies currently inside a sensor, in ID order.
// It tests live geometry, so it is correct even between Steps.
func (w *World) Overlapping(sensor types.EntityID) []types.EntityID {
	s, ok := w.colliders[sensor]
	if !ok || s.Kind != Sensor {
		return nil
	}
	var out []types.EntityID
	for _, bid := range slices.Sorted(maps.Keys(w.colliders)) {
		b := w.colliders[bid]
		if b.Kind == Body && circlesOverlap(s, b) {
			out = append(out, bid)
		}
	}
	return out
}

// Within returns every body whose centre lies within radius of (x, y), in ID order.
func (w *World) Within(x, y, radius float64) []types.EntityID {
	var out []types.EntityID
	for _, bid := range slices.Sorted(maps.Keys(w.colliders)) {
		b := w.colliders[bid]
		dx, dy := b.X-x, b.Y-y
		if b.Kind == Body && dx*dx+dy*dy <= radius*radius {
			out = append(out, bid)
		}
	}
	return out
}

func circlesOverlap(a, b *Collider) bool {
	dx := a.X - b.X
	dy := a.Y - b.Y
	r := a.Radius + b.Radius
	return dx*dx+dy*dy < r*r
}

func sortedPairs(m map[pair]bool) []pair {
	out := slices.Collect(maps.Keys(m))
	slices.SortFunc(out, func(a, b pair) int {
		if a.sensor != b.sensor {
			return cmp.Compare(a.sensor, b.sensor)
		}
		return cmp.Compare(a.body, b.body)
	})
	return out
}
