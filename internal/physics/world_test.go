package physics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"elemental-defense/internal/types"
)

func TestStepBeginEnd(t *testing.T) {
	w := NewWorld()
	w.Upsert(1, Collider{Kind: Sensor, X: 0, Y: 0, Radius: 10})
	w.Upsert(2, Collider{Kind: Body, X: 30, Y: 0, Radius: 5})

	w.Step()
	assert.Empty(t, w.DrainContacts())

	w.Upsert(2, Collider{Kind: Body, X: 12, Y: 0, Radius: 5})
	w.Step()
	contacts := w.DrainContacts()
	require.Len(t, contacts, 1)
	assert.Equal(t, Contact{Sensor: 1, Body: 2, Begin: true}, contacts[0])

	// staying inside produces nothing new
	w.Step()
	assert.Empty(t, w.DrainContacts())

	w.Upsert(2, Collider{Kind: Body, X: 40, Y: 0, Radius: 5})
	w.Step()
	contacts = w.DrainContacts()
	require.Len(t, contacts, 1)
	assert.False(t, contacts[0].Begin)
}

func TestBodiesAndSensorsDoNotSelfCollide(t *testing.T) {
	w := NewWorld()
	w.Upsert(1, Collider{Kind: Body, Radius: 5})
	w.Upsert(2, Collider{Kind: Body, Radius: 5})
	w.Upsert(3, Collider{Kind: Sensor, X: 100, Radius: 5})
	w.Upsert(4, Collider{Kind: Sensor, X: 100, Radius: 5})
	w.Step()
	assert.Empty(t, w.DrainContacts())
}

func TestOverlappingIsLive(t *testing.T) {
	w := NewWorld()
	w.Upsert(10, Collider{Kind: Sensor, Radius: 20})
	w.Upsert(3, Collider{Kind: Body, X: 5, Radius: 2})
	w.Upsert(2, Collider{Kind: Body, X: -5, Radius: 2})
	w.Upsert(4, Collider{Kind: Body, X: 50, Radius: 2})

	assert.Equal(t, []types.EntityID{2, 3}, w.Overlapping(10))
	assert.Nil(t, w.Overlapping(3), "bodies have no overlap set")

	w.Remove(3)
	assert.Equal(t, []types.EntityID{2}, w.Overlapping(10))
	assert.Equal(t, []types.EntityID{2, 4, 10}, w.IDs())
}

func TestRemoveEndsPairsSilently(t *testing.T) {
	w := NewWorld()
	w.Upsert(1, Collider{Kind: Sensor, Radius: 10})
	w.Upsert(2, Collider{Kind: Body, Radius: 1})
	w.Step()
	w.DrainContacts()

	w.Remove(2)
	w.Step()
	assert.Empty(t, w.DrainContacts())
}

func TestWithinMeasuresCentres(t *testing.T) {
	w := NewWorld()
	w.Upsert(1, Collider{Kind: Body, X: 10, Radius: 4})
	w.Upsert(2, Collider{Kind: Body, X: 30, Radius: 4})
	w.Upsert(3, Collider{Kind: Sensor, X: 0, Radius: 4})
	w.Upsert(4, Collider{Kind: Body, X: 0, Y: 15, Radius: 4})

	// body radius does not widen the query; the edge is inclusive
	assert.Equal(t, []types.EntityID{1, 4}, w.Within(0, 0, 15))
	assert.Equal(t, []types.EntityID{1, 2}, w.Within(20, 0, 10))
	assert.Empty(t, w.Within(0, 0, 5))
}
