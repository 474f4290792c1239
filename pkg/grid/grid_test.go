package grid

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCellPixelRoundTrip(t *testing.T) {
	c := Cell{X: 3, Y: 5}
	x, y := c.ToPixel(30)
	assert.Equal(t, 105.0, x)
	assert.Equal(t, 165.0, y)
	assert.Equal(t, c, PixelToCell(x, y, 30))
	assert.Equal(t, Cell{X: -1, Y: 0}, PixelToCell(-0.1, 1, 30))
}

func TestGridSolidity(t *testing.T) {
	g := New(4, 3)
	g.SetSolid(Cell{1, 1}, true)

	assert.True(t, g.IsSolid(Cell{1, 1}))
	assert.False(t, g.IsPassable(Cell{1, 1}))
	assert.True(t, g.IsPassable(Cell{0, 0}))
	assert.True(t, g.IsSolid(Cell{-1, 0}), "outside is solid")
	assert.Len(t, g.Neighbors(Cell{0, 0}), 2)
	assert.Len(t, g.Neighbors(Cell{1, 1}), 4)
}

func TestAStar(t *testing.T) {
	g := New(5, 3)
	// wall with a gap at the bottom
	g.SetSolid(Cell{2, 0}, true)
	g.SetSolid(Cell{2, 1}, true)

	path := AStar(Cell{0, 0}, Cell{4, 0}, g)
	require.NotNil(t, path)
	assert.Equal(t, Cell{0, 0}, path[0])
	assert.Equal(t, Cell{4, 0}, path[len(path)-1])
	assert.Contains(t, path, Cell{2, 2})
	assert.Len(t, path, 9)

	for i := 1; i < len(path); i++ {
		assert.Equal(t, 1, path[i-1].Distance(path[i]))
	}

	g.SetSolid(Cell{2, 2}, true)
	assert.Nil(t, AStar(Cell{0, 0}, Cell{4, 0}, g))
}
