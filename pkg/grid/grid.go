// pkg/grid/grid.go
package grid

import "math"

// Cell is a grid coordinate; Y grows downwards.
type Cell struct {
	X, Y int
}

// Directions are the 4 orthogonal neighbor offsets: right, down, left, up.
var Directions = []Cell{{X: 1}, {Y: 1}, {X: -1}, {Y: -1}}

var (
	Up    = Cell{Y: -1}
	Down  = Cell{Y: 1}
	Left  = Cell{X: -1}
	Right = Cell{X: 1}
)

func (c Cell) Add(o Cell) Cell { return Cell{c.X + o.X, c.Y + o.Y} }

// Distance is the Manhattan distance between two cells.
func (c Cell) Distance(to Cell) int {
	return abs(c.X-to.X) + abs(c.Y-to.Y)
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// ToPixel returns the world coordinates of the cell center.
func (c Cell) ToPixel(cellSize float64) (x, y float64) {
	return (float64(c.X) + 0.5) * cellSize, (float64(c.Y) + 0.5) * cellSize
}

// PixelToCell returns the cell containing a world point.
func PixelToCell(x, y, cellSize float64) Cell {
	return Cell{X: int(math.Floor(x / cellSize)), Y: int(math.Floor(y / cellSize))}
}

type Tile struct {
	Solid bool
}

// Grid is a rectangular side-view level layout.
type Grid struct {
	Width, Height int
	Tiles         map[Cell]Tile
}

func New(width, height int) *Grid {
	g := &Grid{Width: width, Height: height, Tiles: make(map[Cell]Tile, width*height)}
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			g.Tiles[Cell{x, y}] = Tile{}
		}
	}
	return g
}

func (g *Grid) Contains(c Cell) bool {
	return c.X >= 0 && c.Y >= 0 && c.X < g.Width && c.Y < g.Height
}

// IsSolid treats everything outside the grid as solid.
func (g *Grid) IsSolid(c Cell) bool {
	t, ok := g.Tiles[c]
	return !ok || t.Solid
}

func (g *Grid) IsPassable(c Cell) bool {
	return g.Contains(c) && !g.IsSolid(c)
}

func (g *Grid) SetSolid(c Cell, solid bool) {
	if g.Contains(c) {
		g.Tiles[c] = Tile{Solid: solid}
	}
}

// Neighbors returns the in-bounds orthogonal neighbors of c.
func (g *Grid) Neighbors(c Cell) []Cell {
	out := make([]Cell, 0, len(Directions))
	for _, d := range Directions {
		if n := c.Add(d); g.Contains(n) {
			out = append(out, n)
		}
	}
	return out
}
