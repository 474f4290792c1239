// internal/level/level.go
package level

import (
	"bufio"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math"
	"os"
	"strings"

	"elemental-defense/internal/component"
	"elemental-defense/pkg/grid"
)

//go:embed default.level
var defaultLayout string

var (
	ErrNoSpawn     = errors.New("level has no spawn")
	ErrNoExit      = errors.New("level has no exit")
	ErrUnreachable = errors.New("exit is not reachable from spawn")
)

// Level is the static geometry enemies walk through.
type Level struct {
	Grid     *grid.Grid
	Spawn    grid.Cell
	Exit     grid.Cell
	Route    []grid.Cell // spawn to exit, both inclusive
	CellSize float64
}

// Default returns the built-in level.
func Default(cellSize float64) *Level {
	lvl, err := Parse(strings.NewReader(defaultLayout), cellSize)
	if err != nil {
		// the embedded layout is part of the binary
		panic(fmt.Sprintf("default level: %v", err))
	}
	return lvl
}

// Load reads an ASCII layout from path.
func Load(path string, cellSize float64) (*Level, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open level %s: %w", path, err)
	}
	defer f.Close()

	lvl, err := Parse(f, cellSize)
	if err != nil {
		return nil, fmt.Errorf("parse level %s: %w", path, err)
	}
	slog.Info("level loaded", "path", path, "width", lvl.Grid.Width, "height", lvl.Grid.Height, "route", len(lvl.Route))
	return lvl, nil
}

// Parse reads a layout where '#' is solid, '.' is air, 'S' the spawn and 'E' the exit.
// Short lines are padded with solid cells.
func Parse(r io.Reader, cellSize float64) (*Level, error) {
	var lines []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := strings.TrimRight(sc.Text(), "\r ")
		if line == "" {
			continue
		}
		lines = append(lines, line)
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}

	width := 0
	for _, l := range lines {
		width = max(width, len(l))
	}
	g := grid.New(width, len(lines))
	lvl := &Level{Grid: g, CellSize: cellSize}
	hasSpawn, hasExit := false, false

	for y := range lines {
		for x := 0; x < width; x++ {
			ch := byte('#')
			if x < len(lines[y]) {
				ch = lines[y][x]
			}
			c := grid.Cell{X: x, Y: y}
			switch ch {
			case '#':
				g.SetSolid(c, true)
			case '.':
			case 'S':
				lvl.Spawn, hasSpawn = c, true
			case 'E':
				lvl.Exit, hasExit = c, true
			default:
				return nil, fmt.Errorf("unexpected %q at %d,%d", ch, x, y)
			}
		}
	}
	if !hasSpawn {
		return nil, ErrNoSpawn
	}
	if !hasExit {
		return nil, ErrNoExit
	}
	lvl.Route = grid.AStar(lvl.Spawn, lvl.Exit, g)
	if lvl.Route == nil {
		return nil, ErrUnreachable
	}
	return lvl, nil
}

// Waypoints returns the route as world positions of cell centers.
func (l *Level) Waypoints() []component.Position {
	out := make([]component.Position, len(l.Route))
	for i, c := range l.Route {
		x, y := c.ToPixel(l.CellSize)
		out[i] = component.Position{X: x, Y: y}
	}
	return out
}

// CellCenter returns the world position of a cell center.
func (l *Level) CellCenter(c grid.Cell) component.Position {
	x, y := c.ToPixel(l.CellSize)
	return component.Position{X: x, Y: y}
}

// CellAt returns the cell under a world position.
func (l *Level) CellAt(x, y float64) grid.Cell {
	return grid.PixelToCell(x, y, l.CellSize)
}

func (l *Level) IsAir(c grid.Cell) bool {
	return l.Grid.IsPassable(c)
}

// HasFloor reports a solid cell directly below c.
func (l *Level) HasFloor(c grid.Cell) bool {
	return l.Grid.IsSolid(c.Add(grid.Down))
}

// HasCeiling reports a solid cell directly above c.
func (l *Level) HasCeiling(c grid.Cell) bool {
	return l.Grid.IsSolid(c.Add(grid.Up))
}

// HasWall reports a solid cell left or right of c.
func (l *Level) HasWall(c grid.Cell) bool {
	return l.Grid.IsSolid(c.Add(grid.Left)) || l.Grid.IsSolid(c.Add(grid.Right))
}

// OnRoute reports whether enemies walk through c.
func (l *Level) OnRoute(c grid.Cell) bool {
	for _, rc := range l.Route {
		if rc == c {
			return true
		}
	}
	return false
}

// SurfaceBelow returns the world Y of the top of the first solid cell at or
// below (x, y). ok is false when the column has no ground inside the level.
func (l *Level) SurfaceBelow(x, y float64) (surface float64, ok bool) {
	c := l.CellAt(x, y)
	if c.X < 0 || c.X >= l.Grid.Width {
		return 0, false
	}
	for row := max(c.Y, 0); row < l.Grid.Height; row++ {
		if l.Grid.IsSolid(grid.Cell{X: c.X, Y: row}) {
			return float64(row) * l.CellSize, true
		}
	}
	return math.Inf(1), false
}

// Bounds returns the world size of the level.
func (l *Level) Bounds() (w, h float64) {
	return float64(l.Grid.Width) * l.CellSize, float64(l.Grid.Height) * l.CellSize
}
