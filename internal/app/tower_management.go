// internal/app/tower_management.go
package app

import (
	"errors"
	"fmt"
	"log/slog"

	"elemental-defense/internal/component"
	"elemental-defense/internal/config"
	"elemental-defense/internal/defs"
	"elemental-defense/internal/event"
	"elemental-defense/internal/types"
	"elemental-defense/pkg/grid"
)

var (
	ErrInsufficientFunds = errors.New("not enough money")
	ErrCellOccupied      = errors.New("a tower is already there")
	ErrRequiresFloor     = errors.New("needs a floor")
	ErrRequiresWall      = errors.New("needs a wall")
	ErrRequiresCeiling   = errors.New("needs a ceiling")
	ErrOutOfBounds       = errors.New("cannot build inside rock or outside the level")
	ErrUnknownTower      = errors.New("unknown tower")
	ErrNoTower           = errors.New("no tower there")
)

// PlaceTower attempts to place a tower of the given kind in a cell.
// A failed placement changes nothing and shows a flash message.
func (g *Game) PlaceTower(kind defs.TowerKind, cell grid.Cell) (types.EntityID, error) {
	def, err := g.canPlaceTower(kind, cell)
	if err != nil {
		g.Flash(err)
		return 0, err
	}
	// Money is checked at the moment it is spent.
	if !g.EconomySystem.Spend(def.Price) {
		err := fmt.Errorf("%s costs %d: %w", def.Name, def.Price, ErrInsufficientFunds)
		g.Flash(err)
		return 0, err
	}

	id := g.createTowerEntity(def, cell)
	slog.Debug("tower placed", "tower", id, "kind", def.Name, "cell", cell)
	g.EventDispatcher.Dispatch(event.Event{Type: event.TowerPlaced, Data: event.TowerData{Tower: id, Kind: kind}})
	return id, nil
}

// RemoveTower removes the tower in a cell and refunds part of its price.
func (g *Game) RemoveTower(cell grid.Cell) error {
	id, ok := g.ECS.TowerAt(cell.X, cell.Y)
	if !ok {
		return ErrNoTower
	}
	tower := g.ECS.Towers[id]
	def, _ := defs.TowerDef(tower.Kind)

	g.ECS.Despawn(id)
	g.World.Remove(id)
	g.EconomySystem.Refund(int(float64(def.Price) * config.RemovalRefund))
	g.EventDispatcher.Dispatch(event.Event{Type: event.TowerRemoved, Data: event.TowerData{Tower: id, Kind: tower.Kind}})
	return nil
}

func (g *Game) canPlaceTower(kind defs.TowerKind, cell grid.Cell) (defs.TowerDefinition, error) {
	def, ok := defs.TowerDef(kind)
	if !ok {
		return def, ErrUnknownTower
	}
	if !g.Level.IsAir(cell) {
		return def, ErrOutOfBounds
	}
	if _, taken := g.ECS.TowerAt(cell.X, cell.Y); taken {
		return def, ErrCellOccupied
	}
	p := def.Placement
	switch {
	case p.RequiresFloor && !g.Level.HasFloor(cell):
		return def, ErrRequiresFloor
	case p.RequiresCeiling && !g.Level.HasCeiling(cell):
		return def, ErrRequiresCeiling
	case p.RequiresWall && !g.Level.HasWall(cell):
		return def, ErrRequiresWall
	}
	if !g.ECS.Player.CanAfford(def.Price) {
		return def, fmt.Errorf("%s costs %d: %w", def.Name, def.Price, ErrInsufficientFunds)
	}
	return def, nil
}

func (g *Game) createTowerEntity(def defs.TowerDefinition, cell grid.Cell) types.EntityID {
	id := g.ECS.NewEntity()
	pos := g.Level.CellCenter(cell)
	g.ECS.Positions[id] = &pos
	g.ECS.Towers[id] = &component.Tower{Kind: def.Kind, Cell: cell}
	g.ECS.TowerStates[id] = component.NewTowerState()
	if def.Attack.Type == defs.AttackModifiesSelf {
		g.ECS.TrapDoors[id] = &component.TrapDoor{}
	}
	g.ECS.Renderables[id] = &component.Renderable{Color: def.Color, Radius: 7, HasStroke: true}
	return id
}

// Flash shows a transient message for FlashDuration seconds.
func (g *Game) Flash(err error) {
	g.ECS.Flash = &component.FlashMessage{Text: err.Error(), Timer: component.NewTimer(config.FlashDuration)}
	g.EventDispatcher.Dispatch(event.Event{Type: event.PlacementFailed, Data: err})
}
