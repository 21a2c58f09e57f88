// Package core provides the maze generator and the per-tick simulation engine.
// This package is UI-agnostic and deterministic: everything random flows from
// a single seeded RNG owned by the session.
package core

import (
	"fmt"

	platformcore "github.com/vovakirdan/tui-maze/internal/core"
)

// CellKind is the terrain of one grid cell.
type CellKind uint8

const (
	Wall CellKind = iota
	Floor
	Goal
)

// String returns the string representation of a cell kind.
func (k CellKind) String() string {
	switch k {
	case Wall:
		return "Wall"
	case Floor:
		return "Floor"
	case Goal:
		return "Goal"
	default:
		return "Unknown"
	}
}

// Passable reports whether entities may stand on this kind of cell.
func (k CellKind) Passable() bool {
	return k == Floor || k == Goal
}

// Cell addresses one grid cell by row and column.
type Cell struct {
	Row int
	Col int
}

// String returns a string representation of the cell.
func (c Cell) String() string {
	return fmt.Sprintf("(%d,%d)", c.Row, c.Col)
}

// Step returns the cell n steps away in direction d.
func (c Cell) Step(d Dir, n int) Cell {
	dx, dy := d.Delta()
	return Cell{Row: c.Row + dy*n, Col: c.Col + dx*n}
}

// Manhattan returns the Manhattan distance to another cell.
func (c Cell) Manhattan(other Cell) int {
	return platformcore.Abs(c.Row-other.Row) + platformcore.Abs(c.Col-other.Col)
}

// Dir is one of the four cardinal directions.
type Dir uint8

const (
	DirUp Dir = iota
	DirDown
	DirLeft
	DirRight
)

// Cardinals lists the four directions in carve order: up, down, left, right.
var Cardinals = [4]Dir{DirUp, DirDown, DirLeft, DirRight}

// String returns the string representation of a direction.
func (d Dir) String() string {
	switch d {
	case DirUp:
		return "Up"
	case DirDown:
		return "Down"
	case DirLeft:
		return "Left"
	case DirRight:
		return "Right"
	default:
		return "Unknown"
	}
}

// Delta returns the (dx, dy) offset for moving one step in this direction.
// Up decreases Y, Down increases Y (screen coordinates).
func (d Dir) Delta() (dx, dy int) {
	switch d {
	case DirUp:
		return 0, -1
	case DirDown:
		return 0, 1
	case DirLeft:
		return -1, 0
	case DirRight:
		return 1, 0
	default:
		return 0, 0
	}
}

// Intent is a per-tick movement request with each axis in {-1, 0, 1}.
type Intent struct {
	DX int
	DY int
}

// IntentOf returns the intent for a single cardinal direction.
func IntentOf(d Dir) Intent {
	dx, dy := d.Delta()
	return Intent{DX: dx, DY: dy}
}

// IsZero reports whether the intent requests no movement.
func (i Intent) IsZero() bool {
	return i.DX == 0 && i.DY == 0
}
