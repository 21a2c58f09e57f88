package core

import (
	"fmt"
	"strings"

	"github.com/zyedidia/generic/mapset"

	platformcore "github.com/vovakirdan/tui-maze/internal/core"
)

// DefaultCellSize is the side of one grid cell in pixels.
const DefaultCellSize = 32

// Grid is the maze terrain. It is immutable once generation finishes.
type Grid struct {
	rows     int
	cols     int
	cellSize int
	cells    []CellKind
	start    Cell
	goal     Cell
	damage   mapset.Set[Cell]
}

func newGrid(rows, cols, cellSize int) *Grid {
	return &Grid{
		rows:     rows,
		cols:     cols,
		cellSize: cellSize,
		cells:    make([]CellKind, rows*cols), // zero value is Wall
		start:    Cell{Row: 1, Col: 1},
		goal:     Cell{Row: -1, Col: -1},
		damage:   mapset.New[Cell](),
	}
}

// Rows returns the number of rows.
func (g *Grid) Rows() int { return g.rows }

// Cols returns the number of columns.
func (g *Grid) Cols() int { return g.cols }

// CellSize returns the side of one cell in pixels.
func (g *Grid) CellSize() int { return g.cellSize }

// Start returns the cell the player spawns in.
func (g *Grid) Start() Cell { return g.start }

// Goal returns the goal cell.
func (g *Grid) Goal() Cell { return g.goal }

// InBounds reports whether the cell lies inside the grid.
func (g *Grid) InBounds(c Cell) bool {
	return c.Row >= 0 && c.Row < g.rows && c.Col >= 0 && c.Col < g.cols
}

// CellAt returns the kind of the cell at (row, col).
func (g *Grid) CellAt(row, col int) (CellKind, error) {
	if !g.InBounds(Cell{Row: row, Col: col}) {
		return Wall, fmt.Errorf("cell (%d,%d) in %dx%d grid: %w", row, col, g.rows, g.cols, ErrOutOfBounds)
	}
	return g.cells[row*g.cols+col], nil
}

// kind returns the kind of c, treating anything outside the grid as Wall.
func (g *Grid) kind(c Cell) CellKind {
	if !g.InBounds(c) {
		return Wall
	}
	return g.cells[c.Row*g.cols+c.Col]
}

func (g *Grid) set(c Cell, k CellKind) {
	g.cells[c.Row*g.cols+c.Col] = k
}

// IsFloor reports whether the cell is passable (Floor or Goal).
func (g *Grid) IsFloor(c Cell) bool {
	return g.kind(c).Passable()
}

// IsWall reports whether the cell is a wall. Cells outside the grid are walls.
func (g *Grid) IsWall(c Cell) bool {
	return g.kind(c) == Wall
}

// IsDamage reports whether the cell is a damage wall.
func (g *Grid) IsDamage(c Cell) bool {
	return g.damage.Has(c)
}

// DamageWalls returns the damage wall cells in row-major order.
func (g *Grid) DamageWalls() []Cell {
	out := make([]Cell, 0, g.damage.Size())
	for i := range g.cells {
		c := Cell{Row: i / g.cols, Col: i % g.cols}
		if g.damage.Has(c) {
			out = append(out, c)
		}
	}
	return out
}

// FloorCells returns every passable cell in row-major order.
func (g *Grid) FloorCells() []Cell {
	var out []Cell
	for i, k := range g.cells {
		if k.Passable() {
			out = append(out, Cell{Row: i / g.cols, Col: i % g.cols})
		}
	}
	return out
}

// CellRect returns the pixel box covered by a cell.
func (g *Grid) CellRect(c Cell) platformcore.Rect {
	return platformcore.NewRect(c.Col*g.cellSize, c.Row*g.cellSize, g.cellSize, g.cellSize)
}

// PixelToCell returns the cell containing pixel (x, y).
func (g *Grid) PixelToCell(x, y int) Cell {
	return Cell{Row: floorDiv(y, g.cellSize), Col: floorDiv(x, g.cellSize)}
}

// Bounds returns the pixel box of the whole playfield.
func (g *Grid) Bounds() platformcore.Rect {
	return platformcore.NewRect(0, 0, g.cols*g.cellSize, g.rows*g.cellSize)
}

// covered calls fn for every cell r overlaps until fn returns true.
func (g *Grid) covered(r platformcore.Rect, fn func(Cell) bool) bool {
	if r.W <= 0 || r.H <= 0 {
		return false
	}
	top := g.PixelToCell(r.X, r.Y)
	bottom := g.PixelToCell(r.Right()-1, r.Bottom()-1)
	for row := top.Row; row <= bottom.Row; row++ {
		for col := top.Col; col <= bottom.Col; col++ {
			if fn(Cell{Row: row, Col: col}) {
				return true
			}
		}
	}
	return false
}

// OverlapsWall reports whether r overlaps any wall cell.
// Pixels outside the grid count as wall.
func (g *Grid) OverlapsWall(r platformcore.Rect) bool {
	return g.covered(r, g.IsWall)
}

// OverlapsDamage reports whether r overlaps any damage wall cell.
func (g *Grid) OverlapsDamage(r platformcore.Rect) bool {
	if g.damage.Size() == 0 {
		return false
	}
	return g.covered(r, g.IsDamage)
}

// OverlapsGoal reports whether r overlaps the goal cell.
func (g *Grid) OverlapsGoal(r platformcore.Rect) bool {
	if !g.InBounds(g.goal) {
		return false
	}
	return r.Intersects(g.CellRect(g.goal))
}

// Validate checks the maze invariants: walled border, exactly one goal,
// and every passable cell reachable from the start.
func (g *Grid) Validate() error {
	for row := 0; row < g.rows; row++ {
		for col := 0; col < g.cols; col++ {
			border := row == 0 || col == 0 || row == g.rows-1 || col == g.cols-1
			if border && g.kind(Cell{Row: row, Col: col}) != Wall {
				return fmt.Errorf("border cell (%d,%d) is not a wall", row, col)
			}
		}
	}

	goals := 0
	for _, k := range g.cells {
		if k == Goal {
			goals++
		}
	}
	if goals != 1 {
		return fmt.Errorf("expected exactly one goal, found %d", goals)
	}

	if !g.IsFloor(g.start) {
		return fmt.Errorf("start cell %s is not passable", g.start)
	}
	dist := Distances(g, g.start)
	for _, c := range g.FloorCells() {
		if dist[c.Row][c.Col] < 0 {
			return fmt.Errorf("cell %s is unreachable from start", c)
		}
	}
	for _, c := range g.DamageWalls() {
		if !g.IsWall(c) {
			return fmt.Errorf("damage cell %s is not a wall", c)
		}
	}
	return nil
}

// String renders the grid as ASCII: '#' wall, '.' floor, 'G' goal, 'D' damage wall.
func (g *Grid) String() string {
	var b strings.Builder
	b.Grow(g.rows * (g.cols + 1))
	for row := 0; row < g.rows; row++ {
		for col := 0; col < g.cols; col++ {
			c := Cell{Row: row, Col: col}
			switch {
			case g.IsDamage(c):
				b.WriteByte('D')
			case g.kind(c) == Goal:
				b.WriteByte('G')
			case g.kind(c) == Floor:
				b.WriteByte('.')
			default:
				b.WriteByte('#')
			}
		}
		if row < g.rows-1 {
			b.WriteByte('\n')
		}
	}
	return b.String()
}

// ParseGrid builds a grid from an ASCII layout ('#' wall, '.' floor, 'G' goal,
// 'D' damage wall). Short rows are padded with walls. The start cell stays (1,1).
func ParseGrid(lines []string, cellSize int) (*Grid, error) {
	if cellSize <= 0 {
		return nil, fmt.Errorf("cell size %d: %w", cellSize, ErrInvalidDimensions)
	}
	rows := len(lines)
	cols := 0
	for _, line := range lines {
		if len(line) > cols {
			cols = len(line)
		}
	}
	if rows == 0 || cols == 0 {
		return nil, fmt.Errorf("empty layout: %w", ErrInvalidDimensions)
	}

	g := newGrid(rows, cols, cellSize)
	for row, line := range lines {
		for col, ch := range []byte(line) {
			c := Cell{Row: row, Col: col}
			switch ch {
			case '#':
			case '.', ' ':
				g.set(c, Floor)
			case 'G':
				if g.InBounds(g.goal) {
					return nil, fmt.Errorf("second goal at %s", c)
				}
				g.set(c, Goal)
				g.goal = c
			case 'D':
				g.damage.Put(c)
			default:
				return nil, fmt.Errorf("unknown cell %q at %s", ch, c)
			}
		}
	}
	return g, nil
}

func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}
