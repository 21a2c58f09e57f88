package core

import (
	"fmt"
	"math/rand"
	"strings"
)

// DamageMode selects how damage walls are derived after carving.
type DamageMode uint8

const (
	DamageNone DamageMode = iota
	DamageAdjacency
	DamageProbabilistic
)

// String returns the configuration name of the mode.
func (m DamageMode) String() string {
	switch m {
	case DamageNone:
		return "none"
	case DamageAdjacency:
		return "adjacency"
	case DamageProbabilistic:
		return "probabilistic"
	default:
		return "unknown"
	}
}

// ParseDamageMode parses a configuration name into a DamageMode.
func ParseDamageMode(s string) (DamageMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "none":
		return DamageNone, nil
	case "adjacency":
		return DamageAdjacency, nil
	case "probabilistic":
		return DamageProbabilistic, nil
	default:
		return DamageNone, fmt.Errorf("policy %q: %w", s, ErrInvalidPolicy)
	}
}

// DamagePolicy decides which walls hurt the player.
type DamagePolicy struct {
	Mode DamageMode
	P    float64 // Per-wall probability for DamageProbabilistic
}

// GenParams controls maze generation.
type GenParams struct {
	Rows     int
	Cols     int
	CellSize int
	Seed     int64
	Damage   DamagePolicy
}

// DefaultGenParams returns the generation parameters used by the default variant.
func DefaultGenParams() GenParams {
	return GenParams{
		Rows:     21,
		Cols:     31,
		CellSize: DefaultCellSize,
		Seed:     1,
		Damage:   DamagePolicy{Mode: DamageAdjacency},
	}
}

// Validate checks that the parameters can produce a maze.
func (p GenParams) Validate() error {
	if p.Rows < 3 || p.Cols < 3 {
		return fmt.Errorf("%dx%d grid: %w", p.Rows, p.Cols, ErrInvalidDimensions)
	}
	if p.CellSize <= 0 {
		return fmt.Errorf("cell size %d: %w", p.CellSize, ErrInvalidDimensions)
	}
	if p.Damage.Mode > DamageProbabilistic {
		return fmt.Errorf("mode %d: %w", p.Damage.Mode, ErrInvalidPolicy)
	}
	if p.Damage.Mode == DamageProbabilistic && (p.Damage.P < 0 || p.Damage.P > 1) {
		return fmt.Errorf("probability %v: %w", p.Damage.P, ErrInvalidPolicy)
	}
	return nil
}

// Generate carves a perfect maze and places the goal at the cell furthest
// from the start. The result is a pure function of the parameters.
func Generate(p GenParams) (*Grid, error) {
	return generate(p, rand.New(rand.NewSource(p.Seed)))
}

// generate draws from rng so a session can keep using the same stream for spawns.
func generate(p GenParams, rng *rand.Rand) (*Grid, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}

	g := newGrid(p.Rows, p.Cols, p.CellSize)
	g.set(g.start, Floor)
	carve(g, rng)

	_, far := search(g, g.start)
	g.set(far, Goal)
	g.goal = far

	markDamage(g, p.Damage, rng)
	return g, nil
}

// carveFrame is one level of the backtracking walk.
type carveFrame struct {
	cell Cell
	dirs [4]Dir
	next int
}

func shuffledDirs(rng *rand.Rand) [4]Dir {
	dirs := Cardinals
	rng.Shuffle(len(dirs), func(i, j int) {
		dirs[i], dirs[j] = dirs[j], dirs[i]
	})
	return dirs
}

// carve runs randomized backtracking from the start cell on an explicit stack.
// Directions are shuffled when a cell is entered, so the RNG is consumed in
// the same order as the recursive formulation.
func carve(g *Grid, rng *rand.Rand) {
	stack := []carveFrame{{cell: g.start, dirs: shuffledDirs(rng)}}

	for len(stack) > 0 {
		top := &stack[len(stack)-1]
		if top.next == len(top.dirs) {
			stack = stack[:len(stack)-1]
			continue
		}
		d := top.dirs[top.next]
		top.next++

		dest := top.cell.Step(d, 2)
		if dest.Row <= 0 || dest.Row >= g.rows-1 || dest.Col <= 0 || dest.Col >= g.cols-1 {
			continue
		}
		if g.kind(dest) != Wall {
			continue
		}
		g.set(top.cell.Step(d, 1), Floor)
		g.set(dest, Floor)
		stack = append(stack, carveFrame{cell: dest, dirs: shuffledDirs(rng)})
	}
}

// markDamage flags damage walls according to the policy.
func markDamage(g *Grid, policy DamagePolicy, rng *rand.Rand) {
	switch policy.Mode {
	case DamageAdjacency:
		for i, k := range g.cells {
			if k != Wall {
				continue
			}
			c := Cell{Row: i / g.cols, Col: i % g.cols}
			for _, d := range Cardinals {
				if g.IsFloor(c.Step(d, 1)) {
					g.damage.Put(c)
					break
				}
			}
		}
	case DamageProbabilistic:
		for i, k := range g.cells {
			if k == Wall && rng.Float64() < policy.P {
				g.damage.Put(Cell{Row: i / g.cols, Col: i % g.cols})
			}
		}
	}
}
