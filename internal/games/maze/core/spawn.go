package core

import (
	"fmt"
	"math/rand"

	platformcore "github.com/vovakirdan/tui-maze/internal/core"
)

// DefaultMaxAttempts bounds the samples a placement pass may draw.
const DefaultMaxAttempts = 1000

// CellPredicate filters candidate spawn cells.
type CellPredicate func(Cell) bool

// AvoidCells rejects the listed cells.
func AvoidCells(cells ...Cell) CellPredicate {
	return func(c Cell) bool {
		for _, x := range cells {
			if c == x {
				return false
			}
		}
		return true
	}
}

// OutsideRadius rejects cells within Manhattan distance radius of center.
func OutsideRadius(center Cell, radius int) CellPredicate {
	return func(c Cell) bool {
		return c.Manhattan(center) > radius
	}
}

// AllOf accepts a cell only if every predicate accepts it.
func AllOf(preds ...CellPredicate) CellPredicate {
	return func(c Cell) bool {
		for _, p := range preds {
			if p != nil && !p(c) {
				return false
			}
		}
		return true
	}
}

// Placer scatters boxes onto floor cells by rejection sampling.
type Placer struct {
	Grid        *Grid
	Rng         *rand.Rand
	MaxAttempts int
}

// PlaceN places count boxes of size×size pixels at the origin of random floor
// cells accepted by pred. Boxes never overlap a wall or each other.
// It fails with ErrInsufficientSpace once MaxAttempts samples are used up.
func (p Placer) PlaceN(count, size int, pred CellPredicate) ([]platformcore.Rect, error) {
	if count <= 0 {
		return nil, nil
	}

	var candidates []Cell
	for _, c := range p.Grid.FloorCells() {
		if pred == nil || pred(c) {
			candidates = append(candidates, c)
		}
	}
	if len(candidates) == 0 {
		return nil, fmt.Errorf("no candidate cells for %d boxes: %w", count, ErrInsufficientSpace)
	}

	limit := p.MaxAttempts
	if limit <= 0 {
		limit = DefaultMaxAttempts
	}

	proto := platformcore.NewRect(0, 0, size, size)
	placed := make([]platformcore.Rect, 0, count)
	for attempt := 0; attempt < limit && len(placed) < count; attempt++ {
		c := candidates[p.Rng.Intn(len(candidates))]
		origin := p.Grid.CellRect(c)
		box := proto.At(origin.X, origin.Y)
		if p.Grid.OverlapsWall(box) || overlapsAny(box, placed) {
			continue
		}
		placed = append(placed, box)
	}

	if len(placed) < count {
		return placed, fmt.Errorf("placed %d of %d boxes in %d attempts: %w", len(placed), count, limit, ErrInsufficientSpace)
	}
	return placed, nil
}

func overlapsAny(r platformcore.Rect, others []platformcore.Rect) bool {
	for _, o := range others {
		if r.Intersects(o) {
			return true
		}
	}
	return false
}
