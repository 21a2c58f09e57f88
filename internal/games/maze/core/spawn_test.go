package core

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlaceN(t *testing.T) {
	g, err := Generate(genParams(21, 31, 11))
	require.NoError(t, err)

	placer := Placer{Grid: g, Rng: rand.New(rand.NewSource(11)), MaxAttempts: 1000}
	pred := AllOf(AvoidCells(g.Start(), g.Goal()), OutsideRadius(g.Start(), 3))
	boxes, err := placer.PlaceN(12, 16, pred)
	require.NoError(t, err)
	require.Len(t, boxes, 12)

	for i, b := range boxes {
		assert.False(t, g.OverlapsWall(b), "box %d overlaps a wall", i)
		c := g.PixelToCell(b.X, b.Y)
		assert.True(t, pred(c), "box %d at rejected cell %s", i, c)
		for j := i + 1; j < len(boxes); j++ {
			assert.False(t, b.Intersects(boxes[j]), "boxes %d and %d overlap", i, j)
		}
	}
}

func TestPlaceNInsufficientSpace(t *testing.T) {
	g, err := ParseGrid(smallLayout, 32)
	require.NoError(t, err)
	placer := Placer{Grid: g, Rng: rand.New(rand.NewSource(1)), MaxAttempts: 200}

	boxes, err := placer.PlaceN(8, 32, nil)
	require.NoError(t, err)
	assert.Len(t, boxes, 8)

	_, err = placer.PlaceN(9, 32, nil)
	assert.True(t, errors.Is(err, ErrInsufficientSpace), "got %v", err)

	_, err = placer.PlaceN(1, 16, func(Cell) bool { return false })
	assert.True(t, errors.Is(err, ErrInsufficientSpace), "got %v", err)
}

func TestPlaceNZero(t *testing.T) {
	g, err := ParseGrid(smallLayout, 32)
	require.NoError(t, err)
	boxes, err := Placer{Grid: g, Rng: rand.New(rand.NewSource(1))}.PlaceN(0, 16, nil)
	assert.NoError(t, err)
	assert.Empty(t, boxes)
}

func TestPredicates(t *testing.T) {
	center := Cell{Row: 5, Col: 5}
	near := OutsideRadius(center, 2)
	assert.False(t, near(Cell{Row: 5, Col: 7}))
	assert.True(t, near(Cell{Row: 5, Col: 8}))
	assert.False(t, near(Cell{Row: 6, Col: 6}))

	avoid := AvoidCells(Cell{Row: 1, Col: 1})
	assert.False(t, avoid(Cell{Row: 1, Col: 1}))
	assert.True(t, avoid(Cell{Row: 1, Col: 2}))

	assert.True(t, AllOf()(center))
	assert.False(t, AllOf(near, avoid)(center))
}
