package core

import (
	"math/rand"

	platformcore "github.com/vovakirdan/tui-maze/internal/core"
)

// MobKind selects a mob's movement rule.
type MobKind uint8

const (
	// Wanderer walks straight until blocked, then turns randomly.
	Wanderer MobKind = iota
	// Tracker steers toward the player every tick.
	Tracker
)

// String returns the string representation of a mob kind.
func (k MobKind) String() string {
	switch k {
	case Wanderer:
		return "Wanderer"
	case Tracker:
		return "Tracker"
	default:
		return "Unknown"
	}
}

// Mob is a hostile entity. Touching one ends the run.
type Mob struct {
	Kind   MobKind
	Box    platformcore.Rect
	Speed  int
	Facing Intent
}

// MoveContext is what a mob may observe while advancing.
type MoveContext struct {
	Grid   *Grid
	Player platformcore.Rect
	Rng    *rand.Rand
}

func randomFacing(rng *rand.Rand) Intent {
	return IntentOf(Cardinals[rng.Intn(len(Cardinals))])
}

// Advance moves the mob one tick according to its kind.
func (m *Mob) Advance(ctx MoveContext) {
	switch m.Kind {
	case Wanderer:
		if !m.try(ctx.Grid, m.Facing) {
			m.Facing = randomFacing(ctx.Rng)
		}
	case Tracker:
		m.Facing = Intent{
			DX: platformcore.Sign(ctx.Player.X - m.Box.X),
			DY: platformcore.Sign(ctx.Player.Y - m.Box.Y),
		}
		if !m.try(ctx.Grid, m.Facing) {
			m.Facing = randomFacing(ctx.Rng)
			m.try(ctx.Grid, m.Facing)
		}
	}

	if !m.Box.Inside(ctx.Grid.Bounds()) {
		m.Facing = randomFacing(ctx.Rng)
	}
}

// try moves the mob along dir unless the destination overlaps a wall.
func (m *Mob) try(g *Grid, dir Intent) bool {
	if dir.IsZero() {
		return true
	}
	probe := m.Box.Translate(dir.DX*m.Speed, dir.DY*m.Speed)
	if g.OverlapsWall(probe) {
		return false
	}
	m.Box = probe
	return true
}
