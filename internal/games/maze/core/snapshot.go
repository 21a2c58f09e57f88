package core

import "slices"

// Snapshot is a read-only copy of the session state for renderers and tests.
type Snapshot struct {
	Tick   uint64
	Status Status
	Seed   int64
	Goal   Cell
	Player Player
	Mobs   []Mob
	Items  []Item
}

// Snapshot returns a copy of the current state. Mutating it does not affect the session.
func (s *Session) Snapshot() Snapshot {
	return Snapshot{
		Tick:   s.tick,
		Status: s.status,
		Seed:   s.params.Gen.Seed,
		Goal:   s.grid.Goal(),
		Player: s.player,
		Mobs:   slices.Clone(s.mobs),
		Items:  slices.Clone(s.items),
	}
}
