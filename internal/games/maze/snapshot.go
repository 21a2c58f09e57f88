package maze

import "github.com/vovakirdan/tui-maze/internal/games/maze/core"

// GameStateType represents the current game state.
type GameStateType string

const (
	StatePlaying GameStateType = "playing"
	StatePaused  GameStateType = "paused"
	StateCleared GameStateType = "cleared"
	StateLost    GameStateType = "game_over"
	StateError   GameStateType = "error"
)

// Snapshot captures the game state for determinism testing.
type Snapshot struct {
	Variant string
	Seed    int64
	Tick    uint64
	Score   int
	HP      int
	PlayerX int
	PlayerY int
	Mobs    int
	Items   int
	Goal    core.Cell
	State   GameStateType
}

// Snapshot returns the current game snapshot for determinism verification.
func (g *Game) Snapshot() Snapshot {
	s := Snapshot{Variant: g.variant.ID, Seed: g.seed, State: StateError}
	if g.session == nil {
		return s
	}

	snap := g.session.Snapshot()
	s.Tick = snap.Tick
	s.Score = snap.Player.Score
	s.HP = snap.Player.HP
	s.PlayerX = snap.Player.Box.X
	s.PlayerY = snap.Player.Box.Y
	s.Mobs = len(snap.Mobs)
	s.Items = len(snap.Items)
	s.Goal = snap.Goal

	switch {
	case snap.Status == core.Cleared:
		s.State = StateCleared
	case snap.Status == core.GameOver:
		s.State = StateLost
	case g.paused:
		s.State = StatePaused
	default:
		s.State = StatePlaying
	}
	return s
}
