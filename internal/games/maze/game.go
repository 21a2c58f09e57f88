// Package maze provides the maze game for the terminal platform: it loads the
// configuration, drives a core session from key presses, and draws it.
package maze

import (
	"fmt"

	"github.com/vovakirdan/tui-maze/internal/config"
	platformcore "github.com/vovakirdan/tui-maze/internal/core"
	"github.com/vovakirdan/tui-maze/internal/games/maze/core"
	"github.com/vovakirdan/tui-maze/internal/registry"
)

// configPath stores the custom config path set via CLI
var configPath string

// envFile is the dotenv file consulted for MAZE_* overrides.
var envFile = ".env"

// seedOverride is an explicitly requested seed; it wins over the config seed.
var seedOverride int64

// SetSeedOverride makes every run use seed. Zero clears the override.
func SetSeedOverride(seed int64) {
	seedOverride = seed
}

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetEnvFile sets the dotenv file read for overrides. Empty disables it.
func SetEnvFile(path string) {
	envFile = path
}

// LoadConfig loads the config for a variant: file search, environment
// overrides, the variant's adjustments, then the seed override.
func LoadConfig(v Variant) (config.MazeConfig, error) {
	cfg, err := config.LoadMaze(configPath)
	if err != nil {
		return cfg, err
	}
	if err := config.ApplyEnv(&cfg, envFile); err != nil {
		return cfg, err
	}
	v.Apply(&cfg)
	if seedOverride != 0 {
		cfg.Seed = seedOverride
	}
	return cfg, cfg.Validate()
}

// Game implements registry.Game on top of a core session.
type Game struct {
	variant Variant
	cfg     config.MazeConfig
	session *core.Session
	err     error // Set when the session could not be built
	hold    holdState
	seed    int64
	paused  bool
	events  []string // Events of the last tick
}

// New creates a game for the given variant.
func New(v Variant) *Game {
	return &Game{variant: v}
}

func init() {
	for _, v := range Variants {
		registry.Register(v.ID, func() registry.Game {
			return New(v)
		})
	}
}

// ID returns the variant identifier.
func (g *Game) ID() string {
	return g.variant.ID
}

// Title returns the display name.
func (g *Game) Title() string {
	return g.variant.Title
}

// Reset builds a new maze and spawns everything on it.
func (g *Game) Reset(runtime platformcore.RuntimeConfig) {
	g.session = nil
	g.err = nil
	g.paused = false
	g.events = nil

	cfg, err := LoadConfig(g.variant)
	if err != nil {
		g.err = err
		return
	}
	g.resetWith(cfg, runtime.Seed)
}

// resetWith builds the session from an already loaded config.
func (g *Game) resetWith(cfg config.MazeConfig, seed int64) {
	g.cfg = cfg
	g.hold = newHoldState(cfg.Input.HoldTicks)

	params, err := ParamsFromConfig(cfg, seed)
	if err != nil {
		g.err = err
		return
	}
	g.seed = params.Gen.Seed

	session, err := core.NewSession(params)
	if err != nil {
		g.err = fmt.Errorf("maze: cannot start session: %w", err)
		return
	}
	g.session = session
}

// Step advances the game by one tick.
func (g *Game) Step(in platformcore.InputFrame) platformcore.StepResult {
	g.events = g.events[:0]

	if g.session == nil || g.session.Status().Terminal() {
		return platformcore.StepResult{State: g.State()}
	}

	// Handle pause toggle
	if in.Has(platformcore.ActionPause) {
		g.paused = !g.paused
		g.hold.Release()
	}
	if g.paused {
		return platformcore.StepResult{State: g.State()}
	}

	res := g.session.Step(g.hold.Update(in))
	for _, e := range res.Events {
		g.events = append(g.events, describeEvent(e))
	}
	if res.Status.Terminal() {
		g.hold.Release()
	}

	return platformcore.StepResult{State: g.State(), Events: g.events}
}

func describeEvent(e core.Event) string {
	switch e.Kind {
	case core.EventItemPicked:
		return fmt.Sprintf("picked %s (hp %d)", e.Item, e.HP)
	case core.EventDamaged:
		return fmt.Sprintf("damaged (hp %d)", e.HP)
	default:
		return e.Kind.String()
	}
}

// State returns the current game state.
func (g *Game) State() platformcore.GameState {
	st := platformcore.GameState{
		Seed:   g.seed,
		Paused: g.paused,
	}
	if g.session == nil {
		// A run that could not start is over from the platform's point of view.
		st.GameOver = g.err != nil
		return st
	}

	snap := g.session.Snapshot()
	st.Score = snap.Player.Score
	st.HP = snap.Player.HP
	st.Ticks = snap.Tick
	st.GameOver = snap.Status.Terminal()
	st.Cleared = snap.Status == core.Cleared
	return st
}

// Err returns the error that prevented the session from starting, if any.
func (g *Game) Err() error {
	return g.err
}

// Session exposes the running session for read-only inspection.
func (g *Game) Session() *core.Session {
	return g.session
}
