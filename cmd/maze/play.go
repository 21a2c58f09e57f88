package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-maze/internal/core"
	"github.com/vovakirdan/tui-maze/internal/games/maze"
	"github.com/vovakirdan/tui-maze/internal/platform/tui"
	"github.com/vovakirdan/tui-maze/internal/registry"
	"github.com/vovakirdan/tui-maze/internal/storage"
)

var playCmd = &cobra.Command{
	Use:   "play <maze>",
	Short: "Play a maze",
	Long: `Start playing the specified maze variant.

Controls:
  Arrows/WASD/HJKL - Move
  P/Space          - Pause
  R                - New maze (after the run ends)
  B/Esc            - Leave
  Ctrl+S           - Save a text screenshot
  Q/Ctrl+C         - Quit

Examples:
  maze play maze
  maze play maze_mobs --seed 42
  maze play maze_items --config ./my-maze.yaml`,
	Args: cobra.ExactArgs(1),
	RunE: runPlay,
}

func runPlay(_ *cobra.Command, args []string) error {
	gameID := args[0]

	if !registry.Exists(gameID) {
		return fmt.Errorf("%w %q, run 'maze list' to see available mazes", registry.ErrUnknownGame, gameID)
	}

	// Fail before taking over the terminal
	if v, ok := maze.VariantByID(gameID); ok {
		if _, err := maze.LoadConfig(v); err != nil {
			return fmt.Errorf("cannot load config: %w", err)
		}
	}

	game, err := registry.Create(gameID)
	if err != nil {
		return err
	}

	logger, closeLog, err := sessionLogger()
	if err != nil {
		return err
	}
	defer closeLog()

	store, err := storage.Open(flagDBPath)
	if err != nil {
		// Continue without storage - the game still works
		stderr.Warn("could not open runs database", "err", err)
		store = nil
	}
	if store != nil {
		defer store.Close()
	}

	if _, err := tui.Run(game, store, logger, runtimeConfig()); err != nil {
		return fmt.Errorf("error running game: %w", err)
	}
	if mg, ok := game.(*maze.Game); ok && mg.Err() != nil {
		return fmt.Errorf("maze could not start: %w", mg.Err())
	}
	return nil
}

// runtimeConfig builds the runtime config from the terminal size and flags.
func runtimeConfig() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}
	cfg.TickRate = flagFPS
	cfg.Seed = flagSeed
	return cfg
}
