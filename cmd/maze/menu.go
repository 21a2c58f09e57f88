package main

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-maze/internal/platform/tui"
	"github.com/vovakirdan/tui-maze/internal/registry"
	"github.com/vovakirdan/tui-maze/internal/storage"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start with a maze picker menu",
	Long: `Start in interactive menu mode.

Use arrow keys or j/k to navigate, Enter to select a maze.
After a run ends and you leave it, you return to the menu.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Select maze
  Tab          - Run log
  Q            - Quit

Examples:
  maze menu
  maze menu --fps 30
  maze menu --db ./runs.db`,
	Run: runMenu,
}

func runMenu(_ *cobra.Command, _ []string) {
	logger, closeLog, err := sessionLogger()
	if err != nil {
		stderr.Fatal(err)
	}
	defer closeLog()

	store, err := storage.Open(flagDBPath)
	if err != nil {
		stderr.Warn("could not open runs database", "err", err)
		store = nil
	}
	defer func() {
		if store != nil {
			store.Close()
		}
	}()

	cfg := runtimeConfig()

	for {
		menuResult, err := tui.RunMenu(store, cfg)
		if err != nil {
			stderr.Error(err)
			return
		}
		cfg = menuResult.Config

		if menuResult.Quit {
			return
		}

		if menuResult.WantsScoreboard {
			goBack, sbErr := tui.RunScoreboard(store, cfg.ScreenW, cfg.ScreenH)
			if sbErr != nil {
				stderr.Error(sbErr)
			}
			if goBack {
				continue
			}
			return
		}

		game, err := registry.Create(menuResult.GameID)
		if err != nil {
			stderr.Error("cannot create game", "err", err)
			continue
		}

		// A fixed --seed replays the same maze; otherwise every run is new
		runCfg := cfg
		if flagSeed == 0 {
			runCfg.Seed = time.Now().UnixNano()
		}

		back, err := tui.Run(game, store, logger, runCfg)
		if err != nil {
			stderr.Error("error running game", "err", err)
		}
		if !back && err == nil {
			return
		}
	}
}
