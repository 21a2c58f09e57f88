package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-maze/internal/config"
	"github.com/vovakirdan/tui-maze/internal/games/maze"
)

var configCmd = &cobra.Command{
	Use:   "config [maze]",
	Short: "Print the effective configuration",
	Long: `Print the configuration a maze variant runs with, after the config
file search, MAZE_* environment overrides and the variant's own settings.

The output is valid YAML and can be saved as ~/.maze/configs/maze.yaml.

Examples:
  maze config
  maze config maze_mobs
  MAZE_ROWS=15 maze config`,
	Args: cobra.MaximumNArgs(1),
	Run:  runConfig,
}

func runConfig(_ *cobra.Command, args []string) {
	id := "maze"
	if len(args) == 1 {
		id = args[0]
	}

	v, ok := maze.VariantByID(id)
	if !ok {
		stderr.Fatal("unknown maze", "id", id)
	}

	cfg, err := maze.LoadConfig(v)
	if err != nil {
		stderr.Fatal("cannot load config", "err", err)
	}

	out, err := config.Marshal(cfg)
	if err != nil {
		stderr.Fatal(err)
	}
	fmt.Print(string(out))
}
