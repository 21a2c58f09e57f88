package main

import (
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-maze/internal/games/maze"
	"github.com/vovakirdan/tui-maze/internal/games/maze/core"
)

var (
	flagRows    int
	flagCols    int
	flagPolicy  string
	flagPercent float64
	flagVariant string
)

var genCmd = &cobra.Command{
	Use:   "gen",
	Short: "Print a generated maze",
	Long: `Generate a maze and print it as text.

Legend: # wall, . floor, G goal, D damage wall.
Unset flags fall back to the loaded configuration.

Examples:
  maze gen
  maze gen --rows 11 --cols 11 --seed 42
  maze gen --policy probabilistic --p 0.2`,
	Args: cobra.NoArgs,
	Run:  runGen,
}

func init() {
	genCmd.Flags().IntVar(&flagRows, "rows", 0, "Grid rows")
	genCmd.Flags().IntVar(&flagCols, "cols", 0, "Grid columns")
	genCmd.Flags().StringVar(&flagPolicy, "policy", "", "Damage wall policy: none, adjacency, probabilistic")
	genCmd.Flags().Float64Var(&flagPercent, "p", 0, "Damage wall probability for the probabilistic policy")
	genCmd.Flags().StringVar(&flagVariant, "variant", "maze", "Variant whose config is used")
}

func runGen(cmd *cobra.Command, _ []string) {
	v, ok := maze.VariantByID(flagVariant)
	if !ok {
		stderr.Fatal("unknown maze", "id", flagVariant)
	}

	cfg, err := maze.LoadConfig(v)
	if err != nil {
		stderr.Fatal("cannot load config", "err", err)
	}

	flags := cmd.Flags()
	if flags.Changed("rows") {
		cfg.Rows = flagRows
	}
	if flags.Changed("cols") {
		cfg.Cols = flagCols
	}
	if flags.Changed("policy") {
		cfg.DamageWalls.Policy = flagPolicy
	}
	if flags.Changed("p") {
		cfg.DamageWalls.Probability = flagPercent
	}

	seed := flagSeed
	if seed == 0 && cfg.Seed == 0 {
		seed = time.Now().UnixNano()
	}
	params, err := maze.ParamsFromConfig(cfg, seed)
	if err != nil {
		stderr.Fatal(err)
	}

	grid, err := core.Generate(params.Gen)
	if err != nil {
		stderr.Fatal("cannot generate maze", "err", err)
	}
	printMaze(os.Stdout, grid, params.Gen.Seed)
}
