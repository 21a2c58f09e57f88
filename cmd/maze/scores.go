package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-maze/internal/registry"
	"github.com/vovakirdan/tui-maze/internal/storage"
)

var (
	flagFastest bool
	flagLimit   int
	flagClear   bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores <maze>",
	Short: "Show the run log for a maze",
	Long: `Display the best runs for the specified maze variant.

Examples:
  maze scores maze
  maze scores maze_mobs --fastest
  maze scores maze --clear`,
	Args: cobra.ExactArgs(1),
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagFastest, "fastest", false, "List the quickest clears instead of top scores")
	scoresCmd.Flags().IntVar(&flagLimit, "limit", 10, "Number of runs to show")
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete all recorded runs for the maze")
}

func runScores(_ *cobra.Command, args []string) {
	gameID := args[0]

	if !registry.Exists(gameID) {
		stderr.Error("unknown maze", "id", gameID)
		stderr.Print("Run 'maze list' to see available mazes.")
		os.Exit(1)
	}

	game, err := registry.Create(gameID)
	if err != nil {
		stderr.Fatal("cannot create game", "err", err)
	}
	title := game.Title()

	store, err := storage.Open(flagDBPath)
	if err != nil {
		stderr.Fatal("cannot open runs database", "err", err)
	}
	defer store.Close()

	if flagClear {
		if err := store.ClearRuns(gameID); err != nil {
			stderr.Error(err)
			return
		}
		fmt.Printf("Cleared all runs for %s.\n", title)
		return
	}

	var runs []storage.Run
	if flagFastest {
		runs, err = store.FastestClears(gameID, flagLimit)
	} else {
		runs, err = store.TopRuns(gameID, flagLimit)
	}
	if err != nil {
		stderr.Error(err)
		return
	}

	heading := "Top Runs"
	if flagFastest {
		heading = "Fastest Clears"
	}
	fmt.Printf("%s - %s\n", heading, title)
	fmt.Println()

	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'maze play %s' to start the log!\n", gameID)
		return
	}

	printRuns(os.Stdout, runs)

	if stats, err := store.GetGameStats(gameID); err == nil {
		fmt.Println()
		fmt.Printf("Runs: %d  Cleared: %d  Best: %d  Avg: %.1f\n",
			stats.RunsCount, stats.Clears, stats.HighScore, stats.AvgScore)
	}
}
