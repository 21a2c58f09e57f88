package main

import (
	"fmt"
	"io"

	"github.com/vovakirdan/tui-maze/internal/games/maze/core"
	"github.com/vovakirdan/tui-maze/internal/storage"
)

// printRuns writes runs as an aligned table.
func printRuns(w io.Writer, runs []storage.Run) {
	fmt.Fprintf(w, "  %-4s  %-6s  %-9s  %-7s  %-6s  %s\n", "Rank", "Score", "Outcome", "Ticks", "HP", "Date")
	fmt.Fprintf(w, "  %-4s  %-6s  %-9s  %-7s  %-6s  %s\n", "----", "-----", "-------", "-----", "--", "----")
	for i, r := range runs {
		fmt.Fprintf(w, "  %-4d  %-6d  %-9s  %-7d  %-6d  %s\n",
			i+1, r.Score, r.Outcome, r.Ticks, r.HP, r.CreatedAt.Format("2006-01-02 15:04"))
	}
}

// printMaze writes the grid followed by its start, goal and path length.
func printMaze(w io.Writer, g *core.Grid, seed int64) {
	fmt.Fprintln(w, g.String())
	dist := core.Distances(g, g.Start())
	goal := g.Goal()
	fmt.Fprintf(w, "seed %d  size %dx%d  start %s  goal %s  distance %d  damage walls %d\n",
		seed, g.Rows(), g.Cols(), g.Start(), goal, dist[goal.Row][goal.Col], len(g.DamageWalls()))
}
