// maze is a terminal maze game: carve a maze, dodge its mobs, reach the goal.
//
// Usage:
//
//	maze list              - List available mazes
//	maze play <maze>       - Play a maze
//	maze menu              - Start menu to pick mazes interactively
//	maze scores <maze>     - Show the run log for a maze
//	maze gen               - Print a generated maze as text
//	maze config            - Print the effective configuration
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 60)
//	--seed <value>        - Set RNG seed for reproducible mazes
//	--db <path>           - Set database path (default: ~/.maze/runs.db)
//	--config <path>       - Custom maze config YAML
//	--env-file <path>     - Dotenv file with MAZE_* overrides (default: .env)
//	--log-file <path>     - Write session logs to a file
//	--log-level <level>   - debug, info, warn or error (default: info)
package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-maze/internal/games/maze"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagDBPath   string
	flagConfig   string
	flagEnvFile  string
	flagLogFile  string
	flagLogLevel string
)

// stderr reports command errors; it never writes while a TUI is running.
var stderr = log.NewWithOptions(os.Stderr, log.Options{Prefix: "maze"})

func main() {
	if err := rootCmd.Execute(); err != nil {
		stderr.Error(err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "maze",
	Short: "Maze - find the goal in a freshly carved maze",
	Long: `Maze is a terminal game: every run carves a new maze from a seed.
Walk to the goal, pick up items, avoid damage walls and the mobs.

Available commands:
  list     - Show all maze variants
  play     - Play a variant directly
  menu     - Interactive variant picker menu
  scores   - View the run log
  gen      - Print a generated maze
  config   - Print the effective configuration

Examples:
  maze list
  maze play maze --seed 42
  maze menu
  maze gen --rows 11 --cols 21 --seed 7
  maze scores maze_mobs`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, _ []string) {
		maze.SetConfigPath(flagConfig)
		maze.SetEnvFile(flagEnvFile)
		if cmd.Flags().Changed("seed") {
			// An explicit flag wins over a seed in the config
			maze.SetSeedOverride(flagSeed)
		}
		if lvl, err := log.ParseLevel(flagLogLevel); err == nil {
			stderr.SetLevel(lvl)
		}
	},
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.maze/runs.db", "Path to runs database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom maze config YAML")
	rootCmd.PersistentFlags().StringVar(&flagEnvFile, "env-file", ".env", "Dotenv file with MAZE_* overrides (empty to disable)")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write session logs to this file")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(genCmd)
	rootCmd.AddCommand(configCmd)
}

// sessionLogger returns the logger used while a TUI owns the terminal.
// Without --log-file the output is discarded.
func sessionLogger() (logger *log.Logger, closeFn func(), err error) {
	if flagLogFile == "" {
		return log.New(io.Discard), func() {}, nil
	}

	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid --log-level: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(flagLogFile), 0o755); err != nil {
		return nil, nil, fmt.Errorf("cannot create log directory: %w", err)
	}
	f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("cannot open log file: %w", err)
	}

	logger = log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
		Prefix:          "maze",
		Level:           level,
	})
	return logger, func() { f.Close() }, nil
}
