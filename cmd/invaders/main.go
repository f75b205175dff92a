// invaders is a terminal Space Invaders clone.
//
// Usage:
//
//	invaders list              - List available modes
//	invaders play [mode]       - Play a mode (default: invaders)
//	invaders menu              - Pick a mode and difficulty interactively
//	invaders scores [mode]     - Show high scores
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 60)
//	--seed <value>  - Set RNG seed for reproducible gameplay
//	--db <path>     - Set database path (default: ~/.arcade/scores.db)
//	--log <path>    - Write logs to a file (default: discard)
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	// Import the game to register its modes
	_ "github.com/vovakirdan/tui-invaders/internal/games/invaders"
)

var (
	// Global flags
	flagFPS     int
	flagSeed    int64
	flagDBPath  string
	flagLogPath string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "invaders",
	Short: "Space Invaders in your terminal",
	Long: `Defend the bottom of the screen against a descending formation of
invaders. Every fifth wave is a boss.

Available commands:
  list     - Show the available modes
  play     - Play a mode directly
  menu     - Interactive mode and difficulty picker
  scores   - View high scores

Examples:
  invaders play
  invaders play invaders_boss --difficulty hard
  invaders menu --fps 30
  invaders scores`,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.arcade/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagLogPath, "log", "", "Write logs to this file")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(scoresCmd)
}

// newLogger builds the session logger. The terminal belongs to the game,
// so logs only go to a file.
func newLogger() (*log.Logger, func(), error) {
	if flagLogPath == "" {
		return log.New(io.Discard), func() {}, nil
	}

	f, err := os.OpenFile(flagLogPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("cannot open log file: %w", err)
	}
	logger := log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
		Prefix:          "invaders",
		Level:           log.DebugLevel,
	})
	return logger, func() { f.Close() }, nil
}
