package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-invaders/internal/platform/tui"
	"github.com/vovakirdan/tui-invaders/internal/registry"
	"github.com/vovakirdan/tui-invaders/internal/storage"
)

var (
	flagScoresLimit int
	flagInteractive bool
	flagClear       bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores [mode]",
	Short: "Show high scores",
	Long: `Display the top scores for a mode (default: invaders).

Examples:
  invaders scores
  invaders scores invaders_boss --limit 20
  invaders scores -i
  invaders scores invaders --clear`,
	Args: cobra.MaximumNArgs(1),
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", 10, "Number of scores to show")
	scoresCmd.Flags().BoolVarP(&flagInteractive, "interactive", "i", false, "Browse scores in a full-screen table")
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete all scores of the mode")
}

func runScores(cmd *cobra.Command, args []string) {
	gameID := "invaders"
	if len(args) == 1 {
		gameID = args[0]
	}

	info, ok := registry.Lookup(gameID)
	if !ok {
		fmt.Fprintf(os.Stderr, "Error: unknown mode %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'invaders list' to see available modes.")
		os.Exit(1)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagInteractive {
		width, height := 80, 24
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			width, height = w, h
		}
		if _, err := tui.RunScoreboard(store, width, height); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		return
	}

	if flagClear {
		if err := store.ClearScores(gameID); err != nil {
			fmt.Fprintf(os.Stderr, "Error clearing scores: %v\n", err)
			return
		}
		fmt.Printf("Scores for %s cleared.\n", info.Title)
		return
	}

	scores, err := store.TopScores(gameID, flagScoresLimit)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving scores: %v\n", err)
		return
	}

	fmt.Printf("High Scores - %s\n", info.Title)
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'invaders play %s' to set the first high score!\n", gameID)
		return
	}

	fmt.Printf("  %-4s  %-8s  %-4s  %-10s  %s\n", "Rank", "Score", "Wave", "Difficulty", "Date")
	fmt.Printf("  %-4s  %-8s  %-4s  %-10s  %s\n", "----", "-----", "----", "----------", "----")
	for i, entry := range scores {
		difficulty := entry.Difficulty
		if difficulty == "" {
			difficulty = "-"
		}
		fmt.Printf("  %-4d  %-8d  %-4d  %-10s  %s\n",
			i+1, entry.Score, entry.Level, difficulty, entry.CreatedAt.Format("2006-01-02 15:04"))
	}

	fmt.Println()
	if stats, err := store.Stats(gameID); err == nil {
		fmt.Printf("Games: %d  Best: %d  Furthest wave: %d\n", stats.Games, stats.HighScore, stats.BestLevel)
	}
}
