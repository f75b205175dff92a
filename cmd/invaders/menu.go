package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-invaders/internal/config"
	"github.com/vovakirdan/tui-invaders/internal/platform/tui"
	"github.com/vovakirdan/tui-invaders/internal/registry"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Pick a mode and difficulty interactively",
	Long: `Start in interactive menu mode.

Use arrow keys or j/k to choose a mode, left/right to change the
difficulty and Enter to play. After a game ends you return to the menu.

Examples:
  invaders menu
  invaders menu --fps 30 --sound
  invaders menu --db ./scores.db`,
	Args: cobra.NoArgs,
	Run:  runMenu,
}

func runMenu(_ *cobra.Command, _ []string) {
	difficulty := config.DifficultyNormal
	if flagDifficulty != "" {
		p, err := config.ParseDifficulty(flagDifficulty)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		difficulty = p
	}

	logger, closeLog, err := newLogger()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer closeLog()

	sess := openSession(logger)
	defer sess.close()

	cfg := terminalConfig()

	for {
		menuResult, err := tui.RunMenu(sess.store, cfg, difficulty)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			break
		}

		cfg = menuResult.Config
		difficulty = menuResult.Difficulty

		if menuResult.Quit {
			break
		}

		if menuResult.WantsScoreboard {
			goBack, sbErr := tui.RunScoreboard(sess.store, cfg.ScreenW, cfg.ScreenH)
			if sbErr != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", sbErr)
			}
			if goBack {
				continue
			}
			break
		}

		configureGame(difficulty)
		game, err := registry.Create(menuResult.GameID)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
			continue
		}

		opts := tui.Options{Difficulty: string(difficulty), Logger: logger}
		if err := tui.Run(game, sess.store, cfg, opts); err != nil {
			fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
			break
		}
	}
}
