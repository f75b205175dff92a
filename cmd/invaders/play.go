package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-invaders/internal/audio"
	"github.com/vovakirdan/tui-invaders/internal/config"
	"github.com/vovakirdan/tui-invaders/internal/core"
	"github.com/vovakirdan/tui-invaders/internal/games/invaders"
	"github.com/vovakirdan/tui-invaders/internal/platform/tui"
	"github.com/vovakirdan/tui-invaders/internal/registry"
	"github.com/vovakirdan/tui-invaders/internal/storage"
)

var (
	flagConfig     string
	flagDifficulty string
	flagSound      bool
)

var playCmd = &cobra.Command{
	Use:   "play [mode]",
	Short: "Play a mode",
	Long: `Start playing the given mode (default: invaders).

Controls:
  Left/A, Right/D  - Move the cannon
  Space/Up         - Fire
  P/Esc            - Pause
  R                - Restart (after game over)
  Ctrl+S           - Save a text screenshot
  Q/Ctrl+C         - Quit

Difficulty options:
  easy    - 5 lives, one enemy shooter per column tier
  normal  - 3 lives, extra shooters from wave 4 on
  hard    - 3 lives, tougher boss
  expert  - 2 lives, boss with double hit points

Examples:
  invaders play
  invaders play invaders_boss
  invaders play --difficulty hard --sound
  invaders play --config ./my-invaders.yaml`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func init() {
	for _, cmd := range []*cobra.Command{playCmd, menuCmd} {
		cmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
		cmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, expert")
		cmd.Flags().BoolVar(&flagSound, "sound", false, "Play sound effects")
	}
}

func runPlay(cmd *cobra.Command, args []string) {
	gameID := "invaders"
	if len(args) == 1 {
		gameID = args[0]
	}

	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown mode %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'invaders list' to see available modes.")
		os.Exit(1)
	}

	var difficulty config.DifficultyPreset
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

	configureGame(difficulty)

	game, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	opts := tui.Options{Difficulty: string(difficulty), Logger: logger}
	if err := tui.Run(game, sess.store, terminalConfig(), opts); err != nil {
		sess.close()
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
		os.Exit(1)
	}
}

// terminalConfig sizes the runtime config to the current terminal.
func terminalConfig() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}
	cfg.TickRate = flagFPS
	cfg.Seed = flagSeed
	return cfg
}

// session holds the resources shared by every game of one CLI run.
type session struct {
	logger  *log.Logger
	store   *storage.Store
	speaker *audio.Speaker
}

// openSession opens the score database and, with --sound, the speaker.
// Both are optional: the game runs without them.
func openSession(logger *log.Logger) *session {
	s := &session{logger: logger}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		logger.Warn("scores disabled", "err", err)
	} else {
		s.store = store
	}

	if flagSound {
		speaker := audio.NewSpeaker(flagSeed)
		if err := speaker.Initialize(); err != nil {
			logger.Warn("sound disabled", "err", err)
		} else {
			s.speaker = speaker
		}
	}

	invaders.SetLogger(logger)
	if s.speaker != nil {
		invaders.SetSounds(s.speaker)
	}
	return s
}

// configureGame applies the config path and difficulty before a game is created.
func configureGame(difficulty config.DifficultyPreset) {
	invaders.SetConfigPath(flagConfig)
	invaders.SetDifficultyPreset(string(difficulty))
}

// close releases the session resources. Safe to call twice.
func (s *session) close() {
	if s.store != nil {
		if err := s.store.Close(); err != nil {
			s.logger.Warn("cannot close scores database", "err", err)
		}
		s.store = nil
	}
	if s.speaker != nil {
		s.speaker.Close()
		s.speaker = nil
	}
}
