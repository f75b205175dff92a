package tui

import (
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-invaders/internal/core"
	"github.com/vovakirdan/tui-invaders/internal/storage"
)

// scriptedGame reports a fixed state and records what the model sends.
type scriptedGame struct {
	state   core.GameState
	resets  []core.RuntimeConfig
	actions []core.Action
	renders int
}

func (g *scriptedGame) ID() string    { return "scripted" }
func (g *scriptedGame) Title() string { return "Scripted" }

func (g *scriptedGame) Reset(cfg core.RuntimeConfig) {
	g.resets = append(g.resets, cfg)
}

func (g *scriptedGame) Step(in core.InputFrame) core.StepResult {
	for _, a := range []core.Action{core.ActionLeft, core.ActionRight, core.ActionFire, core.ActionPause, core.ActionRestart} {
		if in.Has(a) {
			g.actions = append(g.actions, a)
		}
	}
	return core.StepResult{State: g.state}
}

func (g *scriptedGame) Render(dst *core.Screen) {
	g.renders++
	dst.Clear()
	dst.DrawText(0, 0, "SCORE")
}

func (g *scriptedGame) State() core.GameState { return g.state }

func testRuntime() core.RuntimeConfig {
	return core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 7}
}

func send(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	next, _ := m.Update(msg)
	model, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T, expected Model", next)
	}
	return model
}

func openStore(t *testing.T) *storage.Store {
	t.Helper()
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestModelReservesHelpRow(t *testing.T) {
	game := &scriptedGame{}
	m := NewModel(game, nil, testRuntime(), Options{})
	m.Init()

	if len(game.resets) != 1 {
		t.Fatalf("Reset calls = %d, expected 1", len(game.resets))
	}
	if got := game.resets[0].ScreenH; got != 23 {
		t.Errorf("game height = %d, expected 23", got)
	}
	if got := game.resets[0].ScreenW; got != 80 {
		t.Errorf("game width = %d, expected 80", got)
	}

	hidden := NewModel(&scriptedGame{}, nil, testRuntime(), Options{HideHelp: true})
	if got := hidden.gameConfig().ScreenH; got != 24 {
		t.Errorf("game height without help = %d, expected 24", got)
	}
}

func TestModelForwardsActions(t *testing.T) {
	game := &scriptedGame{}
	m := NewModel(game, nil, testRuntime(), Options{})
	m.Init()

	m = send(t, m, tea.KeyMsg{Type: tea.KeyLeft})
	m = send(t, m, tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}})
	m = send(t, m, TickMsg{})

	if len(game.actions) != 2 {
		t.Fatalf("actions = %v, expected [Left Fire]", game.actions)
	}
	if game.actions[0] != core.ActionLeft || game.actions[1] != core.ActionFire {
		t.Errorf("actions = %v, expected [Left Fire]", game.actions)
	}

	// The frame is cleared after each tick
	send(t, m, TickMsg{})
	if len(game.actions) != 2 {
		t.Errorf("actions after empty tick = %v, expected no new actions", game.actions)
	}
}

func TestModelIgnoresRestartWhilePlaying(t *testing.T) {
	game := &scriptedGame{}
	m := NewModel(game, nil, testRuntime(), Options{})
	m.Init()

	m = send(t, m, runeKey('r'))
	send(t, m, TickMsg{})

	if len(game.actions) != 0 {
		t.Errorf("actions = %v, expected none", game.actions)
	}
	if len(game.resets) != 1 {
		t.Errorf("Reset calls = %d, expected 1", len(game.resets))
	}
}

func TestModelRestartAfterGameOver(t *testing.T) {
	game := &scriptedGame{state: core.GameState{GameOver: true}}
	m := NewModel(game, nil, testRuntime(), Options{})
	m.Init()

	m = send(t, m, TickMsg{})
	m = send(t, m, runeKey('r'))
	send(t, m, TickMsg{})

	if len(game.resets) != 2 {
		t.Errorf("Reset calls = %d, expected 2", len(game.resets))
	}
}

func TestModelSavesScoreOnce(t *testing.T) {
	store := openStore(t)
	game := &scriptedGame{state: core.GameState{Score: 120, Level: 3, GameOver: true}}
	m := NewModel(game, store, testRuntime(), Options{Difficulty: "hard"})
	m.Init()

	for range 5 {
		m = send(t, m, TickMsg{})
	}

	scores, err := store.AllScores("scripted")
	if err != nil {
		t.Fatalf("AllScores() error = %v", err)
	}
	if len(scores) != 1 {
		t.Fatalf("len(scores) = %d, expected 1", len(scores))
	}
	got := scores[0]
	if got.Score != 120 || got.Level != 3 || got.Difficulty != "hard" {
		t.Errorf("saved = %+v, expected score 120, level 3, difficulty hard", got)
	}
}

func TestModelSavesScoreOnQuit(t *testing.T) {
	store := openStore(t)
	game := &scriptedGame{state: core.GameState{Score: 40, Level: 1}}
	m := NewModel(game, store, testRuntime(), Options{})
	m.Init()

	m = send(t, m, TickMsg{})
	m = send(t, m, runeKey('q'))

	if !m.quitting {
		t.Error("quitting = false, expected true")
	}
	scores, err := store.AllScores("scripted")
	if err != nil {
		t.Fatalf("AllScores() error = %v", err)
	}
	if len(scores) != 1 || scores[0].Score != 40 {
		t.Errorf("scores = %+v, expected one entry of 40", scores)
	}
}

func TestModelSkipsEmptyRuns(t *testing.T) {
	store := openStore(t)
	game := &scriptedGame{state: core.GameState{GameOver: true}}
	m := NewModel(game, store, testRuntime(), Options{})
	m.Init()
	send(t, m, TickMsg{})

	scores, err := store.AllScores("scripted")
	if err != nil {
		t.Fatalf("AllScores() error = %v", err)
	}
	if len(scores) != 0 {
		t.Errorf("len(scores) = %d, expected 0", len(scores))
	}
}

func TestModelResizeRestartsRunningGame(t *testing.T) {
	game := &scriptedGame{}
	m := NewModel(game, nil, testRuntime(), Options{})
	m.Init()

	m = send(t, m, tea.WindowSizeMsg{Width: 100, Height: 40})

	if len(game.resets) != 2 {
		t.Fatalf("Reset calls = %d, expected 2", len(game.resets))
	}
	last := game.resets[1]
	if last.ScreenW != 100 || last.ScreenH != 39 {
		t.Errorf("resized game = %dx%d, expected 100x39", last.ScreenW, last.ScreenH)
	}
	if m.screen.Width() != 100 || m.screen.Height() != 39 {
		t.Errorf("screen = %dx%d, expected 100x39", m.screen.Width(), m.screen.Height())
	}
}

func TestModelView(t *testing.T) {
	game := &scriptedGame{}
	m := NewModel(game, nil, testRuntime(), Options{})
	m.Init()

	view := m.View()
	if game.renders != 1 {
		t.Errorf("renders = %d, expected 1", game.renders)
	}
	if !strings.Contains(view, "SCORE") {
		t.Errorf("View() does not contain the game screen")
	}
	if !strings.Contains(view, "fire") {
		t.Errorf("View() does not contain the key help")
	}

	m.quitting = true
	if got := m.View(); got != "" {
		t.Errorf("View() after quit = %q, expected empty", got)
	}
}
