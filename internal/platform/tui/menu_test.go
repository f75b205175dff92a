package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-invaders/internal/config"
	_ "github.com/vovakirdan/tui-invaders/internal/games/invaders"
)

func menuKey(t *testing.T, m MenuModel, msg tea.KeyMsg) MenuModel {
	t.Helper()
	next, _ := m.Update(msg)
	model, ok := next.(MenuModel)
	if !ok {
		t.Fatalf("Update returned %T, expected MenuModel", next)
	}
	return model
}

func TestMenuListsModes(t *testing.T) {
	m := NewMenuModel(nil, testRuntime(), config.DifficultyNormal)

	if len(m.items) != 2 {
		t.Fatalf("len(items) = %d, expected 2", len(m.items))
	}
	if m.items[0].GameID != "invaders" || m.items[1].GameID != "invaders_boss" {
		t.Errorf("items = %+v, expected invaders then invaders_boss", m.items)
	}
}

func TestMenuDifficultyBounds(t *testing.T) {
	m := NewMenuModel(nil, testRuntime(), config.DifficultyHard)
	if got := m.Difficulty(); got != config.DifficultyHard {
		t.Fatalf("Difficulty() = %v, expected hard", got)
	}

	right := tea.KeyMsg{Type: tea.KeyRight}
	left := tea.KeyMsg{Type: tea.KeyLeft}

	m = menuKey(t, m, right)
	m = menuKey(t, m, right)
	if got := m.Difficulty(); got != config.DifficultyExpert {
		t.Errorf("Difficulty() = %v, expected expert", got)
	}

	for range 5 {
		m = menuKey(t, m, left)
	}
	if got := m.Difficulty(); got != config.DifficultyEasy {
		t.Errorf("Difficulty() = %v, expected easy", got)
	}

	unknown := NewMenuModel(nil, testRuntime(), "")
	if got := unknown.Difficulty(); got != config.DifficultyNormal {
		t.Errorf("Difficulty() with no preset = %v, expected normal", got)
	}
}

func TestMenuSelect(t *testing.T) {
	m := NewMenuModel(nil, testRuntime(), config.DifficultyNormal)

	m = menuKey(t, m, tea.KeyMsg{Type: tea.KeyDown})
	m = menuKey(t, m, tea.KeyMsg{Type: tea.KeyDown})
	m = menuKey(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	if m.Selected() == nil {
		t.Fatal("Selected() = nil, expected a mode")
	}
	if got := m.Selected().GameID; got != "invaders_boss" {
		t.Errorf("Selected().GameID = %q, expected invaders_boss", got)
	}
}

func TestMenuScoreboardAndQuit(t *testing.T) {
	m := NewMenuModel(nil, testRuntime(), config.DifficultyNormal)
	m = menuKey(t, m, tea.KeyMsg{Type: tea.KeyTab})
	if !m.WantsScoreboard() {
		t.Error("WantsScoreboard() = false, expected true")
	}

	m = NewMenuModel(nil, testRuntime(), config.DifficultyNormal)
	m = menuKey(t, m, runeKey('q'))
	if !m.IsQuitting() {
		t.Error("IsQuitting() = false, expected true")
	}
	if m.View() != "" {
		t.Error("View() after quit is not empty")
	}
}

func TestMenuShowsHighScores(t *testing.T) {
	store := openStore(t)
	if _, err := store.SaveScore("invaders", 730, 4, "normal"); err != nil {
		t.Fatalf("SaveScore() error = %v", err)
	}

	m := NewMenuModel(store, testRuntime(), config.DifficultyNormal)
	if got := m.items[0].HighScore; got != 730 {
		t.Errorf("items[0].HighScore = %d, expected 730", got)
	}
	if got := m.items[1].HighScore; got != 0 {
		t.Errorf("items[1].HighScore = %d, expected 0", got)
	}
}

func TestCenterText(t *testing.T) {
	tests := []struct {
		text  string
		width int
		want  string
	}{
		{"ab", 6, "  ab"},
		{"abc", 6, " abc"},
		{"abcdef", 4, "abcdef"},
	}
	for _, tt := range tests {
		if got := centerText(tt.text, tt.width); got != tt.want {
			t.Errorf("centerText(%q, %d) = %q, expected %q", tt.text, tt.width, got, tt.want)
		}
	}
}
