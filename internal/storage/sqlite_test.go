package storage

import (
	"os"
	"path/filepath"
	"testing"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStoreOpenClose(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "nested", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	// Check that the file was created
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreReopenKeepsScores(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	if _, err := store.SaveScore("invaders", 120, 2, "normal"); err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}
	store.Close()

	store, err = Open(dbPath)
	if err != nil {
		t.Fatalf("second Open() failed: %v", err)
	}
	defer store.Close()

	high, err := store.HighScore("invaders")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 120 {
		t.Errorf("HighScore() = %d, expected 120", high)
	}
}

func TestStoreSaveAndRetrieve(t *testing.T) {
	store := openTestStore(t)

	runs := []struct {
		game  string
		score int
		level int
		diff  string
	}{
		{"invaders", 100, 2, "easy"},
		{"invaders", 50, 1, "normal"},
		{"invaders", 200, 3, "hard"},
		{"invaders_boss", 500, 5, ""},
	}
	for _, r := range runs {
		if _, err := store.SaveScore(r.game, r.score, r.level, r.diff); err != nil {
			t.Fatalf("SaveScore() failed: %v", err)
		}
	}

	scores, err := store.TopScores("invaders", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 3 {
		t.Fatalf("len(TopScores()) = %d, expected 3", len(scores))
	}

	expected := []struct {
		score int
		level int
		diff  string
	}{
		{200, 3, "hard"},
		{100, 2, "easy"},
		{50, 1, "normal"},
	}
	for i, e := range expected {
		got := scores[i]
		if got.Score != e.score || got.Level != e.level || got.Difficulty != e.diff {
			t.Errorf("scores[%d] = %d/%d/%q, expected %d/%d/%q", i, got.Score, got.Level, got.Difficulty, e.score, e.level, e.diff)
		}
		if got.GameID != "invaders" {
			t.Errorf("scores[%d].GameID = %q, expected invaders", i, got.GameID)
		}
	}

	boss, err := store.TopScores("invaders_boss", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(boss) != 1 {
		t.Errorf("len(boss scores) = %d, expected 1", len(boss))
	}
}

func TestStoreTopScoresLimit(t *testing.T) {
	store := openTestStore(t)

	for i := range 5 {
		store.SaveScore("invaders", (i+1)*100, i+1, "")
	}

	scores, err := store.TopScores("invaders", 3)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 3 {
		t.Fatalf("len(TopScores()) = %d, expected 3", len(scores))
	}
	if scores[0].Score != 500 || scores[1].Score != 400 || scores[2].Score != 300 {
		t.Errorf("Scores not in expected order: %v", scores)
	}
}

func TestStoreTiesBreakOnLevel(t *testing.T) {
	store := openTestStore(t)

	store.SaveScore("invaders", 300, 2, "")
	store.SaveScore("invaders", 300, 4, "")

	scores, err := store.TopScores("invaders", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if scores[0].Level != 4 {
		t.Errorf("scores[0].Level = %d, expected 4", scores[0].Level)
	}
}

func TestStoreHighScoreAndStats(t *testing.T) {
	store := openTestStore(t)

	high, err := store.HighScore("invaders")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("HighScore() = %d, expected 0 for empty game", high)
	}

	st, err := store.Stats("invaders")
	if err != nil {
		t.Fatalf("Stats() failed: %v", err)
	}
	if st != (Stats{}) {
		t.Errorf("Stats() = %+v, expected zero value", st)
	}

	store.SaveScore("invaders", 100, 5, "")
	store.SaveScore("invaders", 300, 2, "")
	store.SaveScore("invaders", 200, 3, "")

	high, _ = store.HighScore("invaders")
	if high != 300 {
		t.Errorf("HighScore() = %d, expected 300", high)
	}

	st, _ = store.Stats("invaders")
	want := Stats{Games: 3, HighScore: 300, BestLevel: 5}
	if st != want {
		t.Errorf("Stats() = %+v, expected %+v", st, want)
	}
}

func TestStoreClearScores(t *testing.T) {
	store := openTestStore(t)

	store.SaveScore("invaders", 100, 1, "")
	store.SaveScore("invaders", 200, 1, "")
	store.SaveScore("invaders_boss", 300, 5, "")

	if err := store.ClearScores("invaders"); err != nil {
		t.Fatalf("ClearScores() failed: %v", err)
	}

	scores, _ := store.TopScores("invaders", 10)
	if len(scores) != 0 {
		t.Errorf("len(invaders scores) = %d, expected 0 after clear", len(scores))
	}
	boss, _ := store.TopScores("invaders_boss", 10)
	if len(boss) != 1 {
		t.Error("boss scores should not be affected by clearing invaders")
	}
}

func TestStoreAllScores(t *testing.T) {
	store := openTestStore(t)

	for i := range 20 {
		store.SaveScore("invaders", i*10, 1, "")
	}

	scores, err := store.AllScores("invaders")
	if err != nil {
		t.Fatalf("AllScores() failed: %v", err)
	}
	if len(scores) != 20 {
		t.Errorf("len(AllScores()) = %d, expected 20", len(scores))
	}
	if scores[0].Score != 190 {
		t.Errorf("AllScores()[0].Score = %d, expected 190", scores[0].Score)
	}
}
