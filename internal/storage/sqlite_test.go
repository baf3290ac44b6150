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

func TestStoreOpenCreatesNestedPath(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "subdir", "deep", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() with nested path failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("database file was not created in nested directory")
	}
}

func TestStoreSaveAndRetrieve(t *testing.T) {
	store := openTestStore(t)

	runs := []Run{
		{Preset: "normal", Score: 10, DurationMs: 12000},
		{Preset: "normal", Score: 5},
		{Preset: "normal", Score: 20, DurationMs: 30000},
		{Preset: "easy", Score: 50},
	}
	for _, r := range runs {
		if _, err := store.SaveRun(r); err != nil {
			t.Fatalf("SaveRun() failed: %v", err)
		}
	}

	scores, err := store.TopScores("normal", 10, true)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 3 {
		t.Fatalf("expected 3 normal scores, got %d", len(scores))
	}
	if scores[0].Score != 20 || scores[1].Score != 10 || scores[2].Score != 5 {
		t.Errorf("scores not in descending order: %+v", scores)
	}
	if scores[0].DurationMs != 30000 || scores[0].Preset != "normal" {
		t.Errorf("top entry = %+v", scores[0])
	}
	if scores[0].CreatedAt.IsZero() {
		t.Error("CreatedAt should be set")
	}

	easy, err := store.TopScores("easy", 10, true)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(easy) != 1 {
		t.Errorf("expected 1 easy score, got %d", len(easy))
	}
}

func TestStoreTopScoresLimitAndAutopilot(t *testing.T) {
	store := openTestStore(t)

	for i := 1; i <= 5; i++ {
		store.SaveRun(Run{Preset: "normal", Score: i * 10})
	}
	store.SaveRun(Run{Preset: "normal", Score: 999, Autopilot: true})

	scores, err := store.TopScores("normal", 3, false)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 3 {
		t.Fatalf("expected 3 scores with limit, got %d", len(scores))
	}
	if scores[0].Score != 50 || scores[1].Score != 40 || scores[2].Score != 30 {
		t.Errorf("autopilot runs should be excluded: %+v", scores)
	}

	scores, _ = store.TopScores("normal", 3, true)
	if len(scores) == 0 || scores[0].Score != 999 || !scores[0].Autopilot {
		t.Errorf("autopilot run should lead when included: %+v", scores)
	}
}

func TestStoreHighScoreAndStats(t *testing.T) {
	store := openTestStore(t)

	high, err := store.HighScore("normal")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("expected 0 for an empty preset, got %d", high)
	}

	store.SaveRun(Run{Preset: "normal", Score: 10})
	store.SaveRun(Run{Preset: "normal", Score: 30})
	store.SaveRun(Run{Preset: "normal", Score: 20})

	high, _ = store.HighScore("normal")
	if high != 30 {
		t.Errorf("HighScore() = %d, expected 30", high)
	}

	stats, err := store.PresetStats("normal")
	if err != nil {
		t.Fatalf("PresetStats() failed: %v", err)
	}
	if stats.Runs != 3 || stats.HighScore != 30 || stats.AvgScore != 20 {
		t.Errorf("stats = %+v", stats)
	}

	empty, err := store.PresetStats("easy")
	if err != nil {
		t.Fatalf("PresetStats() on empty preset failed: %v", err)
	}
	if empty.Runs != 0 || !empty.LastPlayed.IsZero() {
		t.Errorf("empty stats = %+v", empty)
	}
}

func TestStoreClearScores(t *testing.T) {
	store := openTestStore(t)

	store.SaveRun(Run{Preset: "normal", Score: 1})
	store.SaveRun(Run{Preset: "easy", Score: 2})
	store.WriteBest(DefaultBestKey, 7)

	if err := store.ClearScores("normal"); err != nil {
		t.Fatalf("ClearScores() failed: %v", err)
	}

	if scores, _ := store.TopScores("normal", 10, true); len(scores) != 0 {
		t.Errorf("expected no normal scores after clear, got %d", len(scores))
	}
	if scores, _ := store.TopScores("easy", 10, true); len(scores) != 1 {
		t.Error("easy scores should not be affected")
	}
	if best, _ := store.ReadBest(DefaultBestKey); best != 7 {
		t.Errorf("clearing history should keep the best score, got %d", best)
	}
}

func TestStoreBestIsMonotonic(t *testing.T) {
	store := openTestStore(t)

	best, err := store.ReadBest(DefaultBestKey)
	if err != nil || best != 0 {
		t.Fatalf("ReadBest() on empty store = (%d, %v), expected (0, nil)", best, err)
	}

	for _, score := range []int{5, 3, 9, 9, 1} {
		if err := store.WriteBest(DefaultBestKey, score); err != nil {
			t.Fatalf("WriteBest(%d) failed: %v", score, err)
		}
	}

	best, _ = store.ReadBest(DefaultBestKey)
	if best != 9 {
		t.Errorf("ReadBest() = %d, expected 9", best)
	}
	if other, _ := store.ReadBest("other"); other != 0 {
		t.Errorf("keys should be independent, got %d", other)
	}
}
