package storage

import (
	"bytes"
	"strings"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/skyflap/internal/config"
	"github.com/vovakirdan/skyflap/internal/sim"
)

var _ sim.BestScoreStore = (*BestScoreKeeper)(nil)

func TestBestScoreKeeperRoundTrip(t *testing.T) {
	store := openTestStore(t)
	keeper := NewBestScoreKeeper(store, "", nil)

	if got := keeper.ReadBestScore(); got != 0 {
		t.Fatalf("ReadBestScore() = %d, expected 0", got)
	}

	keeper.WriteBestScore(12)
	if got := keeper.ReadBestScore(); got != 12 {
		t.Errorf("ReadBestScore() = %d, expected 12", got)
	}
	if best, _ := store.ReadBest(DefaultBestKey); best != 12 {
		t.Errorf("empty key should map to %q, stored %d", DefaultBestKey, best)
	}
}

func TestBestScoreKeeperNilStore(t *testing.T) {
	keeper := NewBestScoreKeeper(nil, "best", nil)

	keeper.WriteBestScore(5)
	if got := keeper.ReadBestScore(); got != 0 {
		t.Errorf("nil store should read 0, got %d", got)
	}
}

func TestBestScoreKeeperSwallowsErrors(t *testing.T) {
	store := openTestStore(t)
	var buf bytes.Buffer
	keeper := NewBestScoreKeeper(store, "best", log.New(&buf))

	store.Close()

	keeper.WriteBestScore(3)
	if got := keeper.ReadBestScore(); got != 0 {
		t.Errorf("failed read should yield 0, got %d", got)
	}
	if !strings.Contains(buf.String(), "cannot persist best score") {
		t.Errorf("expected a logged warning, got %q", buf.String())
	}
}

func TestSessionUsesKeeper(t *testing.T) {
	store := openTestStore(t)
	store.WriteBest(DefaultBestKey, 4)

	s := sim.New(config.Default(), sim.WithBestScores(NewBestScoreKeeper(store, "", nil)))
	if s.Best() != 4 {
		t.Errorf("session best = %d, expected the stored 4", s.Best())
	}
}
