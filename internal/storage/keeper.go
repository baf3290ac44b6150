package storage

import (
	"io"

	"github.com/charmbracelet/log"
)

// BestScoreKeeper adapts a Store to the simulation's best-score
// collaborator. Failures are logged and swallowed; a nil store reads 0.
type BestScoreKeeper struct {
	store  *Store
	key    string
	logger *log.Logger
}

// NewBestScoreKeeper returns a keeper for the best_scores row named key.
func NewBestScoreKeeper(store *Store, key string, logger *log.Logger) *BestScoreKeeper {
	if key == "" {
		key = DefaultBestKey
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &BestScoreKeeper{store: store, key: key, logger: logger}
}

// ReadBestScore returns the stored best, or 0 if it cannot be read.
func (k *BestScoreKeeper) ReadBestScore() int {
	if k.store == nil {
		return 0
	}
	best, err := k.store.ReadBest(k.key)
	if err != nil {
		k.logger.Warn("cannot read best score", "key", k.key, "error", err)
		return 0
	}
	return best
}

// WriteBestScore persists a new best. Errors are logged only.
func (k *BestScoreKeeper) WriteBestScore(score int) {
	if k.store == nil {
		return
	}
	if err := k.store.WriteBest(k.key, score); err != nil {
		k.logger.Warn("cannot persist best score", "key", k.key, "score", score, "error", err)
	}
}
