package sim

import "github.com/vovakirdan/skyflap/internal/config"

// ScoreTracker counts cleared obstacle pairs. The pair's Scored flag is the
// only record of credit, so pool reuse cannot double count.
type ScoreTracker struct {
	score int
	best  int
}

// Score returns the current session score.
func (t *ScoreTracker) Score() int {
	return t.score
}

// Best returns the best score seen in this process or loaded from storage.
func (t *ScoreTracker) Best() int {
	return t.best
}

// SeedBest raises the best score to b. Lower values are ignored.
func (t *ScoreTracker) SeedBest(b int) {
	if b > t.best {
		t.best = b
	}
}

// Reset clears the session score. Best is kept.
func (t *ScoreTracker) Reset() {
	t.score = 0
}

// Update credits every active, unscored pair whose centre has passed
// strictly behind bodyX. Returns the credited slots.
func (t *ScoreTracker) Update(pool *ObstaclePool, bodyX float64, cfg config.Config) []int {
	half := cfg.Obstacles.PipeWidth / 2

	var scored []int
	for i := range pool.slots {
		pair := &pool.slots[i]
		if !pair.Active || pair.Scored {
			continue
		}
		if pair.X+half < bodyX {
			pair.Scored = true
			t.score++
			scored = append(scored, i)
		}
	}
	return scored
}

// Finish closes a session and reports whether its score is a new best.
func (t *ScoreTracker) Finish() bool {
	if t.score > t.best {
		t.best = t.score
		return true
	}
	return false
}
