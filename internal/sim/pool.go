package sim

import (
	"math/rand"

	"github.com/vovakirdan/skyflap/internal/config"
)

// ObstaclePair is one pool slot: two rectangles sharing a horizontal
// position and a gap centre. Fields of an inactive slot are stale.
type ObstaclePair struct {
	X         float64 // Left edge
	GapCenter float64
	Scored    bool
	Active    bool
}

// ObstaclePool is a fixed-capacity arena of obstacle pairs plus the spawn
// timer that feeds it. Slots are allocated once and reused; releasing a slot
// only clears its active flag.
type ObstaclePool struct {
	slots   []ObstaclePair
	rng     *rand.Rand
	acc     float64 // Spawn accumulator in ms
	spawned int     // Total spawns since the last Clear
}

// NewObstaclePool pre-allocates size slots. Gap centres are drawn from rng.
func NewObstaclePool(size int, rng *rand.Rand) *ObstaclePool {
	if size < 1 {
		size = 1
	}
	return &ObstaclePool{
		slots: make([]ObstaclePair, size),
		rng:   rng,
	}
}

// Cap returns the fixed capacity.
func (p *ObstaclePool) Cap() int {
	return len(p.slots)
}

// Slot returns the pair stored in slot i.
func (p *ObstaclePool) Slot(i int) ObstaclePair {
	return p.slots[i]
}

// ActiveCount returns the number of active pairs.
func (p *ObstaclePool) ActiveCount() int {
	n := 0
	for i := range p.slots {
		if p.slots[i].Active {
			n++
		}
	}
	return n
}

// Spawned returns how many pairs were spawned since the last Clear.
func (p *ObstaclePool) Spawned() int {
	return p.spawned
}

// Clear deactivates every slot and resets the spawn timer.
func (p *ObstaclePool) Clear() {
	for i := range p.slots {
		p.slots[i].Active = false
	}
	p.acc = 0
	p.spawned = 0
}

// Acquire returns the first inactive slot. When every slot is active it
// falls back to slot 0 and reports exhausted; the caller reinitialises the
// slot either way.
func (p *ObstaclePool) Acquire() (slot int, exhausted bool) {
	for i := range p.slots {
		if !p.slots[i].Active {
			return i, false
		}
	}
	return 0, true
}

// Release deactivates slot i.
func (p *ObstaclePool) Release(i int) {
	p.slots[i].Active = false
}

// GapCenterRange returns the inclusive range gap centres are drawn from for
// the active preset. On fields too small for the range, max collapses to min.
func GapCenterRange(cfg config.Config) (minCenter, maxCenter float64) {
	gap := cfg.Active().GapHeight
	minCenter = max(cfg.Obstacles.MinGapFromCeiling+gap/2, cfg.Obstacles.CenterFloor)
	maxCenter = cfg.Field.Height - cfg.Field.GroundThickness - cfg.Obstacles.MinGapFromCeiling - gap/2
	if maxCenter < minCenter {
		maxCenter = minCenter
	}
	return minCenter, maxCenter
}

// Spawn activates a slot just past the right edge with a random gap centre.
func (p *ObstaclePool) Spawn(cfg config.Config) (slot int, exhausted bool) {
	slot, exhausted = p.Acquire()

	minCenter, maxCenter := GapCenterRange(cfg)
	p.slots[slot] = ObstaclePair{
		X:         cfg.Field.Width + cfg.Obstacles.SpawnOffset,
		GapCenter: minCenter + p.rng.Float64()*(maxCenter-minCenter),
		Scored:    false,
		Active:    true,
	}
	p.spawned++
	return slot, exhausted
}

// Advance moves every active pair left by the preset speed scaled to dt and
// retires pairs whose trailing edge has left the field. Returns the retired
// slots.
func (p *ObstaclePool) Advance(dtMs float64, cfg config.Config) []int {
	dx := cfg.Active().Speed * dtMs / cfg.Physics.NominalFrameMs
	limit := -cfg.Obstacles.RetireMargin

	var retired []int
	for i := range p.slots {
		pair := &p.slots[i]
		if !pair.Active {
			continue
		}
		pair.X -= dx
		if pair.X+cfg.Obstacles.PipeWidth < limit {
			p.Release(i)
			retired = append(retired, i)
		}
	}
	return retired
}

// spawnResult records one spawn made by Schedule.
type spawnResult struct {
	slot      int
	exhausted bool
}

// Schedule adds dt to the spawn accumulator and spawns once per elapsed
// interval. The accumulator is decremented rather than reset so the long-run
// spawn rate is exactly one per interval regardless of frame jitter.
func (p *ObstaclePool) Schedule(dtMs float64, cfg config.Config) []spawnResult {
	interval := cfg.Obstacles.SpawnIntervalMs
	p.acc += dtMs

	var out []spawnResult
	for p.acc >= interval {
		p.acc -= interval
		slot, exhausted := p.Spawn(cfg)
		out = append(out, spawnResult{slot: slot, exhausted: exhausted})
	}
	return out
}
