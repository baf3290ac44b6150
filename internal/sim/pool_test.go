package sim

import (
	"math"
	"math/rand"
	"testing"

	"github.com/vovakirdan/skyflap/internal/config"
)

func newTestPool(cfg config.Config) *ObstaclePool {
	return NewObstaclePool(cfg.Obstacles.PoolSize, rand.New(rand.NewSource(7)))
}

func TestPoolAcquireFirstFree(t *testing.T) {
	cfg := config.Default()
	p := newTestPool(cfg)

	slot, exhausted := p.Acquire()
	if slot != 0 || exhausted {
		t.Fatalf("Acquire() on empty pool = (%d, %v), expected (0, false)", slot, exhausted)
	}

	p.Spawn(cfg)
	p.Spawn(cfg)
	p.Release(0)

	slot, exhausted = p.Acquire()
	if slot != 0 || exhausted {
		t.Errorf("Acquire() after releasing slot 0 = (%d, %v), expected (0, false)", slot, exhausted)
	}
}

func TestPoolExhaustionFallsBackToSlotZero(t *testing.T) {
	cfg := config.Default()
	p := newTestPool(cfg)

	for i := 0; i < p.Cap(); i++ {
		slot, exhausted := p.Spawn(cfg)
		if slot != i || exhausted {
			t.Fatalf("Spawn() #%d = (%d, %v), expected (%d, false)", i, slot, exhausted, i)
		}
	}

	slot, exhausted := p.Spawn(cfg)
	if slot != 0 || !exhausted {
		t.Errorf("Spawn() on full pool = (%d, %v), expected (0, true)", slot, exhausted)
	}
	if p.ActiveCount() != p.Cap() {
		t.Errorf("ActiveCount() = %d, expected %d", p.ActiveCount(), p.Cap())
	}
	if p.Cap() != cfg.Obstacles.PoolSize {
		t.Errorf("Cap() = %d, pool must never grow past %d", p.Cap(), cfg.Obstacles.PoolSize)
	}
}

func TestGapCenterRange(t *testing.T) {
	cfg := config.Default()

	tests := []struct {
		preset   config.Preset
		min, max float64
	}{
		// normal: gap 150 -> max(60+75, 120), 640-80-60-75
		{config.PresetNormal, 135, 425},
		// easy: gap 190 -> max(60+95, 120), 640-80-60-95
		{config.PresetEasy, 155, 405},
	}

	for _, tc := range tests {
		t.Run(string(tc.preset), func(t *testing.T) {
			lo, hi := GapCenterRange(cfg.WithPreset(tc.preset))
			if lo != tc.min || hi != tc.max {
				t.Errorf("GapCenterRange() = [%v, %v], expected [%v, %v]", lo, hi, tc.min, tc.max)
			}
		})
	}
}

func TestGapCenterRangeUsesFloor(t *testing.T) {
	cfg := config.Default()
	cfg.Obstacles.MinGapFromCeiling = 0
	cfg.Obstacles.CenterFloor = 200

	lo, _ := GapCenterRange(cfg)
	if lo != 200 {
		t.Errorf("min centre = %v, expected the fixed floor 200", lo)
	}
}

func TestGapCenterRangeCollapsesOnTinyField(t *testing.T) {
	cfg := config.Default()
	cfg.Field.Height = 300

	lo, hi := GapCenterRange(cfg)
	if hi != lo {
		t.Errorf("range on a tiny field should collapse to [%v, %v], got max %v", lo, lo, hi)
	}
}

func TestPoolSpawnReinitialisesSlot(t *testing.T) {
	for _, preset := range config.Presets() {
		cfg := config.Default().WithPreset(preset)
		p := newTestPool(cfg)
		lo, hi := GapCenterRange(cfg)

		for i := 0; i < 1000; i++ {
			p.Clear()
			p.slots[0] = ObstaclePair{X: -999, GapCenter: -1, Scored: true}

			slot, _ := p.Spawn(cfg)
			pair := p.Slot(slot)
			if !pair.Active || pair.Scored {
				t.Fatalf("spawned pair should be active and unscored, got %+v", pair)
			}
			if pair.X != cfg.Field.Width+cfg.Obstacles.SpawnOffset {
				t.Fatalf("spawn X = %v, expected %v", pair.X, cfg.Field.Width+cfg.Obstacles.SpawnOffset)
			}
			if pair.GapCenter < lo || pair.GapCenter > hi {
				t.Fatalf("%s: gap centre %v outside [%v, %v]", preset, pair.GapCenter, lo, hi)
			}
		}
	}
}

func TestPoolAdvanceMovesAndRetires(t *testing.T) {
	cfg := config.Default()
	p := newTestPool(cfg)
	speed := cfg.Active().Speed

	p.slots[0] = ObstaclePair{X: 200, GapCenter: 300, Active: true}
	edge := -cfg.Obstacles.RetireMargin - cfg.Obstacles.PipeWidth
	p.slots[1] = ObstaclePair{X: edge + speed/2, GapCenter: 300, Active: true}

	retired := p.Advance(cfg.Physics.NominalFrameMs, cfg)

	if got := p.Slot(0).X; math.Abs(got-(200-speed)) > 1e-9 {
		t.Errorf("slot 0 X = %v, expected %v", got, 200-speed)
	}
	if len(retired) != 1 || retired[0] != 1 {
		t.Errorf("retired = %v, expected [1]", retired)
	}
	if p.Slot(1).Active {
		t.Error("slot 1 should be inactive once fully past the left margin")
	}

	// Movement scales with the delta.
	p.Advance(cfg.Physics.NominalFrameMs/2, cfg)
	if got := p.Slot(0).X; math.Abs(got-(200-1.5*speed)) > 1e-9 {
		t.Errorf("slot 0 X after half frame = %v, expected %v", got, 200-1.5*speed)
	}
}

func TestPoolScheduleLongRunRate(t *testing.T) {
	cfg := config.Default()
	p := newTestPool(cfg)
	jitter := rand.New(rand.NewSource(99))
	interval := cfg.Obstacles.SpawnIntervalMs

	total := 0.0
	for i := 0; i < 20000; i++ {
		dt := 4 + jitter.Float64()*28
		total += dt
		p.Advance(dt, cfg)
		for _, r := range p.Schedule(dt, cfg) {
			if r.exhausted {
				t.Fatalf("pool exhausted at t=%.0fms under default tuning", total)
			}
		}
		if p.ActiveCount() > p.Cap() {
			t.Fatalf("ActiveCount() %d exceeds capacity %d", p.ActiveCount(), p.Cap())
		}
	}

	expected := int(math.Floor(total / interval))
	if diff := p.Spawned() - expected; diff < -1 || diff > 1 {
		t.Errorf("Spawned() = %d after %.0fms, expected %d (+/-1)", p.Spawned(), total, expected)
	}
}

func TestPoolScheduleCatchesUpLargeDelta(t *testing.T) {
	cfg := config.Default()
	p := newTestPool(cfg)

	spawns := p.Schedule(cfg.Obstacles.SpawnIntervalMs*2.5, cfg)
	if len(spawns) != 2 {
		t.Errorf("Schedule(2.5 intervals) spawned %d, expected 2", len(spawns))
	}
	if p.acc != cfg.Obstacles.SpawnIntervalMs*0.5 {
		t.Errorf("accumulator = %v, expected the remainder %v", p.acc, cfg.Obstacles.SpawnIntervalMs*0.5)
	}
}

func TestPoolClear(t *testing.T) {
	cfg := config.Default()
	p := newTestPool(cfg)
	p.Spawn(cfg)
	p.Spawn(cfg)
	p.Schedule(100, cfg)

	p.Clear()
	if p.ActiveCount() != 0 || p.Spawned() != 0 || p.acc != 0 {
		t.Errorf("Clear() left active=%d spawned=%d acc=%v", p.ActiveCount(), p.Spawned(), p.acc)
	}
	if p.Cap() != cfg.Obstacles.PoolSize {
		t.Error("Clear() must not reallocate the pool")
	}
}
