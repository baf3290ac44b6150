package sim

import (
	"testing"

	"github.com/vovakirdan/skyflap/internal/config"
)

func TestCircleIntersectsRect(t *testing.T) {
	box := Rect{X: 0, Y: 0, W: 10, H: 10}

	tests := []struct {
		name   string
		circle Circle
		want   bool
	}{
		{"corner touching", Circle{X: 13, Y: 14, R: 5}, true},
		{"corner just short", Circle{X: 13, Y: 14, R: 5 - 1e-9}, false},
		{"centre inside", Circle{X: 5, Y: 5, R: 1}, true},
		{"edge touching", Circle{X: 15, Y: 5, R: 5}, true},
		{"edge overlapping", Circle{X: -3, Y: 5, R: 4}, true},
		{"far away", Circle{X: 40, Y: 40, R: 5}, false},
		{"below", Circle{X: 5, Y: 16, R: 5}, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := CircleIntersectsRect(tc.circle, box); got != tc.want {
				t.Errorf("CircleIntersectsRect(%+v) = %v, expected %v", tc.circle, got, tc.want)
			}
		})
	}
}

func TestPairRects(t *testing.T) {
	cfg := config.Default()
	top, bottom := PairRects(ObstaclePair{X: 100, GapCenter: 300, Active: true}, cfg)

	if top != (Rect{X: 100, Y: 0, W: 70, H: 225}) {
		t.Errorf("top rect = %+v", top)
	}
	if bottom != (Rect{X: 100, Y: 375, W: 70, H: 185}) {
		t.Errorf("bottom rect = %+v", bottom)
	}
	if bottom.Bottom() != cfg.Field.GroundY() {
		t.Errorf("bottom rect should reach the ground line %v, got %v", cfg.Field.GroundY(), bottom.Bottom())
	}

	easyTop, _ := PairRects(ObstaclePair{X: 100, GapCenter: 300}, cfg.WithPreset(config.PresetEasy))
	if easyTop.H != 205 {
		t.Errorf("easy top rect height = %v, expected 205", easyTop.H)
	}
}

func TestFirstObstacleHitPoolOrder(t *testing.T) {
	cfg := config.Default()
	pool := newTestPool(cfg)
	b := NewBody(cfg)

	// Both pairs overlap the body horizontally with the gap well above it.
	pool.slots[0] = ObstaclePair{X: 120, GapCenter: 100, Active: true}
	pool.slots[2] = ObstaclePair{X: 110, GapCenter: 100, Active: true}

	slot, hit := FirstObstacleHit(b, pool, cfg)
	if !hit || slot != 0 {
		t.Errorf("FirstObstacleHit() = (%d, %v), expected (0, true)", slot, hit)
	}

	pool.Release(0)
	slot, hit = FirstObstacleHit(b, pool, cfg)
	if !hit || slot != 2 {
		t.Errorf("FirstObstacleHit() after release = (%d, %v), expected (2, true)", slot, hit)
	}
}

func TestFirstObstacleHitThroughGap(t *testing.T) {
	cfg := config.Default()
	pool := newTestPool(cfg)
	b := NewBody(cfg)

	pool.slots[0] = ObstaclePair{X: b.X - 35, GapCenter: b.Y, Active: true}
	if slot, hit := FirstObstacleHit(b, pool, cfg); hit {
		t.Errorf("body centred in the gap should not collide, hit slot %d", slot)
	}

	// Inactive slots are never tested.
	pool.slots[1] = ObstaclePair{X: b.X - 35, GapCenter: 100, Active: false}
	if _, hit := FirstObstacleHit(b, pool, cfg); hit {
		t.Error("inactive slot should be ignored")
	}
}
