package sim

import (
	"github.com/vovakirdan/skyflap/internal/config"
	"github.com/vovakirdan/skyflap/internal/core"
)

// Rect is an axis-aligned rectangle in play-field units.
type Rect struct {
	X, Y float64 // Top-left corner
	W, H float64
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() float64 {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() float64 {
	return r.Y + r.H
}

// Circle is a collision circle.
type Circle struct {
	X, Y, R float64
}

// CircleIntersectsRect clamps the circle centre to the rectangle to find the
// nearest point and compares squared distances. Touching counts as a hit.
func CircleIntersectsRect(c Circle, r Rect) bool {
	nx := core.ClampF(c.X, r.X, r.Right())
	ny := core.ClampF(c.Y, r.Y, r.Bottom())
	dx := c.X - nx
	dy := c.Y - ny
	return dx*dx+dy*dy <= c.R*c.R
}

// PairRects returns the rectangle above the gap and the one below it, the
// latter extending down to the ground line.
func PairRects(pair ObstaclePair, cfg config.Config) (top, bottom Rect) {
	w := cfg.Obstacles.PipeWidth
	half := cfg.Active().GapHeight / 2

	gapTop := max(pair.GapCenter-half, 0)
	gapBottom := min(pair.GapCenter+half, cfg.Field.GroundY())

	top = Rect{X: pair.X, Y: 0, W: w, H: gapTop}
	bottom = Rect{X: pair.X, Y: gapBottom, W: w, H: cfg.Field.GroundY() - gapBottom}
	return top, bottom
}

// FirstObstacleHit tests the body against both rectangles of every active
// pair in pool order and returns the first slot that collides.
func FirstObstacleHit(b Body, pool *ObstaclePool, cfg config.Config) (slot int, hit bool) {
	c := b.Circle()
	for i := range pool.slots {
		pair := pool.slots[i]
		if !pair.Active {
			continue
		}
		top, bottom := PairRects(pair, cfg)
		if CircleIntersectsRect(c, top) || CircleIntersectsRect(c, bottom) {
			return i, true
		}
	}
	return -1, false
}
