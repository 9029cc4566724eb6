package obstacle

import "github.com/vovakirdan/pushout/internal/core"

// Bounds delimits the region an obstacle may occupy while in play.
type Bounds struct {
	Low float64 // below this height the obstacle fell off the platform
	Far float64 // beyond this depth it was pushed off the front edge
}

// DefaultBounds returns the bounds of the standard platform.
func DefaultBounds() Bounds {
	return Bounds{Low: -1, Far: 6}
}

// Outside reports whether p has left the playable region.
func (b Bounds) Outside(p core.Vec3) bool {
	return p.Y < b.Low || p.Z > b.Far
}

// Sweep applies the boundary rule to every obstacle once and removes the ones
// that left play through r. It returns how many were removed.
func Sweep(obstacles []*Obstacle, b Bounds, r Remover) int {
	removed := 0
	for _, o := range obstacles {
		if b.Outside(o.Position()) && r.RemoveObstacle(o.ID) {
			removed++
		}
	}
	return removed
}
