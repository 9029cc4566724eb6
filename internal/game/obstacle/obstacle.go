// Package obstacle defines the obstacles the player pushes off the platform,
// the collection that owns them and the rule deciding when one has left play.
package obstacle

import (
	"github.com/vovakirdan/pushout/internal/core"
)

// ID identifies an obstacle for its whole life. IDs are never reused within
// a scheduler.
type ID uint64

// Body is the physics-side handle of a spawned obstacle.
// Its position is owned by the world, the core only reads it.
type Body interface {
	Position() core.Vec3
}

// Factory creates and destroys obstacle bodies in the host world.
type Factory interface {
	// Spawn instantiates a body at pos with the given uniform scale.
	Spawn(id ID, pos core.Vec3, scale float64) Body
	// Destroy releases the body. Destroying an unknown id is a no-op.
	Destroy(id ID)
}

// Remover is the single removal operation every removal path funnels into.
// It reports whether the call actually removed something.
type Remover interface {
	RemoveObstacle(id ID) bool
}

// Obstacle is a live obstacle owned by a scheduler.
type Obstacle struct {
	ID    ID
	Scale float64
	body  Body
}

// New wraps a spawned body.
func New(id ID, scale float64, body Body) *Obstacle {
	return &Obstacle{ID: id, Scale: scale, body: body}
}

// Position returns the current world position of the obstacle.
func (o *Obstacle) Position() core.Vec3 {
	if o.body == nil {
		return core.Vec3{}
	}
	return o.body.Position()
}
