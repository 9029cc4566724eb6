// Package world is a small kinematic physics world for pushout. It keeps
// axis-aligned obstacle boxes on a square platform, drops them with gravity,
// lets the dozer push them and reports which obstacles touch the dozer.
//
// The platform spans [-Half, Half] on X and Z with its top at Y = 0. Walls
// close the back (-Z), left and right edges; the front (+Z) is open, so
// obstacles can only leave the platform by being pushed over it.
package world

import (
	"math"
	"sort"

	"github.com/vovakirdan/pushout/internal/core"
	"github.com/vovakirdan/pushout/internal/game/obstacle"
)

// Config holds physics tuning.
type Config struct {
	Half        float64 // platform half extent
	WallHeight  float64 // wall top above the floor
	Gravity     float64 // units/s²
	Damping     float64 // horizontal velocity decay per second
	PlayerHalf  float64 // dozer cube half size
	ContactSkin float64 // gap still counted as touching
}

// DefaultConfig returns the standard platform: 10x10 with a 2x2x2 dozer.
func DefaultConfig() Config {
	return Config{
		Half:        5,
		WallHeight:  1.5,
		Gravity:     20,
		Damping:     3,
		PlayerHalf:  1,
		ContactSkin: 0.05,
	}
}

// Body is an obstacle box simulated by the world.
type Body struct {
	id   obstacle.ID
	pos  core.Vec3
	vel  core.Vec3
	half float64
}

// ID returns the obstacle id of the body.
func (b *Body) ID() obstacle.ID { return b.id }

// Position returns the box center.
func (b *Body) Position() core.Vec3 { return b.pos }

// Velocity returns the current velocity.
func (b *Body) Velocity() core.Vec3 { return b.vel }

// Half returns the half size of the box.
func (b *Body) Half() float64 { return b.half }

func (b *Body) overlaps(o *Body) bool {
	d := b.half + o.half
	return math.Abs(b.pos.X-o.pos.X) < d &&
		math.Abs(b.pos.Y-o.pos.Y) < d &&
		math.Abs(b.pos.Z-o.pos.Z) < d
}

type player struct {
	pos     core.Vec3
	vel     core.Vec3
	yaw     float64
	present bool
}

// World simulates obstacle bodies and the dozer.
type World struct {
	cfg      Config
	bodies   map[obstacle.ID]*Body
	order    []*Body
	player   player
	touching map[obstacle.ID]bool
	lastDT   float64
}

// New creates an empty world.
func New(cfg Config) *World {
	return &World{
		cfg:      cfg,
		bodies:   make(map[obstacle.ID]*Body),
		touching: make(map[obstacle.ID]bool),
	}
}

// Config returns the world tuning.
func (w *World) Config() Config {
	return w.cfg
}

// Spawn creates a resting box of edge length scale at pos.
func (w *World) Spawn(id obstacle.ID, pos core.Vec3, scale float64) obstacle.Body {
	if old, ok := w.bodies[id]; ok {
		w.removeFromOrder(old)
	}
	b := &Body{id: id, pos: pos, half: scale / 2}
	w.bodies[id] = b
	w.order = append(w.order, b)
	return b
}

// Destroy removes a body. Unknown ids are ignored.
func (w *World) Destroy(id obstacle.ID) {
	b, ok := w.bodies[id]
	if !ok {
		return
	}
	delete(w.bodies, id)
	delete(w.touching, id)
	w.removeFromOrder(b)
}

func (w *World) removeFromOrder(b *Body) {
	for i, o := range w.order {
		if o == b {
			w.order = append(w.order[:i], w.order[i+1:]...)
			return
		}
	}
}

// Len returns the number of bodies.
func (w *World) Len() int {
	return len(w.order)
}

// Body returns a body by id.
func (w *World) Body(id obstacle.ID) (*Body, bool) {
	b, ok := w.bodies[id]
	return b, ok
}

// Bodies returns the bodies in spawn order.
func (w *World) Bodies() []*Body {
	out := make([]*Body, len(w.order))
	copy(out, w.order)
	return out
}

// SetPlayer places the dozer. The dozer velocity used for pushing is derived
// from the previous placement and the last step length.
func (w *World) SetPlayer(pos core.Vec3, yaw float64) {
	pos.Y = w.cfg.PlayerHalf
	if w.player.present && w.lastDT > 0 {
		w.player.vel = pos.Sub(w.player.pos).Scale(1 / w.lastDT)
	} else {
		w.player.vel = core.Vec3{}
	}
	w.player.pos = pos
	w.player.yaw = yaw
	w.player.present = true
}

// ClearPlayer removes the dozer from the world.
func (w *World) ClearPlayer() {
	w.player = player{}
	for id := range w.touching {
		delete(w.touching, id)
	}
}

// Player returns the dozer placement and whether it is present.
func (w *World) Player() (core.Vec3, float64, bool) {
	return w.player.pos, w.player.yaw, w.player.present
}

// Touching returns the obstacles currently in contact with the dozer, in
// ascending id order.
func (w *World) Touching() []obstacle.ID {
	ids := make([]obstacle.ID, 0, len(w.touching))
	for id := range w.touching {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

// Supported reports whether the body is above the platform footprint.
func (w *World) Supported(b *Body) bool {
	return math.Abs(b.pos.X) <= w.cfg.Half && math.Abs(b.pos.Z) <= w.cfg.Half
}

// Step advances the simulation and returns the obstacles that started
// touching the dozer during this step, in ascending id order.
func (w *World) Step(dt float64) []obstacle.ID {
	if dt <= 0 {
		return nil
	}
	w.lastDT = dt

	decay := math.Max(0, 1-w.cfg.Damping*dt)
	for _, b := range w.order {
		b.vel.Y -= w.cfg.Gravity * dt
		b.vel.X *= decay
		b.vel.Z *= decay
		b.pos = b.pos.Add(b.vel.Scale(dt))
		w.resolveStatic(b)
	}

	w.separate()

	if w.player.present {
		for _, b := range w.order {
			w.push(b)
		}
		// Pushed boxes may have been driven into the walls.
		for _, b := range w.order {
			w.resolveStatic(b)
		}
	}

	return w.updateContacts()
}

// resolveStatic keeps a body on the floor and inside the walls.
func (w *World) resolveStatic(b *Body) {
	h := w.cfg.Half
	level := b.pos.Y-b.half < w.cfg.WallHeight && b.pos.Y+b.half > 0

	if level && b.pos.Z <= h {
		if b.pos.X-b.half < -h {
			b.pos.X = -h + b.half
			b.vel.X = math.Max(0, b.vel.X)
		}
		if b.pos.X+b.half > h {
			b.pos.X = h - b.half
			b.vel.X = math.Min(0, b.vel.X)
		}
	}
	if level && b.pos.Z-b.half < -h {
		b.pos.Z = -h + b.half
		b.vel.Z = math.Max(0, b.vel.Z)
	}

	if w.Supported(b) && b.pos.Y-b.half < 0 && b.pos.Y+b.half > 0 {
		b.pos.Y = b.half
		b.vel.Y = math.Max(0, b.vel.Y)
	}
}

// separate pushes overlapping obstacles apart along the axis of least
// penetration. Vertical overlaps stack the upper box on the lower one.
func (w *World) separate() {
	for i, a := range w.order {
		for _, b := range w.order[i+1:] {
			if !a.overlaps(b) {
				continue
			}
			d := a.half + b.half
			dx := d - math.Abs(a.pos.X-b.pos.X)
			dy := d - math.Abs(a.pos.Y-b.pos.Y)
			dz := d - math.Abs(a.pos.Z-b.pos.Z)

			switch {
			case dy <= dx && dy <= dz:
				top, bottom := a, b
				if b.pos.Y > a.pos.Y {
					top, bottom = b, a
				}
				top.pos.Y = bottom.pos.Y + d
				top.vel.Y = math.Max(0, top.vel.Y)
			case dx <= dz:
				s := sign(a.pos.X - b.pos.X)
				a.pos.X += s * dx / 2
				b.pos.X -= s * dx / 2
			default:
				s := sign(a.pos.Z - b.pos.Z)
				a.pos.Z += s * dz / 2
				b.pos.Z -= s * dz / 2
			}
		}
	}
}

// push moves a body out of the dozer box on the horizontal axis of least
// penetration and hands it the dozer velocity along that axis.
func (w *World) push(b *Body) {
	p := w.player
	d := b.half + w.cfg.PlayerHalf
	if math.Abs(b.pos.Y-p.pos.Y) >= d {
		return
	}
	dx := d - math.Abs(b.pos.X-p.pos.X)
	dz := d - math.Abs(b.pos.Z-p.pos.Z)
	if dx <= 0 || dz <= 0 {
		return
	}

	if dx <= dz {
		s := sign(b.pos.X - p.pos.X)
		b.pos.X += s * dx
		if s*p.vel.X > s*b.vel.X {
			b.vel.X = p.vel.X
		}
		return
	}
	s := sign(b.pos.Z - p.pos.Z)
	b.pos.Z += s * dz
	if s*p.vel.Z > s*b.vel.Z {
		b.vel.Z = p.vel.Z
	}
}

func (w *World) touches(b *Body) bool {
	p := w.player
	d := b.half + w.cfg.PlayerHalf + w.cfg.ContactSkin
	return math.Abs(b.pos.X-p.pos.X) < d &&
		math.Abs(b.pos.Y-p.pos.Y) < d &&
		math.Abs(b.pos.Z-p.pos.Z) < d
}

func (w *World) updateContacts() []obstacle.ID {
	var began []obstacle.ID
	for _, b := range w.order {
		now := w.player.present && w.touches(b)
		if now && !w.touching[b.id] {
			began = append(began, b.id)
		}
		if now {
			w.touching[b.id] = true
		} else {
			delete(w.touching, b.id)
		}
	}
	sort.Slice(began, func(i, j int) bool { return began[i] < began[j] })
	return began
}

func sign(v float64) float64 {
	if v < 0 {
		return -1
	}
	return 1
}
