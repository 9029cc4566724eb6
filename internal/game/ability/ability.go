// Package ability implements the player's dozer: clamped movement on the
// platform and the timed special that destroys every obstacle it touches.
package ability

import (
	"math"

	"github.com/vovakirdan/pushout/internal/core"
	"github.com/vovakirdan/pushout/internal/game/obstacle"
)

// State is the phase of the special ability.
type State int

const (
	StateCooldown State = iota
	StateReady
	StateActive
)

// String returns a human-readable name for the state.
func (s State) String() string {
	switch s {
	case StateCooldown:
		return "Cooldown"
	case StateReady:
		return "Ready"
	case StateActive:
		return "Active"
	default:
		return "Unknown"
	}
}

// Contacts answers which obstacles currently overlap the player body.
// The collision computation itself belongs to the host world.
type Contacts interface {
	Touching() []obstacle.ID
}

// Config holds movement and special tuning.
type Config struct {
	Area               float64 // position is clamped to [-Area, Area] on X and Z
	Speed              float64
	RotateSpeed        float64
	SpecialSpeed       float64
	SpecialRotateSpeed float64
	ActiveDuration     float64
	CooldownDuration   float64
	StartHeading       float64
}

// DefaultConfig returns the standard dozer tuning.
func DefaultConfig() Config {
	return Config{
		Area:               4,
		Speed:              5,
		RotateSpeed:        3,
		SpecialSpeed:       15,
		SpecialRotateSpeed: 1,
		ActiveDuration:     0.75,
		CooldownDuration:   15,
		StartHeading:       math.Pi,
	}
}

// Controller is the dozer of one session. It holds no obstacles; removals go
// through the scheduler's single removal operation.
type Controller struct {
	cfg      Config
	contacts Contacts
	remover  obstacle.Remover

	// timer > 0: active, counting down. timer <= 0: cooling down, counting
	// further below zero; ready once timer <= -CooldownDuration.
	timer    float64
	position core.Vec3
	heading  float64
	swept    int
}

// New creates a controller at the platform center, cooling down from zero.
func New(cfg Config, contacts Contacts, remover obstacle.Remover) *Controller {
	return &Controller{
		cfg:      cfg,
		contacts: contacts,
		remover:  remover,
		heading:  cfg.StartHeading,
	}
}

// IsActive reports whether the special is running.
func (c *Controller) IsActive() bool {
	return c.timer > 0
}

// IsReady reports whether the special can be triggered.
func (c *Controller) IsReady() bool {
	return c.timer <= -c.cfg.CooldownDuration
}

// State returns the current special state.
func (c *Controller) State() State {
	switch {
	case c.IsActive():
		return StateActive
	case c.IsReady():
		return StateReady
	default:
		return StateCooldown
	}
}

// SpecialRatio returns the gauge value for display: the remaining fraction
// while active, 1 when ready, the elapsed cooldown fraction otherwise.
func (c *Controller) SpecialRatio() float64 {
	switch {
	case c.IsReady():
		return 1
	case c.IsActive():
		return c.timer / c.cfg.ActiveDuration
	default:
		return -c.timer / c.cfg.CooldownDuration
	}
}

// Timer returns the raw signed special timer.
func (c *Controller) Timer() float64 {
	return c.timer
}

// Speed returns the current translation speed.
func (c *Controller) Speed() float64 {
	if c.IsActive() {
		return c.cfg.SpecialSpeed
	}
	return c.cfg.Speed
}

// RotateSpeed returns the current yaw rate.
func (c *Controller) RotateSpeed() float64 {
	if c.IsActive() {
		return c.cfg.SpecialRotateSpeed
	}
	return c.cfg.RotateSpeed
}

// Position returns the dozer position on the ground plane.
func (c *Controller) Position() core.Vec3 {
	return c.position
}

// Heading returns the dozer yaw in radians.
func (c *Controller) Heading() float64 {
	return c.heading
}

// Swept returns how many obstacles the special destroyed so far.
func (c *Controller) Swept() int {
	return c.swept
}

// Update runs one tick: movement first, then the special state machine.
// The caller only invokes it while the session is playing.
func (c *Controller) Update(dt float64, in core.InputFrame) {
	c.move(dt, in)
	c.updateSpecial(dt, in)
}

func (c *Controller) move(dt float64, in core.InputFrame) {
	drive := in.Axis(core.ActionForward, core.ActionBackward)
	step := core.Forward(c.heading).Scale(drive * c.Speed() * dt)

	// Each axis is clamped on its own, not the vector.
	c.position.X = core.ClampF(c.position.X+step.X, -c.cfg.Area, c.cfg.Area)
	c.position.Z = core.ClampF(c.position.Z+step.Z, -c.cfg.Area, c.cfg.Area)

	turn := in.Axis(core.ActionRotateLeft, core.ActionRotateRight)
	c.heading += turn * c.RotateSpeed() * dt
}

func (c *Controller) updateSpecial(dt float64, in core.InputFrame) {
	if c.timer > 0 {
		c.timer -= dt
		if c.timer <= 0 {
			c.timer = 0
		}
		return
	}

	if c.IsReady() && in.Has(core.ActionSpecial) {
		c.timer = c.cfg.ActiveDuration
		c.sweep()
		return
	}

	c.timer -= dt
}

// sweep removes everything overlapping the body at the activation instant,
// including resting contacts that began before the special.
func (c *Controller) sweep() {
	if c.contacts == nil {
		return
	}
	for _, id := range c.contacts.Touching() {
		if c.remover.RemoveObstacle(id) {
			c.swept++
		}
	}
}

// OnContactBegin handles a new contact between the body and an obstacle.
// While the special is active the obstacle is destroyed; otherwise the
// contact is ignored. It reports whether the obstacle was removed.
func (c *Controller) OnContactBegin(id obstacle.ID) bool {
	if !c.IsActive() {
		return false
	}
	if c.remover.RemoveObstacle(id) {
		c.swept++
		return true
	}
	return false
}
