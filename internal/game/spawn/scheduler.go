package spawn

import (
	"context"
	"errors"
	"fmt"
	"math/rand"

	"github.com/vovakirdan/pushout/internal/core"
	"github.com/vovakirdan/pushout/internal/game/obstacle"
)

// DefaultCapacity is the number of live obstacles that fills the platform.
const DefaultCapacity = 40

// Session is the part of the session controller the scheduler depends on.
type Session interface {
	IsPlaying() bool
	EndSession()
}

// Config holds the spawn parameters.
type Config struct {
	Capacity   int     // max concurrently live obstacles
	Extent     float64 // spawn positions are uniform in [-Extent, Extent] on X and Z
	DropHeight float64 // height obstacles are dropped from
	MinScale   float64
	MaxScale   float64
	Timeline   []Phase
}

// DefaultTimeline returns the hand-tuned difficulty ramp.
// Every phase is denser than the one before it.
func DefaultTimeline() []Phase {
	return []Phase{
		Burst(6, 0.35),
		Until(20, 2.0),
		Burst(6, 0.30),
		Until(45, 1.4),
		Burst(8, 0.25),
		Until(75, 1.0),
		Burst(10, 0.20),
		Until(110, 0.75),
		Forever(0.5),
	}
}

// DefaultConfig returns the standard spawn configuration.
func DefaultConfig() Config {
	return Config{
		Capacity:   DefaultCapacity,
		Extent:     2.5,
		DropHeight: 8,
		MinScale:   0.6,
		MaxScale:   1.2,
		Timeline:   DefaultTimeline(),
	}
}

// Validate checks the configuration and reports every problem found.
func (c Config) Validate() error {
	var errs []error
	if c.Capacity <= 0 {
		errs = append(errs, fmt.Errorf("capacity must be positive, got %d", c.Capacity))
	}
	if c.Extent < 0 {
		errs = append(errs, fmt.Errorf("extent must not be negative, got %g", c.Extent))
	}
	if c.MinScale <= 0 || c.MaxScale < c.MinScale {
		errs = append(errs, fmt.Errorf("invalid scale range [%g, %g]", c.MinScale, c.MaxScale))
	}
	if len(c.Timeline) == 0 {
		errs = append(errs, errors.New("timeline has no phases"))
	}
	for i, p := range c.Timeline {
		if err := p.Validate(); err != nil {
			errs = append(errs, fmt.Errorf("phase %d: %w", i+1, err))
		}
	}
	// Capacity is only checked on emission, so a timeline that runs out
	// would leave the session playing forever.
	if n := len(c.Timeline); n > 0 && !c.Timeline[n-1].OpenEnded() {
		errs = append(errs, errors.New("last phase must be open-ended (until 0)"))
	}
	return errors.Join(errs...)
}

// Scheduler owns the live obstacles of one session and emits new ones along
// its timeline. It is the only mutator of the obstacle set's membership.
type Scheduler struct {
	cfg       Config
	ctx       context.Context
	session   Session
	factory   obstacle.Factory
	rng       *rand.Rand
	timeline  *Timeline
	obstacles *obstacle.Set
	ids       *obstacle.Sequence
	destroyed int
	spawned   int
	alive     float64
	closed    bool
}

// New creates a scheduler whose timeline starts at session time 0.
// ctx is the session's cancellation signal. ids may be shared between
// schedulers; nil starts a fresh sequence.
func New(ctx context.Context, cfg Config, session Session, factory obstacle.Factory, rng *rand.Rand, ids *obstacle.Sequence) *Scheduler {
	if ids == nil {
		ids = &obstacle.Sequence{}
	}
	return &Scheduler{
		cfg:       cfg,
		ctx:       ctx,
		session:   session,
		factory:   factory,
		rng:       rng,
		timeline:  NewTimeline(cfg.Timeline),
		obstacles: obstacle.NewSet(cfg.Capacity),
		ids:       ids,
	}
}

// Tick advances internal bookkeeping. Emissions are driven by Advance.
func (s *Scheduler) Tick(dt float64) {
	if s.closed {
		return
	}
	s.alive += dt
}

// Advance runs every emission due at session time now and returns how many
// obstacles were created.
func (s *Scheduler) Advance(now float64) int {
	if s.closed {
		return 0
	}
	return s.timeline.Advance(s.ctx, now, s.emit)
}

// emit performs one timeline emission. At capacity it ends the session
// instead and stops the timeline.
func (s *Scheduler) emit() bool {
	if s.obstacles.Len() >= s.cfg.Capacity {
		s.session.EndSession()
		return false
	}

	id := s.ids.Next()
	pos := core.Vec3{
		X: s.uniform(-s.cfg.Extent, s.cfg.Extent),
		Y: s.cfg.DropHeight,
		Z: s.uniform(-s.cfg.Extent, s.cfg.Extent),
	}
	scale := s.uniform(s.cfg.MinScale, s.cfg.MaxScale)

	body := s.factory.Spawn(id, pos, scale)
	s.obstacles.Add(obstacle.New(id, scale, body))
	s.spawned++
	return true
}

func (s *Scheduler) uniform(lo, hi float64) float64 {
	return lo + s.rng.Float64()*(hi-lo)
}

// RemoveObstacle removes a live obstacle and destroys its body. The removal
// counts towards the score only while the session is playing. Removing an
// id that is not live is a no-op and returns false.
func (s *Scheduler) RemoveObstacle(id obstacle.ID) bool {
	if _, ok := s.obstacles.Remove(id); !ok {
		return false
	}
	s.factory.Destroy(id)

	if s.session.IsPlaying() {
		s.destroyed++
	}
	return true
}

// Sweep applies the boundary rule to every live obstacle.
func (s *Scheduler) Sweep(b obstacle.Bounds) int {
	return obstacle.Sweep(s.obstacles.All(), b, s)
}

// Close stops the timeline and releases every live obstacle without scoring.
func (s *Scheduler) Close() {
	if s.closed {
		return
	}
	s.closed = true
	s.timeline.Stop()
	for _, o := range s.obstacles.All() {
		s.obstacles.Remove(o.ID)
		s.factory.Destroy(o.ID)
	}
}

// Obstacles returns a snapshot of the live obstacles.
func (s *Scheduler) Obstacles() []*obstacle.Obstacle {
	return s.obstacles.All()
}

// Contains reports whether id is a live obstacle of this scheduler.
func (s *Scheduler) Contains(id obstacle.ID) bool {
	return s.obstacles.Contains(id)
}

// ActiveCount returns the number of live obstacles.
func (s *Scheduler) ActiveCount() int {
	return s.obstacles.Len()
}

// DestroyedCount returns the obstacles removed while the session was playing.
func (s *Scheduler) DestroyedCount() int {
	return s.destroyed
}

// SpawnedCount returns the total number of obstacles emitted.
func (s *Scheduler) SpawnedCount() int {
	return s.spawned
}

// Capacity returns the configured capacity.
func (s *Scheduler) Capacity() int {
	return s.cfg.Capacity
}

// SpaceRatio returns how full the platform is, capped at 1.
func (s *Scheduler) SpaceRatio() float64 {
	if s.cfg.Capacity <= 0 {
		return 1
	}
	r := float64(s.obstacles.Len()) / float64(s.cfg.Capacity)
	if r > 1 {
		return 1
	}
	return r
}

// Alive returns the seconds this scheduler has been ticked.
func (s *Scheduler) Alive() float64 {
	return s.alive
}

// Timeline exposes the timeline state for display and tests.
func (s *Scheduler) Timeline() *Timeline {
	return s.timeline
}

// Done reports whether the scheduler will never emit again.
func (s *Scheduler) Done() bool {
	return s.closed || s.timeline.Done()
}
