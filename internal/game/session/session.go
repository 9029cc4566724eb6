// Package session is the top-level state machine of a pushout game. A
// Controller owns the spawn scheduler and the dozer of the current run,
// keeps the run clock and the high score, and tells observers about every
// state change.
package session

import (
	"context"
	"math/rand"

	"github.com/vovakirdan/pushout/internal/core"
	"github.com/vovakirdan/pushout/internal/game/ability"
	"github.com/vovakirdan/pushout/internal/game/obstacle"
	"github.com/vovakirdan/pushout/internal/game/spawn"
)

// State is the session phase.
type State int

const (
	StateStart State = iota
	StatePlaying
	StateGameOver
)

// String returns a human-readable name for the state.
func (s State) String() string {
	switch s {
	case StateStart:
		return "Start"
	case StatePlaying:
		return "Playing"
	case StateGameOver:
		return "GameOver"
	default:
		return "Unknown"
	}
}

// Observer is notified synchronously after each state transition.
// Observers must not block and must not start or end sessions.
type Observer func(State)

// World is the host side a session needs: a place to create obstacle bodies
// and a way to ask what touches the dozer.
type World interface {
	obstacle.Factory
	ability.Contacts
}

// Config bundles the tuning of every component.
type Config struct {
	Spawn   spawn.Config
	Ability ability.Config
	Bounds  obstacle.Bounds
}

// DefaultConfig returns the standard game tuning.
func DefaultConfig() Config {
	return Config{
		Spawn:   spawn.DefaultConfig(),
		Ability: ability.DefaultConfig(),
		Bounds:  obstacle.DefaultBounds(),
	}
}

// Controller drives one player's sessions for the lifetime of the game.
type Controller struct {
	cfg   Config
	world World
	rng   *rand.Rand
	ids   obstacle.Sequence

	state       State
	sessionTime float64
	highScore   int
	lastScore   int
	runs        int

	scheduler *spawn.Scheduler
	dozer     *ability.Controller
	cancel    context.CancelFunc
	observers []Observer
}

// New creates a controller in the Start state.
func New(cfg Config, world World, seed int64) *Controller {
	return &Controller{
		cfg:   cfg,
		world: world,
		rng:   rand.New(rand.NewSource(seed)),
		state: StateStart,
	}
}

// Subscribe registers an observer for state changes.
func (c *Controller) Subscribe(o Observer) {
	c.observers = append(c.observers, o)
}

func (c *Controller) notify() {
	for _, o := range c.observers {
		o(c.state)
	}
}

// StartSession begins a new run. A previous run is torn down first: its
// timeline is cancelled and its obstacles released.
func (c *Controller) StartSession() {
	c.teardown()

	c.state = StatePlaying
	c.sessionTime = 0
	c.runs++

	ctx, cancel := context.WithCancel(context.Background())
	c.cancel = cancel
	c.scheduler = spawn.New(ctx, c.cfg.Spawn, c, c.world, c.rng, &c.ids)
	c.dozer = ability.New(c.cfg.Ability, c.world, c.scheduler)

	c.notify()
}

// EndSession finishes the current run and records the high score. The
// scheduler calls it when the platform is full. It is a no-op unless a run
// is in progress.
func (c *Controller) EndSession() {
	if c.state != StatePlaying {
		return
	}

	c.state = StateGameOver
	if c.cancel != nil {
		c.cancel()
	}
	c.lastScore = c.scheduler.DestroyedCount()
	if c.lastScore > c.highScore {
		c.highScore = c.lastScore
	}

	c.notify()
}

func (c *Controller) teardown() {
	if c.cancel != nil {
		c.cancel()
		c.cancel = nil
	}
	if c.scheduler != nil {
		c.scheduler.Close()
		c.scheduler = nil
	}
	c.dozer = nil
}

// Tick advances the run clock while playing.
func (c *Controller) Tick(dt float64) {
	if c.state == StatePlaying {
		c.sessionTime += dt
	}
}

// Update performs one frame: start trigger, clock, dozer, timeline and the
// boundary sweep, in that order.
func (c *Controller) Update(dt float64, in core.InputFrame) {
	if c.state != StatePlaying && in.Has(core.ActionStart) {
		c.StartSession()
	}

	c.Tick(dt)

	if c.state == StatePlaying && c.dozer != nil {
		c.dozer.Update(dt, in)
	}

	if c.scheduler != nil {
		c.scheduler.Tick(dt)
		c.scheduler.Advance(c.sessionTime)
		c.scheduler.Sweep(c.cfg.Bounds)
	}
}

// NotifyContactBegin forwards a contact-begin event between the dozer and an
// obstacle. It reports whether the obstacle was destroyed.
func (c *Controller) NotifyContactBegin(id obstacle.ID) bool {
	if c.state != StatePlaying || c.dozer == nil {
		return false
	}
	return c.dozer.OnContactBegin(id)
}

// State returns the current state.
func (c *Controller) State() State {
	return c.state
}

// IsPlaying reports whether a run is in progress.
func (c *Controller) IsPlaying() bool {
	return c.state == StatePlaying
}

// SessionTime returns the seconds played in the current or last run.
func (c *Controller) SessionTime() float64 {
	return c.sessionTime
}

// HighScore returns the best destroyed count of all finished runs.
func (c *Controller) HighScore() int {
	return c.highScore
}

// LastScore returns the destroyed count of the last finished run.
func (c *Controller) LastScore() int {
	return c.lastScore
}

// Runs returns how many runs were started.
func (c *Controller) Runs() int {
	return c.runs
}

// DestroyedCount returns the score of the current or last run.
func (c *Controller) DestroyedCount() int {
	if c.scheduler == nil {
		return 0
	}
	return c.scheduler.DestroyedCount()
}

// ActiveCount returns the number of live obstacles.
func (c *Controller) ActiveCount() int {
	if c.scheduler == nil {
		return 0
	}
	return c.scheduler.ActiveCount()
}

// SpaceRatio returns how full the platform is. Before the first run the
// gauge reads full.
func (c *Controller) SpaceRatio() float64 {
	if c.scheduler == nil {
		return 1
	}
	return c.scheduler.SpaceRatio()
}

// SpecialRatio returns the special gauge. Before the first run it reads full.
func (c *Controller) SpecialRatio() float64 {
	if c.dozer == nil {
		return 1
	}
	return c.dozer.SpecialRatio()
}

// Scheduler returns the current run's scheduler, or nil before the first run.
func (c *Controller) Scheduler() *spawn.Scheduler {
	return c.scheduler
}

// Dozer returns the current run's dozer, or nil before the first run.
func (c *Controller) Dozer() *ability.Controller {
	return c.dozer
}
