// Package pushout implements the pushout arcade game: steer a dozer around
// a walled platform and shove falling obstacles over its open edge before
// the platform fills up.
package pushout

import (
	"math"

	"github.com/vovakirdan/pushout/internal/config"
	"github.com/vovakirdan/pushout/internal/core"
	"github.com/vovakirdan/pushout/internal/game/ability"
	"github.com/vovakirdan/pushout/internal/game/obstacle"
	"github.com/vovakirdan/pushout/internal/game/session"
	"github.com/vovakirdan/pushout/internal/game/spawn"
	"github.com/vovakirdan/pushout/internal/game/world"
	"github.com/vovakirdan/pushout/internal/registry"
)

// ID is the registry and score-store identifier of the game.
const ID = "pushout"

// Game wires the session core to the kinematic world and the renderer.
type Game struct {
	cfg      config.PushoutConfig
	runtime  core.RuntimeConfig
	world    *world.World
	session  *session.Controller
	finished bool
	ticks    int
}

// New creates a game with the given configuration.
func New(cfg config.PushoutConfig) *Game {
	return &Game{cfg: cfg}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return ID
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Pushout"
}

// Reset builds a fresh world and session controller. The high score is kept
// by the controller, so Reset is only needed once per player.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime
	g.world = world.New(WorldConfig(g.cfg))
	g.session = session.New(SessionConfig(g.cfg), g.world, runtime.Seed)
	g.session.Subscribe(func(s session.State) {
		if s == session.StateGameOver {
			g.finished = true
		}
	})
	g.finished = false
	g.ticks = 0
}

// Step advances the game by one tick: physics first, then contact delivery,
// then the session frame.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.session == nil {
		g.Reset(g.runtime)
	}
	g.finished = false
	g.ticks++

	dt := g.runtime.DeltaTime()
	if d := g.session.Dozer(); d != nil {
		g.world.SetPlayer(d.Position(), d.Heading())
	} else {
		g.world.ClearPlayer()
	}
	for _, id := range g.world.Step(dt) {
		g.session.NotifyContactBegin(id)
	}
	g.session.Update(dt, in)

	return core.StepResult{State: g.State(), Finished: g.finished}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	if g.session == nil {
		return core.GameState{}
	}
	return core.GameState{
		Score:     g.session.DestroyedCount(),
		HighScore: g.session.HighScore(),
		Playing:   g.session.IsPlaying(),
		GameOver:  g.session.State() == session.StateGameOver,
		Elapsed:   g.session.SessionTime(),
	}
}

// Wave returns the 1-based timeline phase of the current run, or 0 when no
// run has started.
func (g *Game) Wave() int {
	if g.session == nil || g.session.Scheduler() == nil {
		return 0
	}
	return g.session.Scheduler().Timeline().PhaseIndex() + 1
}

// Session exposes the session controller.
func (g *Game) Session() *session.Controller {
	return g.session
}

// World exposes the physics world.
func (g *Game) World() *world.World {
	return g.world
}

// SessionConfig converts the YAML configuration into core tuning.
func SessionConfig(c config.PushoutConfig) session.Config {
	phases := make([]spawn.Phase, 0, len(c.Spawn.Timeline))
	for _, p := range c.Spawn.Timeline {
		switch p.Kind {
		case "burst":
			phases = append(phases, spawn.Burst(p.Count, p.Delay))
		case "until":
			phases = append(phases, spawn.Until(p.Until, p.Delay))
		}
	}

	return session.Config{
		Spawn: spawn.Config{
			Capacity:   c.Spawn.Capacity,
			Extent:     c.Spawn.Extent,
			DropHeight: c.Spawn.DropHeight,
			MinScale:   c.Spawn.MinScale,
			MaxScale:   c.Spawn.MaxScale,
			Timeline:   phases,
		},
		Ability: ability.Config{
			Area:               c.Player.Area,
			Speed:              c.Player.Speed,
			RotateSpeed:        c.Player.RotateSpeed,
			SpecialSpeed:       c.Special.Speed,
			SpecialRotateSpeed: c.Special.RotateSpeed,
			ActiveDuration:     c.Special.Duration,
			CooldownDuration:   c.Special.Cooldown,
			StartHeading:       math.Pi,
		},
		Bounds: obstacle.Bounds{
			Low: c.Platform.BoundaryLow,
			Far: c.Platform.BoundaryFar,
		},
	}
}

// WorldConfig converts the YAML configuration into physics tuning.
func WorldConfig(c config.PushoutConfig) world.Config {
	return world.Config{
		Half:        c.Platform.Half,
		WallHeight:  c.Platform.WallHeight,
		Gravity:     c.Physics.Gravity,
		Damping:     c.Physics.Damping,
		PlayerHalf:  c.Player.Half,
		ContactSkin: c.Physics.ContactSkin,
	}
}

// Register the game with the registry
func init() {
	registry.Register(registry.Entry{
		ID:      ID,
		Title:   "Pushout",
		Summary: "push the crates off the platform before it fills up",
		New: func(cfg config.PushoutConfig) registry.Game {
			return New(cfg)
		},
	})
}
