package ability

import (
	"math"
	"testing"

	"github.com/vovakirdan/pushout/internal/core"
	"github.com/vovakirdan/pushout/internal/game/obstacle"
)

type fakeContacts struct {
	ids []obstacle.ID
}

func (f *fakeContacts) Touching() []obstacle.ID { return f.ids }

type fakeRemover struct {
	live    map[obstacle.ID]bool
	removed []obstacle.ID
}

func newFakeRemover(ids ...obstacle.ID) *fakeRemover {
	r := &fakeRemover{live: make(map[obstacle.ID]bool)}
	for _, id := range ids {
		r.live[id] = true
	}
	return r
}

func (r *fakeRemover) RemoveObstacle(id obstacle.ID) bool {
	if !r.live[id] {
		return false
	}
	delete(r.live, id)
	r.removed = append(r.removed, id)
	return true
}

const tick = 0.25 // exact in binary, keeps timer comparisons exact

func noInput() core.InputFrame { return core.NewInputFrame() }

func input(actions ...core.Action) core.InputFrame {
	f := core.NewInputFrame()
	for _, a := range actions {
		f.Set(a)
	}
	return f
}

// readyController returns a controller that has finished its first cooldown.
func readyController(contacts Contacts, remover obstacle.Remover) *Controller {
	c := New(DefaultConfig(), contacts, remover)
	for !c.IsReady() {
		c.Update(tick, noInput())
	}
	return c
}

func TestStartsCoolingDown(t *testing.T) {
	c := New(DefaultConfig(), nil, newFakeRemover())

	if c.State() != StateCooldown {
		t.Errorf("State() = %v, expected Cooldown", c.State())
	}
	if c.SpecialRatio() != 0 {
		t.Errorf("SpecialRatio() = %g, expected 0", c.SpecialRatio())
	}
	if c.Heading() != math.Pi {
		t.Errorf("Heading() = %g, expected π", c.Heading())
	}
}

func TestCooldownReachesReady(t *testing.T) {
	c := New(DefaultConfig(), nil, newFakeRemover())
	ticks := int(DefaultConfig().CooldownDuration / tick)

	for i := 0; i < ticks-1; i++ {
		c.Update(tick, input(core.ActionSpecial))
		if c.State() != StateCooldown {
			t.Fatalf("tick %d: State() = %v, expected Cooldown", i, c.State())
		}
	}
	c.Update(tick, noInput())
	if c.State() != StateReady {
		t.Fatalf("State() = %v after full cooldown, expected Ready", c.State())
	}
	if c.SpecialRatio() != 1 {
		t.Errorf("SpecialRatio() = %g, expected 1 when ready", c.SpecialRatio())
	}

	// Ready persists without input.
	c.Update(tick, noInput())
	if c.State() != StateReady {
		t.Error("Ready should persist until triggered")
	}
}

func TestSpecialCycle(t *testing.T) {
	cfg := DefaultConfig()
	c := readyController(nil, newFakeRemover())

	c.Update(tick, input(core.ActionSpecial))
	if c.State() != StateActive {
		t.Fatalf("State() = %v after trigger, expected Active", c.State())
	}
	if c.Timer() != cfg.ActiveDuration {
		t.Errorf("Timer() = %g, expected %g", c.Timer(), cfg.ActiveDuration)
	}
	if c.SpecialRatio() != 1 {
		t.Errorf("SpecialRatio() = %g at activation, expected 1", c.SpecialRatio())
	}

	c.Update(tick, input(core.ActionSpecial))
	c.Update(tick, noInput())
	if c.State() != StateActive {
		t.Fatal("special should still be active before its duration elapsed")
	}

	c.Update(tick, noInput())
	if c.State() != StateCooldown || c.Timer() != 0 {
		t.Fatalf("after duration: State() = %v, Timer() = %g; expected Cooldown(0)", c.State(), c.Timer())
	}

	// Holding the trigger during cooldown does nothing.
	c.Update(tick, input(core.ActionSpecial))
	if c.State() != StateCooldown {
		t.Errorf("State() = %v, trigger during cooldown should be ignored", c.State())
	}
}

func TestActivationSweepsCurrentContacts(t *testing.T) {
	contacts := &fakeContacts{}
	remover := newFakeRemover(1, 2, 3)
	c := readyController(contacts, remover)

	contacts.ids = []obstacle.ID{1, 2}
	c.Update(tick, input(core.ActionSpecial))

	if len(remover.removed) != 2 {
		t.Fatalf("removed %v, expected both touching obstacles", remover.removed)
	}
	if !remover.live[3] {
		t.Error("obstacle not touching should survive")
	}
	if c.Swept() != 2 {
		t.Errorf("Swept() = %d, expected 2", c.Swept())
	}
}

func TestContactBeginOnlyWhileActive(t *testing.T) {
	remover := newFakeRemover(1, 2)
	c := readyController(&fakeContacts{}, remover)

	if c.OnContactBegin(1) {
		t.Error("contact while ready should not remove")
	}

	c.Update(tick, input(core.ActionSpecial))
	if !c.OnContactBegin(1) {
		t.Error("contact while active should remove")
	}
	if c.OnContactBegin(1) {
		t.Error("removing the same obstacle twice should report false")
	}

	for c.IsActive() {
		c.Update(tick, noInput())
	}
	if c.OnContactBegin(2) {
		t.Error("contact after the special ended should not remove")
	}
	if len(remover.removed) != 1 {
		t.Errorf("removed %v, expected only obstacle 1", remover.removed)
	}
}

func TestMovementForwardAndClamp(t *testing.T) {
	c := New(DefaultConfig(), nil, newFakeRemover())

	c.Update(tick, input(core.ActionForward))
	// Heading π faces +Z.
	if math.Abs(c.Position().Z-DefaultConfig().Speed*tick) > 1e-9 || math.Abs(c.Position().X) > 1e-9 {
		t.Errorf("Position() = %+v, expected forward along +Z", c.Position())
	}

	for i := 0; i < 40; i++ {
		c.Update(tick, input(core.ActionForward))
	}
	if c.Position().Z != DefaultConfig().Area {
		t.Errorf("Position().Z = %g, expected clamp at %g", c.Position().Z, DefaultConfig().Area)
	}

	c.Update(tick, input(core.ActionBackward))
	if c.Position().Z >= DefaultConfig().Area {
		t.Error("backward should move away from the edge")
	}
}

func TestMovementReachesCorner(t *testing.T) {
	cfg := DefaultConfig()
	cfg.StartHeading = 5 * math.Pi / 4 // diagonal towards +X, +Z
	c := New(cfg, nil, newFakeRemover())

	for i := 0; i < 40; i++ {
		c.Update(tick, input(core.ActionForward))
	}
	if c.Position().X != cfg.Area || c.Position().Z != cfg.Area {
		t.Errorf("Position() = %+v, expected corner (%g, %g)", c.Position(), cfg.Area, cfg.Area)
	}
}

func TestRotation(t *testing.T) {
	cfg := DefaultConfig()
	c := New(cfg, nil, newFakeRemover())

	c.Update(tick, input(core.ActionRotateLeft))
	if got, want := c.Heading(), math.Pi+cfg.RotateSpeed*tick; math.Abs(got-want) > 1e-9 {
		t.Errorf("Heading() = %g after left turn, expected %g", got, want)
	}
	c.Update(tick, input(core.ActionRotateRight))
	if math.Abs(c.Heading()-math.Pi) > 1e-9 {
		t.Errorf("Heading() = %g after right turn, expected π", c.Heading())
	}
}

func TestSpeedsWhileActive(t *testing.T) {
	cfg := DefaultConfig()
	c := readyController(nil, newFakeRemover())

	if c.Speed() != cfg.Speed || c.RotateSpeed() != cfg.RotateSpeed {
		t.Error("base speeds expected while not active")
	}
	c.Update(tick, input(core.ActionSpecial))
	if c.Speed() != cfg.SpecialSpeed || c.RotateSpeed() != cfg.SpecialRotateSpeed {
		t.Error("special speeds expected while active")
	}
}

func TestStateString(t *testing.T) {
	if StateReady.String() != "Ready" || StateActive.String() != "Active" || State(42).String() != "Unknown" {
		t.Error("unexpected State.String() output")
	}
}
