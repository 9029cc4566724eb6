// Package spawn schedules obstacle creation along a fixed, phased timeline
// and gates it on the platform capacity.
package spawn

import (
	"context"
	"fmt"
)

// Kind selects how a phase decides it is finished.
type Kind string

const (
	// KindBurst emits Count obstacles, Delay seconds apart.
	KindBurst Kind = "burst"
	// KindUntil emits one obstacle every Delay seconds until session time
	// reaches Until. Until <= 0 never ends.
	KindUntil Kind = "until"
)

// Phase is one step of the spawn timeline.
type Phase struct {
	Kind  Kind
	Count int
	Until float64
	Delay float64
}

// Burst builds a phase emitting n obstacles with the given inter-arrival delay.
func Burst(n int, delay float64) Phase {
	return Phase{Kind: KindBurst, Count: n, Delay: delay}
}

// Until builds a phase emitting every delay seconds until session time t.
func Until(t, delay float64) Phase {
	return Phase{Kind: KindUntil, Until: t, Delay: delay}
}

// Forever builds an open-ended phase emitting every delay seconds.
func Forever(delay float64) Phase {
	return Phase{Kind: KindUntil, Delay: delay}
}

// Validate reports an error if the phase can not be scheduled.
func (p Phase) Validate() error {
	switch p.Kind {
	case KindBurst:
		if p.Count <= 0 {
			return fmt.Errorf("burst phase needs a positive count, got %d", p.Count)
		}
		if p.Delay < 0 {
			return fmt.Errorf("burst phase delay must not be negative, got %g", p.Delay)
		}
	case KindUntil:
		if p.Delay <= 0 {
			return fmt.Errorf("until phase needs a positive delay, got %g", p.Delay)
		}
	default:
		return fmt.Errorf("unknown phase kind %q", p.Kind)
	}
	return nil
}

// OpenEnded reports whether the phase emits for the rest of the session.
func (p Phase) OpenEnded() bool {
	return p.Kind == KindUntil && p.Until == 0 && p.Delay > 0
}

// finished reports whether the phase has no emission left at time at,
// given how many it already produced.
func (p Phase) finished(emitted int, at float64) bool {
	switch p.Kind {
	case KindBurst:
		return emitted >= p.Count
	case KindUntil:
		return p.Delay <= 0 || (p.Until > 0 && at >= p.Until)
	default:
		return true
	}
}

// Timeline walks through a list of phases. It replaces a sleeping coroutine
// with explicit state: the current phase, how many obstacles that phase has
// emitted, and the session time of the next resumption.
type Timeline struct {
	phases     []Phase
	phaseIndex int
	emitted    int
	nextAt     float64
	done       bool
}

// NewTimeline creates a timeline whose first emission is due at time 0.
func NewTimeline(phases []Phase) *Timeline {
	cp := make([]Phase, len(phases))
	copy(cp, phases)
	return &Timeline{phases: cp}
}

// Advance resumes the timeline at session time now and runs every emission
// that is due. emit performs one emission and returns false to stop the
// timeline for good. The context is checked at each resumption; once it is
// done the timeline terminates without emitting.
//
// Phase thresholds are compared with the scheduled resumption time, not with
// now, so the emission sequence does not depend on the frame rate.
func (t *Timeline) Advance(ctx context.Context, now float64, emit func() bool) int {
	n := 0
	for !t.done {
		if ctx.Err() != nil {
			t.done = true
			break
		}
		if now < t.nextAt {
			break
		}
		if t.phaseIndex >= len(t.phases) {
			t.done = true
			break
		}

		p := t.phases[t.phaseIndex]
		if p.finished(t.emitted, t.nextAt) {
			t.phaseIndex++
			t.emitted = 0
			continue
		}

		if !emit() {
			t.done = true
			break
		}
		n++
		t.emitted++
		t.nextAt += p.Delay
	}
	return n
}

// Stop ends the timeline permanently.
func (t *Timeline) Stop() {
	t.done = true
}

// Done reports whether the timeline will never emit again.
func (t *Timeline) Done() bool {
	return t.done
}

// PhaseIndex returns the index of the current phase.
func (t *Timeline) PhaseIndex() int {
	return t.phaseIndex
}

// EmittedInPhase returns how many emissions the current phase produced.
func (t *Timeline) EmittedInPhase() int {
	return t.emitted
}

// TimeUntilNext returns how long after now the next resumption is due.
// It is zero when the timeline is already late.
func (t *Timeline) TimeUntilNext(now float64) float64 {
	if d := t.nextAt - now; d > 0 {
		return d
	}
	return 0
}
