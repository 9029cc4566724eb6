package config

import (
	"errors"
	"fmt"
)

// ParseDifficulty converts a CLI value to a preset. The empty string means
// no preset.
func ParseDifficulty(s string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(s); p {
	case "", DifficultyEasy, DifficultyNormal, DifficultyHard:
		return p, nil
	default:
		return "", fmt.Errorf("config: unknown difficulty %q (want easy, normal or hard)", s)
	}
}

// DelayScale returns the factor applied to every timeline delay.
func (p DifficultyPreset) DelayScale() float64 {
	switch p {
	case DifficultyEasy:
		return 1.25
	case DifficultyHard:
		return 0.8
	default:
		return 1.0
	}
}

// ApplyPushoutPreset modifies the config based on a difficulty preset.
func ApplyPushoutPreset(cfg *PushoutConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Spawn.Capacity = 50
		cfg.Special.Cooldown = 10
	case DifficultyHard:
		cfg.Spawn.Capacity = 30
		cfg.Special.Cooldown = 20
	default:
		return
	}

	scale := preset.DelayScale()
	timeline := make([]PhaseConfig, len(cfg.Spawn.Timeline))
	for i, p := range cfg.Spawn.Timeline {
		p.Delay *= scale
		timeline[i] = p
	}
	cfg.Spawn.Timeline = timeline
}

// Validate reports every problem in the configuration.
func (c PushoutConfig) Validate() error {
	var errs []error
	check := func(ok bool, format string, args ...any) {
		if !ok {
			errs = append(errs, fmt.Errorf(format, args...))
		}
	}

	check(c.Platform.Half > 0, "platform.half must be positive")
	check(c.Platform.BoundaryFar > c.Platform.Half, "platform.boundary_far must lie past the platform edge")
	check(c.Player.Area > 0, "player.area must be positive")
	check(c.Player.Half > 0, "player.half must be positive")
	check(c.Player.Area+c.Player.Half <= c.Platform.Half, "player.area plus player.half must fit on the platform")
	check(c.Player.Speed >= 0 && c.Special.Speed >= 0, "speeds must not be negative")
	check(c.Special.Duration > 0, "special.duration must be positive")
	check(c.Special.Cooldown >= 0, "special.cooldown must not be negative")
	check(c.Spawn.Capacity > 0, "spawn.capacity must be positive")
	check(c.Spawn.Extent >= 0 && c.Spawn.Extent <= c.Platform.Half, "spawn.extent must lie within the platform")
	check(c.Spawn.MinScale > 0, "spawn.min_scale must be positive")
	check(c.Spawn.MinScale <= c.Spawn.MaxScale, "spawn.min_scale %g exceeds max_scale %g", c.Spawn.MinScale, c.Spawn.MaxScale)
	check(len(c.Spawn.Timeline) > 0, "spawn.timeline must not be empty")
	check(c.Physics.Gravity > 0, "physics.gravity must be positive")

	for i, p := range c.Spawn.Timeline {
		switch p.Kind {
		case "burst":
			check(p.Count > 0, "spawn.timeline[%d]: burst count must be positive", i)
			check(p.Delay >= 0, "spawn.timeline[%d]: delay must not be negative", i)
		case "until":
			check(p.Delay > 0, "spawn.timeline[%d]: until delay must be positive", i)
			check(p.Until >= 0, "spawn.timeline[%d]: until must not be negative", i)
		default:
			check(false, "spawn.timeline[%d]: unknown kind %q", i, p.Kind)
		}
	}

	if n := len(c.Spawn.Timeline); n > 0 {
		last := c.Spawn.Timeline[n-1]
		check(last.Kind == "until" && last.Until == 0,
			"spawn.timeline: last phase must be an until phase with until 0")
	}

	return errors.Join(errs...)
}
