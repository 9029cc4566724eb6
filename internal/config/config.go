// Package config provides YAML-based configuration loading and difficulty
// presets for pushout.
package config

// PushoutConfig contains all tuning for the game.
type PushoutConfig struct {
	Platform PushoutPlatform `yaml:"platform"`
	Player   PushoutPlayer   `yaml:"player"`
	Special  PushoutSpecial  `yaml:"special"`
	Spawn    PushoutSpawn    `yaml:"spawn"`
	Physics  PushoutPhysics  `yaml:"physics"`
}

// PushoutPlatform describes the platform and where obstacles are lost.
type PushoutPlatform struct {
	Half        float64 `yaml:"half"`
	WallHeight  float64 `yaml:"wall_height"`
	BoundaryLow float64 `yaml:"boundary_low"`
	BoundaryFar float64 `yaml:"boundary_far"`
}

// PushoutPlayer defines dozer movement.
type PushoutPlayer struct {
	Area        float64 `yaml:"area"`
	Speed       float64 `yaml:"speed"`
	RotateSpeed float64 `yaml:"rotate_speed"`
	Half        float64 `yaml:"half"`
}

// PushoutSpecial defines the special ability.
type PushoutSpecial struct {
	Speed       float64 `yaml:"speed"`
	RotateSpeed float64 `yaml:"rotate_speed"`
	Duration    float64 `yaml:"duration"`
	Cooldown    float64 `yaml:"cooldown"`
}

// PushoutSpawn defines obstacle spawning.
type PushoutSpawn struct {
	Capacity   int           `yaml:"capacity"`
	Extent     float64       `yaml:"extent"`
	DropHeight float64       `yaml:"drop_height"`
	MinScale   float64       `yaml:"min_scale"`
	MaxScale   float64       `yaml:"max_scale"`
	Timeline   []PhaseConfig `yaml:"timeline"`
}

// PhaseConfig is one timeline phase. Kind is "burst" (Count emissions) or
// "until" (one emission per Delay until Until seconds; 0 never ends).
type PhaseConfig struct {
	Kind  string  `yaml:"kind"`
	Count int     `yaml:"count,omitempty"`
	Until float64 `yaml:"until,omitempty"`
	Delay float64 `yaml:"delay"`
}

// PushoutPhysics defines world simulation parameters.
type PushoutPhysics struct {
	Gravity     float64 `yaml:"gravity"`
	Damping     float64 `yaml:"damping"`
	ContactSkin float64 `yaml:"contact_skin"`
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)
