package config

import (
	_ "embed"
)

//go:embed defaults/pushout.yaml
var defaultPushoutYAML []byte

// DefaultPushoutConfig returns the default configuration.
func DefaultPushoutConfig() PushoutConfig {
	return PushoutConfig{
		Platform: PushoutPlatform{
			Half:        5,
			WallHeight:  1.5,
			BoundaryLow: -1,
			BoundaryFar: 6,
		},
		Player: PushoutPlayer{
			Area:        4,
			Speed:       5,
			RotateSpeed: 3,
			Half:        1,
		},
		Special: PushoutSpecial{
			Speed:       15,
			RotateSpeed: 1,
			Duration:    0.75,
			Cooldown:    15,
		},
		Spawn: PushoutSpawn{
			Capacity:   40,
			Extent:     2.5,
			DropHeight: 8,
			MinScale:   0.6,
			MaxScale:   1.2,
			Timeline: []PhaseConfig{
				{Kind: "burst", Count: 6, Delay: 0.35},
				{Kind: "until", Until: 20, Delay: 2.0},
				{Kind: "burst", Count: 6, Delay: 0.30},
				{Kind: "until", Until: 45, Delay: 1.4},
				{Kind: "burst", Count: 8, Delay: 0.25},
				{Kind: "until", Until: 75, Delay: 1.0},
				{Kind: "burst", Count: 10, Delay: 0.20},
				{Kind: "until", Until: 110, Delay: 0.75},
				{Kind: "until", Delay: 0.5},
			},
		},
		Physics: PushoutPhysics{
			Gravity:     20,
			Damping:     3,
			ContactSkin: 0.05,
		},
	}
}

// GetDefaultYAML returns the embedded default YAML for a game.
func GetDefaultYAML(gameID string) []byte {
	switch gameID {
	case "pushout":
		return defaultPushoutYAML
	default:
		return nil
	}
}
