package config

import (
	_ "embed"
)

//go:embed defaults/blockfall.yaml
var defaultGameYAML []byte

// DefaultGameConfig returns the default blockfall configuration.
func DefaultGameConfig() GameConfig {
	return GameConfig{
		Gravity: GravityConfig{
			BaseFallMS:  800,
			LevelStepMS: 60,
		},
		Randomizer: RandomizerConfig{
			UseBag: true,
		},
		Notifications: NotificationsConfig{
			Capacity: 5,
		},
	}
}

// GetDefaultYAML returns the embedded default YAML.
func GetDefaultYAML() []byte {
	return defaultGameYAML
}
