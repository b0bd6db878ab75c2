// Package config provides YAML-based tuning for the blockfall game:
// gravity timing, piece randomizer behavior, and achievement notification
// queue sizing.
package config

// GameConfig contains all tunable parameters for a blockfall session.
// Board dimensions and the scoring table are fixed by the game rules and
// are not configurable.
type GameConfig struct {
	Gravity       GravityConfig       `yaml:"gravity"`
	Randomizer    RandomizerConfig    `yaml:"randomizer"`
	Notifications NotificationsConfig `yaml:"notifications"`
}

// GravityConfig defines how fast pieces fall as the level climbs.
// The effective interval is max(100, base_fall_ms - (level-1)*level_step_ms),
// divided by the player's speed multiplier and floored at 50ms.
type GravityConfig struct {
	BaseFallMS  int `yaml:"base_fall_ms"`
	LevelStepMS int `yaml:"level_step_ms"`
}

// RandomizerConfig selects the next-piece drawing strategy.
type RandomizerConfig struct {
	// UseBag enables the shuffled 7-bag randomizer. When false, pieces
	// are drawn independently and uniformly.
	UseBag bool `yaml:"use_bag"`
}

// NotificationsConfig sizes the achievement notification queue.
type NotificationsConfig struct {
	Capacity int `yaml:"capacity"`
}

// Normalize replaces zero or nonsensical values with defaults so a
// partially filled YAML file still yields a playable configuration.
func (c *GameConfig) Normalize() {
	def := DefaultGameConfig()
	if c.Gravity.BaseFallMS <= 0 {
		c.Gravity.BaseFallMS = def.Gravity.BaseFallMS
	}
	if c.Gravity.LevelStepMS < 0 {
		c.Gravity.LevelStepMS = def.Gravity.LevelStepMS
	}
	if c.Notifications.Capacity <= 0 {
		c.Notifications.Capacity = def.Notifications.Capacity
	}
}
