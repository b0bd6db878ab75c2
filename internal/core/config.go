package core

import "time"

// RuntimeConfig contains configuration passed to the platform at startup.
// The seed makes piece draws deterministic for replays and tests.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Simulation ticks per second (default 60)
	Seed     int64 // RNG seed for deterministic gameplay
}

// ResolveSeed replaces a zero seed with the current time. Must happen
// before the seed is handed to the game: the rng is created at
// construction, so a late substitution would never reach it.
func (c *RuntimeConfig) ResolveSeed() {
	if c.Seed == 0 {
		c.Seed = time.Now().UnixNano()
	}
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
	}
}
