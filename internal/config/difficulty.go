package config

// DifficultyPreset names a coarse starting difficulty selectable from the CLI.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// ParsePreset maps a CLI string to a preset. Unknown or empty values map
// to normal.
func ParsePreset(s string) DifficultyPreset {
	switch DifficultyPreset(s) {
	case DifficultyEasy, DifficultyNormal, DifficultyHard:
		return DifficultyPreset(s)
	default:
		return DifficultyNormal
	}
}

// SpeedMultiplier returns the gravity speed multiplier for a preset.
// Higher values shorten the fall interval.
func (p DifficultyPreset) SpeedMultiplier() float64 {
	switch p {
	case DifficultyEasy:
		return 0.8
	case DifficultyHard:
		return 1.5
	default:
		return 1.0
	}
}
