package achievements

// Rarity represents an achievement's difficulty level.
type Rarity string

const (
	RarityCommon    Rarity = "common"
	RarityRare      Rarity = "rare"
	RarityEpic      Rarity = "epic"
	RarityLegendary Rarity = "legendary"
)

// Category groups related achievements in the UI.
type Category string

const (
	CategoryLines     Category = "Lines"
	CategoryScore     Category = "Score"
	CategoryLevel     Category = "Level"
	CategoryTetris    Category = "Tetris"
	CategoryCombo     Category = "Combos"
	CategoryEndurance Category = "Endurance"
)

// Op is a comparison operator for unlock conditions.
type Op string

const (
	OpGTE Op = ">="
	OpGT  Op = ">"
	OpEQ  Op = "=="
	OpLTE Op = "<="
	OpLT  Op = "<"
)

// Eval applies the operator to (value, threshold).
func (o Op) Eval(value, threshold int) bool {
	switch o {
	case OpGTE:
		return value >= threshold
	case OpGT:
		return value > threshold
	case OpEQ:
		return value == threshold
	case OpLTE:
		return value <= threshold
	case OpLT:
		return value < threshold
	default:
		return false
	}
}

// Condition compares a stat field against a threshold.
type Condition struct {
	Field     Field
	Op        Op
	Threshold int
}

// Holds evaluates the condition against a tally. The second return is
// false when the tally does not carry the field.
func (c Condition) Holds(s Stats) (bool, bool) {
	v, ok := s.Value(c.Field)
	if !ok {
		return false, false
	}
	return c.Op.Eval(v, c.Threshold), true
}

// Achievement describes a single unlockable goal. Requires names a
// predecessor that must already be unlocked; chains are acyclic.
type Achievement struct {
	ID          string
	Name        string
	Description string
	Category    Category
	Rarity      Rarity
	Condition   Condition
	Extra       []Condition // All must also hold
	Requires    string      // Predecessor id, empty if none
}

// DefaultCatalog returns the full built-in achievement set in evaluation
// order. Chained entries appear after their predecessors so a cascade
// resolves one link per pass.
func DefaultCatalog() []Achievement {
	return []Achievement{

		// Lines

		{
			ID: "first_clear", Name: "First Clear",
			Description: "Clear your first line",
			Category:    CategoryLines, Rarity: RarityCommon,
			Condition: Condition{Field: FieldLines, Op: OpGTE, Threshold: 1},
		},
		{
			ID: "clearing_up", Name: "Clearing Up",
			Description: "Clear 10 lines in one game",
			Category:    CategoryLines, Rarity: RarityCommon,
			Condition: Condition{Field: FieldLines, Op: OpGTE, Threshold: 10},
			Requires:  "first_clear",
		},
		{
			ID: "line_storm", Name: "Line Storm",
			Description: "Clear 50 lines in one game",
			Category:    CategoryLines, Rarity: RarityRare,
			Condition: Condition{Field: FieldLines, Op: OpGTE, Threshold: 50},
			Requires:  "clearing_up",
		},
		{
			ID: "century_lines", Name: "Century of Lines",
			Description: "Clear 100 lines in one game",
			Category:    CategoryLines, Rarity: RarityEpic,
			Condition: Condition{Field: FieldLines, Op: OpGTE, Threshold: 100},
			Requires:  "line_storm",
		},

		// Score

		{
			ID: "point_taker", Name: "Point Taker",
			Description: "Score 1,000 points",
			Category:    CategoryScore, Rarity: RarityCommon,
			Condition: Condition{Field: FieldScore, Op: OpGTE, Threshold: 1000},
		},
		{
			ID: "high_roller", Name: "High Roller",
			Description: "Score 5,000 points",
			Category:    CategoryScore, Rarity: RarityRare,
			Condition: Condition{Field: FieldScore, Op: OpGTE, Threshold: 5000},
			Requires:  "point_taker",
		},
		{
			ID: "score_legend", Name: "Score Legend",
			Description: "Score 25,000 points",
			Category:    CategoryScore, Rarity: RarityLegendary,
			Condition: Condition{Field: FieldScore, Op: OpGTE, Threshold: 25000},
			Requires:  "high_roller",
		},

		// Level

		{
			ID: "moving_up", Name: "Moving Up",
			Description: "Reach level 2",
			Category:    CategoryLevel, Rarity: RarityCommon,
			Condition: Condition{Field: FieldLevel, Op: OpGTE, Threshold: 2},
		},
		{
			ID: "seasoned", Name: "Seasoned",
			Description: "Reach level 5",
			Category:    CategoryLevel, Rarity: RarityRare,
			Condition: Condition{Field: FieldLevel, Op: OpGTE, Threshold: 5},
			Requires:  "moving_up",
		},
		{
			ID: "speed_demon", Name: "Speed Demon",
			Description: "Reach level 10",
			Category:    CategoryLevel, Rarity: RarityEpic,
			Condition: Condition{Field: FieldLevel, Op: OpGTE, Threshold: 10},
			Requires:  "seasoned",
		},
		{
			ID: "efficient_climber", Name: "Efficient Climber",
			Description: "Reach level 5 with at least 6,000 points",
			Category:    CategoryLevel, Rarity: RarityEpic,
			Condition: Condition{Field: FieldLevel, Op: OpGTE, Threshold: 5},
			Extra: []Condition{
				{Field: FieldScore, Op: OpGTE, Threshold: 6000},
			},
		},

		// Tetris

		{
			ID: "first_tetris", Name: "Tetris!",
			Description: "Clear four lines at once",
			Category:    CategoryTetris, Rarity: RarityRare,
			Condition: Condition{Field: FieldTetrisCount, Op: OpGTE, Threshold: 1},
		},
		{
			ID: "tetris_triple", Name: "Triple Tetris",
			Description: "Clear four lines at once three times in one game",
			Category:    CategoryTetris, Rarity: RarityEpic,
			Condition: Condition{Field: FieldTetrisCount, Op: OpGTE, Threshold: 3},
			Requires:  "first_tetris",
		},

		// Combos

		{
			ID: "chain_starter", Name: "Chain Starter",
			Description: "Clear lines on 2 consecutive locks",
			Category:    CategoryCombo, Rarity: RarityCommon,
			Condition: Condition{Field: FieldCombo, Op: OpGTE, Threshold: 2},
		},
		{
			ID: "combo_artist", Name: "Combo Artist",
			Description: "Clear lines on 4 consecutive locks",
			Category:    CategoryCombo, Rarity: RarityRare,
			Condition: Condition{Field: FieldCombo, Op: OpGTE, Threshold: 4},
			Requires:  "chain_starter",
		},
		{
			ID: "unstoppable", Name: "Unstoppable",
			Description: "Clear lines on 6 consecutive locks",
			Category:    CategoryCombo, Rarity: RarityEpic,
			Condition: Condition{Field: FieldCombo, Op: OpGTE, Threshold: 6},
			Requires:  "combo_artist",
		},
		{
			ID: "double_trouble", Name: "Double Trouble",
			Description: "Hold a combo of 3 including a tetris",
			Category:    CategoryCombo, Rarity: RarityRare,
			Condition: Condition{Field: FieldCombo, Op: OpGTE, Threshold: 3},
			Extra: []Condition{
				{Field: FieldTetrisCount, Op: OpGTE, Threshold: 1},
			},
		},

		// Endurance

		{
			ID: "settled_in", Name: "Settled In",
			Description: "Play for 5 minutes in one game",
			Category:    CategoryEndurance, Rarity: RarityCommon,
			Condition: Condition{Field: FieldTimePlayed, Op: OpGTE, Threshold: 300},
		},
		{
			ID: "marathoner", Name: "Marathoner",
			Description: "Play for 15 minutes in one game",
			Category:    CategoryEndurance, Rarity: RarityRare,
			Condition: Condition{Field: FieldTimePlayed, Op: OpGTE, Threshold: 900},
			Requires:  "settled_in",
		},
	}
}
