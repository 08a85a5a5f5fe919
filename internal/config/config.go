// Package config provides YAML-based game configuration loading for the
// blockfall platform.
package config

// BlocksConfig contains all configuration for a falling-block game variant.
type BlocksConfig struct {
	Board      BoardConfig      `yaml:"board"`
	Scoring    ScoringConfig    `yaml:"scoring"`
	Speed      SpeedConfig      `yaml:"speed"`
	HighScores HighScoresConfig `yaml:"high_scores"`
}

// BoardConfig defines the playfield dimensions.
type BoardConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// ScoringConfig defines the scoring constants.
type ScoringConfig struct {
	LineScore     int `yaml:"line_score"`      // Per line, multiplied by level
	HardDropBonus int `yaml:"hard_drop_bonus"` // Flat bonus on hard drop
	LinesPerLevel int `yaml:"lines_per_level"` // Lines needed per level
}

// SpeedConfig defines the level-dependent drop speed curve, in milliseconds.
type SpeedConfig struct {
	BaseIntervalMs int `yaml:"base_interval_ms"` // Drop interval at level 1
	IntervalStepMs int `yaml:"interval_step_ms"` // Reduction per level
	MinIntervalMs  int `yaml:"min_interval_ms"`  // Floor for the interval
}

// HighScoresConfig toggles the persistence hook for a variant.
type HighScoresConfig struct {
	Enabled bool `yaml:"enabled"`
}
