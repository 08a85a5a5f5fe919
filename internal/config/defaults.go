package config

import (
	_ "embed"
)

//go:embed defaults/tetris.yaml
var defaultTetrisYAML []byte

//go:embed defaults/linedestroyer.yaml
var defaultLineDestroyerYAML []byte

// DefaultTetrisConfig returns the default Tetris configuration.
func DefaultTetrisConfig() BlocksConfig {
	return BlocksConfig{
		Board: BoardConfig{
			Width:  10,
			Height: 20,
		},
		Scoring: ScoringConfig{
			LineScore:     100,
			HardDropBonus: 20,
			LinesPerLevel: 10,
		},
		Speed: SpeedConfig{
			BaseIntervalMs: 1000,
			IntervalStepMs: 50,
			MinIntervalMs:  50,
		},
		HighScores: HighScoresConfig{
			Enabled: false,
		},
	}
}

// DefaultLineDestroyerConfig returns the default Line Destroyer
// configuration. Identical rules, but game-over scores are persisted.
func DefaultLineDestroyerConfig() BlocksConfig {
	cfg := DefaultTetrisConfig()
	cfg.HighScores.Enabled = true
	return cfg
}
