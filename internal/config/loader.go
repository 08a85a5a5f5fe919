package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadTetris loads the Tetris variant configuration.
// Search order: customPath -> ~/.blockfall/configs/tetris.yaml ->
// ./configs/tetris.yaml -> embedded default.
func LoadTetris(customPath string) (BlocksConfig, error) {
	return loadBlocks(customPath, "tetris.yaml", defaultTetrisYAML, DefaultTetrisConfig)
}

// LoadLineDestroyer loads the Line Destroyer variant configuration.
// Search order: customPath -> ~/.blockfall/configs/linedestroyer.yaml ->
// ./configs/linedestroyer.yaml -> embedded default.
func LoadLineDestroyer(customPath string) (BlocksConfig, error) {
	return loadBlocks(customPath, "linedestroyer.yaml", defaultLineDestroyerYAML, DefaultLineDestroyerConfig)
}

func loadBlocks(customPath, filename string, embedded []byte, fallback func() BlocksConfig) (BlocksConfig, error) {
	var cfg BlocksConfig

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return applyDefaults(cfg, fallback()), nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath(filename); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if err := yaml.Unmarshal(data, &cfg); err == nil {
				return applyDefaults(cfg, fallback()), nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(filepath.Join("configs", filename)); err == nil {
		if err := yaml.Unmarshal(data, &cfg); err == nil {
			return applyDefaults(cfg, fallback()), nil
		}
	}

	// Use embedded default YAML
	if err := yaml.Unmarshal(embedded, &cfg); err != nil {
		return fallback(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// applyDefaults fills zero-valued fields from the variant defaults, so a
// partial user config cannot produce a degenerate board or a stalled timer.
func applyDefaults(cfg, def BlocksConfig) BlocksConfig {
	if cfg.Board.Width <= 0 {
		cfg.Board.Width = def.Board.Width
	}
	if cfg.Board.Height <= 0 {
		cfg.Board.Height = def.Board.Height
	}
	if cfg.Scoring.LineScore <= 0 {
		cfg.Scoring.LineScore = def.Scoring.LineScore
	}
	if cfg.Scoring.LinesPerLevel <= 0 {
		cfg.Scoring.LinesPerLevel = def.Scoring.LinesPerLevel
	}
	if cfg.Speed.BaseIntervalMs <= 0 {
		cfg.Speed.BaseIntervalMs = def.Speed.BaseIntervalMs
	}
	if cfg.Speed.MinIntervalMs <= 0 {
		cfg.Speed.MinIntervalMs = def.Speed.MinIntervalMs
	}
	return cfg
}

// userConfigPath returns the path to user config file, or empty if home is
// unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".blockfall", "configs", filename)
}
