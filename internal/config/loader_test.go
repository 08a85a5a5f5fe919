package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLoadTetrisEmbeddedDefault(t *testing.T) {
	// Run from a temp dir so a stray ./configs/ cannot shadow the embed.
	chdirTemp(t)

	cfg, err := LoadTetris("")
	require.NoError(t, err)
	require.Equal(t, DefaultTetrisConfig(), cfg)
}

func TestLoadLineDestroyerEmbeddedDefault(t *testing.T) {
	chdirTemp(t)

	cfg, err := LoadLineDestroyer("")
	require.NoError(t, err)
	require.True(t, cfg.HighScores.Enabled)
	require.Equal(t, DefaultLineDestroyerConfig(), cfg)
}

func TestLoadCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	data := []byte(`board:
  width: 12
  height: 24
scoring:
  line_score: 250
  hard_drop_bonus: 0
  lines_per_level: 5
speed:
  base_interval_ms: 800
  interval_step_ms: 40
  min_interval_ms: 100
high_scores:
  enabled: true
`)
	require.NoError(t, os.WriteFile(path, data, 0644))

	cfg, err := LoadTetris(path)
	require.NoError(t, err)
	require.Equal(t, 12, cfg.Board.Width)
	require.Equal(t, 24, cfg.Board.Height)
	require.Equal(t, 250, cfg.Scoring.LineScore)
	require.Equal(t, 0, cfg.Scoring.HardDropBonus)
	require.Equal(t, 5, cfg.Scoring.LinesPerLevel)
	require.Equal(t, 800, cfg.Speed.BaseIntervalMs)
	require.Equal(t, 100, cfg.Speed.MinIntervalMs)
	require.True(t, cfg.HighScores.Enabled)
}

func TestLoadCustomPathMissing(t *testing.T) {
	_, err := LoadTetris(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
}

func TestLoadCustomPathMalformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("board: [not a map"), 0644))

	_, err := LoadTetris(path)
	require.Error(t, err)
}

func TestLoadPartialConfigGetsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "partial.yaml")
	require.NoError(t, os.WriteFile(path, []byte("scoring:\n  line_score: 42\n"), 0644))

	cfg, err := LoadTetris(path)
	require.NoError(t, err)
	def := DefaultTetrisConfig()
	require.Equal(t, 42, cfg.Scoring.LineScore)
	require.Equal(t, def.Board.Width, cfg.Board.Width)
	require.Equal(t, def.Board.Height, cfg.Board.Height)
	require.Equal(t, def.Speed.BaseIntervalMs, cfg.Speed.BaseIntervalMs)
	require.Equal(t, def.Speed.MinIntervalMs, cfg.Speed.MinIntervalMs)
}

func TestLoadLocalConfigsDir(t *testing.T) {
	dir := chdirTemp(t)
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "configs"), 0755))
	data := []byte("board:\n  width: 8\n  height: 16\n")
	require.NoError(t, os.WriteFile(filepath.Join(dir, "configs", "tetris.yaml"), data, 0644))

	cfg, err := LoadTetris("")
	require.NoError(t, err)
	require.Equal(t, 8, cfg.Board.Width)
	require.Equal(t, 16, cfg.Board.Height)
}

func TestDefaultDropInterval(t *testing.T) {
	cfg := DefaultTetrisConfig()
	require.Equal(t, time.Second, time.Duration(cfg.Speed.BaseIntervalMs)*time.Millisecond)
	require.Equal(t, 50, cfg.Speed.IntervalStepMs)
	require.Equal(t, 50, cfg.Speed.MinIntervalMs)
}

// chdirTemp switches the working directory to a fresh temp dir for the test
// and restores it afterwards.
func chdirTemp(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	old, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { os.Chdir(old) })
	// Keep a real ~/.blockfall from leaking into the search order.
	t.Setenv("HOME", dir)
	return dir
}
