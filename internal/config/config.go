// Package config provides YAML-based configuration loading and board
// presets for the rollcube platform.
package config

import "fmt"

// Config contains all configuration for the rollcube puzzle.
type Config struct {
	Board BoardConfig `yaml:"board"`
	Theme ThemeConfig `yaml:"theme"`
}

// BoardConfig defines the random puzzle parameters.
type BoardConfig struct {
	// Side is the number of squares per board edge. Must be > 2.
	Side int `yaml:"side"`
	// PaintedCells is how many squares start painted. A solvable puzzle
	// needs at least as many as the cube has unpainted faces.
	PaintedCells int `yaml:"painted_cells"`
}

// ThemeConfig defines how puzzle elements are drawn.
type ThemeConfig struct {
	PaintedSquare string `yaml:"painted_square"` // glyph for a painted square
	BlankSquare   string `yaml:"blank_square"`   // glyph for an unpainted square
	Cube          string `yaml:"cube"`           // glyph for the cube itself
}

// Validate checks the configuration for values the puzzle engine would
// reject.
func (c Config) Validate() error {
	if c.Board.Side <= 2 {
		return fmt.Errorf("config: board side must be > 2, got %d", c.Board.Side)
	}
	if c.Board.PaintedCells < 0 {
		return fmt.Errorf("config: painted_cells must not be negative, got %d", c.Board.PaintedCells)
	}
	if c.Board.PaintedCells > c.Board.Side*c.Board.Side {
		return fmt.Errorf("config: painted_cells %d exceeds board capacity %d",
			c.Board.PaintedCells, c.Board.Side*c.Board.Side)
	}
	return nil
}

// Default returns the standard configuration: a 4x4 board with six
// painted squares, matching the classic puzzle.
func Default() Config {
	return Config{
		Board: BoardConfig{
			Side:         4,
			PaintedCells: 6,
		},
		Theme: ThemeConfig{
			PaintedSquare: "▒",
			BlankSquare:   "·",
			Cube:          "█",
		},
	}
}

// Preset represents a named board preset.
type Preset string

const (
	PresetCasual   Preset = "casual"   // 4x4, the classic board
	PresetStandard Preset = "standard" // 5x5, more room to maneuver
	PresetExpert   Preset = "expert"   // 6x6, long hauls between paint
)

// ApplyPreset adjusts the board parameters for a preset. Unknown presets
// leave the config unchanged.
func ApplyPreset(cfg *Config, preset Preset) {
	switch preset {
	case PresetCasual:
		cfg.Board.Side = 4
	case PresetStandard:
		cfg.Board.Side = 5
	case PresetExpert:
		cfg.Board.Side = 6
	}
}
