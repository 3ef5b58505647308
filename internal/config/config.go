// Package config provides the compiled-in presets of the snake variants.
// Presets are YAML documents embedded into the binary; nothing is read
// from disk at runtime.
package config

import (
	"time"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// Rules names the ruleset a preset plays with.
type Rules string

const (
	RulesClassic Rules = "classic"
	RulesMinimal Rules = "minimal"
)

// Preset contains everything that differs between the two variants.
type Preset struct {
	ID     string       `yaml:"id"`
	Title  string       `yaml:"title"`
	Rules  Rules        `yaml:"rules"`
	Grid   GridConfig   `yaml:"grid"`
	Timing TimingConfig `yaml:"timing"`
	Start  PointConfig  `yaml:"start"`
	Food   *PointConfig `yaml:"food"` // Fixed food cell; nil means random respawn
	Glyphs GlyphConfig  `yaml:"glyphs"`
}

// GridConfig defines the playfield dimensions.
type GridConfig struct {
	Height int `yaml:"height"`
	Width  int `yaml:"width"`
}

// TimingConfig defines frame pacing.
type TimingConfig struct {
	FrameMS         int `yaml:"frame_ms"`
	GameOverDelayMS int `yaml:"game_over_delay_ms"`
}

// PointConfig is a cell position in a preset.
type PointConfig struct {
	X int `yaml:"x"`
	Y int `yaml:"y"`
}

// GlyphConfig defines the single-character glyphs of a frame.
type GlyphConfig struct {
	Snake string `yaml:"snake"`
	Food  string `yaml:"food"`
	Empty string `yaml:"empty"`
}

// Point converts the config value to a core point.
func (p PointConfig) Point() core.Point {
	return core.Point{X: p.X, Y: p.Y}
}

// FrameDuration returns the fixed time between frames.
func (p Preset) FrameDuration() time.Duration {
	return time.Duration(p.Timing.FrameMS) * time.Millisecond
}

// GameOverDelay returns the pause between the terminal render and exit.
func (p Preset) GameOverDelay() time.Duration {
	return time.Duration(p.Timing.GameOverDelayMS) * time.Millisecond
}

// RuntimeConfig builds the runtime config handed to the game and platform.
func (p Preset) RuntimeConfig(seed int64) core.RuntimeConfig {
	return core.RuntimeConfig{
		GridW:         p.Grid.Width,
		GridH:         p.Grid.Height,
		Frame:         p.FrameDuration(),
		GameOverDelay: p.GameOverDelay(),
		Seed:          seed,
	}
}
