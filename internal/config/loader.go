package config

import (
	"fmt"
	"unicode/utf8"

	"gopkg.in/yaml.v3"
)

// Load decodes and validates the embedded preset for a variant.
// If the embedded document cannot be decoded the hardcoded default is used.
func Load(id string) (Preset, error) {
	data := GetDefaultYAML(id)
	if data == nil {
		return Preset{}, fmt.Errorf("config: unknown variant %q", id)
	}

	cfg, err := Parse(data)
	if err != nil {
		cfg = defaultPreset(id) // Fallback to hardcoded if embed is broken
	}
	if err := cfg.Validate(); err != nil {
		return Preset{}, err
	}
	return cfg, nil
}

// Parse decodes a preset from YAML without validating it.
func Parse(data []byte) (Preset, error) {
	var cfg Preset
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("config: failed to parse preset: %w", err)
	}
	return cfg, nil
}

// Validate checks that the preset describes a playable session.
func (p Preset) Validate() error {
	if p.Rules != RulesClassic && p.Rules != RulesMinimal {
		return fmt.Errorf("config: preset %q: unknown rules %q", p.ID, p.Rules)
	}
	if p.Grid.Height <= 0 || p.Grid.Width <= 0 {
		return fmt.Errorf("config: preset %q: grid must be positive, got %dx%d",
			p.ID, p.Grid.Height, p.Grid.Width)
	}
	if p.Timing.FrameMS <= 0 {
		return fmt.Errorf("config: preset %q: frame_ms must be positive, got %d", p.ID, p.Timing.FrameMS)
	}
	if p.Timing.GameOverDelayMS < 0 {
		return fmt.Errorf("config: preset %q: game_over_delay_ms must not be negative", p.ID)
	}

	grid := p.RuntimeConfig(0).Grid()
	if !grid.Contains(p.Start.Point()) {
		return fmt.Errorf("config: preset %q: start %v outside grid", p.ID, p.Start.Point())
	}
	if p.Food != nil && !grid.Contains(p.Food.Point()) {
		return fmt.Errorf("config: preset %q: food %v outside grid", p.ID, p.Food.Point())
	}
	// A fixed food is only meaningful when the game ends on reaching it.
	if p.Food == nil && p.Rules == RulesMinimal {
		return fmt.Errorf("config: preset %q: minimal rules need a fixed food cell", p.ID)
	}
	// The opening respawn needs at least one cell the snake does not cover.
	if p.Rules == RulesClassic && grid.Cells() < 2 {
		return fmt.Errorf("config: preset %q: classic grid needs at least two cells", p.ID)
	}

	for name, g := range map[string]string{
		"snake": p.Glyphs.Snake,
		"food":  p.Glyphs.Food,
		"empty": p.Glyphs.Empty,
	} {
		if utf8.RuneCountInString(g) != 1 {
			return fmt.Errorf("config: preset %q: %s glyph must be one character, got %q", p.ID, name, g)
		}
	}
	return nil
}

// Rune returns the single rune of a validated glyph.
func Rune(glyph string) rune {
	r, _ := utf8.DecodeRuneInString(glyph)
	return r
}

func defaultPreset(id string) Preset {
	if id == "minimal" {
		return DefaultMinimalPreset()
	}
	return DefaultClassicPreset()
}
