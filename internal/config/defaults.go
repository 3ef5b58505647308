package config

import (
	_ "embed"
)

//go:embed defaults/classic.yaml
var defaultClassicYAML []byte

//go:embed defaults/minimal.yaml
var defaultMinimalYAML []byte

// DefaultClassicPreset returns the hardcoded classic preset.
func DefaultClassicPreset() Preset {
	return Preset{
		ID:    "classic",
		Title: "Snake",
		Rules: RulesClassic,
		Grid: GridConfig{
			Height: 12,
			Width:  40,
		},
		Timing: TimingConfig{
			FrameMS:         100,
			GameOverDelayMS: 3000,
		},
		Start:  PointConfig{X: 0, Y: 0},
		Glyphs: defaultGlyphs(),
	}
}

// DefaultMinimalPreset returns the hardcoded minimal preset.
func DefaultMinimalPreset() Preset {
	return Preset{
		ID:    "minimal",
		Title: "Snake (Minimal)",
		Rules: RulesMinimal,
		Grid: GridConfig{
			Height: 25,
			Width:  80,
		},
		Timing: TimingConfig{
			FrameMS:         150,
			GameOverDelayMS: 1000,
		},
		Start:  PointConfig{X: 1, Y: 1},
		Food:   &PointConfig{X: 10, Y: 10},
		Glyphs: defaultGlyphs(),
	}
}

func defaultGlyphs() GlyphConfig {
	return GlyphConfig{Snake: "0", Food: "b", Empty: "-"}
}

// GetDefaultYAML returns the embedded YAML for a variant.
func GetDefaultYAML(id string) []byte {
	switch id {
	case "classic":
		return defaultClassicYAML
	case "minimal":
		return defaultMinimalYAML
	default:
		return nil
	}
}
