package config

import (
	_ "embed"
)

//go:embed defaults/tetris.yaml
var defaultTetrisYAML []byte

// DefaultTetrisConfig returns the default configuration.
func DefaultTetrisConfig() TetrisConfig {
	return TetrisConfig{
		Timing: TimingConfig{
			DropIntervalMS: 700,
		},
		Theme: ThemeConfig{
			Colors: map[string]string{
				"I": "cyan",
				"J": "blue",
				"L": "orange",
				"O": "yellow",
				"S": "green",
				"T": "magenta",
				"Z": "red",
			},
			Block: "██",
			Empty: " .",
			Frame: "gray",
		},
		GUI: GUIConfig{
			Title:    "Tetris",
			CellSize: 24,
			Scale:    1,
		},
		Keys: KeyConfig{
			Left:      []string{"left", "h"},
			Right:     []string{"right", "l"},
			SoftDrop:  []string{"down", "j"},
			HardDrop:  []string{"space"},
			RotateCW:  []string{"up", "k"},
			RotateCCW: []string{"z"},
			Pause:     []string{"p"},
			Resume:    []string{"c"},
			Restart:   []string{"s"},
			Quit:      []string{"q", "ctrl+c"},
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultTetrisYAML
}
