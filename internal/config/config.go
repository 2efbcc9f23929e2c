// Package config provides YAML-based configuration loading for the tetris
// front ends: drop timing, theme colors, window size and key bindings.
// Game rules are fixed and deliberately absent here.
package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/vovakirdan/tui-tetris/internal/core"
	"github.com/vovakirdan/tui-tetris/internal/games/tetris"
)

// TetrisConfig contains all configuration for the game and its front ends.
type TetrisConfig struct {
	Timing TimingConfig `yaml:"timing"`
	Theme  ThemeConfig  `yaml:"theme"`
	GUI    GUIConfig    `yaml:"gui"`
	Keys   KeyConfig    `yaml:"keys"`
}

// TimingConfig defines the drop timer.
type TimingConfig struct {
	DropIntervalMS int `yaml:"drop_interval_ms"`
}

// DropInterval returns the drop timer period.
func (t TimingConfig) DropInterval() time.Duration {
	return time.Duration(t.DropIntervalMS) * time.Millisecond
}

// ThemeConfig defines how pieces look in the terminal.
type ThemeConfig struct {
	Colors map[string]string `yaml:"colors"` // shape letter -> color name
	Block  string            `yaml:"block"`
	Empty  string            `yaml:"empty"`
	Frame  string            `yaml:"frame"`
}

// GUIConfig defines the desktop window.
type GUIConfig struct {
	Title    string  `yaml:"title"`
	CellSize int     `yaml:"cell_size"` // pixels per board cell
	Scale    float64 `yaml:"scale"`     // window scale factor
}

// KeyConfig maps each command to the key names that trigger it.
// Names follow the terminal convention ("left", "space", "z").
type KeyConfig struct {
	Left      []string `yaml:"left"`
	Right     []string `yaml:"right"`
	SoftDrop  []string `yaml:"soft_drop"`
	HardDrop  []string `yaml:"hard_drop"`
	RotateCW  []string `yaml:"rotate_cw"`
	RotateCCW []string `yaml:"rotate_ccw"`
	Pause     []string `yaml:"pause"`
	Resume    []string `yaml:"resume"`
	Restart   []string `yaml:"restart"`
	Quit      []string `yaml:"quit"`
}

// Bindings returns the key names per action, in a stable order.
func (k KeyConfig) Bindings() []Binding {
	return []Binding{
		{core.ActionMoveLeft, k.Left},
		{core.ActionMoveRight, k.Right},
		{core.ActionSoftDrop, k.SoftDrop},
		{core.ActionHardDrop, k.HardDrop},
		{core.ActionRotateCW, k.RotateCW},
		{core.ActionRotateCCW, k.RotateCCW},
		{core.ActionPause, k.Pause},
		{core.ActionResume, k.Resume},
		{core.ActionRestart, k.Restart},
		{core.ActionQuit, k.Quit},
	}
}

// Binding is the set of key names bound to one action.
type Binding struct {
	Action core.Action
	Keys   []string
}

// Validate checks the configuration for values the game cannot run with.
func (c TetrisConfig) Validate() error {
	var errs []error

	if c.Timing.DropIntervalMS <= 0 {
		errs = append(errs, fmt.Errorf("timing.drop_interval_ms must be positive, got %d", c.Timing.DropIntervalMS))
	}
	if c.GUI.CellSize <= 0 {
		errs = append(errs, fmt.Errorf("gui.cell_size must be positive, got %d", c.GUI.CellSize))
	}
	if c.GUI.Scale <= 0 {
		errs = append(errs, fmt.Errorf("gui.scale must be positive, got %v", c.GUI.Scale))
	}
	if _, err := c.Theme.Build(); err != nil {
		errs = append(errs, err)
	}
	for _, b := range c.Keys.Bindings() {
		if len(b.Keys) == 0 {
			errs = append(errs, fmt.Errorf("keys: no key bound to %v", b.Action))
		}
	}

	return errors.Join(errs...)
}

// Build converts the theme section into a render theme. Shapes missing
// from the colors map keep their default color.
func (t ThemeConfig) Build() (tetris.Theme, error) {
	theme := tetris.DefaultTheme()

	for name, colorName := range t.Colors {
		shape, ok := shapeByLetter(name)
		if !ok {
			return theme, fmt.Errorf("theme.colors: unknown shape %q", name)
		}
		c, ok := core.ParseColor(colorName)
		if !ok {
			return theme, fmt.Errorf("theme.colors.%s: unknown color %q", name, colorName)
		}
		theme.Colors[shape] = c
	}

	if t.Frame != "" {
		c, ok := core.ParseColor(t.Frame)
		if !ok {
			return theme, fmt.Errorf("theme.frame: unknown color %q", t.Frame)
		}
		theme.Frame = c
	}
	if t.Block != "" {
		theme.Block = t.Block
	}
	if t.Empty != "" {
		theme.Empty = t.Empty
	}

	return theme, nil
}

func shapeByLetter(name string) (tetris.Shape, bool) {
	for _, s := range tetris.Shapes {
		if s.String() == name {
			return s, true
		}
	}
	return tetris.ShapeNone, false
}

// Runtime returns the game runtime configuration for a seed.
func (c TetrisConfig) Runtime(seed int64) core.RuntimeConfig {
	rc := core.DefaultConfig()
	rc.DropInterval = c.Timing.DropInterval()
	rc.Seed = seed
	return rc
}
