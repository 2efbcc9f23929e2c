package gui

import (
	"testing"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-tetris/internal/config"
	"github.com/vovakirdan/tui-tetris/internal/core"
	"github.com/vovakirdan/tui-tetris/internal/games/tetris"
	"github.com/vovakirdan/tui-tetris/internal/platform/gui/assets"
)

func TestParseKey(t *testing.T) {
	tests := []struct {
		name string
		want keySpec
	}{
		{"left", keySpec{key: ebiten.KeyArrowLeft}},
		{"down", keySpec{key: ebiten.KeyArrowDown}},
		{"space", keySpec{key: ebiten.KeySpace}},
		{"Esc", keySpec{key: ebiten.KeyEscape}},
		{"z", keySpec{key: ebiten.KeyZ}},
		{"q", keySpec{key: ebiten.KeyQ}},
		{"ctrl+c", keySpec{key: ebiten.KeyC, ctrl: true}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseKey(tt.name)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseKeyUnknown(t *testing.T) {
	_, err := parseKey("no-such-key")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no-such-key")
}

func TestParseBindingsDefaults(t *testing.T) {
	bindings, skipped := parseBindings(config.DefaultTetrisConfig().Keys)
	assert.Empty(t, skipped)
	require.Len(t, bindings, len(config.DefaultTetrisConfig().Keys.Bindings()))

	for _, b := range bindings {
		assert.NotEmpty(t, b.keys, "%v has no keys", b.action)
	}
}

func TestParseBindingsSkipsUnknown(t *testing.T) {
	keys := config.DefaultTetrisConfig().Keys
	keys.Pause = []string{"p", "no-such-key"}

	bindings, skipped := parseBindings(keys)
	assert.Equal(t, []string{"no-such-key"}, skipped)
	for _, b := range bindings {
		if b.action == core.ActionPause {
			assert.Equal(t, []keySpec{{key: ebiten.KeyP}}, b.keys)
		}
	}
}

func pressed(keys ...ebiten.Key) func(ebiten.Key) bool {
	return func(k ebiten.Key) bool {
		for _, p := range keys {
			if p == k {
				return true
			}
		}
		return false
	}
}

func TestFrameFor(t *testing.T) {
	bindings, _ := parseBindings(config.DefaultTetrisConfig().Keys)

	frame := frameFor(bindings, pressed(ebiten.KeyArrowLeft, ebiten.KeyArrowUp), false)
	assert.True(t, frame.Has(core.ActionMoveLeft))
	assert.True(t, frame.Has(core.ActionRotateCW))
	assert.False(t, frame.Has(core.ActionMoveRight))

	assert.True(t, frameFor(bindings, pressed(), false).Empty())
}

func TestFrameForCtrlModifier(t *testing.T) {
	bindings, _ := parseBindings(config.DefaultTetrisConfig().Keys)

	plain := frameFor(bindings, pressed(ebiten.KeyC), false)
	assert.True(t, plain.Has(core.ActionResume))
	assert.False(t, plain.Has(core.ActionQuit))

	withCtrl := frameFor(bindings, pressed(ebiten.KeyC), true)
	assert.True(t, withCtrl.Has(core.ActionQuit))
}

func TestLayoutFollowsCellSize(t *testing.T) {
	l := newLayout(24)
	assert.Equal(t, 24, l.wellX)
	assert.Equal(t, 24+tetris.Cols*24+24, l.panelX)
	assert.Equal(t, l.panelX+panelCells*24+24, l.width)
	assert.Equal(t, 24+tetris.Rows*24+24, l.height)

	small := newLayout(10)
	assert.Less(t, small.width, l.width)
}

func TestGameLayoutIsFixed(t *testing.T) {
	cfg := core.DefaultConfig()
	cfg.Seed = 1
	cfg.DropInterval = time.Hour
	session := tetris.NewSession(cfg)
	defer session.Close()

	g := NewGame(session, tetris.DefaultTheme(), assets.Tiles{}, config.DefaultTetrisConfig().Keys, 20, nil, nil)
	w1, h1 := g.Layout(800, 600)
	w2, h2 := g.Layout(1920, 1080)
	assert.Equal(t, w1, w2)
	assert.Equal(t, h1, h2)
	assert.Equal(t, newLayout(20).width, w1)
}

func TestPaletteCoversThemeColors(t *testing.T) {
	theme := tetris.DefaultTheme()
	for _, shape := range tetris.Shapes {
		_, ok := palette[theme.Color(shape)]
		assert.True(t, ok, "%v", shape)
	}
	assert.Equal(t, palette[core.ColorDefault], rgba(core.Color(200)))
}
