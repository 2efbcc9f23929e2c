package gui

import (
	"fmt"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/vovakirdan/tui-tetris/internal/config"
	"github.com/vovakirdan/tui-tetris/internal/core"
)

// keyNames covers the terminal-style names that ebiten.Key does not spell the same way.
var keyNames = map[string]ebiten.Key{
	"left":      ebiten.KeyArrowLeft,
	"right":     ebiten.KeyArrowRight,
	"up":        ebiten.KeyArrowUp,
	"down":      ebiten.KeyArrowDown,
	"space":     ebiten.KeySpace,
	" ":         ebiten.KeySpace,
	"enter":     ebiten.KeyEnter,
	"esc":       ebiten.KeyEscape,
	"escape":    ebiten.KeyEscape,
	"tab":       ebiten.KeyTab,
	"backspace": ebiten.KeyBackspace,
}

// keySpec is one physical key, optionally held with Ctrl.
type keySpec struct {
	key  ebiten.Key
	ctrl bool
}

// binding maps physical keys to an action.
type binding struct {
	action core.Action
	keys   []keySpec
}

// parseKey converts a config key name ("left", "z", "ctrl+c") into a keySpec.
func parseKey(name string) (keySpec, error) {
	var spec keySpec
	n := strings.ToLower(strings.TrimSpace(name))
	if rest, ok := strings.CutPrefix(n, "ctrl+"); ok {
		spec.ctrl = true
		n = rest
	}
	if k, ok := keyNames[n]; ok {
		spec.key = k
		return spec, nil
	}
	if err := spec.key.UnmarshalText([]byte(n)); err != nil {
		return spec, fmt.Errorf("gui: unknown key %q", name)
	}
	return spec, nil
}

// parseBindings resolves every configured key name. Names that have no
// desktop equivalent are returned in skipped rather than failing the load.
func parseBindings(keys config.KeyConfig) (bindings []binding, skipped []string) {
	for _, b := range keys.Bindings() {
		out := binding{action: b.Action}
		for _, name := range b.Keys {
			spec, err := parseKey(name)
			if err != nil {
				skipped = append(skipped, name)
				continue
			}
			out.keys = append(out.keys, spec)
		}
		bindings = append(bindings, out)
	}
	return bindings, skipped
}

// frameFor builds the input frame for one update from the keys pressed since the last one.
func frameFor(bindings []binding, justPressed func(ebiten.Key) bool, ctrlHeld bool) core.InputFrame {
	frame := core.NewInputFrame()
	for _, b := range bindings {
		for _, k := range b.keys {
			if k.ctrl && !ctrlHeld {
				continue
			}
			if justPressed(k.key) {
				frame.Set(b.action)
				break
			}
		}
	}
	return frame
}
