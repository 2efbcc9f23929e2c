package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-tetris/internal/config"
	"github.com/vovakirdan/tui-tetris/internal/core"
)

// GameKeyMap translates Bubble Tea key messages to game actions.
// Bindings come from the key section of the configuration.
type GameKeyMap struct {
	Left      key.Binding
	Right     key.Binding
	SoftDrop  key.Binding
	HardDrop  key.Binding
	RotateCW  key.Binding
	RotateCCW key.Binding
	Pause     key.Binding
	Resume    key.Binding
	Restart   key.Binding
	Quit      key.Binding
	Snapshot  key.Binding
	Menu      key.Binding // leave the game for the start menu
}

var actionHelp = map[core.Action]string{
	core.ActionMoveLeft:  "left",
	core.ActionMoveRight: "right",
	core.ActionSoftDrop:  "drop",
	core.ActionHardDrop:  "hard drop",
	core.ActionRotateCW:  "rotate",
	core.ActionRotateCCW: "rotate back",
	core.ActionPause:     "pause",
	core.ActionResume:    "continue",
	core.ActionRestart:   "restart",
	core.ActionQuit:      "quit",
}

// NewGameKeyMap builds key bindings from configuration.
func NewGameKeyMap(cfg config.KeyConfig) GameKeyMap {
	var km GameKeyMap
	for _, b := range cfg.Bindings() {
		binding := newBinding(b.Keys, actionHelp[b.Action])
		if slot := km.slot(b.Action); slot != nil {
			*slot = binding
		}
	}
	km.Snapshot = key.NewBinding(
		key.WithKeys("ctrl+s"),
		key.WithHelp("ctrl+s", "screenshot"),
	)
	km.Menu = key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("esc", "menu"),
	)
	return km
}

// DefaultGameKeyMap returns the default bindings.
func DefaultGameKeyMap() GameKeyMap {
	return NewGameKeyMap(config.DefaultTetrisConfig().Keys)
}

func newBinding(names []string, desc string) key.Binding {
	keys := make([]string, len(names))
	for i, n := range names {
		keys[i] = terminalKey(n)
	}
	return key.NewBinding(
		key.WithKeys(keys...),
		key.WithHelp(strings.Join(names, "/"), desc),
	)
}

// terminalKey converts a configured key name to Bubble Tea's key string.
func terminalKey(name string) string {
	switch strings.ToLower(name) {
	case "space":
		return " "
	case "escape":
		return "esc"
	}
	return name
}

func (k *GameKeyMap) slot(a core.Action) *key.Binding {
	switch a {
	case core.ActionMoveLeft:
		return &k.Left
	case core.ActionMoveRight:
		return &k.Right
	case core.ActionSoftDrop:
		return &k.SoftDrop
	case core.ActionHardDrop:
		return &k.HardDrop
	case core.ActionRotateCW:
		return &k.RotateCW
	case core.ActionRotateCCW:
		return &k.RotateCCW
	case core.ActionPause:
		return &k.Pause
	case core.ActionResume:
		return &k.Resume
	case core.ActionRestart:
		return &k.Restart
	case core.ActionQuit:
		return &k.Quit
	}
	return nil
}

// MapKey translates a key message to a game action, or ActionNone.
func (k GameKeyMap) MapKey(msg tea.KeyMsg) core.Action {
	// Quit first so it can never be shadowed by a game binding.
	if key.Matches(msg, k.Quit) {
		return core.ActionQuit
	}
	for _, a := range []core.Action{
		core.ActionMoveLeft, core.ActionMoveRight, core.ActionSoftDrop, core.ActionHardDrop,
		core.ActionRotateCW, core.ActionRotateCCW, core.ActionPause, core.ActionResume,
		core.ActionRestart,
	} {
		if key.Matches(msg, *k.slot(a)) {
			return a
		}
	}
	return core.ActionNone
}

// ShortHelp returns key bindings for the short help view.
func (k GameKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Left, k.Right, k.RotateCW, k.HardDrop, k.Pause, k.Resume, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k GameKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Left, k.Right, k.SoftDrop, k.HardDrop},
		{k.RotateCW, k.RotateCCW},
		{k.Pause, k.Resume, k.Restart, k.Quit, k.Menu, k.Snapshot},
	}
}

// MenuAction represents a menu-specific action derived from input.
type MenuAction int

const (
	MenuActionNone MenuAction = iota
	MenuActionUp
	MenuActionDown
	MenuActionSelect
	MenuActionBack
	MenuActionQuit
)

// MapKeyToMenuAction translates a key to a menu action.
func MapKeyToMenuAction(msg tea.KeyMsg) MenuAction {
	switch msg.String() {
	case "ctrl+c", "q":
		return MenuActionQuit
	case "w", "up", "k": // vim-style k for up
		return MenuActionUp
	case "s", "down", "j": // vim-style j for down
		return MenuActionDown
	case "enter", " ":
		return MenuActionSelect
	case "b", "esc":
		return MenuActionBack
	}

	return MenuActionNone
}
