// Package tui provides the Bubble Tea front end for tetris.
// It maps keys to game commands, redraws on every session change and
// hosts the start menu and scoreboard screens.
package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-tetris/internal/games/tetris"
)

// ChangeMsg is sent when the session state changed, including drop timer ticks.
type ChangeMsg struct{}

// DoneMsg is sent once the session has quit.
type DoneMsg struct{}

// waitForChange returns a command that blocks until the session publishes a
// change or quits. Drop timer ticks arrive here too.
func waitForChange(s *tetris.Session) tea.Cmd {
	return func() tea.Msg {
		select {
		case <-s.Changes():
			return ChangeMsg{}
		case <-s.Done():
			return DoneMsg{}
		}
	}
}
