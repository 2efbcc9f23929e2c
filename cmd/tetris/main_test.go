package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-tetris/internal/core"
	"github.com/vovakirdan/tui-tetris/internal/games/tetris"
	"github.com/vovakirdan/tui-tetris/internal/platform/tui"
	"github.com/vovakirdan/tui-tetris/internal/storage"
)

// withFlags isolates config lookup and restores the global flags.
func withFlags(t *testing.T, db string) {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("HOME", dir)
	prevWD, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(prevWD) })

	saved := []string{flagDBPath, flagConfig, flagLogFile, flagLogLevel}
	t.Cleanup(func() {
		flagDBPath, flagConfig, flagLogFile, flagLogLevel = saved[0], saved[1], saved[2], saved[3]
	})
	flagDBPath, flagConfig, flagLogFile, flagLogLevel = db, "", "", "info"
}

func TestSetupDefaults(t *testing.T) {
	withFlags(t, storage.MemoryPath)

	a, err := setup()
	require.NoError(t, err)
	defer a.Close()

	require.NotNil(t, a.store)
	assert.True(t, a.store.InMemory())
	assert.Equal(t, 700, a.cfg.Timing.DropIntervalMS)
}

func TestSetupRejectsBadLogLevel(t *testing.T) {
	withFlags(t, storage.MemoryPath)
	flagLogLevel = "loud"

	_, err := setup()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "loud")
}

func TestSetupMissingConfig(t *testing.T) {
	withFlags(t, storage.MemoryPath)
	flagConfig = filepath.Join(t.TempDir(), "missing.yaml")

	_, err := setup()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "config:")
}

func TestSetupWritesLogFile(t *testing.T) {
	withFlags(t, storage.MemoryPath)
	flagLogFile = filepath.Join(t.TempDir(), "tetris.log")

	a, err := setup()
	require.NoError(t, err)
	a.logger.Info("hello")
	a.Close()

	assert.FileExists(t, flagLogFile)
}

func TestScoresCommand(t *testing.T) {
	db := filepath.Join(t.TempDir(), "scores.db")
	withFlags(t, db)

	store, err := storage.Open(db)
	require.NoError(t, err)
	_, err = store.SaveScore(tetris.ID, 30, 3)
	require.NoError(t, err)
	_, err = store.SaveScore(tetris.ID, 201, 5)
	require.NoError(t, err)
	require.NoError(t, store.Close())

	var buf bytes.Buffer
	scoresCmd.SetOut(&buf)
	t.Cleanup(func() { scoresCmd.SetOut(nil) })

	require.NoError(t, runScores(scoresCmd, nil))

	out := buf.String()
	assert.Contains(t, out, "High Scores - Tetris")
	assert.Contains(t, out, "201")
	assert.Contains(t, out, "Games: 2  Best: 201  Most lines: 5")
	assert.Less(t, bytes.Index(buf.Bytes(), []byte("201")), bytes.Index(buf.Bytes(), []byte("  30 ")))
}

func TestScoresCommandEmptyMemory(t *testing.T) {
	withFlags(t, storage.MemoryPath)

	var buf bytes.Buffer
	scoresCmd.SetOut(&buf)
	t.Cleanup(func() { scoresCmd.SetOut(nil) })

	require.NoError(t, runScores(scoresCmd, nil))
	assert.Contains(t, buf.String(), "No scores recorded yet.")
	assert.Contains(t, buf.String(), "--db")
}

// scriptedScreens plays back menu choices and game results in order.
type scriptedScreens struct {
	choices []tui.MenuChoice
	games   []tui.Result
	menus   int
	played  int
}

func (s *scriptedScreens) screens() screens {
	return screens{
		menu: func(*app, int, int) (tui.MenuChoice, error) {
			s.menus++
			if len(s.choices) == 0 {
				return tui.ChoiceQuit, nil
			}
			c := s.choices[0]
			s.choices = s.choices[1:]
			return c, nil
		},
		game: func(*app, int, int) (tui.Result, error) {
			s.played++
			res := s.games[0]
			s.games = s.games[1:]
			return res, nil
		},
		scoreboard: func(*app, int, int) (bool, error) {
			return true, nil
		},
	}
}

func newPlayApp(t *testing.T) *app {
	t.Helper()
	withFlags(t, storage.MemoryPath)
	a, err := setup()
	require.NoError(t, err)
	t.Cleanup(a.Close)
	return a
}

func TestPlayLoopQuitInGameExits(t *testing.T) {
	a := newPlayApp(t)
	s := &scriptedScreens{
		choices: []tui.MenuChoice{tui.ChoicePlay, tui.ChoicePlay},
		games:   []tui.Result{{Quit: true}, {}},
	}

	require.NoError(t, playLoop(a, s.screens()))
	assert.Equal(t, 1, s.menus, "quit inside a game should not reopen the menu")
	assert.Equal(t, 1, s.played)
}

func TestPlayLoopMenuKeyReturnsToMenu(t *testing.T) {
	a := newPlayApp(t)
	s := &scriptedScreens{
		choices: []tui.MenuChoice{tui.ChoicePlay, tui.ChoiceScores, tui.ChoicePlay},
		games:   []tui.Result{{State: core.GameState{Score: 12}}, {Quit: true}},
	}

	require.NoError(t, playLoop(a, s.screens()))
	assert.Equal(t, 3, s.menus)
	assert.Equal(t, 2, s.played)
}

func TestPlayLoopMenuError(t *testing.T) {
	a := newPlayApp(t)
	s := screens{
		menu: func(*app, int, int) (tui.MenuChoice, error) {
			return tui.ChoiceNone, errors.New("no tty")
		},
	}

	err := playLoop(a, s)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "menu: no tty")
}
