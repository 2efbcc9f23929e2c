package storage

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-tetris/internal/core"
)

func TestRecorderSavesOncePerGame(t *testing.T) {
	store := openTemp(t)
	r := NewRecorder(store, "tetris", nil)

	over := core.GameState{Score: 30, Lines: 3, Mode: core.ModeGameOver}
	require.True(t, r.Observe(over), "first game over was not recorded")
	assert.False(t, r.Observe(over), "same game over recorded twice")

	r.Observe(core.GameState{Mode: core.ModeRunning})
	assert.True(t, r.Observe(core.GameState{Score: 1, Lines: 1, Mode: core.ModeGameOver}), "second game was not recorded")

	scores, err := store.AllScores("tetris")
	require.NoError(t, err)
	assert.Len(t, scores, 2)
}

func TestRecorderSkipsZeroAndNilStore(t *testing.T) {
	store := openTemp(t)
	r := NewRecorder(store, "tetris", nil)
	assert.False(t, r.Observe(core.GameState{Mode: core.ModeGameOver}), "zero score recorded")

	nilStore := NewRecorder(nil, "tetris", nil)
	assert.False(t, nilStore.Observe(core.GameState{Score: 10, Mode: core.ModeGameOver}), "nil store reported a save")
}
