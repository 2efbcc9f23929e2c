package storage

import (
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-tetris/internal/core"
)

// Recorder saves the result of each finished game exactly once.
// Front ends feed it every state they observe.
type Recorder struct {
	store  *Store
	gameID string
	logger *log.Logger
	saved  bool
}

// NewRecorder creates a recorder. A nil store records nothing.
func NewRecorder(store *Store, gameID string, logger *log.Logger) *Recorder {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Recorder{store: store, gameID: gameID, logger: logger}
}

// Observe saves the score on the first game-over state after a running one.
// Zero scores are not recorded. It reports whether a score was written.
func (r *Recorder) Observe(state core.GameState) bool {
	if !state.GameOver() {
		r.saved = false
		return false
	}
	if r.saved {
		return false
	}
	r.saved = true

	if r.store == nil || state.Score == 0 {
		return false
	}
	if _, err := r.store.SaveScore(r.gameID, state.Score, state.Lines); err != nil {
		r.logger.Warn("failed to save score", "err", err)
		return false
	}
	r.logger.Info("score saved", "score", state.Score, "lines", state.Lines)
	return true
}
