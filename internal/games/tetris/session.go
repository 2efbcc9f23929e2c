package tetris

import (
	"context"
	"io"
	"sync"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-tetris/internal/core"
)

// Session owns a Game for concurrent use. Commands from input handlers and
// the periodic drop timer are serialized by one mutex, so a rotation and a
// tick can never interleave.
type Session struct {
	mu       sync.Mutex
	game     *Game
	interval time.Duration
	logger   *log.Logger

	// cancel stops the running drop timer; nil while no timer runs.
	cancel context.CancelFunc
	// gen identifies the current timer. Ticks from an older timer are dropped.
	gen uint64
	wg  sync.WaitGroup

	changes chan struct{}
	done    chan struct{}
	closed  bool
}

// SessionOption configures a Session.
type SessionOption func(*Session)

// WithLogger sets the session logger.
func WithLogger(l *log.Logger) SessionOption {
	return func(s *Session) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithTheme sets the theme used by Render.
func WithTheme(t Theme) SessionOption {
	return func(s *Session) {
		s.game.SetTheme(t)
	}
}

// NewSession starts a new game and its drop timer.
func NewSession(cfg core.RuntimeConfig, opts ...SessionOption) *Session {
	if cfg.DropInterval <= 0 {
		cfg.DropInterval = core.DefaultDropInterval
	}

	s := &Session{
		game:     New(),
		interval: cfg.DropInterval,
		logger:   log.New(io.Discard),
		changes:  make(chan struct{}, 1),
		done:     make(chan struct{}),
	}
	for _, opt := range opts {
		opt(s)
	}

	s.game.Reset(cfg)

	s.mu.Lock()
	s.startTimerLocked()
	s.mu.Unlock()

	s.logger.Info("game started", "seed", cfg.Seed, "interval", s.interval)
	return s
}

// Do applies a single command. Quit ends the session; every other command
// is forwarded to the game, which ignores it when the mode does not allow it.
func (s *Session) Do(a core.Action) core.StepResult {
	s.mu.Lock()
	defer s.mu.Unlock()

	if a == core.ActionQuit {
		s.shutdownLocked()
		return s.resultLocked()
	}
	if s.closed {
		return s.resultLocked()
	}

	return s.applyLocked(func() core.StepResult { return s.game.Apply(a) })
}

// Step applies every action in the frame, in the game's fixed order.
func (s *Session) Step(in core.InputFrame) core.StepResult {
	s.mu.Lock()
	defer s.mu.Unlock()

	if in.Has(core.ActionQuit) {
		s.shutdownLocked()
		return s.resultLocked()
	}
	if s.closed || in.Empty() {
		return s.resultLocked()
	}

	return s.applyLocked(func() core.StepResult { return s.game.Step(in) })
}

// applyLocked runs fn, then starts or stops the timer to match the new mode.
func (s *Session) applyLocked(fn func() core.StepResult) core.StepResult {
	before := s.game.Mode()
	res := fn()
	after := res.State.Mode

	if res.Landed > 0 {
		s.logger.Debug("piece landed", "cleared", res.Cleared, "score", res.State.Score, "lines", res.State.Lines)
	}

	if before != after {
		s.logger.Info("mode changed", "from", before, "to", after, "score", res.State.Score)
	}

	switch {
	case after == core.ModeRunning && s.cancel == nil:
		s.startTimerLocked()
	case after != core.ModeRunning && s.cancel != nil:
		s.stopTimerLocked()
	}

	s.notify()
	return res
}

func (s *Session) resultLocked() core.StepResult {
	return core.StepResult{State: s.game.State()}
}

func (s *Session) startTimerLocked() {
	ctx, cancel := context.WithCancel(context.Background())
	s.cancel = cancel
	s.gen++

	s.wg.Add(1)
	go s.runTimer(ctx, s.gen)
}

func (s *Session) stopTimerLocked() {
	if s.cancel == nil {
		return
	}
	s.cancel()
	s.cancel = nil
	s.gen++
}

// runTimer soft-drops the active piece every interval until ctx is cancelled.
func (s *Session) runTimer(ctx context.Context, gen uint64) {
	defer s.wg.Done()

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if !s.tick(gen) {
				return
			}
		}
	}
}

// tick reports whether the timer that fired is still current.
func (s *Session) tick(gen uint64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	// A pause may have won the lock between the tick and this point.
	if gen != s.gen || s.closed {
		return false
	}

	s.applyLocked(func() core.StepResult { return s.game.Apply(core.ActionSoftDrop) })
	return true
}

func (s *Session) notify() {
	select {
	case s.changes <- struct{}{}:
	default:
	}
}

func (s *Session) shutdownLocked() {
	if s.closed {
		return
	}
	s.closed = true
	s.stopTimerLocked()
	close(s.done)
	s.logger.Info("game closed", "score", s.game.score, "lines", s.game.lines)
}

// Changes delivers a coalesced notification after every state change.
func (s *Session) Changes() <-chan struct{} {
	return s.changes
}

// Done is closed once the session has quit or been closed.
func (s *Session) Done() <-chan struct{} {
	return s.done
}

// Close stops the drop timer and waits for it to exit. It is safe to call
// more than once and after Quit.
func (s *Session) Close() {
	s.mu.Lock()
	s.shutdownLocked()
	s.mu.Unlock()

	s.wg.Wait()
}

// Snapshot returns a consistent copy of the game state.
func (s *Session) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.game.Snapshot()
}

// State returns the score, lines and mode.
func (s *Session) State() core.GameState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.game.State()
}

// Render draws the current game into dst.
func (s *Session) Render(dst *core.Screen) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.game.Render(dst)
}

// Interval returns the drop timer period.
func (s *Session) Interval() time.Duration {
	return s.interval
}

// TimerRunning reports whether the drop timer is active.
func (s *Session) TimerRunning() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cancel != nil
}
