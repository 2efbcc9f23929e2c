// Package tetris implements the classic falling-block game: pieces with fixed
// rotation tables, the settled-cell board, line clearing, scoring and the
// running/paused/game-over state machine. Game is the pure, single-threaded
// controller; Session wraps it for concurrent use with the drop timer.
package tetris

import (
	"math/rand"

	"github.com/kamstrup/intmap"

	"github.com/vovakirdan/tui-tetris/internal/core"
)

// ID is the identifier used for score storage.
const ID = "tetris"

// Game is the game controller. It is not safe for concurrent use.
type Game struct {
	rng *rand.Rand

	board  Board
	active *Tetromino
	next   *Tetromino

	score    int
	lines    int
	landings int
	mode     core.Mode

	// spawned counts how many pieces of each shape became active
	spawned *intmap.Map[Shape, int]

	theme Theme
}

// New creates a game. Reset must be called before use.
func New() *Game {
	return &Game{
		spawned: intmap.New[Shape, int](len(Shapes)),
		theme:   DefaultTheme(),
	}
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return ID
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Tetris"
}

// SetTheme changes the colors and glyphs used by Render.
func (g *Game) SetTheme(t Theme) {
	g.theme = t
}

// Reset seeds the piece generator and starts a new game.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.rng = rand.New(rand.NewSource(cfg.Seed))
	g.start()
}

// start clears the board and counters and spawns the first two pieces.
func (g *Game) start() {
	g.board.Clear()
	g.score = 0
	g.lines = 0
	g.landings = 0
	g.mode = core.ModeRunning
	g.spawned.Clear()

	g.next = SpawnRandom(g.rng)
	g.promote()
}

// promote makes the next piece active and generates a fresh next piece.
func (g *Game) promote() {
	g.active = g.next
	g.next = SpawnRandom(g.rng)

	n, _ := g.spawned.Get(g.active.Shape())
	g.spawned.Put(g.active.Shape(), n+1)
}

// Step applies every action in the frame in a fixed order.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	landings, lines := g.landings, g.lines

	for _, a := range stepOrder {
		if in.Has(a) {
			g.apply(a)
		}
	}

	return g.result(landings, lines)
}

var stepOrder = []core.Action{
	core.ActionRestart,
	core.ActionResume,
	core.ActionPause,
	core.ActionRotateCW,
	core.ActionRotateCCW,
	core.ActionMoveLeft,
	core.ActionMoveRight,
	core.ActionSoftDrop,
	core.ActionHardDrop,
}

// Apply executes a single action.
func (g *Game) Apply(a core.Action) core.StepResult {
	landings, lines := g.landings, g.lines
	g.apply(a)
	return g.result(landings, lines)
}

func (g *Game) result(landings, lines int) core.StepResult {
	return core.StepResult{
		State:   g.State(),
		Landed:  g.landings - landings,
		Cleared: g.lines - lines,
	}
}

// apply reports whether the action changed anything.
func (g *Game) apply(a core.Action) bool {
	switch a {
	case core.ActionMoveLeft:
		return g.MoveLeft()
	case core.ActionMoveRight:
		return g.MoveRight()
	case core.ActionSoftDrop:
		return g.SoftDrop()
	case core.ActionHardDrop:
		return g.HardDrop()
	case core.ActionRotateCW:
		return g.Rotate(Clockwise)
	case core.ActionRotateCCW:
		return g.Rotate(CounterClockwise)
	case core.ActionPause:
		return g.Pause()
	case core.ActionResume:
		return g.Resume()
	case core.ActionRestart:
		return g.Restart()
	}
	return false
}

// MoveLeft shifts the active piece one column left unless blocked.
func (g *Game) MoveLeft() bool {
	return g.shift(-1)
}

// MoveRight shifts the active piece one column right unless blocked.
func (g *Game) MoveRight() bool {
	return g.shift(1)
}

func (g *Game) shift(dCol int) bool {
	if g.mode != core.ModeRunning {
		return false
	}
	g.active.MoveBy(0, dCol)
	if g.blocked() {
		g.active.MoveBy(0, -dCol)
		return false
	}
	return true
}

// Rotate turns the active piece around its pivot unless the result is blocked.
func (g *Game) Rotate(dir Rotation) bool {
	if g.mode != core.ModeRunning {
		return false
	}
	g.active.Rotate(dir)
	if g.blocked() {
		g.active.Rotate(dir.Inverse())
		return false
	}
	return true
}

func (g *Game) blocked() bool {
	cells := g.active.Cells()
	return g.board.OutOfHorizontalBounds(cells) || g.board.Collides(cells)
}

// SoftDrop moves the active piece down one row, or lands it when it rests.
// The drop timer and the down key both end up here.
func (g *Game) SoftDrop() bool {
	if g.mode != core.ModeRunning {
		return false
	}
	if g.board.CanDropFurther(g.active.Cells()) {
		g.active.MoveBy(1, 0)
		return true
	}
	g.land()
	return true
}

// HardDrop drops the active piece as far as it goes and lands it.
func (g *Game) HardDrop() bool {
	if g.mode != core.ModeRunning {
		return false
	}
	for g.board.CanDropFurther(g.active.Cells()) {
		g.active.MoveBy(1, 0)
	}
	g.land()
	return true
}

// land settles the active piece, clears lines, scores and checks game over.
func (g *Game) land() {
	g.board.Land(g.active.Cells())
	g.landings++

	cleared := g.board.ClearFullLines()
	g.score += ScoreFor(cleared)
	g.lines += cleared

	if g.board.SpawnBlocked() {
		g.mode = core.ModeGameOver
		return
	}
	g.promote()
}

// Pause suspends a running game.
func (g *Game) Pause() bool {
	if g.mode != core.ModeRunning {
		return false
	}
	g.mode = core.ModePaused
	return true
}

// Resume continues a paused game.
func (g *Game) Resume() bool {
	if g.mode != core.ModePaused {
		return false
	}
	g.mode = core.ModeRunning
	return true
}

// Restart starts over after game over. The piece sequence continues from
// the current generator state.
func (g *Game) Restart() bool {
	if g.mode != core.ModeGameOver {
		return false
	}
	g.start()
	return true
}

// Mode returns the current state of the state machine.
func (g *Game) Mode() core.Mode {
	return g.mode
}

// Board returns the settled-cell board.
func (g *Game) Board() *Board {
	return &g.board
}

// Active returns the falling piece.
func (g *Game) Active() *Tetromino {
	return g.active
}

// Next returns the preview piece.
func (g *Game) Next() *Tetromino {
	return g.next
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score: g.score,
		Lines: g.lines,
		Mode:  g.mode,
	}
}
