package tetris

import "github.com/vovakirdan/tui-tetris/internal/core"

// Piece is a read-only view of a tetromino.
type Piece struct {
	Shape    Shape
	Cells    [4]Cell
	Rotation int
}

// Snapshot captures the complete visible game state. It shares no memory
// with the game and is safe to hand to another goroutine.
type Snapshot struct {
	Board    Grid
	Active   Piece
	Next     Piece
	Score    int
	Lines    int
	Landings int
	Mode     core.Mode
	// Spawned counts active pieces per shape, indexed by Shape.
	Spawned [ShapeZ + 1]int
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	s := Snapshot{
		Board:    g.board.Grid(),
		Active:   pieceOf(g.active),
		Next:     pieceOf(g.next),
		Score:    g.score,
		Lines:    g.lines,
		Landings: g.landings,
		Mode:     g.mode,
	}
	for _, shape := range Shapes {
		s.Spawned[shape], _ = g.spawned.Get(shape)
	}
	return s
}

func pieceOf(t *Tetromino) Piece {
	if t == nil {
		return Piece{}
	}
	return Piece{
		Shape:    t.Shape(),
		Cells:    t.Cells(),
		Rotation: t.RotationIndex(),
	}
}

// ActiveAt reports whether the falling piece covers (row, col).
func (s Snapshot) ActiveAt(row, col int) bool {
	if s.Active.Shape == ShapeNone || s.Mode == core.ModeGameOver {
		return false
	}
	for _, c := range s.Active.Cells {
		if c.Row == row && c.Col == col {
			return true
		}
	}
	return false
}
