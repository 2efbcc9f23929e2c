package tetris

import (
	"fmt"
	"math/rand"

	"github.com/vovakirdan/tui-tetris/internal/core"
)

// Cell is a single occupied position with its visual tag.
type Cell struct {
	Row   int
	Col   int
	Shape Shape
}

// Rotation is the direction of a rotation step.
type Rotation int

const (
	Clockwise Rotation = iota
	CounterClockwise
)

// Inverse returns the opposite direction.
func (r Rotation) Inverse() Rotation {
	if r == Clockwise {
		return CounterClockwise
	}
	return Clockwise
}

// Tetromino is one falling piece: four cells, a rotation table and the
// current rotation index. cells[0] is the pivot and never moves on rotation.
type Tetromino struct {
	shape  Shape
	cells  [4]Cell
	states []RotationState
	index  int
}

// Spawn returns a freshly positioned piece of the given shape.
// It panics on a shape outside the catalog.
func Spawn(s Shape) *Tetromino {
	def, ok := catalog[s]
	if !ok {
		panic(fmt.Sprintf("tetris: no catalog entry for shape %v", s))
	}

	t := &Tetromino{
		shape:  s,
		states: def.states,
	}
	for i, o := range def.spawn {
		t.cells[i] = Cell{Row: o.Row, Col: o.Col, Shape: s}
	}
	return t
}

// SpawnRandom picks one of the seven shapes uniformly.
func SpawnRandom(rng *rand.Rand) *Tetromino {
	return Spawn(Shapes[rng.Intn(len(Shapes))])
}

// Shape returns the piece's shape.
func (t *Tetromino) Shape() Shape {
	return t.shape
}

// Cells returns a copy of the four cells.
func (t *Tetromino) Cells() [4]Cell {
	return t.cells
}

// RotationIndex returns the current phase in [0, len(states)).
func (t *Tetromino) RotationIndex() int {
	return core.Mod(t.index, len(t.states))
}

// MoveBy translates all four cells.
func (t *Tetromino) MoveBy(dRow, dCol int) {
	for i := range t.cells {
		t.cells[i].Row += dRow
		t.cells[i].Col += dCol
	}
}

// Rotate steps the rotation index and repositions cells[1..3] around the pivot.
// The result is not validated; callers revert with the inverse rotation.
func (t *Tetromino) Rotate(dir Rotation) {
	if dir == Clockwise {
		t.index++
	} else {
		t.index--
	}

	state := t.states[core.Mod(t.index, len(t.states))]
	pivot := t.cells[0]
	for k := 1; k < len(t.cells); k++ {
		t.cells[k].Row = pivot.Row + state[k].Row
		t.cells[k].Col = pivot.Col + state[k].Col
	}
}

// String returns the cell positions for debugging.
func (t *Tetromino) String() string {
	return fmt.Sprintf("%v%v", t.shape, t.cells)
}
