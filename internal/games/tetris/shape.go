package tetris

import "fmt"

// Shape identifies one of the seven tetrominoes. It doubles as the visual
// tag of a cell; the zero value marks an empty board slot.
type Shape uint8

const (
	ShapeNone Shape = iota
	ShapeI
	ShapeJ
	ShapeL
	ShapeO
	ShapeS
	ShapeT
	ShapeZ
)

// Shapes lists every playable shape in catalog order.
var Shapes = [...]Shape{ShapeI, ShapeJ, ShapeL, ShapeO, ShapeS, ShapeT, ShapeZ}

// String returns the shape letter.
func (s Shape) String() string {
	switch s {
	case ShapeNone:
		return "."
	case ShapeI:
		return "I"
	case ShapeJ:
		return "J"
	case ShapeL:
		return "L"
	case ShapeO:
		return "O"
	case ShapeS:
		return "S"
	case ShapeT:
		return "T"
	case ShapeZ:
		return "Z"
	default:
		return fmt.Sprintf("Shape(%d)", uint8(s))
	}
}

// Valid reports whether s is one of the seven playable shapes.
func (s Shape) Valid() bool {
	return s >= ShapeI && s <= ShapeZ
}

// Offset is a (row, col) displacement relative to the pivot cell.
type Offset struct {
	Row, Col int
}

// RotationState places cells[1..3] relative to cells[0] for one rotation phase.
// Index 0 is always the pivot itself.
type RotationState [4]Offset

func rs(r1, c1, r2, c2, r3, c3 int) RotationState {
	return RotationState{{0, 0}, {r1, c1}, {r2, c2}, {r3, c3}}
}

// shapeDef is the fixed spawn layout and rotation table of a shape.
type shapeDef struct {
	spawn  [4]Offset // absolute (row, col), pivot first
	states []RotationState
}

// The spawn layout of every shape equals states[0] applied to its pivot.
var catalog = map[Shape]shapeDef{
	ShapeT: {
		spawn: [4]Offset{{0, 4}, {0, 3}, {0, 5}, {1, 4}},
		states: []RotationState{
			rs(0, -1, 0, 1, 1, 0),
			rs(-1, 0, 1, 0, 0, -1),
			rs(0, 1, 0, -1, -1, 0),
			rs(1, 0, -1, 0, 0, 1),
		},
	},
	ShapeI: {
		spawn: [4]Offset{{0, 4}, {0, 3}, {0, 5}, {0, 6}},
		states: []RotationState{
			rs(0, -1, 0, 1, 0, 2),
			rs(-1, 0, 1, 0, 2, 0),
		},
	},
	ShapeJ: {
		spawn: [4]Offset{{0, 4}, {0, 3}, {0, 5}, {1, 5}},
		states: []RotationState{
			rs(0, -1, 0, 1, 1, 1),
			rs(-1, 0, 1, 0, 1, -1),
			rs(0, 1, 0, -1, -1, -1),
			rs(1, 0, -1, 0, -1, 1),
		},
	},
	ShapeL: {
		spawn: [4]Offset{{0, 4}, {0, 3}, {0, 5}, {1, 3}},
		states: []RotationState{
			rs(0, -1, 0, 1, 1, -1),
			rs(-1, 0, 1, 0, -1, -1),
			rs(0, 1, 0, -1, -1, 1),
			rs(1, 0, -1, 0, 1, 1),
		},
	},
	ShapeO: {
		spawn: [4]Offset{{0, 4}, {0, 5}, {1, 4}, {1, 5}},
		states: []RotationState{
			rs(0, 1, 1, 0, 1, 1),
			rs(0, 1, 1, 0, 1, 1),
		},
	},
	ShapeS: {
		spawn: [4]Offset{{0, 4}, {0, 5}, {1, 3}, {1, 4}},
		states: []RotationState{
			rs(0, 1, 1, -1, 1, 0),
			rs(-1, 0, 1, 1, 0, 1),
		},
	},
	ShapeZ: {
		spawn: [4]Offset{{1, 4}, {0, 3}, {0, 4}, {1, 5}},
		states: []RotationState{
			rs(-1, -1, -1, 0, 0, 1),
			rs(-1, 1, 0, 1, 1, 0),
		},
	},
}

// SpawnLayout returns the absolute spawn coordinates of a shape, pivot first.
func SpawnLayout(s Shape) ([4]Offset, bool) {
	def, ok := catalog[s]
	return def.spawn, ok
}

// RotationStates returns a copy of the rotation table of a shape.
func RotationStates(s Shape) []RotationState {
	def, ok := catalog[s]
	if !ok {
		return nil
	}
	return append([]RotationState(nil), def.states...)
}
