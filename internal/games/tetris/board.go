package tetris

import "strings"

// Board dimensions and the spawn cell whose occupation ends the game.
const (
	Rows     = 20
	Cols     = 10
	SpawnRow = 0
	SpawnCol = 4
)

// Board is the wall of settled cells. A slot holds the shape of the cell
// that settled there, or ShapeNone when empty.
type Board struct {
	grid [Rows][Cols]Shape
}

// Grid is a copy of the board contents, indexed [row][col].
type Grid [Rows][Cols]Shape

// Clear empties every slot.
func (b *Board) Clear() {
	b.grid = [Rows][Cols]Shape{}
}

// Grid returns a copy of the board contents.
func (b *Board) Grid() Grid {
	return b.grid
}

// At returns the settled cell at (row, col), if any.
func (b *Board) At(row, col int) (Cell, bool) {
	if !inside(row, col) || b.grid[row][col] == ShapeNone {
		return Cell{}, false
	}
	return Cell{Row: row, Col: col, Shape: b.grid[row][col]}, true
}

// Occupied reports whether (row, col) holds a settled cell.
func (b *Board) Occupied(row, col int) bool {
	return inside(row, col) && b.grid[row][col] != ShapeNone
}

// Set places (or with ShapeNone, removes) a settled cell. Out-of-range
// positions are ignored.
func (b *Board) Set(row, col int, s Shape) {
	if !inside(row, col) {
		return
	}
	b.grid[row][col] = s
}

// OutOfHorizontalBounds reports whether any cell lies outside [0, Cols).
func (b *Board) OutOfHorizontalBounds(cells [4]Cell) bool {
	for _, c := range cells {
		if c.Col < 0 || c.Col >= Cols {
			return true
		}
	}
	return false
}

// Collides reports whether any cell lies outside the board or on a settled cell.
func (b *Board) Collides(cells [4]Cell) bool {
	for _, c := range cells {
		if !inside(c.Row, c.Col) || b.grid[c.Row][c.Col] != ShapeNone {
			return true
		}
	}
	return false
}

// CanDropFurther reports whether the piece can move down one row.
func (b *Board) CanDropFurther(cells [4]Cell) bool {
	for _, c := range cells {
		if c.Row >= Rows-1 {
			return false
		}
	}
	for _, c := range cells {
		if b.Occupied(c.Row+1, c.Col) {
			return false
		}
	}
	return true
}

// Land copies the cells into the grid at their current positions.
func (b *Board) Land(cells [4]Cell) {
	for _, c := range cells {
		b.Set(c.Row, c.Col, c.Shape)
	}
}

// FullRow reports whether every column of row is occupied.
func (b *Board) FullRow(row int) bool {
	if row < 0 || row >= Rows {
		return false
	}
	for _, s := range b.grid[row] {
		if s == ShapeNone {
			return false
		}
	}
	return true
}

// ClearFullLines removes every full row in one top-to-bottom pass and
// returns how many were removed. Rows above a removed row shift down by one
// and row 0 becomes empty.
func (b *Board) ClearFullLines() int {
	cleared := 0
	for row := 0; row < Rows; row++ {
		if !b.FullRow(row) {
			continue
		}
		for i := row; i >= 1; i-- {
			b.grid[i] = b.grid[i-1]
		}
		b.grid[0] = [Cols]Shape{}
		cleared++
	}
	return cleared
}

// SpawnBlocked reports whether the spawn cell is occupied, which ends the game.
func (b *Board) SpawnBlocked() bool {
	return b.grid[SpawnRow][SpawnCol] != ShapeNone
}

// String renders the board one row per line, "." for empty slots.
func (b *Board) String() string {
	var sb strings.Builder
	for row := 0; row < Rows; row++ {
		if row > 0 {
			sb.WriteByte('\n')
		}
		for _, s := range b.grid[row] {
			sb.WriteString(s.String())
		}
	}
	return sb.String()
}

func inside(row, col int) bool {
	return row >= 0 && row < Rows && col >= 0 && col < Cols
}
