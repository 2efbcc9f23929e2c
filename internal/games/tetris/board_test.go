package tetris

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fillRow(b *Board, row int, s Shape) {
	for col := 0; col < Cols; col++ {
		b.Set(row, col, s)
	}
}

func TestClearFullLinesNoFullRows(t *testing.T) {
	var b Board
	b.Set(19, 0, ShapeT)
	b.Set(10, 5, ShapeI)
	for col := 0; col < Cols-1; col++ {
		b.Set(18, col, ShapeL)
	}
	before := b.Grid()

	assert.Equal(t, 0, b.ClearFullLines())
	assert.Equal(t, before, b.Grid())
}

func TestClearFullLinesTwoRows(t *testing.T) {
	var b Board
	fillRow(&b, 3, ShapeI)
	fillRow(&b, 5, ShapeJ)
	b.Set(1, 7, ShapeS)
	b.Set(2, 0, ShapeT)
	b.Set(4, 1, ShapeJ)
	b.Set(6, 2, ShapeL)
	b.Set(19, 9, ShapeZ)

	require.Equal(t, 2, b.ClearFullLines())

	// Rows above both cleared rows move down by two, the row between by one.
	assert.True(t, b.Occupied(3, 7))
	assert.True(t, b.Occupied(4, 0))
	assert.True(t, b.Occupied(5, 1))
	assert.True(t, b.Occupied(6, 2))
	assert.True(t, b.Occupied(19, 9))

	cell, ok := b.At(4, 0)
	require.True(t, ok)
	assert.Equal(t, ShapeT, cell.Shape)

	for row := 0; row <= 2; row++ {
		for col := 0; col < Cols; col++ {
			assert.False(t, b.Occupied(row, col), "row %d col %d", row, col)
		}
	}
	for row := 0; row < Rows; row++ {
		assert.False(t, b.FullRow(row))
	}
}

func TestClearFullLinesAdjacentRows(t *testing.T) {
	var b Board
	for row := 16; row < Rows; row++ {
		fillRow(&b, row, ShapeO)
	}
	b.Set(15, 4, ShapeT)

	assert.Equal(t, 4, b.ClearFullLines())
	assert.True(t, b.Occupied(19, 4))
	for col := 0; col < Cols; col++ {
		if col != 4 {
			assert.False(t, b.Occupied(19, col))
		}
	}
}

func TestCollides(t *testing.T) {
	var b Board
	b.Set(10, 4, ShapeZ)

	tests := []struct {
		name  string
		cells [4]Cell
		want  bool
	}{
		{"free", cellsOf(ShapeT, 0, 4, 0, 3, 0, 5, 1, 4), false},
		{"left wall", cellsOf(ShapeT, 0, 0, 0, -1, 0, 1, 1, 0), true},
		{"right wall", cellsOf(ShapeI, 0, 9, 0, 8, 0, 10, 0, 11), true},
		{"above top", cellsOf(ShapeI, -1, 4, 0, 4, 1, 4, 2, 4), true},
		{"below floor", cellsOf(ShapeI, 18, 0, 19, 0, 20, 0, 17, 0), true},
		{"settled", cellsOf(ShapeO, 9, 4, 9, 5, 10, 4, 10, 5), true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, b.Collides(tt.cells))
		})
	}
}

func TestOutOfHorizontalBounds(t *testing.T) {
	var b Board
	assert.False(t, b.OutOfHorizontalBounds(cellsOf(ShapeI, -1, 0, -1, 1, -1, 2, -1, 3)))
	assert.True(t, b.OutOfHorizontalBounds(cellsOf(ShapeI, 0, -1, 0, 0, 0, 1, 0, 2)))
	assert.True(t, b.OutOfHorizontalBounds(cellsOf(ShapeI, 0, 7, 0, 8, 0, 9, 0, 10)))
}

func TestCanDropFurther(t *testing.T) {
	var b Board
	assert.True(t, b.CanDropFurther(cellsOf(ShapeO, 0, 4, 0, 5, 1, 4, 1, 5)))
	assert.False(t, b.CanDropFurther(cellsOf(ShapeO, 18, 4, 18, 5, 19, 4, 19, 5)))

	b.Set(2, 5, ShapeI)
	assert.False(t, b.CanDropFurther(cellsOf(ShapeO, 0, 4, 0, 5, 1, 4, 1, 5)))
}

func TestLandAndSpawnBlocked(t *testing.T) {
	var b Board
	assert.False(t, b.SpawnBlocked())

	b.Land(cellsOf(ShapeO, 0, 4, 0, 5, 1, 4, 1, 5))
	assert.True(t, b.SpawnBlocked())

	cell, ok := b.At(1, 5)
	require.True(t, ok)
	assert.Equal(t, Cell{Row: 1, Col: 5, Shape: ShapeO}, cell)

	b.Clear()
	assert.False(t, b.SpawnBlocked())
	_, ok = b.At(1, 5)
	assert.False(t, ok)
}

func TestBoardString(t *testing.T) {
	var b Board
	b.Set(0, 0, ShapeT)
	b.Set(0, 9, ShapeI)
	rows := b.String()
	assert.Equal(t, "T........I", rows[:Cols])
}
