package tetris

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-tetris/internal/core"
)

func newTestGame(t *testing.T, seed int64) *Game {
	t.Helper()
	g := New()
	g.Reset(core.RuntimeConfig{Seed: seed, DropInterval: core.DefaultDropInterval})
	require.Equal(t, core.ModeRunning, g.Mode())
	return g
}

func TestScoreTable(t *testing.T) {
	assert.Equal(t, 0, ScoreFor(0))
	assert.Equal(t, 1, ScoreFor(1))
	assert.Equal(t, 10, ScoreFor(2))
	assert.Equal(t, 30, ScoreFor(3))
	assert.Equal(t, 200, ScoreFor(4))
}

func TestResetState(t *testing.T) {
	g := newTestGame(t, 1)
	snap := g.Snapshot()

	assert.Equal(t, Grid{}, snap.Board)
	assert.Zero(t, snap.Score)
	assert.Zero(t, snap.Lines)
	assert.True(t, snap.Active.Shape.Valid())
	assert.True(t, snap.Next.Shape.Valid())

	layout, _ := SpawnLayout(snap.Active.Shape)
	assert.Equal(t, layout[0].Row, snap.Active.Cells[0].Row)
	assert.Equal(t, layout[0].Col, snap.Active.Cells[0].Col)
	assert.Equal(t, 1, snap.Spawned[snap.Active.Shape])
}

func TestMoveLeftAtWallIsReverted(t *testing.T) {
	g := newTestGame(t, 1)
	g.active = Spawn(ShapeI)

	for i := 0; i < 3; i++ {
		require.True(t, g.MoveLeft())
	}
	atWall := g.active.Cells()
	assert.Equal(t, 0, atWall[1].Col)

	assert.False(t, g.MoveLeft())
	assert.Equal(t, atWall, g.active.Cells())
}

func TestMoveRightIntoSettledIsReverted(t *testing.T) {
	g := newTestGame(t, 1)
	g.active = Spawn(ShapeO)
	g.board.Set(1, 6, ShapeT)

	before := g.active.Cells()
	assert.False(t, g.MoveRight())
	assert.Equal(t, before, g.active.Cells())
}

func TestRotateIntoWallIsReverted(t *testing.T) {
	g := newTestGame(t, 1)
	g.active = Spawn(ShapeI)
	g.active.Rotate(Clockwise)
	g.active.MoveBy(2, 0)
	for g.MoveLeft() {
	}
	before := g.active.Cells()
	index := g.active.RotationIndex()

	// Horizontal I around a pivot in column 0 would stick out on the left.
	assert.False(t, g.Rotate(Clockwise))
	assert.Equal(t, before, g.active.Cells())
	assert.Equal(t, index, g.active.RotationIndex())
}

func TestRotateAboveTopIsReverted(t *testing.T) {
	g := newTestGame(t, 1)
	g.active = Spawn(ShapeI)

	// Vertical I needs row -1.
	assert.False(t, g.Rotate(Clockwise))
	assert.Equal(t, 0, g.active.RotationIndex())
}

func TestHardDropOnEmptyBoard(t *testing.T) {
	g := newTestGame(t, 1)
	g.active = Spawn(ShapeT)

	require.True(t, g.HardDrop())

	for _, rc := range [][2]int{{18, 3}, {18, 4}, {18, 5}, {19, 4}} {
		cell, ok := g.board.At(rc[0], rc[1])
		require.True(t, ok, "%v", rc)
		assert.Equal(t, ShapeT, cell.Shape)
	}
	assert.Equal(t, 1, g.Snapshot().Landings)
	assert.Equal(t, core.ModeRunning, g.Mode())
}

func TestHardDropRestsOnSettledCells(t *testing.T) {
	g := newTestGame(t, 1)
	g.board.Set(19, 4, ShapeJ)
	g.active = Spawn(ShapeT)

	g.HardDrop()

	for _, rc := range [][2]int{{17, 3}, {17, 4}, {17, 5}, {18, 4}} {
		assert.True(t, g.board.Occupied(rc[0], rc[1]), "%v", rc)
	}
}

func TestSoftDropMovesThenLands(t *testing.T) {
	g := newTestGame(t, 1)
	g.active = Spawn(ShapeO)
	next := g.next

	for i := 0; i < Rows-2; i++ {
		require.True(t, g.SoftDrop())
	}
	assert.Equal(t, 18, g.active.Cells()[0].Row)
	assert.Zero(t, g.landings)

	g.SoftDrop()
	assert.Equal(t, 1, g.landings)
	assert.True(t, g.board.Occupied(19, 5))
	assert.Same(t, next, g.active)
}

func TestDoubleClearScores(t *testing.T) {
	g := newTestGame(t, 1)
	for _, row := range []int{18, 19} {
		for col := 0; col < Cols; col++ {
			if col != 4 && col != 5 {
				g.board.Set(row, col, ShapeL)
			}
		}
	}
	g.active = Spawn(ShapeO)

	res := g.Apply(core.ActionHardDrop)

	assert.Equal(t, 1, res.Landed)
	assert.Equal(t, 2, res.Cleared)
	assert.Equal(t, 10, res.State.Score)
	assert.Equal(t, 2, res.State.Lines)
	assert.Equal(t, Grid{}, g.board.Grid())
}

func TestScoreAccumulates(t *testing.T) {
	g := newTestGame(t, 1)
	for col := 0; col < Cols; col++ {
		if col < 3 || col > 6 {
			g.board.Set(19, col, ShapeZ)
		}
	}
	g.active = Spawn(ShapeI)
	g.HardDrop()
	assert.Equal(t, 1, g.score)

	for row := 16; row < Rows; row++ {
		for col := 0; col < Cols; col++ {
			if col != 0 {
				g.board.Set(row, col, ShapeJ)
			}
		}
	}
	g.active = Spawn(ShapeI)
	g.active.MoveBy(1, 0)
	require.True(t, g.Rotate(Clockwise))
	for g.MoveLeft() {
	}
	g.HardDrop()

	assert.Equal(t, 201, g.score)
	assert.Equal(t, 5, g.lines)
}

// fillSpawnColumn stacks settled cells in column 4 below the spawn area.
func fillSpawnColumn(g *Game) {
	for row := 2; row < Rows; row++ {
		g.board.Set(row, SpawnCol, ShapeI)
	}
}

func TestLandingOnSpawnCellEndsGame(t *testing.T) {
	g := newTestGame(t, 1)
	fillSpawnColumn(g)
	g.active = Spawn(ShapeO)

	res := g.Apply(core.ActionSoftDrop)
	require.Equal(t, 1, res.Landed)
	require.True(t, res.State.GameOver())

	before := g.Snapshot()
	for _, a := range []core.Action{
		core.ActionMoveLeft, core.ActionMoveRight, core.ActionSoftDrop,
		core.ActionHardDrop, core.ActionRotateCW, core.ActionRotateCCW,
		core.ActionPause, core.ActionResume,
	} {
		g.Apply(a)
		assert.Equal(t, before, g.Snapshot(), "%v", a)
	}
}

func TestGameOverKeepsNextPiece(t *testing.T) {
	g := newTestGame(t, 1)
	fillSpawnColumn(g)
	g.active = Spawn(ShapeO)
	next := g.next

	g.HardDrop()
	require.Equal(t, core.ModeGameOver, g.Mode())
	assert.Same(t, next, g.next)
}

func TestRestart(t *testing.T) {
	g := newTestGame(t, 1)
	assert.False(t, g.Restart(), "restart only applies after game over")

	g.score = 42
	g.lines = 3
	fillSpawnColumn(g)
	g.active = Spawn(ShapeO)
	g.HardDrop()
	require.Equal(t, core.ModeGameOver, g.Mode())

	require.True(t, g.Restart())
	snap := g.Snapshot()
	assert.Equal(t, core.ModeRunning, snap.Mode)
	assert.Equal(t, Grid{}, snap.Board)
	assert.Zero(t, snap.Score)
	assert.Zero(t, snap.Lines)
	assert.Zero(t, snap.Landings)
	assert.True(t, snap.Active.Shape.Valid())
	assert.True(t, snap.Next.Shape.Valid())
}

func TestPauseResume(t *testing.T) {
	g := newTestGame(t, 1)

	assert.False(t, g.Resume())
	require.True(t, g.Pause())
	assert.Equal(t, core.ModePaused, g.Mode())
	assert.False(t, g.Pause())

	before := g.active.Cells()
	assert.False(t, g.MoveLeft())
	assert.False(t, g.SoftDrop())
	assert.False(t, g.HardDrop())
	assert.False(t, g.Rotate(CounterClockwise))
	assert.Equal(t, before, g.active.Cells())

	require.True(t, g.Resume())
	assert.Equal(t, core.ModeRunning, g.Mode())
	assert.True(t, g.SoftDrop())
}

func TestStepOrder(t *testing.T) {
	g := newTestGame(t, 1)
	g.active = Spawn(ShapeT)
	before := g.active.Cells()

	in := core.NewInputFrame()
	in.Set(core.ActionPause)
	in.Set(core.ActionMoveLeft)
	res := g.Step(in)

	assert.Equal(t, core.ModePaused, res.State.Mode)
	assert.Equal(t, before, g.active.Cells(), "pause applies before movement")

	in.Clear()
	in.Set(core.ActionResume)
	in.Set(core.ActionMoveLeft)
	g.Step(in)

	assert.Equal(t, core.ModeRunning, g.Mode())
	assert.Equal(t, before[0].Col-1, g.active.Cells()[0].Col, "resume applies before movement")
}

func TestDeterminism(t *testing.T) {
	g1 := newTestGame(t, 12345)
	g2 := newTestGame(t, 12345)

	actions := []core.Action{
		core.ActionMoveLeft, core.ActionRotateCW, core.ActionHardDrop,
		core.ActionMoveRight, core.ActionMoveRight, core.ActionSoftDrop,
		core.ActionRotateCCW, core.ActionHardDrop,
	}
	for i := 0; i < 40; i++ {
		a := actions[i%len(actions)]
		g1.Apply(a)
		g2.Apply(a)
	}

	assert.Equal(t, g1.Snapshot(), g2.Snapshot())
}

func TestSpawnStatistics(t *testing.T) {
	g := newTestGame(t, 3)
	for i := 0; i < 5; i++ {
		g.HardDrop()
	}

	snap := g.Snapshot()
	total := 0
	for _, n := range snap.Spawned {
		total += n
	}
	assert.Equal(t, snap.Landings+1, total)
}

func TestRender(t *testing.T) {
	g := newTestGame(t, 1)
	g.active = Spawn(ShapeT)
	g.board.Set(19, 0, ShapeI)

	screen := core.NewScreen(60, 24)
	g.Render(screen)

	out := screen.String()
	assert.Contains(t, out, "NEXT")
	assert.Contains(t, out, "SCORE")
	assert.Contains(t, out, "[P] Pause")
	assert.Contains(t, out, "██")

	g.Pause()
	g.Render(screen)
	assert.Contains(t, screen.String(), "PAUSED")
}

func TestRenderColors(t *testing.T) {
	g := newTestGame(t, 1)
	g.board.Set(19, 0, ShapeZ)

	screen := core.NewScreen(MinScreenW, MinScreenH)
	g.Render(screen)

	// Bottom-left cell of the well: one frame column and one frame row in.
	cell := screen.GetCell(1, Rows)
	assert.Equal(t, '█', cell.Rune)
	assert.Equal(t, core.ColorRed, cell.Color)
}

func TestRenderTooSmall(t *testing.T) {
	g := newTestGame(t, 1)
	screen := core.NewScreen(30, 10)
	g.Render(screen)
	assert.True(t, strings.Contains(screen.String(), "too small"))
}
