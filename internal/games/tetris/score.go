package tetris

import "github.com/vovakirdan/tui-tetris/internal/core"

// ScoreTable is the score awarded for clearing 0..4 lines with one landing.
var ScoreTable = [...]int{0, 1, 10, 30, 200}

// ScoreFor returns the award for a single landing that cleared lines rows.
func ScoreFor(lines int) int {
	return ScoreTable[core.Clamp(lines, 0, len(ScoreTable)-1)]
}
