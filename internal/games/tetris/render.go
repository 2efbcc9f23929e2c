package tetris

import (
	"fmt"

	"github.com/vovakirdan/tui-tetris/internal/core"
)

// Layout of the character-screen rendering.
const (
	cellW      = 2
	wellW      = Cols*cellW + 2
	wellH      = Rows + 2
	panelGap   = 1
	panelW     = 12
	previewH   = 4
	MinScreenW = wellW + panelGap + panelW
	MinScreenH = wellH
)

// Theme controls how shapes look on a character screen.
type Theme struct {
	Colors [ShapeZ + 1]core.Color
	Block  string // glyph for one cell, drawn cellW runes wide
	Empty  string
	Frame  core.Color
}

// DefaultTheme returns the classic guideline colors.
func DefaultTheme() Theme {
	var t Theme
	t.Colors[ShapeI] = core.ColorCyan
	t.Colors[ShapeJ] = core.ColorBlue
	t.Colors[ShapeL] = core.ColorOrange
	t.Colors[ShapeO] = core.ColorYellow
	t.Colors[ShapeS] = core.ColorGreen
	t.Colors[ShapeT] = core.ColorMagenta
	t.Colors[ShapeZ] = core.ColorRed
	t.Block = "██"
	t.Empty = " ."
	t.Frame = core.ColorGray
	return t
}

// Color returns the color of a shape.
func (t Theme) Color(s Shape) core.Color {
	if int(s) >= len(t.Colors) {
		return core.ColorDefault
	}
	return t.Colors[s]
}

// Render draws the game into dst.
func (g *Game) Render(dst *core.Screen) {
	RenderSnapshot(dst, g.Snapshot(), g.theme)
}

// RenderSnapshot draws a snapshot into dst: the well, next piece preview,
// score panel and spawn statistics.
func RenderSnapshot(dst *core.Screen, s Snapshot, theme Theme) {
	dst.Clear()

	if dst.Width() < MinScreenW || dst.Height() < MinScreenH {
		renderOverlay(dst, "Window too small", fmt.Sprintf("Need %dx%d", MinScreenW, MinScreenH))
		return
	}

	ox := (dst.Width() - MinScreenW) / 2
	oy := (dst.Height() - MinScreenH) / 2

	well := core.NewRect(ox, oy, wellW, wellH)
	dst.DrawBox(well, theme.Frame)
	renderWell(dst, well.Inset(1), s, theme)

	px := well.Right() + panelGap
	renderPanel(dst, px, oy, s, theme)

	switch s.Mode {
	case core.ModePaused:
		renderBanner(dst, well, "PAUSED", "[C] Continue")
	case core.ModeGameOver:
		renderBanner(dst, well, "GAME OVER", fmt.Sprintf("Score %d", s.Score))
	}
}

func renderWell(dst *core.Screen, inner core.Rect, s Snapshot, theme Theme) {
	for row := 0; row < Rows; row++ {
		for col := 0; col < Cols; col++ {
			x := inner.X + col*cellW
			y := inner.Y + row
			shape := s.Board[row][col]
			if s.ActiveAt(row, col) {
				shape = s.Active.Shape
			}
			if shape == ShapeNone {
				dst.DrawTextColor(x, y, theme.Empty, theme.Frame)
				continue
			}
			dst.DrawTextColor(x, y, theme.Block, theme.Color(shape))
		}
	}
}

func renderPanel(dst *core.Screen, x, y int, s Snapshot, theme Theme) {
	preview := core.NewRect(x, y, panelW, previewH)
	dst.DrawBox(preview, theme.Frame)
	dst.DrawText(x+1, y, "NEXT")
	if s.Mode != core.ModeGameOver {
		for _, c := range s.Next.Cells {
			// Spawn layouts span columns 3..6 and rows 0..1.
			dst.DrawTextColor(x+2+(c.Col-3)*cellW, y+1+c.Row, theme.Block, theme.Color(c.Shape))
		}
	}

	line := y + previewH + 1
	dst.DrawText(x, line, "SCORE")
	dst.DrawTextColor(x, line+1, fmt.Sprintf("%d", s.Score), core.ColorBrightWhite)
	dst.DrawText(x, line+3, "LINES")
	dst.DrawTextColor(x, line+4, fmt.Sprintf("%d", s.Lines), core.ColorBrightWhite)

	line += 6
	switch s.Mode {
	case core.ModeRunning:
		dst.DrawText(x, line, "[P] Pause")
	case core.ModePaused:
		dst.DrawText(x, line, "[C] Continue")
	case core.ModeGameOver:
		dst.DrawTextColor(x, line, "[S] Restart", core.ColorBrightYellow)
	}

	line += 2
	for i, shape := range Shapes {
		if line+i >= dst.Height() {
			break
		}
		dst.DrawTextColor(x, line+i, shape.String(), theme.Color(shape))
		dst.DrawText(x+2, line+i, fmt.Sprintf("%3d", s.Spawned[shape]))
	}
}

// renderBanner draws a two-line message box over the middle of the well.
func renderBanner(dst *core.Screen, well core.Rect, line1, line2 string) {
	w := core.Max(len(line1), len(line2)) + 4
	box := core.NewRect(well.X+(well.W-w)/2, well.Y+well.H/2-2, w, 5)
	dst.DrawRect(box, ' ')
	dst.DrawBox(box, core.ColorBrightWhite)
	dst.DrawTextColor(box.X+(w-len(line1))/2, box.Y+1, line1, core.ColorBrightWhite)
	dst.DrawText(box.X+(w-len(line2))/2, box.Y+3, line2)
}

// renderOverlay draws a centered message box on the whole screen.
func renderOverlay(dst *core.Screen, line1, line2 string) {
	renderBanner(dst, core.NewRect(0, 0, dst.Width(), dst.Height()), line1, line2)
}
