// Package gui is the desktop front end. It draws session snapshots with
// Ebitengine and feeds key presses into the same session the terminal uses.
package gui

import (
	"errors"
	"fmt"
	"image/color"
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/vovakirdan/tui-tetris/internal/config"
	"github.com/vovakirdan/tui-tetris/internal/core"
	"github.com/vovakirdan/tui-tetris/internal/games/tetris"
	"github.com/vovakirdan/tui-tetris/internal/platform/gui/assets"
	"github.com/vovakirdan/tui-tetris/internal/storage"
)

const (
	panelCells = 6  // panel width in board cells
	textLine   = 16 // debug font line height
)

var (
	colBackground = color.RGBA{0x1e, 0x1e, 0x24, 0xff}
	colWell       = color.RGBA{0x10, 0x10, 0x14, 0xff}
	colGridDot    = color.RGBA{0x30, 0x30, 0x38, 0xff}
	colOverlay    = color.RGBA{0x00, 0x00, 0x00, 0xb0}
)

// palette approximates the terminal colors for frame and fallback cells.
var palette = map[core.Color]color.RGBA{
	core.ColorDefault:       {0xd0, 0xd0, 0xd0, 0xff},
	core.ColorRed:           {0xe0, 0x40, 0x40, 0xff},
	core.ColorGreen:         {0x40, 0xc0, 0x40, 0xff},
	core.ColorYellow:        {0xe0, 0xd0, 0x40, 0xff},
	core.ColorBlue:          {0x40, 0x60, 0xe0, 0xff},
	core.ColorMagenta:       {0xb0, 0x40, 0xc0, 0xff},
	core.ColorCyan:          {0x40, 0xd0, 0xe0, 0xff},
	core.ColorWhite:         {0xe8, 0xe8, 0xe8, 0xff},
	core.ColorBrightRed:     {0xff, 0x70, 0x70, 0xff},
	core.ColorBrightGreen:   {0x70, 0xff, 0x70, 0xff},
	core.ColorBrightYellow:  {0xff, 0xff, 0x70, 0xff},
	core.ColorBrightBlue:    {0x70, 0x90, 0xff, 0xff},
	core.ColorBrightMagenta: {0xe0, 0x70, 0xff, 0xff},
	core.ColorBrightCyan:    {0x70, 0xff, 0xff, 0xff},
	core.ColorBrightWhite:   {0xff, 0xff, 0xff, 0xff},
	core.ColorOrange:        {0xf0, 0x90, 0x30, 0xff},
	core.ColorGray:          {0x80, 0x80, 0x80, 0xff},
}

func rgba(c core.Color) color.RGBA {
	if v, ok := palette[c]; ok {
		return v
	}
	return palette[core.ColorDefault]
}

// layout is the pixel geometry derived from the cell size.
type layout struct {
	cell   int
	wellX  int
	wellY  int
	panelX int
	width  int
	height int
}

func newLayout(cell int) layout {
	l := layout{cell: cell, wellX: cell, wellY: cell}
	l.panelX = l.wellX + tetris.Cols*cell + cell
	l.width = l.panelX + panelCells*cell + cell
	l.height = l.wellY + tetris.Rows*cell + cell
	return l
}

// Game implements ebiten.Game on top of a tetris session.
type Game struct {
	session  *tetris.Session
	theme    tetris.Theme
	tiles    assets.Tiles
	bindings []binding
	layout   layout
	recorder *storage.Recorder
	logger   *log.Logger
}

// NewGame creates the desktop game for a running session.
func NewGame(session *tetris.Session, theme tetris.Theme, tiles assets.Tiles, keys config.KeyConfig,
	cellSize int, recorder *storage.Recorder, logger *log.Logger) *Game {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	if recorder == nil {
		recorder = storage.NewRecorder(nil, tetris.ID, logger)
	}
	bindings, skipped := parseBindings(keys)
	for _, name := range skipped {
		logger.Warn("key has no desktop equivalent", "key", name)
	}
	return &Game{
		session:  session,
		theme:    theme,
		tiles:    tiles,
		bindings: bindings,
		layout:   newLayout(cellSize),
		recorder: recorder,
		logger:   logger,
	}
}

// Update collects this tick's key presses and applies them as one frame.
func (g *Game) Update() error {
	select {
	case <-g.session.Done():
		return ebiten.Termination
	default:
	}

	ctrl := ebiten.IsKeyPressed(ebiten.KeyControl)
	frame := frameFor(g.bindings, inpututil.IsKeyJustPressed, ctrl)
	if frame.Has(core.ActionQuit) {
		g.session.Do(core.ActionQuit)
		return ebiten.Termination
	}
	if !frame.Empty() {
		g.session.Step(frame)
	}
	g.recorder.Observe(g.session.State())
	return nil
}

// Draw renders the latest snapshot.
func (g *Game) Draw(screen *ebiten.Image) {
	snap := g.session.Snapshot()
	screen.Fill(colBackground)

	g.drawWell(screen, snap)
	g.drawPanel(screen, snap)

	switch snap.Mode {
	case core.ModePaused:
		g.drawBanner(screen, "PAUSED", "C to continue")
	case core.ModeGameOver:
		g.drawBanner(screen, "GAME OVER", "S to restart")
	}
}

// Layout keeps a fixed logical size; the window scale is applied by Ebitengine.
func (g *Game) Layout(_, _ int) (int, int) {
	return g.layout.width, g.layout.height
}

func (g *Game) drawWell(screen *ebiten.Image, snap tetris.Snapshot) {
	l := g.layout
	x, y := float32(l.wellX), float32(l.wellY)
	w, h := float32(tetris.Cols*l.cell), float32(tetris.Rows*l.cell)

	vector.DrawFilledRect(screen, x, y, w, h, colWell, false)
	vector.StrokeRect(screen, x-1, y-1, w+2, h+2, 2, rgba(g.theme.Frame), false)

	for row := 0; row < tetris.Rows; row++ {
		for col := 0; col < tetris.Cols; col++ {
			px := l.wellX + col*l.cell
			py := l.wellY + row*l.cell
			shape := snap.Board[row][col]
			if snap.ActiveAt(row, col) {
				shape = snap.Active.Shape
			}
			if shape == tetris.ShapeNone {
				c := float32(l.cell) / 2
				vector.DrawFilledRect(screen, float32(px)+c-1, float32(py)+c-1, 2, 2, colGridDot, false)
				continue
			}
			g.drawTile(screen, shape, px, py, l.cell)
		}
	}
}

func (g *Game) drawTile(screen *ebiten.Image, shape tetris.Shape, px, py, cell int) {
	tile := g.tiles[shape]
	if tile == nil {
		vector.DrawFilledRect(screen, float32(px), float32(py), float32(cell), float32(cell),
			rgba(g.theme.Color(shape)), false)
		return
	}

	b := tile.Bounds()
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(cell)/float64(b.Dx()), float64(cell)/float64(b.Dy()))
	op.GeoM.Translate(float64(px), float64(py))
	screen.DrawImage(tile, op)
}

func (g *Game) drawPanel(screen *ebiten.Image, snap tetris.Snapshot) {
	l := g.layout
	x, y := l.panelX, l.wellY

	ebitenutil.DebugPrintAt(screen, "NEXT", x, y)
	y += textLine
	g.drawPreview(screen, snap.Next, x, y)
	y += 3 * l.cell

	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("SCORE\n%d", snap.Score), x, y)
	y += 2*textLine + textLine/2
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("LINES\n%d", snap.Lines), x, y)
	y += 2*textLine + textLine/2

	status := "[P] Pause"
	switch snap.Mode {
	case core.ModePaused:
		status = "[C] Continue"
	case core.ModeGameOver:
		status = "[S] Restart"
	}
	ebitenutil.DebugPrintAt(screen, status, x, y)
	y += 2 * textLine

	for _, shape := range tetris.Shapes {
		ebitenutil.DebugPrintAt(screen, fmt.Sprintf("%s %4d", shape, snap.Spawned[shape]), x, y)
		y += textLine
	}
}

// drawPreview draws the next piece at two thirds cell size, normalised to its own bounding box.
func (g *Game) drawPreview(screen *ebiten.Image, p tetris.Piece, x, y int) {
	if p.Shape == tetris.ShapeNone {
		return
	}
	minRow, minCol := p.Cells[0].Row, p.Cells[0].Col
	for _, c := range p.Cells[1:] {
		minRow = core.Min(minRow, c.Row)
		minCol = core.Min(minCol, c.Col)
	}
	size := g.layout.cell * 2 / 3
	for _, c := range p.Cells {
		g.drawTile(screen, p.Shape, x+(c.Col-minCol)*size, y+(c.Row-minRow)*size, size)
	}
}

func (g *Game) drawBanner(screen *ebiten.Image, title, hint string) {
	l := g.layout
	h := float32(3 * textLine)
	y := float32(l.wellY) + float32(tetris.Rows*l.cell)/2 - h/2
	vector.DrawFilledRect(screen, float32(l.wellX), y, float32(tetris.Cols*l.cell), h, colOverlay, false)

	cx := l.wellX + tetris.Cols*l.cell/2
	ebitenutil.DebugPrintAt(screen, title, cx-len(title)*3, int(y)+textLine/4)
	ebitenutil.DebugPrintAt(screen, hint, cx-len(hint)*3, int(y)+textLine+textLine/2)
}

// Options configures a desktop game.
type Options struct {
	Config  config.TetrisConfig
	Runtime core.RuntimeConfig
	Store   *storage.Store
	Logger  *log.Logger
}

// Run opens the window and plays until it is closed or the player quits.
func Run(opts Options) (core.GameState, error) {
	theme, err := opts.Config.Theme.Build()
	if err != nil {
		return core.GameState{}, err
	}
	tiles, err := assets.LoadTiles()
	if err != nil {
		return core.GameState{}, fmt.Errorf("gui: %w", err)
	}

	if opts.Runtime.Seed == 0 {
		opts.Runtime.Seed = time.Now().UnixNano()
	}

	session := tetris.NewSession(opts.Runtime, tetris.WithLogger(opts.Logger), tetris.WithTheme(theme))
	defer session.Close()

	recorder := storage.NewRecorder(opts.Store, tetris.ID, opts.Logger)
	game := NewGame(session, theme, tiles, opts.Config.Keys, opts.Config.GUI.CellSize, recorder, opts.Logger)

	w, h := game.Layout(0, 0)
	scale := opts.Config.GUI.Scale
	ebiten.SetWindowSize(int(float64(w)*scale), int(float64(h)*scale))
	ebiten.SetWindowTitle(opts.Config.GUI.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	err = ebiten.RunGame(game)
	recorder.Observe(session.State())
	if err != nil && !errors.Is(err, ebiten.Termination) {
		return session.State(), err
	}
	return session.State(), nil
}
