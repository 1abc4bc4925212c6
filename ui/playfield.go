// Package ui specifies custom controls for tview to play termtris in the terminal.
package ui

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
	"go.uber.org/zap"

	"termtris/board"
	"termtris/config"
	"termtris/engine"
	"termtris/piece"
	"termtris/types"
)

// Style slots after the seven piece kinds.
const (
	styleEmpty = iota + 8
	styleGhost
	styleWall
	styleHidden
)

type PlayfieldUI struct {
	Box        *tview.Box
	BoardState *types.BoardState
	hint       *tview.TextView
	cfg        *config.Config
	game       engine.Game
	lineGoal   int
	styles     []tcell.Color
	infoPanel  *GameInfoPanel
	focusMode  bool
	log        *zap.Logger
}

// ToggleFocusMode toggles focus mode and returns the new state.
func (g *PlayfieldUI) ToggleFocusMode() bool {
	g.focusMode = !g.focusMode
	g.refreshHint()
	return g.focusMode
}

// SetFocusMode sets focus mode to the given state.
func (g *PlayfieldUI) SetFocusMode(enabled bool) {
	g.focusMode = enabled
	g.refreshHint()
}

// IsFocusMode returns true if focus mode is enabled.
func (g *PlayfieldUI) IsFocusMode() bool {
	return g.focusMode
}

func NewPlayfield(c *config.Config, hint *tview.TextView, logger *zap.Logger) *PlayfieldUI {
	if logger == nil {
		logger = zap.NewNop()
	}
	field := &PlayfieldUI{
		Box:        tview.NewBox(),
		BoardState: types.NewBoardState(board.Width, board.Height),
		hint:       hint,
		log:        logger,
	}
	field.SetConfig(c)
	field.Box.SetDrawFunc(func(screen tcell.Screen, x int, y int, width int, height int) (int, int, int, int) {
		state := field.BoardState
		if state == nil || state.Width() == 0 {
			return x, y, 1, 1
		}
		first := field.firstRow()
		w, h := state.Width(), state.Height()-first
		wallStyle := tcell.StyleDefault.Foreground(field.styles[styleWall])

		for row := first; row < state.Height(); row++ {
			top := y + row - first
			screen.SetContent(x, top, '│', nil, wallStyle)
			for col := 0; col < w; col++ {
				r, style := field.cellRune(row, col)
				drawBlockCell(screen, style, r, col, top, x+1)
			}
			screen.SetContent(x+1+w*2, top, '│', nil, wallStyle)
		}
		screen.SetContent(x, y+h, '└', nil, wallStyle)
		for i := 0; i < w*2; i++ {
			screen.SetContent(x+1+i, y+h, '─', nil, wallStyle)
		}
		screen.SetContent(x+1+w*2, y+h, '┘', nil, wallStyle)
		return x, y, w*2 + 2, h + 1
	})
	return field
}

// firstRow is the topmost snapshot row drawn.
func (g *PlayfieldUI) firstRow() int {
	if g.cfg.Theme.ShowHiddenRows {
		return 0
	}
	return board.HiddenRows
}

// cellRune picks what to draw at a snapshot cell: the active piece over
// placed blocks over the ghost over empty space.
func (g *PlayfieldUI) cellRune(row, col int) (rune, tcell.Style) {
	state := g.BoardState
	sym := g.cfg.Theme.Symbols
	pos := types.BoardPos{X: col, Y: row}

	if containsPos(state.Active.Cells, pos) {
		return sym.Block, tcell.StyleDefault.Foreground(g.styles[state.Active.Kind])
	}
	if k := state.Board[row][col]; k != piece.None {
		return sym.Block, tcell.StyleDefault.Foreground(g.styles[k])
	}
	if g.cfg.Theme.DrawGhost && containsPos(state.Ghost, pos) {
		return sym.Ghost, tcell.StyleDefault.Foreground(g.styles[styleGhost])
	}
	if row < board.HiddenRows {
		return ' ', tcell.StyleDefault.Foreground(g.styles[styleHidden])
	}
	return sym.Empty, tcell.StyleDefault.Foreground(g.styles[styleEmpty])
}

func containsPos(cells []types.BoardPos, p types.BoardPos) bool {
	for _, c := range cells {
		if c == p {
			return true
		}
	}
	return false
}

// Connect starts game and shows it on the playfield. lineGoal is only used
// for display.
func (g *PlayfieldUI) Connect(game engine.Game, lineGoal int) error {
	g.game = game
	g.lineGoal = lineGoal
	if g.infoPanel != nil {
		g.infoPanel.SetLineGoal(lineGoal)
	}
	if err := game.Start(); err != nil {
		return err
	}
	g.refresh()
	return nil
}

// Input applies a single player input as one frame.
func (g *PlayfieldUI) Input(in engine.Input) {
	if g.game == nil || g.game.GameOver() {
		return
	}
	if err := g.game.NextFrame([]engine.Input{in}); err != nil {
		g.log.Debug("frame failed", zap.Stringer("input", in), zap.Error(err))
		return
	}
	g.refresh()
}

// Close ends the running game.
func (g *PlayfieldUI) Close() {
	if g.game == nil {
		return
	}
	g.game.EndGame()
	g.refresh()
}

func (g *PlayfieldUI) SetConfig(c *config.Config) {
	colors := c.Theme.Colors
	g.styles = []tcell.Color{
		tcell.ColorDefault,                // piece.None
		tcell.PaletteColor(colors.I),      // piece.I
		tcell.PaletteColor(colors.O),      // piece.O
		tcell.PaletteColor(colors.T),      // piece.T
		tcell.PaletteColor(colors.S),      // piece.S
		tcell.PaletteColor(colors.Z),      // piece.Z
		tcell.PaletteColor(colors.J),      // piece.J
		tcell.PaletteColor(colors.L),      // piece.L
		tcell.PaletteColor(colors.Wall),   // styleEmpty
		tcell.PaletteColor(colors.Ghost),  // styleGhost
		tcell.PaletteColor(colors.Wall),   // styleWall
		tcell.PaletteColor(colors.Hidden), // styleHidden
	}
	g.cfg = c
	if g.infoPanel != nil {
		g.infoPanel.SetConfig(c)
	}
}

func (g *PlayfieldUI) refresh() {
	if g.game != nil {
		g.BoardState = g.game.State()
	}
	g.refreshHint()
}

func (g *PlayfieldUI) refreshHint() {
	if g.infoPanel != nil {
		g.infoPanel.SetBoardState(g.BoardState)
	}

	if g.focusMode {
		g.hint.SetText("  f to toggle")
		return
	}

	if g.BoardState.Finished() {
		g.hint.SetText(fmt.Sprintf("  Game over: %s   r · restart   q · menu", g.BoardState.Outcome))
		return
	}
	g.hint.SetText(`  ←→ move   HL snap   ↑x cw   z ccw   a 180   c hold   ␣ drop
  f focus   r restart   q menu`)
}

// IsFinished returns true if the game is over.
func (g *PlayfieldUI) IsFinished() bool {
	return g.BoardState.Finished()
}

// drawBlockCell draws a board cell two characters wide.
func drawBlockCell(s tcell.Screen, c tcell.Style, r rune, x, y, l int) {
	s.SetContent(l+x*2, y, r, nil, c)
	s.SetContent(l+x*2+1, y, r, nil, c)
}
